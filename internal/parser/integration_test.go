package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pil/internal/ast"
)

func TestParseQuadProgram(t *testing.T) {
	source := `constant %N = 16;
namespace Quad(%N);
    col fixed id(i) { i };
    col witness input(i) query ("input", i);
    {input} in {id};
    public out = input(0);`

	file, parseErrors, scanErrors := ParsePILSource("quad.pil", source)
	assert.Empty(t, scanErrors, "Should have no scan errors")
	assert.Empty(t, parseErrors, "Should have no parse errors")
	assert.NotNil(t, file)
	assert.Len(t, file.Statements, 6)

	constant, ok := file.Statements[0].(*ast.ConstantDefinition)
	assert.True(t, ok, "statement 0 should be a constant definition")
	assert.Equal(t, "N", constant.Name.Value)

	ns, ok := file.Statements[1].(*ast.Namespace)
	assert.True(t, ok, "statement 1 should be a namespace")
	assert.Equal(t, "Quad", ns.Name.Value)

	fixed, ok := file.Statements[2].(*ast.PolynomialConstantDefinition)
	assert.True(t, ok, "statement 2 should define a fixed column")
	assert.Equal(t, "id", fixed.Name.Value)
	_, ok = fixed.Definition.(*ast.MappingDefinition)
	assert.True(t, ok, "id should be defined by a mapping")

	witness, ok := file.Statements[3].(*ast.PolynomialCommitDeclaration)
	assert.True(t, ok, "statement 3 should declare a witness column")
	assert.Equal(t, "input", witness.Polynomials[0].Name.Value)
	_, ok = witness.Definition.(*ast.QueryDefinition)
	assert.True(t, ok, "input should carry a query")

	lookup, ok := file.Statements[4].(*ast.PlookupIdentity)
	assert.True(t, ok, "statement 4 should be a lookup")
	assert.Nil(t, lookup.Key.Selector)
	assert.Len(t, lookup.Key.Expressions, 1)

	pub, ok := file.Statements[5].(*ast.PublicDeclaration)
	assert.True(t, ok, "statement 5 should be a public declaration")
	assert.Equal(t, "out", pub.Name.Value)

	// Statement positions track the source lines.
	lastLine := 0
	for _, stmt := range file.Statements {
		assert.Greater(t, ast.Line(stmt), lastLine, "statement lines should strictly increase")
		lastLine = ast.Line(stmt)
	}
}

func TestParseFibonacciProgram(t *testing.T) {
	source := `constant %N = 1024;

namespace Fibonacci(%N);
    pol constant LAST = [0, 0, 0, 1];
    pol commit x, y;

    // Transition relations hold everywhere but the last row.
    (1 - LAST) * (x' - y) = 0;
    (1 - LAST) * (y' - (x + y)) = 0;

    public out = y(%N - 1);
    :out = y;`

	file, parseErrors, scanErrors := ParsePILSource("fibonacci.pil", source)
	assert.Empty(t, scanErrors)
	assert.Empty(t, parseErrors)
	assert.Len(t, file.Statements, 8)

	_, ok := file.Statements[4].(*ast.PolynomialIdentity)
	assert.True(t, ok)
	_, ok = file.Statements[7].(*ast.PolynomialIdentity)
	assert.True(t, ok, "constraints may reference public values")
}

func TestParseMacroDrivenProgram(t *testing.T) {
	source := `namespace Bin(%N);
    pol commit a, b;

    macro force_bool(X) { X * (1 - X) = 0; };
    macro bool_and(X, Y) { X * Y };

    force_bool(a);
    force_bool(b);
    pol both = bool_and(a, b);`

	file, parseErrors, _ := ParsePILSource("bin.pil", source)
	assert.Empty(t, parseErrors)
	assert.Len(t, file.Statements, 7)

	def, ok := file.Statements[6].(*ast.PolynomialDefinition)
	assert.True(t, ok)
	_, ok = def.Value.(*ast.FunctionCallExpr)
	assert.True(t, ok)
}

func TestRoundTripThroughPrinter(t *testing.T) {
	source := `constant %N = 16;
namespace Quad(%N);
col fixed id(i) { i };
{input} in {id};`

	file, parseErrors, _ := ParsePILSource("quad.pil", source)
	assert.Empty(t, parseErrors)

	// Printing and reparsing yields the same shape.
	printed := file.String()
	reparsed, parseErrors, scanErrors := ParsePILSource("printed.pil", printed)
	assert.Empty(t, scanErrors, "printed output should scan cleanly")
	assert.Empty(t, parseErrors, "printed output should reparse cleanly")
	assert.Len(t, reparsed.Statements, len(file.Statements))
	assert.Equal(t, printed, reparsed.String())
}

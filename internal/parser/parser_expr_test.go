package parser

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"pil/internal/ast"
)

func prepareParser(source string) *Parser {
	scanner := NewScanner(source)
	tokens := scanner.ScanTokens()

	return NewParser("test.pil", tokens)
}

func TestParsePrecedence(t *testing.T) {
	parser := prepareParser("1 + 2 * 3")
	expr := parser.parseExpr()
	assert.Empty(t, parser.Errors())
	assert.Equal(t, "(1 + (2 * 3))", expr.String())

	parser = prepareParser("a | b & c")
	expr = parser.parseExpr()
	assert.Empty(t, parser.Errors())
	assert.Equal(t, "(a | (b & c))", expr.String())

	parser = prepareParser("1 << 2 + 3")
	expr = parser.parseExpr()
	assert.Empty(t, parser.Errors())
	assert.Equal(t, "(1 << (2 + 3))", expr.String())
}

func TestParseLeftAssociativity(t *testing.T) {
	parser := prepareParser("1 - 2 - 3")
	expr := parser.parseExpr()
	assert.Empty(t, parser.Errors())
	assert.Equal(t, "((1 - 2) - 3)", expr.String())

	// Exponentiation associates to the left as well: 2 ** 3 ** 2 is
	// (2 ** 3) ** 2, not 2 ** (3 ** 2).
	parser = prepareParser("2 ** 3 ** 2")
	expr = parser.parseExpr()
	assert.Empty(t, parser.Errors())
	assert.Equal(t, "((2 ** 3) ** 2)", expr.String())

	parser = prepareParser("2 ** 3 * 4")
	expr = parser.parseExpr()
	assert.Empty(t, parser.Errors())
	assert.Equal(t, "((2 ** 3) * 4)", expr.String())
}

func TestParseUnary(t *testing.T) {
	parser := prepareParser("-a + b")
	expr := parser.parseExpr()
	assert.Empty(t, parser.Errors())
	assert.Equal(t, "(-a + b)", expr.String())
}

func TestParseNumberLiterals(t *testing.T) {
	for _, source := range []string{"123", "0x7b", "0x7B", "0x7B_", "1_2_3"} {
		parser := prepareParser(source)
		expr := parser.parseExpr()
		assert.Empty(t, parser.Errors(), "source %q", source)

		num, ok := expr.(*ast.NumberExpr)
		assert.True(t, ok, "source %q should parse to a number", source)
		assert.Zero(t, num.Value.Cmp(big.NewInt(123)), "source %q should equal 123", source)
	}
}

func TestParseLargeNumber(t *testing.T) {
	// Field-sized literals exceed uint64.
	parser := prepareParser("21888242871839275222246405745257275088548364400416034343698204186575808495617")
	expr := parser.parseExpr()
	assert.Empty(t, parser.Errors())

	num, ok := expr.(*ast.NumberExpr)
	assert.True(t, ok)
	expected, _ := new(big.Int).SetString("21888242871839275222246405745257275088548364400416034343698204186575808495617", 10)
	assert.Zero(t, num.Value.Cmp(expected))
}

func TestParseGroupingVersusTuple(t *testing.T) {
	// A single parenthesized expression is grouping, not a tuple.
	parser := prepareParser("(1)")
	expr := parser.parseExpr()
	assert.Empty(t, parser.Errors())
	_, ok := expr.(*ast.NumberExpr)
	assert.True(t, ok, "grouping should not produce a tuple node")

	parser = prepareParser("(1, 2)")
	expr = parser.parseExpr()
	assert.Empty(t, parser.Errors())
	tuple, ok := expr.(*ast.TupleExpr)
	assert.True(t, ok)
	assert.Len(t, tuple.Elements, 2)
}

func TestParsePolynomialReference(t *testing.T) {
	parser := prepareParser("ns.a[2]'")
	expr := parser.parseExpr()
	assert.Empty(t, parser.Errors())

	ref, ok := expr.(*ast.PolynomialReference)
	assert.True(t, ok)
	assert.Equal(t, "ns", ref.Namespace)
	assert.Equal(t, "a", ref.Name)
	assert.NotNil(t, ref.Index)
	assert.True(t, ref.Next)

	parser = prepareParser("x")
	expr = parser.parseExpr()
	assert.Empty(t, parser.Errors())

	ref, ok = expr.(*ast.PolynomialReference)
	assert.True(t, ok)
	assert.Empty(t, ref.Namespace)
	assert.Equal(t, "x", ref.Name)
	assert.Nil(t, ref.Index)
	assert.False(t, ref.Next)
}

func TestParseConstantReference(t *testing.T) {
	parser := prepareParser("%N - 1")
	expr := parser.parseExpr()
	assert.Empty(t, parser.Errors())

	bin, ok := expr.(*ast.BinaryExpr)
	assert.True(t, ok)
	constant, ok := bin.Left.(*ast.ConstantExpr)
	assert.True(t, ok)
	assert.Equal(t, "N", constant.Name, "name should be stored without the %% prefix")
}

func TestParsePublicReference(t *testing.T) {
	parser := prepareParser(":out + 1")
	expr := parser.parseExpr()
	assert.Empty(t, parser.Errors())

	bin, ok := expr.(*ast.BinaryExpr)
	assert.True(t, ok)
	pub, ok := bin.Left.(*ast.PublicReference)
	assert.True(t, ok)
	assert.Equal(t, "out", pub.Name)
}

func TestParseFreeInput(t *testing.T) {
	parser := prepareParser(`${ ("input", A) }`)
	expr := parser.parseExpr()
	assert.Empty(t, parser.Errors())

	free, ok := expr.(*ast.FreeInputExpr)
	assert.True(t, ok)
	tuple, ok := free.Value.(*ast.TupleExpr)
	assert.True(t, ok)
	assert.Len(t, tuple.Elements, 2)
	str, ok := tuple.Elements[0].(*ast.StringExpr)
	assert.True(t, ok)
	assert.Equal(t, "input", str.Value)
}

func TestParseFunctionCallExpr(t *testing.T) {
	parser := prepareParser("ISLAST(a, b + 1)")
	expr := parser.parseExpr()
	assert.Empty(t, parser.Errors())

	call, ok := expr.(*ast.FunctionCallExpr)
	assert.True(t, ok)
	assert.Equal(t, "ISLAST", call.Name.Value)
	assert.Len(t, call.Args, 2)
}

func TestParseNestingLimit(t *testing.T) {
	var b []byte
	for i := 0; i < maxExprDepth+10; i++ {
		b = append(b, '(')
	}
	b = append(b, '1')
	for i := 0; i < maxExprDepth+10; i++ {
		b = append(b, ')')
	}

	parser := prepareParser(string(b))
	_ = parser.parseExpr()
	assert.NotEmpty(t, parser.Errors(), "deep nesting should be a syntax error")
}

func TestParseExprErrorPosition(t *testing.T) {
	parser := prepareParser("1 + ;")
	_ = parser.parseExpr()

	errs := parser.Errors()
	assert.NotEmpty(t, errs)
	assert.Equal(t, 1, errs[0].Position.Line)
	assert.Equal(t, 5, errs[0].Position.Column)
}

package lsp

import (
	"pil/internal/ast"
)

// SemanticToken represents a single LSP semantic token entry
// Line and StartChar are 0-based positions
// TokenType is an index into SemanticTokenTypes
// TokenModifiers is a bitmask based on SemanticTokenModifiers
type SemanticToken struct {
	Line           uint32
	StartChar      uint32
	Length         uint32
	TokenType      int // index into SemanticTokenTypes
	TokenModifiers int // bitmask
}

func collectPILTokens(file *ast.PILFile) []SemanticToken {
	var tokens []SemanticToken

	if file == nil {
		return tokens
	}

	for _, stmt := range file.Statements {
		tokens = append(tokens, walkStatement(stmt)...)
	}

	return tokens
}

func collectASMTokens(file *ast.ASMFile) []SemanticToken {
	var tokens []SemanticToken

	if file == nil {
		return tokens
	}

	for _, stmt := range file.Statements {
		tokens = append(tokens, walkASMStatement(stmt)...)
	}

	return tokens
}

func walkStatement(stmt ast.Statement) []SemanticToken {
	var tokens []SemanticToken

	if stmt == nil {
		return tokens
	}

	switch v := stmt.(type) {
	case *ast.Namespace:
		tokens = append(tokens, makeToken(v.Name.Pos, v.Name.EndPos, v.Name.Value, "namespace", 1)...)
		tokens = append(tokens, walkExpression(v.Degree)...)
	case *ast.ConstantDefinition:
		tokens = append(tokens, makeToken(v.Name.Pos, v.Name.EndPos, v.Name.Value, "variable", 1)...)
		tokens = append(tokens, walkExpression(v.Value)...)
	case *ast.PolynomialDefinition:
		tokens = append(tokens, makeToken(v.Name.Pos, v.Name.EndPos, v.Name.Value, "property", 1)...)
		tokens = append(tokens, walkExpression(v.Value)...)
	case *ast.PolynomialConstantDeclaration:
		tokens = append(tokens, walkPolynomialNames(v.Polynomials)...)
	case *ast.PolynomialConstantDefinition:
		tokens = append(tokens, makeToken(v.Name.Pos, v.Name.EndPos, v.Name.Value, "property", 1)...)
		tokens = append(tokens, walkFunctionDefinition(v.Definition)...)
	case *ast.PolynomialCommitDeclaration:
		tokens = append(tokens, walkPolynomialNames(v.Polynomials)...)
		tokens = append(tokens, walkFunctionDefinition(v.Definition)...)
	case *ast.PublicDeclaration:
		tokens = append(tokens, makeToken(v.Name.Pos, v.Name.EndPos, v.Name.Value, "variable", 1)...)
		tokens = append(tokens, walkExpression(v.Poly)...)
		tokens = append(tokens, walkExpression(v.Index)...)
	case *ast.PolynomialIdentity:
		tokens = append(tokens, walkExpression(v.Expression)...)
	case *ast.PlookupIdentity:
		tokens = append(tokens, walkSelected(v.Key)...)
		tokens = append(tokens, walkSelected(v.Haystack)...)
	case *ast.PermutationIdentity:
		tokens = append(tokens, walkSelected(v.Left)...)
		tokens = append(tokens, walkSelected(v.Right)...)
	case *ast.ConnectIdentity:
		for _, e := range v.Left {
			tokens = append(tokens, walkExpression(e)...)
		}
		for _, e := range v.Right {
			tokens = append(tokens, walkExpression(e)...)
		}
	case *ast.MacroDefinition:
		tokens = append(tokens, makeToken(v.Name.Pos, v.Name.EndPos, v.Name.Value, "macro", 1)...)
		for _, p := range v.Params {
			tokens = append(tokens, makeToken(p.Pos, p.EndPos, p.Value, "parameter", 0)...)
		}
		for _, s := range v.Statements {
			tokens = append(tokens, walkStatement(s)...)
		}
		if v.Expression != nil {
			tokens = append(tokens, walkExpression(v.Expression)...)
		}
	case *ast.FunctionCallStatement:
		tokens = append(tokens, makeToken(v.Name.Pos, v.Name.EndPos, v.Name.Value, "macro", 0)...)
		for _, a := range v.Args {
			tokens = append(tokens, walkExpression(a)...)
		}
	case *ast.Include:
		// The path is a plain string; nothing to highlight beyond what
		// the grammar-level highlighter already covers.
		return tokens
	}

	return tokens
}

func walkASMStatement(stmt ast.ASMStatement) []SemanticToken {
	var tokens []SemanticToken

	if stmt == nil {
		return tokens
	}

	switch v := stmt.(type) {
	case *ast.RegisterDeclaration:
		tokens = append(tokens, makeToken(v.Name.Pos, v.Name.EndPos, v.Name.Value, "variable", 1)...)
	case *ast.InstructionDeclaration:
		tokens = append(tokens, makeToken(v.Name.Pos, v.Name.EndPos, v.Name.Value, "function", 1)...)
		for _, p := range v.Params {
			tokens = append(tokens, makeToken(p.Name.Pos, p.Name.EndPos, p.Name.Value, "parameter", 0)...)
			if p.Type != nil {
				tokens = append(tokens, makeToken(p.Type.Pos, p.Type.EndPos, p.Type.Value, "type", 0)...)
			}
		}
		for _, el := range v.Body {
			tokens = append(tokens, walkBodyElement(el)...)
		}
	case *ast.InlinePilStatement:
		for _, s := range v.Statements {
			tokens = append(tokens, walkStatement(s)...)
		}
	case *ast.AssignmentStatement:
		for _, target := range v.Targets {
			tokens = append(tokens, makeToken(target.Pos, target.EndPos, target.Value, "variable", 0)...)
		}
		if v.Register != nil {
			tokens = append(tokens, makeToken(v.Register.Pos, v.Register.EndPos, v.Register.Value, "variable", 0)...)
		}
		tokens = append(tokens, walkExpression(v.Value)...)
	case *ast.InstructionStatement:
		tokens = append(tokens, makeToken(v.Name.Pos, v.Name.EndPos, v.Name.Value, "function", 0)...)
		for _, a := range v.Args {
			tokens = append(tokens, walkExpression(a)...)
		}
	case *ast.LabelStatement:
		tokens = append(tokens, makeToken(v.Name.Pos, v.Name.EndPos, v.Name.Value, "function", 1)...)
	}

	return tokens
}

func walkBodyElement(el ast.InstructionBodyElement) []SemanticToken {
	var tokens []SemanticToken

	switch v := el.(type) {
	case *ast.InstructionConstraint:
		tokens = append(tokens, walkExpression(v.Expression)...)
	case *ast.InstructionLookup:
		tokens = append(tokens, walkSelected(v.Key)...)
		tokens = append(tokens, walkSelected(v.Haystack)...)
	}

	return tokens
}

func walkPolynomialNames(names []ast.PolynomialName) []SemanticToken {
	var tokens []SemanticToken

	for i := range names {
		n := &names[i]
		tokens = append(tokens, makeToken(n.Name.Pos, n.Name.EndPos, n.Name.Value, "property", 1)...)
		if n.ArraySize != nil {
			tokens = append(tokens, walkExpression(n.ArraySize)...)
		}
	}

	return tokens
}

func walkFunctionDefinition(def ast.FunctionDefinition) []SemanticToken {
	var tokens []SemanticToken

	switch v := def.(type) {
	case *ast.MappingDefinition:
		for _, p := range v.Params {
			tokens = append(tokens, makeToken(p.Pos, p.EndPos, p.Value, "parameter", 0)...)
		}
		tokens = append(tokens, walkExpression(v.Body)...)
	case *ast.ArrayDefinition:
		for _, value := range v.Values {
			tokens = append(tokens, walkExpression(value)...)
		}
	case *ast.QueryDefinition:
		for _, p := range v.Params {
			tokens = append(tokens, makeToken(p.Pos, p.EndPos, p.Value, "parameter", 0)...)
		}
		tokens = append(tokens, walkExpression(v.Body)...)
	}

	return tokens
}

func walkSelected(sel *ast.SelectedExpressions) []SemanticToken {
	var tokens []SemanticToken

	if sel == nil {
		return tokens
	}

	if sel.Selector != nil {
		tokens = append(tokens, walkExpression(sel.Selector)...)
	}
	for _, e := range sel.Expressions {
		tokens = append(tokens, walkExpression(e)...)
	}

	return tokens
}

func walkExpression(expr ast.Expr) []SemanticToken {
	var tokens []SemanticToken

	if expr == nil {
		return tokens
	}

	switch v := expr.(type) {
	case *ast.PolynomialReference:
		tokens = append(tokens, makeToken(v.NodePos(), v.NodeEndPos(), v.Name, "property", 0)...)
	case *ast.ConstantExpr:
		tokens = append(tokens, makeToken(v.NodePos(), v.NodeEndPos(), "%"+v.Name, "variable", 0)...)
	case *ast.PublicReference:
		tokens = append(tokens, makeToken(v.NodePos(), v.NodeEndPos(), ":"+v.Name, "variable", 0)...)
	case *ast.FunctionCallExpr:
		tokens = append(tokens, makeToken(v.Name.Pos, v.Name.EndPos, v.Name.Value, "macro", 0)...)
		for _, arg := range v.Args {
			tokens = append(tokens, walkExpression(arg)...)
		}
	case *ast.BinaryExpr:
		tokens = append(tokens, walkExpression(v.Left)...)
		tokens = append(tokens, walkExpression(v.Right)...)
	case *ast.UnaryExpr:
		tokens = append(tokens, walkExpression(v.Value)...)
	case *ast.TupleExpr:
		for _, el := range v.Elements {
			tokens = append(tokens, walkExpression(el)...)
		}
	case *ast.FreeInputExpr:
		tokens = append(tokens, walkExpression(v.Value)...)
	case *ast.NumberExpr, *ast.StringExpr:
		// Literals are covered by grammar-level highlighting.
		return tokens
	}

	return tokens
}

// makeToken creates a semantic token for a given position and text
func makeToken(pos, endPos ast.Position, value, tokenType string, declModifier int) []SemanticToken {
	if value == "" {
		return nil
	}

	length := endPos.Column - pos.Column
	if length <= 0 {
		length = len(value)
	}

	return []SemanticToken{{
		Line:           uint32(pos.Line - 1),   // LSP uses 0-based line numbers
		StartChar:      uint32(pos.Column - 1), // LSP uses 0-based column numbers
		Length:         uint32(length),
		TokenType:      indexOf(tokenType, SemanticTokenTypes),
		TokenModifiers: declModifier << indexOf("declaration", SemanticTokenModifiers),
	}}
}

// indexOf returns the index of a string in a slice, or 0 if not found
func indexOf(target string, list []string) int {
	for i, v := range list {
		if v == target {
			return i
		}
	}
	return 0 // Default to first token type if not found
}

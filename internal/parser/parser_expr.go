package parser

import (
	"math/big"
	"strings"

	"pil/internal/ast"
)

// Binding powers, lowest first. Every tier associates to the left,
// including "**" — downstream consumers depend on 2 ** 3 ** 2 meaning
// (2 ** 3) ** 2.
var binaryPrecedence = map[TokenType]int{
	PIPE:      1,
	AMPERSAND: 2,
	LSHIFT:    3,
	RSHIFT:    3,
	PLUS:      4,
	MINUS:     4,
	STAR:      5,
	SLASH:     5,
	PERCENT:   5,
	STAR_STAR: 6,
}

// maxExprDepth bounds expression nesting so that pathological inputs
// (deeply parenthesized expressions, generated sources) fail with a
// syntax error instead of exhausting the goroutine stack.
const maxExprDepth = 512

func (p *Parser) parseExpr() ast.Expr {
	return p.parsePrattExpr(0)
}

func (p *Parser) parsePrattExpr(minPrec int) ast.Expr {
	if !p.enterExpr() {
		return p.badExpr("expression nesting too deep")
	}
	defer p.leaveExpr()

	expr := p.parsePrefixExpr()

	for {
		tok := p.peek()
		prec, ok := binaryPrecedence[tok.Type]
		if !ok || prec < minPrec {
			break
		}

		p.advance()
		right := p.parsePrattExpr(prec + 1)

		expr = &ast.BinaryExpr{
			Pos:    expr.NodePos(),
			EndPos: right.NodeEndPos(),
			Op:     tok.Lexeme,
			Left:   expr,
			Right:  right,
		}
	}

	return expr
}

func (p *Parser) parsePrefixExpr() ast.Expr {
	if p.match(MINUS, PLUS) {
		op := p.previous()
		if !p.enterExpr() {
			return p.badExpr("expression nesting too deep")
		}
		value := p.parsePrefixExpr()
		p.leaveExpr()
		return &ast.UnaryExpr{
			Pos:    p.makePos(op),
			EndPos: value.NodeEndPos(),
			Op:     op.Lexeme,
			Value:  value,
		}
	}

	return p.parsePrimaryExpr()
}

func (p *Parser) parsePrimaryExpr() ast.Expr {
	if p.match(NUMBER, HEX_NUMBER) {
		tok := p.previous()
		return &ast.NumberExpr{
			Pos:    p.makePos(tok),
			EndPos: p.makeEndPos(tok),
			Value:  p.numberValue(tok),
		}
	}

	if p.match(STRING) {
		tok := p.previous()
		return &ast.StringExpr{
			Pos:    p.makePos(tok),
			EndPos: p.makeEndPos(tok),
			Value:  tok.Lexeme,
		}
	}

	if p.match(CONSTANT_IDENTIFIER) {
		tok := p.previous()
		return &ast.ConstantExpr{
			Pos:    p.makePos(tok),
			EndPos: p.makeEndPos(tok),
			Name:   strings.TrimPrefix(tok.Lexeme, "%"),
		}
	}

	if p.match(COLON) {
		start := p.previous()
		name := p.consume(IDENTIFIER, "expected public name after ':'")
		return &ast.PublicReference{
			Pos:    p.makePos(start),
			EndPos: p.makeEndPos(name),
			Name:   name.Lexeme,
		}
	}

	if p.match(DOLLAR_BRACE) {
		start := p.previous()
		value := p.parseExpr()
		end := p.consume(RIGHT_BRACE, "expected '}' to close free input")
		return &ast.FreeInputExpr{
			Pos:    p.makePos(start),
			EndPos: p.makeEndPos(end),
			Value:  value,
		}
	}

	if p.match(IDENTIFIER) {
		start := p.previous()

		if p.check(LEFT_PAREN) {
			p.advance()
			args := p.parseExprList(RIGHT_PAREN)
			end := p.consume(RIGHT_PAREN, "expected ')' after arguments")
			return &ast.FunctionCallExpr{
				Pos:    p.makePos(start),
				EndPos: p.makeEndPos(end),
				Name:   p.makeIdent(start),
				Args:   args,
			}
		}

		return p.parsePolynomialReference(start)
	}

	if p.match(LEFT_PAREN) {
		return p.parseParenOrTuple(p.previous())
	}

	tok := p.peek()
	p.errorAtCurrent("unexpected token in expression")
	bad := &ast.BadExpr{
		Bad: ast.BadNode{
			Pos:     p.makePos(tok),
			EndPos:  p.makeEndPos(tok),
			Message: "unexpected token in expression: " + tok.Lexeme,
		},
	}
	p.advance()
	return bad
}

// parsePolynomialReference finishes a reference whose leading
// identifier has already been consumed: [ns .] name [ "[" expr "]" ] ["'"]
func (p *Parser) parsePolynomialReference(start Token) *ast.PolynomialReference {
	namespace := ""
	name := start.Lexeme
	end := p.makeEndPos(start)

	if p.match(DOT) {
		part := p.consume(IDENTIFIER, "expected name after '.'")
		namespace = name
		name = part.Lexeme
		end = p.makeEndPos(part)
	}

	var index ast.Expr
	if p.match(LEFT_BRACKET) {
		index = p.parseExpr()
		bracket := p.consume(RIGHT_BRACKET, "expected ']' after array index")
		end = p.makeEndPos(bracket)
	}

	next := false
	if p.match(PRIME) {
		next = true
		end = p.makeEndPos(p.previous())
	}

	return &ast.PolynomialReference{
		Pos:       p.makePos(start),
		EndPos:    end,
		Namespace: namespace,
		Name:      name,
		Index:     index,
		Next:      next,
	}
}

// parseParenOrTuple distinguishes grouping from tuple construction: a
// single parenthesized expression is just its inner expression, two or
// more comma-separated elements become a tuple.
func (p *Parser) parseParenOrTuple(open Token) ast.Expr {
	if p.check(RIGHT_PAREN) {
		p.errorAtCurrent("expected expression after '('")
		end := p.advance()
		return p.badExprAt(open, end, "empty parentheses")
	}

	first := p.parseExpr()

	if p.match(COMMA) {
		elements := []ast.Expr{first}
		for {
			elements = append(elements, p.parseExpr())
			if !p.match(COMMA) {
				break
			}
		}
		end := p.consume(RIGHT_PAREN, "expected ')' after tuple elements")
		return &ast.TupleExpr{
			Pos:      p.makePos(open),
			EndPos:   p.makeEndPos(end),
			Elements: elements,
		}
	}

	p.consume(RIGHT_PAREN, "expected ')'")
	return first
}

// parseExprList parses a comma-separated expression list stopping in
// front of the given terminator; the list may be empty.
func (p *Parser) parseExprList(terminator TokenType) []ast.Expr {
	var args []ast.Expr
	if p.check(terminator) {
		return args
	}

	for {
		args = append(args, p.parseExpr())
		if !p.match(COMMA) {
			break
		}
	}

	return args
}

// numberValue converts a NUMBER or HEX_NUMBER lexeme to an arbitrary
// precision integer. Underscore separators are stripped first.
func (p *Parser) numberValue(tok Token) *big.Int {
	text := strings.ReplaceAll(tok.Lexeme, "_", "")

	var value *big.Int
	var ok bool
	if tok.Type == HEX_NUMBER {
		value, ok = new(big.Int).SetString(text[2:], 16)
	} else {
		value, ok = new(big.Int).SetString(text, 10)
	}
	if !ok {
		p.errors = append(p.errors, ParseError{
			Message:  "invalid number literal '" + tok.Lexeme + "'",
			Position: tok.Position,
		})
		return big.NewInt(0)
	}
	return value
}

func (p *Parser) enterExpr() bool {
	if p.depth >= maxExprDepth {
		p.errorAtCurrent("expression nesting too deep")
		return false
	}
	p.depth++
	return true
}

func (p *Parser) leaveExpr() {
	p.depth--
}

func (p *Parser) badExpr(message string) *ast.BadExpr {
	tok := p.peek()
	return p.badExprAt(tok, tok, message)
}

func (p *Parser) badExprAt(start, end Token, message string) *ast.BadExpr {
	return &ast.BadExpr{
		Bad: ast.BadNode{
			Pos:     p.makePos(start),
			EndPos:  p.makeEndPos(end),
			Message: message,
		},
	}
}

package parser

import (
	"strings"

	"pil/internal/ast"
)

// ParsePILFile parses the token stream as a sequence of top-level PIL
// statements. Parsing stops at the first syntax error; callers must
// treat the returned file as invalid when Errors() is non-empty.
func (p *Parser) ParsePILFile() *ast.PILFile {
	file := &ast.PILFile{}

	for !p.isAtEnd() && !p.failed() {
		stmt := p.parseStatement()
		if stmt != nil {
			file.Statements = append(file.Statements, stmt)
		}
	}

	if len(file.Statements) > 0 {
		file.Pos = file.Statements[0].NodePos()
		file.EndPos = file.Statements[len(file.Statements)-1].NodeEndPos()
	}

	return file
}

func (p *Parser) parseStatement() ast.Statement {
	switch p.peek().Type {
	case INCLUDE:
		return p.parseInclude()
	case NAMESPACE:
		return p.parseNamespace()
	case CONSTANT:
		return p.parseConstantDefinition()
	case POL, COL:
		return p.parsePolynomialDeclaration()
	case PUBLIC:
		return p.parsePublicDeclaration()
	case MACRO:
		return p.parseMacroDefinition()
	case LEFT_BRACE:
		return p.parseBracedIdentity()
	default:
		first := p.parseExpr()
		return p.finishExpressionStatement(first)
	}
}

func (p *Parser) parseInclude() ast.Statement {
	start := p.advance()
	path := p.consume(STRING, "expected file path after 'include'")
	end := p.consume(SEMICOLON, "expected ';' after include")

	return &ast.Include{
		Pos:    p.makePos(start),
		EndPos: p.makeEndPos(end),
		Path:   path.Lexeme,
	}
}

func (p *Parser) parseNamespace() ast.Statement {
	start := p.advance()
	name, ok := p.consumeIdent("expected namespace name")
	if !ok {
		return nil
	}
	p.consume(LEFT_PAREN, "expected '(' after namespace name")
	degree := p.parseExpr()
	p.consume(RIGHT_PAREN, "expected ')' after namespace degree")
	end := p.consume(SEMICOLON, "expected ';' after namespace declaration")

	return &ast.Namespace{
		Pos:    p.makePos(start),
		EndPos: p.makeEndPos(end),
		Name:   name,
		Degree: degree,
	}
}

func (p *Parser) parseConstantDefinition() ast.Statement {
	start := p.advance()
	tok := p.consume(CONSTANT_IDENTIFIER, "expected %-prefixed constant name after 'constant'")
	if tok.Type == ILLEGAL {
		return nil
	}
	name := p.makeIdent(tok)
	name.Value = strings.TrimPrefix(name.Value, "%")

	p.consume(EQUAL, "expected '=' in constant definition")
	value := p.parseExpr()
	end := p.consume(SEMICOLON, "expected ';' after constant definition")

	return &ast.ConstantDefinition{
		Pos:    p.makePos(start),
		EndPos: p.makeEndPos(end),
		Name:   name,
		Value:  value,
	}
}

// parsePolynomialDeclaration dispatches the pol/col statement family:
// "pol constant"/"col fixed" declare fixed columns, "pol commit"/"col
// witness" declare witness columns, and a bare name defines an
// intermediate polynomial by expression.
func (p *Parser) parsePolynomialDeclaration() ast.Statement {
	start := p.advance() // 'pol' or 'col'

	if p.match(CONSTANT, FIXED) {
		return p.parseConstantPolynomial(start)
	}
	if p.match(COMMIT, WITNESS) {
		return p.parseCommitPolynomial(start)
	}

	name, ok := p.consumeIdent("expected polynomial name")
	if !ok {
		return nil
	}
	p.consume(EQUAL, "expected '=' in polynomial definition")
	value := p.parseExpr()
	end := p.consume(SEMICOLON, "expected ';' after polynomial definition")

	return &ast.PolynomialDefinition{
		Pos:    p.makePos(start),
		EndPos: p.makeEndPos(end),
		Name:   name,
		Value:  value,
	}
}

func (p *Parser) parseConstantPolynomial(start Token) ast.Statement {
	first := p.parsePolynomialName()

	// name(params) { expr } defines the column as a row mapping.
	if p.check(LEFT_PAREN) {
		if first.ArraySize != nil {
			p.errorAtCurrent("array size is not allowed on a defined column")
			return nil
		}
		p.advance()
		var params []ast.Ident
		if !p.check(RIGHT_PAREN) {
			params = p.parseIdentifierList()
		}
		p.consume(RIGHT_PAREN, "expected ')' after mapping parameters")
		open := p.consume(LEFT_BRACE, "expected '{' to start mapping body")
		body := p.parseExpr()
		closing := p.consume(RIGHT_BRACE, "expected '}' after mapping body")
		end := p.consume(SEMICOLON, "expected ';' after column definition")

		return &ast.PolynomialConstantDefinition{
			Pos:    p.makePos(start),
			EndPos: p.makeEndPos(end),
			Name:   first.Name,
			Definition: &ast.MappingDefinition{
				Pos:    p.makePos(open),
				EndPos: p.makeEndPos(closing),
				Params: params,
				Body:   body,
			},
		}
	}

	// name = [v, ...] defines the column by an explicit value array.
	if p.match(EQUAL) {
		if first.ArraySize != nil {
			p.errorAtCurrent("array size is not allowed on a defined column")
			return nil
		}
		open := p.consume(LEFT_BRACKET, "expected '[' to start column values")
		values := p.parseExprList(RIGHT_BRACKET)
		closing := p.consume(RIGHT_BRACKET, "expected ']' after column values")
		end := p.consume(SEMICOLON, "expected ';' after column definition")

		return &ast.PolynomialConstantDefinition{
			Pos:    p.makePos(start),
			EndPos: p.makeEndPos(end),
			Name:   first.Name,
			Definition: &ast.ArrayDefinition{
				Pos:    p.makePos(open),
				EndPos: p.makeEndPos(closing),
				Values: values,
			},
		}
	}

	names := []ast.PolynomialName{first}
	for p.match(COMMA) && !p.failed() {
		names = append(names, p.parsePolynomialName())
	}
	end := p.consume(SEMICOLON, "expected ';' after column declaration")

	return &ast.PolynomialConstantDeclaration{
		Pos:         p.makePos(start),
		EndPos:      p.makeEndPos(end),
		Polynomials: names,
	}
}

func (p *Parser) parseCommitPolynomial(start Token) ast.Statement {
	first := p.parsePolynomialName()

	// A query definition can only be attached when declaring exactly
	// one column: name(params) query expr.
	if p.check(LEFT_PAREN) {
		if first.ArraySize != nil {
			p.errorAtCurrent("array size is not allowed on a queried column")
			return nil
		}
		p.advance()
		var params []ast.Ident
		if !p.check(RIGHT_PAREN) {
			params = p.parseIdentifierList()
		}
		p.consume(RIGHT_PAREN, "expected ')' after query parameters")
		p.consume(QUERY, "expected 'query' after witness column parameters")
		body := p.parseExpr()
		end := p.consume(SEMICOLON, "expected ';' after witness column definition")

		return &ast.PolynomialCommitDeclaration{
			Pos:         p.makePos(start),
			EndPos:      p.makeEndPos(end),
			Polynomials: []ast.PolynomialName{first},
			Definition: &ast.QueryDefinition{
				Pos:    first.Pos,
				EndPos: body.NodeEndPos(),
				Params: params,
				Body:   body,
			},
		}
	}

	names := []ast.PolynomialName{first}
	for p.match(COMMA) && !p.failed() {
		names = append(names, p.parsePolynomialName())
	}
	end := p.consume(SEMICOLON, "expected ';' after witness column declaration")

	return &ast.PolynomialCommitDeclaration{
		Pos:         p.makePos(start),
		EndPos:      p.makeEndPos(end),
		Polynomials: names,
	}
}

func (p *Parser) parsePolynomialName() ast.PolynomialName {
	name, ok := p.consumeIdent("expected polynomial name")
	if !ok {
		return ast.PolynomialName{Name: name}
	}

	result := ast.PolynomialName{
		Pos:    name.Pos,
		EndPos: name.EndPos,
		Name:   name,
	}
	if p.match(LEFT_BRACKET) {
		result.ArraySize = p.parseExpr()
		closing := p.consume(RIGHT_BRACKET, "expected ']' after array size")
		result.EndPos = p.makeEndPos(closing)
	}

	return result
}

func (p *Parser) parsePublicDeclaration() ast.Statement {
	start := p.advance()
	name, ok := p.consumeIdent("expected public name")
	if !ok {
		return nil
	}
	p.consume(EQUAL, "expected '=' in public declaration")

	polyTok := p.consume(IDENTIFIER, "expected polynomial reference")
	if polyTok.Type == ILLEGAL {
		return nil
	}
	poly := p.parsePolynomialReference(polyTok)

	p.consume(LEFT_PAREN, "expected '(' before public row index")
	index := p.parseExpr()
	p.consume(RIGHT_PAREN, "expected ')' after public row index")
	end := p.consume(SEMICOLON, "expected ';' after public declaration")

	return &ast.PublicDeclaration{
		Pos:    p.makePos(start),
		EndPos: p.makeEndPos(end),
		Name:   name,
		Poly:   poly,
		Index:  index,
	}
}

func (p *Parser) parseMacroDefinition() ast.Statement {
	start := p.advance()
	name, ok := p.consumeIdent("expected macro name")
	if !ok {
		return nil
	}

	p.consume(LEFT_PAREN, "expected '(' after macro name")
	var params []ast.Ident
	if !p.check(RIGHT_PAREN) {
		params = p.parseIdentifierList()
	}
	p.consume(RIGHT_PAREN, "expected ')' after macro parameters")
	p.consume(LEFT_BRACE, "expected '{' to start macro body")

	var statements []ast.Statement
	var tail ast.Expr
	for !p.check(RIGHT_BRACE) && !p.isAtEnd() && !p.failed() {
		stmt, expr := p.parseMacroBodyItem()
		if expr != nil {
			tail = expr
			break
		}
		if stmt != nil {
			statements = append(statements, stmt)
		}
	}

	p.consume(RIGHT_BRACE, "expected '}' to close macro body")
	end := p.consume(SEMICOLON, "expected ';' after macro definition")

	return &ast.MacroDefinition{
		Pos:        p.makePos(start),
		EndPos:     p.makeEndPos(end),
		Name:       name,
		Params:     params,
		Statements: statements,
		Expression: tail,
	}
}

// parseMacroBodyItem parses one macro body element. An expression
// immediately followed by the closing brace is the macro's tail
// expression rather than a statement.
func (p *Parser) parseMacroBodyItem() (ast.Statement, ast.Expr) {
	switch p.peek().Type {
	case INCLUDE, NAMESPACE, CONSTANT, POL, COL, PUBLIC, MACRO:
		return p.parseStatement(), nil
	case LEFT_BRACE:
		return p.parseBracedIdentity(), nil
	}

	first := p.parseExpr()
	if p.check(RIGHT_BRACE) {
		return nil, first
	}
	return p.finishExpressionStatement(first), nil
}

// parseBracedIdentity parses statements that start with a braced
// expression list: lookups, permutations and connect identities.
func (p *Parser) parseBracedIdentity() ast.Statement {
	start := p.peek()
	left := p.parseSelectedExpressions()

	switch {
	case p.match(IN):
		right := p.parseSelectedExpressions()
		end := p.consume(SEMICOLON, "expected ';' after lookup identity")
		return &ast.PlookupIdentity{
			Pos:      p.makePos(start),
			EndPos:   p.makeEndPos(end),
			Key:      left,
			Haystack: right,
		}
	case p.match(IS):
		right := p.parseSelectedExpressions()
		end := p.consume(SEMICOLON, "expected ';' after permutation identity")
		return &ast.PermutationIdentity{
			Pos:    p.makePos(start),
			EndPos: p.makeEndPos(end),
			Left:   left,
			Right:  right,
		}
	case p.match(CONNECT):
		right := p.parseBracedExpressionList()
		end := p.consume(SEMICOLON, "expected ';' after connect identity")
		return &ast.ConnectIdentity{
			Pos:    p.makePos(start),
			EndPos: p.makeEndPos(end),
			Left:   left.Expressions,
			Right:  right,
		}
	default:
		p.errorAtCurrent("expected 'in', 'is' or 'connect' after expression list")
		return nil
	}
}

// finishExpressionStatement completes a statement whose leading
// expression has already been parsed.
func (p *Parser) finishExpressionStatement(first ast.Expr) ast.Statement {
	switch {
	case p.match(EQUAL):
		// lhs = rhs is normalized to the single expression lhs - rhs;
		// downstream stages expect identities in "expression == 0" form.
		rhs := p.parseExpr()
		end := p.consume(SEMICOLON, "expected ';' after polynomial identity")
		return &ast.PolynomialIdentity{
			Pos:    first.NodePos(),
			EndPos: p.makeEndPos(end),
			Expression: &ast.BinaryExpr{
				Pos:    first.NodePos(),
				EndPos: rhs.NodeEndPos(),
				Op:     "-",
				Left:   first,
				Right:  rhs,
			},
		}

	case p.check(LEFT_BRACE):
		// The expression is a selector: sel {exprs} in/is ...
		left := p.finishSelectedExpressions(first)
		switch {
		case p.match(IN):
			right := p.parseSelectedExpressions()
			end := p.consume(SEMICOLON, "expected ';' after lookup identity")
			return &ast.PlookupIdentity{
				Pos:      first.NodePos(),
				EndPos:   p.makeEndPos(end),
				Key:      left,
				Haystack: right,
			}
		case p.match(IS):
			right := p.parseSelectedExpressions()
			end := p.consume(SEMICOLON, "expected ';' after permutation identity")
			return &ast.PermutationIdentity{
				Pos:    first.NodePos(),
				EndPos: p.makeEndPos(end),
				Left:   left,
				Right:  right,
			}
		default:
			p.errorAtCurrent("expected 'in' or 'is' after selected expressions")
			return nil
		}

	case p.match(IN):
		right := p.parseSelectedExpressions()
		end := p.consume(SEMICOLON, "expected ';' after lookup identity")
		return &ast.PlookupIdentity{
			Pos:      first.NodePos(),
			EndPos:   p.makeEndPos(end),
			Key:      bareSelected(first),
			Haystack: right,
		}

	case p.match(IS):
		right := p.parseSelectedExpressions()
		end := p.consume(SEMICOLON, "expected ';' after permutation identity")
		return &ast.PermutationIdentity{
			Pos:    first.NodePos(),
			EndPos: p.makeEndPos(end),
			Left:   bareSelected(first),
			Right:  right,
		}

	case p.check(SEMICOLON):
		end := p.advance()
		call, ok := first.(*ast.FunctionCallExpr)
		if !ok {
			p.errors = append(p.errors, ParseError{
				Message:  "only function calls may stand alone as statements",
				Position: Position{Line: first.NodePos().Line, Column: first.NodePos().Column, Offset: first.NodePos().Offset},
			})
			return nil
		}
		return &ast.FunctionCallStatement{
			Pos:    first.NodePos(),
			EndPos: p.makeEndPos(end),
			Name:   call.Name,
			Args:   call.Args,
		}

	default:
		p.errorAtCurrent("expected '=', 'in', 'is' or ';' after expression")
		return nil
	}
}

// parseSelectedExpressions parses [selector] { exprs } with the bare
// expression sugar: an unbraced expression stands for a nil selector
// and a single-element list.
func (p *Parser) parseSelectedExpressions() *ast.SelectedExpressions {
	if p.check(LEFT_BRACE) {
		start := p.peek()
		exprs := p.parseBracedExpressionList()
		return &ast.SelectedExpressions{
			Pos:         p.makePos(start),
			EndPos:      p.makeEndPos(p.previous()),
			Expressions: exprs,
		}
	}

	first := p.parseExpr()
	if p.check(LEFT_BRACE) {
		return p.finishSelectedExpressions(first)
	}
	return bareSelected(first)
}

// finishSelectedExpressions attaches an already parsed selector to the
// braced expression list that follows it.
func (p *Parser) finishSelectedExpressions(selector ast.Expr) *ast.SelectedExpressions {
	exprs := p.parseBracedExpressionList()
	return &ast.SelectedExpressions{
		Pos:         selector.NodePos(),
		EndPos:      p.makeEndPos(p.previous()),
		Selector:    selector,
		Expressions: exprs,
	}
}

func (p *Parser) parseBracedExpressionList() []ast.Expr {
	p.consume(LEFT_BRACE, "expected '{' to start expression list")
	exprs := p.parseExprList(RIGHT_BRACE)
	p.consume(RIGHT_BRACE, "expected '}' after expression list")
	return exprs
}

func bareSelected(expr ast.Expr) *ast.SelectedExpressions {
	return &ast.SelectedExpressions{
		Pos:         expr.NodePos(),
		EndPos:      expr.NodeEndPos(),
		Expressions: []ast.Expr{expr},
	}
}

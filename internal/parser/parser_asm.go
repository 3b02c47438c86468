package parser

import "pil/internal/ast"

// ParseASMFile parses the token stream as a sequence of ASM statements.
// Like ParsePILFile, parsing stops at the first syntax error.
func (p *Parser) ParseASMFile() *ast.ASMFile {
	file := &ast.ASMFile{}

	for !p.isAtEnd() && !p.failed() {
		stmt := p.parseASMStatement()
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

func (p *Parser) parseASMStatement() ast.ASMStatement {
	switch p.peek().Type {
	case REG:
		return p.parseRegisterDeclaration()
	case INSTR:
		return p.parseInstructionDeclaration()
	case PIL_BRACE:
		return p.parseInlinePil()
	case IDENTIFIER:
		return p.parseASMIdentifierStatement()
	default:
		p.errorAtCurrent("expected ASM statement")
		p.advance()
		return nil
	}
}

func (p *Parser) parseRegisterDeclaration() ast.ASMStatement {
	start := p.advance()
	name, ok := p.consumeIdent("expected register name")
	if !ok {
		return nil
	}

	flag := ast.NoFlag
	if p.match(LEFT_BRACKET) {
		if p.match(AT_PC) {
			flag = ast.IsPC
		} else if p.match(LESS_EQUAL) {
			flag = ast.IsAssignment
		} else {
			p.errorAtCurrent("expected '@pc' or '<=' as register flag")
			return nil
		}
		p.consume(RIGHT_BRACKET, "expected ']' after register flag")
	}
	end := p.consume(SEMICOLON, "expected ';' after register declaration")

	return &ast.RegisterDeclaration{
		Pos:    p.makePos(start),
		EndPos: p.makeEndPos(end),
		Name:   name,
		Flag:   flag,
	}
}

func (p *Parser) parseInstructionDeclaration() ast.ASMStatement {
	start := p.advance()
	name, ok := p.consumeIdent("expected instruction name")
	if !ok {
		return nil
	}

	var params []*ast.InstructionParam
	for !p.check(LEFT_BRACE) && !p.isAtEnd() && !p.failed() {
		params = append(params, p.parseInstructionParam())
		if !p.match(COMMA) {
			break
		}
	}

	p.consume(LEFT_BRACE, "expected '{' to start instruction body")
	var body []ast.InstructionBodyElement
	for !p.check(RIGHT_BRACE) && !p.isAtEnd() && !p.failed() {
		el := p.parseInstructionBodyElement()
		if el != nil {
			body = append(body, el)
		}
		if !p.match(COMMA) {
			break
		}
	}
	end := p.consume(RIGHT_BRACE, "expected '}' to close instruction body")

	return &ast.InstructionDeclaration{
		Pos:    p.makePos(start),
		EndPos: p.makeEndPos(end),
		Name:   name,
		Params: params,
		Body:   body,
	}
}

// parseInstructionParam parses one instruction parameter with its
// optional read-side and write-side assignment register markers:
// [<=reg=] name [: type] [<=reg=]
func (p *Parser) parseInstructionParam() *ast.InstructionParam {
	var assignIn *ast.AssignmentMarker
	if p.check(LESS_EQUAL) {
		assignIn = p.parseAssignmentMarker()
	}

	name, ok := p.consumeIdent("expected parameter name")
	if !ok {
		return &ast.InstructionParam{Name: name}
	}

	var paramType *ast.Ident
	if p.match(COLON) {
		t, ok := p.consumeIdent("expected parameter type")
		if ok {
			paramType = &t
		}
	}

	var assignOut *ast.AssignmentMarker
	if p.check(LESS_EQUAL) {
		assignOut = p.parseAssignmentMarker()
	}

	param := &ast.InstructionParam{
		Pos:       name.Pos,
		EndPos:    name.EndPos,
		Name:      name,
		Type:      paramType,
		AssignIn:  assignIn,
		AssignOut: assignOut,
	}
	if assignIn != nil {
		param.Pos = assignIn.Pos
	}
	if assignOut != nil {
		param.EndPos = assignOut.EndPos
	} else if paramType != nil {
		param.EndPos = paramType.EndPos
	}

	return param
}

// parseAssignmentMarker parses "<=" [register] "=".
func (p *Parser) parseAssignmentMarker() *ast.AssignmentMarker {
	start := p.consume(LESS_EQUAL, "expected '<='")

	var register *ast.Ident
	if p.check(IDENTIFIER) {
		id := p.makeIdent(p.advance())
		register = &id
	}
	end := p.consume(EQUAL, "expected '=' to close assignment marker")

	return &ast.AssignmentMarker{
		Pos:      p.makePos(start),
		EndPos:   p.makeEndPos(end),
		Register: register,
	}
}

// parseInstructionBodyElement parses one comma-separated element of an
// instruction body: an equality constraint or an in/is sub-identity.
// Connect identities are rejected here; they have no selector and the
// instruction flag could not be attached to them.
func (p *Parser) parseInstructionBodyElement() ast.InstructionBodyElement {
	if p.check(LEFT_BRACE) {
		left := p.parseSelectedExpressions()
		return p.finishInstructionLookup(left)
	}

	first := p.parseExpr()

	switch {
	case p.match(EQUAL):
		rhs := p.parseExpr()
		return &ast.InstructionConstraint{
			Pos:    first.NodePos(),
			EndPos: rhs.NodeEndPos(),
			Expression: &ast.BinaryExpr{
				Pos:    first.NodePos(),
				EndPos: rhs.NodeEndPos(),
				Op:     "-",
				Left:   first,
				Right:  rhs,
			},
		}
	case p.check(LEFT_BRACE):
		return p.finishInstructionLookup(p.finishSelectedExpressions(first))
	case p.check(IN), p.check(IS):
		return p.finishInstructionLookup(bareSelected(first))
	default:
		p.errorAtCurrent("expected '=', 'in' or 'is' in instruction body")
		return nil
	}
}

func (p *Parser) finishInstructionLookup(left *ast.SelectedExpressions) ast.InstructionBodyElement {
	if p.check(CONNECT) {
		p.errorAtCurrent("'connect' is not allowed in an instruction body")
		return nil
	}
	if !p.check(IN) && !p.check(IS) {
		p.errorAtCurrent("expected 'in' or 'is' after expression list")
		return nil
	}

	op := p.advance()
	right := p.parseSelectedExpressions()

	return &ast.InstructionLookup{
		Pos:      left.Pos,
		EndPos:   right.EndPos,
		Key:      left,
		Op:       op.Lexeme,
		Haystack: right,
	}
}

func (p *Parser) parseInlinePil() ast.ASMStatement {
	start := p.advance() // 'pil{'

	var statements []ast.Statement
	for !p.check(RIGHT_BRACE) && !p.isAtEnd() && !p.failed() {
		stmt := p.parseStatement()
		if stmt != nil {
			statements = append(statements, stmt)
		}
	}
	end := p.consume(RIGHT_BRACE, "expected '}' to close pil block")

	return &ast.InlinePilStatement{
		Pos:        p.makePos(start),
		EndPos:     p.makeEndPos(end),
		Statements: statements,
	}
}

// parseASMIdentifierStatement disambiguates the statements that start
// with a bare identifier: labels, assignments and instruction
// invocations.
func (p *Parser) parseASMIdentifierStatement() ast.ASMStatement {
	start := p.advance()

	if p.match(DOUBLE_COLON) {
		return &ast.LabelStatement{
			Pos:    p.makePos(start),
			EndPos: p.makeEndPos(p.previous()),
			Name:   p.makeIdent(start),
		}
	}

	// A comma or "<=" after the leading identifier means an
	// assignment; instruction arguments begin directly after the name.
	if p.check(LESS_EQUAL) || p.check(COMMA) {
		targets := []ast.Ident{p.makeIdent(start)}
		for p.match(COMMA) {
			target, ok := p.consumeIdent("expected assignment target")
			if !ok {
				return nil
			}
			targets = append(targets, target)
		}

		marker := p.parseAssignmentMarker()
		value := p.parseExpr()
		end := p.consume(SEMICOLON, "expected ';' after assignment")

		return &ast.AssignmentStatement{
			Pos:      p.makePos(start),
			EndPos:   p.makeEndPos(end),
			Targets:  targets,
			Register: marker.Register,
			Value:    value,
		}
	}

	var args []ast.Expr
	if !p.check(SEMICOLON) {
		for {
			args = append(args, p.parseExpr())
			if !p.match(COMMA) {
				break
			}
		}
	}
	end := p.consume(SEMICOLON, "expected ';' after instruction")

	return &ast.InstructionStatement{
		Pos:    p.makePos(start),
		EndPos: p.makeEndPos(end),
		Name:   p.makeIdent(start),
		Args:   args,
	}
}

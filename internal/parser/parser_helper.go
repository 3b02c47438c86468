package parser

import "pil/internal/ast"

// Parser consumes a token stream produced by the Scanner. It owns a
// private cursor and error list; a single Parser serves one parse call.
type Parser struct {
	filename string
	tokens   []Token
	current  int
	errors   []ParseError
	depth    int
}

type ParseError struct {
	Message  string
	Position Position
}

func NewParser(filename string, tokens []Token) *Parser {
	return &Parser{
		filename: filename,
		tokens:   tokens,
	}
}

// Errors returns the syntax errors collected so far.
func (p *Parser) Errors() []ParseError {
	return p.errors
}

func (p *Parser) advance() Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(tt TokenType) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Type == tt
}

func (p *Parser) match(types ...TokenType) bool {
	for _, tt := range types {
		if p.check(tt) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) consume(tt TokenType, message string) Token {
	if p.check(tt) {
		return p.advance()
	}
	p.errorAtCurrent(message)
	illegal := Token{Type: ILLEGAL, Position: p.peek().Position}
	p.advance()
	return illegal
}

func (p *Parser) peek() Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() Token {
	return p.tokens[p.current-1]
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Type == EOF
}

// failed reports whether any syntax error has been recorded. There is
// no error recovery: every parsing loop stops as soon as this is true
// and the entry points discard the partial tree.
func (p *Parser) failed() bool {
	return len(p.errors) > 0
}

func (p *Parser) errorAtCurrent(message string) {
	pos := p.peek().Position
	found := p.peek().Lexeme
	if p.isAtEnd() {
		found = "end of input"
	} else if found == "" {
		found = "token"
	}
	p.errors = append(p.errors, ParseError{
		Message:  message + ", got '" + found + "'",
		Position: pos,
	})
}

func (p *Parser) makePos(tok Token) ast.Position {
	return ast.Position{
		Filename: p.filename,
		Offset:   tok.Position.Offset,
		Line:     tok.Position.Line,
		Column:   tok.Position.Column,
	}
}

func (p *Parser) makeEndPos(tok Token) ast.Position {
	return ast.Position{
		Filename: p.filename,
		Offset:   tok.Position.Offset + len(tok.Lexeme),
		Line:     tok.Position.Line,
		Column:   tok.Position.Column + len(tok.Lexeme),
	}
}

// makeIdent creates an ast.Ident from a token
func (p *Parser) makeIdent(tok Token) ast.Ident {
	return ast.Ident{
		Pos:    p.makePos(tok),
		EndPos: p.makeEndPos(tok),
		Value:  tok.Lexeme,
	}
}

// consumeIdent consumes an identifier token and returns an ast.Ident
func (p *Parser) consumeIdent(message string) (ast.Ident, bool) {
	tok := p.consume(IDENTIFIER, message)
	if tok.Type == ILLEGAL {
		return ast.Ident{Value: "error"}, false
	}
	return p.makeIdent(tok), true
}

// parseIdentifierList parses a comma-separated list of identifiers
func (p *Parser) parseIdentifierList() []ast.Ident {
	var idents []ast.Ident

	for !p.isAtEnd() {
		ident, ok := p.consumeIdent("expected identifier")
		if !ok {
			break
		}
		idents = append(idents, ident)

		if !p.match(COMMA) {
			break
		}
	}

	return idents
}

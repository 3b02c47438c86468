package parser

import (
	"fmt"
	"unicode"
)

type Token struct {
	Type     TokenType
	Lexeme   string
	Position Position
}

type Scanner struct {
	source      string
	tokens      []Token
	start       int
	current     int
	line        int
	startLine   int
	startColumn int
	column      int
	errors      []ScanError
}

type ScanError struct {
	Message  string
	Position Position // line, column, offset
	Length   int      // how many characters it covers
}

func NewScanner(source string) *Scanner {
	return &Scanner{
		source: source,
		line:   1,
		column: 1,
	}
}

func (s *Scanner) ScanTokens() []Token {
	for !s.isAtEnd() {
		s.start = s.current
		s.startColumn = s.column
		s.startLine = s.line
		s.scanToken()
	}
	s.tokens = append(s.tokens, Token{Type: EOF, Position: Position{Line: s.line, Column: s.column, Offset: s.current}})
	return s.tokens
}

// Errors returns the lexical errors collected while scanning.
func (s *Scanner) Errors() []ScanError {
	return s.errors
}

func (s *Scanner) scanToken() {
	c := s.advance()
	switch c {
	// Simple single-character tokens
	case '(':
		s.addToken(LEFT_PAREN)
	case ')':
		s.addToken(RIGHT_PAREN)
	case '{':
		s.addToken(LEFT_BRACE)
	case '}':
		s.addToken(RIGHT_BRACE)
	case '[':
		s.addToken(LEFT_BRACKET)
	case ']':
		s.addToken(RIGHT_BRACKET)
	case ',':
		s.addToken(COMMA)
	case '.':
		s.addToken(DOT)
	case ';':
		s.addToken(SEMICOLON)
	case '+':
		s.addToken(PLUS)
	case '-':
		s.addToken(MINUS)
	case '=':
		s.addToken(EQUAL)
	case '&':
		s.addToken(AMPERSAND)
	case '|':
		s.addToken(PIPE)
	case '\'':
		s.addToken(PRIME)

	// Operators with multi-character variants
	case '*':
		s.scanStarOperator()
	case '/':
		s.scanSlashOperator()
	case ':':
		s.scanColonOperator()
	case '<':
		s.scanLessOperator()
	case '>':
		s.scanGreaterOperator()
	case '%':
		s.scanPercent()
	case '$':
		s.scanDollar()
	case '@':
		s.scanAt()

	// Whitespace (ignored)
	case ' ', '\r', '\t':
		// Ignore whitespace
	case '\n':
		// Handled in advance()

	// String literals
	case '"':
		s.scanString()

	default:
		s.scanDefault(c)
	}
}

func (s *Scanner) scanStarOperator() {
	if s.matchNext('*') {
		s.addToken(STAR_STAR)
	} else {
		s.addToken(STAR)
	}
}

func (s *Scanner) scanSlashOperator() {
	if s.matchNext('/') {
		s.scanSingleLineComment()
	} else if s.matchNext('*') {
		s.scanBlockComment()
	} else {
		s.addToken(SLASH)
	}
}

func (s *Scanner) scanColonOperator() {
	if s.matchNext(':') {
		s.addToken(DOUBLE_COLON)
	} else {
		s.addToken(COLON)
	}
}

func (s *Scanner) scanLessOperator() {
	if s.matchNext('<') {
		s.addToken(LSHIFT)
	} else if s.matchNext('=') {
		s.addToken(LESS_EQUAL)
	} else {
		s.reportError("Unexpected character: '<'")
	}
}

func (s *Scanner) scanGreaterOperator() {
	if s.matchNext('>') {
		s.addToken(RSHIFT)
	} else {
		s.reportError("Unexpected character: '>'")
	}
}

// scanPercent distinguishes a constant identifier such as %N from the
// binary modulo operator. A '%' immediately followed by an identifier
// character is always a constant reference.
func (s *Scanner) scanPercent() {
	if !isAlpha(s.peek()) {
		s.addToken(PERCENT)
		return
	}
	for isIdentChar(s.peek()) {
		s.advance()
	}
	s.addToken(CONSTANT_IDENTIFIER)
}

func (s *Scanner) scanDollar() {
	if s.matchNext('{') {
		s.addToken(DOLLAR_BRACE)
	} else {
		s.reportError("Unexpected character: '$' (expected '${')")
	}
}

func (s *Scanner) scanAt() {
	if s.matchNext('p') && s.matchNext('c') {
		s.addToken(AT_PC)
	} else {
		s.reportError("Unexpected character: '@' (expected '@pc')")
	}
}

func (s *Scanner) scanDefault(c byte) {
	if isDigit(c) {
		s.scanNumber(c)
	} else if isAlpha(c) {
		s.scanIdentifier()
	} else {
		s.reportError(fmt.Sprintf("Unexpected character: %q", c))
	}
}

func (s *Scanner) advance() byte {
	c := s.source[s.current]
	s.current++
	if c == '\n' {
		s.line++
		s.column = 1
	} else {
		s.column++
	}
	return c
}

func (s *Scanner) matchNext(expected byte) bool {
	if s.isAtEnd() || s.source[s.current] != expected {
		return false
	}
	s.advance()
	return true
}

func (s *Scanner) peek() byte {
	if s.isAtEnd() {
		return 0
	}
	return s.source[s.current]
}

func (s *Scanner) addToken(tokenType TokenType) {
	text := s.source[s.start:s.current]
	s.tokens = append(s.tokens, Token{
		Type:   tokenType,
		Lexeme: text,
		Position: Position{
			Line:   s.startLine,
			Column: s.startColumn,
			Offset: s.start,
		},
	})
}

func (s *Scanner) reportError(message string) {
	s.errors = append(s.errors, ScanError{
		Message:  message,
		Position: Position{Line: s.startLine, Column: s.startColumn, Offset: s.start},
		Length:   s.current - s.start,
	})
}

func (s *Scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}

// Helper functions.

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isAlpha(c byte) bool {
	return unicode.IsLetter(rune(c)) || c == '_'
}

func isIdentChar(c byte) bool {
	return isAlpha(c) || isDigit(c) || c == '$'
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') ||
		('a' <= c && c <= 'f') ||
		('A' <= c && c <= 'F')
}

func (s *Scanner) scanIdentifier() {
	for isIdentChar(s.peek()) {
		s.advance()
	}
	text := s.source[s.start:s.current]

	// "pil" immediately followed by '{' is the composite keyword
	// opening an inline PIL block.
	if text == "pil" && s.peek() == '{' {
		s.advance()
		s.addToken(PIL_BRACE)
		return
	}

	s.addToken(lookupIdentifier(text))
}

// scanNumber scans a decimal or hex literal. Underscores are legal
// separators in both forms; they stay in the lexeme and are stripped
// during value conversion.
func (s *Scanner) scanNumber(first byte) {
	if first == '0' && (s.peek() == 'x' || s.peek() == 'X') {
		s.advance()
		if !isHexDigit(s.peek()) && s.peek() != '_' {
			s.reportError("Invalid hex literal: expected hex digit after 0x")
			return
		}
		for isHexDigit(s.peek()) || s.peek() == '_' {
			s.advance()
		}
		s.addToken(HEX_NUMBER)
	} else {
		for isDigit(s.peek()) || s.peek() == '_' {
			s.advance()
		}
		s.addToken(NUMBER)
	}
}

// scanString scans a double-quoted literal. No escape sequences exist;
// the token lexeme is the raw text between the quotes.
func (s *Scanner) scanString() {
	for s.peek() != '"' && !s.isAtEnd() {
		s.advance()
	}
	if s.isAtEnd() {
		s.reportError("Unterminated string.")
		return
	}
	s.advance()
	value := s.source[s.start+1 : s.current-1]
	s.tokens = append(s.tokens, Token{Type: STRING, Lexeme: value, Position: Position{
		Line: s.startLine, Column: s.startColumn, Offset: s.start},
	})
}

func lookupIdentifier(text string) TokenType {
	if t, ok := KEYWORDS[text]; ok {
		return t
	}
	return IDENTIFIER
}

// Comments produce no tokens; neither parser consumes them.

func (s *Scanner) scanSingleLineComment() {
	for s.peek() != '\n' && !s.isAtEnd() {
		s.advance()
	}
}

func (s *Scanner) scanBlockComment() {
	for !s.isAtEnd() {
		if s.peek() == '*' && s.peekNext() == '/' {
			s.advance() // *
			s.advance() // /
			return
		}
		s.advance()
	}
	s.reportError("Unterminated block comment.")
}

func (s *Scanner) peekNext() byte {
	if s.current+1 >= len(s.source) {
		return 0
	}
	return s.source[s.current+1]
}

package parser

import (
	"testing"
)

func TestKeywordsAndIdentifiers(t *testing.T) {
	input := "include namespace constant fixed pol col public commit witness query in is connect macro reg instr customIdent"
	expected := []TokenType{
		INCLUDE, NAMESPACE, CONSTANT, FIXED, POL, COL, PUBLIC, COMMIT,
		WITNESS, QUERY, IN, IS, CONNECT, MACRO, REG, INSTR, IDENTIFIER,
	}

	scanner := NewScanner(input)
	tokens := scanner.ScanTokens()

	if len(tokens) < len(expected) {
		t.Fatalf("expected at least %d tokens, got %d", len(expected), len(tokens))
	}

	for i, exp := range expected {
		if tokens[i].Type != exp {
			t.Errorf("expected %s, got %s", exp, tokens[i].Type)
		}
	}
}

func TestNumbers(t *testing.T) {
	input := "42 0 12345 16_777_216 0x0 0x1F 0xABC 0xFFFF_FFFF"
	expected := []TokenType{
		NUMBER, NUMBER, NUMBER, NUMBER,
		HEX_NUMBER, HEX_NUMBER, HEX_NUMBER, HEX_NUMBER,
	}

	scanner := NewScanner(input)
	tokens := scanner.ScanTokens()

	if len(tokens) < len(expected) {
		t.Fatalf("expected at least %d tokens, got %d", len(expected), len(tokens))
	}

	for i, exp := range expected {
		if tokens[i].Type != exp {
			t.Errorf("expected %s, got %s", exp, tokens[i].Type)
		}
	}
}

func TestStrings(t *testing.T) {
	input := `"hello" "world"`
	scanner := NewScanner(input)
	tokens := scanner.ScanTokens()

	if tokens[0].Type != STRING || tokens[0].Lexeme != "hello" {
		t.Errorf("expected STRING 'hello', got %s %s", tokens[0].Type, tokens[0].Lexeme)
	}
	if tokens[1].Type != STRING || tokens[1].Lexeme != "world" {
		t.Errorf("expected STRING 'world', got %s %s", tokens[1].Type, tokens[1].Lexeme)
	}
}

func TestOperatorsAndBrackets(t *testing.T) {
	input := `( ) { } , . ; + - * / ** % & | << >> = ' <= : :: [ ]`
	expected := []TokenType{
		LEFT_PAREN, RIGHT_PAREN, LEFT_BRACE, RIGHT_BRACE, COMMA, DOT,
		SEMICOLON, PLUS, MINUS, STAR, SLASH, STAR_STAR, PERCENT,
		AMPERSAND, PIPE, LSHIFT, RSHIFT, EQUAL, PRIME, LESS_EQUAL,
		COLON, DOUBLE_COLON, LEFT_BRACKET, RIGHT_BRACKET,
	}
	expectedLexemes := []string{
		"(", ")", "{", "}", ",", ".", ";", "+", "-", "*", "/", "**", "%",
		"&", "|", "<<", ">>", "=", "'", "<=", ":", "::", "[", "]",
	}

	scanner := NewScanner(input)
	tokens := scanner.ScanTokens()

	if len(tokens) < len(expected) {
		t.Fatalf("expected at least %d tokens, got %d", len(expected), len(tokens))
	}

	for i, exp := range expected {
		if tokens[i].Type != exp {
			t.Errorf("expected %s, got %s", exp, tokens[i].Type)
		}
		if tokens[i].Lexeme != expectedLexemes[i] {
			t.Errorf("expected lexeme '%s', got '%s'", expectedLexemes[i], tokens[i].Lexeme)
		}
	}
}

func TestConstantIdentifier(t *testing.T) {
	input := "%N %ROW_MAX 5 % 2"
	scanner := NewScanner(input)
	tokens := scanner.ScanTokens()

	if tokens[0].Type != CONSTANT_IDENTIFIER || tokens[0].Lexeme != "%N" {
		t.Errorf("expected CONSTANT_IDENTIFIER '%%N', got %s %q", tokens[0].Type, tokens[0].Lexeme)
	}
	if tokens[1].Type != CONSTANT_IDENTIFIER || tokens[1].Lexeme != "%ROW_MAX" {
		t.Errorf("expected CONSTANT_IDENTIFIER '%%ROW_MAX', got %s %q", tokens[1].Type, tokens[1].Lexeme)
	}
	// A '%' not followed by a letter stays the modulo operator.
	if tokens[3].Type != PERCENT {
		t.Errorf("expected PERCENT, got %s", tokens[3].Type)
	}
}

func TestPilBraceKeyword(t *testing.T) {
	scanner := NewScanner("pil{ pol commit x; }")
	tokens := scanner.ScanTokens()

	if tokens[0].Type != PIL_BRACE {
		t.Errorf("expected PIL_BRACE, got %s", tokens[0].Type)
	}

	// A bare "pil" without the brace is an ordinary identifier.
	scanner = NewScanner("pil + 1")
	tokens = scanner.ScanTokens()
	if tokens[0].Type != IDENTIFIER || tokens[0].Lexeme != "pil" {
		t.Errorf("expected IDENTIFIER 'pil', got %s %q", tokens[0].Type, tokens[0].Lexeme)
	}
}

func TestAtPcAndDollarBrace(t *testing.T) {
	scanner := NewScanner("reg pc[@pc]; ${ input(0) }")
	tokens := scanner.ScanTokens()

	expected := []TokenType{
		REG, IDENTIFIER, LEFT_BRACKET, AT_PC, RIGHT_BRACKET, SEMICOLON,
		DOLLAR_BRACE, IDENTIFIER, LEFT_PAREN, NUMBER, RIGHT_PAREN, RIGHT_BRACE,
	}
	for i, exp := range expected {
		if tokens[i].Type != exp {
			t.Errorf("token %d: expected %s, got %s", i, exp, tokens[i].Type)
		}
	}
}

func TestCommentsProduceNoTokens(t *testing.T) {
	input := "pol // trailing comment\n/* block\ncomment */ commit"
	scanner := NewScanner(input)
	tokens := scanner.ScanTokens()

	expected := []TokenType{POL, COMMIT, EOF}
	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d", len(expected), len(tokens))
	}
	for i, exp := range expected {
		if tokens[i].Type != exp {
			t.Errorf("token %d: expected %s, got %s", i, exp, tokens[i].Type)
		}
	}
}

func TestLineAndColumnTracking(t *testing.T) {
	input := "pol\n  commit x;"
	scanner := NewScanner(input)
	tokens := scanner.ScanTokens()

	if tokens[0].Position.Line != 1 || tokens[0].Position.Column != 1 {
		t.Errorf("expected pol at 1:1, got %d:%d", tokens[0].Position.Line, tokens[0].Position.Column)
	}
	if tokens[1].Position.Line != 2 || tokens[1].Position.Column != 3 {
		t.Errorf("expected commit at 2:3, got %d:%d", tokens[1].Position.Line, tokens[1].Position.Column)
	}
}

func TestUnterminatedString(t *testing.T) {
	scanner := NewScanner(`"unterminated`)
	_ = scanner.ScanTokens()

	if len(scanner.Errors()) == 0 {
		t.Fatal("expected an unterminated string error, got none")
	}
}

func TestUnterminatedBlockComment(t *testing.T) {
	scanner := NewScanner("/* never closed")
	_ = scanner.ScanTokens()

	if len(scanner.Errors()) == 0 {
		t.Fatal("expected an unterminated block comment error, got none")
	}
}

func TestLoneOperatorsAreErrors(t *testing.T) {
	for _, input := range []string{"<", ">", "$", "@", "#"} {
		scanner := NewScanner(input)
		_ = scanner.ScanTokens()
		if len(scanner.Errors()) == 0 {
			t.Errorf("expected a scan error for %q, got none", input)
		}
	}
}

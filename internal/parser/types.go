package parser

//go:generate stringer -type=TokenType
type TokenType int

const (
	// Special tokens
	ILLEGAL TokenType = iota
	EOF

	// Identifiers + literals
	IDENTIFIER
	NUMBER
	HEX_NUMBER
	STRING
	// A %-prefixed constant identifier such as %N. The lexeme keeps
	// the leading '%'.
	CONSTANT_IDENTIFIER

	// Keywords
	INCLUDE
	NAMESPACE
	CONSTANT
	FIXED
	POL
	COL
	PUBLIC
	COMMIT
	WITNESS
	QUERY
	IN
	IS
	CONNECT
	MACRO
	REG
	INSTR
	// PIL_BRACE is the composite keyword "pil{" opening an inline PIL
	// block inside an ASM program.
	PIL_BRACE

	// Operators
	PLUS
	MINUS
	STAR
	STAR_STAR
	SLASH
	PERCENT
	AMPERSAND
	PIPE
	LSHIFT
	RSHIFT
	EQUAL
	// PRIME is the trailing ' marking a next-row reference.
	PRIME
	// LESS_EQUAL is "<=", used in assignment markers and register flags.
	LESS_EQUAL
	// AT_PC is the "@pc" register flag.
	AT_PC
	// DOLLAR_BRACE is "${", opening a free-input expression.
	DOLLAR_BRACE

	// Separators
	COMMA
	DOT
	SEMICOLON
	COLON
	DOUBLE_COLON

	// Brackets
	LEFT_PAREN
	RIGHT_PAREN
	LEFT_BRACE
	RIGHT_BRACE
	LEFT_BRACKET
	RIGHT_BRACKET
)

type Position struct {
	Line   int // 1-based
	Column int // 1-based
	Offset int // 0-based absolute index in input
}

package parser

var KEYWORDS = map[string]TokenType{
	"include":   INCLUDE,
	"namespace": NAMESPACE,
	"constant":  CONSTANT,
	"fixed":     FIXED,
	"pol":       POL,
	"col":       COL,
	"public":    PUBLIC,
	"commit":    COMMIT,
	"witness":   WITNESS,
	"query":     QUERY,
	"in":        IN,
	"is":        IS,
	"connect":   CONNECT,
	"macro":     MACRO,
	"reg":       REG,
	"instr":     INSTR,
}

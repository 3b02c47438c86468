package ast

// Position is a location in a source file. Line and Column are 1-based,
// Offset is the 0-based byte index into the input.
type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

type Node interface {
	NodePos() Position
	NodeEndPos() Position
	String() string
}

// Line returns the 1-based source line a node starts on.
func Line(n Node) int {
	return n.NodePos().Line
}

// Ident is a plain identifier with its source span.
type Ident struct {
	Pos    Position
	EndPos Position
	Value  string
}

func (i *Ident) NodePos() Position    { return i.Pos }
func (i *Ident) NodeEndPos() Position { return i.EndPos }

// BadNode records the span and message of a construct that failed to
// parse. It only ever appears in results that are discarded because the
// parse as a whole reported errors.
type BadNode struct {
	Pos     Position
	EndPos  Position
	Message string
}

// PILFile is the root of a parsed PIL program. Statement order is
// preserved from the source.
type PILFile struct {
	Pos        Position
	EndPos     Position
	Statements []Statement
}

func (f *PILFile) NodePos() Position    { return f.Pos }
func (f *PILFile) NodeEndPos() Position { return f.EndPos }

// ASMFile is the root of a parsed ASM program.
type ASMFile struct {
	Pos        Position
	EndPos     Position
	Statements []ASMStatement
}

func (f *ASMFile) NodePos() Position    { return f.Pos }
func (f *ASMFile) NodeEndPos() Position { return f.EndPos }

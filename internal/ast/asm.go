package ast

// ASMStatement is the closed set of assembly-level statements.
type ASMStatement interface {
	Node
	isASMStatement()
}

func (*RegisterDeclaration) isASMStatement() {}

func (*InstructionDeclaration) isASMStatement() {}

func (*InlinePilStatement) isASMStatement() {}

func (*AssignmentStatement) isASMStatement() {}

func (*InstructionStatement) isASMStatement() {}

func (*LabelStatement) isASMStatement() {}

// RegisterFlag marks the special role of a declared register.
type RegisterFlag int

const (
	// NoFlag is an ordinary register.
	NoFlag RegisterFlag = iota
	// IsPC marks the register as the program counter: reg name[@pc];
	IsPC
	// IsAssignment marks the register as the default assignment
	// target: reg name[<=];
	IsAssignment
)

func (f RegisterFlag) String() string {
	switch f {
	case IsPC:
		return "@pc"
	case IsAssignment:
		return "<="
	default:
		return ""
	}
}

// RegisterDeclaration declares a register: reg name; optionally flagged
// as the program counter or the default assignment register.
type RegisterDeclaration struct {
	Pos    Position
	EndPos Position
	Name   Ident
	Flag   RegisterFlag
}

func (s *RegisterDeclaration) NodePos() Position    { return s.Pos }
func (s *RegisterDeclaration) NodeEndPos() Position { return s.EndPos }

// AssignmentMarker is the "<= reg =" annotation routing a value through
// an assignment register. Register is nil for the anonymous form "<==".
type AssignmentMarker struct {
	Pos      Position
	EndPos   Position
	Register *Ident
}

func (m *AssignmentMarker) NodePos() Position    { return m.Pos }
func (m *AssignmentMarker) NodeEndPos() Position { return m.EndPos }

// InstructionParam is a single instruction parameter. AssignIn and
// AssignOut carry the optional read-side and write-side assignment
// register markers.
type InstructionParam struct {
	Pos       Position
	EndPos    Position
	Name      Ident
	Type      *Ident // nil when untyped
	AssignIn  *AssignmentMarker
	AssignOut *AssignmentMarker
}

func (p *InstructionParam) NodePos() Position    { return p.Pos }
func (p *InstructionParam) NodeEndPos() Position { return p.EndPos }

// InstructionDeclaration declares an instruction with its parameters
// and constraint body.
type InstructionDeclaration struct {
	Pos    Position
	EndPos Position
	Name   Ident
	Params []*InstructionParam
	Body   []InstructionBodyElement
}

func (s *InstructionDeclaration) NodePos() Position    { return s.Pos }
func (s *InstructionDeclaration) NodeEndPos() Position { return s.EndPos }

// InstructionBodyElement is the closed set of elements allowed inside
// an instruction body. Connect identities are not allowed here because
// they have no selector.
type InstructionBodyElement interface {
	Node
	isInstructionBodyElement()
}

func (*InstructionConstraint) isInstructionBodyElement() {}

func (*InstructionLookup) isInstructionBodyElement() {}

// InstructionConstraint is an equality constraint inside an instruction
// body, normalized to subtraction form like PolynomialIdentity.
type InstructionConstraint struct {
	Pos        Position
	EndPos     Position
	Expression Expr
}

func (e *InstructionConstraint) NodePos() Position    { return e.Pos }
func (e *InstructionConstraint) NodeEndPos() Position { return e.EndPos }

// InstructionLookup is a lookup ("in") or permutation ("is")
// sub-identity inside an instruction body.
type InstructionLookup struct {
	Pos      Position
	EndPos   Position
	Key      *SelectedExpressions
	Op       string // "in" or "is"
	Haystack *SelectedExpressions
}

func (e *InstructionLookup) NodePos() Position    { return e.Pos }
func (e *InstructionLookup) NodeEndPos() Position { return e.EndPos }

// InlinePilStatement embeds ordinary PIL statements in an ASM program:
// pil{ ... }.
type InlinePilStatement struct {
	Pos        Position
	EndPos     Position
	Statements []Statement
}

func (s *InlinePilStatement) NodePos() Position    { return s.Pos }
func (s *InlinePilStatement) NodeEndPos() Position { return s.EndPos }

// AssignmentStatement assigns an expression to one or more registers,
// optionally naming the assignment register: A, B <=X= expr;
type AssignmentStatement struct {
	Pos      Position
	EndPos   Position
	Targets  []Ident
	Register *Ident // nil for the anonymous form "<=="
	Value    Expr
}

func (s *AssignmentStatement) NodePos() Position    { return s.Pos }
func (s *AssignmentStatement) NodeEndPos() Position { return s.EndPos }

// InstructionStatement invokes a declared instruction.
type InstructionStatement struct {
	Pos    Position
	EndPos Position
	Name   Ident
	Args   []Expr
}

func (s *InstructionStatement) NodePos() Position    { return s.Pos }
func (s *InstructionStatement) NodeEndPos() Position { return s.EndPos }

// LabelStatement marks a jump target: name::
type LabelStatement struct {
	Pos    Position
	EndPos Position
	Name   Ident
}

func (s *LabelStatement) NodePos() Position    { return s.Pos }
func (s *LabelStatement) NodeEndPos() Position { return s.EndPos }

package ast

// Statement is the closed set of top-level PIL statements. Statements
// also appear nested inside macro bodies and pil{ } blocks.
type Statement interface {
	Node
	isStatement()
}

func (*Include) isStatement() {}

func (*Namespace) isStatement() {}

func (*ConstantDefinition) isStatement() {}

func (*PolynomialDefinition) isStatement() {}

func (*PublicDeclaration) isStatement() {}

func (*PolynomialConstantDeclaration) isStatement() {}

func (*PolynomialConstantDefinition) isStatement() {}

func (*PolynomialCommitDeclaration) isStatement() {}

func (*PolynomialIdentity) isStatement() {}

func (*PlookupIdentity) isStatement() {}

func (*PermutationIdentity) isStatement() {}

func (*ConnectIdentity) isStatement() {}

func (*MacroDefinition) isStatement() {}

func (*FunctionCallStatement) isStatement() {}

// Include records a file inclusion. The parser records the path only;
// resolving and loading the file is the caller's concern.
type Include struct {
	Pos    Position
	EndPos Position
	Path   string
}

func (s *Include) NodePos() Position    { return s.Pos }
func (s *Include) NodeEndPos() Position { return s.EndPos }

// Namespace opens a namespace with the given column degree.
type Namespace struct {
	Pos    Position
	EndPos Position
	Name   Ident
	Degree Expr
}

func (s *Namespace) NodePos() Position    { return s.Pos }
func (s *Namespace) NodeEndPos() Position { return s.EndPos }

// ConstantDefinition defines a %-prefixed constant. Name is stored
// without the leading '%'.
type ConstantDefinition struct {
	Pos    Position
	EndPos Position
	Name   Ident
	Value  Expr
}

func (s *ConstantDefinition) NodePos() Position    { return s.Pos }
func (s *ConstantDefinition) NodeEndPos() Position { return s.EndPos }

// PolynomialDefinition defines an intermediate polynomial by an
// expression: pol name = expr;
type PolynomialDefinition struct {
	Pos    Position
	EndPos Position
	Name   Ident
	Value  Expr
}

func (s *PolynomialDefinition) NodePos() Position    { return s.Pos }
func (s *PolynomialDefinition) NodeEndPos() Position { return s.EndPos }

// PublicDeclaration exposes the value of a polynomial at a fixed row as
// a public value: public name = poly(index);
type PublicDeclaration struct {
	Pos    Position
	EndPos Position
	Name   Ident
	Poly   *PolynomialReference
	Index  Expr
}

func (s *PublicDeclaration) NodePos() Position    { return s.Pos }
func (s *PublicDeclaration) NodeEndPos() Position { return s.EndPos }

// PolynomialName is a declared column name with an optional array size.
type PolynomialName struct {
	Pos       Position
	EndPos    Position
	Name      Ident
	ArraySize Expr // nil unless declared as name[size]
}

func (n *PolynomialName) NodePos() Position    { return n.Pos }
func (n *PolynomialName) NodeEndPos() Position { return n.EndPos }

// PolynomialConstantDeclaration declares fixed columns without defining
// their values.
type PolynomialConstantDeclaration struct {
	Pos         Position
	EndPos      Position
	Polynomials []PolynomialName
}

func (s *PolynomialConstantDeclaration) NodePos() Position    { return s.Pos }
func (s *PolynomialConstantDeclaration) NodeEndPos() Position { return s.EndPos }

// PolynomialConstantDefinition defines a single fixed column, either by
// a row mapping or by an explicit array.
type PolynomialConstantDefinition struct {
	Pos        Position
	EndPos     Position
	Name       Ident
	Definition FunctionDefinition
}

func (s *PolynomialConstantDefinition) NodePos() Position    { return s.Pos }
func (s *PolynomialConstantDefinition) NodeEndPos() Position { return s.EndPos }

// PolynomialCommitDeclaration declares witness columns. Definition is
// nil unless exactly one column is declared with a query attached.
type PolynomialCommitDeclaration struct {
	Pos         Position
	EndPos      Position
	Polynomials []PolynomialName
	Definition  FunctionDefinition
}

func (s *PolynomialCommitDeclaration) NodePos() Position    { return s.Pos }
func (s *PolynomialCommitDeclaration) NodeEndPos() Position { return s.EndPos }

// PolynomialIdentity is a constraint written "lhs = rhs" in the source.
// The parser normalizes it to the single expression lhs - rhs, which
// downstream stages constrain to zero; there is no equality node.
type PolynomialIdentity struct {
	Pos        Position
	EndPos     Position
	Expression Expr
}

func (s *PolynomialIdentity) NodePos() Position    { return s.Pos }
func (s *PolynomialIdentity) NodeEndPos() Position { return s.EndPos }

// SelectedExpressions is an expression list with an optional selector,
// as used on either side of lookup and permutation identities. A bare
// unbraced expression is sugar for a nil selector and a one-element
// list.
type SelectedExpressions struct {
	Pos         Position
	EndPos      Position
	Selector    Expr // nil when absent
	Expressions []Expr
}

func (s *SelectedExpressions) NodePos() Position    { return s.Pos }
func (s *SelectedExpressions) NodeEndPos() Position { return s.EndPos }

// PlookupIdentity asserts that every tuple formed from Key appears
// among the tuples formed from Haystack.
type PlookupIdentity struct {
	Pos      Position
	EndPos   Position
	Key      *SelectedExpressions
	Haystack *SelectedExpressions
}

func (s *PlookupIdentity) NodePos() Position    { return s.Pos }
func (s *PlookupIdentity) NodeEndPos() Position { return s.EndPos }

// PermutationIdentity asserts that the tuples on both sides are
// permutations of one another.
type PermutationIdentity struct {
	Pos    Position
	EndPos Position
	Left   *SelectedExpressions
	Right  *SelectedExpressions
}

func (s *PermutationIdentity) NodePos() Position    { return s.Pos }
func (s *PermutationIdentity) NodeEndPos() Position { return s.EndPos }

// ConnectIdentity is a copy-constraint between two expression lists.
// Selectors are not part of the connect grammar.
type ConnectIdentity struct {
	Pos    Position
	EndPos Position
	Left   []Expr
	Right  []Expr
}

func (s *ConnectIdentity) NodePos() Position    { return s.Pos }
func (s *ConnectIdentity) NodeEndPos() Position { return s.EndPos }

// MacroDefinition holds a macro's statements plus an optional trailing
// expression, which becomes the macro's value when it is invoked in
// expression position.
type MacroDefinition struct {
	Pos        Position
	EndPos     Position
	Name       Ident
	Params     []Ident
	Statements []Statement
	Expression Expr // nil when the macro has no tail expression
}

func (s *MacroDefinition) NodePos() Position    { return s.Pos }
func (s *MacroDefinition) NodeEndPos() Position { return s.EndPos }

// FunctionCallStatement is a bare macro/function invocation used in
// statement position.
type FunctionCallStatement struct {
	Pos    Position
	EndPos Position
	Name   Ident
	Args   []Expr
}

func (s *FunctionCallStatement) NodePos() Position    { return s.Pos }
func (s *FunctionCallStatement) NodeEndPos() Position { return s.EndPos }

// FunctionDefinition is the closed set of column definition forms.
type FunctionDefinition interface {
	Node
	isFunctionDefinition()
}

func (*MappingDefinition) isFunctionDefinition() {}

func (*ArrayDefinition) isFunctionDefinition() {}

func (*QueryDefinition) isFunctionDefinition() {}

// MappingDefinition defines a fixed column as a function from the row
// index to a value: name(i) { expr }.
type MappingDefinition struct {
	Pos    Position
	EndPos Position
	Params []Ident
	Body   Expr
}

func (d *MappingDefinition) NodePos() Position    { return d.Pos }
func (d *MappingDefinition) NodeEndPos() Position { return d.EndPos }

// ArrayDefinition defines a fixed column by listing its values.
type ArrayDefinition struct {
	Pos    Position
	EndPos Position
	Values []Expr
}

func (d *ArrayDefinition) NodePos() Position    { return d.Pos }
func (d *ArrayDefinition) NodeEndPos() Position { return d.EndPos }

// QueryDefinition attaches an external query to a witness column:
// name(i) query expr.
type QueryDefinition struct {
	Pos    Position
	EndPos Position
	Params []Ident
	Body   Expr
}

func (d *QueryDefinition) NodePos() Position    { return d.Pos }
func (d *QueryDefinition) NodeEndPos() Position { return d.EndPos }

package ast

import "math/big"

// Expr is the closed set of expression nodes produced by the parser.
type Expr interface {
	Node
	isExpr()
}

func (*BadExpr) isExpr() {}

func (*BinaryExpr) isExpr() {}

func (*UnaryExpr) isExpr() {}

func (*FunctionCallExpr) isExpr() {}

func (*ConstantExpr) isExpr() {}

func (*PolynomialReference) isExpr() {}

func (*PublicReference) isExpr() {}

func (*NumberExpr) isExpr() {}

func (*StringExpr) isExpr() {}

func (*TupleExpr) isExpr() {}

func (*FreeInputExpr) isExpr() {}

type BadExpr struct {
	Bad BadNode
}

func (e *BadExpr) NodePos() Position    { return e.Bad.Pos }
func (e *BadExpr) NodeEndPos() Position { return e.Bad.EndPos }

// BinaryExpr is a binary operation. Op is the operator lexeme, one of
// "|", "&", "<<", ">>", "+", "-", "*", "/", "%" and "**". All operators
// associate to the left, including "**".
type BinaryExpr struct {
	Pos    Position
	EndPos Position
	Op     string
	Left   Expr
	Right  Expr
}

func (e *BinaryExpr) NodePos() Position    { return e.Pos }
func (e *BinaryExpr) NodeEndPos() Position { return e.EndPos }

// UnaryExpr is a prefix operation, Op is "+" or "-".
type UnaryExpr struct {
	Pos    Position
	EndPos Position
	Op     string
	Value  Expr
}

func (e *UnaryExpr) NodePos() Position    { return e.Pos }
func (e *UnaryExpr) NodeEndPos() Position { return e.EndPos }

// FunctionCallExpr is a macro or function invocation in expression
// position: name(arg, ...).
type FunctionCallExpr struct {
	Pos    Position
	EndPos Position
	Name   Ident
	Args   []Expr
}

func (e *FunctionCallExpr) NodePos() Position    { return e.Pos }
func (e *FunctionCallExpr) NodeEndPos() Position { return e.EndPos }

// ConstantExpr references a %-prefixed constant. Name is stored without
// the leading '%'.
type ConstantExpr struct {
	Pos    Position
	EndPos Position
	Name   string
}

func (e *ConstantExpr) NodePos() Position    { return e.Pos }
func (e *ConstantExpr) NodeEndPos() Position { return e.EndPos }

// PolynomialReference refers to a column, optionally qualified with a
// namespace, subscripted into an array, and/or marked with a trailing
// "'" to select the value on the next row.
type PolynomialReference struct {
	Pos       Position
	EndPos    Position
	Namespace string // "" when unqualified
	Name      string
	Index     Expr // nil when not an array access
	Next      bool
}

func (e *PolynomialReference) NodePos() Position    { return e.Pos }
func (e *PolynomialReference) NodeEndPos() Position { return e.EndPos }

// PublicReference refers to a declared public value: ":name".
type PublicReference struct {
	Pos    Position
	EndPos Position
	Name   string
}

func (e *PublicReference) NodePos() Position    { return e.Pos }
func (e *PublicReference) NodeEndPos() Position { return e.EndPos }

// NumberExpr is a numeric literal. Values are arbitrary precision since
// field elements routinely exceed machine-word range.
type NumberExpr struct {
	Pos    Position
	EndPos Position
	Value  *big.Int
}

func (e *NumberExpr) NodePos() Position    { return e.Pos }
func (e *NumberExpr) NodeEndPos() Position { return e.EndPos }

// StringExpr is a string literal. The value is the raw text between the
// quotes; no escape processing is applied.
type StringExpr struct {
	Pos    Position
	EndPos Position
	Value  string
}

func (e *StringExpr) NodePos() Position    { return e.Pos }
func (e *StringExpr) NodeEndPos() Position { return e.EndPos }

// TupleExpr is a parenthesized list of two or more expressions. A
// parenthesized single expression is plain grouping and produces no
// tuple node.
type TupleExpr struct {
	Pos      Position
	EndPos   Position
	Elements []Expr
}

func (e *TupleExpr) NodePos() Position    { return e.Pos }
func (e *TupleExpr) NodeEndPos() Position { return e.EndPos }

// FreeInputExpr marks a value fetched from outside the constraint
// system at proof time: ${ expr }.
type FreeInputExpr struct {
	Pos    Position
	EndPos Position
	Value  Expr
}

func (e *FreeInputExpr) NodePos() Position    { return e.Pos }
func (e *FreeInputExpr) NodeEndPos() Position { return e.EndPos }

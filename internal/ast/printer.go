package ast

import (
	"fmt"
	"strings"
)

// String methods render nodes back to canonical PIL/ASM source. The
// output is normalized: identities print in their subtraction form and
// nested binary operations are fully parenthesized.

func (f *PILFile) String() string {
	var b strings.Builder

	for i, stmt := range f.Statements {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(stmt.String())
	}

	return b.String()
}

func (f *ASMFile) String() string {
	var b strings.Builder

	for i, stmt := range f.Statements {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(stmt.String())
	}

	return b.String()
}

func (i *Ident) String() string {
	return i.Value
}

func exprList(exprs []Expr) string {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		parts[i] = e.String()
	}
	return strings.Join(parts, ", ")
}

func identList(idents []Ident) string {
	parts := make([]string, len(idents))
	for i, id := range idents {
		parts[i] = id.Value
	}
	return strings.Join(parts, ", ")
}

// Expressions.

func (e *BadExpr) String() string {
	return fmt.Sprintf("BadExpr: %s", e.Bad.Message)
}

func (e *BinaryExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", e.Left.String(), e.Op, e.Right.String())
}

func (e *UnaryExpr) String() string {
	return fmt.Sprintf("%s%s", e.Op, e.Value.String())
}

func (e *FunctionCallExpr) String() string {
	return fmt.Sprintf("%s(%s)", e.Name.Value, exprList(e.Args))
}

func (e *ConstantExpr) String() string {
	return "%" + e.Name
}

func (e *PolynomialReference) String() string {
	var b strings.Builder

	if e.Namespace != "" {
		b.WriteString(e.Namespace)
		b.WriteString(".")
	}
	b.WriteString(e.Name)
	if e.Index != nil {
		b.WriteString("[")
		b.WriteString(e.Index.String())
		b.WriteString("]")
	}
	if e.Next {
		b.WriteString("'")
	}

	return b.String()
}

func (e *PublicReference) String() string {
	return ":" + e.Name
}

func (e *NumberExpr) String() string {
	return e.Value.String()
}

func (e *StringExpr) String() string {
	return fmt.Sprintf("%q", e.Value)
}

func (e *TupleExpr) String() string {
	return fmt.Sprintf("(%s)", exprList(e.Elements))
}

func (e *FreeInputExpr) String() string {
	return fmt.Sprintf("${%s}", e.Value.String())
}

// PIL statements.

func (s *Include) String() string {
	return fmt.Sprintf("include %q;", s.Path)
}

func (s *Namespace) String() string {
	return fmt.Sprintf("namespace %s(%s);", s.Name.Value, s.Degree.String())
}

func (s *ConstantDefinition) String() string {
	return fmt.Sprintf("constant %%%s = %s;", s.Name.Value, s.Value.String())
}

func (s *PolynomialDefinition) String() string {
	return fmt.Sprintf("pol %s = %s;", s.Name.Value, s.Value.String())
}

func (s *PublicDeclaration) String() string {
	return fmt.Sprintf("public %s = %s(%s);", s.Name.Value, s.Poly.String(), s.Index.String())
}

func (n *PolynomialName) String() string {
	if n.ArraySize != nil {
		return fmt.Sprintf("%s[%s]", n.Name.Value, n.ArraySize.String())
	}
	return n.Name.Value
}

func polynomialNameList(names []PolynomialName) string {
	parts := make([]string, len(names))
	for i := range names {
		parts[i] = names[i].String()
	}
	return strings.Join(parts, ", ")
}

func (s *PolynomialConstantDeclaration) String() string {
	return fmt.Sprintf("pol constant %s;", polynomialNameList(s.Polynomials))
}

func (s *PolynomialConstantDefinition) String() string {
	return fmt.Sprintf("pol constant %s%s;", s.Name.Value, s.Definition.String())
}

func (s *PolynomialCommitDeclaration) String() string {
	if s.Definition != nil {
		return fmt.Sprintf("pol commit %s%s;", polynomialNameList(s.Polynomials), s.Definition.String())
	}
	return fmt.Sprintf("pol commit %s;", polynomialNameList(s.Polynomials))
}

func (s *PolynomialIdentity) String() string {
	return fmt.Sprintf("%s = 0;", s.Expression.String())
}

func (s *SelectedExpressions) String() string {
	if s.Selector != nil {
		return fmt.Sprintf("%s {%s}", s.Selector.String(), exprList(s.Expressions))
	}
	return fmt.Sprintf("{%s}", exprList(s.Expressions))
}

func (s *PlookupIdentity) String() string {
	return fmt.Sprintf("%s in %s;", s.Key.String(), s.Haystack.String())
}

func (s *PermutationIdentity) String() string {
	return fmt.Sprintf("%s is %s;", s.Left.String(), s.Right.String())
}

func (s *ConnectIdentity) String() string {
	return fmt.Sprintf("{%s} connect {%s};", exprList(s.Left), exprList(s.Right))
}

func (s *MacroDefinition) String() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("macro %s(%s) {", s.Name.Value, identList(s.Params)))
	for _, stmt := range s.Statements {
		b.WriteString(" ")
		b.WriteString(stmt.String())
	}
	if s.Expression != nil {
		b.WriteString(" ")
		b.WriteString(s.Expression.String())
	}
	b.WriteString(" };")

	return b.String()
}

func (s *FunctionCallStatement) String() string {
	return fmt.Sprintf("%s(%s);", s.Name.Value, exprList(s.Args))
}

// Column definition forms. Each renders the suffix that follows the
// column name in a declaration.

func (d *MappingDefinition) String() string {
	return fmt.Sprintf("(%s) { %s }", identList(d.Params), d.Body.String())
}

func (d *ArrayDefinition) String() string {
	return fmt.Sprintf(" = [%s]", exprList(d.Values))
}

func (d *QueryDefinition) String() string {
	return fmt.Sprintf("(%s) query %s", identList(d.Params), d.Body.String())
}

// ASM statements.

func (s *RegisterDeclaration) String() string {
	if s.Flag != NoFlag {
		return fmt.Sprintf("reg %s[%s];", s.Name.Value, s.Flag.String())
	}
	return fmt.Sprintf("reg %s;", s.Name.Value)
}

func (m *AssignmentMarker) String() string {
	if m.Register != nil {
		return fmt.Sprintf("<=%s=", m.Register.Value)
	}
	return "<=="
}

func (p *InstructionParam) String() string {
	var b strings.Builder

	if p.AssignIn != nil {
		b.WriteString(p.AssignIn.String())
		b.WriteString(" ")
	}
	b.WriteString(p.Name.Value)
	if p.Type != nil {
		b.WriteString(": ")
		b.WriteString(p.Type.Value)
	}
	if p.AssignOut != nil {
		b.WriteString(" ")
		b.WriteString(p.AssignOut.String())
	}

	return b.String()
}

func (s *InstructionDeclaration) String() string {
	var b strings.Builder

	b.WriteString("instr ")
	b.WriteString(s.Name.Value)
	for i, param := range s.Params {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(" ")
		b.WriteString(param.String())
	}
	b.WriteString(" {")
	for i, el := range s.Body {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(" ")
		b.WriteString(el.String())
	}
	b.WriteString(" }")

	return b.String()
}

func (e *InstructionConstraint) String() string {
	return fmt.Sprintf("%s = 0", e.Expression.String())
}

func (e *InstructionLookup) String() string {
	return fmt.Sprintf("%s %s %s", e.Key.String(), e.Op, e.Haystack.String())
}

func (s *InlinePilStatement) String() string {
	var b strings.Builder

	b.WriteString("pil{\n")
	for _, stmt := range s.Statements {
		b.WriteString("  " + strings.ReplaceAll(stmt.String(), "\n", "\n  ") + "\n")
	}
	b.WriteString("}")

	return b.String()
}

func (s *AssignmentStatement) String() string {
	op := "<=="
	if s.Register != nil {
		op = fmt.Sprintf("<=%s=", s.Register.Value)
	}
	return fmt.Sprintf("%s %s %s;", identList(s.Targets), op, s.Value.String())
}

func (s *InstructionStatement) String() string {
	if len(s.Args) == 0 {
		return fmt.Sprintf("%s;", s.Name.Value)
	}
	return fmt.Sprintf("%s %s;", s.Name.Value, exprList(s.Args))
}

func (s *LabelStatement) String() string {
	return s.Name.Value + "::"
}

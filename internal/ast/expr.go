package ast

import "github.com/raheelahmad/slox/internal/token"

var (
	_ Expr = (*Assign)(nil)
	_ Expr = (*Binary)(nil)
	_ Expr = (*Grouping)(nil)
	_ Expr = (*Literal)(nil)
	_ Expr = (*Unary)(nil)
	_ Expr = (*Variable)(nil)
)

// Expr is the closed set of expression nodes. Trees are immutable once built
// and strictly tree shaped: every node has exactly one parent.
type Expr interface {
	isExpr()
}

type (
	// Assign is `name = value`. The evaluation core does not execute it
	// (there is no environment here); only the prefix renderer consumes it.
	Assign struct {
		Name  token.Token
		Value Expr
	}

	Binary struct {
		Left     Expr
		Operator token.Token
		Right    Expr
	}

	Grouping struct {
		Expr Expr
	}

	// Literal holds a constant. A nil Value is the literal `nil`.
	Literal struct {
		Value any
	}

	Unary struct {
		Operator token.Token
		Operand  Expr
	}

	// Variable is a name reference; like Assign it is renderer-only here.
	Variable struct {
		Name token.Token
	}
)

func (e Assign) isExpr()   {}
func (e Binary) isExpr()   {}
func (e Grouping) isExpr() {}
func (e Literal) isExpr()  {}
func (e Unary) isExpr()    {}
func (e Variable) isExpr() {}

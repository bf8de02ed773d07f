package ast

import "github.com/raheelahmad/slox/internal/token"

var (
	_ Stmt = (*Block)(nil)
	_ Stmt = (*Expression)(nil)
	_ Stmt = (*Print)(nil)
	_ Stmt = (*Var)(nil)
)

// Stmt is the closed set of statement nodes. Statements are not executed by
// the evaluation core; the prefix renderer prints them structurally.
type Stmt interface {
	isStmt()
}

type (
	Block struct {
		Statements []Stmt
	}

	Expression struct {
		Expr Expr
	}

	Print struct {
		Expr Expr
	}

	// Var is a declaration; Initializer may be nil.
	Var struct {
		Name        token.Token
		Initializer Expr
	}
)

func (s Block) isStmt()      {}
func (s Expression) isStmt() {}
func (s Print) isStmt()      {}
func (s Var) isStmt()        {}

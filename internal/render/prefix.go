package render

import (
	"fmt"
	"strings"

	"github.com/raheelahmad/slox/internal/ast"
	"github.com/raheelahmad/slox/internal/value"
)

// Prefix renders an expression in fully parenthesized prefix form, operator
// lexeme first: `1 + 2 * 3` becomes `(+ 1.0 (* 2.0 3.0))`.
func Prefix(expr ast.Expr) string {
	switch expr := expr.(type) {
	case *ast.Assign:
		return parenthesize("=", expr.Name.Lexeme, Prefix(expr.Value))

	case *ast.Binary:
		return parenthesize(expr.Operator.Lexeme, Prefix(expr.Left), Prefix(expr.Right))

	case *ast.Grouping:
		return parenthesize("group", Prefix(expr.Expr))

	case *ast.Literal:
		return value.Format(expr.Value)

	case *ast.Unary:
		return parenthesize(expr.Operator.Lexeme, Prefix(expr.Operand))

	case *ast.Variable:
		return expr.Name.Lexeme

	default:
		panic(fmt.Sprintf("unsupported expression type: %T", expr))
	}
}

// PrefixStmt renders statement nodes in analogous parenthesized forms. These
// nodes are never evaluated by this core, only printed.
func PrefixStmt(stmt ast.Stmt) string {
	switch stmt := stmt.(type) {
	case *ast.Block:
		parts := make([]string, 0, len(stmt.Statements)+1)
		parts = append(parts, "block")
		for _, inner := range stmt.Statements {
			parts = append(parts, PrefixStmt(inner))
		}

		return "(" + strings.Join(parts, " ") + ")"

	case *ast.Expression:
		return parenthesize(";", Prefix(stmt.Expr))

	case *ast.Print:
		return parenthesize("print", Prefix(stmt.Expr))

	case *ast.Var:
		if stmt.Initializer == nil {
			return parenthesize("var", stmt.Name.Lexeme)
		}

		return parenthesize("var", stmt.Name.Lexeme, "=", Prefix(stmt.Initializer))

	default:
		panic(fmt.Sprintf("unsupported statement type: %T", stmt))
	}
}

func parenthesize(name string, parts ...string) string {
	return "(" + name + " " + strings.Join(parts, " ") + ")"
}

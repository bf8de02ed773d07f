package render

import (
	"fmt"

	"github.com/raheelahmad/slox/internal/ast"
	"github.com/raheelahmad/slox/internal/value"
)

// RPN renders an expression in reverse Polish notation: `1 + 2 * 3` becomes
// `1.0 2.0 3.0 * +`. Variable and Assign nodes have no postfix form; callers
// must not pass trees containing them.
func RPN(expr ast.Expr) string {
	switch expr := expr.(type) {
	case *ast.Binary:
		return RPN(expr.Left) + " " + RPN(expr.Right) + " " + expr.Operator.Lexeme

	case *ast.Grouping:
		return RPN(expr.Expr)

	case *ast.Literal:
		return value.Format(expr.Value)

	case *ast.Unary:
		return RPN(expr.Operand) + " " + expr.Operator.Lexeme

	default:
		panic(fmt.Sprintf("expression has no postfix form: %T", expr))
	}
}

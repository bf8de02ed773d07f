// Package render turns expression trees back into text. Its two renderers are
// structural debugging tools, independent of evaluation: they are total over
// the trees they support and never fail.
package render

import "github.com/raheelahmad/slox/internal/ast"

type Mode string

const (
	// ModePrefix is the canonical fully parenthesized prefix form.
	ModePrefix Mode = "prefix"

	// ModePostfix is reverse Polish notation; grouping is implicit in
	// operator placement, so no parentheses are emitted.
	ModePostfix Mode = "postfix"
)

func Render(expr ast.Expr, mode Mode) string {
	if mode == ModePostfix {
		return RPN(expr)
	}

	return Prefix(expr)
}

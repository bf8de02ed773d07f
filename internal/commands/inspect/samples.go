package inspect

import (
	"github.com/raheelahmad/slox/internal/ast"
	"github.com/raheelahmad/slox/internal/token"
)

type sample struct {
	name string
	expr ast.Expr
}

// samples are hand-built trees standing in for parser output. One of them
// fails on purpose so the runtime error path is visible too.
func samples() []sample {
	return []sample{
		{
			name: "arithmetic", // -123 * (45.67)
			expr: &ast.Binary{
				Left: &ast.Unary{
					Operator: token.New(token.KindMinus, "-", nil, 1),
					Operand:  &ast.Literal{Value: 123.0},
				},
				Operator: token.New(token.KindStar, "*", nil, 1),
				Right:    &ast.Grouping{Expr: &ast.Literal{Value: 45.67}},
			},
		},
		{
			name: "precedence", // 1 + 2 * 3
			expr: &ast.Binary{
				Left:     &ast.Literal{Value: 1.0},
				Operator: token.New(token.KindPlus, "+", nil, 1),
				Right: &ast.Binary{
					Left:     &ast.Literal{Value: 2.0},
					Operator: token.New(token.KindStar, "*", nil, 1),
					Right:    &ast.Literal{Value: 3.0},
				},
			},
		},
		{
			name: "concatenation", // "sl" + "ox"
			expr: &ast.Binary{
				Left:     &ast.Literal{Value: "sl"},
				Operator: token.New(token.KindPlus, "+", nil, 1),
				Right:    &ast.Literal{Value: "ox"},
			},
		},
		{
			name: "comparison", // !(1 >= 2)
			expr: &ast.Unary{
				Operator: token.New(token.KindBang, "!", nil, 1),
				Operand: &ast.Grouping{
					Expr: &ast.Binary{
						Left:     &ast.Literal{Value: 1.0},
						Operator: token.New(token.KindGreaterEqual, ">=", nil, 1),
						Right:    &ast.Literal{Value: 2.0},
					},
				},
			},
		},
		{
			name: "type error", // "muffin" - 1
			expr: &ast.Binary{
				Left:     &ast.Literal{Value: "muffin"},
				Operator: token.New(token.KindMinus, "-", nil, 2),
				Right:    &ast.Literal{Value: 1.0},
			},
		},
	}
}

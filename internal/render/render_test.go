package render_test

import (
	"testing"

	"github.com/raheelahmad/slox/internal/ast"
	"github.com/raheelahmad/slox/internal/render"
	"github.com/raheelahmad/slox/internal/token"
	"github.com/stretchr/testify/assert"
)

func op(kind token.Kind, lexeme string) token.Token {
	return token.New(kind, lexeme, nil, 1)
}

func identifier(name string) token.Token {
	return token.New(token.KindIdentifier, name, nil, 1)
}

func TestPrefix(t *testing.T) {
	type testCase struct {
		name      string
		inputExpr ast.Expr
		expected  string
	}

	testCases := []testCase{
		{
			name:      "literal / number",
			inputExpr: &ast.Literal{Value: 123.0},
			expected:  "123.0",
		},
		{
			name:      "literal / nil",
			inputExpr: &ast.Literal{},
			expected:  "nil",
		},
		{
			name: "unary and grouping",
			inputExpr: &ast.Binary{
				Left: &ast.Unary{
					Operator: op(token.KindMinus, "-"),
					Operand:  &ast.Literal{Value: 123.0},
				},
				Operator: op(token.KindStar, "*"),
				Right:    &ast.Grouping{Expr: &ast.Literal{Value: 45.67}},
			},
			expected: "(* (- 123.0) (group 45.67))",
		},
		{
			name:      "variable",
			inputExpr: &ast.Variable{Name: identifier("answer")},
			expected:  "answer",
		},
		{
			name: "assignment",
			inputExpr: &ast.Assign{
				Name:  identifier("answer"),
				Value: &ast.Literal{Value: 42.0},
			},
			expected: "(= answer 42.0)",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, render.Prefix(tc.inputExpr))
			assert.Equal(t, tc.expected, render.Render(tc.inputExpr, render.ModePrefix))
		})
	}
}

func TestPrefixStmt(t *testing.T) {
	type testCase struct {
		name      string
		inputStmt ast.Stmt
		expected  string
	}

	printHi := &ast.Print{Expr: &ast.Literal{Value: "hi"}}

	testCases := []testCase{
		{
			name:      "print",
			inputStmt: printHi,
			expected:  "(print hi)",
		},
		{
			name:      "expression statement",
			inputStmt: &ast.Expression{Expr: &ast.Literal{Value: 1.0}},
			expected:  "(; 1.0)",
		},
		{
			name:      "var without initializer",
			inputStmt: &ast.Var{Name: identifier("a")},
			expected:  "(var a)",
		},
		{
			name: "var with initializer",
			inputStmt: &ast.Var{
				Name:        identifier("a"),
				Initializer: &ast.Literal{Value: 2.0},
			},
			expected: "(var a = 2.0)",
		},
		{
			name:      "empty block",
			inputStmt: &ast.Block{},
			expected:  "(block)",
		},
		{
			name: "block",
			inputStmt: &ast.Block{
				Statements: []ast.Stmt{
					&ast.Var{Name: identifier("a"), Initializer: &ast.Literal{Value: 1.0}},
					printHi,
				},
			},
			expected: "(block (var a = 1.0) (print hi))",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, render.PrefixStmt(tc.inputStmt))
		})
	}
}

func TestRPN(t *testing.T) {
	type testCase struct {
		name      string
		inputExpr ast.Expr
		expected  string
	}

	testCases := []testCase{
		{
			name: "addition with nested multiplication",
			inputExpr: &ast.Binary{
				Left:     &ast.Literal{Value: 1.0},
				Operator: op(token.KindPlus, "+"),
				Right: &ast.Binary{
					Left:     &ast.Literal{Value: 2.0},
					Operator: op(token.KindStar, "*"),
					Right:    &ast.Literal{Value: 3.0},
				},
			},
			expected: "1.0 2.0 3.0 * +",
		},
		{
			name: "grouping is implicit",
			inputExpr: &ast.Binary{
				Left: &ast.Grouping{
					Expr: &ast.Binary{
						Left:     &ast.Literal{Value: 1.0},
						Operator: op(token.KindPlus, "+"),
						Right:    &ast.Literal{Value: 2.0},
					},
				},
				Operator: op(token.KindStar, "*"),
				Right: &ast.Grouping{
					Expr: &ast.Binary{
						Left:     &ast.Literal{Value: 4.0},
						Operator: op(token.KindMinus, "-"),
						Right:    &ast.Literal{Value: 3.0},
					},
				},
			},
			expected: "1.0 2.0 + 4.0 3.0 - *",
		},
		{
			name: "unary operand",
			inputExpr: &ast.Unary{
				Operator: op(token.KindBang, "!"),
				Operand:  &ast.Literal{Value: true},
			},
			expected: "true !",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, render.RPN(tc.inputExpr))
			assert.Equal(t, tc.expected, render.Render(tc.inputExpr, render.ModePostfix))
		})
	}

	t.Run("variables have no postfix form", func(t *testing.T) {
		assert.Panics(t, func() {
			render.RPN(&ast.Variable{Name: identifier("a")})
		})
	})
}

// Package evaluate reduces an expression tree to a runtime value. Evaluation
// is synchronous and purely recursive; a pathologically deep tree can exhaust
// the call stack, which is a documented limit rather than a guarded one.
package evaluate

import (
	"fmt"

	"github.com/raheelahmad/slox/internal/ast"
	"github.com/raheelahmad/slox/internal/token"
	"github.com/raheelahmad/slox/internal/value"
)

// Evaluate computes the outcome of a single expression. The tree must have
// been produced by the parser: an operator outside a node's allowed set, or a
// Variable/Assign node (which need an environment this core does not have),
// is a contract violation and panics.
func Evaluate(expr ast.Expr) (Outcome, error) {
	switch expr := expr.(type) {
	case *ast.Binary:
		return evaluateBinary(expr)

	case *ast.Grouping:
		return Evaluate(expr.Expr)

	case *ast.Literal:
		return evaluateLiteral(expr), nil

	case *ast.Unary:
		return evaluateUnary(expr)

	case *ast.Variable, *ast.Assign:
		panic(fmt.Sprintf("expression requires an environment: %T", expr))

	default:
		panic(fmt.Sprintf("unsupported expression type: %T", expr))
	}
}

// Interpret is the top-level driver: it renders the outcome of the root
// expression as text. An absent outcome prints as "nil"; a runtime error is
// returned for the caller to report.
func Interpret(expr ast.Expr) (string, error) {
	outcome, err := Evaluate(expr)
	if err != nil {
		return "", err
	}

	v, ok := outcome.Value()
	if !ok {
		return "nil", nil
	}

	return value.Format(v), nil
}

func evaluateLiteral(expr *ast.Literal) Outcome {
	if expr.Value == nil {
		return None()
	}

	return Of(expr.Value)
}

func evaluateUnary(expr *ast.Unary) (Outcome, error) {
	operand, err := Evaluate(expr.Operand)
	if err != nil {
		return None(), err
	}

	switch expr.Operator.Kind {
	case token.KindBang:
		return Of(!value.Truthy(operand.Operand())), nil

	case token.KindMinus:
		n, err := value.AsNumber(expr.Operator, operand.Operand())
		if err != nil {
			return None(), err
		}

		return Of(-n), nil

	default:
		panic(fmt.Sprintf("unsupported unary operator: %s", expr.Operator.Kind))
	}
}

func evaluateBinary(expr *ast.Binary) (Outcome, error) {
	// Both sides evaluate before errors are weighed; the left error wins.
	left, leftErr := Evaluate(expr.Left)
	right, rightErr := Evaluate(expr.Right)

	if leftErr != nil {
		return None(), leftErr
	}
	if rightErr != nil {
		return None(), rightErr
	}

	leftValue := left.Operand()
	rightValue := right.Operand()

	switch expr.Operator.Kind {
	case token.KindMinus:
		l, r, err := value.AsNumberPair(expr.Operator, leftValue, rightValue)
		if err != nil {
			return None(), err
		}

		return Of(l - r), nil

	case token.KindSlash:
		// Division by zero is not trapped; the result follows IEEE-754
		// (an infinity or NaN is a legitimate value).
		l, r, err := value.AsNumberPair(expr.Operator, leftValue, rightValue)
		if err != nil {
			return None(), err
		}

		return Of(l / r), nil

	case token.KindStar:
		l, r, err := value.AsNumberPair(expr.Operator, leftValue, rightValue)
		if err != nil {
			return None(), err
		}

		return Of(l * r), nil

	case token.KindPlus:
		return evaluateAdd(expr.Operator, leftValue, rightValue)

	case token.KindGreater:
		l, r, err := value.AsNumberPair(expr.Operator, leftValue, rightValue)
		if err != nil {
			return None(), err
		}

		return Of(l > r), nil

	case token.KindGreaterEqual:
		l, r, err := value.AsNumberPair(expr.Operator, leftValue, rightValue)
		if err != nil {
			return None(), err
		}

		return Of(l >= r), nil

	case token.KindLess:
		l, r, err := value.AsNumberPair(expr.Operator, leftValue, rightValue)
		if err != nil {
			return None(), err
		}

		return Of(l < r), nil

	case token.KindLessEqual:
		l, r, err := value.AsNumberPair(expr.Operator, leftValue, rightValue)
		if err != nil {
			return None(), err
		}

		return Of(l <= r), nil

	case token.KindEqualEqual:
		return Of(value.Equal(leftValue, rightValue)), nil

	case token.KindBangEqual:
		return Of(!value.Equal(leftValue, rightValue)), nil

	default:
		panic(fmt.Sprintf("unsupported binary operator: %s", expr.Operator.Kind))
	}
}

// evaluateAdd type-dispatches `+` at runtime: numeric addition for two
// numbers, concatenation for two strings, an error for everything else.
func evaluateAdd(op token.Token, left, right any) (Outcome, error) {
	if l, ok := left.(float64); ok {
		if r, ok := right.(float64); ok {
			return Of(l + r), nil
		}
	}

	if l, ok := left.(string); ok {
		if r, ok := right.(string); ok {
			return Of(l + r), nil
		}
	}

	return None(), value.NewAddError(op)
}

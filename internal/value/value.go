// Package value defines the dynamic value domain of the language: float64,
// string, bool and nil. Values are immutable and compared by value.
package value

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/raheelahmad/slox/internal/token"
)

const (
	msgOperandNumber  = "Operand must be a number."
	msgOperandsNumber = "Operands must be numbers."
	msgOperandsAdd    = "Operands must be two numbers or two strings."
)

// RuntimeError is a user-facing evaluation failure. It carries the operator
// token whose operands were at fault so the caller can report a source line.
type RuntimeError struct {
	Token   token.Token
	Message string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("[line %d] %s", e.Token.Line, e.Message)
}

// Truthy reports the boolean coercion of any value: nil and false are falsy,
// everything else (including 0 and "") is truthy.
func Truthy(v any) bool {
	if v == nil {
		return false
	}

	if b, ok := v.(bool); ok {
		return b
	}

	return true
}

// Equal reports structural equality. Nil equals only nil, values of different
// runtime types are never equal, and numbers follow IEEE-754 comparison, so
// NaN is not equal to itself.
func Equal(a, b any) bool {
	if a == nil {
		return b == nil
	}
	if b == nil {
		return false
	}

	switch a := a.(type) {
	case bool:
		b, ok := b.(bool)
		return ok && a == b

	case float64:
		b, ok := b.(float64)
		return ok && a == b

	case string:
		b, ok := b.(string)
		return ok && a == b

	default:
		panic(fmt.Sprintf("value outside the dynamic domain: %T", a))
	}
}

// AsNumber coerces an operand for a numeric operator, failing with the
// operator token when the operand is not a number.
func AsNumber(op token.Token, v any) (float64, error) {
	n, ok := v.(float64)
	if !ok {
		return 0, &RuntimeError{Token: op, Message: msgOperandNumber}
	}

	return n, nil
}

// AsNumberPair coerces both operands of a binary numeric operator. Either
// operand being non-numeric fails the pair.
func AsNumberPair(op token.Token, left, right any) (float64, float64, error) {
	l, lok := left.(float64)
	r, rok := right.(float64)
	if !lok || !rok {
		return 0, 0, &RuntimeError{Token: op, Message: msgOperandsNumber}
	}

	return l, r, nil
}

// NewAddError is the failure for `+` applied to a mixed-type operand pair.
func NewAddError(op token.Token) error {
	return &RuntimeError{Token: op, Message: msgOperandsAdd}
}

// Format renders a value as text. The formatting is the single rule shared by
// the interpreter output and both renderers: nil prints as "nil", booleans and
// strings print directly, and numbers use the shortest decimal form that
// round-trips, with integral finite values keeping a ".0" suffix so that a
// number is always recognizable as one.
func Format(v any) string {
	switch v := v.(type) {
	case nil:
		return "nil"

	case bool:
		return strconv.FormatBool(v)

	case float64:
		return formatNumber(v)

	case string:
		return v

	default:
		panic(fmt.Sprintf("value outside the dynamic domain: %T", v))
	}
}

func formatNumber(n float64) string {
	text := strconv.FormatFloat(n, 'g', -1, 64)

	if !strings.ContainsAny(text, ".eIN") {
		text += ".0"
	}

	return text
}

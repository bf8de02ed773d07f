package evaluate

// Outcome is the result of evaluating one expression: either a value from the
// dynamic domain, or nothing at all. Nothing is produced only by a literal
// with an absent payload (the literal `nil` before it is used as an operand),
// and is distinct from a computed nil value so the top-level driver can tell
// "printed nil" apart from "nothing to print". Failures travel on the error
// return of Evaluate, never inside an Outcome.
type Outcome struct {
	value   any
	present bool
}

func None() Outcome {
	return Outcome{}
}

func Of(v any) Outcome {
	return Outcome{value: v, present: true}
}

// Value returns the carried value and whether one is present.
func (o Outcome) Value() (any, bool) {
	return o.value, o.present
}

// Operand collapses the outcome into an operand value: an absent outcome is
// consumed by enclosing operators as nil.
func (o Outcome) Operand() any {
	return o.value
}

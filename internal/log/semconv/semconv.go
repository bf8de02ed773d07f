package semconv

const (
	// Unique ID for one CLI invocation; every log line of a run carries it.
	RunID = "run_id"

	// Name of the built-in sample tree being inspected.
	Sample = "sample"

	// Source line carried by a runtime error's operator token.
	Line = "line"
)

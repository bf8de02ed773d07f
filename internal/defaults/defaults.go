package defaults

import (
	"go.opentelemetry.io/otel/trace/noop"
)

// TraceProvider is the provider used when tracing is not enabled.
var TraceProvider = noop.NewTracerProvider()

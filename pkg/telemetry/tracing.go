package telemetry

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// DefaultTracerName is the tracer name used by Velocity components.
const DefaultTracerName = "velocity"

// Tracer returns the named tracer from the global provider, defaulting
// to DefaultTracerName when name is empty. Components that trace
// (currently the resource cache) accept a trace.Tracer, so a test or an
// application can substitute its own provider.
func Tracer(name string) trace.Tracer {
	if name == "" {
		name = DefaultTracerName
	}
	return otel.Tracer(name)
}

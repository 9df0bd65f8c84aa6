package velocity

import (
	"github.com/pochita1998/velocity-framework/pkg/boundary"
)

// =============================================================================
// Error boundaries
// =============================================================================

// Component produces a render result. Used by error boundaries for both the
// guarded component and its fallback.
type Component = boundary.Component

// ErrorHandler observes a component failure caught by an error boundary.
type ErrorHandler = boundary.Handler

// CreateErrorBoundary wraps component so that a panic during its execution
// is caught, reported to every registered error handler, and replaced by
// the fallback's result. A panic in the fallback itself propagates.
func CreateErrorBoundary(component, fallback Component) Component {
	return boundary.Wrap(component, fallback)
}

// OnError registers a handler invoked for every failure caught by an error
// boundary, in registration order.
func OnError(h ErrorHandler) {
	boundary.OnError(h)
}

func resetHandlers() {
	boundary.ResetHandlers()
}

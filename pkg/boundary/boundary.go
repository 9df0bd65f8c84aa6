// Package boundary wraps components so a failure is intercepted,
// fanned out to registered handlers, and substituted with a fallback
// result instead of propagating.
package boundary

import (
	"log/slog"
	"sync"
)

// Component is a computation guarded by a boundary. Failure is
// signalled by panicking.
type Component func() any

// Handler receives the failure value when a guarded component fails.
type Handler func(failure any)

var (
	handlersMu sync.Mutex
	handlers   []Handler
	logger     = slog.Default().With("component", "boundary")
)

// OnError registers a global error handler. Handlers run in
// registration order on every guarded failure.
func OnError(h Handler) {
	if h == nil {
		return
	}
	handlersMu.Lock()
	defer handlersMu.Unlock()
	handlers = append(handlers, h)
}

// ResetHandlers clears the global handler list. Intended for tests.
func ResetHandlers() {
	handlersMu.Lock()
	defer handlersMu.Unlock()
	handlers = nil
}

// SetLogger replaces the logger used when a boundary catches a failure.
func SetLogger(l *slog.Logger) {
	if l != nil {
		logger = l
	}
}

// Wrap returns a guarded version of component. If the component fails,
// every registered handler is invoked in registration order with the
// failure value, and the call returns fallback()'s result instead of
// propagating. A failure inside fallback itself is not guarded.
func Wrap(component, fallback Component) Component {
	return func() (result any) {
		defer func() {
			if failure := recover(); failure != nil {
				logger.Error("boundary caught failure", "error", failure)

				handlersMu.Lock()
				registered := make([]Handler, len(handlers))
				copy(registered, handlers)
				handlersMu.Unlock()

				for _, h := range registered {
					h(failure)
				}

				result = fallback()
			}
		}()
		return component()
	}
}

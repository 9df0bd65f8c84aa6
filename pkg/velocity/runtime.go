package velocity

import (
	"log/slog"
	"sync"
)

// SignalID identifies a signal within a Runtime.
// IDs are plain handles into the runtime's owned state; holding an ID
// never keeps the underlying signal alive or gives exclusive access.
type SignalID uint64

// EffectID identifies an effect within a Runtime.
type EffectID uint64

// signalState is the runtime-owned state of one signal.
type signalState struct {
	// value is the current value. Values are opaque to the runtime and
	// stored by assignment; they are never deep-copied.
	value any

	// subscribers are exactly the effects whose most recent run read
	// this signal, in subscription order.
	subscribers []EffectID
}

// effectState is the runtime-owned state of one effect.
type effectState struct {
	// body is the side-effecting computation.
	body func()

	// deps are exactly the signals read during the latest run.
	deps []SignalID
}

// Runtime owns all reactive state: signals, effects, and the
// current-computation stack consulted by Read during effect execution.
//
// A Runtime is created once at startup and threaded through call sites
// (or reached via Default()). All propagation is synchronous and
// unbatched: Set runs subscribers before it returns, and an effect body
// that writes recurses into a nested notify cycle. The runtime lock is
// never held while an effect body runs, so re-entrant writes cannot
// deadlock.
type Runtime struct {
	mu sync.Mutex

	nextSignalID SignalID
	nextEffectID EffectID

	signals map[SignalID]*signalState
	effects map[EffectID]*effectState

	// stack holds the currently running computations, innermost last.
	// Read consults the top entry to record dependency edges.
	stack []EffectID

	logger *slog.Logger
}

// RuntimeOption configures a Runtime.
type RuntimeOption func(*Runtime)

// WithLogger sets the logger used for effect failure reports.
func WithLogger(logger *slog.Logger) RuntimeOption {
	return func(rt *Runtime) {
		rt.logger = logger
	}
}

// New creates an empty Runtime.
func New(opts ...RuntimeOption) *Runtime {
	rt := &Runtime{
		signals: make(map[SignalID]*signalState),
		effects: make(map[EffectID]*effectState),
	}
	for _, opt := range opts {
		opt(rt)
	}
	if rt.logger == nil {
		rt.logger = slog.Default().With("component", "runtime")
	}
	return rt
}

// Reset discards all signals, effects, and tracking state.
// Intended for tests that share a runtime across cases.
func (rt *Runtime) Reset() {
	rt.mu.Lock()
	defer rt.mu.Unlock()

	rt.signals = make(map[SignalID]*signalState)
	rt.effects = make(map[EffectID]*effectState)
	rt.stack = nil
	rt.nextSignalID = 0
	rt.nextEffectID = 0
}

// Logger returns the runtime's logger.
func (rt *Runtime) Logger() *slog.Logger {
	return rt.logger
}

// defaultRuntime is the process-wide runtime used by the package-level API.
var (
	defaultRuntime   *Runtime
	defaultRuntimeMu sync.Mutex
)

// Default returns the process-wide Runtime, creating it on first use.
func Default() *Runtime {
	defaultRuntimeMu.Lock()
	defer defaultRuntimeMu.Unlock()

	if defaultRuntime == nil {
		defaultRuntime = New()
	}
	return defaultRuntime
}

// Package velocity provides the public API for the Velocity reactive runtime.
//
// This is the recommended import for most applications:
//
//	import "github.com/pochita1998/velocity-framework"
//
// Usage:
//
//	count, setCount := velocity.CreateSignal(0)
//	velocity.CreateEffect(func() {
//	    fmt.Println("count is", count())
//	})
//	setCount(1) // effect reruns synchronously
package velocity

import (
	"sync"

	"github.com/pochita1998/velocity-framework/pkg/resource"
	corevelocity "github.com/pochita1998/velocity-framework/pkg/velocity"
)

// =============================================================================
// Core types
// =============================================================================

// SignalID identifies a signal within the runtime.
type SignalID = corevelocity.SignalID

// EffectID identifies an effect within the runtime.
type EffectID = corevelocity.EffectID

// Runtime owns signals, effects, and the dependency graph between them.
// The package-level functions below operate on the default runtime; create
// a Runtime directly when you need an isolated graph.
type Runtime = corevelocity.Runtime

// NewRuntime creates an isolated runtime. Most applications use the
// package-level functions instead, which share a process-wide default.
func NewRuntime(opts ...corevelocity.RuntimeOption) *Runtime {
	return corevelocity.New(opts...)
}

var (
	cacheOnce    sync.Once
	defaultCache *resource.Cache
)

// DefaultCache returns the process-wide resource cache used by
// CreateResource and the hydration helpers.
func DefaultCache() *resource.Cache {
	cacheOnce.Do(func() {
		defaultCache = resource.NewCache()
	})
	return defaultCache
}

// =============================================================================
// Signals and effects
// =============================================================================

// CreateSignal registers a reactive value on the default runtime and returns
// a getter/setter pair. Reading through the getter inside an effect records
// a dependency; writing through the setter reruns subscribed effects
// synchronously before it returns.
func CreateSignal(initial any) (get func() any, set func(any)) {
	return corevelocity.Default().Signal(initial)
}

// CreateEffect registers fn on the default runtime and runs it once
// immediately. Dependencies are rediscovered on every run, so conditional
// reads subscribe only to the signals actually touched.
func CreateEffect(fn func()) EffectID {
	return corevelocity.Default().CreateEffect(fn)
}

// =============================================================================
// Metrics
// =============================================================================

// Metrics is a point-in-time census of the default runtime and cache.
type Metrics struct {
	SignalCount   int `json:"signal_count"`
	EffectCount   int `json:"effect_count"`
	ResourceCount int `json:"resource_count"`
}

// GetMetrics reports how many signals, effects, and cached resources are
// currently live.
func GetMetrics() Metrics {
	m := corevelocity.Default().Metrics()
	return Metrics{
		SignalCount:   m.SignalCount,
		EffectCount:   m.EffectCount,
		ResourceCount: DefaultCache().Len(),
	}
}

// Reset clears the default runtime, the default resource cache, and all
// registered error handlers. Intended for tests.
func Reset() {
	corevelocity.Default().Reset()
	DefaultCache().Clear()
	resetHandlers()
}

// Package velocity provides the reactive core for the Velocity framework.
//
// The reactive system provides fine-grained reactivity where dependencies
// are discovered at run time: reading a signal during an effect run
// subscribes that effect to the signal's changes, and every run rebuilds
// the effect's dependency set from scratch, so a signal read only inside
// an untaken branch stops triggering re-runs.
//
// # Core Model
//
// All state lives in a Runtime, an explicit context object constructed
// once at startup. Signals and effects are addressed by integer handles
// (SignalID, EffectID) into runtime-owned collections; handles never own
// the underlying state.
//
//	rt := velocity.New()
//	s := rt.CreateSignal(0)
//	rt.CreateEffect(func() {
//	    fmt.Println("count:", rt.Read(s))
//	})
//	rt.Set(s, 5) // re-runs the effect synchronously
//
// Compiler-generated code consumes the closure-pair form:
//
//	get, set := rt.Signal(0)
//
// # Propagation
//
// Propagation is synchronous and unbatched. Set captures the subscriber
// list before mutating, then runs each subscriber in capture order before
// returning. An effect body that writes recurses into a nested cycle;
// depth is unbounded and mutually recursive effects are not detected.
//
// # Failure
//
// An effect body that panics is recovered, reported through the runtime's
// logger, and never re-thrown. The current-computation slot is released
// on every exit path, so a failed run cannot leave the runtime tracking.
package velocity

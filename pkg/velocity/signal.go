package velocity

// CreateSignal allocates a fresh signal holding initial and returns its ID.
// It never fails.
func (rt *Runtime) CreateSignal(initial any) SignalID {
	rt.mu.Lock()
	defer rt.mu.Unlock()

	rt.nextSignalID++
	id := rt.nextSignalID
	rt.signals[id] = &signalState{value: initial}
	return id
}

// Read returns the signal's current value.
//
// If a computation is running, Read records a dependency edge in both
// directions: the signal is added to the computation's dependency set and
// the computation is added to the signal's subscriber set. Both additions
// are idempotent, so reading the same signal twice in one run subscribes
// once.
//
// Reading an unknown ID returns nil rather than failing.
func (rt *Runtime) Read(id SignalID) any {
	rt.mu.Lock()
	defer rt.mu.Unlock()

	sig, ok := rt.signals[id]
	if !ok {
		return nil
	}

	if len(rt.stack) > 0 {
		eid := rt.stack[len(rt.stack)-1]
		sig.addSubscriber(eid)
		if eff, ok := rt.effects[eid]; ok {
			eff.addDep(id)
		}
	}

	return sig.value
}

// Write replaces the signal's value and returns the subscriber list
// captured before the mutation. It does not run anything itself: the
// caller iterates the returned list, so no internal state is being
// mutated while effects (which may themselves write) execute.
//
// Writing an unknown ID stores nothing and returns no subscribers.
func (rt *Runtime) Write(id SignalID, value any) []EffectID {
	rt.mu.Lock()
	defer rt.mu.Unlock()

	sig, ok := rt.signals[id]
	if !ok {
		return nil
	}

	// Capture subscribers before mutating so the notify order is the
	// order at write time, not whatever re-runs leave behind.
	subs := make([]EffectID, len(sig.subscribers))
	copy(subs, sig.subscribers)

	sig.value = value
	return subs
}

// Set writes value and synchronously re-runs every captured subscriber,
// in capture order, with no batching. An effect body may call Set again;
// the nested write→notify cycle completes before the outer cycle's
// remaining subscribers run. Depth is unbounded and mutually recursive
// effects are not detected.
func (rt *Runtime) Set(id SignalID, value any) {
	subs := rt.Write(id, value)
	for _, eid := range subs {
		rt.runEffect(eid)
	}
}

// Signal allocates a signal and returns a get/set closure pair, the form
// consumed by compiler-generated code.
func (rt *Runtime) Signal(initial any) (get func() any, set func(any)) {
	id := rt.CreateSignal(initial)
	get = func() any { return rt.Read(id) }
	set = func(v any) { rt.Set(id, v) }
	return get, set
}

// addSubscriber records an effect as a subscriber, idempotently.
func (s *signalState) addSubscriber(id EffectID) {
	for _, existing := range s.subscribers {
		if existing == id {
			return
		}
	}
	s.subscribers = append(s.subscribers, id)
}

// removeSubscriber drops an effect from the subscriber list, preserving
// the order of the remaining subscribers.
func (s *signalState) removeSubscriber(id EffectID) {
	for i, existing := range s.subscribers {
		if existing == id {
			s.subscribers = append(s.subscribers[:i], s.subscribers[i+1:]...)
			return
		}
	}
}

// addDep records a signal in the effect's dependency set, idempotently.
func (e *effectState) addDep(id SignalID) {
	for _, existing := range e.deps {
		if existing == id {
			return
		}
	}
	e.deps = append(e.deps, id)
}

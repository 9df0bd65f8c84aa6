package velocity

// CreateEffect registers a side-effecting computation and immediately
// performs its first run, discovering its initial dependency set.
func (rt *Runtime) CreateEffect(body func()) EffectID {
	rt.mu.Lock()
	rt.nextEffectID++
	id := rt.nextEffectID
	rt.effects[id] = &effectState{body: body}
	rt.mu.Unlock()

	rt.runEffect(id)
	return id
}

// runEffect executes one effect run.
//
// Each run rebuilds the effect's dependency edges from scratch: the
// effect is first detached from every signal it read last run, then its
// body executes with the effect pushed as the current computation, so
// reads repopulate fresh edges. A signal read only inside an untaken
// branch is therefore dropped and stops triggering re-runs until a later
// run reads it again.
//
// The computation slot is popped on every exit path. A panicking body is
// recovered and logged, never re-thrown, so the runtime is not left in
// the "active" state and the write cycle that triggered the run
// continues with its remaining subscribers.
func (rt *Runtime) runEffect(id EffectID) {
	rt.mu.Lock()
	eff, ok := rt.effects[id]
	if !ok {
		rt.mu.Unlock()
		return
	}

	for _, sid := range eff.deps {
		if sig, ok := rt.signals[sid]; ok {
			sig.removeSubscriber(id)
		}
	}
	eff.deps = eff.deps[:0]

	rt.stack = append(rt.stack, id)
	body := eff.body
	rt.mu.Unlock()

	defer func() {
		rt.mu.Lock()
		rt.stack = rt.stack[:len(rt.stack)-1]
		rt.mu.Unlock()

		if r := recover(); r != nil {
			rt.logger.Error("effect failed", "effect", uint64(id), "error", r)
		}
	}()

	// The lock is not held here: the body may call Set and recurse into
	// nested runs without deadlocking.
	body()
}

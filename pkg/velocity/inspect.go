package velocity

import "sort"

// Metrics is a point-in-time count of live reactive primitives.
type Metrics struct {
	SignalCount int `json:"signalCount"`
	EffectCount int `json:"effectCount"`
}

// Metrics returns counts of live signals and effects.
func (rt *Runtime) Metrics() Metrics {
	rt.mu.Lock()
	defer rt.mu.Unlock()

	return Metrics{
		SignalCount: len(rt.signals),
		EffectCount: len(rt.effects),
	}
}

// SignalInfo describes one signal for inspection tooling.
type SignalInfo struct {
	ID          SignalID `json:"id"`
	Value       any      `json:"value"`
	Subscribers int      `json:"subscribers"`
}

// EffectInfo describes one effect for inspection tooling.
type EffectInfo struct {
	ID           EffectID `json:"id"`
	Dependencies int      `json:"dependencies"`
}

// Signals returns a snapshot of every live signal, ordered by ID.
// Values are the stored references, not copies.
func (rt *Runtime) Signals() []SignalInfo {
	rt.mu.Lock()
	defer rt.mu.Unlock()

	infos := make([]SignalInfo, 0, len(rt.signals))
	for id, sig := range rt.signals {
		infos = append(infos, SignalInfo{
			ID:          id,
			Value:       sig.value,
			Subscribers: len(sig.subscribers),
		})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].ID < infos[j].ID })
	return infos
}

// Effects returns a snapshot of every live effect, ordered by ID.
func (rt *Runtime) Effects() []EffectInfo {
	rt.mu.Lock()
	defer rt.mu.Unlock()

	infos := make([]EffectInfo, 0, len(rt.effects))
	for id, eff := range rt.effects {
		infos = append(infos, EffectInfo{
			ID:           id,
			Dependencies: len(eff.deps),
		})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].ID < infos[j].ID })
	return infos
}

// SnapshotValues returns every live signal's current value by ID,
// without recording dependencies. Values are the stored references,
// not deep copies. Used by the hydration bridge.
func (rt *Runtime) SnapshotValues() map[SignalID]any {
	rt.mu.Lock()
	defer rt.mu.Unlock()

	values := make(map[SignalID]any, len(rt.signals))
	for id, sig := range rt.signals {
		values[id] = sig.value
	}
	return values
}

// Restore overwrites the stored value for every ID present in both
// values and the live store, bypassing Write: no subscriber is notified.
// Intended for hydration, before the effect graph observing the state
// exists. IDs with no live signal are ignored.
func (rt *Runtime) Restore(values map[SignalID]any) {
	rt.mu.Lock()
	defer rt.mu.Unlock()

	for id, v := range values {
		if sig, ok := rt.signals[id]; ok {
			sig.value = v
		}
	}
}

package velocity

import (
	"log/slog"
	"testing"
)

func TestSignalReadWrite(t *testing.T) {
	rt := New()

	s := rt.CreateSignal(0)
	if got := rt.Read(s); got != 0 {
		t.Errorf("expected initial value 0, got %v", got)
	}

	rt.Set(s, 5)
	if got := rt.Read(s); got != 5 {
		t.Errorf("expected value 5, got %v", got)
	}
}

func TestSignalOpaqueValues(t *testing.T) {
	rt := New()

	// Values are stored by assignment, not copied.
	m := map[string]int{"a": 1}
	s := rt.CreateSignal(m)

	got, ok := rt.Read(s).(map[string]int)
	if !ok {
		t.Fatalf("expected map value, got %T", rt.Read(s))
	}
	m["b"] = 2
	if len(got) != 2 {
		t.Errorf("expected stored reference to observe mutation, got %v", got)
	}
}

func TestReadUnknownSignal(t *testing.T) {
	rt := New()

	if got := rt.Read(42); got != nil {
		t.Errorf("expected nil for unknown signal, got %v", got)
	}
}

func TestWriteWithoutSubscribersRunsNothing(t *testing.T) {
	rt := New()

	s := rt.CreateSignal("a")
	subs := rt.Write(s, "b")
	if len(subs) != 0 {
		t.Errorf("expected no subscribers, got %v", subs)
	}
	if got := rt.Read(s); got != "b" {
		t.Errorf("expected value b, got %v", got)
	}
}

func TestWriteCapturesSubscribersBeforeMutation(t *testing.T) {
	rt := New()

	s := rt.CreateSignal(1)
	runs := 0
	rt.CreateEffect(func() {
		_ = rt.Read(s)
		runs++
	})

	subs := rt.Write(s, 2)
	if len(subs) != 1 {
		t.Fatalf("expected 1 captured subscriber, got %d", len(subs))
	}
	// Write alone must not run anything.
	if runs != 1 {
		t.Errorf("expected 1 run after Write, got %d", runs)
	}
}

func TestSignalClosurePair(t *testing.T) {
	rt := New()

	get, set := rt.Signal(10)
	if got := get(); got != 10 {
		t.Errorf("expected 10, got %v", got)
	}

	set(20)
	if got := get(); got != 20 {
		t.Errorf("expected 20, got %v", got)
	}
}

func TestClosurePairTracksInsideEffect(t *testing.T) {
	rt := New()

	get, set := rt.Signal(0)

	var recorded []any
	rt.CreateEffect(func() {
		recorded = append(recorded, get())
	})

	set(5)
	if len(recorded) != 2 || recorded[0] != 0 || recorded[1] != 5 {
		t.Errorf("expected [0 5], got %v", recorded)
	}
}

func TestRepeatedReadSubscribesOnce(t *testing.T) {
	rt := New()

	s := rt.CreateSignal(0)
	runs := 0
	rt.CreateEffect(func() {
		_ = rt.Read(s)
		_ = rt.Read(s)
		_ = rt.Read(s)
		runs++
	})

	rt.Set(s, 1)
	if runs != 2 {
		t.Errorf("expected 2 runs (initial + one notify), got %d", runs)
	}
}

func TestReset(t *testing.T) {
	rt := New(WithLogger(slog.Default()))

	rt.CreateSignal(1)
	rt.CreateEffect(func() {})
	rt.Reset()

	m := rt.Metrics()
	if m.SignalCount != 0 || m.EffectCount != 0 {
		t.Errorf("expected empty runtime after Reset, got %+v", m)
	}

	// IDs restart from 1 after a reset.
	if id := rt.CreateSignal(0); id != 1 {
		t.Errorf("expected first signal ID 1 after Reset, got %d", id)
	}
}

func TestMetrics(t *testing.T) {
	rt := New()

	rt.CreateSignal(1)
	rt.CreateSignal(2)
	rt.CreateEffect(func() {})

	m := rt.Metrics()
	if m.SignalCount != 2 {
		t.Errorf("expected 2 signals, got %d", m.SignalCount)
	}
	if m.EffectCount != 1 {
		t.Errorf("expected 1 effect, got %d", m.EffectCount)
	}
}

func TestSignalsInspection(t *testing.T) {
	rt := New()

	a := rt.CreateSignal("x")
	b := rt.CreateSignal("y")
	rt.CreateEffect(func() {
		_ = rt.Read(b)
	})

	infos := rt.Signals()
	if len(infos) != 2 {
		t.Fatalf("expected 2 signal infos, got %d", len(infos))
	}
	if infos[0].ID != a || infos[1].ID != b {
		t.Errorf("expected infos ordered by ID, got %v then %v", infos[0].ID, infos[1].ID)
	}
	if infos[0].Subscribers != 0 || infos[1].Subscribers != 1 {
		t.Errorf("expected subscriber counts [0 1], got [%d %d]",
			infos[0].Subscribers, infos[1].Subscribers)
	}
}

func TestDefaultRuntime(t *testing.T) {
	if Default() != Default() {
		t.Error("Default should return the same runtime")
	}
}

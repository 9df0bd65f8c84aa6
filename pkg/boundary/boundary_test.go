package boundary

import "testing"

func TestWrapReturnsComponentResult(t *testing.T) {
	ResetHandlers()

	guarded := Wrap(func() any { return "ok" }, func() any { return "fallback" })
	if got := guarded(); got != "ok" {
		t.Errorf("expected ok, got %v", got)
	}
}

func TestWrapSubstitutesFallbackOnFailure(t *testing.T) {
	ResetHandlers()

	guarded := Wrap(
		func() any { panic("broken component") },
		func() any { return "fallback" },
	)
	if got := guarded(); got != "fallback" {
		t.Errorf("expected fallback, got %v", got)
	}
}

func TestHandlersRunInRegistrationOrder(t *testing.T) {
	ResetHandlers()

	var calls []string
	OnError(func(failure any) {
		calls = append(calls, "first:"+failure.(string))
	})
	OnError(func(failure any) {
		calls = append(calls, "second:"+failure.(string))
	})

	guarded := Wrap(func() any { panic("boom") }, func() any { return nil })
	guarded()

	if len(calls) != 2 || calls[0] != "first:boom" || calls[1] != "second:boom" {
		t.Errorf("expected ordered handler fan-out, got %v", calls)
	}

	// Handlers run exactly once per failure.
	guarded()
	if len(calls) != 4 {
		t.Errorf("expected 4 handler calls after second failure, got %d", len(calls))
	}
}

func TestHandlersNotCalledOnSuccess(t *testing.T) {
	ResetHandlers()

	called := false
	OnError(func(failure any) { called = true })

	Wrap(func() any { return 1 }, func() any { return 2 })()
	if called {
		t.Error("handler must not run when the component succeeds")
	}
}

func TestFallbackFailureIsNotGuarded(t *testing.T) {
	ResetHandlers()

	guarded := Wrap(
		func() any { panic("first") },
		func() any { panic("fallback failed") },
	)

	defer func() {
		if r := recover(); r != "fallback failed" {
			t.Errorf("expected fallback panic to propagate, got %v", r)
		}
	}()
	guarded()
}

func TestNilHandlerIgnored(t *testing.T) {
	ResetHandlers()

	OnError(nil)
	guarded := Wrap(func() any { panic("x") }, func() any { return "ok" })
	if got := guarded(); got != "ok" {
		t.Errorf("expected fallback result, got %v", got)
	}
}

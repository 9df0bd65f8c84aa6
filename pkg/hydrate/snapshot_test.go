package hydrate

import (
	"context"
	"testing"
	"time"

	"github.com/pochita1998/velocity-framework/pkg/resource"
	"github.com/pochita1998/velocity-framework/pkg/velocity"
)

func waitReady(t *testing.T, c *resource.Cache, key string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if _, loading, _ := c.State(key); !loading {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("resource %q never resolved", key)
}

func TestSignalRoundTrip(t *testing.T) {
	server := velocity.New()
	a := server.CreateSignal("hello")
	b := server.CreateSignal(7)

	snap := Serialize(server, nil)

	// Fresh store with matching IDs: creation order reproduces them.
	client := velocity.New()
	ca := client.CreateSignal("")
	cb := client.CreateSignal(0)
	Deserialize(client, nil, snap)

	if got := client.Read(ca); got != "hello" {
		t.Errorf("expected %q for signal %d, got %v", "hello", a, got)
	}
	if got := client.Read(cb); got != 7 {
		t.Errorf("expected 7 for signal %d, got %v", b, got)
	}
}

func TestDeserializeBypassesNotification(t *testing.T) {
	rt := velocity.New()
	s := rt.CreateSignal(1)

	runs := 0
	rt.CreateEffect(func() {
		_ = rt.Read(s)
		runs++
	})

	snap := &Snapshot{Signals: map[velocity.SignalID]any{s: 99}}
	Deserialize(rt, nil, snap)

	if runs != 1 {
		t.Errorf("expected no effect run during restore, got %d runs", runs)
	}
	if got := rt.Read(s); got != 99 {
		t.Errorf("expected restored value 99, got %v", got)
	}
}

func TestDeserializeIgnoresUnknownIDs(t *testing.T) {
	rt := velocity.New()
	s := rt.CreateSignal("keep")

	snap := &Snapshot{Signals: map[velocity.SignalID]any{s + 100: "drop"}}
	Deserialize(rt, nil, snap)

	if got := rt.Read(s); got != "keep" {
		t.Errorf("expected untouched value, got %v", got)
	}
	if m := rt.Metrics(); m.SignalCount != 1 {
		t.Errorf("restore must not create signals, got %d", m.SignalCount)
	}
}

func TestResourceRoundTripDropsError(t *testing.T) {
	cache := resource.NewCache()
	cache.Request("ok", func(ctx context.Context) (any, error) { return "data", nil })
	cache.RestoreEntry("pending", nil, true)
	waitReady(t, cache, "ok")

	// Manufacture an error entry.
	cache.Request("bad", func(ctx context.Context) (any, error) { return nil, errFetch })
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if _, _, errMsg := cache.State("bad"); errMsg != "" {
			break
		}
		time.Sleep(time.Millisecond)
	}

	snap := Serialize(nil, cache)
	if len(snap.Resources) != 3 {
		t.Fatalf("expected 3 resource snapshots, got %d", len(snap.Resources))
	}

	restored := resource.NewCache()
	Deserialize(nil, restored, snap)

	data, loading, errMsg := restored.State("ok")
	if data != "data" || loading || errMsg != "" {
		t.Errorf("expected ready entry, got (%v, %v, %q)", data, loading, errMsg)
	}

	_, loading, _ = restored.State("pending")
	if !loading {
		t.Error("expected loading flag preserved")
	}

	// Error state never crosses the boundary.
	_, _, errMsg = restored.State("bad")
	if errMsg != "" {
		t.Errorf("expected error dropped in transit, got %q", errMsg)
	}
}

func TestSnapshotJSONRoundTrip(t *testing.T) {
	rt := velocity.New()
	rt.CreateSignal("x")

	cache := resource.NewCache()
	cache.RestoreEntry("k", "v", false)

	encoded, err := Encode(Serialize(rt, cache))
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	snap, err := Decode(encoded)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if snap.Version != CurrentSnapshotVersion {
		t.Errorf("expected version %d, got %d", CurrentSnapshotVersion, snap.Version)
	}
	if snap.Signals[1] != "x" {
		t.Errorf("expected signal 1 = x, got %v", snap.Signals[1])
	}
	if rs, ok := snap.Resources["k"]; !ok || rs.Data != "v" || rs.Loading {
		t.Errorf("expected resource k preserved, got %+v (%v)", snap.Resources["k"], ok)
	}
}

var errFetch = fetchError("upstream down")

type fetchError string

func (e fetchError) Error() string { return string(e) }

package hydrate

import (
	"errors"
	"testing"

	"github.com/pochita1998/velocity-framework/pkg/dom"
)

func TestIslandLifecycle(t *testing.T) {
	d := dom.NewMemoryDocument()
	n, _ := d.CreateElement("div")

	if NeedsHydration(n) {
		t.Error("unmarked region must not need hydration")
	}

	if err := MarkIsland(n, "counter"); err != nil {
		t.Fatalf("MarkIsland: %v", err)
	}
	if id, _ := n.Attr(AttrIsland); id != "counter" {
		t.Errorf("expected island id counter, got %q", id)
	}
	if !NeedsHydration(n) {
		t.Error("marked region must need hydration")
	}

	if err := MarkHydrated(n); err != nil {
		t.Fatalf("MarkHydrated: %v", err)
	}
	if NeedsHydration(n) {
		t.Error("hydrated region must not need hydration")
	}
	if v, _ := n.Attr(AttrHydrate); v != HydrateComplete {
		t.Errorf("expected %q, got %q", HydrateComplete, v)
	}
}

func TestIslandsToHydrateDocumentOrder(t *testing.T) {
	d := dom.NewMemoryDocument()
	first, _ := d.CreateElement("header")
	nested, _ := d.CreateElement("section")
	last, _ := d.CreateElement("footer")
	static, _ := d.CreateElement("main")

	d.AppendChild(d.Root(), first)
	d.AppendChild(d.Root(), static)
	d.AppendChild(static, nested)
	d.AppendChild(d.Root(), last)

	MarkIsland(first, "a")
	MarkIsland(nested, "b")
	MarkIsland(last, "c")
	MarkHydrated(last)

	pending := IslandsToHydrate(d.Root())
	if len(pending) != 2 {
		t.Fatalf("expected 2 pending islands, got %d", len(pending))
	}
	if pending[0] != first || pending[1] != nested {
		t.Error("expected pending islands in document order")
	}
}

func TestRepeatedScansMatchSamePendingIsland(t *testing.T) {
	d := dom.NewMemoryDocument()
	region, _ := d.CreateElement("div")
	d.AppendChild(d.Root(), region)
	MarkIsland(region, "widget")

	// The lifecycle is cooperative: until something calls MarkHydrated,
	// every scan keeps matching the same region, so two scanners can
	// each hydrate it.
	first := IslandsToHydrate(d.Root())
	second := IslandsToHydrate(d.Root())
	if len(first) != 1 || first[0] != region {
		t.Fatalf("first scan = %v, want the pending region", first)
	}
	if len(second) != 1 || second[0] != region {
		t.Fatalf("second scan = %v, want the same pending region", second)
	}

	MarkHydrated(region)
	if got := IslandsToHydrate(d.Root()); len(got) != 0 {
		t.Errorf("expected no pending islands after MarkHydrated, got %d", len(got))
	}
}

func TestHydrateRoot(t *testing.T) {
	d := dom.NewMemoryDocument()
	first, _ := d.CreateElement("header")
	second, _ := d.CreateElement("footer")
	d.AppendChild(d.Root(), first)
	d.AppendChild(d.Root(), second)
	MarkIsland(first, "a")
	MarkIsland(second, "b")
	MarkHydrated(second)

	n, err := HydrateRoot(d.Root())
	if err != nil {
		t.Fatalf("HydrateRoot: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 island closed, got %d", n)
	}
	if v, _ := d.Root().Attr(AttrHydrated); v != "true" {
		t.Errorf("expected root marked %s=true, got %q", AttrHydrated, v)
	}
	if NeedsHydration(first) {
		t.Error("pending island must be closed by HydrateRoot")
	}

	// A second pass finds nothing left to close.
	if n, err := HydrateRoot(d.Root()); err != nil || n != 0 {
		t.Errorf("second HydrateRoot = (%d, %v), want (0, nil)", n, err)
	}
}

func TestHydrateRootNilNode(t *testing.T) {
	if _, err := HydrateRoot(nil); !errors.Is(err, dom.ErrNilNode) {
		t.Errorf("expected ErrNilNode, got %v", err)
	}
}

func TestMarkIslandNilNode(t *testing.T) {
	if err := MarkIsland(nil, "x"); !errors.Is(err, dom.ErrNilNode) {
		t.Errorf("expected ErrNilNode, got %v", err)
	}
	if err := MarkHydrated(nil); !errors.Is(err, dom.ErrNilNode) {
		t.Errorf("expected ErrNilNode, got %v", err)
	}
}

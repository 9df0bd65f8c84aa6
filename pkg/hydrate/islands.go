package hydrate

import (
	"github.com/pochita1998/velocity-framework/pkg/dom"
)

// Island lifecycle attributes. A region is marked pending when rendered
// as an island and complete once client-side activation has run.
const (
	AttrIsland  = "data-island"
	AttrHydrate = "data-hydrate"

	HydratePending  = "pending"
	HydrateComplete = "complete"
)

// AttrHydrated marks a container whose subtree has been activated by
// HydrateRoot.
const AttrHydrated = "data-hydrated"

// MarkIsland marks a DOM region as an island that still needs
// client-side activation.
func MarkIsland(n *dom.Node, islandID string) error {
	if n == nil {
		return dom.ErrNilNode
	}
	n.Attrs = setAttr(n.Attrs, AttrIsland, islandID)
	n.Attrs = setAttr(n.Attrs, AttrHydrate, HydratePending)
	return nil
}

// NeedsHydration reports whether the region is still pending.
func NeedsHydration(n *dom.Node) bool {
	if n == nil {
		return false
	}
	v, ok := n.Attr(AttrHydrate)
	return ok && v == HydratePending
}

// MarkHydrated closes the region's lifecycle.
//
// The lifecycle is purely cooperative: nothing prevents two concurrent
// scans from matching the same region and hydrating it twice.
func MarkHydrated(n *dom.Node) error {
	if n == nil {
		return dom.ErrNilNode
	}
	n.Attrs = setAttr(n.Attrs, AttrHydrate, HydrateComplete)
	return nil
}

// IslandsToHydrate returns every pending island under root, in document
// order.
func IslandsToHydrate(root *dom.Node) []*dom.Node {
	var pending []*dom.Node
	root.Walk(func(n *dom.Node) {
		if NeedsHydration(n) {
			pending = append(pending, n)
		}
	})
	return pending
}

// HydrateRoot activates a server-rendered container: the root is marked
// hydrated and every pending island beneath it is closed. Returns how
// many islands were closed. Re-running on an already hydrated root
// closes nothing and is not an error.
func HydrateRoot(root *dom.Node) (int, error) {
	if root == nil {
		return 0, dom.ErrNilNode
	}
	root.Attrs = setAttr(root.Attrs, AttrHydrated, "true")

	islands := IslandsToHydrate(root)
	for _, n := range islands {
		n.Attrs = setAttr(n.Attrs, AttrHydrate, HydrateComplete)
	}
	return len(islands), nil
}

func setAttr(attrs map[string]string, name, value string) map[string]string {
	if attrs == nil {
		attrs = make(map[string]string)
	}
	attrs[name] = value
	return attrs
}

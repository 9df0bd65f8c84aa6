package velocity

import (
	"github.com/pochita1998/velocity-framework/pkg/dom"
	"github.com/pochita1998/velocity-framework/pkg/hydrate"
	corevelocity "github.com/pochita1998/velocity-framework/pkg/velocity"
)

// =============================================================================
// State serialization and hydration
// =============================================================================

// Snapshot captures signal values and resource entries for transfer
// between server and client.
type Snapshot = hydrate.Snapshot

// SerializeState encodes the default runtime's signal values and the
// default cache's entries as JSON, suitable for embedding in a rendered
// page. Resource error states are intentionally not carried across.
func SerializeState() ([]byte, error) {
	return hydrate.Encode(hydrate.Serialize(corevelocity.Default(), DefaultCache()))
}

// DeserializeState restores a snapshot produced by SerializeState into the
// default runtime and cache. Signal values are written directly, without
// notifying effects; unknown signal IDs are ignored.
func DeserializeState(data []byte) error {
	snap, err := hydrate.Decode(data)
	if err != nil {
		return err
	}
	hydrate.Deserialize(corevelocity.Default(), DefaultCache(), snap)
	return nil
}

// MarkIsland tags n as an interactive island awaiting hydration.
func MarkIsland(n *dom.Node, islandID string) error {
	return hydrate.MarkIsland(n, islandID)
}

// NeedsHydration reports whether n is an island still awaiting hydration.
func NeedsHydration(n *dom.Node) bool {
	return hydrate.NeedsHydration(n)
}

// MarkHydrated records that n's island has been activated.
func MarkHydrated(n *dom.Node) error {
	return hydrate.MarkHydrated(n)
}

// GetIslandsToHydrate returns the pending islands under root in document
// order.
func GetIslandsToHydrate(root *dom.Node) []*dom.Node {
	return hydrate.IslandsToHydrate(root)
}

// HydrateRoot marks root as hydrated and closes every pending island
// beneath it, returning how many were closed.
func HydrateRoot(root *dom.Node) (int, error) {
	return hydrate.HydrateRoot(root)
}

package hydrate

import (
	"encoding/json"

	"github.com/pochita1998/velocity-framework/pkg/resource"
	"github.com/pochita1998/velocity-framework/pkg/velocity"
)

// CurrentSnapshotVersion is the serialization format version.
// Increment when making breaking changes to the format.
const CurrentSnapshotVersion = 1

// ResourceSnapshot is the serialized form of one cache entry. Error
// state is intentionally omitted: a server-side fetch failure is not
// carried across the boundary, the client refetches instead.
type ResourceSnapshot struct {
	Data    any  `json:"data"`
	Loading bool `json:"loading"`
}

// Snapshot is the serializable state of a runtime and resource cache,
// produced on the server and replayed once on the client.
type Snapshot struct {
	Signals   map[velocity.SignalID]any   `json:"signals"`
	Resources map[string]ResourceSnapshot `json:"resources"`
	Version   int                         `json:"version"`
}

// Serialize captures every live signal's current value by ID and every
// resource entry's {data, loading}. Values are the stored references,
// not deep copies.
func Serialize(rt *velocity.Runtime, cache *resource.Cache) *Snapshot {
	snap := &Snapshot{
		Signals:   make(map[velocity.SignalID]any),
		Resources: make(map[string]ResourceSnapshot),
		Version:   CurrentSnapshotVersion,
	}

	if rt != nil {
		snap.Signals = rt.SnapshotValues()
	}
	if cache != nil {
		for _, e := range cache.Entries() {
			snap.Resources[e.Key] = ResourceSnapshot{
				Data:    e.Data,
				Loading: e.Loading,
			}
		}
	}
	return snap
}

// Deserialize replays a snapshot into a live runtime and cache.
//
// Signal values are overwritten in place for IDs present in both the
// snapshot and the live store, bypassing Write: no subscriber is
// notified. It is intended to run before the effect graph observing
// that state exists. Resource entries are restored with no retained
// fetcher and no error state.
func Deserialize(rt *velocity.Runtime, cache *resource.Cache, snap *Snapshot) {
	if snap == nil {
		return
	}
	if rt != nil {
		rt.Restore(snap.Signals)
	}
	if cache != nil {
		for key, rs := range snap.Resources {
			cache.RestoreEntry(key, rs.Data, rs.Loading)
		}
	}
}

// Encode serializes a snapshot to JSON for crossing the boundary.
func Encode(snap *Snapshot) ([]byte, error) {
	return json.Marshal(snap)
}

// Decode parses a JSON snapshot.
func Decode(data []byte) (*Snapshot, error) {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

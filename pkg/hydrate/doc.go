// Package hydrate bridges reactive state across the server-render /
// client-hydrate boundary.
//
// Serialize snapshots every live signal value and every resource
// entry's {data, loading}; resource error state is deliberately lost in
// transit. Deserialize replays a snapshot verbatim, bypassing the write
// path so no effect runs during restore — it is meant to run before the
// effect graph observing that state is wired.
//
// Islands are DOM regions that still need client-side activation,
// tracked through data-island / data-hydrate attributes exactly as the
// thin client expects them.
package hydrate

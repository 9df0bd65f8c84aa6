// Package resource provides the key-addressed cache of asynchronous
// fetch results used by Velocity applications.
//
// Each key moves through absent → loading → ready or error. Request is
// the only operation that dispatches a fetch: an existing entry, in any
// state, is returned as-is, which is also how concurrent callers are
// deduplicated. Invalidate removes an entry without cancelling an
// in-flight fetch; the late completion overwrites whatever entry exists
// for the key by then, a documented race.
//
// The cache is deliberately decoupled from the reactive graph: fetch
// completion never notifies readers. Fetches are traced with
// OpenTelemetry spans and failures are logged, stored in the entry's
// error field, and surfaced as data — never thrown.
package resource

// Package server hosts a Velocity application on the server side: it
// renders the root component to HTML with hydration markers and an
// embedded state snapshot, and exposes the runtime's operational
// surface — Prometheus metrics, a health check, the raw snapshot, and a
// WebSocket devtools stream of live signal and resource tables.
//
// A snapshot store, when configured, is read once at startup to restore
// state and written on graceful shutdown.
package server

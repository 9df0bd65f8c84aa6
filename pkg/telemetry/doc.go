// Package telemetry exposes the runtime's inspection surface through
// Prometheus and OpenTelemetry.
//
// The Collector samples signal/effect/resource counts at scrape time;
// fetch counters come from the resource cache's cumulative stats.
package telemetry

// Package metric owns the Prometheus registry of the server.
//
//   - prometheus.go: Registry, command and connection metrics, /metrics handler
//   - collector.go: KeyspaceCollector, reads the key count at scrape time
//
// All Registry methods are safe on a nil *Registry, so callers that run
// without metrics pass nil instead of branching.
package metric

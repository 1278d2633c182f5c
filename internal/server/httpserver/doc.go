// Package httpserver provides the admin HTTP endpoint of the server.
//
// Routes:
//
//   - GET /metrics: Prometheus exposition of the metric registry
//   - GET /health: liveness, always 200 while the process serves HTTP
//   - GET /ready: readiness plus the current key count
//
// It carries no data-plane traffic; clients use the RESP port.
package httpserver

// Package main provides the entry point for rodent-server.
//
// rodent-server is a single-node in-memory key-value server speaking a
// subset of the Redis protocol.
//
// Usage:
//
//	rodent-server [--config FILE] [--host H] [--port P]
//
// Settings are taken from flags, then RODENT_* environment variables,
// then the config file, then built-in defaults. When admin.enabled is
// set, /metrics, /health and /ready are served on admin.addr.
package main

// Package redisserver serves the key-value store over TCP using the RESP
// subset implemented by pkg/resp.
//
// Each accepted connection gets its own goroutine running a strict
// request/reply loop: parse one frame, validate it, execute it against
// the shared store, write and flush the reply. Validation failures are
// answered with an Error reply and the connection stays open; I/O
// failures close the connection. An accept failure ends Serve.
package redisserver

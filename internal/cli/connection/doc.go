// Package connection manages the CLI's TCP connection to rodent-server.
//
//   - client.go: one connection, request encoding and reply decoding
//   - manager.go: the current connection and switching between servers
package connection

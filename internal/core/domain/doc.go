// Package domain defines the core types shared by the validator and the
// store:
//
//   - Command: one validated request (name, key, positional args)
//   - Object: the value stored under one key (scalar and/or list payload)
//   - Errors: request rejections carrying their client-facing reply text
//
// Types here have no IO dependencies.
package domain

// Package command holds the command table, the request validator and the
// per-command handlers.
//
// The table is data: each Spec carries the command name, its exact arity
// (request length including the name) and the handler that runs it against
// a Keyspace. Validate checks requests generically against the table, so no
// handler repeats argument-count checks.
package command

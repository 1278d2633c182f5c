// Package memory holds the in-memory keyspace.
//
// A Store is one map guarded by one mutex. Every command runs to
// completion while holding the lock, so commands from different
// connections are serialized and each one observes the effects of all
// commands that finished before it.
package memory

// Package store is the durability boundary of the shop: a key/value
// store with JSON (de)serialization, modeled after browser local
// storage. Every write is a whole-value overwrite; there is no
// transaction spanning keys. Two processes sharing one data directory
// race last-write-wins, which is an accepted limitation.
package store

// Store is the persistence contract consumed by the domain packages.
//
// Get reports whether a value was found. An unreadable stored value is
// treated as absent: it is logged and quarantined by the implementation,
// never surfaced to the caller (callers fall back to their zero state).
type Store interface {
	Get(key string, out any) bool
	Set(key string, v any) error
	Remove(key string) error
}

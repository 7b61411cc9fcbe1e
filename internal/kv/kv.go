// Package kv defines the key-value contract every storage backend satisfies
// and selects a backend from the configured path. Records are JSON strings
// under descriptive keys; one record per key.
package kv

import (
	"strings"
)

// Backend is the storage primitive the persistence gateway is built on.
// Get reports whether the key existed; a missing key is not an error.
// Keys enumerates every key with the given prefix (empty prefix = all keys).
type Backend interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
	Keys(prefix string) ([]string, error)
	Close() error
}

// Open picks a backend from the path: a ".db" suffix opens the SQLite
// backend, ".json" the flat-file backend, anything else the Badger directory
// backend.
func Open(path string) (Backend, error) {
	switch {
	case strings.HasSuffix(path, ".db"):
		return OpenSQLite(path)
	case strings.HasSuffix(path, ".json"):
		return OpenFile(path)
	default:
		return OpenBadger(path)
	}
}

// Package store is the persistence gateway: it layers JSON records for
// users, habits, completion logs, productivity logs, solved-puzzle sets, and
// reminder preferences on top of the kv.Backend contract. Collection reads
// degrade to empty results when individual records are unreadable; the
// failure is logged, never surfaced as a hard error to screens.
package store

import (
	"encoding/json"
	"fmt"

	"github.com/julianstephens/habitkit/internal/kv"
	"github.com/julianstephens/habitkit/internal/logger"
)

type Store struct {
	backend kv.Backend
	path    string
}

// Open selects a backend from the path (see kv.Open) and wraps it.
func Open(path string) (*Store, error) {
	backend, err := kv.Open(path)
	if err != nil {
		return nil, err
	}
	return New(backend, path), nil
}

// New wraps an already-open backend. Used by tests with in-memory backends.
func New(backend kv.Backend, path string) *Store {
	return &Store{backend: backend, path: path}
}

func (s *Store) Close() error {
	return s.backend.Close()
}

// Backend returns the underlying key-value backend.
func (s *Store) Backend() kv.Backend {
	return s.backend
}

// ConfigPath returns the configured storage path.
func (s *Store) ConfigPath() string {
	return s.path
}

// EraseAll deletes every known key. Subsequent reads return empty
// collections and no current user.
func (s *Store) EraseAll() error {
	keys, err := s.backend.Keys("")
	if err != nil {
		return fmt.Errorf("failed to enumerate keys: %w", err)
	}
	for _, key := range keys {
		if err := s.backend.Delete(key); err != nil {
			return fmt.Errorf("failed to delete %s: %w", key, err)
		}
	}
	s.clearSessionMirror()
	return nil
}

// getJSON reads and decodes one record. The bool reports existence.
func (s *Store) getJSON(key string, v interface{}) (bool, error) {
	raw, ok, err := s.backend.Get(key)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return false, fmt.Errorf("failed to decode record %s: %w", key, err)
	}
	return true, nil
}

// putJSON encodes and writes one record.
func (s *Store) putJSON(key string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode record %s: %w", key, err)
	}
	return s.backend.Set(key, string(raw))
}

// scan decodes every record under a prefix into items via decode. Unreadable
// records are logged and skipped; a failed key enumeration degrades to an
// empty result.
func (s *Store) scan(prefix string, decode func(key, raw string)) {
	keys, err := s.backend.Keys(prefix)
	if err != nil {
		logger.Warn("Failed to enumerate records, returning empty collection", "prefix", prefix, "error", err)
		return
	}
	for _, key := range keys {
		raw, ok, err := s.backend.Get(key)
		if err != nil || !ok {
			logger.Warn("Failed to read record, skipping", "key", key, "error", err)
			continue
		}
		decode(key, raw)
	}
}

// ABOUTME: Store interface for durable session token persistence.
// ABOUTME: Includes the in-memory implementation used as default and in tests.

package session

import (
	"errors"
	"sync"
)

// ErrNotFound is returned when a requested key does not exist in a Store.
var ErrNotFound = errors.New("not found")

// Store is a fallible string key-value store scoped to the host. Both
// operations may fail; callers must treat failures as non-fatal.
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
}

// MemoryStore is a process-local Store. Tokens kept here do not survive the
// host process, which matches the degraded mode of the durable stores.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (s *MemoryStore) Get(key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.values[key]
	if !ok {
		return "", ErrNotFound
	}
	return value, nil
}

func (s *MemoryStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

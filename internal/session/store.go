// Package session holds state that lives as long as one user session:
// a mutable key/value map shared between screens.
package session

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/ytget/navdemo/internal/logging"
)

// KeyFormData is the key under which the last submitted form is stored.
const KeyFormData = "form_data"

// Store is a session-scoped key/value map. Values are never evicted.
type Store struct {
	id     string
	mu     sync.RWMutex
	values map[string]any
	logger *slog.Logger
}

// New creates an empty store with a fresh session ID
func New() *Store {
	return &Store{
		id:     uuid.NewString(),
		values: make(map[string]any),
		logger: logging.GetLogger(),
	}
}

// ID returns the session identifier
func (s *Store) ID() string {
	return s.id
}

// Get returns the value stored under key. ok is false when the key is absent.
func (s *Store) Get(key string) (value any, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok = s.values[key]
	return value, ok
}

// Set stores value under key, replacing any previous value
func (s *Store) Set(key string, value any) {
	s.mu.Lock()
	s.values[key] = value
	s.mu.Unlock()

	s.logger.Debug("session value set", "session", s.id, "key", key)
}

// Delete removes key from the store
func (s *Store) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
}

// Len returns the number of stored keys
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.values)
}

// GetAs returns the value under key converted to T. ok is false when the key
// is absent or holds a value of another type.
func GetAs[T any](s *Store, key string) (T, bool) {
	var zero T
	raw, ok := s.Get(key)
	if !ok {
		return zero, false
	}
	value, ok := raw.(T)
	if !ok {
		return zero, false
	}
	return value, true
}

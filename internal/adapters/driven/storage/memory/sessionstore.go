// Package memory provides in-memory driven-port implementations for
// testing and ephemeral use.
package memory

import (
	"sync"

	"github.com/contexta-labs/contexta-cli/internal/core/domain"
	"github.com/contexta-labs/contexta-cli/internal/core/ports/driven"
)

// Ensure SessionStore implements the interface.
var _ driven.SessionStore = (*SessionStore)(nil)

// SessionStore is an in-memory implementation of driven.SessionStore.
type SessionStore struct {
	mu      sync.RWMutex
	session domain.Session
}

// NewSessionStore creates a new in-memory session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{}
}

// Load reads the stored session.
func (s *SessionStore) Load() (domain.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session, nil
}

// Save stores the token/identity pair together.
func (s *SessionStore) Save(session domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = session
	return nil
}

// Clear removes both entries.
func (s *SessionStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = domain.Session{}
	return nil
}

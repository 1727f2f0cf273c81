package services

import (
	"sync"

	"github.com/contexta-labs/contexta-cli/internal/core/domain"
	"github.com/contexta-labs/contexta-cli/internal/core/ports/driven"
	"github.com/contexta-labs/contexta-cli/internal/logger"
)

// SessionManager owns the process-wide session singleton.
//
// All mutation goes through its mutex: login completion, logout, and
// 401-triggered teardown never interleave without a well-defined winner.
// Every transition bumps the epoch, so an in-flight call tagged with the
// epoch at issue time can detect that the session it belonged to is gone.
type SessionManager struct {
	mu      sync.Mutex
	store   driven.SessionStore
	session domain.Session
	epoch   domain.Epoch

	// hooks run after a teardown (logout or invalidation), outside
	// the lock. Used to cascade resets into document and chat state.
	hooks []func()
}

// NewSessionManager creates a session manager, restoring any persisted
// session from the store. Restoration performs no network call; whether
// the token is still accepted is discovered at request time.
func NewSessionManager(store driven.SessionStore) *SessionManager {
	m := &SessionManager{store: store}

	if store != nil {
		session, err := store.Load()
		if err != nil {
			logger.Warn("loading persisted session: %v", err)
		} else if session.Authenticated() {
			m.session = session
		}
	}

	return m
}

// OnTeardown registers a hook invoked after every teardown.
// Hooks run outside the manager's lock.
func (m *SessionManager) OnTeardown(fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hooks = append(m.hooks, fn)
}

// Current returns the session and the epoch it belongs to.
func (m *SessionManager) Current() (domain.Session, domain.Epoch) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.session, m.epoch
}

// Epoch returns the current session epoch.
func (m *SessionManager) Epoch() domain.Epoch {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.epoch
}

// Authenticated reports whether a complete session is held.
func (m *SessionManager) Authenticated() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.session.Authenticated()
}

// Identity returns the authenticated email, or "" when anonymous.
func (m *SessionManager) Identity() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.session.Identity
}

// Establish installs a new authenticated session and persists it.
// The epoch is bumped so results from calls issued under the previous
// session are discarded on arrival.
func (m *SessionManager) Establish(session domain.Session) error {
	m.mu.Lock()
	m.session = session
	m.epoch++

	var err error
	if m.store != nil {
		err = m.store.Save(session)
	}
	m.mu.Unlock()

	if err != nil {
		// The in-memory session stays usable for this process.
		logger.Warn("persisting session: %v", err)
		return err
	}
	return nil
}

// Clear unconditionally tears the session down: in-memory state and the
// persisted pair are removed together and the teardown hooks run.
func (m *SessionManager) Clear() {
	m.mu.Lock()
	m.teardownLocked()
	hooks := make([]func(), len(m.hooks))
	copy(hooks, m.hooks)
	m.mu.Unlock()

	for _, fn := range hooks {
		fn()
	}
}

// Invalidate tears the session down if the given epoch is still
// current. A 401 from a call issued under an earlier session is a
// no-op: that session is already gone and a newer one must not be
// destroyed by a stale response. Returns whether teardown happened,
// so repeated 401s from concurrent calls tear down exactly once.
func (m *SessionManager) Invalidate(epoch domain.Epoch) bool {
	m.mu.Lock()
	if epoch != m.epoch {
		m.mu.Unlock()
		return false
	}
	m.teardownLocked()
	hooks := make([]func(), len(m.hooks))
	copy(hooks, m.hooks)
	m.mu.Unlock()

	for _, fn := range hooks {
		fn()
	}
	return true
}

// teardownLocked clears session state. Caller must hold the lock.
func (m *SessionManager) teardownLocked() {
	m.session = domain.Session{}
	m.epoch++

	if m.store != nil {
		if err := m.store.Clear(); err != nil {
			logger.Warn("clearing persisted session: %v", err)
		}
	}
}

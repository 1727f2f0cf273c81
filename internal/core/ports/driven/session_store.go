package driven

import "github.com/contexta-labs/contexta-cli/internal/core/domain"

// SessionStore persists the session token/identity pair across process
// restarts. Token and identity are written and removed together; a store
// holding only one of the two must load as an empty session.
//
// The store performs no validation of token freshness. Whether the token
// is still accepted is discovered at request time by the API gateway.
type SessionStore interface {
	// Load reads the persisted session. A missing store is not an
	// error: it loads as the zero Session.
	Load() (domain.Session, error)

	// Save writes token and identity together. Callers never observe
	// a partially written session.
	Save(session domain.Session) error

	// Clear removes both entries.
	Clear() error
}

// Package file provides file-backed driven-port implementations.
package file

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/contexta-labs/contexta-cli/internal/core/domain"
	"github.com/contexta-labs/contexta-cli/internal/core/ports/driven"
)

// Ensure SessionStore implements the interface.
var _ driven.SessionStore = (*SessionStore)(nil)

// sessionFile is the on-disk TOML shape. Token and identity live in
// one file so they are written and removed together.
type sessionFile struct {
	Token    string `toml:"token"`
	Identity string `toml:"identity"`
}

// SessionStore persists the session as a TOML file in the Contexta
// config directory. The file is written with a rename so readers never
// observe a partial session.
type SessionStore struct {
	mu       sync.Mutex
	filePath string
}

// NewSessionStore creates a file-based session store.
// If configDir is empty, defaults to ~/.contexta/session.toml.
func NewSessionStore(configDir string) (*SessionStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, ".contexta")
	}

	// Ensure directory exists
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, err
	}

	return &SessionStore{
		filePath: filepath.Join(configDir, "session.toml"),
	}, nil
}

// Path returns the session file path.
func (s *SessionStore) Path() string {
	return s.filePath
}

// Load reads the persisted session. A missing file, or a file holding
// only one of the two entries, loads as the zero Session.
func (s *SessionStore) Load() (domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.filePath)
	if os.IsNotExist(err) {
		return domain.Session{}, nil
	}
	if err != nil {
		return domain.Session{}, err
	}

	var f sessionFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return domain.Session{}, err
	}

	session := domain.Session{Token: f.Token, Identity: f.Identity}
	if !session.Authenticated() {
		// Half a session is no session.
		return domain.Session{}, nil
	}
	return session, nil
}

// Save writes token and identity together. The write goes to a
// temporary file first and is renamed into place.
func (s *SessionStore) Save(session domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := toml.Marshal(sessionFile{
		Token:    session.Token,
		Identity: session.Identity,
	})
	if err != nil {
		return err
	}

	tmp := s.filePath + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return err
	}
	return os.Rename(tmp, s.filePath)
}

// Clear removes the session file. A file that is already gone is not
// an error.
func (s *SessionStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.filePath)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

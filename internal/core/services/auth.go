package services

import (
	"context"
	"fmt"

	"github.com/contexta-labs/contexta-cli/internal/core/domain"
	"github.com/contexta-labs/contexta-cli/internal/core/ports/driven"
	"github.com/contexta-labs/contexta-cli/internal/core/ports/driving"
	"github.com/contexta-labs/contexta-cli/internal/logger"
)

// Ensure AuthService implements the interface.
var _ driving.AuthService = (*AuthService)(nil)

// AuthService owns the anonymous/authenticated transitions.
type AuthService struct {
	api      driven.API
	sessions *SessionManager
}

// NewAuthService creates a new auth service.
func NewAuthService(api driven.API, sessions *SessionManager) *AuthService {
	return &AuthService{
		api:      api,
		sessions: sessions,
	}
}

// Authenticated reports whether a complete session is held.
func (s *AuthService) Authenticated() bool {
	return s.sessions.Authenticated()
}

// Identity returns the authenticated email, or "" when anonymous.
func (s *AuthService) Identity() string {
	return s.sessions.Identity()
}

// Login authenticates with the backend and persists the session.
// On failure the session, in memory and persisted, is untouched.
func (s *AuthService) Login(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return fmt.Errorf("%w: email and password are required", domain.ErrInvalidInput)
	}

	token, err := s.api.Login(ctx, email, password)
	if err != nil {
		return err
	}
	if token == "" {
		return fmt.Errorf("%w: login response carried no token", domain.ErrServer)
	}

	logger.Info("authenticated as %s", email)
	return s.sessions.Establish(domain.Session{Token: token, Identity: email})
}

// Signup registers a new account. It does not authenticate; on success
// the caller proceeds to Login.
func (s *AuthService) Signup(ctx context.Context, email, password, name string) error {
	if email == "" || password == "" || name == "" {
		return fmt.Errorf("%w: email, password and name are required", domain.ErrInvalidInput)
	}
	return s.api.Signup(ctx, email, password, name)
}

// Logout unconditionally transitions to anonymous. The session manager
// cascades the reset into document and chat state via its hooks.
func (s *AuthService) Logout() {
	logger.Info("logging out")
	s.sessions.Clear()
}

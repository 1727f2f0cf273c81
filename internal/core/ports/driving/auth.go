package driving

import "context"

// AuthService owns the login/signup/logout transitions and the
// anonymous/authenticated state. No document or chat operation may
// proceed while the state is anonymous.
type AuthService interface {
	// Authenticated reports whether a complete session is held.
	Authenticated() bool

	// Identity returns the email of the authenticated user, or ""
	// when anonymous.
	Identity() string

	// Login authenticates with the backend and persists the session.
	// On failure the persisted state is untouched and the server's
	// message is surfaced via domain.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) error

	// Signup registers a new account. It does not authenticate;
	// on success the caller proceeds to Login.
	Signup(ctx context.Context, email, password, name string) error

	// Logout unconditionally transitions to anonymous, clears the
	// persisted session, and cascades a reset through the document
	// and chat services.
	Logout()
}

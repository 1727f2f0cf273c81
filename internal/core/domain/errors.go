package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors. Server-supplied
// messages are wrapped around these sentinels with fmt.Errorf and %w
// so callers can classify with errors.Is while still displaying the
// verbatim text.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or missing input,
	// caught before any network call is made.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotAuthenticated indicates the operation requires an
	// authenticated session and none is held.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrInvalidCredentials indicates a login or signup was rejected
	// by the server.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrSessionExpired indicates the server rejected the bearer token.
	// This is the only error with a global side effect: observing it
	// tears down the session exactly once.
	ErrSessionExpired = errors.New("session expired")

	// ErrServer indicates a non-2xx response other than 401.
	ErrServer = errors.New("server error")

	// ErrBusy indicates a query is already in flight for the
	// current conversation.
	ErrBusy = errors.New("query already in flight")

	// ErrNotReady indicates the selected document has not finished
	// processing and cannot be queried yet.
	ErrNotReady = errors.New("document not ready")
)

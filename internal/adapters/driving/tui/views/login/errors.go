package login

import "errors"

// ErrNoAuthService is returned when the auth service is not available.
var ErrNoAuthService = errors.New("auth service not available")

package domain

// Session represents the authentication state the client currently holds.
// Token and Identity are always both present or both absent; a session
// with only one of the two is treated as anonymous.
type Session struct {
	// Token is the opaque bearer credential issued by the backend.
	Token string

	// Identity is the email address the session was established for.
	Identity string
}

// Authenticated returns true if the session holds a complete
// token/identity pair.
func (s Session) Authenticated() bool {
	return s.Token != "" && s.Identity != ""
}

// Epoch distinguishes successive authenticated sessions. Outbound calls
// are tagged with the epoch active at issue time so results arriving
// after a teardown can be discarded.
type Epoch uint64

// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/contexta-labs/contexta-cli/internal/core/domain"
)

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewLogin is the login and signup form.
	ViewLogin ViewType = iota
	// ViewDocuments is the document list view.
	ViewDocuments
	// ViewChat is the conversation view for the selected document.
	ViewChat
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewLogin:
		return "login"
	case ViewDocuments:
		return "documents"
	case ViewChat:
		return "chat"
	default:
		return "unknown"
	}
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// LoginCompleted signals that a login or signup attempt finished.
type LoginCompleted struct {
	Identity string
	Err      error
}

// SignupCompleted signals that an account registration finished.
// Signup never authenticates; on success the login form is shown
// again with the email carried over.
type SignupCompleted struct {
	Email string
	Err   error
}

// LoggedOut signals the session was cleared.
type LoggedOut struct {
	Err error
}

// DocumentsLoaded carries the refreshed document list.
type DocumentsLoaded struct {
	Documents []domain.Document
	Err       error
}

// DocumentSelected signals a document was chosen for conversation.
type DocumentSelected struct {
	Document domain.Document
}

// DocumentUploaded signals that an upload attempt finished. A
// successful upload triggers a list refresh; the document stays in
// a pending status until server-side processing completes.
type DocumentUploaded struct {
	FileName string
	Err      error
}

// AnswerReceived signals that a question round-trip finished.
// The conversation transcript is read back from the chat service.
type AnswerReceived struct {
	Err error
}

// SessionExpired signals the server rejected the stored token.
// The TUI returns to the login view when it sees this.
type SessionExpired struct{}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}

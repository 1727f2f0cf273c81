package domain

import "time"

// ChatRole identifies who produced a chat message.
type ChatRole string

const (
	// RoleUser marks a message typed by the user.
	RoleUser ChatRole = "user"

	// RoleAssistant marks an answer produced by the backend.
	RoleAssistant ChatRole = "assistant"
)

// ChatMessage is one turn of a document-scoped conversation.
// Content is raw text, possibly containing newlines. It is never
// pre-sanitised for any display format; escaping is the display
// layer's responsibility.
type ChatMessage struct {
	Role    ChatRole
	Content string
}

// HistoryEntry is a locally recorded question/answer exchange.
// History is audit data kept outside the session lifecycle: it survives
// logout and session teardown.
type HistoryEntry struct {
	// ID is a client-generated unique identifier.
	ID string

	// Identity is the email the session belonged to when recorded.
	Identity string

	// DocumentID is the backend document the question was asked against.
	DocumentID string

	// FileName is the document file name at the time of the exchange.
	FileName string

	// Question is the user's query text.
	Question string

	// Answer is the assistant's response text.
	Answer string

	// AskedAt is when the exchange completed.
	AskedAt time.Time
}

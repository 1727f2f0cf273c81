package driving

import (
	"context"

	"github.com/contexta-labs/contexta-cli/internal/core/domain"
)

// ChatService owns the conversation for the currently selected document.
// The conversation is valid only while the selection references a ready
// document; switching the selection resets it.
type ChatService interface {
	// Send appends the user message, issues the query, and appends
	// the assistant's answer. Trimmed-empty text or no selection is a
	// no-op returning nil. At most one query is in flight per
	// conversation: a concurrent Send fails fast with domain.ErrBusy.
	// On failure the user message remains and the error is returned
	// for transient display; it is never appended as a message.
	Send(ctx context.Context, text string) error

	// Messages returns the conversation in order. The user message
	// always precedes its corresponding assistant message.
	Messages() []domain.ChatMessage

	// Busy reports whether a query is in flight.
	Busy() bool

	// StartNew resets the conversation for the current selection
	// without any network call. No-op without a selection.
	StartNew()

	// Reset clears the conversation unconditionally. Invoked on
	// logout, session teardown, and selection change.
	Reset()
}

// HistoryService reads the local record of past exchanges.
type HistoryService interface {
	// List returns past exchanges most recent first, optionally
	// filtered by document id. limit <= 0 means no limit.
	List(ctx context.Context, documentID string, limit int) ([]domain.HistoryEntry, error)
}

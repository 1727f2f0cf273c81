package driven

import (
	"context"

	"github.com/contexta-labs/contexta-cli/internal/core/domain"
)

// HistoryStore persists completed question/answer exchanges locally.
// History is audit data, not session state: it is not cleared on logout
// or session teardown.
type HistoryStore interface {
	// Append records one completed exchange.
	Append(ctx context.Context, entry domain.HistoryEntry) error

	// List returns entries most recent first. If documentID is
	// non-empty, only entries for that document are returned.
	// limit <= 0 means no limit.
	List(ctx context.Context, documentID string, limit int) ([]domain.HistoryEntry, error)
}

package memory

import (
	"context"
	"sync"

	"github.com/contexta-labs/contexta-cli/internal/core/domain"
	"github.com/contexta-labs/contexta-cli/internal/core/ports/driven"
)

// Ensure HistoryStore implements the interface.
var _ driven.HistoryStore = (*HistoryStore)(nil)

// HistoryStore is an in-memory implementation of driven.HistoryStore.
type HistoryStore struct {
	mu      sync.RWMutex
	entries []domain.HistoryEntry
}

// NewHistoryStore creates a new in-memory history store.
func NewHistoryStore() *HistoryStore {
	return &HistoryStore{}
}

// Append records one completed exchange.
func (s *HistoryStore) Append(_ context.Context, entry domain.HistoryEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entry)
	return nil
}

// List returns entries most recent first.
func (s *HistoryStore) List(_ context.Context, documentID string, limit int) ([]domain.HistoryEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.HistoryEntry
	for i := len(s.entries) - 1; i >= 0; i-- {
		entry := s.entries[i]
		if documentID != "" && entry.DocumentID != documentID {
			continue
		}
		out = append(out, entry)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

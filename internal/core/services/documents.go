package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/contexta-labs/contexta-cli/internal/core/domain"
	"github.com/contexta-labs/contexta-cli/internal/core/ports/driven"
	"github.com/contexta-labs/contexta-cli/internal/core/ports/driving"
	"github.com/contexta-labs/contexta-cli/internal/logger"
)

// Ensure DocumentService implements the interface.
var _ driving.DocumentService = (*DocumentService)(nil)

// DefaultRefreshDelay is how long after a successful upload the
// single follow-up refresh fires. The backend typically needs at least
// this long to register the new document.
const DefaultRefreshDelay = 2 * time.Second

// DocumentService owns the document set and the single selection.
//
// The set is replaced wholesale on each successful refresh; there is no
// incremental merge. Selection is by id only, so it is re-resolved
// against every new set and cleared when the id is gone.
type DocumentService struct {
	mu       sync.Mutex
	api      driven.API
	sessions *SessionManager

	docs     []domain.Document
	selected string // id of the selection, "" when none

	refreshDelay time.Duration
}

// NewDocumentService creates a new document service.
func NewDocumentService(api driven.API, sessions *SessionManager) *DocumentService {
	return &DocumentService{
		api:          api,
		sessions:     sessions,
		refreshDelay: DefaultRefreshDelay,
	}
}

// SetRefreshDelay overrides the post-upload refresh delay.
func (s *DocumentService) SetRefreshDelay(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refreshDelay = d
}

// Refresh re-reads the full document set, replacing it wholesale.
// On failure the current set is left unchanged so transient errors do
// not blank out the list. A result that arrives after the session it
// was issued under is gone is discarded.
func (s *DocumentService) Refresh(ctx context.Context) ([]domain.Document, error) {
	epoch := s.sessions.Epoch()

	docs, err := s.api.ListDocuments(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sessions.Epoch() != epoch {
		// Session changed while the call was in flight.
		return nil, domain.ErrSessionExpired
	}

	s.docs = docs

	// Re-resolve the selection by id; identity equality is by id only.
	if s.selected != "" {
		if _, ok := s.findLocked(s.selected); !ok {
			logger.Debug("selection %s no longer in document set, clearing", s.selected)
			s.selected = ""
		}
	}

	out := make([]domain.Document, len(docs))
	copy(out, docs)
	return out, nil
}

// Documents returns the current set in server order.
func (s *DocumentService) Documents() []domain.Document {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Document, len(s.docs))
	copy(out, s.docs)
	return out
}

// Upload submits a file for processing. On success exactly one
// follow-up refresh is scheduled after a fixed delay. The delayed
// refresh is best effort and single shot: it does not poll until the
// document reaches a terminal status.
func (s *DocumentService) Upload(ctx context.Context, fileName string, data []byte) error {
	if fileName == "" || len(data) == 0 {
		return fmt.Errorf("%w: no file provided", domain.ErrInvalidInput)
	}

	if err := s.api.UploadDocument(ctx, fileName, data); err != nil {
		return err
	}

	s.mu.Lock()
	delay := s.refreshDelay
	s.mu.Unlock()

	epoch := s.sessions.Epoch()
	time.AfterFunc(delay, func() {
		if s.sessions.Epoch() != epoch {
			// Logged out or torn down since the upload.
			return
		}
		if _, err := s.Refresh(context.Background()); err != nil {
			logger.Warn("post-upload refresh: %v", err)
		}
	})

	logger.Info("uploaded %s, refresh in %s", fileName, delay)
	return nil
}

// Select sets the selection by id from the current set. A pure state
// transition: no network effect. Returns domain.ErrNotFound, leaving
// the selection unaltered, if the id is absent (e.g. a stale reference
// after a refresh).
func (s *DocumentService) Select(id string) (domain.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.findLocked(id)
	if !ok {
		return domain.Document{}, fmt.Errorf("document %s: %w", id, domain.ErrNotFound)
	}

	s.selected = id
	return doc, nil
}

// Selected returns the current selection, or false if none.
func (s *DocumentService) Selected() (domain.Document, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.selected == "" {
		return domain.Document{}, false
	}
	return s.findLocked(s.selected)
}

// ChatEligible reports whether the selection is non-empty and ready.
func (s *DocumentService) ChatEligible() bool {
	doc, ok := s.Selected()
	return ok && doc.ChatEligible()
}

// Reset clears the set and the selection.
func (s *DocumentService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs = nil
	s.selected = ""
}

// findLocked looks a document up by id. Caller must hold the lock.
func (s *DocumentService) findLocked(id string) (domain.Document, bool) {
	for _, doc := range s.docs {
		if doc.ID == id {
			return doc, true
		}
	}
	return domain.Document{}, false
}

package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/contexta-labs/contexta-cli/internal/core/domain"
	"github.com/contexta-labs/contexta-cli/internal/core/ports/driven"
	"github.com/contexta-labs/contexta-cli/internal/core/ports/driving"
	"github.com/contexta-labs/contexta-cli/internal/logger"
)

// Ensure ChatService implements the interface.
var _ driving.ChatService = (*ChatService)(nil)

// ChatService owns the conversation for the currently selected document.
//
// The conversation is scoped to one document id at a time. The scope is
// re-checked on every operation: if the selection changed since the last
// call, the conversation resets before the operation proceeds.
type ChatService struct {
	mu       sync.Mutex
	api      driven.API
	docs     driving.DocumentService
	sessions *SessionManager
	history  driven.HistoryStore // optional

	scopeID  string // document id the conversation belongs to
	messages []domain.ChatMessage
	busy     bool
}

// NewChatService creates a new chat service. history may be nil, in
// which case exchanges are not recorded locally.
func NewChatService(
	api driven.API,
	docs driving.DocumentService,
	sessions *SessionManager,
	history driven.HistoryStore,
) *ChatService {
	return &ChatService{
		api:      api,
		docs:     docs,
		sessions: sessions,
		history:  history,
	}
}

// Send appends the user message, issues the query, and appends the
// assistant's answer. The busy guard is a real lock, not a disabled
// control: a concurrent Send fails fast with domain.ErrBusy, so at most
// one query is in flight per conversation and the user message always
// precedes its answer in the sequence.
func (s *ChatService) Send(ctx context.Context, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	doc, ok := s.docs.Selected()
	if !ok {
		return nil
	}
	if !doc.ChatEligible() {
		return fmt.Errorf("%w: %s is %s", domain.ErrNotReady, doc.FileName, doc.Status)
	}

	s.mu.Lock()
	s.syncScopeLocked(doc.ID)
	if s.busy {
		s.mu.Unlock()
		return domain.ErrBusy
	}
	s.busy = true
	s.messages = append(s.messages, domain.ChatMessage{Role: domain.RoleUser, Content: text})
	s.mu.Unlock()

	answer, err := s.api.QueryDocument(ctx, doc.ID, text)

	s.mu.Lock()
	s.busy = false
	if err != nil {
		s.mu.Unlock()
		// The user message stays; the error is transient display
		// state, never part of the conversation.
		return err
	}
	if s.scopeID != doc.ID {
		// Selection switched or state was reset while the query was
		// in flight. The answer belongs to a dead conversation.
		s.mu.Unlock()
		logger.Debug("discarding answer for stale conversation %s", doc.ID)
		return nil
	}
	s.messages = append(s.messages, domain.ChatMessage{Role: domain.RoleAssistant, Content: answer})
	s.mu.Unlock()

	s.record(ctx, doc, text, answer)
	return nil
}

// Messages returns the conversation in order.
func (s *ChatService) Messages() []domain.ChatMessage {
	doc, ok := s.docs.Selected()

	s.mu.Lock()
	defer s.mu.Unlock()

	if ok {
		s.syncScopeLocked(doc.ID)
	} else if s.scopeID != "" {
		s.resetLocked()
	}

	out := make([]domain.ChatMessage, len(s.messages))
	copy(out, s.messages)
	return out
}

// Busy reports whether a query is in flight.
func (s *ChatService) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.busy
}

// StartNew resets the conversation for the current selection without
// any network call. No-op without a selection.
func (s *ChatService) StartNew() {
	if _, ok := s.docs.Selected(); !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = nil
}

// Reset clears the conversation unconditionally.
func (s *ChatService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetLocked()
}

// syncScopeLocked resets the conversation if the selection moved to a
// different document. Caller must hold the lock.
func (s *ChatService) syncScopeLocked(id string) {
	if s.scopeID == id {
		return
	}
	s.messages = nil
	s.scopeID = id
}

// resetLocked clears all conversation state. Caller must hold the lock.
func (s *ChatService) resetLocked() {
	s.messages = nil
	s.scopeID = ""
	s.busy = false
}

// record appends the exchange to the local history log, best effort.
func (s *ChatService) record(ctx context.Context, doc domain.Document, question, answer string) {
	if s.history == nil {
		return
	}

	entry := domain.HistoryEntry{
		ID:         uuid.NewString(),
		Identity:   s.sessions.Identity(),
		DocumentID: doc.ID,
		FileName:   doc.FileName,
		Question:   question,
		Answer:     answer,
		AskedAt:    time.Now().UTC(),
	}
	if err := s.history.Append(ctx, entry); err != nil {
		logger.Warn("recording history entry: %v", err)
	}
}

// Ensure HistoryService implements the interface.
var _ driving.HistoryService = (*HistoryService)(nil)

// HistoryService reads the local record of past exchanges.
type HistoryService struct {
	store driven.HistoryStore
}

// NewHistoryService creates a new history service.
func NewHistoryService(store driven.HistoryStore) *HistoryService {
	return &HistoryService{store: store}
}

// List returns past exchanges most recent first.
func (s *HistoryService) List(ctx context.Context, documentID string, limit int) ([]domain.HistoryEntry, error) {
	if s.store == nil {
		return nil, nil
	}
	return s.store.List(ctx, documentID, limit)
}

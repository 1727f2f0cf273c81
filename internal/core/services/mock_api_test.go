package services

import (
	"context"
	"sync"

	"github.com/contexta-labs/contexta-cli/internal/core/domain"
	"github.com/contexta-labs/contexta-cli/internal/core/ports/driven"
)

// Ensure the mock implements the interface.
var _ driven.API = (*mockAPI)(nil)

// mockAPI is a scripted driven.API for service tests. Each method
// returns the configured result and records the call.
type mockAPI struct {
	mu sync.Mutex

	loginToken string
	loginErr   error
	signupErr  error
	listDocs   []domain.Document
	listErr    error
	uploadErr  error
	answer     string
	queryErr   error

	// queryStarted and queryRelease, when set, let a test hold a
	// query in flight to exercise the busy guard.
	queryStarted chan struct{}
	queryRelease chan struct{}

	loginCalls  int
	signupCalls int
	listCalls   int
	uploadCalls int
	queryCalls  int

	lastQueryDocID string
	lastQueryText  string
}

func (m *mockAPI) Login(_ context.Context, _, _ string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loginCalls++
	return m.loginToken, m.loginErr
}

func (m *mockAPI) Signup(_ context.Context, _, _, _ string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.signupCalls++
	return m.signupErr
}

func (m *mockAPI) ListDocuments(_ context.Context) ([]domain.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listCalls++
	if m.listErr != nil {
		return nil, m.listErr
	}
	docs := make([]domain.Document, len(m.listDocs))
	copy(docs, m.listDocs)
	return docs, nil
}

func (m *mockAPI) UploadDocument(_ context.Context, _ string, _ []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.uploadCalls++
	return m.uploadErr
}

func (m *mockAPI) QueryDocument(_ context.Context, documentID, query string) (string, error) {
	m.mu.Lock()
	m.queryCalls++
	m.lastQueryDocID = documentID
	m.lastQueryText = query
	started, release := m.queryStarted, m.queryRelease
	m.mu.Unlock()

	if started != nil {
		started <- struct{}{}
	}
	if release != nil {
		<-release
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	return m.answer, m.queryErr
}

func (m *mockAPI) calls() (login, signup, list, upload, query int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loginCalls, m.signupCalls, m.listCalls, m.uploadCalls, m.queryCalls
}

package cli

import (
	"context"
	"time"

	"github.com/contexta-labs/contexta-cli/internal/core/domain"
)

// fakeAuthService implements driving.AuthService for command tests.
type fakeAuthService struct {
	authenticated bool
	identity      string
	loginErr      error
	signupErr     error

	loginCalls  []string
	signupCalls []string
	logoutCalls int

	lastPassword string
}

func (f *fakeAuthService) Authenticated() bool { return f.authenticated }

func (f *fakeAuthService) Identity() string { return f.identity }

func (f *fakeAuthService) Login(_ context.Context, email, password string) error {
	f.loginCalls = append(f.loginCalls, email)
	f.lastPassword = password
	if f.loginErr != nil {
		return f.loginErr
	}
	f.authenticated = true
	f.identity = email
	return nil
}

func (f *fakeAuthService) Signup(_ context.Context, email, _, _ string) error {
	f.signupCalls = append(f.signupCalls, email)
	return f.signupErr
}

func (f *fakeAuthService) Logout() {
	f.logoutCalls++
	f.authenticated = false
	f.identity = ""
}

// fakeDocumentService implements driving.DocumentService for command tests.
type fakeDocumentService struct {
	docs       []domain.Document
	refreshErr error
	uploadErr  error

	uploads  []string
	selected string
}

func (f *fakeDocumentService) Refresh(_ context.Context) ([]domain.Document, error) {
	if f.refreshErr != nil {
		return nil, f.refreshErr
	}
	return f.docs, nil
}

func (f *fakeDocumentService) Documents() []domain.Document { return f.docs }

func (f *fakeDocumentService) Upload(_ context.Context, fileName string, _ []byte) error {
	if f.uploadErr != nil {
		return f.uploadErr
	}
	f.uploads = append(f.uploads, fileName)
	return nil
}

func (f *fakeDocumentService) Select(id string) (domain.Document, error) {
	for _, doc := range f.docs {
		if doc.ID == id {
			f.selected = id
			return doc, nil
		}
	}
	return domain.Document{}, domain.ErrNotFound
}

func (f *fakeDocumentService) Selected() (domain.Document, bool) {
	for _, doc := range f.docs {
		if doc.ID == f.selected {
			return doc, true
		}
	}
	return domain.Document{}, false
}

func (f *fakeDocumentService) ChatEligible() bool {
	doc, ok := f.Selected()
	return ok && doc.ChatEligible()
}

func (f *fakeDocumentService) Reset() {
	f.docs = nil
	f.selected = ""
}

// fakeChatService implements driving.ChatService for command tests.
type fakeChatService struct {
	answer  string
	sendErr error

	sent     []string
	messages []domain.ChatMessage
}

func (f *fakeChatService) Send(_ context.Context, text string) error {
	f.sent = append(f.sent, text)
	if f.sendErr != nil {
		return f.sendErr
	}
	f.messages = append(f.messages,
		domain.ChatMessage{Role: domain.RoleUser, Content: text},
		domain.ChatMessage{Role: domain.RoleAssistant, Content: f.answer},
	)
	return nil
}

func (f *fakeChatService) Messages() []domain.ChatMessage { return f.messages }

func (f *fakeChatService) Busy() bool { return false }

func (f *fakeChatService) StartNew() { f.messages = nil }

func (f *fakeChatService) Reset() { f.messages = nil }

// fakeHistoryService implements driving.HistoryService for command tests.
type fakeHistoryService struct {
	entries []domain.HistoryEntry
	listErr error

	lastDocumentID string
	lastLimit      int
}

func (f *fakeHistoryService) List(_ context.Context, documentID string, limit int) ([]domain.HistoryEntry, error) {
	f.lastDocumentID = documentID
	f.lastLimit = limit
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.entries, nil
}

// testFixture holds the fakes installed by setupTestServices.
type testFixture struct {
	auth      *fakeAuthService
	documents *fakeDocumentService
	chat      *fakeChatService
	history   *fakeHistoryService
}

// setupTestServices installs fake services and returns them along with
// a cleanup that restores the previous wiring.
func setupTestServices() (*testFixture, func()) {
	oldAuth := authService
	oldDocuments := documentService
	oldChat := chatService
	oldHistory := historyService

	fixture := &testFixture{
		auth: &fakeAuthService{},
		documents: &fakeDocumentService{
			docs: []domain.Document{
				{ID: "doc-1", FileName: "report.pdf", Status: domain.StatusReady,
					CreatedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)},
				{ID: "doc-2", FileName: "notes.txt", Status: domain.StatusProcessing,
					CreatedAt: time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)},
			},
		},
		chat:    &fakeChatService{answer: "The total is 42."},
		history: &fakeHistoryService{},
	}

	SetServices(Services{
		Auth:      fixture.auth,
		Documents: fixture.documents,
		Chat:      fixture.chat,
		History:   fixture.history,
	})

	return fixture, func() {
		authService = oldAuth
		documentService = oldDocuments
		chatService = oldChat
		historyService = oldHistory
	}
}

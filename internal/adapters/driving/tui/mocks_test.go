package tui

import (
	"context"

	"github.com/contexta-labs/contexta-cli/internal/core/domain"
)

// MockAuthService implements driving.AuthService for testing.
type MockAuthService struct {
	AuthenticatedFunc func() bool
	IdentityFunc      func() string
	LoginFunc         func(ctx context.Context, email, password string) error
	SignupFunc        func(ctx context.Context, email, password, name string) error
	LogoutFunc        func()
}

func (m *MockAuthService) Authenticated() bool {
	if m.AuthenticatedFunc != nil {
		return m.AuthenticatedFunc()
	}
	return false
}

func (m *MockAuthService) Identity() string {
	if m.IdentityFunc != nil {
		return m.IdentityFunc()
	}
	return ""
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) error {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	return nil
}

func (m *MockAuthService) Signup(ctx context.Context, email, password, name string) error {
	if m.SignupFunc != nil {
		return m.SignupFunc(ctx, email, password, name)
	}
	return nil
}

func (m *MockAuthService) Logout() {
	if m.LogoutFunc != nil {
		m.LogoutFunc()
	}
}

// MockDocumentService implements driving.DocumentService for testing.
type MockDocumentService struct {
	RefreshFunc      func(ctx context.Context) ([]domain.Document, error)
	DocumentsFunc    func() []domain.Document
	UploadFunc       func(ctx context.Context, fileName string, data []byte) error
	SelectFunc       func(id string) (domain.Document, error)
	SelectedFunc     func() (domain.Document, bool)
	ChatEligibleFunc func() bool
	ResetFunc        func()
}

func (m *MockDocumentService) Refresh(ctx context.Context) ([]domain.Document, error) {
	if m.RefreshFunc != nil {
		return m.RefreshFunc(ctx)
	}
	return nil, nil
}

func (m *MockDocumentService) Documents() []domain.Document {
	if m.DocumentsFunc != nil {
		return m.DocumentsFunc()
	}
	return nil
}

func (m *MockDocumentService) Upload(ctx context.Context, fileName string, data []byte) error {
	if m.UploadFunc != nil {
		return m.UploadFunc(ctx, fileName, data)
	}
	return nil
}

func (m *MockDocumentService) Select(id string) (domain.Document, error) {
	if m.SelectFunc != nil {
		return m.SelectFunc(id)
	}
	return domain.Document{ID: id}, nil
}

func (m *MockDocumentService) Selected() (domain.Document, bool) {
	if m.SelectedFunc != nil {
		return m.SelectedFunc()
	}
	return domain.Document{}, false
}

func (m *MockDocumentService) ChatEligible() bool {
	if m.ChatEligibleFunc != nil {
		return m.ChatEligibleFunc()
	}
	return false
}

func (m *MockDocumentService) Reset() {
	if m.ResetFunc != nil {
		m.ResetFunc()
	}
}

// MockChatService implements driving.ChatService for testing.
type MockChatService struct {
	SendFunc     func(ctx context.Context, text string) error
	MessagesFunc func() []domain.ChatMessage
	BusyFunc     func() bool
	StartNewFunc func()
	ResetFunc    func()
}

func (m *MockChatService) Send(ctx context.Context, text string) error {
	if m.SendFunc != nil {
		return m.SendFunc(ctx, text)
	}
	return nil
}

func (m *MockChatService) Messages() []domain.ChatMessage {
	if m.MessagesFunc != nil {
		return m.MessagesFunc()
	}
	return nil
}

func (m *MockChatService) Busy() bool {
	if m.BusyFunc != nil {
		return m.BusyFunc()
	}
	return false
}

func (m *MockChatService) StartNew() {
	if m.StartNewFunc != nil {
		m.StartNewFunc()
	}
}

func (m *MockChatService) Reset() {
	if m.ResetFunc != nil {
		m.ResetFunc()
	}
}

package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/contexta-labs/contexta-cli/internal/adapters/driving/tui/messages"
	"github.com/contexta-labs/contexta-cli/internal/adapters/driving/tui/styles"
	"github.com/contexta-labs/contexta-cli/internal/adapters/driving/tui/views/chat"
	"github.com/contexta-labs/contexta-cli/internal/adapters/driving/tui/views/documents"
	"github.com/contexta-labs/contexta-cli/internal/adapters/driving/tui/views/login"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// loginView is the login and signup form.
	loginView *login.View

	// documentsView is the document list view component.
	documentsView *documents.View

	// chatView is the conversation view component.
	chatView *chat.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	loginView := login.NewView(s, ports.Auth)
	documentsView := documents.NewView(s, ports.Documents)
	chatView := chat.NewView(s, ports.Chat)

	// Skip the login form when a persisted session is already held.
	startView := messages.ViewLogin
	if ports.Auth.Authenticated() {
		startView = messages.ViewDocuments
	}

	return &App{
		ports:         ports,
		ctx:           context.Background(),
		styles:        s,
		loginView:     loginView,
		documentsView: documentsView,
		chatView:      chatView,
		currentView:   startView,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.loginView.WithContext(ctx)
	a.documentsView.WithContext(ctx)
	a.chatView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnterAltScreen,
		tea.SetWindowTitle("contexta - Document Q&A"),
	}
	if a.currentView == messages.ViewDocuments {
		cmds = append(cmds, a.documentsView.Init())
	} else {
		cmds = append(cmds, a.loginView.Init())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		// Forward to all views for proper sizing
		a.loginView.SetDimensions(msg.Width, msg.Height)
		a.documentsView.SetDimensions(msg.Width, msg.Height)
		a.chatView.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		// Logout from the document list, unless the upload prompt is
		// capturing text.
		if msg.String() == "l" && a.currentView == messages.ViewDocuments && !a.documentsView.Prompting() {
			return a, a.performLogout()
		}
		return a.forwardToCurrent(msg)

	case messages.LoginCompleted:
		if msg.Err != nil {
			a.loginView, cmd = a.loginView.Update(msg)
			return a, cmd
		}
		a.err = nil
		a.currentView = messages.ViewDocuments
		a.documentsView.Reset()
		return a, a.documentsView.Init()

	case messages.DocumentsLoaded:
		a.documentsView, cmd = a.documentsView.Update(msg)
		return a, cmd

	case messages.DocumentSelected:
		a.currentView = messages.ViewChat
		a.chatView.SetDocument(msg.Document)
		return a, a.chatView.Init()

	case messages.AnswerReceived:
		a.chatView, cmd = a.chatView.Update(msg)
		return a, cmd

	case messages.LoggedOut:
		a.documentsView.Reset()
		a.loginView.Reset()
		a.currentView = messages.ViewLogin
		a.err = nil
		// Let the login view show its signed-out notice.
		a.loginView, _ = a.loginView.Update(msg)
		return a, a.loginView.Init()

	case messages.SessionExpired:
		return a.handleSessionExpired()

	case messages.ViewChanged:
		a.currentView = msg.View
		switch msg.View {
		case messages.ViewLogin:
			a.loginView.Reset()
			return a, a.loginView.Init()
		case messages.ViewDocuments:
			return a, a.documentsView.Init()
		case messages.ViewChat:
			// Chat keeps its state when returned to
		}
		return a, nil

	case messages.ErrorOccurred:
		a.err = msg.Err
		return a.forwardToCurrent(msg)

	case messages.Quit:
		return a, tea.Quit
	}

	return a.forwardToCurrent(msg)
}

// performLogout clears the session. The auth service cascades a reset
// through the document and chat services.
func (a *App) performLogout() tea.Cmd {
	return func() tea.Msg {
		a.ports.Auth.Logout()
		return messages.LoggedOut{}
	}
}

// handleSessionExpired tears down view state and returns to login.
// The services have already been reset by the session teardown.
func (a *App) handleSessionExpired() (tea.Model, tea.Cmd) {
	a.documentsView.Reset()
	a.loginView.Reset()
	a.currentView = messages.ViewLogin
	a.err = nil
	return a, a.loginView.Init()
}

// forwardToCurrent forwards a message to the active view.
func (a *App) forwardToCurrent(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch a.currentView {
	case messages.ViewLogin:
		a.loginView, cmd = a.loginView.Update(msg)
	case messages.ViewDocuments:
		a.documentsView, cmd = a.documentsView.Update(msg)
	case messages.ViewChat:
		a.chatView, cmd = a.chatView.Update(msg)
	}

	return a, cmd
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewLogin:
		return a.loginView.View()
	case messages.ViewDocuments:
		return a.documentsView.View()
	case messages.ViewChat:
		return a.chatView.View()
	default:
		return a.loginView.View()
	}
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.loginView.SetDimensions(width, height)
	a.documentsView.SetDimensions(width, height)
	a.chatView.SetDimensions(width, height)
}

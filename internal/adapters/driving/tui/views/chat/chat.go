// Package chat provides the conversation view for the TUI.
package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/contexta-labs/contexta-cli/internal/adapters/driving/tui/messages"
	"github.com/contexta-labs/contexta-cli/internal/adapters/driving/tui/styles"
	"github.com/contexta-labs/contexta-cli/internal/core/domain"
	"github.com/contexta-labs/contexta-cli/internal/core/ports/driving"
)

// View is the conversation view for the selected document.
type View struct {
	styles      *styles.Styles
	chatService driving.ChatService
	ctx         context.Context

	document *domain.Document
	input    textinput.Model
	spinner  spinner.Model

	transcript []domain.ChatMessage
	waiting    bool
	width      int
	height     int
	ready      bool
	err        error
}

// NewView creates a new chat view.
func NewView(s *styles.Styles, chatService driving.ChatService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = "Ask a question about this document..."
	ti.CharLimit = 1024
	ti.Width = 60
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = s.Subtitle

	return &View{
		styles:      s,
		chatService: chatService,
		ctx:         context.Background(),
		input:       ti,
		spinner:     sp,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return textinput.Blink
}

// SetDocument scopes the view to a document and syncs the transcript
// from the chat service.
func (v *View) SetDocument(doc domain.Document) {
	v.document = &doc
	v.err = nil
	v.waiting = false
	v.input.Reset()
	v.syncTranscript()
}

// syncTranscript reads the conversation back from the chat service.
func (v *View) syncTranscript() {
	if v.chatService == nil {
		return
	}
	v.transcript = v.chatService.Messages()
}

// Update handles messages for the chat view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		v.input.Width = msg.Width - 8
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case spinner.TickMsg:
		if !v.waiting {
			return v, nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd

	case messages.AnswerReceived:
		v.waiting = false
		v.syncTranscript()
		if msg.Err != nil {
			v.err = msg.Err
		}
		return v, nil

	case messages.ErrorOccurred:
		v.waiting = false
		v.err = msg.Err
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewDocuments}
		}

	case "ctrl+n":
		if v.chatService != nil {
			v.chatService.StartNew()
		}
		v.err = nil
		v.syncTranscript()
		return v, nil

	case "enter":
		return v.submit()
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// submit sends the current input as a question.
func (v *View) submit() (*View, tea.Cmd) {
	text := strings.TrimSpace(v.input.Value())
	if text == "" || v.waiting {
		return v, nil
	}

	v.input.Reset()
	v.err = nil
	v.waiting = true

	cmd := v.performSend(text)
	// Optimistically show the user message while the query runs.
	v.transcript = append(v.transcript, domain.ChatMessage{
		Role:    domain.RoleUser,
		Content: text,
	})

	return v, tea.Batch(v.spinner.Tick, cmd)
}

// performSend returns a command that sends the question.
func (v *View) performSend(text string) tea.Cmd {
	return func() tea.Msg {
		if v.chatService == nil {
			return messages.AnswerReceived{Err: fmt.Errorf("chat service not available")}
		}
		err := v.chatService.Send(v.ctx, text)
		if errors.Is(err, domain.ErrSessionExpired) {
			return messages.SessionExpired{}
		}
		return messages.AnswerReceived{Err: err}
	}
}

// View renders the chat view.
func (v *View) View() string {
	var b strings.Builder

	name := "document"
	if v.document != nil {
		name = v.document.FileName
	}
	b.WriteString(v.styles.Title.Render("Chat - " + name))
	b.WriteString("\n\n")

	if len(v.transcript) == 0 && !v.waiting {
		b.WriteString(v.styles.Muted.Render("Ask your first question below."))
		b.WriteString("\n")
	}

	for _, msg := range v.transcript {
		b.WriteString(v.renderMessage(msg))
		b.WriteString("\n")
	}

	if v.waiting {
		b.WriteString(v.spinner.View())
		b.WriteString(v.styles.Muted.Render(" Thinking..."))
		b.WriteString("\n")
	}

	if v.err != nil {
		b.WriteString("\n")
		b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.InputField.Render(v.input.View()))
	b.WriteString("\n")
	b.WriteString(v.renderHelp())

	return b.String()
}

// renderMessage renders a single transcript entry.
func (v *View) renderMessage(msg domain.ChatMessage) string {
	if msg.Role == domain.RoleUser {
		return v.styles.User.Render("You: ") + v.styles.Normal.Render(msg.Content)
	}
	return v.styles.Subtitle.Render("Contexta: ") + v.styles.Assistant.Render(msg.Content)
}

// renderHelp renders the help footer.
func (v *View) renderHelp() string {
	return v.styles.Help.Render("[enter] send  [ctrl+n] new chat  [esc] documents  [ctrl+c] quit")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Transcript returns the rendered conversation.
func (v *View) Transcript() []domain.ChatMessage {
	return v.transcript
}

// Waiting returns true while a question is in flight.
func (v *View) Waiting() bool {
	return v.waiting
}

// Document returns the document the view is scoped to.
func (v *View) Document() *domain.Document {
	return v.document
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}

// Package documents provides the document list view component for the TUI.
package documents

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/contexta-labs/contexta-cli/internal/adapters/driving/tui/messages"
	"github.com/contexta-labs/contexta-cli/internal/adapters/driving/tui/styles"
	"github.com/contexta-labs/contexta-cli/internal/core/domain"
	"github.com/contexta-labs/contexta-cli/internal/core/ports/driving"
)

// View is the document list view.
type View struct {
	styles          *styles.Styles
	documentService driving.DocumentService
	ctx             context.Context

	documents    []domain.Document
	selected     int
	scrollOffset int
	uploadInput  textinput.Model
	prompting    bool
	uploading    bool
	width        int
	height       int
	ready        bool
	loading      bool
	err          error
	notice       string
}

// NewView creates a new documents view.
func NewView(s *styles.Styles, documentService driving.DocumentService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	uploadInput := textinput.New()
	uploadInput.Placeholder = "/path/to/document.pdf"
	uploadInput.CharLimit = 256
	uploadInput.Width = 50

	return &View{
		styles:          s,
		documentService: documentService,
		ctx:             context.Background(),
		documents:       []domain.Document{},
		uploadInput:     uploadInput,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view and kicks off the first refresh.
func (v *View) Init() tea.Cmd {
	v.loading = true
	return v.loadDocuments()
}

// Reset clears the list state.
func (v *View) Reset() {
	v.documents = []domain.Document{}
	v.selected = 0
	v.scrollOffset = 0
	v.err = nil
	v.notice = ""
	v.loading = false
	v.prompting = false
	v.uploading = false
	v.uploadInput.Reset()
	v.uploadInput.Blur()
}

// loadDocuments returns a command that refreshes the document list.
func (v *View) loadDocuments() tea.Cmd {
	return func() tea.Msg {
		if v.documentService == nil {
			return messages.DocumentsLoaded{Err: fmt.Errorf("document service not available")}
		}

		docs, err := v.documentService.Refresh(v.ctx)
		if errors.Is(err, domain.ErrSessionExpired) {
			return messages.SessionExpired{}
		}
		return messages.DocumentsLoaded{Documents: docs, Err: err}
	}
}

// Update handles messages for the documents view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.DocumentsLoaded:
		v.loading = false
		if msg.Err != nil {
			v.err = msg.Err
		} else {
			v.documents = msg.Documents
			v.err = nil
			if v.selected >= len(v.documents) {
				v.selected = 0
				v.scrollOffset = 0
			}
		}
		return v, nil

	case messages.DocumentUploaded:
		v.uploading = false
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.err = nil
		v.notice = fmt.Sprintf("Uploaded %s; processing.", msg.FileName)
		v.loading = true
		return v, v.loadDocuments()

	case messages.ErrorOccurred:
		v.loading = false
		v.err = msg.Err
		return v, nil
	}

	if v.prompting {
		return v.updateUploadInput(msg)
	}
	return v, nil
}

// handleKeyMsg handles key presses.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if v.prompting {
		return v.handlePromptKeyMsg(msg)
	}

	switch msg.String() {
	case "up", "k":
		if v.selected > 0 {
			v.selected--
			v.adjustScroll()
		}
	case "down", "j":
		if v.selected < len(v.documents)-1 {
			v.selected++
			v.adjustScroll()
		}
	case "enter":
		return v.selectCurrent()
	case "r":
		v.loading = true
		v.notice = ""
		return v, v.loadDocuments()
	case "u":
		v.prompting = true
		v.notice = ""
		v.uploadInput.Reset()
		return v, v.uploadInput.Focus()
	}

	return v, nil
}

// handlePromptKeyMsg handles key presses while the upload prompt is open.
func (v *View) handlePromptKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "esc":
		v.prompting = false
		v.uploadInput.Reset()
		v.uploadInput.Blur()
		return v, nil

	case "enter":
		path := strings.TrimSpace(v.uploadInput.Value())
		if path == "" {
			return v, nil
		}
		v.prompting = false
		v.uploading = true
		v.uploadInput.Reset()
		v.uploadInput.Blur()
		return v, v.uploadDocument(path)
	}

	return v.updateUploadInput(msg)
}

// updateUploadInput forwards a message to the upload path input.
func (v *View) updateUploadInput(msg tea.Msg) (*View, tea.Cmd) {
	var cmd tea.Cmd
	v.uploadInput, cmd = v.uploadInput.Update(msg)
	return v, cmd
}

// uploadDocument returns a command that reads the file and submits it.
func (v *View) uploadDocument(path string) tea.Cmd {
	return func() tea.Msg {
		if v.documentService == nil {
			return messages.DocumentUploaded{Err: fmt.Errorf("document service not available")}
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return messages.DocumentUploaded{Err: fmt.Errorf("reading %s: %w", path, err)}
		}

		fileName := filepath.Base(path)
		err = v.documentService.Upload(v.ctx, fileName, data)
		if errors.Is(err, domain.ErrSessionExpired) {
			return messages.SessionExpired{}
		}
		return messages.DocumentUploaded{FileName: fileName, Err: err}
	}
}

// selectCurrent selects the highlighted document for conversation.
// Documents that are not ready can be highlighted but not entered.
func (v *View) selectCurrent() (*View, tea.Cmd) {
	if v.selected >= len(v.documents) {
		return v, nil
	}
	doc := v.documents[v.selected]

	if !doc.ChatEligible() {
		v.notice = fmt.Sprintf("%q is not ready for chat (status: %s)", doc.FileName, doc.Status)
		return v, nil
	}

	if v.documentService != nil {
		if _, err := v.documentService.Select(doc.ID); err != nil {
			v.err = err
			return v, nil
		}
	}

	v.notice = ""
	return v, func() tea.Msg {
		return messages.DocumentSelected{Document: doc}
	}
}

// adjustScroll keeps the selected item visible.
func (v *View) adjustScroll() {
	visibleItems := v.visibleItemCount()
	if v.selected < v.scrollOffset {
		v.scrollOffset = v.selected
	} else if v.selected >= v.scrollOffset+visibleItems {
		v.scrollOffset = v.selected - visibleItems + 1
	}
}

// visibleItemCount returns the number of items that can be displayed.
func (v *View) visibleItemCount() int {
	// Reserve lines for title, separator, help, and padding
	reserved := 8
	available := v.height - reserved
	if available < 1 {
		available = 1
	}
	return available
}

// View renders the documents view.
func (v *View) View() string {
	var b strings.Builder

	title := fmt.Sprintf("Documents (%d)", len(v.documents))
	b.WriteString(v.styles.Title.Render(title))
	b.WriteString("\n\n")

	if v.loading {
		b.WriteString(v.styles.Muted.Render("Loading documents..."))
		b.WriteString("\n\n")
		b.WriteString(v.renderHelp())
		return b.String()
	}

	if v.err != nil {
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n\n")
		b.WriteString(v.renderHelp())
		return b.String()
	}

	if len(v.documents) == 0 {
		b.WriteString(v.styles.Muted.Render("No documents uploaded yet. Press 'u' to upload one."))
		b.WriteString("\n\n")
		b.WriteString(v.renderPrompt())
		b.WriteString(v.renderHelp())
		return b.String()
	}

	visibleItems := v.visibleItemCount()
	for i := v.scrollOffset; i < len(v.documents) && i < v.scrollOffset+visibleItems; i++ {
		b.WriteString(v.renderDocument(i, &v.documents[i]))
		b.WriteString("\n")
	}

	if len(v.documents) > visibleItems {
		b.WriteString("\n")
		b.WriteString(v.styles.Muted.Render(fmt.Sprintf("  [%d-%d of %d]",
			v.scrollOffset+1,
			min(v.scrollOffset+visibleItems, len(v.documents)),
			len(v.documents))))
	}

	if v.uploading {
		b.WriteString("\n\n")
		b.WriteString(v.styles.Muted.Render("Uploading..."))
	}

	if v.notice != "" {
		b.WriteString("\n\n")
		b.WriteString(v.styles.Warning.Render(v.notice))
	}

	b.WriteString("\n\n")
	b.WriteString(v.renderPrompt())
	b.WriteString(v.renderHelp())

	return b.String()
}

// renderPrompt renders the upload path prompt when it is open.
func (v *View) renderPrompt() string {
	if !v.prompting {
		return ""
	}
	var b strings.Builder
	b.WriteString(v.styles.Subtitle.Render("Upload path"))
	b.WriteString("\n")
	b.WriteString(v.styles.InputField.Render(v.uploadInput.View()))
	b.WriteString("\n\n")
	return b.String()
}

// renderDocument renders a single document line.
func (v *View) renderDocument(index int, doc *domain.Document) string {
	indicator := "  "
	if index == v.selected {
		indicator = "> "
	}

	name := doc.FileName
	maxNameLen := v.width/2 - 4
	if maxNameLen < 10 {
		maxNameLen = 10
	}
	if len(name) > maxNameLen {
		name = name[:maxNameLen-3] + "..."
	}

	status := v.renderStatus(doc.Status)

	if index == v.selected {
		return v.styles.Selected.Render(fmt.Sprintf("%s%-*s  %s", indicator, maxNameLen, name, doc.Status))
	}

	return v.styles.Normal.Render(indicator) +
		v.styles.Normal.Render(fmt.Sprintf("%-*s  ", maxNameLen, name)) +
		status
}

// renderStatus renders a document status with its colour.
func (v *View) renderStatus(status domain.DocumentStatus) string {
	switch status {
	case domain.StatusReady:
		return v.styles.Success.Render(string(status))
	case domain.StatusFailed:
		return v.styles.Error.Render(string(status))
	case domain.StatusUploading, domain.StatusProcessing:
		return v.styles.Warning.Render(string(status))
	default:
		return v.styles.Muted.Render(string(status))
	}
}

// renderHelp renders the help footer.
func (v *View) renderHelp() string {
	if v.prompting {
		return v.styles.Help.Render("[enter] upload  [esc] cancel")
	}
	return v.styles.Help.Render("[↑/↓] navigate  [enter] chat  [u] upload  [r] reload  [l] log out  [ctrl+c] quit")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Documents returns the current list of documents.
func (v *View) Documents() []domain.Document {
	return v.documents
}

// SelectedIndex returns the currently selected document index.
func (v *View) SelectedIndex() int {
	return v.selected
}

// SelectedDocument returns the currently highlighted document.
func (v *View) SelectedDocument() *domain.Document {
	if v.selected < len(v.documents) {
		return &v.documents[v.selected]
	}
	return nil
}

// Loading returns true while a refresh is in flight.
func (v *View) Loading() bool {
	return v.loading
}

// Prompting returns true while the upload path prompt is open.
func (v *View) Prompting() bool {
	return v.prompting
}

// Uploading returns true while an upload is in flight.
func (v *View) Uploading() bool {
	return v.uploading
}

// Notice returns the current informational notice.
func (v *View) Notice() string {
	return v.notice
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}

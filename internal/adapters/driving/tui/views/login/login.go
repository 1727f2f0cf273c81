// Package login provides the login and signup view for the TUI.
package login

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/contexta-labs/contexta-cli/internal/adapters/driving/tui/messages"
	"github.com/contexta-labs/contexta-cli/internal/adapters/driving/tui/styles"
	"github.com/contexta-labs/contexta-cli/internal/core/ports/driving"
)

// Mode selects between the login and signup forms.
type Mode int

const (
	// ModeLogin authenticates an existing account.
	ModeLogin Mode = iota
	// ModeSignup creates a new account.
	ModeSignup
)

// field indexes into the input slice.
const (
	fieldEmail = iota
	fieldPassword
	fieldName
)

// View is the login and signup view.
type View struct {
	styles      *styles.Styles
	authService driving.AuthService
	ctx         context.Context

	inputs     []textinput.Model
	focusIndex int
	mode       Mode

	width      int
	height     int
	ready      bool
	submitting bool
	err        error
	notice     string
}

// NewView creates a new login view.
func NewView(s *styles.Styles, authService driving.AuthService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.CharLimit = 128
	email.Width = 40
	email.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 128
	password.Width = 40
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	name := textinput.New()
	name.Placeholder = "display name"
	name.CharLimit = 128
	name.Width = 40

	return &View{
		styles:      s,
		authService: authService,
		ctx:         context.Background(),
		inputs:      []textinput.Model{email, password, name},
		mode:        ModeLogin,
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

// Reset clears the form and any previous error.
func (v *View) Reset() {
	for i := range v.inputs {
		v.inputs[i].Reset()
		v.inputs[i].Blur()
	}
	v.inputs[fieldEmail].Focus()
	v.focusIndex = fieldEmail
	v.submitting = false
	v.err = nil
	v.notice = ""
}

// fieldCount returns the number of active fields for the current mode.
func (v *View) fieldCount() int {
	if v.mode == ModeSignup {
		return 3
	}
	return 2
}

// Update handles messages for the login view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.LoginCompleted:
		v.submitting = false
		if msg.Err != nil {
			v.err = msg.Err
		}
		return v, nil

	case messages.SignupCompleted:
		v.submitting = false
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		// The new account must sign in explicitly. Keep the email so
		// only the password needs re-entering.
		v.mode = ModeLogin
		v.err = nil
		v.notice = "Account created. Please sign in."
		v.inputs[fieldPassword].Reset()
		v.inputs[fieldName].Reset()
		v.setFocus(fieldPassword)
		return v, nil

	case messages.LoggedOut:
		v.notice = "Signed out."
		return v, nil

	case messages.ErrorOccurred:
		v.submitting = false
		v.err = msg.Err
		return v, nil
	}

	return v.updateInputs(msg)
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if v.submitting {
		// Ignore input while a request is in flight.
		return v, nil
	}

	switch msg.String() {
	case "tab", "down":
		v.setFocus((v.focusIndex + 1) % v.fieldCount())
		return v, nil

	case "shift+tab", "up":
		v.setFocus((v.focusIndex - 1 + v.fieldCount()) % v.fieldCount())
		return v, nil

	case "ctrl+s":
		// Toggle between login and signup
		if v.mode == ModeLogin {
			v.mode = ModeSignup
		} else {
			v.mode = ModeLogin
			if v.focusIndex >= v.fieldCount() {
				v.setFocus(fieldEmail)
			}
		}
		v.err = nil
		v.notice = ""
		return v, nil

	case "enter":
		return v.submit()
	}

	return v.updateInputs(msg)
}

// setFocus moves focus to the given field.
func (v *View) setFocus(index int) {
	for i := range v.inputs {
		v.inputs[i].Blur()
	}
	v.focusIndex = index
	v.inputs[index].Focus()
}

// updateInputs forwards a message to the focused input.
func (v *View) updateInputs(msg tea.Msg) (*View, tea.Cmd) {
	var cmd tea.Cmd
	v.inputs[v.focusIndex], cmd = v.inputs[v.focusIndex].Update(msg)
	return v, cmd
}

// submit validates the form and issues the login or signup command.
func (v *View) submit() (*View, tea.Cmd) {
	email := strings.TrimSpace(v.inputs[fieldEmail].Value())
	password := v.inputs[fieldPassword].Value()

	if email == "" || password == "" {
		// Move focus to the first empty field instead of submitting.
		if email == "" {
			v.setFocus(fieldEmail)
		} else {
			v.setFocus(fieldPassword)
		}
		return v, nil
	}

	v.submitting = true
	v.err = nil
	v.notice = ""

	if v.mode == ModeSignup {
		name := strings.TrimSpace(v.inputs[fieldName].Value())
		return v, v.performSignup(email, password, name)
	}
	return v, v.performLogin(email, password)
}

// performLogin returns a command that authenticates the user.
func (v *View) performLogin(email, password string) tea.Cmd {
	return func() tea.Msg {
		if v.authService == nil {
			return messages.LoginCompleted{Err: ErrNoAuthService}
		}
		err := v.authService.Login(v.ctx, email, password)
		return messages.LoginCompleted{Identity: email, Err: err}
	}
}

// performSignup returns a command that registers the account. Signup
// never authenticates; the user signs in afterwards.
func (v *View) performSignup(email, password, name string) tea.Cmd {
	return func() tea.Msg {
		if v.authService == nil {
			return messages.SignupCompleted{Err: ErrNoAuthService}
		}
		err := v.authService.Signup(v.ctx, email, password, name)
		return messages.SignupCompleted{Email: email, Err: err}
	}
}

// View renders the login view.
func (v *View) View() string {
	var b strings.Builder

	if v.mode == ModeSignup {
		b.WriteString(v.styles.Title.Render("Create an account"))
	} else {
		b.WriteString(v.styles.Title.Render("Sign in to Contexta"))
	}
	b.WriteString("\n\n")

	labels := []string{"Email", "Password", "Name"}
	for i := 0; i < v.fieldCount(); i++ {
		b.WriteString(v.styles.Subtitle.Render(labels[i]))
		b.WriteString("\n")
		b.WriteString(v.styles.InputField.Render(v.inputs[i].View()))
		b.WriteString("\n")
	}

	if v.submitting {
		b.WriteString("\n")
		if v.mode == ModeSignup {
			b.WriteString(v.styles.Muted.Render("Creating account..."))
		} else {
			b.WriteString(v.styles.Muted.Render("Signing in..."))
		}
		b.WriteString("\n")
	}

	if v.notice != "" {
		b.WriteString("\n")
		b.WriteString(v.styles.Success.Render(v.notice))
		b.WriteString("\n")
	}

	if v.err != nil {
		b.WriteString("\n")
		b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if v.mode == ModeSignup {
		b.WriteString(v.styles.Help.Render("[enter] sign up  [tab] next field  [ctrl+s] back to login  [ctrl+c] quit"))
	} else {
		b.WriteString(v.styles.Help.Render("[enter] sign in  [tab] next field  [ctrl+s] create account  [ctrl+c] quit"))
	}

	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Mode returns the active form mode.
func (v *View) Mode() Mode {
	return v.mode
}

// FocusIndex returns the index of the focused field.
func (v *View) FocusIndex() int {
	return v.focusIndex
}

// Submitting returns true while a request is in flight.
func (v *View) Submitting() bool {
	return v.submitting
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}

// Notice returns the current informational notice.
func (v *View) Notice() string {
	return v.notice
}

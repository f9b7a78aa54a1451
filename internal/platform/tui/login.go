package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/arcadelab/exodus/internal/profile"
)

// Login form field indices.
const (
	fieldUsername = iota
	fieldPassword
	fieldCount
)

var (
	loginTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("11"))
	loginErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))
	loginHintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// LoginModel is the Bubble Tea model for the identity screen shown before
// a session starts. It authenticates against the profile store, registers
// new profiles, or lets the user continue as a guest.
type LoginModel struct {
	repo     profile.Repository
	inputs   [fieldCount]textinput.Model
	focused  int
	register bool // True when the form creates a profile instead of logging in
	errMsg   string
	username string // Set on success; empty for guest
	done     bool
	quitting bool
	width    int
	height   int
}

// NewLoginModel creates a login form bound to the given store.
func NewLoginModel(repo profile.Repository, width, height int) LoginModel {
	user := textinput.New()
	user.Placeholder = "username"
	user.CharLimit = 32
	user.Width = 24
	user.Focus()

	pass := textinput.New()
	pass.Placeholder = "password"
	pass.CharLimit = 64
	pass.Width = 24
	pass.EchoMode = textinput.EchoPassword
	pass.EchoCharacter = '*'

	return LoginModel{
		repo:   repo,
		inputs: [fieldCount]textinput.Model{user, pass},
		width:  width,
		height: height,
	}
}

// Init starts the cursor blink.
func (m LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the login form.
func (m LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "esc":
			// Guest session: no persistence
			m.username = ""
			m.done = true
			return m, tea.Quit

		case "tab", "shift+tab", "up", "down":
			if msg.String() == "shift+tab" || msg.String() == "up" {
				m.focused--
			} else {
				m.focused++
			}
			m.focused = (m.focused + fieldCount) % fieldCount
			cmds := make([]tea.Cmd, 0, fieldCount)
			for i := range m.inputs {
				if i == m.focused {
					cmds = append(cmds, m.inputs[i].Focus())
				} else {
					m.inputs[i].Blur()
				}
			}
			return m, tea.Batch(cmds...)

		case "ctrl+r":
			m.register = !m.register
			m.errMsg = ""
			return m, nil

		case "enter":
			return m.submit()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	cmd := m.updateFocused(msg)
	return m, cmd
}

// updateFocused forwards a message to the focused input.
func (m *LoginModel) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return cmd
}

// submit validates the form against the profile store.
func (m LoginModel) submit() (tea.Model, tea.Cmd) {
	username := strings.TrimSpace(m.inputs[fieldUsername].Value())
	password := m.inputs[fieldPassword].Value()

	if username == "" {
		m.errMsg = "username is required"
		return m, nil
	}
	if password == "" {
		m.errMsg = "password is required"
		return m, nil
	}
	if m.repo == nil {
		m.errMsg = "no profile store available, press Esc for guest mode"
		return m, nil
	}

	if m.register {
		if _, err := m.repo.Create(username, password); err != nil {
			if errors.Is(err, profile.ErrExists) {
				m.errMsg = fmt.Sprintf("user %q already exists", username)
			} else {
				m.errMsg = err.Error()
			}
			return m, nil
		}
	} else {
		if _, err := m.repo.Authenticate(username, password); err != nil {
			switch {
			case errors.Is(err, profile.ErrNotFound):
				m.errMsg = fmt.Sprintf("no such user %q, Ctrl+R to register", username)
			case errors.Is(err, profile.ErrInvalidCredentials):
				m.errMsg = "wrong password"
			default:
				m.errMsg = err.Error()
			}
			return m, nil
		}
	}

	m.username = username
	m.done = true
	return m, tea.Quit
}

// View renders the login form.
func (m LoginModel) View() string {
	if m.done || m.quitting {
		return ""
	}

	var b strings.Builder

	title := "LOG IN"
	if m.register {
		title = "REGISTER"
	}
	b.WriteString(loginTitleStyle.Render("EXODUS - " + title))
	b.WriteString("\n\n")

	b.WriteString("Username: " + m.inputs[fieldUsername].View() + "\n")
	b.WriteString("Password: " + m.inputs[fieldPassword].View() + "\n")

	if m.errMsg != "" {
		b.WriteString("\n" + loginErrorStyle.Render(m.errMsg) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(loginHintStyle.Render(
		"Enter submit - Tab switch field - Ctrl+R toggle register - Esc play as guest"))

	content := b.String()
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}

// Username returns the authenticated username, empty for a guest session.
func (m LoginModel) Username() string {
	return m.username
}

// IsQuitting returns true if the user aborted instead of logging in.
func (m LoginModel) IsQuitting() bool {
	return m.quitting
}

// IsDone returns true if the form finished with a valid identity.
func (m LoginModel) IsDone() bool {
	return m.done
}

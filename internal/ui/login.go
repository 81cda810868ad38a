package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// loginState holds the sign-in form: two inputs and a busy flag while the
// credential probe is in flight.
type loginState struct {
	inputs  [2]textinput.Model
	focus   int
	busy    bool
	errText string
}

func newLoginState() loginState {
	username := textinput.New()
	username.Placeholder = "username"
	username.CharLimit = 64
	username.Width = 28
	username.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 64
	password.Width = 28
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	return loginState{inputs: [2]textinput.Model{username, password}}
}

// handleLoginKey processes keyboard input for the login view. Printable keys
// belong to the focused input, so global shortcuts are not active here.
func (m Model) handleLoginKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.login.busy {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Confirm):
		return m.submitLogin()

	case key.Matches(msg, m.keys.Tab), msg.String() == "down":
		m.login.inputs[m.login.focus].Blur()
		m.login.focus = (m.login.focus + 1) % len(m.login.inputs)
		m.login.inputs[m.login.focus].Focus()
		return m, nil

	case msg.String() == "shift+tab", msg.String() == "up":
		m.login.inputs[m.login.focus].Blur()
		m.login.focus = (m.login.focus - 1 + len(m.login.inputs)) % len(m.login.inputs)
		m.login.inputs[m.login.focus].Focus()
		return m, nil
	}

	var cmd tea.Cmd
	m.login.inputs[m.login.focus], cmd = m.login.inputs[m.login.focus].Update(msg)
	if m.login.errText != "" {
		m.login.errText = ""
	}
	return m, cmd
}

// submitLogin validates the two inputs and starts the credential probe.
func (m Model) submitLogin() (tea.Model, tea.Cmd) {
	username := strings.TrimSpace(m.login.inputs[0].Value())
	password := m.login.inputs[1].Value()

	if username == "" || password == "" {
		m.login.errText = "All fields are required."
		return m, nil
	}

	m.login.busy = true
	m.login.errText = ""
	return m, loginCmd(m.ctx, m.session, username, password)
}

// renderLogin renders the centered sign-in card.
func (m Model) renderLogin() string {
	styles := m.theme.Styles()

	var b strings.Builder

	b.WriteString(styles.AccentText.Render("CarFinder"))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("Sign in to browse the inventory"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 40)))
	b.WriteString("\n\n")

	usernameLabel := "Username: "
	passwordLabel := "Password: "
	if m.login.focus == 0 {
		usernameLabel = styles.AccentText.Render(usernameLabel)
		passwordLabel = styles.MutedText.Render(passwordLabel)
	} else {
		usernameLabel = styles.MutedText.Render(usernameLabel)
		passwordLabel = styles.AccentText.Render(passwordLabel)
	}

	b.WriteString(usernameLabel)
	b.WriteString(m.login.inputs[0].View())
	b.WriteString("\n\n")
	b.WriteString(passwordLabel)
	b.WriteString(m.login.inputs[1].View())
	b.WriteString("\n\n")

	switch {
	case m.login.busy:
		b.WriteString(styles.MutedText.Render("Signing in..."))
	case m.login.errText != "":
		b.WriteString(styles.Danger.Render(m.login.errText))
	default:
		b.WriteString(styles.FaintText.Render("Enter: Sign in  •  Tab: Next field  •  Ctrl+C: Quit"))
	}

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Accent)).
		Padding(1, 2).
		Width(48).
		Render(b.String())

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		card,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}

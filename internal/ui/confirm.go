package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julietavg/carfind/internal/api"
)

// confirmState holds the delete confirmation modal.
type confirmState struct {
	id      int64
	label   string
	busy    bool
	errText string
}

// openConfirm opens the delete confirmation for v.
func (m *Model) openConfirm(v api.Vehicle) {
	label := strings.TrimSpace(fmt.Sprintf("%d %s %s", v.Year, v.Make, v.Model))
	m.confirm = confirmState{id: v.ID, label: label}
	m.showConfirm = true
}

// handleConfirmKey processes keyboard input for the delete confirmation.
func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirm.busy {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Confirm), msg.String() == "y":
		m.confirm.busy = true
		m.confirm.errText = ""
		m.mutSeq++
		return m, m.deleteCmd(m.confirm.id)

	case key.Matches(msg, m.keys.Escape), msg.String() == "n":
		m.showConfirm = false
		return m, nil
	}

	return m, nil
}

// deleteErrorText turns a failed delete into a banner message.
func deleteErrorText(err error) string {
	if api.IsNoResponse(err) {
		return "Cannot reach the server. Please try again."
	}
	if msg := api.ErrorMessage(err); msg != "" {
		return msg
	}
	return "Delete failed."
}

// renderConfirm renders the delete confirmation modal.
func (m Model) renderConfirm() string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Delete Car"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 40)))
	b.WriteString("\n\n")
	b.WriteString(styles.Text.Render("Delete "))
	b.WriteString(styles.AccentText.Render(m.confirm.label))
	b.WriteString(styles.Text.Render("?"))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("This cannot be undone."))
	b.WriteString("\n\n")

	switch {
	case m.confirm.busy:
		b.WriteString(styles.MutedText.Render("Deleting..."))
	case m.confirm.errText != "":
		b.WriteString(styles.Danger.Render(m.confirm.errText))
		b.WriteString("\n")
		b.WriteString(styles.FaintText.Render("Enter/y: Retry  •  Esc/n: Cancel"))
	default:
		b.WriteString(styles.FaintText.Render("Enter/y: Delete  •  Esc/n: Cancel"))
	}

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Danger)).
		Padding(1, 2).
		Width(46).
		Render(b.String())

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}

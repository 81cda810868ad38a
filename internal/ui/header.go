package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader renders the top line: logo, session identity, saved count,
// and any success notice, right-aligned theme name.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()

	left := styles.AccentText.Render(" CarFinder ")

	user := m.sess.Username
	if user == "" {
		user = "User"
	}
	avatar := styles.Selection.Render(" " + initials(user) + " ")
	identity := avatar + styles.Text.Render(" "+user)
	if m.sess.IsAdmin() {
		identity += styles.Warning.Render(" (admin)")
	}

	savedPart := ""
	if n := m.favs.Count(); n > 0 {
		savedPart = styles.MutedText.Render(fmt.Sprintf("  ★ %d saved", n))
	}

	noticePart := ""
	if m.notice != "" {
		noticePart = "  " + styles.Success.Render(m.notice)
	}

	line := left + "  " + identity + savedPart + noticePart

	right := styles.FaintText.Render(m.theme.Name + " ")
	gap := m.width - lipgloss.Width(line) - lipgloss.Width(right)
	if gap < 1 {
		return truncate(line, m.width)
	}
	return line + strings.Repeat(" ", gap) + right
}

// renderCommandBar renders the keyboard hint line under the header. Admin
// actions only appear for admin sessions.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles()

	hints := []struct{ key, desc string }{
		{"/", "search"},
		{"s", "sort"},
		{"f", "filters"},
		{"m", "save"},
		{"o", "saved"},
	}
	if m.sess.IsAdmin() {
		hints = append(hints,
			struct{ key, desc string }{"a", "add"},
			struct{ key, desc string }{"e", "edit"},
			struct{ key, desc string }{"d", "delete"},
		)
	}
	hints = append(hints,
		struct{ key, desc string }{"h", "help"},
		struct{ key, desc string }{"L", "log out"},
		struct{ key, desc string }{"q", "quit"},
	)

	parts := make([]string, 0, len(hints))
	for _, hint := range hints {
		parts = append(parts, styles.Warning.Render("<"+hint.key+">")+" "+styles.MutedText.Render(hint.desc))
	}
	return " " + strings.Join(parts, "  ")
}

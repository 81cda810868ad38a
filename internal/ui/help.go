package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHelp renders the help overlay.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()

	sections := []helpSection{
		{
			title: "Navigation",
			items: []helpItem{
				{"j/k", "Move up/down"},
				{"g/G", "Go to top/bottom"},
				{"tab", "Switch pane"},
				{"esc", "Home (clear search and saved-only)"},
			},
		},
		{
			title: "Inventory",
			items: []helpItem{
				{"/", "Search"},
				{"s", "Cycle sort order"},
				{"f", "Filter panel"},
				{"m", "Save/unsave car"},
				{"o", "Saved cars only"},
			},
		},
	}
	if m.sess.IsAdmin() {
		sections = append(sections, helpSection{
			title: "Admin",
			items: []helpItem{
				{"a", "Add car"},
				{"e", "Edit selected car"},
				{"d", "Delete selected car"},
			},
		})
	}
	sections = append(sections, helpSection{
		title: "General",
		items: []helpItem{
			{"T", "Cycle theme"},
			{"h/?", "Toggle help"},
			{"L", "Log out"},
			{"q/ctrl+c", "Quit"},
		},
	})

	var b strings.Builder

	b.WriteString(styles.Text.Bold(true).Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 30)))
	b.WriteString("\n\n")

	for i, section := range sections {
		b.WriteString(styles.AccentText.Render(section.title))
		b.WriteString("\n")

		for _, item := range section.items {
			keyStyle := lipgloss.NewStyle().
				Foreground(lipgloss.Color(m.theme.Warning)).
				Width(12)
			b.WriteString(keyStyle.Render(item.key))
			b.WriteString(styles.Text.Render(item.desc))
			b.WriteString("\n")
		}

		if i < len(sections)-1 {
			b.WriteString("\n")
		}
	}

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Accent)).
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

type helpSection struct {
	title string
	items []helpItem
}

type helpItem struct {
	key  string
	desc string
}

package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines colors for the UI.
type Theme struct {
	Name string

	Background string
	Surface    string

	SelectionBg   string
	SelectionText string

	Border      string
	BorderFocus string

	Text    string
	Muted   string
	Faint   string
	Accent  string
	Success string
	Warning string
	Danger  string
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Text:       lipgloss.NewStyle().Foreground(lipgloss.Color(t.Text)),
		MutedText:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.Muted)),
		FaintText:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.Faint)),
		AccentText: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Accent)).Bold(true),
		Success:    lipgloss.NewStyle().Foreground(lipgloss.Color(t.Success)).Bold(true),
		Warning:    lipgloss.NewStyle().Foreground(lipgloss.Color(t.Warning)),
		Danger:     lipgloss.NewStyle().Foreground(lipgloss.Color(t.Danger)).Bold(true),
		Selection: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SelectionBg)).
			Foreground(lipgloss.Color(t.SelectionText)).
			Bold(true),
		Border: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)),
		BorderFocus: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.BorderFocus)),
	}
}

// Styles bundles the Lipgloss styles derived from a Theme.
type Styles struct {
	Text       lipgloss.Style
	MutedText  lipgloss.Style
	FaintText  lipgloss.Style
	AccentText lipgloss.Style
	Success    lipgloss.Style
	Warning    lipgloss.Style
	Danger     lipgloss.Style
	Selection  lipgloss.Style
	Border     lipgloss.Style
	BorderFocus lipgloss.Style
}

var themes = []Theme{
	{
		Name:          "Onyx",
		Background:    "#16161e",
		Surface:       "#1f1f2b",
		SelectionBg:   "#3b4261",
		SelectionText: "#c8d3f5",
		Border:        "#3b4261",
		BorderFocus:   "#82aaff",
		Text:          "#c8d3f5",
		Muted:         "#828bb8",
		Faint:         "#545c7e",
		Accent:        "#82aaff",
		Success:       "#c3e88d",
		Warning:       "#ffc777",
		Danger:        "#ff757f",
	},
	{
		Name:          "Daylight",
		Background:    "#fafafa",
		Surface:       "#eeeeee",
		SelectionBg:   "#d0d7e5",
		SelectionText: "#1a1a2e",
		Border:        "#c0c0c8",
		BorderFocus:   "#3a6fd8",
		Text:          "#1a1a2e",
		Muted:         "#5a5a72",
		Faint:         "#9a9aae",
		Accent:        "#3a6fd8",
		Success:       "#2c7a2c",
		Warning:       "#a86a00",
		Danger:        "#c22f3f",
	},
}

// GetTheme returns the theme with the given name, defaulting to the first
// theme when the name is unknown.
func GetTheme(name string) Theme {
	for _, t := range themes {
		if t.Name == name {
			return t
		}
	}
	return themes[0]
}

// NextTheme returns the name of the theme after the given one, wrapping.
func NextTheme(name string) string {
	for i, t := range themes {
		if t.Name == name {
			return themes[(i+1)%len(themes)].Name
		}
	}
	return themes[0].Name
}

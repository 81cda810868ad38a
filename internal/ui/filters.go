package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julietavg/carfind/internal/form"
	"github.com/julietavg/carfind/internal/inventory"
)

// filterState holds the filter panel: four range inputs followed by the
// make and model checklists. Focus positions 0-3 are the inputs; positions
// from 4 on walk the checklist entries.
type filterState struct {
	bounds inventory.Bounds
	inputs [4]textinput.Model // price min, price max, year min, year max

	selMakes  map[string]bool
	selModels map[string]bool

	focus int
}

// optionCount returns how many checklist entries the panel has.
func (f filterState) optionCount() int {
	return len(f.bounds.Makes) + len(f.bounds.Models)
}

// option returns the checklist entry at list position i and whether it is a
// make (as opposed to a model).
func (f filterState) option(i int) (string, bool) {
	if i < len(f.bounds.Makes) {
		return f.bounds.Makes[i], true
	}
	return f.bounds.Models[i-len(f.bounds.Makes)], false
}

// openFilters opens the filter panel, pre-filled from the active criteria or
// the derived bounds when no filter is set.
func (m *Model) openFilters() {
	bounds := inventory.DeriveBounds(m.inv.Snapshot())

	current := bounds.FullRange(nil, nil)
	if m.browse.filters != nil {
		current = *m.browse.filters
	}

	labels := [4]string{"min price", "max price", "min year", "max year"}
	values := [4]string{
		strconv.FormatFloat(current.PriceMin, 'f', 0, 64),
		strconv.FormatFloat(current.PriceMax, 'f', 0, 64),
		strconv.Itoa(current.YearMin),
		strconv.Itoa(current.YearMax),
	}

	state := filterState{bounds: bounds, selMakes: map[string]bool{}, selModels: map[string]bool{}}
	for i := range state.inputs {
		input := textinput.New()
		input.Placeholder = labels[i]
		input.CharLimit = 9
		input.Width = 10
		input.SetValue(values[i])
		state.inputs[i] = input
	}
	state.inputs[0].Focus()

	for name := range current.Makes {
		state.selMakes[name] = true
	}
	for name := range current.Models {
		state.selModels[name] = true
	}

	m.filters = state
	m.showFilters = true
}

// handleFiltersKey processes keyboard input for the filter panel.
func (m Model) handleFiltersKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := &m.filters
	last := 3 + f.optionCount()

	switch {
	case key.Matches(msg, m.keys.Escape):
		m.showFilters = false
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		m.applyFilters()
		m.showFilters = false
		m.browse.selected = 0
		return m, nil

	case key.Matches(msg, m.keys.Tab), msg.String() == "down":
		if f.focus < 4 {
			f.inputs[f.focus].Blur()
		}
		f.focus++
		if f.focus > last {
			f.focus = 0
		}
		if f.focus < 4 {
			f.inputs[f.focus].Focus()
		}
		return m, nil

	case msg.String() == "shift+tab", msg.String() == "up":
		if f.focus < 4 {
			f.inputs[f.focus].Blur()
		}
		f.focus--
		if f.focus < 0 {
			f.focus = last
		}
		if f.focus < 4 {
			f.inputs[f.focus].Focus()
		}
		return m, nil

	case msg.String() == " " && f.focus >= 4:
		name, isMake := f.option(f.focus - 4)
		if isMake {
			toggleSet(f.selMakes, name)
		} else {
			toggleSet(f.selModels, name)
		}
		return m, nil

	case msg.String() == "ctrl+r":
		// Reset to the full inventory range with nothing ticked.
		full := f.bounds.FullRange(nil, nil)
		f.inputs[0].SetValue(strconv.FormatFloat(full.PriceMin, 'f', 0, 64))
		f.inputs[1].SetValue(strconv.FormatFloat(full.PriceMax, 'f', 0, 64))
		f.inputs[2].SetValue(strconv.Itoa(full.YearMin))
		f.inputs[3].SetValue(strconv.Itoa(full.YearMax))
		f.selMakes = map[string]bool{}
		f.selModels = map[string]bool{}
		return m, nil
	}

	if f.focus >= 4 {
		return m, nil
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	f.inputs[f.focus].SetValue(form.SanitizeMileage(f.inputs[f.focus].Value()))
	return m, cmd
}

// applyFilters builds criteria from the panel. Blank or unparsable range
// fields fall back to the derived bounds. A panel equal to the full range
// with nothing ticked clears the filter entirely.
func (m *Model) applyFilters() {
	f := m.filters

	c := inventory.Criteria{
		PriceMin: parseFloatOr(f.inputs[0].Value(), f.bounds.PriceMin),
		PriceMax: parseFloatOr(f.inputs[1].Value(), f.bounds.PriceMax),
		YearMin:  parseIntOr(f.inputs[2].Value(), f.bounds.YearMin),
		YearMax:  parseIntOr(f.inputs[3].Value(), f.bounds.YearMax),
		Makes:    copySet(f.selMakes),
		Models:   copySet(f.selModels),
	}

	noRange := c.PriceMin == f.bounds.PriceMin && c.PriceMax == f.bounds.PriceMax &&
		c.YearMin == f.bounds.YearMin && c.YearMax == f.bounds.YearMax
	if noRange && len(c.Makes) == 0 && len(c.Models) == 0 {
		m.browse.filters = nil
		return
	}
	m.browse.filters = &c
}

// renderFilters renders the filter panel modal.
func (m Model) renderFilters() string {
	styles := m.theme.Styles()
	f := m.filters

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Filters"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 44)))
	b.WriteString("\n\n")

	rangeLabels := [4]string{"Price from: ", "Price to:   ", "Year from:  ", "Year to:    "}
	for i, label := range rangeLabels {
		if f.focus == i {
			b.WriteString(styles.AccentText.Render(label))
		} else {
			b.WriteString(styles.MutedText.Render(label))
		}
		b.WriteString(f.inputs[i].View())
		b.WriteString("\n")
	}

	renderOptions := func(title string, names []string, selected map[string]bool, offset int) {
		if len(names) == 0 {
			return
		}
		b.WriteString("\n")
		b.WriteString(styles.AccentText.Render(title))
		b.WriteString("\n")
		for i, name := range names {
			mark := "[ ] "
			if selected[name] {
				mark = "[x] "
			}
			line := mark + name
			if f.focus == 4+offset+i {
				b.WriteString(styles.Selection.Render(line))
			} else {
				b.WriteString(styles.Text.Render(line))
			}
			b.WriteString("\n")
		}
	}

	renderOptions("Makes", f.bounds.Makes, f.selMakes, 0)
	renderOptions("Models", f.bounds.Models, f.selModels, len(f.bounds.Makes))

	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render("Enter: Apply  •  Space: Toggle  •  Ctrl+R: Reset  •  Esc: Cancel"))

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Accent)).
		Padding(1, 2).
		Width(52).
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

func toggleSet(set map[string]bool, name string) {
	if set[name] {
		delete(set, name)
		return
	}
	set[name] = true
}

func copySet(set map[string]bool) map[string]bool {
	if len(set) == 0 {
		return nil
	}
	out := make(map[string]bool, len(set))
	for name := range set {
		out[name] = true
	}
	return out
}

func parseFloatOr(s string, fallback float64) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fallback
	}
	return v
}

func parseIntOr(s string, fallback int) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fallback
	}
	return v
}

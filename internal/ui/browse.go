package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julietavg/carfind/internal/form"
	"github.com/julietavg/carfind/internal/inventory"
)

// browseState holds the inventory view: cursor, search, sort, and filters.
// The filter criteria pointer is nil when no filter is active.
type browseState struct {
	selected    int
	focusDetail bool

	searching   bool
	searchInput textinput.Model
	search      string

	sort      inventory.SortKey
	savedOnly bool
	filters   *inventory.Criteria
}

func newBrowseState(sort inventory.SortKey) browseState {
	input := textinput.New()
	input.Placeholder = "make, model, year..."
	input.CharLimit = 64
	input.Width = 28

	return browseState{
		sort:        sort,
		searchInput: input,
	}
}

// handleBrowseKey processes keyboard input for the browse view.
func (m Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.browse.searching {
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.persistPrefs()
		return m, nil

	case key.Matches(msg, m.keys.Logout):
		m.logout("")
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		// Home: drop search and the saved-only restriction.
		m.browse.search = ""
		m.browse.searchInput.SetValue("")
		m.browse.savedOnly = false
		m.browse.selected = 0
		return m, nil

	case key.Matches(msg, m.keys.Search):
		m.browse.searching = true
		m.browse.searchInput.SetValue(m.browse.search)
		m.browse.searchInput.Focus()
		return m, nil

	case key.Matches(msg, m.keys.CycleSort):
		m.browse.sort = m.browse.sort.Next()
		m.persistPrefs()
		return m, nil

	case key.Matches(msg, m.keys.Filters):
		m.openFilters()
		return m, nil

	case key.Matches(msg, m.keys.SavedOnly):
		m.browse.savedOnly = !m.browse.savedOnly
		m.browse.selected = 0
		return m, nil

	case key.Matches(msg, m.keys.ToggleSave):
		if v, ok := m.selectedVehicle(); ok {
			m.favs.Toggle(v.ID)
			m.clampSelection()
		}
		return m, nil

	case key.Matches(msg, m.keys.Tab):
		m.browse.focusDetail = !m.browse.focusDetail
		return m, nil

	case key.Matches(msg, m.keys.Add):
		if m.sess.IsAdmin() {
			m.openForm(form.Fields{})
		}
		return m, nil

	case key.Matches(msg, m.keys.Edit):
		if v, ok := m.selectedVehicle(); ok && m.sess.IsAdmin() {
			m.openForm(form.FieldsFromVehicle(v))
		}
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		if v, ok := m.selectedVehicle(); ok && m.sess.IsAdmin() {
			m.openConfirm(v)
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.browse.selected < len(m.displayed())-1 {
			m.browse.selected++
		}
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.browse.selected > 0 {
			m.browse.selected--
		}
		return m, nil

	case key.Matches(msg, m.keys.Top):
		m.browse.selected = 0
		return m, nil

	case key.Matches(msg, m.keys.Bottom):
		if n := len(m.displayed()); n > 0 {
			m.browse.selected = n - 1
		}
		return m, nil
	}

	return m, nil
}

// handleSearchKey processes keyboard input while the search bar is open.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.browse.search = strings.TrimSpace(m.browse.searchInput.Value())
		m.browse.searching = false
		m.browse.searchInput.Blur()
		m.browse.selected = 0
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		// Cancel keeps the previous query.
		m.browse.searching = false
		m.browse.searchInput.Blur()
		m.browse.searchInput.SetValue(m.browse.search)
		return m, nil
	}

	var cmd tea.Cmd
	m.browse.searchInput, cmd = m.browse.searchInput.Update(msg)
	return m, cmd
}

// renderInventory renders the vehicle table and detail pane side by side,
// with a status line underneath.
func (m Model) renderInventory() string {
	vehicles := m.displayed()

	contentHeight := m.height - 4 // header, command bar, status line
	if contentHeight < 3 {
		contentHeight = 3
	}

	tableWidth := m.width * 3 / 5
	if tableWidth < 40 {
		tableWidth = 40
	}
	detailWidth := m.width - tableWidth - 2
	if detailWidth < 20 {
		detailWidth = 20
	}

	table := m.renderTable(vehicles, tableWidth, contentHeight)
	detail := m.renderDetail(vehicles, detailWidth, contentHeight)

	var b strings.Builder
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, table, detail))
	b.WriteString("\n")
	b.WriteString(m.renderStatusLine(len(vehicles)))
	return b.String()
}

// renderStatusLine renders the line under the table: counts, sort, and the
// active restrictions.
func (m Model) renderStatusLine(shown int) string {
	styles := m.theme.Styles()

	parts := []string{
		fmt.Sprintf("%d of %d cars", shown, m.inv.Len()),
		"Sort: " + m.browse.sort.Label(),
	}
	if m.browse.search != "" {
		parts = append(parts, "Search: "+m.browse.search)
	}
	if m.browse.filters != nil {
		parts = append(parts, "Filters on")
	}
	if m.browse.savedOnly {
		parts = append(parts, "Saved only")
	}
	if !m.inv.Loaded() {
		parts = []string{"Loading inventory..."}
	}

	line := " " + strings.Join(parts, "  •  ")
	if m.browse.searching {
		line = " Search: " + m.browse.searchInput.View() +
			styles.FaintText.Render("   Enter: Apply  Esc: Cancel")
		return line
	}
	return styles.MutedText.Render(line)
}

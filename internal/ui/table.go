package ui

import (
	"strconv"
	"strings"

	"github.com/julietavg/carfind/internal/api"
)

// Column widths for the vehicle table. Make/model/submodel share what is
// left after the fixed columns.
const (
	colSaved = 2
	colYear  = 5
	colPrice = 11
)

// renderTable renders the vehicle list pane with the cursor row highlighted.
func (m Model) renderTable(vehicles []api.Vehicle, width, height int) string {
	styles := m.theme.Styles()
	innerWidth := width - 2 // borders

	box := styles.Border
	if !m.browse.focusDetail {
		box = styles.BorderFocus
	}
	box = box.Width(innerWidth).Height(height - 2)

	if len(vehicles) == 0 {
		empty := "No cars match."
		if !m.inv.Loaded() {
			empty = "Loading inventory..."
		} else if m.browse.savedOnly && m.favs.Count() == 0 {
			empty = "No saved cars yet. Press m to save one."
		}
		return box.Render(styles.MutedText.Render(empty))
	}

	nameWidth := innerWidth - colSaved - colYear - colPrice - 3
	if nameWidth < 12 {
		nameWidth = 12
	}

	header := pad("", colSaved) + " " +
		pad("Year", colYear) + " " +
		pad("Car", nameWidth) + " " +
		padLeft("Price", colPrice)
	lines := []string{styles.AccentText.Render(truncate(header, innerWidth))}

	// Keep the cursor row inside the visible window.
	visible := height - 3 // borders + header
	if visible < 1 {
		visible = 1
	}
	first := 0
	if m.browse.selected >= visible {
		first = m.browse.selected - visible + 1
	}
	last := first + visible
	if last > len(vehicles) {
		last = len(vehicles)
	}

	for i := first; i < last; i++ {
		v := vehicles[i]

		saved := "  "
		if m.favs.IsSaved(v.ID) {
			saved = "★ "
		}
		name := strings.TrimSpace(v.Make + " " + v.Model + " " + v.Submodel)
		row := saved + " " +
			pad(strconv.Itoa(v.Year), colYear) + " " +
			pad(truncate(name, nameWidth), nameWidth) + " " +
			padLeft(formatPrice(v.Price), colPrice)
		row = truncate(row, innerWidth)

		if i == m.browse.selected {
			lines = append(lines, styles.Selection.Width(innerWidth).Render(row))
		} else {
			lines = append(lines, styles.Text.Render(row))
		}
	}

	return box.Render(strings.Join(lines, "\n"))
}

// renderDetail renders the right-hand pane for the vehicle under the cursor.
func (m Model) renderDetail(vehicles []api.Vehicle, width, height int) string {
	styles := m.theme.Styles()
	innerWidth := width - 2

	box := styles.Border
	if m.browse.focusDetail {
		box = styles.BorderFocus
	}
	box = box.Width(innerWidth).Height(height - 2)

	if m.browse.selected < 0 || m.browse.selected >= len(vehicles) {
		return box.Render(styles.MutedText.Render("Select a car"))
	}
	v := vehicles[m.browse.selected]

	label := func(s string) string { return styles.MutedText.Render(pad(s, 14)) }
	value := func(s string) string { return styles.Text.Render(truncate(s, innerWidth-14)) }

	title := strings.TrimSpace(v.Make + " " + v.Model)
	lines := []string{
		styles.AccentText.Render(truncate(title, innerWidth)),
		styles.MutedText.Render(truncate(v.Submodel, innerWidth)),
		"",
		label("Price") + styles.Success.Render(formatPrice(v.Price)),
		label("Year") + value(strconv.Itoa(v.Year)),
		label("Mileage") + value(formatMileage(v.Mileage)),
		label("Color") + value(v.Color),
		label("Transmission") + value(v.Transmission),
		label("VIN") + value(v.VIN),
		label("Image") + value(v.Image),
	}

	if m.favs.IsSaved(v.ID) {
		lines = append(lines, "", styles.Warning.Render("★ Saved"))
	}

	return box.Render(strings.Join(lines, "\n"))
}

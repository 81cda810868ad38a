package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julietavg/carfind/internal/form"
)

// formField describes one row of the car form, in display order. The
// transmission row is a selector rather than a text input.
type formField struct {
	name        string
	label       string
	placeholder string
	charLimit   int
	selector    bool
}

var formFields = []formField{
	{name: form.FieldVIN, label: "VIN", placeholder: "17 characters, no I, O or Q", charLimit: 17},
	{name: form.FieldYear, label: "Year", placeholder: "1930-2026", charLimit: 4},
	{name: form.FieldMake, label: "Make", placeholder: "e.g. Toyota", charLimit: 40},
	{name: form.FieldModel, label: "Model", placeholder: "e.g. Corolla", charLimit: 40},
	{name: form.FieldSubmodel, label: "Submodel", placeholder: "e.g. XSE", charLimit: 40},
	{name: form.FieldTransmission, label: "Transmission", selector: true},
	{name: form.FieldMileage, label: "Mileage", placeholder: "digits only", charLimit: 9},
	{name: form.FieldColor, label: "Color", placeholder: "e.g. Silver", charLimit: 30},
	{name: form.FieldPrice, label: "Price", placeholder: "5000-350000", charLimit: 12},
	{name: form.FieldImage, label: "Image URL", placeholder: "https://...", charLimit: 200},
}

// formState holds the add/edit car modal. Text inputs are indexed by display
// position, skipping the transmission selector.
type formState struct {
	inputs   []textinput.Model
	focus    int
	transIdx int

	id      int64
	editing bool

	errs   map[string]string
	banner string
	busy   bool
}

// inputIndex maps a display position to its text input slot. The selector
// row has no slot.
func inputIndex(focus int) int {
	if focus > 5 {
		return focus - 1
	}
	return focus
}

// openForm opens the car form pre-filled from f. A zero ID means add.
func (m *Model) openForm(f form.Fields) {
	values := map[string]string{
		form.FieldVIN:      f.VIN,
		form.FieldYear:     f.Year,
		form.FieldMake:     f.Make,
		form.FieldModel:    f.Model,
		form.FieldSubmodel: f.Submodel,
		form.FieldMileage:  f.Mileage,
		form.FieldColor:    f.Color,
		form.FieldPrice:    f.Price,
		form.FieldImage:    f.Image,
	}
	if f.ID == 0 {
		values = map[string]string{}
	}

	var inputs []textinput.Model
	for _, field := range formFields {
		if field.selector {
			continue
		}
		input := textinput.New()
		input.Placeholder = field.placeholder
		input.CharLimit = field.charLimit
		input.Width = 32
		input.SetValue(values[field.name])
		inputs = append(inputs, input)
	}
	inputs[0].Focus()

	transIdx := 0
	for i, t := range form.Transmissions {
		if t == f.Transmission {
			transIdx = i
		}
	}

	m.form = formState{
		inputs:   inputs,
		transIdx: transIdx,
		id:       f.ID,
		editing:  f.ID != 0,
		errs:     map[string]string{},
	}
	m.showForm = true
}

// collect gathers the form into validation fields.
func (f formState) collect() form.Fields {
	return form.Fields{
		ID:           f.id,
		VIN:          f.inputs[0].Value(),
		Year:         f.inputs[1].Value(),
		Make:         f.inputs[2].Value(),
		Model:        f.inputs[3].Value(),
		Submodel:     f.inputs[4].Value(),
		Transmission: form.Transmissions[f.transIdx],
		Mileage:      f.inputs[5].Value(),
		Color:        f.inputs[6].Value(),
		Price:        f.inputs[7].Value(),
		Image:        f.inputs[8].Value(),
	}
}

// applyFeedback merges a failed save into the form: field errors under their
// inputs, everything else as a banner.
func (f *formState) applyFeedback(err error) {
	fb := form.MapServerError(err)
	for field, msg := range fb.FieldErrors {
		f.errs[field] = msg
	}
	f.banner = fb.Banner
}

// handleFormKey processes keyboard input for the car form modal.
func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.form.busy {
		// Submission in flight; only the global quit is live.
		return m, nil
	}

	onSelector := formFields[m.form.focus].selector

	switch {
	case key.Matches(msg, m.keys.Escape):
		m.showForm = false
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		return m.submitForm()

	case key.Matches(msg, m.keys.Tab), msg.String() == "down":
		m.moveFormFocus(1)
		return m, nil

	case msg.String() == "shift+tab", msg.String() == "up":
		m.moveFormFocus(-1)
		return m, nil

	case onSelector && (msg.String() == "left" || msg.String() == "right" || msg.String() == " "):
		m.form.transIdx = (m.form.transIdx + 1) % len(form.Transmissions)
		delete(m.form.errs, form.FieldTransmission)
		m.form.banner = ""
		return m, nil
	}

	if onSelector {
		return m, nil
	}

	// Let the focused input handle the key, then sanitize in place so the
	// user never sees a forbidden character land.
	idx := inputIndex(m.form.focus)
	var cmd tea.Cmd
	m.form.inputs[idx], cmd = m.form.inputs[idx].Update(msg)

	name := formFields[m.form.focus].name
	switch name {
	case form.FieldVIN:
		m.form.inputs[idx].SetValue(form.SanitizeVIN(m.form.inputs[idx].Value()))
	case form.FieldYear, form.FieldMileage:
		m.form.inputs[idx].SetValue(form.SanitizeMileage(m.form.inputs[idx].Value()))
	case form.FieldPrice:
		m.form.inputs[idx].SetValue(form.SanitizePrice(m.form.inputs[idx].Value()))
	}

	// Editing a field retires its error, and any stale banner.
	delete(m.form.errs, name)
	m.form.banner = ""

	return m, cmd
}

// moveFormFocus shifts focus by delta rows, wrapping.
func (m *Model) moveFormFocus(delta int) {
	if !formFields[m.form.focus].selector {
		m.form.inputs[inputIndex(m.form.focus)].Blur()
	}
	n := len(formFields)
	m.form.focus = (m.form.focus + delta + n) % n
	if !formFields[m.form.focus].selector {
		m.form.inputs[inputIndex(m.form.focus)].Focus()
	}
}

// submitForm validates and, if clean, starts the save call.
func (m Model) submitForm() (tea.Model, tea.Cmd) {
	fields := m.form.collect()
	if errs := form.Validate(fields); len(errs) > 0 {
		m.form.errs = errs
		return m, nil
	}

	m.form.errs = map[string]string{}
	m.form.banner = ""
	m.form.busy = true
	m.mutSeq++
	return m, m.saveCmd(fields.Vehicle())
}

// renderForm renders the add/edit car modal.
func (m Model) renderForm() string {
	styles := m.theme.Styles()

	var b strings.Builder

	title := "Add Car"
	if m.form.editing {
		title = "Edit Car"
	}
	b.WriteString(styles.Text.Bold(true).Render(title))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 50)))
	b.WriteString("\n")

	if m.form.banner != "" {
		b.WriteString(styles.Danger.Render(m.form.banner))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for i, field := range formFields {
		label := pad(field.label+":", 14)
		if i == m.form.focus {
			label = styles.AccentText.Render(label)
		} else {
			label = styles.MutedText.Render(label)
		}
		b.WriteString(label)

		if field.selector {
			for j, t := range form.Transmissions {
				if j > 0 {
					b.WriteString(styles.FaintText.Render("  /  "))
				}
				if j == m.form.transIdx {
					b.WriteString(styles.Selection.Render(" " + t + " "))
				} else {
					b.WriteString(styles.MutedText.Render(t))
				}
			}
		} else {
			b.WriteString(m.form.inputs[inputIndex(i)].View())
		}
		b.WriteString("\n")

		if msg, ok := m.form.errs[field.name]; ok {
			b.WriteString(pad("", 14))
			b.WriteString(styles.Danger.Render(msg))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	if m.form.busy {
		b.WriteString(styles.MutedText.Render("Saving..."))
	} else {
		b.WriteString(styles.FaintText.Render("Enter: Save  •  Tab: Next field  •  Esc: Cancel"))
	}

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Accent)).
		Padding(1, 2).
		Width(58).
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

package tui

import (
	"strings"

	"pacecalc/internal/analysis"
	"pacecalc/internal/input"
	"pacecalc/internal/report"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type formField int

const (
	fieldUnit formField = iota
	fieldMinutes
	fieldSeconds
	fieldPreset
	fieldCustom
	fieldCount
)

// FieldError reports which form field held a bad value
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return "Invalid " + e.Field + "."
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// FormModel is the pace and distance entry screen
type FormModel struct {
	units   Units
	presets []string
	preset  int

	minutes textinput.Model
	seconds textinput.Model
	custom  textinput.Model

	focus formField
	err   error
}

// NewFormModel creates a form starting at the given unit and preset.
// Unknown presets start at the first entry.
func NewFormModel(unit analysis.Unit, preset string) FormModel {
	m := FormModel{
		units:   NewUnits(unit),
		presets: input.PresetNames(),
		minutes: newNumberInput("5"),
		seconds: newNumberInput("0"),
		custom:  newNumberInput("km"),
	}

	for i, name := range m.presets {
		if strings.EqualFold(name, preset) {
			m.preset = i
			break
		}
	}

	m.focus = fieldMinutes
	m.minutes.Focus()
	return m
}

func newNumberInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	ti.CharLimit = 10
	ti.Width = 10
	return ti
}

// Init initializes the form
func (m FormModel) Init() tea.Cmd {
	return textinput.Blink
}

// Editing reports whether a text field has focus
func (m FormModel) Editing() bool {
	return m.focus == fieldMinutes || m.focus == fieldSeconds || m.focus == fieldCustom
}

// Preset returns the selected distance choice
func (m FormModel) Preset() string {
	return m.presets[m.preset]
}

// SetError shows err under the form; nil clears it
func (m FormModel) SetError(err error) FormModel {
	m.err = err
	return m
}

// Update handles messages
func (m FormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "tab", "down":
			return m.setFocus(m.next(1))
		case "shift+tab", "up":
			return m.setFocus(m.next(-1))
		case "left", "right":
			step := 1
			if msg.String() == "left" {
				step = -1
			}
			switch m.focus {
			case fieldUnit:
				m.units = m.units.Toggle()
				return m, nil
			case fieldPreset:
				m.preset = (m.preset + step + len(m.presets)) % len(m.presets)
				return m, nil
			}
		case "u":
			if !m.Editing() {
				m.units = m.units.Toggle()
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	switch m.focus {
	case fieldMinutes:
		m.minutes, cmd = m.minutes.Update(msg)
	case fieldSeconds:
		m.seconds, cmd = m.seconds.Update(msg)
	case fieldCustom:
		m.custom, cmd = m.custom.Update(msg)
	}
	return m, cmd
}

// next returns the field step positions away, skipping the custom
// distance unless Custom is selected
func (m FormModel) next(step int) formField {
	f := m.focus
	for {
		f = (f + formField(step) + fieldCount) % fieldCount
		if f != fieldCustom || m.customSelected() {
			return f
		}
	}
}

func (m FormModel) customSelected() bool {
	return m.Preset() == input.CustomPreset
}

func (m FormModel) setFocus(f formField) (FormModel, tea.Cmd) {
	m.focus = f
	m.minutes.Blur()
	m.seconds.Blur()
	m.custom.Blur()

	switch f {
	case fieldMinutes:
		return m, m.minutes.Focus()
	case fieldSeconds:
		return m, m.seconds.Focus()
	case fieldCustom:
		return m, m.custom.Focus()
	}
	return m, nil
}

// Submit validates the fields and builds a calculation request
func (m FormModel) Submit() (report.Input, error) {
	minutes, err := input.ParseNonNegative(m.minutes.Value())
	if err != nil {
		return report.Input{}, &FieldError{Field: "pace minutes", Err: err}
	}
	seconds, err := input.ParseNonNegative(m.seconds.Value())
	if err != nil {
		return report.Input{}, &FieldError{Field: "pace seconds", Err: err}
	}

	var km float64
	if m.customSelected() {
		km, err = input.ParseNonNegative(m.custom.Value())
		if err != nil {
			return report.Input{}, &FieldError{Field: "custom distance", Err: err}
		}
	} else {
		km, err = input.ResolveDistance(m.Preset(), "")
		if err != nil {
			return report.Input{}, err
		}
	}

	return report.Input{
		Pace:       analysis.NewPace(minutes, seconds, m.units.Unit()),
		DistanceKm: km,
	}, nil
}

// View renders the form
func (m FormModel) View() string {
	var lines []string

	lines = append(lines, cardTitleStyle.Render("Pace & Distance"))

	lines = append(lines, m.renderRow(fieldUnit, "Pace unit:", m.renderSelector(string(m.units.Unit()))))
	lines = append(lines, m.renderRow(fieldMinutes, "Pace minutes:", m.minutes.View()))
	lines = append(lines, m.renderRow(fieldSeconds, "Pace seconds:", m.seconds.View()))
	lines = append(lines, m.renderRow(fieldPreset, "Distance preset:", m.renderSelector(m.Preset())))

	custom := m.custom.View()
	if !m.customSelected() {
		custom = helpDescStyle.Render("(select Custom)")
	}
	lines = append(lines, m.renderRow(fieldCustom, "Custom distance (km):", custom))

	lines = append(lines, "")
	lines = append(lines, strings.Join([]string{
		RenderKeyHelp("enter", "calculate"),
		RenderKeyHelp("tab", "next field"),
		RenderKeyHelp("←/→", "change"),
		RenderKeyHelp("ctrl+s", "save"),
	}, "  "))

	if m.err != nil {
		lines = append(lines, "", errorStyle.Render(m.err.Error()))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m FormModel) renderRow(f formField, label, value string) string {
	marker := "  "
	style := fieldLabelStyle
	if m.focus == f {
		marker = navActiveStyle.Render("› ")
		style = fieldFocusedLabelStyle
	}
	return marker + style.Render(label) + " " + value
}

func (m FormModel) renderSelector(value string) string {
	return "‹ " + selectorStyle.Render(value) + " ›"
}

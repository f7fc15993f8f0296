package tui

import (
	"fmt"
	"strings"

	"pacecalc/internal/analysis"
	"pacecalc/internal/report"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

// ResultsModel shows the last report in a scrollable viewport
type ResultsModel struct {
	result   *report.Result
	units    Units
	viewport viewport.Model
	width    int
	height   int
	ready    bool
}

// NewResultsModel creates an empty results screen
func NewResultsModel(width, height int) ResultsModel {
	m := ResultsModel{
		units:  NewUnits(analysis.UnitKm),
		width:  width,
		height: height,
	}

	if width > 0 && height > 0 {
		m.viewport = viewport.New(width, height-6)
		m.ready = true
	}

	return m
}

// SetResult replaces the displayed report. Chart paces follow the
// unit the pace was entered in.
func (m ResultsModel) SetResult(r report.Result) ResultsModel {
	m.result = &r
	m.units = NewUnits(r.Input.Pace.Unit)
	if m.ready {
		m.viewport.SetContent(m.renderContent())
		m.viewport.GotoTop()
	}
	return m
}

// Init initializes the results screen
func (m ResultsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m ResultsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-6)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 6
		}
		if m.result != nil {
			m.viewport.SetContent(m.renderContent())
		}
	}

	// Handle viewport scrolling
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the results screen
func (m ResultsModel) View() string {
	if m.result == nil {
		return helpDescStyle.Render("\n  Nothing calculated yet. Press esc to fill in the form.")
	}

	if !m.ready {
		return m.renderContent()
	}

	footer := statusStyle.Render("  j/k or arrows: scroll  esc: back to form  ctrl+s: save")

	return lipgloss.JoinVertical(lipgloss.Left, m.viewport.View(), footer)
}

func (m ResultsModel) renderContent() string {
	if m.result == nil {
		return ""
	}

	var sections []string
	sections = append(sections, m.renderReport())

	if chart := m.renderPredictionChart(); chart != "" {
		sections = append(sections, "", chart)
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderReport is the plain report with the title and zone labels styled
func (m ResultsModel) renderReport() string {
	lines := m.result.Lines()
	zonesStart := len(lines) - len(m.result.Zones)

	styled := make([]string, len(lines))
	for i, line := range lines {
		switch {
		case i == 0:
			styled[i] = cardTitleStyle.UnsetMarginBottom().Render(line)
		case i >= zonesStart:
			label := m.result.Zones[i-zonesStart].Zone.Label
			tag := "[" + label + "]"
			styled[i] = strings.Replace(line, tag, zoneStyle(label).Render(tag), 1)
		default:
			styled[i] = line
		}
	}

	return strings.Join(styled, "\n")
}

// renderPredictionChart plots the pace each Riegel prediction implies
func (m ResultsModel) renderPredictionChart() string {
	var paces []float64
	for _, p := range m.result.Predictions {
		if p.Seconds == nil || p.Km <= 0 {
			return ""
		}
		paces = append(paces, *p.Seconds/p.Km)
	}
	if len(paces) < 2 {
		return ""
	}

	var names []string
	for _, p := range m.result.Predictions {
		names = append(names, p.Name)
	}

	title := cardTitleStyle.Render(fmt.Sprintf("Predicted pace (%s)", m.units.PaceLabel()))
	chart := asciigraph.Plot(m.units.ConvertPaceData(paces),
		asciigraph.Height(8),
		asciigraph.Width(60),
		asciigraph.Precision(2),
		asciigraph.Caption(strings.Join(names, " → ")),
	)

	var legend []string
	for i, p := range m.result.Predictions {
		legend = append(legend, fmt.Sprintf("  %-15s %s", p.Name, m.units.FormatPace(paces[i])))
	}

	return lipgloss.JoinVertical(lipgloss.Left, title, chart, "", strings.Join(legend, "\n"))
}

package tui

import (
	"fmt"
	"strings"

	"pacecalc/internal/analysis"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HelpModel is the help screen model
type HelpModel struct {
	exponent float64
}

// NewHelpModel creates a help model describing predictions made with
// exponent; a non-positive exponent means the default
func NewHelpModel(exponent float64) HelpModel {
	if exponent <= 0 {
		exponent = analysis.DefaultRiegelExponent
	}
	return HelpModel{exponent: exponent}
}

// Init initializes the help screen
func (m HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, nil
}

// View renders the help screen
func (m HelpModel) View() string {
	var sections []string

	title := cardTitleStyle.Render("Keyboard Shortcuts")
	sections = append(sections, title)

	// Navigation section
	navSection := m.renderSection("Navigation", []keyHelp{
		{"1", "Form"},
		{"2", "Results"},
		{"?", "Help (this screen)"},
		{"q", "Quit (outside text fields)"},
		{"ctrl+c", "Quit"},
		{"esc", "Back / close help"},
	})
	sections = append(sections, navSection)

	// Form keys
	formSection := m.renderSection("Form", []keyHelp{
		{"tab / down", "Next field"},
		{"shift+tab / up", "Previous field"},
		{"left / right", "Change unit or distance preset"},
		{"u", "Toggle km / mile"},
		{"enter", "Calculate"},
	})
	sections = append(sections, formSection)

	// Results keys
	resultsSection := m.renderSection("Results", []keyHelp{
		{"j / k", "Scroll"},
		{"ctrl+s", "Save results to file"},
	})
	sections = append(sections, resultsSection)

	sections = append(sections, m.renderMetricsHelp())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

type keyHelp struct {
	key  string
	desc string
}

func (m HelpModel) renderSection(title string, keys []keyHelp) string {
	var lines []string

	lines = append(lines, "")
	lines = append(lines, lipgloss.NewStyle().Bold(true).Foreground(secondaryColor).Render(title))

	for _, k := range keys {
		lines = append(lines, "  "+RenderKeyHelp(k.key, k.desc))
	}

	return strings.Join(lines, "\n")
}

func (m HelpModel) renderMetricsHelp() string {
	var lines []string

	lines = append(lines, "")
	lines = append(lines, lipgloss.NewStyle().Bold(true).Foreground(secondaryColor).Render("Metrics Explained"))
	lines = append(lines, "")

	metrics := []struct {
		name string
		desc string
	}{
		{"Riegel prediction", fmt.Sprintf("T2 = T1 x (D2/D1)^%.2f from the entered run.", m.exponent)},
		{"Estimated VO2max", "Cooper-style: distance covered in 12 minutes at this pace."},
		{"VDOT-like index", "Rough fitness score, 90 minus 10 per minute of pace per km. Floor 20."},
		{"Pace zones", "Bands around the entered pace, always shown per km."},
	}

	mutedStyle := lipgloss.NewStyle().Foreground(mutedColor)

	for _, metric := range metrics {
		lines = append(lines, "  "+helpKeyStyle.Render(metric.name))
		lines = append(lines, "  "+mutedStyle.Render(metric.desc))
		lines = append(lines, "")
	}

	var zones []string
	for _, z := range analysis.Zones() {
		zones = append(zones, zoneStyle(z.Label).Render(z.Name))
	}
	lines = append(lines, "  "+strings.Join(zones, "  "))

	return strings.Join(lines, "\n")
}

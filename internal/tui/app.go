package tui

import (
	"fmt"
	"io"
	"log"

	"pacecalc/internal/analysis"
	"pacecalc/internal/report"
	"pacecalc/internal/resultlog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

// Screen identifiers
type Screen int

const (
	ScreenForm Screen = iota
	ScreenResults
	ScreenHelp
)

// Options holds the form's starting values and calculation settings
type Options struct {
	Unit           analysis.Unit
	Preset         string
	RiegelExponent float64
}

// App is the root Bubble Tea model
type App struct {
	screen     Screen
	prevScreen Screen

	// Screen models
	form    FormModel
	results ResultsModel
	help    HelpModel

	// Services
	writer *resultlog.Writer
	opts   report.Options
	logger *log.Logger

	// Last calculated report, nil until the first calculation
	last *report.Result

	// Window dimensions
	width  int
	height int

	// Status message
	status      string
	statusStyle lipgloss.Style
}

// NewApp creates a new App with all dependencies
func NewApp(opts Options, writer *resultlog.Writer, logger *log.Logger) *App {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	return &App{
		screen:  ScreenForm,
		form:    NewFormModel(opts.Unit, opts.Preset),
		results: NewResultsModel(0, 0),
		help:    NewHelpModel(opts.RiegelExponent),
		writer:  writer,
		opts: report.Options{
			RiegelExponent: opts.RiegelExponent,
			Labels:         report.FormLabels,
		},
		logger:      logger,
		statusStyle: statusStyle,
	}
}

// Init initializes the app
func (a *App) Init() tea.Cmd {
	return a.form.Init()
}

// ResultsSavedMsg is sent when a save to the results file finishes
type ResultsSavedMsg struct {
	Path    string
	Size    int64
	Entries int
	Err     error
}

// Update handles messages
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return a, tea.Quit
		case "ctrl+s":
			return a, a.save()
		}

		// Plain keys are text while a form field is being edited
		if a.screen != ScreenForm || !a.form.Editing() {
			switch msg.String() {
			case "q":
				return a, tea.Quit
			case "1":
				a.screen = ScreenForm
				return a, nil
			case "2":
				a.screen = ScreenResults
				return a, nil
			case "?":
				if a.screen == ScreenHelp {
					a.screen = a.prevScreen
					return a, nil
				}
				a.prevScreen = a.screen
				a.screen = ScreenHelp
				return a, nil
			}
		}

		switch msg.String() {
		case "enter":
			if a.screen == ScreenForm {
				a.calculate()
				return a, nil
			}
		case "esc":
			switch a.screen {
			case ScreenHelp:
				a.screen = a.prevScreen
				return a, nil
			case ScreenResults:
				a.screen = ScreenForm
				return a, nil
			}
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

		// The results viewport is sized even while hidden
		m, cmd := a.results.Update(msg)
		a.results = m.(ResultsModel)
		return a, cmd

	case ResultsSavedMsg:
		if msg.Err != nil {
			a.logger.Printf("tui: saving results: %v", msg.Err)
			a.setStatus(fmt.Sprintf("Save failed: %v", msg.Err), errorStyle)
			return a, nil
		}
		a.logger.Printf("tui: saved results to %s", msg.Path)
		a.setStatus(fmt.Sprintf("Results saved to %s (%s, %s entry)",
			msg.Path, humanize.Bytes(uint64(msg.Size)), humanize.Ordinal(msg.Entries)), successStyle)
		return a, nil
	}

	// Delegate to current screen
	var cmd tea.Cmd
	switch a.screen {
	case ScreenForm:
		var m tea.Model
		m, cmd = a.form.Update(msg)
		a.form = m.(FormModel)
	case ScreenResults:
		var m tea.Model
		m, cmd = a.results.Update(msg)
		a.results = m.(ResultsModel)
	case ScreenHelp:
		var m tea.Model
		m, cmd = a.help.Update(msg)
		a.help = m.(HelpModel)
	}

	return a, cmd
}

// calculate runs the form through the report and shows the results
func (a *App) calculate() {
	in, err := a.form.Submit()
	if err != nil {
		a.form = a.form.SetError(err)
		return
	}
	a.form = a.form.SetError(nil)

	r := report.Calculate(in, a.opts)
	a.last = &r
	a.results = a.results.SetResult(r)
	a.screen = ScreenResults

	a.logger.Printf("tui: calculated %s", r.Summary())
	a.setStatus(r.Summary(), statusStyle)
}

// save writes the last report in the background
func (a *App) save() tea.Cmd {
	if a.last == nil {
		a.setStatus("Please calculate first.", warningStyle)
		return nil
	}

	text := a.last.Render()
	writer := a.writer
	return func() tea.Msg {
		if err := writer.Save(text); err != nil {
			return ResultsSavedMsg{Path: writer.Path, Err: err}
		}
		size, err := writer.Size()
		if err != nil {
			return ResultsSavedMsg{Path: writer.Path, Err: err}
		}
		entries, err := writer.Entries()
		if err != nil {
			return ResultsSavedMsg{Path: writer.Path, Err: err}
		}
		return ResultsSavedMsg{Path: writer.Path, Size: size, Entries: entries}
	}
}

func (a *App) setStatus(status string, style lipgloss.Style) {
	a.status = status
	a.statusStyle = style
}

// View renders the app
func (a *App) View() string {
	header := a.renderHeader()
	nav := a.renderNav()

	var content string
	switch a.screen {
	case ScreenForm:
		content = a.form.View()
	case ScreenResults:
		content = a.results.View()
	case ScreenHelp:
		content = a.help.View()
	}

	footer := a.renderFooter()

	return lipgloss.JoinVertical(lipgloss.Left, header, nav, content, footer)
}

func (a *App) renderHeader() string {
	return headerStyle.Render("Running Pace & Race Performance Calculator")
}

func (a *App) renderNav() string {
	items := []struct {
		key    string
		label  string
		screen Screen
	}{
		{"1", "Form", ScreenForm},
		{"2", "Results", ScreenResults},
		{"?", "Help", ScreenHelp},
	}

	var nav string
	for i, item := range items {
		if i > 0 {
			nav += "  "
		}

		label := "[" + item.key + "] " + item.label
		if a.screen == item.screen {
			nav += navActiveStyle.Render(label)
		} else {
			nav += navInactiveStyle.Render(label)
		}
	}

	nav += "  " + navInactiveStyle.Render("[q] Quit")

	return navStyle.Render(nav)
}

func (a *App) renderFooter() string {
	if a.status != "" {
		return a.statusStyle.MarginTop(1).Render(a.status)
	}
	return ""
}

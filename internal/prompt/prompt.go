// Package prompt implements the question-and-answer front end: it asks for a
// pace unit, pace and distance on a line-oriented terminal, prints the report
// and offers to save it.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"pacecalc/internal/analysis"
	"pacecalc/internal/input"
	"pacecalc/internal/report"
	"pacecalc/internal/resultlog"
)

// ErrInputClosed is returned when input ends before the sequence completes
var ErrInputClosed = errors.New("input closed")

// menuChoice is one numbered entry of the distance menu.
// Km is zero for the custom entry.
type menuChoice struct {
	key  string
	name string
	km   float64
}

// Session runs one prompt sequence
type Session struct {
	scanner *bufio.Scanner
	out     io.Writer
	results *resultlog.Writer
	opts    report.Options
	logger  *log.Logger
}

// NewSession creates a session reading answers from in and writing prompts to
// out. A nil logger discards diagnostics.
func NewSession(in io.Reader, out io.Writer, results *resultlog.Writer, exponent float64, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Session{
		scanner: bufio.NewScanner(in),
		out:     out,
		results: results,
		opts: report.Options{
			RiegelExponent: exponent,
			Labels:         report.PromptLabels,
		},
		logger: logger,
	}
}

// Run asks every question, prints the report and saves it on request
func (s *Session) Run() error {
	fmt.Fprintln(s.out, "Running Pace & Race Performance Calculator (CLI)")

	unit, err := s.chooseUnit()
	if err != nil {
		return err
	}

	minutes, err := s.askNonNegative(fmt.Sprintf("Enter pace minutes per %s: ", unit))
	if err != nil {
		return err
	}
	seconds, err := s.askNonNegative(fmt.Sprintf("Enter pace seconds per %s: ", unit))
	if err != nil {
		return err
	}

	distanceKm, err := s.chooseDistanceKm()
	if err != nil {
		return err
	}

	result := report.Calculate(report.Input{
		Pace:       analysis.NewPace(minutes, seconds, unit),
		DistanceKm: distanceKm,
	}, s.opts)
	s.logger.Printf("prompt: calculated %s", result.Summary())

	output := result.Render()
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, output)

	answer, err := s.ask("\nSave results to file? (y/n): ")
	if err != nil {
		return err
	}
	if strings.ToLower(answer) != "y" {
		return nil
	}

	if err := s.results.Save(output); err != nil {
		return fmt.Errorf("saving results: %w", err)
	}
	s.logger.Printf("prompt: saved results to %s", s.results.Path)
	fmt.Fprintf(s.out, "Results saved to %s\n", s.results.Path)

	return nil
}

func (s *Session) chooseUnit() (analysis.Unit, error) {
	fmt.Fprintln(s.out, "\nSelect pace unit:")
	fmt.Fprintln(s.out, "1. Minutes per km")
	fmt.Fprintln(s.out, "2. Minutes per mile")

	for {
		choice, err := s.ask("Choose (1-2): ")
		if err != nil {
			return "", err
		}
		switch choice {
		case "1":
			return analysis.UnitKm, nil
		case "2":
			return analysis.UnitMile, nil
		}
		fmt.Fprintln(s.out, "Invalid choice.")
	}
}

func (s *Session) chooseDistanceKm() (float64, error) {
	choices := distanceMenu()

	fmt.Fprintln(s.out, "\nChoose distance:")
	for _, c := range choices {
		if c.km == 0 {
			fmt.Fprintf(s.out, "%s. %s distance (enter manually)\n", c.key, c.name)
		} else {
			fmt.Fprintf(s.out, "%s. %s (%.3f km)\n", c.key, c.name, c.km)
		}
	}

	for {
		answer, err := s.ask("Select option: ")
		if err != nil {
			return 0, err
		}
		for _, c := range choices {
			if c.key != answer {
				continue
			}
			if c.km > 0 {
				return c.km, nil
			}
			return s.askNonNegative("Enter custom distance in km: ")
		}
		fmt.Fprintln(s.out, "Invalid choice.")
	}
}

// distanceMenu lists Custom first, then the presets
func distanceMenu() []menuChoice {
	choices := []menuChoice{{key: "1", name: input.CustomPreset}}
	for i, p := range analysis.Presets() {
		choices = append(choices, menuChoice{
			key:  fmt.Sprint(i + 2),
			name: p.Name,
			km:   p.Km,
		})
	}
	return choices
}

// askNonNegative repeats the question until the answer is a non-negative number
func (s *Session) askNonNegative(question string) (float64, error) {
	for {
		answer, err := s.ask(question)
		if err != nil {
			return 0, err
		}

		v, err := input.ParseNonNegative(answer)
		switch {
		case errors.Is(err, input.ErrNegative):
			fmt.Fprintln(s.out, "Value must be non-negative.")
		case errors.Is(err, input.ErrTooLarge):
			fmt.Fprintf(s.out, "Value must be at most %.0f.\n", input.MaxValue)
		case err != nil:
			fmt.Fprintln(s.out, "Invalid number, try again.")
		default:
			return v, nil
		}
	}
}

// ask prints question without a newline and returns the trimmed answer
func (s *Session) ask(question string) (string, error) {
	fmt.Fprint(s.out, question)
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", fmt.Errorf("reading input: %w", err)
		}
		return "", ErrInputClosed
	}
	return strings.TrimSpace(s.scanner.Text()), nil
}

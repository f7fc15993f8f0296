// Package report runs a pace and distance through the analysis functions and
// renders the fixed-format results text shared by every front end.
package report

import (
	"fmt"
	"strings"

	"pacecalc/internal/analysis"
)

// Unavailable is printed in place of a metric that could not be computed
const Unavailable = "n/a"

// Labels holds the wording of the two estimate lines, which differs between
// the form and prompt front ends
type Labels struct {
	VO2max string
	VDOT   string
}

var (
	// FormLabels is the wording used by the terminal form
	FormLabels = Labels{
		VO2max: "Estimated VO2max",
		VDOT:   "VDOT-like index",
	}

	// PromptLabels is the wording used by the prompt sequence
	PromptLabels = Labels{
		VO2max: "Estimated VO2max (Cooper-style)",
		VDOT:   "Simple VDOT-style index",
	}
)

// Options tunes a calculation
type Options struct {
	RiegelExponent float64 // <= 0 uses analysis.DefaultRiegelExponent
	Labels         Labels
}

// DefaultOptions returns the default exponent with form labels
func DefaultOptions() Options {
	return Options{
		RiegelExponent: analysis.DefaultRiegelExponent,
		Labels:         FormLabels,
	}
}

// Input is a validated calculation request
type Input struct {
	Pace       analysis.Pace
	DistanceKm float64
}

// Prediction is a Riegel race time for one target distance.
// Seconds is nil when no prediction can be made from the reference run.
type Prediction struct {
	Name    string
	Km      float64
	Seconds *float64
}

// Result holds every metric derived from one Input.
// VO2max and VDOT are nil when their inputs were degenerate.
type Result struct {
	Input  Input
	Labels Labels

	EffectiveDistance float64 // distance in the pace's unit
	PaceSecondsPerKm  float64
	ElapsedSeconds    float64

	SpeedKmh float64
	SpeedMph float64

	VO2max *float64
	VDOT   *float64

	Predictions []Prediction
	Zones       []analysis.ZonePace
}

// Calculate derives all metrics for in
func Calculate(in Input, opts Options) Result {
	exponent := opts.RiegelExponent
	if exponent <= 0 {
		exponent = analysis.DefaultRiegelExponent
	}

	r := Result{
		Input:             in,
		Labels:            opts.Labels,
		EffectiveDistance: in.Pace.DistanceInUnit(in.DistanceKm),
		PaceSecondsPerKm:  in.Pace.SecondsPerKm(),
	}

	r.ElapsedSeconds = analysis.TimeForDistance(r.EffectiveDistance, in.Pace.TotalSeconds())
	r.SpeedKmh, r.SpeedMph = analysis.AverageSpeed(in.DistanceKm, r.ElapsedSeconds)

	if r.ElapsedSeconds > 0 {
		vo2 := analysis.CooperVO2max(in.DistanceKm*analysis.MetersPerKm, r.ElapsedSeconds)
		r.VO2max = &vo2
	}

	if r.PaceSecondsPerKm > 0 {
		vdot := analysis.SimpleVDOTFromPace(r.PaceSecondsPerKm)
		r.VDOT = &vdot
	}

	for _, target := range analysis.PredictionTargets() {
		p := Prediction{Name: target.Name, Km: target.Km}
		if in.DistanceKm > 0 && r.ElapsedSeconds > 0 {
			seconds := analysis.RiegelPredictWithExponent(r.ElapsedSeconds, in.DistanceKm, target.Km, exponent)
			p.Seconds = &seconds
		}
		r.Predictions = append(r.Predictions, p)
	}

	// Zones are reported per km whatever unit the pace was entered in
	r.Zones = analysis.ZonePaces(r.PaceSecondsPerKm)

	return r
}

// Lines returns the report, one display line per element
func (r Result) Lines() []string {
	pace := r.Input.Pace
	var lines []string

	lines = append(lines, "=== Results ===")
	lines = append(lines, fmt.Sprintf("Pace: %d:%02d per %s", int(pace.Minutes), int(pace.Seconds), pace.Unit))
	lines = append(lines, fmt.Sprintf("Distance: %.3f km (%.3f miles)", r.Input.DistanceKm, analysis.KmToMiles(r.Input.DistanceKm)))
	lines = append(lines, "Predicted Time: "+analysis.FormatHMS(r.ElapsedSeconds))
	lines = append(lines, fmt.Sprintf("Average speed: %.2f km/h (%.2f mph)", r.SpeedKmh, r.SpeedMph))
	lines = append(lines, fmt.Sprintf("%s: %s", r.Labels.VO2max, formatOptional(r.VO2max)))
	lines = append(lines, fmt.Sprintf("%s: %s", r.Labels.VDOT, formatOptional(r.VDOT)))
	lines = append(lines, "")

	lines = append(lines, "Race time predictions (Riegel):")
	for _, p := range r.Predictions {
		predicted := Unavailable
		if p.Seconds != nil {
			predicted = analysis.FormatHMS(*p.Seconds)
		}
		lines = append(lines, fmt.Sprintf("  %s (%.3f km): %s", p.Name, p.Km, predicted))
	}
	lines = append(lines, "")

	lines = append(lines, "Pace zones:")
	for _, z := range r.Zones {
		lm, ls := analysis.SecondsToMinSec(z.Lower)
		um, us := analysis.SecondsToMinSec(z.Upper)
		lines = append(lines, fmt.Sprintf("  %s [%s]: %d:%02d - %d:%02d per km (approx)",
			z.Zone.Name, z.Zone.Label, lm, ls, um, us))
	}

	return lines
}

// Render returns the report as newline-separated text without a trailing newline
func (r Result) Render() string {
	return strings.Join(r.Lines(), "\n")
}

// Summary returns a one-line description like "5.000 km @ 5:00/km -> 0h 25m 0s"
func (r Result) Summary() string {
	pace := r.Input.Pace
	return fmt.Sprintf("%.3f km @ %d:%02d/%s -> %s",
		r.Input.DistanceKm, int(pace.Minutes), int(pace.Seconds), pace.Unit,
		analysis.FormatHMS(r.ElapsedSeconds))
}

func formatOptional(v *float64) string {
	if v == nil {
		return Unavailable
	}
	return fmt.Sprintf("%.1f", *v)
}

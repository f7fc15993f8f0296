// Package input validates user-entered text before it reaches the
// calculation core.
package input

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"pacecalc/internal/analysis"
)

var (
	// ErrInvalidNumber is returned for text that is not a finite number
	ErrInvalidNumber = errors.New("invalid number")

	// ErrNegative is returned for numbers below zero
	ErrNegative = errors.New("value must be non-negative")

	// ErrTooLarge is returned for numbers above MaxValue
	ErrTooLarge = errors.New("value too large")

	// ErrUnknownUnit is returned for units other than km and mile
	ErrUnknownUnit = errors.New("unknown pace unit")

	// ErrUnknownPreset is returned for distance names outside the preset catalog
	ErrUnknownPreset = errors.New("unknown distance preset")
)

// CustomPreset is the distance choice that takes a user-entered value
const CustomPreset = "Custom"

// MaxValue bounds every entered number. A million minutes per km over a
// million km still fits a whole-second duration.
const MaxValue = 1e6

// ParseNonNegative parses s as a finite number in [0, MaxValue]
func ParseNonNegative(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrInvalidNumber
	}
	if v < 0 {
		return 0, ErrNegative
	}
	if v > MaxValue {
		return 0, ErrTooLarge
	}
	return v, nil
}

// ParseField is ParseNonNegative with the field name attached to the error
func ParseField(name, s string) (float64, error) {
	v, err := ParseNonNegative(s)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	return v, nil
}

// ParseUnit accepts "km", "mile" and the common spellings "mi", "miles",
// "min/km" and "min/mi"
func ParseUnit(s string) (analysis.Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "km", "min/km", "kilometer", "kilometers":
		return analysis.UnitKm, nil
	case "mile", "mi", "miles", "min/mi":
		return analysis.UnitMile, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownUnit, s)
}

// ResolveDistance returns the distance in km for a preset name, or parses
// custom when the preset is "Custom"
func ResolveDistance(preset, custom string) (float64, error) {
	if strings.EqualFold(strings.TrimSpace(preset), CustomPreset) {
		return ParseField("custom distance", custom)
	}
	p, ok := analysis.LookupPreset(preset)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownPreset, preset)
	}
	return p.Km, nil
}

// PresetNames lists the distance choices offered by the front ends,
// presets first and Custom last
func PresetNames() []string {
	presets := analysis.Presets()
	names := make([]string, 0, len(presets)+1)
	for _, p := range presets {
		names = append(names, p.Name)
	}
	return append(names, CustomPreset)
}

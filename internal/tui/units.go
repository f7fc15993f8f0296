package tui

import (
	"fmt"

	"pacecalc/internal/analysis"
)

// Units provides pace formatting for the unit selected in the form
type Units struct {
	unit analysis.Unit
}

// NewUnits creates a new Units helper; anything but mile means km
func NewUnits(unit analysis.Unit) Units {
	if !unit.Valid() {
		unit = analysis.UnitKm
	}
	return Units{unit: unit}
}

// Unit returns the selected unit
func (u Units) Unit() analysis.Unit {
	return u.unit
}

// Toggle switches between km and mile
func (u Units) Toggle() Units {
	if u.unit == analysis.UnitMile {
		return Units{unit: analysis.UnitKm}
	}
	return Units{unit: analysis.UnitMile}
}

// IsMiles returns true if the pace unit is miles
func (u Units) IsMiles() bool {
	return u.unit == analysis.UnitMile
}

// PaceLabel returns the pace unit label ("min/mi" or "min/km")
func (u Units) PaceLabel() string {
	if u.IsMiles() {
		return "min/mi"
	}
	return "min/km"
}

// FormatPace formats seconds per km as M:SS in the selected unit
func (u Units) FormatPace(secondsPerKm float64) string {
	if secondsPerKm <= 0 {
		return "-"
	}
	if u.IsMiles() {
		secondsPerKm *= analysis.KmPerMile
	}
	m, s := analysis.SecondsToMinSec(secondsPerKm)
	return fmt.Sprintf("%d:%02d", m, s)
}

// ConvertPaceData converts paces in seconds per km into minutes per
// selected unit for charts
func (u Units) ConvertPaceData(secondsPerKm []float64) []float64 {
	converted := make([]float64, len(secondsPerKm))
	for i, p := range secondsPerKm {
		minutes := p / 60
		if u.IsMiles() {
			minutes *= analysis.KmPerMile
		}
		converted[i] = minutes
	}
	return converted
}

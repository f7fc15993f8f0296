package tui

import (
	"math"
	"testing"

	"pacecalc/internal/analysis"
)

func TestUnits_FormatPace(t *testing.T) {
	tests := []struct {
		name         string
		unit         analysis.Unit
		secondsPerKm float64
		want         string
	}{
		{"km", analysis.UnitKm, 300, "5:00"},
		{"km rounds", analysis.UnitKm, 299.6, "5:00"},
		{"mile", analysis.UnitMile, 300, "8:03"},
		{"zero", analysis.UnitKm, 0, "-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewUnits(tt.unit).FormatPace(tt.secondsPerKm); got != tt.want {
				t.Errorf("FormatPace(%v) = %q, want %q", tt.secondsPerKm, got, tt.want)
			}
		})
	}
}

func TestUnits_Toggle(t *testing.T) {
	u := NewUnits("furlong")
	if u.Unit() != analysis.UnitKm {
		t.Errorf("unknown unit should fall back to km, got %q", u.Unit())
	}

	u = u.Toggle()
	if !u.IsMiles() || u.PaceLabel() != "min/mi" {
		t.Errorf("Toggle() = %q, want mile", u.Unit())
	}
	if u.Toggle().PaceLabel() != "min/km" {
		t.Error("second Toggle() should return to km")
	}
}

func TestUnits_ConvertPaceData(t *testing.T) {
	got := NewUnits(analysis.UnitMile).ConvertPaceData([]float64{300, 360})
	want := []float64{8.0467, 9.6561}

	for i := range want {
		if math.Abs(got[i]-want[i]) > 0.001 {
			t.Errorf("ConvertPaceData()[%d] = %.4f, want %.4f", i, got[i], want[i])
		}
	}
}

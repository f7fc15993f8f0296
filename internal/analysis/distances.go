package analysis

import "strings"

// Standard race distances in kilometers
const (
	Distance5KKm       = 5.0
	Distance10KKm      = 10.0
	DistanceHalfMaraKm = 21.097
	DistanceMarathonKm = 42.195
)

// Preset is a named race distance
type Preset struct {
	Name string
	Km   float64
}

var presets = []Preset{
	{"5K", Distance5KKm},
	{"10K", Distance10KKm},
	{"Half Marathon", DistanceHalfMaraKm},
	{"Marathon", DistanceMarathonKm},
}

// Presets returns the standard race distances, shortest first
func Presets() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)
	return out
}

// LookupPreset finds a preset by name, ignoring case and surrounding space
func LookupPreset(name string) (Preset, bool) {
	name = strings.TrimSpace(name)
	for _, p := range presets {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return Preset{}, false
}

// PredictionTarget is a distance to extrapolate race times to
type PredictionTarget struct {
	Name string
	Km   float64
}

// PredictionTargets returns the race distances used for Riegel predictions
func PredictionTargets() []PredictionTarget {
	targets := make([]PredictionTarget, 0, len(presets))
	for _, p := range presets {
		targets = append(targets, PredictionTarget{Name: p.Name, Km: p.Km})
	}
	return targets
}

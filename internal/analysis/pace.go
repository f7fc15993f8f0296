package analysis

import (
	"fmt"
	"math"
)

// Unit is the distance unit a pace is expressed in
type Unit string

const (
	UnitKm   Unit = "km"
	UnitMile Unit = "mile"
)

// Valid reports whether u is one of the supported units
func (u Unit) Valid() bool {
	return u == UnitKm || u == UnitMile
}

// Pace is a running pace of Minutes:Seconds per Unit.
// Seconds is conventionally 0-59 but larger values are accepted and simply
// added to the total.
type Pace struct {
	Minutes float64
	Seconds float64
	Unit    Unit
}

// NewPace creates a pace value
func NewPace(minutes, seconds float64, unit Unit) Pace {
	return Pace{Minutes: minutes, Seconds: seconds, Unit: unit}
}

// TotalSeconds returns the pace in seconds per unit
func (p Pace) TotalSeconds() float64 {
	return p.Minutes*60 + p.Seconds
}

// SecondsPerKm returns the pace normalized to seconds per kilometer
func (p Pace) SecondsPerKm() float64 {
	if p.Unit == UnitMile {
		return p.TotalSeconds() / KmPerMile
	}
	return p.TotalSeconds()
}

// DistanceInUnit converts a distance in km into the pace's own unit
func (p Pace) DistanceInUnit(km float64) float64 {
	if p.Unit == UnitMile {
		return KmToMiles(km)
	}
	return km
}

// TimeForDistance returns elapsed seconds for covering distance at
// paceSeconds per unit. Both arguments must use the same unit; converting
// between km and miles is the caller's job.
func TimeForDistance(distance, paceSeconds float64) float64 {
	return distance * paceSeconds
}

// SecondsToHMS rounds to the nearest whole second and splits into
// hours, minutes and seconds. Ties round to even.
func SecondsToHMS(totalSeconds float64) (hours, minutes, seconds int) {
	s := roundSeconds(totalSeconds)
	return s / 3600, (s % 3600) / 60, s % 60
}

// FormatHMS formats a duration as "1h 2m 3s"
func FormatHMS(totalSeconds float64) string {
	h, m, s := SecondsToHMS(totalSeconds)
	return fmt.Sprintf("%dh %dm %ds", h, m, s)
}

// maxSeconds is the largest duration rounded exactly; larger values clamp to it
const maxSeconds = 1 << 53

func roundSeconds(seconds float64) int {
	switch {
	case math.IsNaN(seconds):
		return 0
	case seconds > maxSeconds:
		return maxSeconds
	case seconds < -maxSeconds:
		return -maxSeconds
	}
	return int(math.RoundToEven(seconds))
}

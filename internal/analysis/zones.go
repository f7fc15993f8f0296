package analysis

// Zone is a training intensity band expressed as multipliers on a base pace.
// Label is display text only (a color name front ends may map to a style).
type Zone struct {
	Name        string
	LowerFactor float64
	UpperFactor float64
	Label       string
}

// zones is the fixed catalog, slowest to fastest. Never modified at runtime.
var zones = []Zone{
	{"Easy", 1.15, 1.40, "green"},
	{"Steady", 1.05, 1.15, "blue"},
	{"Tempo", 0.95, 1.05, "yellow"},
	{"Threshold", 0.90, 0.95, "orange"},
	{"Interval", 0.80, 0.90, "red"},
}

// Zones returns a copy of the zone catalog in display order
func Zones() []Zone {
	out := make([]Zone, len(zones))
	copy(out, zones)
	return out
}

// ZonePace is a zone with its pace bounds in seconds per unit
type ZonePace struct {
	Zone  Zone
	Lower float64
	Upper float64
}

// ZonePaces applies every zone's factors to basePaceSeconds.
// Always returns one entry per zone, in catalog order.
func ZonePaces(basePaceSeconds float64) []ZonePace {
	paces := make([]ZonePace, 0, len(zones))
	for _, z := range zones {
		paces = append(paces, ZonePace{
			Zone:  z,
			Lower: basePaceSeconds * z.LowerFactor,
			Upper: basePaceSeconds * z.UpperFactor,
		})
	}
	return paces
}

// SecondsToMinSec rounds to the nearest whole second and splits into
// minutes and seconds
func SecondsToMinSec(seconds float64) (minutes, secs int) {
	s := roundSeconds(seconds)
	return s / 60, s % 60
}

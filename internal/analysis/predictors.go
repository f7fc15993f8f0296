package analysis

import "math"

// DefaultRiegelExponent is the fatigue exponent from Riegel's endurance model
const DefaultRiegelExponent = 1.06

const (
	cooperTestSeconds = 12 * 60
	cooperIntercept   = 504.9
	cooperSlope       = 44.73

	vdotBase  = 90.0
	vdotSlope = 10.0 // points per minute of pace
	vdotFloor = 20.0
)

// RiegelPredict extrapolates a race time t1 over d1 km to d2 km using the
// default exponent. Returns 0 when d1 <= 0, meaning no prediction.
func RiegelPredict(t1Seconds, d1Km, d2Km float64) float64 {
	return RiegelPredictWithExponent(t1Seconds, d1Km, d2Km, DefaultRiegelExponent)
}

// RiegelPredictWithExponent computes T2 = T1 * (D2/D1)^exponent
func RiegelPredictWithExponent(t1Seconds, d1Km, d2Km, exponent float64) float64 {
	if d1Km <= 0 {
		return 0
	}
	return t1Seconds * math.Pow(d2Km/d1Km, exponent)
}

// CooperVO2max estimates VO2max (ml/kg/min) from any distance and time by
// scaling the distance to what would be covered in the 12 minute Cooper test.
// This is a rough approximation, not a validated estimate.
// Returns 0 when timeSeconds <= 0.
func CooperVO2max(distanceMeters, timeSeconds float64) float64 {
	if timeSeconds <= 0 {
		return 0
	}
	normalized := distanceMeters * (cooperTestSeconds / timeSeconds)
	return (normalized - cooperIntercept) / cooperSlope
}

// SimpleVDOTFromPace returns a crude VDOT-like index from pace in seconds
// per km: 90 minus 10 per minute of pace, floored at 20.
// Returns 0 when the pace is not positive.
func SimpleVDOTFromPace(paceSecondsPerKm float64) float64 {
	if paceSecondsPerKm <= 0 {
		return 0
	}
	minutes := paceSecondsPerKm / 60
	return math.Max(vdotFloor, vdotBase-minutes*vdotSlope)
}

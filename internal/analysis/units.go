package analysis

// Unit conversion factors
const (
	KmPerMile   = 1.609344
	MilePerKm   = 1 / KmPerMile
	MetersPerKm = 1000.0
)

// KmToMiles converts kilometers to miles
func KmToMiles(km float64) float64 {
	return km * MilePerKm
}

// MilesToKm converts miles to kilometers
func MilesToKm(miles float64) float64 {
	return miles * KmPerMile
}

package analysis

// AverageSpeed returns speed in km/h and mph for a distance covered in
// totalSeconds. A non-positive duration yields (0, 0).
func AverageSpeed(distanceKm, totalSeconds float64) (kmh, mph float64) {
	hours := totalSeconds / 3600
	if hours <= 0 {
		return 0, 0
	}
	return distanceKm / hours, KmToMiles(distanceKm) / hours
}

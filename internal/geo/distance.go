package geo

import "math"

const earthRadiusKm = 6371

// DistanceKm returns the great-circle distance in kilometers between two
// latitude/longitude pairs using the haversine formula.
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)

	a := sinLat*sinLat + math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*sinLon*sinLon

	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

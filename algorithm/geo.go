package algorithm

import "math"

const (
	// Earth radius in kilometers
	earthRadiusKm = 6371.0
)

// Location is a geographic coordinate pair.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// ValidLocation reports whether the coordinates are finite and within
// lat [-90, 90], lng [-180, 180].
func ValidLocation(loc Location) bool {
	if math.IsNaN(loc.Lat) || math.IsInf(loc.Lat, 0) {
		return false
	}
	if math.IsNaN(loc.Lng) || math.IsInf(loc.Lng, 0) {
		return false
	}
	if loc.Lat < -90 || loc.Lat > 90 {
		return false
	}
	if loc.Lng < -180 || loc.Lng > 180 {
		return false
	}
	return true
}

// GreatCircleKm computes the great-circle distance between two points in
// kilometers, rounded to 2 decimals, using the Haversine formula.
// Invalid coordinates yield 0 rather than an error; this is the terminal
// fallback of the distance pipeline and must never fail.
func GreatCircleKm(from, to Location) float64 {
	if !ValidLocation(from) || !ValidLocation(to) {
		return 0
	}

	lat1 := toRadians(from.Lat)
	lat2 := toRadians(to.Lat)
	deltaLat := toRadians(to.Lat - from.Lat)
	deltaLng := toRadians(to.Lng - from.Lng)

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(deltaLng/2)*math.Sin(deltaLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return Round2(earthRadiusKm * c)
}

// Round2 rounds to 2 decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

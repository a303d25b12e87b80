package geofence

import "math"

// Radius bumi dalam meter
const earthRadius = 6371000

// Position adalah koordinat device atau cabang.
type Position struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// DistanceMeters menghitung jarak great-circle dua koordinat (haversine),
// input derajat, hasil meter.
func DistanceMeters(a, b Position) float64 {
	dLat := (b.Lat - a.Lat) * (math.Pi / 180.0)
	dLon := (b.Lng - a.Lng) * (math.Pi / 180.0)

	lat1Rad := a.Lat * (math.Pi / 180.0)
	lat2Rad := b.Lat * (math.Pi / 180.0)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadius * c
}

// IsWithinTolerance melaporkan apakah jarak masih dalam radius toleransi.
func IsWithinTolerance(distance, tolerance float64) bool {
	return distance <= tolerance
}

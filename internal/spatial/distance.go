package spatial

import (
	"github.com/golang/geo/s2"
)

// Constants
const (
	EarthRadiusMeters = 6371000.0 // Earth's mean radius in meters
	EarthRadiusKm     = 6371.0    // Earth's mean radius in kilometers
)

// HaversineDistance calculates the great-circle distance between two points
// in meters. Symmetric, and zero for identical points.
func HaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	p1 := s2.LatLngFromDegrees(lat1, lon1)
	p2 := s2.LatLngFromDegrees(lat2, lon2)
	return p1.Distance(p2).Radians() * EarthRadiusMeters
}

// DistanceKm calculates the great-circle distance between two points in kilometers
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	return HaversineDistance(lat1, lon1, lat2, lon2) / 1000.0
}

// ClampCoordinate clamps a coordinate to [-90, 90]. Upstream feeds
// occasionally deliver garbage positions; clamping keeps the distance math
// finite. The same bound is applied to longitudes, which is not a geographic
// claim, only a plausibility cap matching the latitude one.
func ClampCoordinate(v float64) float64 {
	if v > 90 {
		return 90
	}
	if v < -90 {
		return -90
	}
	return v
}

// VelocityKmh converts a distance covered in kilometers over elapsed seconds
// into km/h. Callers must not pass elapsedSeconds == 0.
func VelocityKmh(distanceKm, elapsedSeconds float64) float64 {
	return distanceKm * 3600.0 / elapsedSeconds
}

package models

import "github.com/wawbus/fleet-analytics-go/internal/spatial"

// Point represents a geographic position in degrees
type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Equal reports whether two points have exactly the same coordinates.
// No epsilon: points built from the same source data compare equal.
func (p Point) Equal(other Point) bool {
	return p.Lat == other.Lat && p.Lon == other.Lon
}

// DistanceKm returns the great-circle distance to another point in kilometers
func (p Point) DistanceKm(other Point) float64 {
	return spatial.HaversineDistance(p.Lat, p.Lon, other.Lat, other.Lon) / 1000.0
}

// DistanceMeters returns the great-circle distance to another point in meters
func (p Point) DistanceMeters(other Point) float64 {
	return spatial.HaversineDistance(p.Lat, p.Lon, other.Lat, other.Lon)
}

// Average returns the coordinate-wise midpoint between two points.
// Arithmetic mean, not a geodesic midpoint; used only as a representative
// location for short segments.
func (p Point) Average(other Point) Point {
	return Point{
		Lat: (p.Lat + other.Lat) / 2,
		Lon: (p.Lon + other.Lon) / 2,
	}
}

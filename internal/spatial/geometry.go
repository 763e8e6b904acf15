package spatial

// Point represents a 2D point with latitude and longitude
type Point struct {
	Lat float64
	Lon float64
}

// Ring is a closed polygon ring. The first ring of a polygon is its outer
// boundary; any further rings are holes.
type Ring []Point

// Polygon is one outer ring plus zero or more holes
type Polygon []Ring

// MultiPolygon is a possibly disjoint collection of polygons
type MultiPolygon []Polygon

// PointInRing checks if a point is inside a single ring using ray casting.
// The half-open edge rule gives every point, boundary points included, a
// single consistent answer across repeated calls.
func PointInRing(point Point, ring Ring) bool {
	if len(ring) < 3 {
		return false
	}

	inside := false
	j := len(ring) - 1

	for i := 0; i < len(ring); i++ {
		if ((ring[i].Lat > point.Lat) != (ring[j].Lat > point.Lat)) &&
			(point.Lon < (ring[j].Lon-ring[i].Lon)*(point.Lat-ring[i].Lat)/(ring[j].Lat-ring[i].Lat)+ring[i].Lon) {
			inside = !inside
		}
		j = i
	}

	return inside
}

// PointInPolygon checks containment in a polygon with holes: inside the outer
// ring and outside every hole
func PointInPolygon(point Point, polygon Polygon) bool {
	if len(polygon) == 0 {
		return false
	}
	if !PointInRing(point, polygon[0]) {
		return false
	}
	for _, hole := range polygon[1:] {
		if PointInRing(point, hole) {
			return false
		}
	}
	return true
}

// PointInMultiPolygon checks containment in any member polygon
func PointInMultiPolygon(point Point, mp MultiPolygon) bool {
	for _, polygon := range mp {
		if PointInPolygon(point, polygon) {
			return true
		}
	}
	return false
}

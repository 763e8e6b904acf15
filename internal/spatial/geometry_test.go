package spatial

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func square(minLat, minLon, maxLat, maxLon float64) Ring {
	return Ring{
		{Lat: minLat, Lon: minLon},
		{Lat: minLat, Lon: maxLon},
		{Lat: maxLat, Lon: maxLon},
		{Lat: maxLat, Lon: minLon},
	}
}

func TestPointInRing(t *testing.T) {
	ring := square(0, 0, 10, 10)

	assert.True(t, PointInRing(Point{Lat: 5, Lon: 5}, ring))
	assert.False(t, PointInRing(Point{Lat: 15, Lon: 5}, ring))
	assert.False(t, PointInRing(Point{Lat: -1, Lon: -1}, ring))
}

func TestPointInRingDegenerate(t *testing.T) {
	assert.False(t, PointInRing(Point{Lat: 1, Lon: 1}, Ring{{Lat: 0, Lon: 0}, {Lat: 2, Lon: 2}}))
	assert.False(t, PointInRing(Point{Lat: 1, Lon: 1}, nil))
}

func TestPointInRingBoundaryConsistent(t *testing.T) {
	ring := square(0, 0, 10, 10)
	boundary := Point{Lat: 0, Lon: 5}

	first := PointInRing(boundary, ring)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, PointInRing(boundary, ring))
	}
}

func TestPointInPolygonWithHole(t *testing.T) {
	polygon := Polygon{
		square(0, 0, 10, 10),
		square(4, 4, 6, 6), // hole
	}

	assert.True(t, PointInPolygon(Point{Lat: 2, Lon: 2}, polygon))
	assert.False(t, PointInPolygon(Point{Lat: 5, Lon: 5}, polygon))
	assert.False(t, PointInPolygon(Point{Lat: 20, Lon: 20}, polygon))
	assert.False(t, PointInPolygon(Point{Lat: 1, Lon: 1}, Polygon{}))
}

func TestPointInMultiPolygon(t *testing.T) {
	mp := MultiPolygon{
		{square(0, 0, 10, 10)},
		{square(20, 20, 30, 30)},
	}

	assert.True(t, PointInMultiPolygon(Point{Lat: 5, Lon: 5}, mp))
	assert.True(t, PointInMultiPolygon(Point{Lat: 25, Lon: 25}, mp))
	assert.False(t, PointInMultiPolygon(Point{Lat: 15, Lon: 15}, mp))
}

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointEqual(t *testing.T) {
	a := Point{Lat: 52.2324, Lon: 21.0162}
	b := Point{Lat: 52.2324, Lon: 21.0162}
	c := Point{Lat: 52.2324, Lon: 21.0163}

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestPointDistance(t *testing.T) {
	a := Point{Lat: 52.211821, Lon: 20.981944}
	b := Point{Lat: 52.231918, Lon: 21.006781}

	assert.Equal(t, 0.0, a.DistanceMeters(a))
	assert.InDelta(t, 2800, a.DistanceMeters(b), 100)
	assert.InDelta(t, a.DistanceMeters(b)/1000.0, a.DistanceKm(b), 1e-9)
	assert.InDelta(t, a.DistanceMeters(b), b.DistanceMeters(a), 1e-9)
}

func TestPointAverage(t *testing.T) {
	a := Point{Lat: 52.0, Lon: 20.0}
	b := Point{Lat: 54.0, Lon: 22.0}

	mid := a.Average(b)
	assert.Equal(t, Point{Lat: 53.0, Lon: 21.0}, mid)
}

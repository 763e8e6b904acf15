package spatial

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineDistanceZeroForSamePoint(t *testing.T) {
	assert.Equal(t, 0.0, HaversineDistance(52.2324, 21.0162, 52.2324, 21.0162))
}

func TestHaversineDistanceSymmetric(t *testing.T) {
	cases := []struct {
		lat1, lon1, lat2, lon2 float64
	}{
		{52.211821, 20.981944, 52.231918, 21.006781},
		{0, 0, 1, 1},
		{-45.0, 170.0, 52.5, -120.25},
	}

	for _, tc := range cases {
		forward := HaversineDistance(tc.lat1, tc.lon1, tc.lat2, tc.lon2)
		backward := HaversineDistance(tc.lat2, tc.lon2, tc.lat1, tc.lon1)
		assert.InDelta(t, forward, backward, 1e-9)
	}
}

func TestHaversineDistanceKnownValues(t *testing.T) {
	// One degree diagonal from the origin is about 157 km.
	assert.InDelta(t, 157249, HaversineDistance(0, 0, 1, 1), 3000)

	// Two central Warsaw locations about 2.8 km apart.
	assert.InDelta(t, 2800, HaversineDistance(52.211821, 20.981944, 52.231918, 21.006781), 100)
}

func TestDistanceKm(t *testing.T) {
	meters := HaversineDistance(52.0, 21.0, 52.1, 21.1)
	assert.InDelta(t, meters/1000.0, DistanceKm(52.0, 21.0, 52.1, 21.1), 1e-9)
}

func TestClampCoordinate(t *testing.T) {
	assert.Equal(t, 90.0, ClampCoordinate(95.3))
	assert.Equal(t, -90.0, ClampCoordinate(-180.0))
	assert.Equal(t, 52.23, ClampCoordinate(52.23))
	assert.Equal(t, 90.0, ClampCoordinate(90.0))
}

func TestVelocityKmh(t *testing.T) {
	// 100 km in 10 seconds.
	assert.Equal(t, 36000.0, VelocityKmh(100, 10))
	// 0.2 km in 10 seconds is 72 km/h.
	assert.InDelta(t, 72.0, VelocityKmh(0.2, 10), 1e-9)
}

package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVehicleIndexBijection(t *testing.T) {
	index := NewVehicleIndex([]string{"1000", "1001", "2042"})

	require.Equal(t, 3, index.Len())

	for i, id := range []string{"1000", "1001", "2042"} {
		got, ok := index.IndexOf(id)
		require.True(t, ok)
		assert.Equal(t, i, got)
		assert.Equal(t, id, index.IDAt(i))
	}

	_, ok := index.IndexOf("9999")
	assert.False(t, ok)
}

func TestVehicleIndexEmpty(t *testing.T) {
	index := NewVehicleIndex(nil)
	assert.Equal(t, 0, index.Len())
}

func TestSortSnapshots(t *testing.T) {
	base := time.Date(2024, 2, 19, 21, 0, 0, 0, time.UTC)
	snapshots := []PositionSnapshot{
		{CapturedAt: base.Add(40 * time.Second)},
		{CapturedAt: base},
		{CapturedAt: base.Add(20 * time.Second)},
	}

	SortSnapshots(snapshots)

	assert.Equal(t, base, snapshots[0].CapturedAt)
	assert.Equal(t, base.Add(20*time.Second), snapshots[1].CapturedAt)
	assert.Equal(t, base.Add(40*time.Second), snapshots[2].CapturedAt)
}

func TestDistinctVehicleIDs(t *testing.T) {
	snapshots := []PositionSnapshot{
		{Rows: []VehicleRow{{VehicleID: "200"}, {VehicleID: "100"}}},
		{Rows: []VehicleRow{{VehicleID: "100"}, {VehicleID: "150"}}},
	}

	assert.Equal(t, []string{"100", "150", "200"}, DistinctVehicleIDs(snapshots))
	assert.Empty(t, DistinctVehicleIDs(nil))
}

// Package speeding reconstructs per-vehicle velocities from consecutive
// position snapshots and segments them into maximal over-limit runs.
package speeding

import (
	"time"

	"github.com/wawbus/fleet-analytics-go/internal/models"
	"github.com/wawbus/fleet-analytics-go/internal/spatial"
)

// rawTimeLength is the exact width of a well-formed "YYYY-MM-DD HH:MM:SS"
// row timestamp. Anything else marks the slot as "no update this cycle".
const rawTimeLength = 19

// Series holds the reconstructed per-vehicle transition data for one window.
// Positions has one slot array per snapshot; Distances and Deltas have one
// array per consecutive snapshot pair. Every array is vehicle-count long and
// addressed by the dense vehicle index.
type Series struct {
	Positions [][]models.Point
	Distances [][]float64 // km, per transition
	Deltas    [][]float64 // seconds, 0 means "no usable update, skip"
}

// Transitions returns the number of consecutive snapshot pairs
func (s *Series) Transitions() int {
	return len(s.Distances)
}

// Reconstruct builds the transition series from snapshots ordered by capture
// time. Vehicles absent from a snapshot keep the zero position and an empty
// raw timestamp; coordinates are clamped to [-90, 90] before any distance is
// computed. A transition's elapsed time is recorded only when both raw
// timestamps are present and exactly 19 characters; otherwise the delta is
// the 0 sentinel, which downstream reads as "no usable update", never as a
// zero-duration movement.
func Reconstruct(snapshots []models.PositionSnapshot, index *models.VehicleIndex) *Series {
	vehicleCount := index.Len()

	positions := make([][]models.Point, 0, len(snapshots))
	rawTimes := make([][]string, 0, len(snapshots))

	for _, snapshot := range snapshots {
		slots := make([]models.Point, vehicleCount)
		times := make([]string, vehicleCount)

		for _, row := range snapshot.Rows {
			i, ok := index.IndexOf(row.VehicleID)
			if !ok {
				continue
			}
			slots[i] = models.Point{
				Lat: spatial.ClampCoordinate(row.Lat),
				Lon: spatial.ClampCoordinate(row.Lon),
			}
			times[i] = row.Time
		}

		positions = append(positions, slots)
		rawTimes = append(rawTimes, times)
	}

	series := &Series{Positions: positions}

	for t := 1; t < len(positions); t++ {
		distances := make([]float64, vehicleCount)
		deltas := make([]float64, vehicleCount)

		for i := 0; i < vehicleCount; i++ {
			distances[i] = positions[t][i].DistanceKm(positions[t-1][i])
			deltas[i] = elapsedSeconds(rawTimes[t-1][i], rawTimes[t][i])
		}

		series.Distances = append(series.Distances, distances)
		series.Deltas = append(series.Deltas, deltas)
	}

	return series
}

// elapsedSeconds returns the elapsed time between two raw row timestamps, or
// the 0 sentinel when either is missing, the wrong width, or unparseable
func elapsedSeconds(previous, current string) float64 {
	if len(previous) != rawTimeLength || len(current) != rawTimeLength {
		return 0
	}

	prev, err := time.Parse(models.RowTimeLayout, previous)
	if err != nil {
		return 0
	}
	curr, err := time.Parse(models.RowTimeLayout, current)
	if err != nil {
		return 0
	}

	return curr.Sub(prev).Seconds()
}

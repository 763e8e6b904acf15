package models

import (
	"sort"
	"time"
)

// RowTimeLayout is the timestamp format vehicles report in their rows
const RowTimeLayout = "2006-01-02 15:04:05"

// VehicleRow is one observed vehicle inside a capture cycle
type VehicleRow struct {
	VehicleID string  `json:"vehicleNumber"`
	Line      string  `json:"lines"`
	Brigade   string  `json:"brigade"`
	Lat       float64 `json:"lat"`
	Lon       float64 `json:"lon"`
	// Time is kept as the raw upstream string. Rows with malformed
	// timestamps are filtered at the point of use, not at ingest.
	Time string `json:"time"`
}

// Position returns the row's coordinates as a Point
func (r VehicleRow) Position() Point {
	return Point{Lat: r.Lat, Lon: r.Lon}
}

// PositionSnapshot is one capture cycle: every vehicle observed at CapturedAt.
// Snapshots are immutable once constructed and ordered by capture time.
type PositionSnapshot struct {
	CapturedAt time.Time    `json:"capturedAt"`
	Rows       []VehicleRow `json:"rows"`
}

// SortSnapshots orders snapshots by ascending capture time.
// All previous/current transitions are defined over this order.
func SortSnapshots(snapshots []PositionSnapshot) {
	sort.Slice(snapshots, func(i, j int) bool {
		return snapshots[i].CapturedAt.Before(snapshots[j].CapturedAt)
	})
}

// DistinctVehicleIDs returns the sorted set of vehicle identifiers observed
// anywhere in the snapshot window
func DistinctVehicleIDs(snapshots []PositionSnapshot) []string {
	seen := make(map[string]bool)
	for _, snapshot := range snapshots {
		for _, row := range snapshot.Rows {
			seen[row.VehicleID] = true
		}
	}

	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

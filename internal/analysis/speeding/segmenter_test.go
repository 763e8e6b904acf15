package speeding

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wawbus/fleet-analytics-go/internal/models"
)

func noDistrict(models.Point) string { return "" }

func newTestSegmenter(classify ClassifyFunc) *Segmenter {
	return NewSegmenter(50, 90, classify)
}

// seriesFromLats builds a single-vehicle series from successive latitudes at
// a fixed longitude, 10 seconds apart. A 0.0018 degree step is roughly 200 m,
// about 72 km/h over one transition.
func seriesFromLats(lats ...float64) (*Series, *models.VehicleIndex) {
	snapshots := make([]models.PositionSnapshot, len(lats))
	at := captureTimes(len(lats))
	for i, lat := range lats {
		raw := fmt.Sprintf("2024-02-19 08:%02d:%02d", at[i].Minute(), at[i].Second())
		snapshots[i] = snapshot(at[i], vehicleRow("1000", lat, 21.0, raw))
	}
	index := models.NewVehicleIndex([]string{"1000"})
	return Reconstruct(snapshots, index), index
}

func TestSegmentSingleRunTwoTransitions(t *testing.T) {
	series, index := seriesFromLats(52.2, 52.2018, 52.2036)

	report := newTestSegmenter(noDistrict).Segment(series, index)

	assert.Equal(t, 1, report.EventCount)
	assert.Equal(t, 2, report.MeasuredCount)
	assert.Equal(t, 0, report.RejectedCount)
	require.Len(t, report.Velocities, 2)
	assert.InDelta(t, 72, report.Velocities[0], 2)

	require.Len(t, report.Events, 1)
	event := report.Events[0]
	assert.Equal(t, "1000", event.VehicleID)
	// Run spans both transitions, so the event sits midway between the first
	// and the last snapshot positions.
	assert.InDelta(t, 52.2018, event.Position.Lat, 1e-9)
	assert.Equal(t, 1, report.VehicleCounts["1000"])
}

func TestSegmentRejectedSampleDoesNotCloseRun(t *testing.T) {
	// Fast, then an implausible 0.05 degree jump, then fast again. The glitch
	// is rejected and the run keeps going to the end of the sequence.
	series, index := seriesFromLats(52.2, 52.2018, 52.2518, 52.2536)

	report := newTestSegmenter(noDistrict).Segment(series, index)

	assert.Equal(t, 1, report.EventCount)
	assert.Equal(t, 2, report.MeasuredCount)
	assert.Equal(t, 1, report.RejectedCount)

	require.Len(t, report.Events, 1)
	// Closed at sequence end: midpoint of the first snapshot and the final one.
	assert.InDelta(t, (52.2+52.2536)/2, report.Events[0].Position.Lat, 1e-9)
}

func TestSegmentSlowSampleClosesRun(t *testing.T) {
	// Fast transition, then a crawl, then fast again: two separate runs.
	series, index := seriesFromLats(52.2, 52.2018, 52.20181, 52.20361, 52.20541)

	report := newTestSegmenter(noDistrict).Segment(series, index)

	assert.Equal(t, 2, report.EventCount)
	assert.Equal(t, 4, report.MeasuredCount)
	assert.Equal(t, 0, report.RejectedCount)

	require.Len(t, report.Events, 2)
	// First run closes at the slow transition's start position.
	assert.InDelta(t, (52.2+52.2018)/2, report.Events[0].Position.Lat, 1e-9)
	// Second run opens at the slow sample's start and closes at sequence end.
	assert.InDelta(t, (52.20181+52.20541)/2, report.Events[1].Position.Lat, 1e-9)
	assert.Equal(t, 2, report.VehicleCounts["1000"])
}

func TestSegmentAllUnderLimit(t *testing.T) {
	series, index := seriesFromLats(52.2, 52.20001, 52.20002)

	report := newTestSegmenter(noDistrict).Segment(series, index)

	assert.Equal(t, 0, report.EventCount)
	assert.Equal(t, 2, report.MeasuredCount)
	assert.Empty(t, report.Events)
	assert.Empty(t, report.VehicleCounts)
}

func TestSegmentZeroDeltaSkipped(t *testing.T) {
	at := captureTimes(2)
	snapshots := []models.PositionSnapshot{
		snapshot(at[0], vehicleRow("1000", 52.2, 21.0, "2024-02-19 08:00:00")),
		snapshot(at[1], vehicleRow("1000", 52.2018, 21.0, "bad")),
	}
	index := models.NewVehicleIndex([]string{"1000"})
	series := Reconstruct(snapshots, index)

	report := newTestSegmenter(noDistrict).Segment(series, index)

	assert.Equal(t, 0, report.MeasuredCount)
	assert.Equal(t, 0, report.RejectedCount)
	assert.Equal(t, 0, report.EventCount)
}

func TestSegmentDistrictCounts(t *testing.T) {
	classify := func(p models.Point) string {
		if p.Lat > 52.2010 {
			return "Mokotów"
		}
		return ""
	}
	series, index := seriesFromLats(52.2, 52.2018, 52.2036)

	report := newTestSegmenter(classify).Segment(series, index)

	require.Len(t, report.Events, 1)
	assert.Equal(t, "Mokotów", report.Events[0].District)
	assert.Equal(t, 1, report.DistrictCounts["Mokotów"])
}

func TestSegmentEmptyDistrictSkipsDistrictCounts(t *testing.T) {
	series, index := seriesFromLats(52.2, 52.2018, 52.2036)

	report := newTestSegmenter(noDistrict).Segment(series, index)

	require.Len(t, report.Events, 1)
	assert.Equal(t, "", report.Events[0].District)
	assert.Empty(t, report.DistrictCounts)
}

func TestSegmentMultipleVehicles(t *testing.T) {
	at := captureTimes(3)
	snapshots := make([]models.PositionSnapshot, 3)
	fastLats := []float64{52.2, 52.2018, 52.2036}
	slowLats := []float64{52.3, 52.30001, 52.30002}
	for i := range snapshots {
		raw := fmt.Sprintf("2024-02-19 08:%02d:%02d", at[i].Minute(), at[i].Second())
		snapshots[i] = snapshot(at[i],
			vehicleRow("1000", fastLats[i], 21.0, raw),
			vehicleRow("2000", slowLats[i], 21.0, raw),
		)
	}
	index := models.NewVehicleIndex([]string{"1000", "2000"})
	series := Reconstruct(snapshots, index)

	report := newTestSegmenter(noDistrict).Segment(series, index)

	assert.Equal(t, 1, report.EventCount)
	assert.Equal(t, 4, report.MeasuredCount)
	assert.Equal(t, 1, report.VehicleCounts["1000"])
	assert.NotContains(t, report.VehicleCounts, "2000")
}

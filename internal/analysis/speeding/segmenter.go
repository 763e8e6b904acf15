package speeding

import (
	"log"

	"github.com/wawbus/fleet-analytics-go/internal/models"
	"github.com/wawbus/fleet-analytics-go/internal/spatial"
)

// ClassifyFunc resolves a point to a district label, empty when outside all
// known districts
type ClassifyFunc func(models.Point) string

// Segmenter extracts maximal speeding runs from a reconstructed series
type Segmenter struct {
	speedLimitKmh   float64
	maximumSpeedKmh float64
	classify        ClassifyFunc
}

// NewSegmenter creates a segmenter. Velocities above maximumSpeedKmh are GPS
// or feed glitches and count as rejected, not measured.
func NewSegmenter(speedLimitKmh, maximumSpeedKmh float64, classify ClassifyFunc) *Segmenter {
	return &Segmenter{
		speedLimitKmh:   speedLimitKmh,
		maximumSpeedKmh: maximumSpeedKmh,
		classify:        classify,
	}
}

// Segment walks every vehicle's transition sequence in chronological order
// and emits one SpeedingEvent per maximal contiguous block of over-limit
// samples, located at the midpoint of the run's boundary positions.
//
// A transition with the 0 time-delta sentinel is skipped outright. A sample
// at or below the limit closes any open run and opens none; a rejected
// sample neither extends nor closes a run. A run still open at the end of
// the sequence is closed against the vehicle's final snapshot position.
func (s *Segmenter) Segment(series *Series, index *models.VehicleIndex) *models.SpeedingReport {
	report := &models.SpeedingReport{
		DistrictCounts: make(map[string]int),
		VehicleCounts:  make(map[string]int),
	}

	transitions := series.Transitions()

	for vehicle := 0; vehicle < index.Len(); vehicle++ {
		runLength := 0
		var runStart models.Point
		haveStart := false

		for t := 0; t < transitions; t++ {
			delta := series.Deltas[t][vehicle]
			if delta == 0 {
				continue
			}

			velocity := spatial.VelocityKmh(series.Distances[t][vehicle], delta)

			if velocity > s.maximumSpeedKmh {
				report.RejectedCount++
				continue
			}

			report.MeasuredCount++
			report.Velocities = append(report.Velocities, velocity)

			position := series.Positions[t][vehicle]

			if velocity <= s.speedLimitKmh {
				if runLength > 0 {
					s.closeRun(report, index.IDAt(vehicle), runStart, position)
				}
				runLength = 0
				haveStart = false
				continue
			}

			if !haveStart {
				runStart = position
				haveStart = true
			}
			runLength++
		}

		if runLength > 0 {
			s.closeRun(report, index.IDAt(vehicle), runStart, series.Positions[transitions][vehicle])
		}
	}

	log.Printf("[SpeedingSegmenter] %d runs over %d measured samples (%d rejected)",
		report.EventCount, report.MeasuredCount, report.RejectedCount)
	return report
}

// closeRun emits one event for a finished run
func (s *Segmenter) closeRun(report *models.SpeedingReport, vehicleID string, first, last models.Point) {
	midpoint := first.Average(last)
	districtLabel := s.classify(midpoint)

	report.EventCount++
	report.VehicleCounts[vehicleID]++
	report.Events = append(report.Events, models.SpeedingEvent{
		VehicleID: vehicleID,
		Position:  midpoint,
		District:  districtLabel,
	})

	if districtLabel != "" {
		report.DistrictCounts[districtLabel]++
	}
}

// Package analysis wires the punctuality and speeding analyses into one
// engine run over a prepared snapshot window.
package analysis

import (
	"log"

	"github.com/wawbus/fleet-analytics-go/internal/analysis/punctuality"
	"github.com/wawbus/fleet-analytics-go/internal/analysis/speeding"
	"github.com/wawbus/fleet-analytics-go/internal/config"
	"github.com/wawbus/fleet-analytics-go/internal/models"
)

// Engine runs both analyses over a read-only, already-materialized window.
// Runs are synchronous; a run either completes or fails during setup. The
// engine holds no mutable state between runs.
type Engine struct {
	aggregator *punctuality.Aggregator
	segmenter  *speeding.Segmenter
}

// NewEngine builds an engine from the configured constants and a district
// classify function
func NewEngine(cfg config.EngineConfig, classify speeding.ClassifyFunc) *Engine {
	matcher := punctuality.NewMatcher(cfg.RadiusMeters, cfg.TimeLowerBound, cfg.TimeUpperBound)

	return &Engine{
		aggregator: punctuality.NewAggregator(matcher),
		segmenter:  speeding.NewSegmenter(cfg.SpeedLimitKmh, cfg.MaximumSpeedKmh, classify),
	}
}

// Run executes both analyses. Snapshots must already be sorted by capture
// time; stops carry their precomputed districts and time-filtered visits.
func (e *Engine) Run(snapshots []models.PositionSnapshot, stops []models.Stop) *models.AnalysisResult {
	vehicleIDs := models.DistinctVehicleIDs(snapshots)
	index := models.NewVehicleIndex(vehicleIDs)

	log.Printf("[AnalysisEngine] Running over %d snapshots, %d vehicles, %d stops",
		len(snapshots), index.Len(), len(stops))

	series := speeding.Reconstruct(snapshots, index)

	return &models.AnalysisResult{
		Punctuality: e.aggregator.Aggregate(stops, snapshots),
		Speeding:    e.segmenter.Segment(series, index),
	}
}

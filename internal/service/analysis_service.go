package service

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/wawbus/fleet-analytics-go/internal/analysis"
	"github.com/wawbus/fleet-analytics-go/internal/metrics"
	"github.com/wawbus/fleet-analytics-go/internal/models"
	"github.com/wawbus/fleet-analytics-go/internal/repository"
	"github.com/wawbus/fleet-analytics-go/internal/stats"
)

// AnalysisService runs the engine over persisted windows and keeps the
// latest result available for the report endpoints
type AnalysisService struct {
	snapshotRepo *repository.SnapshotRepository
	stopRepo     *repository.StopRepository
	resultRepo   *repository.ResultRepository
	engine       *analysis.Engine
	collector    *metrics.Collector

	mu         sync.RWMutex
	lastResult *models.AnalysisResult
	lastRunID  int64
}

// NewAnalysisService creates a new analysis service
func NewAnalysisService(snapshotRepo *repository.SnapshotRepository, stopRepo *repository.StopRepository,
	resultRepo *repository.ResultRepository, engine *analysis.Engine, collector *metrics.Collector) *AnalysisService {
	return &AnalysisService{
		snapshotRepo: snapshotRepo,
		stopRepo:     stopRepo,
		resultRepo:   resultRepo,
		engine:       engine,
		collector:    collector,
	}
}

// RunWindow loads the window from storage, runs both analyses, attaches
// summaries, persists the derived results and returns them
func (s *AnalysisService) RunWindow(start, end time.Time) (*models.AnalysisResult, int64, error) {
	if !start.Before(end) {
		return nil, 0, fmt.Errorf("start time must be before end time")
	}

	snapshots, err := s.snapshotRepo.LoadWindow(start, end)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to load snapshots: %w", err)
	}
	if len(snapshots) == 0 {
		return nil, 0, fmt.Errorf("no snapshots captured between %s and %s", start, end)
	}
	models.SortSnapshots(snapshots)

	stops, err := s.stopRepo.LoadWindow(start, end)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to load stops: %w", err)
	}

	began := time.Now()
	result := s.engine.Run(snapshots, stops)
	elapsed := time.Since(began)

	attachSummaries(result)

	runID, err := s.resultRepo.SaveRun(result)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to persist results: %w", err)
	}

	s.collector.AnalysisRuns.Inc()
	s.collector.AnalysisDuration.Observe(elapsed.Seconds())
	s.collector.SpeedingEvents.Add(float64(result.Speeding.EventCount))
	s.collector.MatchedArrivals.Add(float64(len(result.Punctuality.Records)))

	s.mu.Lock()
	s.lastResult = result
	s.lastRunID = runID
	s.mu.Unlock()

	log.Printf("[AnalysisService] Run %d completed in %v: %d speeding events, %d matched arrivals",
		runID, elapsed, result.Speeding.EventCount, len(result.Punctuality.Records))
	return result, runID, nil
}

// LatestResult returns the most recent run's result, or nil when no run has
// completed yet
func (s *AnalysisService) LatestResult() (*models.AnalysisResult, int64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastResult, s.lastRunID
}

// attachSummaries derives the headline numbers the reports carry
func attachSummaries(result *models.AnalysisResult) {
	p := result.Punctuality
	summary := &models.PunctualitySummary{
		MatchedVisits:   len(p.Records),
		LateArrivals:    len(p.LateStops),
		MeanLateMinutes: stats.Mean(p.LateTimes),
		P90LateMinutes:  stats.Percentile(p.LateTimes, 90),
	}
	for stopID, count := range p.StopLateCounts {
		// Ties break toward the smaller stop id so repeated runs agree.
		if count > summary.MostLateCount ||
			(count == summary.MostLateCount && summary.MostLateStopID != "" && stopID < summary.MostLateStopID) {
			summary.MostLateCount = count
			summary.MostLateStopID = stopID
		}
	}
	p.Summary = summary

	sp := result.Speeding
	sp.Summary = &models.SpeedingSummary{
		DistinctVehicles: sp.DistinctVehicles(),
		MeanVelocityKmh:  stats.Mean(sp.Velocities),
		P90VelocityKmh:   stats.Percentile(sp.Velocities, 90),
		SpeedingPercent:  stats.Percent(sp.EventCount, sp.MeasuredCount),
		RejectedPercent:  stats.Percent(sp.RejectedCount, sp.MeasuredCount+sp.RejectedCount),
	}
}

// Package collector polls the city open-data API for vehicle positions and
// persists one snapshot per cycle. The analysis engine never touches this
// package; it only sees the stored snapshots.
package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/wawbus/fleet-analytics-go/internal/metrics"
	"github.com/wawbus/fleet-analytics-go/internal/models"
	"github.com/wawbus/fleet-analytics-go/internal/repository"
)

// positionsResponse mirrors the upstream payload shape
type positionsResponse struct {
	Result []struct {
		VehicleNumber string  `json:"VehicleNumber"`
		Lines         string  `json:"Lines"`
		Brigade       string  `json:"Brigade"`
		Lat           float64 `json:"Lat"`
		Lon           float64 `json:"Lon"`
		Time          string  `json:"Time"`
	} `json:"result"`
}

// Collector fetches position snapshots on a fixed interval
type Collector struct {
	url      string
	interval time.Duration
	client   *http.Client
	repo     *repository.SnapshotRepository
	metrics  *metrics.Collector
}

// New creates a collector polling the given prebuilt URL
func New(url string, interval time.Duration, repo *repository.SnapshotRepository, m *metrics.Collector) *Collector {
	return &Collector{
		url:      url,
		interval: interval,
		client:   &http.Client{Timeout: 15 * time.Second},
		repo:     repo,
		metrics:  m,
	}
}

// Run polls until the context is cancelled. A failed cycle is logged and
// counted, never fatal; the next tick tries again.
func (c *Collector) Run(ctx context.Context) {
	log.Printf("[Collector] Polling every %v", c.interval)

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		if err := c.CollectOnce(ctx); err != nil {
			c.metrics.CollectErrors.Inc()
			log.Printf("[Collector] Cycle failed: %v", err)
		}

		select {
		case <-ctx.Done():
			log.Printf("[Collector] Stopped: %v", ctx.Err())
			return
		case <-ticker.C:
		}
	}
}

// CollectOnce fetches and stores a single snapshot
func (c *Collector) CollectOnce(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch positions: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("positions endpoint returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	var payload positionsResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return fmt.Errorf("failed to decode positions payload: %w", err)
	}

	snapshot := models.PositionSnapshot{
		CapturedAt: time.Now().Truncate(time.Second),
		Rows:       make([]models.VehicleRow, 0, len(payload.Result)),
	}
	for _, row := range payload.Result {
		snapshot.Rows = append(snapshot.Rows, models.VehicleRow{
			VehicleID: row.VehicleNumber,
			Line:      row.Lines,
			Brigade:   row.Brigade,
			Lat:       row.Lat,
			Lon:       row.Lon,
			Time:      row.Time,
		})
	}

	if err := c.repo.Save(snapshot); err != nil {
		return fmt.Errorf("failed to store snapshot: %w", err)
	}

	c.metrics.SnapshotsCollected.Inc()
	log.Printf("[Collector] Stored snapshot with %d vehicle rows", len(snapshot.Rows))
	return nil
}

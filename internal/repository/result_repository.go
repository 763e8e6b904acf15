package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/wawbus/fleet-analytics-go/internal/database"
	"github.com/wawbus/fleet-analytics-go/internal/models"
)

// ResultRepository persists derived analysis results per run
type ResultRepository struct {
	db *sql.DB
}

// NewResultRepository creates a new result repository
func NewResultRepository(db *sql.DB) *ResultRepository {
	return &ResultRepository{db: db}
}

// SaveRun persists the events and records of one analysis run under a fresh
// run identifier and returns it
func (r *ResultRepository) SaveRun(result *models.AnalysisResult) (int64, error) {
	runID := time.Now().UnixNano()

	err := database.Transaction(r.db, func(tx *sql.Tx) error {
		eventStmt, err := tx.Prepare(`
			INSERT INTO speeding_events (run_id, vehicle_id, lat, lon, district)
			VALUES (?, ?, ?, ?, ?)
		`)
		if err != nil {
			return fmt.Errorf("failed to prepare event insert: %w", err)
		}
		defer eventStmt.Close()

		for _, event := range result.Speeding.Events {
			if _, err := eventStmt.Exec(runID, event.VehicleID, event.Position.Lat, event.Position.Lon, event.District); err != nil {
				return fmt.Errorf("failed to insert speeding event: %w", err)
			}
		}

		recordStmt, err := tx.Prepare(`
			INSERT INTO arrival_records (run_id, stop_id, district, line, brigade, late_minutes)
			VALUES (?, ?, ?, ?, ?, ?)
		`)
		if err != nil {
			return fmt.Errorf("failed to prepare record insert: %w", err)
		}
		defer recordStmt.Close()

		for _, record := range result.Punctuality.Records {
			if _, err := recordStmt.Exec(runID, record.StopID, record.District, record.Line, record.Brigade, record.LateMinutes); err != nil {
				return fmt.Errorf("failed to insert arrival record: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return runID, nil
}

// LoadSpeedingEvents loads the persisted events of one run
func (r *ResultRepository) LoadSpeedingEvents(runID int64) ([]models.SpeedingEvent, error) {
	rows, err := r.db.Query(`
		SELECT vehicle_id, lat, lon, district FROM speeding_events
		WHERE run_id = ? ORDER BY id
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query speeding events: %w", err)
	}
	defer rows.Close()

	var events []models.SpeedingEvent
	for rows.Next() {
		var event models.SpeedingEvent
		if err := rows.Scan(&event.VehicleID, &event.Position.Lat, &event.Position.Lon, &event.District); err != nil {
			return nil, fmt.Errorf("failed to scan speeding event: %w", err)
		}
		events = append(events, event)
	}

	return events, rows.Err()
}

package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/wawbus/fleet-analytics-go/internal/database"
	"github.com/wawbus/fleet-analytics-go/internal/models"
)

// StopRepository handles database operations for stops and scheduled visits
type StopRepository struct {
	db *sql.DB
}

// NewStopRepository creates a new stop repository
func NewStopRepository(db *sql.DB) *StopRepository {
	return &StopRepository{db: db}
}

// Upsert replaces a stop and its scheduled visits
func (r *StopRepository) Upsert(stop models.Stop) error {
	return database.Transaction(r.db, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`
			INSERT INTO stops (id, lat, lon, district) VALUES (?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET lat = excluded.lat, lon = excluded.lon, district = excluded.district
		`, stop.ID, stop.Lat, stop.Lon, stop.District); err != nil {
			return fmt.Errorf("failed to upsert stop %s: %w", stop.ID, err)
		}

		if _, err := tx.Exec("DELETE FROM scheduled_visits WHERE stop_id = ?", stop.ID); err != nil {
			return fmt.Errorf("failed to clear visits for stop %s: %w", stop.ID, err)
		}

		stmt, err := tx.Prepare(`
			INSERT INTO scheduled_visits (stop_id, line, brigade, expected_arrival)
			VALUES (?, ?, ?, ?)
		`)
		if err != nil {
			return fmt.Errorf("failed to prepare visit insert: %w", err)
		}
		defer stmt.Close()

		for _, visit := range stop.Visits {
			if _, err := stmt.Exec(stop.ID, visit.Line, visit.Brigade, visit.ExpectedArrival.UTC()); err != nil {
				return fmt.Errorf("failed to insert visit for stop %s: %w", stop.ID, err)
			}
		}

		return nil
	})
}

// LoadWindow loads every stop, attaching only the scheduled visits whose
// expected arrival falls inside [start, end]
func (r *StopRepository) LoadWindow(start, end time.Time) ([]models.Stop, error) {
	rows, err := r.db.Query("SELECT id, lat, lon, district FROM stops ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to query stops: %w", err)
	}
	defer rows.Close()

	var stops []models.Stop
	for rows.Next() {
		var stop models.Stop
		if err := rows.Scan(&stop.ID, &stop.Lat, &stop.Lon, &stop.District); err != nil {
			return nil, fmt.Errorf("failed to scan stop: %w", err)
		}
		stops = append(stops, stop)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate stops: %w", err)
	}

	for i := range stops {
		visits, err := r.loadVisits(stops[i].ID, start, end)
		if err != nil {
			return nil, err
		}
		stops[i].Visits = visits
	}

	return stops, nil
}

func (r *StopRepository) loadVisits(stopID string, start, end time.Time) ([]models.ScheduledVisit, error) {
	rows, err := r.db.Query(`
		SELECT line, brigade, expected_arrival FROM scheduled_visits
		WHERE stop_id = ? AND expected_arrival >= ? AND expected_arrival <= ?
		ORDER BY expected_arrival
	`, stopID, start.UTC(), end.UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to query visits for stop %s: %w", stopID, err)
	}
	defer rows.Close()

	var visits []models.ScheduledVisit
	for rows.Next() {
		var visit models.ScheduledVisit
		if err := rows.Scan(&visit.Line, &visit.Brigade, &visit.ExpectedArrival); err != nil {
			return nil, fmt.Errorf("failed to scan visit: %w", err)
		}
		visits = append(visits, visit)
	}

	return visits, rows.Err()
}

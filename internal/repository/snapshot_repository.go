package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/wawbus/fleet-analytics-go/internal/database"
	"github.com/wawbus/fleet-analytics-go/internal/models"
)

// SnapshotRepository handles database operations for position snapshots
type SnapshotRepository struct {
	db *sql.DB
}

// NewSnapshotRepository creates a new snapshot repository
func NewSnapshotRepository(db *sql.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// Save persists one snapshot with all its vehicle rows
func (r *SnapshotRepository) Save(snapshot models.PositionSnapshot) error {
	return database.Transaction(r.db, func(tx *sql.Tx) error {
		result, err := tx.Exec(
			"INSERT INTO snapshots (captured_at) VALUES (?)",
			snapshot.CapturedAt.UTC(),
		)
		if err != nil {
			return fmt.Errorf("failed to insert snapshot: %w", err)
		}

		snapshotID, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get snapshot id: %w", err)
		}

		stmt, err := tx.Prepare(`
			INSERT INTO vehicle_rows (snapshot_id, vehicle_id, line, brigade, lat, lon, raw_time)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`)
		if err != nil {
			return fmt.Errorf("failed to prepare row insert: %w", err)
		}
		defer stmt.Close()

		for _, row := range snapshot.Rows {
			if _, err := stmt.Exec(snapshotID, row.VehicleID, row.Line, row.Brigade, row.Lat, row.Lon, row.Time); err != nil {
				return fmt.Errorf("failed to insert vehicle row: %w", err)
			}
		}

		return nil
	})
}

// LoadWindow loads every snapshot captured inside [start, end], ordered by
// capture time, with its rows attached
func (r *SnapshotRepository) LoadWindow(start, end time.Time) ([]models.PositionSnapshot, error) {
	rows, err := r.db.Query(`
		SELECT id, captured_at FROM snapshots
		WHERE captured_at >= ? AND captured_at <= ?
		ORDER BY captured_at
	`, start.UTC(), end.UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshots: %w", err)
	}
	defer rows.Close()

	var ids []int64
	var snapshots []models.PositionSnapshot

	for rows.Next() {
		var id int64
		var capturedAt time.Time
		if err := rows.Scan(&id, &capturedAt); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot: %w", err)
		}
		ids = append(ids, id)
		snapshots = append(snapshots, models.PositionSnapshot{CapturedAt: capturedAt})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate snapshots: %w", err)
	}

	for i, id := range ids {
		vehicleRows, err := r.loadRows(id)
		if err != nil {
			return nil, err
		}
		snapshots[i].Rows = vehicleRows
	}

	return snapshots, nil
}

func (r *SnapshotRepository) loadRows(snapshotID int64) ([]models.VehicleRow, error) {
	rows, err := r.db.Query(`
		SELECT vehicle_id, line, brigade, lat, lon, raw_time
		FROM vehicle_rows WHERE snapshot_id = ? ORDER BY id
	`, snapshotID)
	if err != nil {
		return nil, fmt.Errorf("failed to query vehicle rows: %w", err)
	}
	defer rows.Close()

	var result []models.VehicleRow
	for rows.Next() {
		var row models.VehicleRow
		if err := rows.Scan(&row.VehicleID, &row.Line, &row.Brigade, &row.Lat, &row.Lon, &row.Time); err != nil {
			return nil, fmt.Errorf("failed to scan vehicle row: %w", err)
		}
		result = append(result, row)
	}

	return result, rows.Err()
}

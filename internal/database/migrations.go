package database

import (
	"database/sql"
	"fmt"
	"log"
)

// Migration represents one schema change
type Migration struct {
	Version int
	Name    string
	SQL     string
}

// The schema is small enough to ship with the binary instead of a
// migrations directory.
var migrations = []Migration{
	{
		Version: 1,
		Name:    "create_snapshots",
		SQL: `
			CREATE TABLE IF NOT EXISTS snapshots (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				captured_at TIMESTAMP NOT NULL UNIQUE,
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			);
			CREATE TABLE IF NOT EXISTS vehicle_rows (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				snapshot_id INTEGER NOT NULL REFERENCES snapshots(id) ON DELETE CASCADE,
				vehicle_id TEXT NOT NULL,
				line TEXT NOT NULL,
				brigade TEXT NOT NULL,
				lat REAL NOT NULL,
				lon REAL NOT NULL,
				raw_time TEXT NOT NULL
			);
			CREATE INDEX IF NOT EXISTS idx_vehicle_rows_snapshot ON vehicle_rows(snapshot_id);
		`,
	},
	{
		Version: 2,
		Name:    "create_stops",
		SQL: `
			CREATE TABLE IF NOT EXISTS stops (
				id TEXT PRIMARY KEY,
				lat REAL NOT NULL,
				lon REAL NOT NULL,
				district TEXT NOT NULL DEFAULT ''
			);
			CREATE TABLE IF NOT EXISTS scheduled_visits (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				stop_id TEXT NOT NULL REFERENCES stops(id) ON DELETE CASCADE,
				line TEXT NOT NULL,
				brigade TEXT NOT NULL,
				expected_arrival TIMESTAMP NOT NULL
			);
			CREATE INDEX IF NOT EXISTS idx_scheduled_visits_stop ON scheduled_visits(stop_id);
		`,
	},
	{
		Version: 3,
		Name:    "create_results",
		SQL: `
			CREATE TABLE IF NOT EXISTS speeding_events (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				run_id INTEGER NOT NULL,
				vehicle_id TEXT NOT NULL,
				lat REAL NOT NULL,
				lon REAL NOT NULL,
				district TEXT NOT NULL DEFAULT '',
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			);
			CREATE TABLE IF NOT EXISTS arrival_records (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				run_id INTEGER NOT NULL,
				stop_id TEXT NOT NULL,
				district TEXT NOT NULL DEFAULT '',
				line TEXT NOT NULL,
				brigade TEXT NOT NULL,
				late_minutes REAL NOT NULL,
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			);
			CREATE INDEX IF NOT EXISTS idx_speeding_events_run ON speeding_events(run_id);
			CREATE INDEX IF NOT EXISTS idx_arrival_records_run ON arrival_records(run_id);
		`,
	},
}

// Migrate applies any pending migrations in version order
func Migrate(db *sql.DB) error {
	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS migrations (
			version INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	applied := make(map[int]bool)
	rows, err := db.Query("SELECT version FROM migrations ORDER BY version")
	if err != nil {
		return fmt.Errorf("failed to query migrations: %w", err)
	}
	for rows.Next() {
		var version int
		if err := rows.Scan(&version); err != nil {
			rows.Close()
			return fmt.Errorf("failed to scan migration version: %w", err)
		}
		applied[version] = true
	}
	rows.Close()

	for _, m := range migrations {
		if applied[m.Version] {
			continue
		}

		if _, err := db.Exec(m.SQL); err != nil {
			return fmt.Errorf("failed to apply migration %d (%s): %w", m.Version, m.Name, err)
		}
		if _, err := db.Exec("INSERT INTO migrations (version, name) VALUES (?, ?)", m.Version, m.Name); err != nil {
			return fmt.Errorf("failed to record migration %d: %w", m.Version, err)
		}

		log.Printf("[Database] Applied migration %d: %s", m.Version, m.Name)
	}

	return nil
}

// Package sqlite is the embedded-database backend for the estimate store,
// for deployments that have outgrown the whole-file JSON snapshot.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// currentSchemaVersion is the latest schema version. Bump when adding
// migrations.
const currentSchemaVersion = 1

// Open initializes the SQLite database at the given path, creating the parent
// directory and running migrations as needed.
func Open(path string) (*sql.DB, error) {
	dir := filepath.Dir(path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	dsn := path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func migrate(db *sql.DB) error {
	var version int
	if err := db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	if version < 1 {
		schema := `
		CREATE TABLE IF NOT EXISTS estimate_requests (
		  id                 TEXT PRIMARY KEY,
		  created_at         TEXT NOT NULL,
		  is_new             INTEGER NOT NULL DEFAULT 1,
		  full_name          TEXT NOT NULL,
		  phone              TEXT,
		  email              TEXT,
		  address            TEXT NOT NULL,
		  rooms              INTEGER NOT NULL,
		  bathrooms          INTEGER NOT NULL,
		  service_type       TEXT NOT NULL,
		  service_type_label TEXT NOT NULL,
		  addon_areas        TEXT NOT NULL DEFAULT '[]',
		  other_area_text    TEXT,
		  preferred_date     TEXT,
		  preferred_time     TEXT,
		  notes              TEXT,
		  quote              TEXT
		);
		CREATE INDEX IF NOT EXISTS idx_estimate_requests_created_at
		  ON estimate_requests(created_at DESC);
		`
		if _, err := db.Exec(schema); err != nil {
			return fmt.Errorf("failed to apply schema v1: %w", err)
		}
	}

	if version != currentSchemaVersion {
		if _, err := db.Exec(fmt.Sprintf("PRAGMA user_version = %d", currentSchemaVersion)); err != nil {
			return fmt.Errorf("failed to set schema version: %w", err)
		}
	}
	return nil
}

package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// InitDB opens/creates a SQLite DB file and ensures tables exist.
func InitDB(path string) (*sql.DB, error) {
	db, err := sql.Open(sqliteDriverName, path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite at %q: %w", path, err)
	}

	// SQLite serialises writers anyway
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("set %s: %w", pragma, err)
		}
	}

	if err := EnsureSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	return db, nil
}

const sqliteDriverName = "sqlite"

var pragmas = []string{
	"PRAGMA journal_mode = WAL;",
	"PRAGMA foreign_keys = ON;",
	"PRAGMA busy_timeout = 5000;",
}

// Timestamps are stored as zone-naive UTC text ("2006-01-02 15:04:05") so
// that range predicates compare lexically, as in the warehouse export.
const schemaAlertCases = `
CREATE TABLE IF NOT EXISTS alert_cases (
    case_id TEXT PRIMARY KEY,
    system_id TEXT NOT NULL,
    system_name TEXT NOT NULL,
    agency_id TEXT NOT NULL DEFAULT '',
    agency_name TEXT NOT NULL DEFAULT '',
    body_type TEXT NOT NULL,
    issue_type TEXT NOT NULL,
    status TEXT NOT NULL DEFAULT 'open',
    notes TEXT,
    resolved_reason TEXT,
    opened_at TIMESTAMP NOT NULL,
    resolved_at TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_alert_cases_opened_at ON alert_cases (opened_at DESC);
CREATE INDEX IF NOT EXISTS idx_alert_cases_system_status ON alert_cases (system_id, status);
`

const schemaPoolSnapshots = `
CREATE TABLE IF NOT EXISTS pool_snapshots (
    system_id TEXT NOT NULL,
    snapshot_ts TIMESTAMP NOT NULL,
    air_temp REAL,
    pool_temp REAL,
    spa_temp REAL,
    set_point_pool REAL,
    set_point_spa REAL,
    pool_heater INTEGER,
    spa_heater INTEGER,
    filter_pump INTEGER,
    spa_pump INTEGER,
    service_mode BOOLEAN,
    PRIMARY KEY (system_id, snapshot_ts)
);
`

const schemaCaseActivity = `
CREATE TABLE IF NOT EXISTS case_activity (
    id TEXT PRIMARY KEY,
    occurred_at TIMESTAMP NOT NULL,
    type TEXT NOT NULL,
    case_id TEXT NOT NULL,
    actor TEXT NOT NULL,
    message TEXT NOT NULL,
    meta TEXT
);
CREATE INDEX IF NOT EXISTS idx_case_activity_occurred_at ON case_activity (occurred_at);
`

const schemaUsers = `
CREATE TABLE IF NOT EXISTS users (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    username TEXT UNIQUE NOT NULL,
    password_hash TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

// EnsureSchema creates missing tables and indexes in one transaction.
func EnsureSchema(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin schema transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for i, stmt := range []string{
		schemaAlertCases,
		schemaPoolSnapshots,
		schemaCaseActivity,
		schemaUsers,
	} {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("apply schema statement %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema transaction: %w", err)
	}
	return nil
}

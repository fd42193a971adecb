package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"alerts_review/internal/models"
)

type SnapshotSQLite struct {
	db *sql.DB
}

func NewSnapshotSQLite(db *sql.DB) *SnapshotSQLite {
	return &SnapshotSQLite{db: db}
}

var _ SnapshotRepo = (*SnapshotSQLite)(nil)

const (
	snapshotColumns = `snapshot_ts, air_temp, pool_temp, spa_temp, set_point_pool, set_point_spa, pool_heater, spa_heater, filter_pump, spa_pump, service_mode`

	listSnapshotsSQL = `SELECT ` + snapshotColumns + ` FROM pool_snapshots
		WHERE system_id = ? AND snapshot_ts BETWEEN ? AND ?
		ORDER BY snapshot_ts ASC`

	latestSnapshotSQL = `SELECT ` + snapshotColumns + ` FROM pool_snapshots
		WHERE system_id = ?
		ORDER BY snapshot_ts DESC LIMIT 1`

	insertSnapshotSQL = `
		INSERT INTO pool_snapshots (system_id, ` + snapshotColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(system_id, snapshot_ts) DO NOTHING
	`
)

// ListBySystem returns the snapshots of systemID with from <= ts <= to,
// oldest first.
func (r *SnapshotSQLite) ListBySystem(ctx context.Context, systemID string, from, to time.Time) ([]models.Snapshot, error) {
	rows, err := r.db.QueryContext(ctx, listSnapshotsSQL, systemID, formatTS(from), formatTS(to))
	if err != nil {
		return nil, fmt.Errorf("list snapshots for %q: %w", systemID, err)
	}
	defer rows.Close()

	out := make([]models.Snapshot, 0, 128)
	for rows.Next() {
		s, err := scanSnapshot(rows)
		if err != nil {
			return nil, fmt.Errorf("scan snapshot for %q: %w", systemID, err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate snapshots for %q: %w", systemID, err)
	}
	return out, nil
}

// Latest returns the newest snapshot of systemID, or nil when there is none.
func (r *SnapshotSQLite) Latest(ctx context.Context, systemID string) (*models.Snapshot, error) {
	s, err := scanSnapshot(r.db.QueryRowContext(ctx, latestSnapshotSQL, systemID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select latest snapshot for %q: %w", systemID, err)
	}
	return &s, nil
}

// Append stores s. A second reading with the same timestamp is ignored.
func (r *SnapshotSQLite) Append(ctx context.Context, systemID string, s models.Snapshot) error {
	ts := s.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	_, err := r.db.ExecContext(ctx, insertSnapshotSQL,
		systemID,
		formatTS(ts),
		nullFloat(s.AirTemp),
		nullFloat(s.PoolTemp),
		nullFloat(s.SpaTemp),
		nullFloat(s.SetPointPool),
		nullFloat(s.SetPointSpa),
		int(s.PoolHeater),
		int(s.SpaHeater),
		int(s.FilterPump),
		int(s.SpaPump),
		s.ServiceMode,
	)
	if err != nil {
		return fmt.Errorf("insert snapshot for %q: %w", systemID, err)
	}
	return nil
}

func scanSnapshot(row rowScanner) (models.Snapshot, error) {
	var (
		s                         models.Snapshot
		ts                        storeTime
		air, pool, spa, spP, spS  sql.NullFloat64
		poolHtr, spaHtr, flt, spp sql.NullInt64
		service                   sql.NullBool
	)
	if err := row.Scan(&ts, &air, &pool, &spa, &spP, &spS, &poolHtr, &spaHtr, &flt, &spp, &service); err != nil {
		return models.Snapshot{}, err
	}

	s.Timestamp = ts.Time
	s.AirTemp = floatPtr(air)
	s.PoolTemp = floatPtr(pool)
	s.SpaTemp = floatPtr(spa)
	s.SetPointPool = floatPtr(spP)
	s.SetPointSpa = floatPtr(spS)
	s.PoolHeater = models.HeaterState(poolHtr.Int64)
	s.SpaHeater = models.HeaterState(spaHtr.Int64)
	s.FilterPump = models.PumpState(flt.Int64)
	s.SpaPump = models.PumpState(spp.Int64)
	s.ServiceMode = service.Valid && service.Bool
	return s, nil
}

func floatPtr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

func nullFloat(p *float64) any {
	if p == nil {
		return nil
	}
	return *p
}

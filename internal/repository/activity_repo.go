package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"alerts_review/internal/models"

	"github.com/google/uuid"
)

type ActivitySQLite struct {
	db *sql.DB
}

func NewActivitySQLite(db *sql.DB) *ActivitySQLite { return &ActivitySQLite{db: db} }

var _ ActivityRepo = (*ActivitySQLite)(nil)

const (
	insertActivitySQL = `
		INSERT INTO case_activity (id, occurred_at, type, case_id, actor, message, meta)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	selectActivitySQL = `SELECT id, occurred_at, type, case_id, actor, message, meta FROM case_activity`
)

// Append inserts a new activity entry. If ActivityID or OccurredAt are empty, they're set.
func (r *ActivitySQLite) Append(ctx context.Context, a models.Activity) error {
	if a.ActivityID == "" {
		a.ActivityID = uuid.NewString()
	}
	if a.OccurredAt.IsZero() {
		a.OccurredAt = time.Now()
	}

	var metaPtr *string
	if a.Metadata != nil {
		if b, err := json.Marshal(a.Metadata); err == nil {
			s := string(b)
			metaPtr = &s
		}
	}

	_, err := r.db.ExecContext(ctx, insertActivitySQL,
		a.ActivityID,
		formatTS(a.OccurredAt),
		strings.ToUpper(strings.TrimSpace(a.Type)),
		a.CaseID,
		a.Actor,
		a.Description,
		metaPtr,
	)
	if err != nil {
		return fmt.Errorf("insert activity for case %q: %w", a.CaseID, err)
	}
	return nil
}

// List returns entries filtered by [from, to] (inclusive), type and case, ordered ASC.
func (r *ActivitySQLite) List(ctx context.Context, from, to time.Time, typ, caseID string) ([]models.Activity, error) {
	var (
		conds []string
		args  []any
	)

	if !from.IsZero() {
		conds = append(conds, "occurred_at >= ?")
		args = append(args, formatTS(from))
	}
	if !to.IsZero() {
		conds = append(conds, "occurred_at <= ?")
		args = append(args, formatTS(to))
	}
	if typ = strings.ToUpper(strings.TrimSpace(typ)); typ != "" {
		conds = append(conds, "type = ?")
		args = append(args, typ)
	}
	if caseID = strings.TrimSpace(caseID); caseID != "" {
		conds = append(conds, "case_id = ?")
		args = append(args, caseID)
	}

	q := selectActivitySQL
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	q += " ORDER BY occurred_at ASC"

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list activity: %w", err)
	}
	defer rows.Close()

	out := make([]models.Activity, 0, 64)
	for rows.Next() {
		var (
			a       models.Activity
			at      storeTime
			metaStr sql.NullString
		)
		if err := rows.Scan(&a.ActivityID, &at, &a.Type, &a.CaseID, &a.Actor, &a.Description, &metaStr); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		a.OccurredAt = at.Time

		if metaStr.Valid && metaStr.String != "" {
			var v any
			if err := json.Unmarshal([]byte(metaStr.String), &v); err == nil {
				a.Metadata = v
			} else {
				a.Metadata = metaStr.String // keep raw if malformed
			}
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate activity: %w", err)
	}
	return out, nil
}

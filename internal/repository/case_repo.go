package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"alerts_review/internal/models"
)

type CaseSQLite struct {
	db *sql.DB
}

func NewCaseSQLite(db *sql.DB) *CaseSQLite {
	return &CaseSQLite{db: db}
}

var _ CaseRepo = (*CaseSQLite)(nil)

const (
	caseColumns = `case_id, system_id, system_name, agency_id, agency_name, body_type, issue_type, status, notes, resolved_reason, opened_at, resolved_at`

	countCasesSQL = `SELECT COUNT(*) FROM alert_cases`

	listCasesSQL = `SELECT ` + caseColumns + ` FROM alert_cases ORDER BY opened_at DESC LIMIT ?`

	selectCaseSQL = `SELECT ` + caseColumns + ` FROM alert_cases WHERE case_id = ?`

	// notes is a JSON array; '$[#]' appends past the last element.
	appendNoteSQL = `
		UPDATE alert_cases
		SET notes = json_insert(COALESCE(notes, '[]'), '$[#]', json(?))
		WHERE case_id = ? AND status = 'open'
	`

	closeCaseSQL = `
		UPDATE alert_cases
		SET status = ?,
			resolved_at = ?,
			resolved_reason = ?,
			notes = json_insert(COALESCE(notes, '[]'), '$[#]', json(?))
		WHERE case_id = ? AND status = 'open'
	`

	listOpenSystemsSQL = `
		SELECT DISTINCT system_id FROM alert_cases
		WHERE status = 'open' AND body_type = ?
		ORDER BY system_id
	`
)

// DefaultListLimit caps List when the caller passes a non-positive limit.
const DefaultListLimit = 500

// Count returns the number of cases in the store.
func (r *CaseSQLite) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, countCasesSQL).Scan(&n); err != nil {
		return 0, fmt.Errorf("count cases: %w", err)
	}
	return n, nil
}

// List returns up to limit cases, newest first.
func (r *CaseSQLite) List(ctx context.Context, limit int) ([]models.Case, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}

	rows, err := r.db.QueryContext(ctx, listCasesSQL, limit)
	if err != nil {
		return nil, fmt.Errorf("list cases: %w", err)
	}
	defer rows.Close()

	out := make([]models.Case, 0, 64)
	for rows.Next() {
		c, err := scanCase(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cases: %w", err)
	}
	return out, nil
}

// Get fetches one case. Returns (nil, nil) if not found.
func (r *CaseSQLite) Get(ctx context.Context, caseID string) (*models.Case, error) {
	c, err := scanCase(r.db.QueryRowContext(ctx, selectCaseSQL, caseID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select case %q: %w", caseID, err)
	}
	return c, nil
}

// AppendNote adds note to an open case. It reports false when no open case
// with that id exists.
func (r *CaseSQLite) AppendNote(ctx context.Context, caseID string, note models.Note) (bool, error) {
	noteJSON, err := marshalNote(note)
	if err != nil {
		return false, err
	}
	res, err := r.db.ExecContext(ctx, appendNoteSQL, noteJSON, caseID)
	if err != nil {
		return false, fmt.Errorf("append note to case %q: %w", caseID, err)
	}
	return affected(res, caseID)
}

// Resolve closes an open case as resolved and records the resolution note.
func (r *CaseSQLite) Resolve(ctx context.Context, caseID, reason string, at time.Time, note models.Note) (bool, error) {
	return r.close(ctx, models.StatusResolved, caseID, reason, at, note)
}

// Suppress closes an open case as suppressed and records the suppression note.
func (r *CaseSQLite) Suppress(ctx context.Context, caseID, reason string, at time.Time, note models.Note) (bool, error) {
	return r.close(ctx, models.StatusSuppressed, caseID, reason, at, note)
}

func (r *CaseSQLite) close(ctx context.Context, status, caseID, reason string, at time.Time, note models.Note) (bool, error) {
	noteJSON, err := marshalNote(note)
	if err != nil {
		return false, err
	}
	res, err := r.db.ExecContext(ctx, closeCaseSQL, status, formatTS(at), reason, noteJSON, caseID)
	if err != nil {
		return false, fmt.Errorf("set case %q %s: %w", caseID, status, err)
	}
	return affected(res, caseID)
}

// ListOpenSystems returns the distinct systems with an open case on body.
func (r *CaseSQLite) ListOpenSystems(ctx context.Context, body models.BodyType) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, listOpenSystemsSQL, string(body))
	if err != nil {
		return nil, fmt.Errorf("list open systems: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan system id: %w", err)
		}
		out = append(out, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate open systems: %w", err)
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCase(row rowScanner) (*models.Case, error) {
	var (
		c          models.Case
		body       string
		notesJSON  sql.NullString
		reason     sql.NullString
		openedAt   storeTime
		resolvedAt storeTime
	)
	if err := row.Scan(
		&c.CaseID,
		&c.SystemID,
		&c.SystemName,
		&c.AgencyID,
		&c.AgencyName,
		&body,
		&c.IssueType,
		&c.Status,
		&notesJSON,
		&reason,
		&openedAt,
		&resolvedAt,
	); err != nil {
		return nil, err
	}

	c.BodyType = models.BodyType(body)
	c.OpenedAt = openedAt.Time
	c.ResolvedAt = resolvedAt.ptr()
	if reason.Valid {
		s := reason.String
		c.ResolvedReason = &s
	}

	notes, err := unmarshalNotes(notesJSON)
	if err != nil {
		return nil, fmt.Errorf("decode notes for case %q: %w", c.CaseID, err)
	}
	c.Notes = notes
	return &c, nil
}

func marshalNote(n models.Note) (string, error) {
	n.CreatedAt = n.CreatedAt.UTC()
	b, err := json.Marshal(n)
	if err != nil {
		return "", fmt.Errorf("encode note: %w", err)
	}
	return string(b), nil
}

// unmarshalNotes never returns a nil slice so responses carry [] not null.
func unmarshalNotes(s sql.NullString) ([]models.Note, error) {
	notes := []models.Note{}
	if !s.Valid || s.String == "" {
		return notes, nil
	}
	if err := json.Unmarshal([]byte(s.String), &notes); err != nil {
		return nil, err
	}
	if notes == nil {
		notes = []models.Note{}
	}
	return notes, nil
}

func affected(res sql.Result, caseID string) (bool, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected for case %q: %w", caseID, err)
	}
	return n > 0, nil
}

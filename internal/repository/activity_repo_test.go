package repository

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"alerts_review/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
)

var activityCols = []string{"id", "occurred_at", "type", "case_id", "actor", "message", "meta"}

func TestActivityAppend_Success_WithDefaults(t *testing.T) {
	t.Parallel()
	db, mock := newSQLMock(t)
	repo := NewActivitySQLite(db)

	mock.ExpectExec(regexp.QuoteMeta(insertActivitySQL)).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(),
			models.ActivityNoteAdded, "c1", "ana", "note added",
			`{"note_id":"n1"}`,
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Append(ctx(t), models.Activity{
		Type:        "  note_added ",
		CaseID:      "c1",
		Actor:       "ana",
		Description: "note added",
		Metadata:    map[string]any{"note_id": "n1"},
	})
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
}

func TestActivityAppend_DBError(t *testing.T) {
	t.Parallel()
	db, mock := newSQLMock(t)
	repo := NewActivitySQLite(db)

	mock.ExpectExec("INSERT INTO case_activity").WillReturnError(errors.New("down"))

	err := repo.Append(ctx(t), models.Activity{Type: models.ActivityCaseResolved, CaseID: "c1"})
	if err == nil || !strings.Contains(err.Error(), "down") {
		t.Fatalf("expected error, got %v", err)
	}
}

func TestActivityList_NoFilters_And_MetadataParsing(t *testing.T) {
	t.Parallel()
	db, mock := newSQLMock(t)
	repo := NewActivitySQLite(db)

	js, _ := json.Marshal(map[string]any{"reason": "duplicate"})
	rows := sqlmock.NewRows(activityCols).
		AddRow("1", "2025-01-01 10:00:00", models.ActivityCaseSuppressed, "c1", "ana", "suppressed", string(js)).
		AddRow("2", "2025-01-01 11:00:00", models.ActivityNoteAdded, "c2", "bo", "note", nil).
		AddRow("3", "2025-01-01 12:00:00", models.ActivityNoteAdded, "c2", "bo", "note", "{oops")

	mock.ExpectQuery(regexp.QuoteMeta(selectActivitySQL + ` ORDER BY occurred_at ASC`)).
		WillReturnRows(rows)

	got, err := repo.List(ctx(t), time.Time{}, time.Time{}, "", "")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("want 3, got %d", len(got))
	}
	b1, _ := json.Marshal(got[0].Metadata)
	if string(b1) != string(js) {
		t.Fatalf("metadata mismatch: %s vs %s", b1, js)
	}
	if got[1].Metadata != nil {
		t.Fatalf("expected nil meta, got %#v", got[1].Metadata)
	}
	if got[2].Metadata != "{oops" {
		t.Fatalf("malformed meta should be kept raw, got %#v", got[2].Metadata)
	}
	if !got[0].OccurredAt.Equal(time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)) {
		t.Fatalf("occurred_at = %v", got[0].OccurredAt)
	}
}

func TestActivityList_WithFilters_OrderAndArgs(t *testing.T) {
	t.Parallel()
	db, mock := newSQLMock(t)
	repo := NewActivitySQLite(db)

	from := time.Date(2025, 1, 1, 11, 0, 0, 0, time.UTC)
	to := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	query := selectActivitySQL + ` WHERE occurred_at >= ? AND occurred_at <= ? AND type = ? AND case_id = ? ORDER BY occurred_at ASC`

	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs("2025-01-01 11:00:00", "2025-01-01 12:00:00", models.ActivityCaseResolved, "c9").
		WillReturnRows(sqlmock.NewRows(activityCols).
			AddRow("5", "2025-01-01 11:30:00", models.ActivityCaseResolved, "c9", "ana", "resolved", nil))

	got, err := repo.List(ctx(t), from, to, " case_resolved ", " c9 ")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 1 || got[0].ActivityID != "5" {
		t.Fatalf("unexpected results: %+v", got)
	}
}

func TestActivityList_ScanError(t *testing.T) {
	t.Parallel()
	db, mock := newSQLMock(t)
	repo := NewActivitySQLite(db)

	rows := sqlmock.NewRows(activityCols).
		AddRow("x", 3.5, "NOTE_ADDED", "c1", "a", "msg", nil)

	mock.ExpectQuery(regexp.QuoteMeta(selectActivitySQL)).WillReturnRows(rows)

	if _, err := repo.List(ctx(t), time.Time{}, time.Time{}, "", ""); err == nil {
		t.Fatalf("expected scan error")
	}
}

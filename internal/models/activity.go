package models

import "time"

// Activity types.
const (
	ActivityNoteAdded      = "NOTE_ADDED"
	ActivityCaseResolved   = "CASE_RESOLVED"
	ActivityCaseSuppressed = "CASE_SUPPRESSED"
)

// Activity is a single review audit entry.
type Activity struct {
	ActivityID  string    `json:"activity_id"`
	OccurredAt  time.Time `json:"occurred_at"`
	Type        string    `json:"type"` // NOTE_ADDED | CASE_RESOLVED | CASE_SUPPRESSED
	CaseID      string    `json:"case_id"`
	Actor       string    `json:"actor"`
	Description string    `json:"description"`
	Metadata    any       `json:"metadata,omitempty"`
}

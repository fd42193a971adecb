package service

import (
	"time"

	"alerts_review/internal/heating"
	"alerts_review/internal/models"
	"alerts_review/internal/view"
)

// CaseFilter selects the case list tab and, optionally, one agency.
type CaseFilter struct {
	Tab      string // "", "open", "resolved", "suppressed", "all"; empty means open
	AgencyID string // empty means every agency
}

// CaseList is the filtered list plus the per-tab counts for the same agency.
type CaseList struct {
	Cases  []models.Case  `json:"cases"`
	Counts view.TabCounts `json:"counts"`
}

// ActivityFilter supports history filtering by time range, type and case.
type ActivityFilter struct {
	From   time.Time // inclusive; zero means no lower bound
	To     time.Time // inclusive; zero means no upper bound
	Type   string    // "", "NOTE_ADDED", "CASE_RESOLVED", "CASE_SUPPRESSED"
	CaseID string
}

// CaseReview is everything the case detail view renders.
type CaseReview struct {
	Case                models.Case        `json:"case"`
	Columns             []string           `json:"columns"`
	Rows                []view.Row         `json:"rows"`
	Snapshots           []models.Snapshot  `json:"snapshots"`
	SlowHeatingDetected bool               `json:"slow_heating_detected"`
	Assessment          heating.Assessment `json:"assessment"`
	Banner              string             `json:"banner,omitempty"`
}

// Principal is the authenticated reviewer behind a token.
type Principal struct {
	UserID   int
	Username string
}

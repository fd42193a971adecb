package models

import "time"

// Case statuses.
const (
	StatusOpen       = "open"
	StatusResolved   = "resolved"
	StatusSuppressed = "suppressed"
)

// BodyType is the vessel a case or system concerns.
type BodyType string

const (
	BodyPool BodyType = "pool"
	BodySpa  BodyType = "spa"
)

// Case is a tracked alert for one pool or spa system.
type Case struct {
	CaseID         string     `json:"case_id"`
	SystemID       string     `json:"system_id"`
	SystemName     string     `json:"system_name"`
	AgencyID       string     `json:"agency_id"`
	AgencyName     string     `json:"agency_name"`
	BodyType       BodyType   `json:"body_type"`
	IssueType      string     `json:"issue_type"`
	Status         string     `json:"status"` // open | resolved | suppressed
	Notes          []Note     `json:"notes"`
	ResolvedReason *string    `json:"resolved_reason,omitempty"`
	OpenedAt       time.Time  `json:"opened_at"`
	ResolvedAt     *time.Time `json:"resolved_at,omitempty"`
	MinutesOpen    int        `json:"minutes_open"`
}

// IsOpen reports whether the case still accepts notes and status changes.
func (c Case) IsOpen() bool { return c.Status == StatusOpen }

// WindowEnd is resolved_at for closed cases and now otherwise.
func (c Case) WindowEnd(now time.Time) time.Time {
	if c.ResolvedAt != nil && !c.ResolvedAt.IsZero() {
		return c.ResolvedAt.UTC()
	}
	return now.UTC()
}

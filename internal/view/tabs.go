package view

import (
	"alerts_review/internal/models"
)

// Tabs of the case list.
const (
	TabOpen       = "open"
	TabResolved   = "resolved"
	TabSuppressed = "suppressed"
	TabAll        = "all"
)

// ValidTab reports whether tab names a known tab. Empty counts as TabOpen.
func ValidTab(tab string) bool {
	switch tab {
	case "", TabOpen, TabResolved, TabSuppressed, TabAll:
		return true
	}
	return false
}

// TabCounts is the badge count per tab.
type TabCounts struct {
	Open       int `json:"open"`
	Resolved   int `json:"resolved"`
	Suppressed int `json:"suppressed"`
	All        int `json:"all"`
}

// FilterCases keeps the cases of agencyID (any agency when empty) that
// belong to tab, preserving order.
func FilterCases(cases []models.Case, tab, agencyID string) []models.Case {
	if tab == "" {
		tab = TabOpen
	}
	out := make([]models.Case, 0, len(cases))
	for _, c := range cases {
		if agencyID != "" && c.AgencyID != agencyID {
			continue
		}
		if tab != TabAll && c.Status != tab {
			continue
		}
		out = append(out, c)
	}
	return out
}

// CountByStatus counts the cases of agencyID (any agency when empty).
func CountByStatus(cases []models.Case, agencyID string) TabCounts {
	var tc TabCounts
	for _, c := range cases {
		if agencyID != "" && c.AgencyID != agencyID {
			continue
		}
		tc.All++
		switch c.Status {
		case models.StatusOpen:
			tc.Open++
		case models.StatusResolved:
			tc.Resolved++
		case models.StatusSuppressed:
			tc.Suppressed++
		}
	}
	return tc
}

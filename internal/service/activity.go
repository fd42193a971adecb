package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"alerts_review/internal/models"
	"alerts_review/internal/repository"
)

type ActivityLogService struct {
	activityRepo repository.ActivityRepo
}

func NewActivityLogService(activityRepo repository.ActivityRepo) *ActivityLogService {
	return &ActivityLogService{activityRepo: activityRepo}
}

var (
	ErrInvalidTimeRange    = errors.New("invalid time range: from must be <= to")
	ErrInvalidActivityType = errors.New("invalid type: must be NOTE_ADDED, CASE_RESOLVED or CASE_SUPPRESSED")
)

// normalizeToUTC returns t in UTC, preserving zero time values.
func normalizeToUTC(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.UTC()
}

// normalizeActivityType trims spaces and uppercases the type filter.
func normalizeActivityType(s string) string {
	return strings.TrimSpace(strings.ToUpper(s))
}

func validActivityType(s string) bool {
	switch s {
	case "", models.ActivityNoteAdded, models.ActivityCaseResolved, models.ActivityCaseSuppressed:
		return true
	}
	return false
}

// normalizeAndValidateFilter prepares query parameters and validates the time range.
func normalizeAndValidateFilter(f ActivityFilter) (ActivityFilter, error) {
	out := ActivityFilter{
		From:   normalizeToUTC(f.From),
		To:     normalizeToUTC(f.To),
		Type:   normalizeActivityType(f.Type),
		CaseID: strings.TrimSpace(f.CaseID),
	}
	if !out.From.IsZero() && !out.To.IsZero() && out.From.After(out.To) {
		return ActivityFilter{}, ErrInvalidTimeRange
	}
	if !validActivityType(out.Type) {
		return ActivityFilter{}, ErrInvalidActivityType
	}
	return out, nil
}

func (s *ActivityLogService) List(ctx context.Context, f ActivityFilter) ([]models.Activity, error) {
	nf, err := normalizeAndValidateFilter(f)
	if err != nil {
		return nil, err
	}
	return s.activityRepo.List(ctx, nf.From, nf.To, nf.Type, nf.CaseID)
}

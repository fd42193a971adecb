package service

import (
	"context"
	"time"

	"alerts_review/internal/models"
	"alerts_review/internal/repository"
)

// DefaultWindowPadding widens a case's window on both sides.
const DefaultWindowPadding = 2 * time.Hour

type SnapshotService struct {
	caseRepo     repository.CaseRepo
	snapshotRepo repository.SnapshotRepo
	padding      time.Duration
	now          func() time.Time
}

func NewSnapshotService(caseRepo repository.CaseRepo, snapshotRepo repository.SnapshotRepo, padding time.Duration) *SnapshotService {
	if padding < 0 {
		padding = DefaultWindowPadding
	}
	return &SnapshotService{
		caseRepo:     caseRepo,
		snapshotRepo: snapshotRepo,
		padding:      padding,
		now:          time.Now,
	}
}

// ForCase returns the telemetry of the case's system inside its window.
func (s *SnapshotService) ForCase(ctx context.Context, caseID string) ([]models.Snapshot, error) {
	c, err := s.caseRepo.Get(ctx, caseID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCaseNotFound
	}
	return s.Series(ctx, *c)
}

// Series returns the snapshots of c's system between opened_at - padding
// and (resolved_at or now) + padding, oldest first.
func (s *SnapshotService) Series(ctx context.Context, c models.Case) ([]models.Snapshot, error) {
	from, to := s.Window(c)
	return s.snapshotRepo.ListBySystem(ctx, c.SystemID, from, to)
}

// Window is the padded, inclusive UTC range of c.
func (s *SnapshotService) Window(c models.Case) (time.Time, time.Time) {
	from := c.OpenedAt.UTC().Add(-s.padding)
	to := c.WindowEnd(s.now()).Add(s.padding)
	return from, to
}

package service

import (
	"context"
	"sort"
	"time"

	"alerts_review/internal/models"
)

// memCaseRepo is an in-memory repository.CaseRepo.
type memCaseRepo struct {
	cases   map[string]*models.Case
	order   []string
	err     error
	systems []string
}

func newMemCaseRepo(cs ...models.Case) *memCaseRepo {
	r := &memCaseRepo{cases: map[string]*models.Case{}}
	for _, c := range cs {
		c := c
		if c.Notes == nil {
			c.Notes = []models.Note{}
		}
		r.cases[c.CaseID] = &c
		r.order = append(r.order, c.CaseID)
	}
	return r
}

func (r *memCaseRepo) Count(ctx context.Context) (int, error) {
	return len(r.cases), r.err
}

func (r *memCaseRepo) List(ctx context.Context, limit int) ([]models.Case, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]models.Case, 0, len(r.order))
	for _, id := range r.order {
		if len(out) == limit {
			break
		}
		out = append(out, *r.cases[id])
	}
	return out, nil
}

func (r *memCaseRepo) Get(ctx context.Context, caseID string) (*models.Case, error) {
	if r.err != nil {
		return nil, r.err
	}
	c, ok := r.cases[caseID]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *memCaseRepo) AppendNote(ctx context.Context, caseID string, note models.Note) (bool, error) {
	if r.err != nil {
		return false, r.err
	}
	c, ok := r.cases[caseID]
	if !ok || c.Status != models.StatusOpen {
		return false, nil
	}
	c.Notes = append(c.Notes, note)
	return true, nil
}

func (r *memCaseRepo) Resolve(ctx context.Context, caseID, reason string, at time.Time, note models.Note) (bool, error) {
	return r.close(models.StatusResolved, caseID, reason, at, note)
}

func (r *memCaseRepo) Suppress(ctx context.Context, caseID, reason string, at time.Time, note models.Note) (bool, error) {
	return r.close(models.StatusSuppressed, caseID, reason, at, note)
}

func (r *memCaseRepo) close(status, caseID, reason string, at time.Time, note models.Note) (bool, error) {
	if r.err != nil {
		return false, r.err
	}
	c, ok := r.cases[caseID]
	if !ok || c.Status != models.StatusOpen {
		return false, nil
	}
	c.Status = status
	c.ResolvedAt = &at
	c.ResolvedReason = &reason
	c.Notes = append(c.Notes, note)
	return true, nil
}

func (r *memCaseRepo) ListOpenSystems(ctx context.Context, body models.BodyType) ([]string, error) {
	if r.systems != nil || r.err != nil {
		return r.systems, r.err
	}
	seen := map[string]bool{}
	var out []string
	for _, c := range r.cases {
		if c.Status == models.StatusOpen && c.BodyType == body && !seen[c.SystemID] {
			seen[c.SystemID] = true
			out = append(out, c.SystemID)
		}
	}
	sort.Strings(out)
	return out, nil
}

// memSnapshotRepo is an in-memory repository.SnapshotRepo.
type memSnapshotRepo struct {
	bySystem map[string][]models.Snapshot
	err      error

	gotSystem string
	gotFrom   time.Time
	gotTo     time.Time
}

func newMemSnapshotRepo() *memSnapshotRepo {
	return &memSnapshotRepo{bySystem: map[string][]models.Snapshot{}}
}

func (r *memSnapshotRepo) ListBySystem(ctx context.Context, systemID string, from, to time.Time) ([]models.Snapshot, error) {
	r.gotSystem, r.gotFrom, r.gotTo = systemID, from, to
	if r.err != nil {
		return nil, r.err
	}
	out := []models.Snapshot{}
	for _, s := range r.bySystem[systemID] {
		if !s.Timestamp.Before(from) && !s.Timestamp.After(to) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *memSnapshotRepo) Latest(ctx context.Context, systemID string) (*models.Snapshot, error) {
	if r.err != nil {
		return nil, r.err
	}
	ss := r.bySystem[systemID]
	if len(ss) == 0 {
		return nil, nil
	}
	last := ss[len(ss)-1]
	return &last, nil
}

func (r *memSnapshotRepo) Append(ctx context.Context, systemID string, s models.Snapshot) error {
	if r.err != nil {
		return r.err
	}
	r.bySystem[systemID] = append(r.bySystem[systemID], s)
	return nil
}

// memActivityRepo records appended entries.
type memActivityRepo struct {
	appends []models.Activity
	err     error

	gotFrom, gotTo   time.Time
	gotType, gotCase string
	calls            int
}

func (r *memActivityRepo) Append(ctx context.Context, a models.Activity) error {
	if r.err != nil {
		return r.err
	}
	r.appends = append(r.appends, a)
	return nil
}

func (r *memActivityRepo) List(ctx context.Context, from, to time.Time, typ, caseID string) ([]models.Activity, error) {
	r.calls++
	r.gotFrom, r.gotTo, r.gotType, r.gotCase = from, to, typ, caseID
	return r.appends, r.err
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

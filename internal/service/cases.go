package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"alerts_review/internal/logger"
	"alerts_review/internal/models"
	"alerts_review/internal/repository"
	"alerts_review/internal/view"

	"github.com/google/uuid"
)

const (
	minNoteLength   = 2
	minReasonLength = 5
)

// Domain errors for case flows. Validation errors carry the message shown
// to the reviewer.
var (
	ErrCaseNotFound   = errors.New("case not found")
	ErrCaseNotOpen    = errors.New("case is not open")
	ErrNoteTooShort   = errors.New("note text required")
	ErrReasonTooShort = errors.New("reason required (min 5 characters)")
	ErrInvalidTab     = errors.New("invalid tab: must be open, resolved, suppressed or all")
)

type CasesService struct {
	caseRepo     repository.CaseRepo
	activityRepo repository.ActivityRepo
	limit        int
	log          *logger.Logger
	now          func() time.Time
}

func NewCasesService(caseRepo repository.CaseRepo, activityRepo repository.ActivityRepo, limit int, log *logger.Logger) *CasesService {
	if limit <= 0 {
		limit = repository.DefaultListLimit
	}
	return &CasesService{
		caseRepo:     caseRepo,
		activityRepo: activityRepo,
		limit:        limit,
		log:          log,
		now:          time.Now,
	}
}

// List returns the newest cases filtered by tab and agency, with the tab
// counts of that agency.
func (s *CasesService) List(ctx context.Context, f CaseFilter) (CaseList, error) {
	tab := strings.ToLower(strings.TrimSpace(f.Tab))
	if !view.ValidTab(tab) {
		return CaseList{}, ErrInvalidTab
	}
	agency := strings.TrimSpace(f.AgencyID)

	all, err := s.caseRepo.List(ctx, s.limit)
	if err != nil {
		return CaseList{}, err
	}
	now := s.now()
	for i := range all {
		setMinutesOpen(&all[i], now)
	}

	return CaseList{
		Cases:  view.FilterCases(all, tab, agency),
		Counts: view.CountByStatus(all, agency),
	}, nil
}

// Get returns one case or ErrCaseNotFound.
func (s *CasesService) Get(ctx context.Context, caseID string) (*models.Case, error) {
	c, err := s.caseRepo.Get(ctx, caseID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCaseNotFound
	}
	setMinutesOpen(c, s.now())
	return c, nil
}

// AddNote appends a reviewer note to an open case.
func (s *CasesService) AddNote(ctx context.Context, caseID, text, author string) (models.Note, error) {
	text = strings.TrimSpace(text)
	if utf8.RuneCountInString(text) < minNoteLength {
		return models.Note{}, ErrNoteTooShort
	}

	now := s.now().UTC().Truncate(time.Second)
	note := newNote(text, author, models.NoteTypeNote, now)

	ok, err := s.caseRepo.AppendNote(ctx, caseID, note)
	if err != nil {
		return models.Note{}, err
	}
	if !ok {
		return models.Note{}, s.whyUnchanged(ctx, caseID)
	}

	s.record(ctx, models.Activity{
		OccurredAt:  now,
		Type:        models.ActivityNoteAdded,
		CaseID:      caseID,
		Actor:       note.Author,
		Description: "Note added",
		Metadata:    map[string]any{"note_id": note.ID},
	})
	return note, nil
}

// Resolve closes an open case as resolved with the given reason.
func (s *CasesService) Resolve(ctx context.Context, caseID, reason, author string) error {
	return s.close(ctx, caseID, reason, author, models.StatusResolved)
}

// Suppress closes an open case as suppressed with the given reason.
func (s *CasesService) Suppress(ctx context.Context, caseID, reason, author string) error {
	return s.close(ctx, caseID, reason, author, models.StatusSuppressed)
}

func (s *CasesService) close(ctx context.Context, caseID, reason, author, status string) error {
	reason = strings.TrimSpace(reason)
	if utf8.RuneCountInString(reason) < minReasonLength {
		return ErrReasonTooShort
	}

	now := s.now().UTC().Truncate(time.Second)

	var (
		ok       bool
		err      error
		activity models.Activity
	)
	switch status {
	case models.StatusResolved:
		note := newNote(reason, author, models.NoteTypeResolution, now)
		ok, err = s.caseRepo.Resolve(ctx, caseID, reason, now, note)
		activity = models.Activity{Type: models.ActivityCaseResolved, Description: "Case resolved", Actor: note.Author}
	case models.StatusSuppressed:
		note := newNote(reason, author, models.NoteTypeSuppression, now)
		ok, err = s.caseRepo.Suppress(ctx, caseID, reason, now, note)
		activity = models.Activity{Type: models.ActivityCaseSuppressed, Description: "Case suppressed", Actor: note.Author}
	default:
		return fmt.Errorf("unsupported status %q", status)
	}
	if err != nil {
		return err
	}
	if !ok {
		return s.whyUnchanged(ctx, caseID)
	}

	activity.OccurredAt = now
	activity.CaseID = caseID
	activity.Metadata = map[string]any{"reason": reason}
	s.record(ctx, activity)
	return nil
}

// whyUnchanged tells a missing case from one that is no longer open.
func (s *CasesService) whyUnchanged(ctx context.Context, caseID string) error {
	c, err := s.caseRepo.Get(ctx, caseID)
	if err != nil {
		return err
	}
	if c == nil {
		return ErrCaseNotFound
	}
	return ErrCaseNotOpen
}

// record appends to the audit trail; a failure there never fails the action.
func (s *CasesService) record(ctx context.Context, a models.Activity) {
	if err := s.activityRepo.Append(ctx, a); err != nil {
		s.log.Warnw("activity_append_failed", "case_id", a.CaseID, "type", a.Type, "err", err)
	}
}

func newNote(text, author, typ string, at time.Time) models.Note {
	author = strings.TrimSpace(author)
	if author == "" {
		author = models.DefaultNoteAuthor
	}
	return models.Note{
		ID:        uuid.NewString(),
		Text:      text,
		Author:    author,
		CreatedAt: at,
		Type:      typ,
	}
}

// setMinutesOpen fills the derived age of c: whole minutes from opened_at
// to resolved_at, or to now while the case has no resolution time.
func setMinutesOpen(c *models.Case, now time.Time) {
	if c.OpenedAt.IsZero() {
		c.MinutesOpen = 0
		return
	}
	m := int(c.WindowEnd(now).Sub(c.OpenedAt) / time.Minute)
	if m < 0 {
		m = 0
	}
	c.MinutesOpen = m
}

package service

import (
	"context"
	"time"

	"alerts_review/internal/heating"
	"alerts_review/internal/logger"
	"alerts_review/internal/models"
	"alerts_review/internal/repository"
	"alerts_review/internal/view"
)

// SeriesSource loads the snapshot window of a case.
type SeriesSource interface {
	Series(ctx context.Context, c models.Case) ([]models.Snapshot, error)
}

type ReviewService struct {
	caseRepo repository.CaseRepo
	series   SeriesSource
	detector *heating.Detector
	loc      *time.Location
	log      *logger.Logger
	now      func() time.Time
}

func NewReviewService(caseRepo repository.CaseRepo, series SeriesSource, detector *heating.Detector, loc *time.Location, log *logger.Logger) *ReviewService {
	if loc == nil {
		loc = time.UTC
	}
	return &ReviewService{
		caseRepo: caseRepo,
		series:   series,
		detector: detector,
		loc:      loc,
		log:      log,
		now:      time.Now,
	}
}

// Review fetches the case, then the snapshot series of its window, then
// computes the slow-heating verdict. Nothing is persisted.
func (s *ReviewService) Review(ctx context.Context, caseID string) (CaseReview, error) {
	c, err := s.caseRepo.Get(ctx, caseID)
	if err != nil {
		return CaseReview{}, err
	}
	if c == nil {
		return CaseReview{}, ErrCaseNotFound
	}
	setMinutesOpen(c, s.now())

	series, err := s.series.Series(ctx, *c)
	if err != nil {
		return CaseReview{}, err
	}

	a := s.detector.Evaluate(series, c.BodyType)
	if a.IncompleteTelemetry {
		s.log.Warnw("slow_heating_incomplete_telemetry",
			"case_id", c.CaseID,
			"system_id", c.SystemID,
			"detected", a.Detected,
			"temperature_gap", a.TemperatureGap,
			"average_air_temp", a.AverageAirTemp,
		)
	}

	return CaseReview{
		Case:                *c,
		Columns:             view.Columns(c.BodyType),
		Rows:                view.Rows(series, c.BodyType, s.loc),
		Snapshots:           series,
		SlowHeatingDetected: a.Detected,
		Assessment:          a,
		Banner:              view.Banner(a.Detected),
	}, nil
}

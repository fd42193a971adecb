package service

import (
	"context"
	"time"

	"alerts_review/internal/heating"
	"alerts_review/internal/logger"
	"alerts_review/internal/models"
	"alerts_review/internal/repository"
)

type Authorization interface {
	SignUp(ctx context.Context, username, password string) (int, error)
	GenerateToken(ctx context.Context, username, password string) (string, error)
	ParseToken(accessToken string) (Principal, error)
}

// Cases exposes the case list, case detail and the reviewer actions.
type Cases interface {
	List(ctx context.Context, f CaseFilter) (CaseList, error)
	Get(ctx context.Context, caseID string) (*models.Case, error)
	AddNote(ctx context.Context, caseID, text, author string) (models.Note, error)
	Resolve(ctx context.Context, caseID, reason, author string) error
	Suppress(ctx context.Context, caseID, reason, author string) error
}

// Snapshots selects the telemetry window of a case.
type Snapshots interface {
	ForCase(ctx context.Context, caseID string) ([]models.Snapshot, error)
}

// Reviewer runs case -> snapshot series -> verdict for one case.
type Reviewer interface {
	Review(ctx context.Context, caseID string) (CaseReview, error)
}

type Health interface {
	CaseCount(ctx context.Context) (int, error)
}

// ActivityLog exposes the append-only review audit trail with filtering access.
type ActivityLog interface {
	List(ctx context.Context, f ActivityFilter) ([]models.Activity, error)
}

// Simulator appends synthetic telemetry for open pool cases.
// Stop via context cancellation in main() for graceful shutdown.
type Simulator interface {
	Run(ctx context.Context, tick time.Duration)
}

// Service aggregates all sub-services.
type Service struct {
	Cases
	Snapshots
	Reviewer
	Health
	ActivityLog
	Simulator
	Authorization
}

// Options carries the tunables the services need from configuration.
type Options struct {
	SigningKey    string
	TokenTTL      time.Duration
	ListLimit     int
	WindowPadding time.Duration
	Thresholds    heating.Thresholds
	Location      *time.Location
	SimulatorStep time.Duration
}

// NewService wires repository layer into concrete services.
func NewService(repos *repository.Repository, opts Options, log *logger.Logger) *Service {
	snapshots := NewSnapshotService(repos.CaseRepo, repos.SnapshotRepo, opts.WindowPadding)
	return &Service{
		Cases:         NewCasesService(repos.CaseRepo, repos.ActivityRepo, opts.ListLimit, log),
		Snapshots:     snapshots,
		Reviewer:      NewReviewService(repos.CaseRepo, snapshots, heating.NewDetector(opts.Thresholds), opts.Location, log),
		Health:        NewHealthService(repos.CaseRepo),
		ActivityLog:   NewActivityLogService(repos.ActivityRepo),
		Simulator:     NewSimulatorService(repos.CaseRepo, repos.SnapshotRepo, opts.SimulatorStep, log),
		Authorization: NewAuthService(repos.Auth, opts.SigningKey, opts.TokenTTL),
	}
}

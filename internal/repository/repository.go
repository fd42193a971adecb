package repository

import (
	"context"
	"database/sql"
	"time"

	"alerts_review/internal/models"
)

type Authorization interface {
	Create(ctx context.Context, username, hash string) (int, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

type CaseRepo interface {
	Count(ctx context.Context) (int, error)
	List(ctx context.Context, limit int) ([]models.Case, error)
	Get(ctx context.Context, caseID string) (*models.Case, error)
	AppendNote(ctx context.Context, caseID string, note models.Note) (bool, error)
	Resolve(ctx context.Context, caseID, reason string, at time.Time, note models.Note) (bool, error)
	Suppress(ctx context.Context, caseID, reason string, at time.Time, note models.Note) (bool, error)
	ListOpenSystems(ctx context.Context, body models.BodyType) ([]string, error)
}

type SnapshotRepo interface {
	ListBySystem(ctx context.Context, systemID string, from, to time.Time) ([]models.Snapshot, error)
	Latest(ctx context.Context, systemID string) (*models.Snapshot, error)
	Append(ctx context.Context, systemID string, s models.Snapshot) error
}

type ActivityRepo interface {
	Append(ctx context.Context, a models.Activity) error
	List(ctx context.Context, from, to time.Time, typ, caseID string) ([]models.Activity, error)
}

type Repository struct {
	CaseRepo     CaseRepo
	SnapshotRepo SnapshotRepo
	ActivityRepo ActivityRepo
	Auth         Authorization
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		CaseRepo:     NewCaseSQLite(db),
		SnapshotRepo: NewSnapshotSQLite(db),
		ActivityRepo: NewActivitySQLite(db),
		Auth:         NewUserRepository(db),
	}
}

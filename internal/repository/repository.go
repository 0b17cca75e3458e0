package repository

import (
	"context"
	"database/sql"
	"time"

	"ocs_dashboard/internal/models"
)

// EventQuery narrows an event log listing. Zero values mean "no constraint".
type EventQuery struct {
	From     time.Time // inclusive
	To       time.Time // inclusive
	Level    string
	AssetKey string
	Limit    int
}

type EventRepo interface {
	Append(ctx context.Context, e models.AssetEvent) error
	List(ctx context.Context, q EventQuery) ([]models.AssetEvent, error)
	Prune(ctx context.Context, before time.Time, keep int) (int64, error)
}

type Repository struct {
	EventRepo EventRepo
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		EventRepo: NewEventSQLite(db),
	}
}

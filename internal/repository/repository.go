package repository

import (
	"context"
	"database/sql"
	"time"

	"poultry_monitor/internal/models"
)

type Authorization interface {
	Create(ctx context.Context, username, hash string) (int, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// StateRepo holds the single simulated farm state.
type StateRepo interface {
	Save(ctx context.Context, s models.FarmState) error
	Load(ctx context.Context) (models.FarmState, error)
}

type EventRepo interface {
	Append(ctx context.Context, e models.FarmEvent) error
	List(ctx context.Context, from, to time.Time, typ string) ([]models.FarmEvent, error)
}

// AlertRepo keeps alerts newest first.
type AlertRepo interface {
	Replace(ctx context.Context, alerts []models.Alert) error
	Prepend(ctx context.Context, a models.Alert, limit int) (dropped int, err error)
	List(ctx context.Context) ([]models.Alert, error)
	MarkRead(ctx context.Context, id string) (found bool, err error)
	MarkAllRead(ctx context.Context) (changed int, err error)
	Delete(ctx context.Context, id string) (removed bool, err error)
}

type Repository struct {
	StateRepo StateRepo
	EventRepo EventRepo
	AlertRepo AlertRepo
	Auth      Authorization
}

// NewRepository keeps live farm state and alerts in memory; only the event
// journal and operator accounts go to SQLite.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		StateRepo: NewStateMemory(),
		EventRepo: NewEventSQLite(db),
		AlertRepo: NewAlertMemory(),
		Auth:      NewUserRepository(db),
	}
}

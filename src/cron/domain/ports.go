package domain

import (
	"context"

	"github.com/google/uuid"
)

// Cron is a row-level advisory lock: its presence means the job with that ID
// is currently running somewhere.
type Cron struct {
	ID uuid.UUID
}

type CronRepository interface {
	SaveCron(ctx context.Context, c *Cron) (*Cron, error)
	DeleteCron(ctx context.Context, id uuid.UUID) error
}

type CronUseCase interface {
	CreateCron(ctx context.Context, id uuid.UUID) error
	DeleteCron(ctx context.Context, id uuid.UUID) error
}

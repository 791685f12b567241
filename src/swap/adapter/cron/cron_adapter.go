package cron

import (
	"context"

	"github.com/google/uuid"
	"github.com/veralabs/intentswap/src/cron/domain"
)

type CronAdapter interface {
	CreateCron(ctx context.Context, id uuid.UUID) error
	DeleteCron(ctx context.Context, id uuid.UUID) error
}

var _ CronAdapter = (*CronPort)(nil)

// init cron port
func NewCronPort(cronService domain.CronUseCase) CronAdapter {
	return &CronPort{cronService: cronService}
}

type CronPort struct {
	cronService domain.CronUseCase
}

func (c *CronPort) CreateCron(ctx context.Context, id uuid.UUID) error {
	return c.cronService.CreateCron(ctx, id)
}

func (c *CronPort) DeleteCron(ctx context.Context, id uuid.UUID) error {
	return c.cronService.DeleteCron(ctx, id)
}

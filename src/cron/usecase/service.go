package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/veralabs/intentswap/src/cron/domain"
	"github.com/veralabs/intentswap/src/logger"
)

var _ domain.CronUseCase = (*Service)(nil)

type Service struct {
	cronRepo domain.CronRepository
	logger   *logger.Logger
}

func NewService(cronRepo domain.CronRepository, logg *logger.Logger) *Service {
	return &Service{
		cronRepo: cronRepo,
		logger:   logg,
	}
}

func (s *Service) CreateCron(ctx context.Context, id uuid.UUID) error {
	_, err := s.cronRepo.SaveCron(ctx, &domain.Cron{ID: id})
	return err
}

func (s *Service) DeleteCron(ctx context.Context, id uuid.UUID) error {
	return s.cronRepo.DeleteCron(ctx, id)
}

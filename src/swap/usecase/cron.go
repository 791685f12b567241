package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	cronadapter "github.com/veralabs/intentswap/src/swap/adapter/cron"
)

var SweepUnfinishedSwapsCronID = uuid.MustParse("9c1f3f6e-5a42-4c36-9a1d-7b8a2f4d10a0")

// NewCronService schedules the swap status sweep. The cron lock keeps
// overlapping runs (and other replicas) from double-sweeping.
func NewCronService(c *cron.Cron, s *Service, ca cronadapter.CronAdapter) {
	c.AddFunc("@every 1m", func() {
		handleUnfinishedSwaps(context.Background(), s, ca)
	})
}

func handleUnfinishedSwaps(ctx context.Context, s *Service, ca cronadapter.CronAdapter) {
	if err := ca.CreateCron(ctx, SweepUnfinishedSwapsCronID); err != nil {
		return
	}
	s.SweepUnfinishedSwaps(ctx)

	if err := ca.DeleteCron(ctx, SweepUnfinishedSwapsCronID); err != nil {
		return
	}
}

package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/veralabs/intentswap/src/config"
	"github.com/veralabs/intentswap/src/logger"
	"github.com/veralabs/intentswap/src/swap/domain"
)

// StatusFetcher is the narrow dependency the tracker needs.
type StatusFetcher interface {
	GetSwapStatus(ctx context.Context, depositAddress string) *StatusOutcome
}

var _ StatusFetcher = (*Service)(nil)

// TrackUpdate is one observation delivered to the tracking callback. Exactly
// one update has Terminal=true, after which no further callbacks fire.
type TrackUpdate struct {
	DepositAddress string
	Status         domain.SwapStatus
	Attempt        int
	Terminal       bool
	// PartialSuccess marks a REFUNDED terminal: funds returned, swap not done.
	PartialSuccess bool
	Message        string
}

// TrackHandle cancels a running tracker. Stop is idempotent and safe to call
// after the tracker has already finished on its own.
type TrackHandle struct {
	stop chan struct{}
	done chan struct{}
	once sync.Once
}

func (h *TrackHandle) Stop() {
	h.once.Do(func() { close(h.stop) })
}

// Done is closed when the tracking goroutine has fully exited.
func (h *TrackHandle) Done() <-chan struct{} {
	return h.done
}

// Tracker polls the execution status of one deposit address on a fixed
// interval until a terminal state, the attempt budget, or the wall-clock
// timeout is reached. The ticker and goroutine are released on every exit
// path.
type Tracker struct {
	fetcher StatusFetcher
	cfg     config.TrackingConfig
	logger  *logger.Logger
}

func NewTracker(fetcher StatusFetcher, cfg config.TrackingConfig, logg *logger.Logger) *Tracker {
	return &Tracker{fetcher: fetcher, cfg: cfg, logger: logg}
}

// Track starts polling depositAddress and invokes onUpdate for every
// observation. The returned handle cancels tracking; cancellation and context
// expiry end the goroutine without a terminal update.
func (t *Tracker) Track(ctx context.Context, depositAddress string, onUpdate func(TrackUpdate)) *TrackHandle {
	h := &TrackHandle{
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}

	go func() {
		defer close(h.done)

		ticker := time.NewTicker(t.cfg.PollInterval)
		defer ticker.Stop()
		deadline := time.NewTimer(t.cfg.Timeout)
		defer deadline.Stop()

		attempt := 0
		last := domain.SwapPending
		for {
			select {
			case <-ctx.Done():
				return
			case <-h.stop:
				return
			case <-deadline.C:
				onUpdate(TrackUpdate{
					DepositAddress: depositAddress,
					Status:         last,
					Attempt:        attempt,
					Terminal:       true,
					Message:        "tracking timed out before the swap reached a terminal state",
				})
				return
			case <-ticker.C:
				attempt++
				out := t.fetcher.GetSwapStatus(ctx, depositAddress)
				if !out.Success {
					t.logger.Warnf("track %s attempt %d: %s", depositAddress, attempt, out.Error)
				} else {
					last = out.Status
					if last.Terminal() {
						onUpdate(TrackUpdate{
							DepositAddress: depositAddress,
							Status:         last,
							Attempt:        attempt,
							Terminal:       true,
							PartialSuccess: last == domain.SwapRefunded,
							Message:        terminalMessage(last),
						})
						return
					}
					onUpdate(TrackUpdate{
						DepositAddress: depositAddress,
						Status:         last,
						Attempt:        attempt,
					})
				}
				if attempt >= t.cfg.MaxAttempts {
					onUpdate(TrackUpdate{
						DepositAddress: depositAddress,
						Status:         last,
						Attempt:        attempt,
						Terminal:       true,
						Message:        "tracking stopped: poll attempt budget exhausted",
					})
					return
				}
			}
		}
	}()

	return h
}

func terminalMessage(s domain.SwapStatus) string {
	switch s {
	case domain.SwapComplete:
		return "swap completed"
	case domain.SwapFailed:
		return "swap failed"
	case domain.SwapRefunded:
		return "swap refunded: deposit returned to the refund address"
	}
	return ""
}

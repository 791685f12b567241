package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/veralabs/intentswap/src/config"
	"github.com/veralabs/intentswap/src/logger"
	"github.com/veralabs/intentswap/src/swap/domain"
)

// scriptedFetcher replays a fixed sequence of outcomes, repeating the last
// entry once the script runs out.
type scriptedFetcher struct {
	mu     sync.Mutex
	script []*StatusOutcome
	calls  int
}

func (f *scriptedFetcher) GetSwapStatus(ctx context.Context, addr string) *StatusOutcome {
	f.mu.Lock()
	defer f.mu.Unlock()
	i := f.calls
	f.calls++
	if i >= len(f.script) {
		i = len(f.script) - 1
	}
	out := *f.script[i]
	out.DepositAddress = addr
	return &out
}

func ok(status domain.SwapStatus) *StatusOutcome {
	return &StatusOutcome{Success: true, Status: status}
}

func testTracker(fetcher StatusFetcher, cfg config.TrackingConfig) *Tracker {
	return NewTracker(fetcher, cfg, logger.New("dev"))
}

func collectUpdates(t *testing.T, tr *Tracker, addr string) ([]TrackUpdate, *TrackHandle) {
	t.Helper()
	var mu sync.Mutex
	var updates []TrackUpdate
	h := tr.Track(context.Background(), addr, func(u TrackUpdate) {
		mu.Lock()
		defer mu.Unlock()
		updates = append(updates, u)
	})
	select {
	case <-h.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("tracker did not finish")
	}
	mu.Lock()
	defer mu.Unlock()
	return updates, h
}

func assertExactlyOneTerminal(t *testing.T, updates []TrackUpdate) TrackUpdate {
	t.Helper()
	var terminal *TrackUpdate
	for i, u := range updates {
		if u.Terminal {
			if terminal != nil {
				t.Fatal("more than one terminal update delivered")
			}
			if i != len(updates)-1 {
				t.Error("updates delivered after the terminal one")
			}
			terminal = &updates[i]
		}
	}
	if terminal == nil {
		t.Fatal("no terminal update delivered")
	}
	return *terminal
}

func TestTrackReachesComplete(t *testing.T) {
	fetcher := &scriptedFetcher{script: []*StatusOutcome{
		ok(domain.SwapPending),
		ok(domain.SwapProcessing),
		ok(domain.SwapComplete),
	}}
	tr := testTracker(fetcher, config.TrackingConfig{
		PollInterval: time.Millisecond,
		MaxAttempts:  100,
		Timeout:      time.Second,
	})

	updates, _ := collectUpdates(t, tr, "deposit.near")
	if len(updates) != 3 {
		t.Fatalf("got %d updates, want 3: %+v", len(updates), updates)
	}
	term := assertExactlyOneTerminal(t, updates)
	if term.Status != domain.SwapComplete || term.PartialSuccess {
		t.Errorf("terminal = %+v, want COMPLETE", term)
	}
	if term.Attempt != 3 {
		t.Errorf("terminal attempt = %d, want 3", term.Attempt)
	}
	if term.Message != "swap completed" {
		t.Errorf("terminal message = %q", term.Message)
	}
}

func TestTrackRefundedIsPartialSuccess(t *testing.T) {
	fetcher := &scriptedFetcher{script: []*StatusOutcome{ok(domain.SwapRefunded)}}
	tr := testTracker(fetcher, config.TrackingConfig{
		PollInterval: time.Millisecond,
		MaxAttempts:  100,
		Timeout:      time.Second,
	})

	updates, _ := collectUpdates(t, tr, "deposit.near")
	term := assertExactlyOneTerminal(t, updates)
	if term.Status != domain.SwapRefunded || !term.PartialSuccess {
		t.Errorf("terminal = %+v, want REFUNDED partial success", term)
	}
}

func TestTrackAttemptBudget(t *testing.T) {
	fetcher := &scriptedFetcher{script: []*StatusOutcome{ok(domain.SwapProcessing)}}
	tr := testTracker(fetcher, config.TrackingConfig{
		PollInterval: time.Millisecond,
		MaxAttempts:  3,
		Timeout:      time.Second,
	})

	updates, _ := collectUpdates(t, tr, "deposit.near")
	term := assertExactlyOneTerminal(t, updates)
	if term.Attempt != 3 {
		t.Errorf("terminal attempt = %d, want 3", term.Attempt)
	}
	if term.Status != domain.SwapProcessing {
		t.Errorf("terminal status = %s, want last observed PROCESSING", term.Status)
	}
	if term.Message == "" {
		t.Error("budget terminal carries no message")
	}
}

func TestTrackTimeout(t *testing.T) {
	fetcher := &scriptedFetcher{script: []*StatusOutcome{ok(domain.SwapProcessing)}}
	tr := testTracker(fetcher, config.TrackingConfig{
		PollInterval: time.Millisecond,
		MaxAttempts:  1000000,
		Timeout:      25 * time.Millisecond,
	})

	updates, _ := collectUpdates(t, tr, "deposit.near")
	term := assertExactlyOneTerminal(t, updates)
	if term.Terminal != true || term.Message == "" {
		t.Errorf("timeout terminal = %+v", term)
	}
}

func TestTrackFetchFailuresDoNotEmitUpdates(t *testing.T) {
	fetcher := &scriptedFetcher{script: []*StatusOutcome{
		{Error: "temporarily down", Code: domain.CodeStatusError},
		{Error: "temporarily down", Code: domain.CodeStatusError},
		ok(domain.SwapComplete),
	}}
	tr := testTracker(fetcher, config.TrackingConfig{
		PollInterval: time.Millisecond,
		MaxAttempts:  100,
		Timeout:      time.Second,
	})

	updates, _ := collectUpdates(t, tr, "deposit.near")
	if len(updates) != 1 {
		t.Fatalf("got %d updates, want only the terminal: %+v", len(updates), updates)
	}
	if updates[0].Attempt != 3 {
		t.Errorf("failed attempts not counted, attempt = %d", updates[0].Attempt)
	}
}

func TestTrackStopEndsWithoutTerminal(t *testing.T) {
	fetcher := &scriptedFetcher{script: []*StatusOutcome{ok(domain.SwapProcessing)}}
	tr := testTracker(fetcher, config.TrackingConfig{
		PollInterval: 5 * time.Millisecond,
		MaxAttempts:  1000000,
		Timeout:      time.Minute,
	})

	var mu sync.Mutex
	var updates []TrackUpdate
	h := tr.Track(context.Background(), "deposit.near", func(u TrackUpdate) {
		mu.Lock()
		defer mu.Unlock()
		updates = append(updates, u)
	})

	time.Sleep(20 * time.Millisecond)
	h.Stop()
	h.Stop() // idempotent

	select {
	case <-h.Done():
	case <-time.After(time.Second):
		t.Fatal("tracker did not stop")
	}
	h.Stop() // safe after done

	mu.Lock()
	defer mu.Unlock()
	for _, u := range updates {
		if u.Terminal {
			t.Errorf("cancelled tracker delivered terminal update: %+v", u)
		}
	}
}

func TestTrackContextCancelEndsWithoutTerminal(t *testing.T) {
	fetcher := &scriptedFetcher{script: []*StatusOutcome{ok(domain.SwapProcessing)}}
	tr := testTracker(fetcher, config.TrackingConfig{
		PollInterval: 5 * time.Millisecond,
		MaxAttempts:  1000000,
		Timeout:      time.Minute,
	})

	ctx, cancel := context.WithCancel(context.Background())
	var mu sync.Mutex
	var updates []TrackUpdate
	h := tr.Track(ctx, "deposit.near", func(u TrackUpdate) {
		mu.Lock()
		defer mu.Unlock()
		updates = append(updates, u)
	})

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case <-h.Done():
	case <-time.After(time.Second):
		t.Fatal("tracker did not exit on context cancel")
	}

	mu.Lock()
	defer mu.Unlock()
	for _, u := range updates {
		if u.Terminal {
			t.Errorf("cancelled tracker delivered terminal update: %+v", u)
		}
	}
}

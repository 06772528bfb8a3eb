package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/manthan-jsharma/coding-contest-tracker-Backend/internal/domain"
	"github.com/manthan-jsharma/coding-contest-tracker-Backend/internal/ingest"
	"github.com/manthan-jsharma/coding-contest-tracker-Backend/internal/logger"
	"github.com/manthan-jsharma/coding-contest-tracker-Backend/internal/sources"
)

type countingAdapter struct {
	fetches atomic.Int32
}

func (c *countingAdapter) Platform() domain.Platform { return domain.PlatformCodeforces }

func (c *countingAdapter) Fetch(ctx context.Context) sources.Result {
	c.fetches.Add(1)
	return sources.Success(domain.PlatformCodeforces, nil)
}

type nopUpserter struct{}

func (nopUpserter) Upsert(ctx context.Context, c domain.Contest) (bool, error) { return true, nil }

type nopDeleter struct{}

func (nopDeleter) DeleteEndedBefore(ctx context.Context, cutoff time.Time, platforms []domain.Platform) (int64, error) {
	return 0, nil
}

func TestIngestLoopRunsAfterStartupDelayAndOnInterval(t *testing.T) {
	adapter := &countingAdapter{}
	log := logger.New("error", false)
	runner := ingest.NewRunner(
		ingest.NewOrchestrator([]sources.Adapter{adapter}, log),
		ingest.NewReconciler(nopUpserter{}, log),
		ingest.NewRetention(nopDeleter{}, log),
		log,
		time.Second,
	)

	loop := NewIngestLoop(runner, log, 20*time.Millisecond, 50*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	loop.Start(ctx)
	defer loop.Stop()

	// Expect the startup run plus at least one interval tick.
	deadline := time.After(500 * time.Millisecond)
	for adapter.fetches.Load() < 2 {
		select {
		case <-deadline:
			t.Fatalf("loop executed %d runs within deadline, want >= 2", adapter.fetches.Load())
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func TestIngestLoopStopsOnContextCancel(t *testing.T) {
	adapter := &countingAdapter{}
	log := logger.New("error", false)
	runner := ingest.NewRunner(
		ingest.NewOrchestrator([]sources.Adapter{adapter}, log),
		ingest.NewReconciler(nopUpserter{}, log),
		ingest.NewRetention(nopDeleter{}, log),
		log,
		time.Second,
	)

	loop := NewIngestLoop(runner, log, 10*time.Millisecond, 20*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	loop.Start(ctx)

	time.Sleep(60 * time.Millisecond)
	cancel()
	time.Sleep(30 * time.Millisecond)

	count := adapter.fetches.Load()
	time.Sleep(80 * time.Millisecond)
	if got := adapter.fetches.Load(); got != count {
		t.Errorf("loop kept running after cancel: %d -> %d runs", count, got)
	}
}

package scheduler

import (
	"context"
	"errors"
	"time"

	"github.com/manthan-jsharma/coding-contest-tracker-Backend/internal/ingest"
	"github.com/manthan-jsharma/coding-contest-tracker-Backend/internal/logger"
)

// IngestLoop triggers the ingestion pipeline on a schedule: once after
// a short startup delay, then on a fixed interval. Manual runs go
// through the runner directly (HTTP trigger) and share its run-lock, so
// an overlapping tick is simply skipped.
type IngestLoop struct {
	runner       *ingest.Runner
	logger       logger.Logger
	startupDelay time.Duration
	interval     time.Duration
	stopCh       chan struct{}
}

func NewIngestLoop(
	runner *ingest.Runner,
	log logger.Logger,
	startupDelay time.Duration,
	interval time.Duration,
) *IngestLoop {
	return &IngestLoop{
		runner:       runner,
		logger:       log,
		startupDelay: startupDelay,
		interval:     interval,
		stopCh:       make(chan struct{}),
	}
}

// Start launches the scheduling goroutine. The first run happens after
// the startup delay so the process can finish booting first.
func (l *IngestLoop) Start(ctx context.Context) {
	go func() {
		startup := time.NewTimer(l.startupDelay)
		defer startup.Stop()
		select {
		case <-startup.C:
			l.run(ctx)
		case <-l.stopCh:
			return
		case <-ctx.Done():
			return
		}

		ticker := time.NewTicker(l.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				l.run(ctx)
			case <-l.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Stop stops the loop.
func (l *IngestLoop) Stop() {
	close(l.stopCh)
}

func (l *IngestLoop) run(ctx context.Context) {
	_, err := l.runner.Run(ctx)
	switch {
	case err == nil:
	case errors.Is(err, ingest.ErrRunInProgress):
		l.logger.Warn("scheduled ingestion skipped, run already in progress")
	default:
		l.logger.Error("scheduled ingestion failed", logger.Error(err))
	}
}

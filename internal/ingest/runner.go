package ingest

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/manthan-jsharma/coding-contest-tracker-Backend/internal/logger"
	"github.com/manthan-jsharma/coding-contest-tracker-Backend/internal/metrics"
)

// ErrRunInProgress is returned when a trigger arrives while another
// ingestion run holds the run-lock.
var ErrRunInProgress = errors.New("ingestion run already in progress")

// Runner executes the full pipeline: orchestrated extraction, then
// reconciliation, then the retention sweep. At most one run executes at
// a time; a scheduled tick and a manual trigger that overlap resolve by
// rejecting the latecomer rather than queueing it.
type Runner struct {
	orchestrator *Orchestrator
	reconciler   *Reconciler
	retention    *Retention
	logger       logger.Logger
	timeout      time.Duration

	mu sync.Mutex // run-lock
}

func NewRunner(
	orchestrator *Orchestrator,
	reconciler *Reconciler,
	retention *Retention,
	log logger.Logger,
	timeout time.Duration,
) *Runner {
	return &Runner{
		orchestrator: orchestrator,
		reconciler:   reconciler,
		retention:    retention,
		logger:       log,
		timeout:      timeout,
	}
}

// Run performs one ingestion run under the overall deadline. Adapter
// failures degrade gracefully inside the orchestrator; store failures
// fail the run with the counts accumulated up to that point.
func (r *Runner) Run(ctx context.Context) (Summary, error) {
	if !r.mu.TryLock() {
		return Summary{}, ErrRunInProgress
	}
	defer r.mu.Unlock()

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	runID := uuid.NewString()
	start := time.Now()
	r.logger.Info("ingestion run starting", logger.String("run_id", runID))

	batch := r.orchestrator.Collect(ctx)

	sum, err := r.reconciler.Reconcile(ctx, batch)
	if err != nil {
		metrics.IngestRuns.WithLabelValues("error").Inc()
		r.logger.Error("ingestion run failed during reconciliation",
			logger.String("run_id", runID),
			logger.Error(err))
		return sum, err
	}

	deleted, err := r.retention.Sweep(ctx)
	if err != nil {
		metrics.IngestRuns.WithLabelValues("error").Inc()
		r.logger.Error("ingestion run failed during retention sweep",
			logger.String("run_id", runID),
			logger.Error(err))
		return sum, err
	}

	metrics.IngestRuns.WithLabelValues("ok").Inc()
	metrics.ContestsNew.Add(float64(sum.New))
	metrics.ContestsUpdated.Add(float64(sum.Updated))

	r.logger.Info("ingestion run completed",
		logger.String("run_id", runID),
		logger.Int("new", sum.New),
		logger.Int("updated", sum.Updated),
		logger.Int("total_fetched", sum.TotalFetched),
		logger.Int64("retention_deleted", deleted),
		logger.Duration("elapsed", time.Since(start)))
	return sum, nil
}

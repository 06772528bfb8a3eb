package ingest

import (
	"context"
	"sync"

	"github.com/manthan-jsharma/coding-contest-tracker-Backend/internal/domain"
	"github.com/manthan-jsharma/coding-contest-tracker-Backend/internal/logger"
	"github.com/manthan-jsharma/coding-contest-tracker-Backend/internal/metrics"
	"github.com/manthan-jsharma/coding-contest-tracker-Backend/internal/sources"
)

// Orchestrator fans out to every source adapter concurrently, waits for
// all of them, and concatenates their batches in adapter-declaration
// order. A failing adapter is logged and counted, never propagated: one
// source's outage must not block reconciliation of the others.
type Orchestrator struct {
	adapters []sources.Adapter
	logger   logger.Logger
}

func NewOrchestrator(adapters []sources.Adapter, log logger.Logger) *Orchestrator {
	return &Orchestrator{adapters: adapters, logger: log}
}

// Collect runs one extraction pass across all adapters.
func (o *Orchestrator) Collect(ctx context.Context) []domain.Contest {
	results := make([]sources.Result, len(o.adapters))

	var wg sync.WaitGroup
	for i, a := range o.adapters {
		wg.Add(1)
		go func(i int, a sources.Adapter) {
			defer wg.Done()
			results[i] = a.Fetch(ctx)
		}(i, a)
	}
	wg.Wait()

	var all []domain.Contest
	for _, res := range results {
		if res.Err != nil {
			kind := sources.Kind(res.Err)
			metrics.SourceFailures.WithLabelValues(string(res.Platform), kind).Inc()
			o.logger.Error("source extraction failed",
				logger.String("platform", string(res.Platform)),
				logger.String("kind", kind),
				logger.Error(res.Err))
			continue
		}
		o.logger.Info("source extracted",
			logger.String("platform", string(res.Platform)),
			logger.Int("contests", len(res.Contests)))
		all = append(all, res.Contests...)
	}
	return all
}

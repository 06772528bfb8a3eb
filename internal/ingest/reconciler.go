package ingest

import (
	"context"
	"fmt"

	"github.com/manthan-jsharma/coding-contest-tracker-Backend/internal/domain"
	"github.com/manthan-jsharma/coding-contest-tracker-Backend/internal/logger"
)

// Summary is the outcome of one ingestion run.
type Summary struct {
	New          int `json:"new"`
	Updated      int `json:"updated"`
	TotalFetched int `json:"total_fetched"`
}

// Reconciler upserts a fetched batch into the canonical store, record
// by record, classifying each as inserted or updated. Records failing
// validation never reach the store.
type Reconciler struct {
	store  Upserter
	logger logger.Logger
}

// Upserter is the single store primitive reconciliation depends on.
type Upserter interface {
	Upsert(ctx context.Context, c domain.Contest) (inserted bool, err error)
}

func NewReconciler(store Upserter, log logger.Logger) *Reconciler {
	return &Reconciler{store: store, logger: log}
}

// Reconcile processes the batch sequentially so the per-record
// insert-vs-update accounting stays exact. A store error aborts the run
// and reports the counts accumulated so far.
func (r *Reconciler) Reconcile(ctx context.Context, batch []domain.Contest) (Summary, error) {
	sum := Summary{TotalFetched: len(batch)}
	for _, c := range batch {
		if err := c.Validate(); err != nil {
			sum.TotalFetched--
			r.logger.Warn("dropping invalid contest before reconciliation",
				logger.String("id", c.ID),
				logger.Error(err))
			continue
		}
		inserted, err := r.store.Upsert(ctx, c)
		if err != nil {
			return sum, fmt.Errorf("reconciliation failed at %s: %w", c.ID, err)
		}
		if inserted {
			sum.New++
		} else {
			sum.Updated++
		}
	}
	return sum, nil
}

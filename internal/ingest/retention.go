package ingest

import (
	"context"
	"time"

	"github.com/manthan-jsharma/coding-contest-tracker-Backend/internal/domain"
	"github.com/manthan-jsharma/coding-contest-tracker-Backend/internal/logger"
	"github.com/manthan-jsharma/coding-contest-tracker-Backend/internal/metrics"
)

// retentionMonths is how long ended contests are kept on the swept
// platforms.
const retentionMonths = 2

// SweptPlatforms are subject to the retention sweep. Codeforces is
// exempt: its archive is kept indefinitely.
var SweptPlatforms = []domain.Platform{domain.PlatformCodechef, domain.PlatformLeetcode}

// Deleter is the store primitive the sweep depends on.
type Deleter interface {
	DeleteEndedBefore(ctx context.Context, cutoff time.Time, platforms []domain.Platform) (int64, error)
}

// Retention deletes stale contests after each pipeline run.
type Retention struct {
	store  Deleter
	logger logger.Logger
	now    func() time.Time
}

func NewRetention(store Deleter, log logger.Logger) *Retention {
	return &Retention{store: store, logger: log, now: time.Now}
}

// Sweep removes every contest on a swept platform that ended more than
// two months ago. It runs once per pipeline execution regardless of
// whether reconciliation changed anything.
func (r *Retention) Sweep(ctx context.Context) (int64, error) {
	cutoff := r.now().AddDate(0, -retentionMonths, 0)
	deleted, err := r.store.DeleteEndedBefore(ctx, cutoff, SweptPlatforms)
	if err != nil {
		return 0, err
	}
	if deleted > 0 {
		metrics.RetentionDeleted.Add(float64(deleted))
		r.logger.Info("retention sweep completed",
			logger.Int64("deleted", deleted),
			logger.Time("cutoff", cutoff))
	} else {
		r.logger.Debug("retention sweep found nothing to delete")
	}
	return deleted, nil
}

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Pipeline counters. Registered on the default registry and exposed by
// the /metrics route.
var (
	IngestRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "contracker_ingest_runs_total",
		Help: "Ingestion pipeline runs by result.",
	}, []string{"result"})

	ContestsNew = promauto.NewCounter(prometheus.CounterOpts{
		Name: "contracker_contests_new_total",
		Help: "Contests inserted by reconciliation.",
	})

	ContestsUpdated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "contracker_contests_updated_total",
		Help: "Contests replaced by reconciliation.",
	})

	SourceFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "contracker_source_failures_total",
		Help: "Adapter extraction failures by platform and error kind.",
	}, []string{"platform", "kind"})

	RetentionDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "contracker_retention_deleted_total",
		Help: "Contests removed by the retention sweep.",
	})
)

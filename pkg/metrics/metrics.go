// Package metrics provides Prometheus instrumentation for fetchflow components.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds all metric instances for fetchflow components.
type Registry struct {
	// Batch Pool Metrics
	BatchesLoaded *prometheus.CounterVec
	BatchSize     *prometheus.HistogramVec
	PoolWorkers   *prometheus.GaugeVec
	TasksFetched  *prometheus.CounterVec
	FetchFailures *prometheus.CounterVec
	FetchDuration *prometheus.HistogramVec

	// Cache Metrics
	CacheHits   *prometheus.CounterVec
	CacheMisses *prometheus.CounterVec
	CacheErrors *prometheus.CounterVec

	// Schedule Metrics
	ScheduleRuns   *prometheus.CounterVec
	ScheduleErrors *prometheus.CounterVec
}

// DefaultRegistry is the default metrics registry used by fetchflow components.
var DefaultRegistry *Registry

func init() {
	DefaultRegistry = NewRegistry(prometheus.DefaultRegisterer)
}

// NewRegistry creates a new metrics registry with the given Prometheus registerer.
func NewRegistry(reg prometheus.Registerer) *Registry {
	factory := promauto.With(reg)

	return &Registry{
		// Batch Pool Metrics
		BatchesLoaded: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "fetchflow",
				Subsystem: "batch",
				Name:      "loads_total",
				Help:      "Total number of batch load calls",
			},
			[]string{"pool_name"},
		),

		BatchSize: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "fetchflow",
				Subsystem: "batch",
				Name:      "size_tasks",
				Help:      "Number of tasks per batch load",
				Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
			},
			[]string{"pool_name"},
		),

		PoolWorkers: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "fetchflow",
				Subsystem: "batch",
				Name:      "pool_workers",
				Help:      "Number of workers configured for the pool",
			},
			[]string{"pool_name"},
		),

		TasksFetched: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "fetchflow",
				Subsystem: "fetch",
				Name:      "tasks_total",
				Help:      "Total number of tasks fetched",
			},
			[]string{"pool_name"},
		),

		FetchFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "fetchflow",
				Subsystem: "fetch",
				Name:      "failures_total",
				Help:      "Total number of failed fetches",
			},
			[]string{"pool_name"},
		),

		FetchDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "fetchflow",
				Subsystem: "fetch",
				Name:      "duration_seconds",
				Help:      "Time spent fetching a single task",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"pool_name"},
		),

		// Cache Metrics
		CacheHits: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "fetchflow",
				Subsystem: "cache",
				Name:      "hits_total",
				Help:      "Total number of cache hits",
			},
			[]string{"cache_name"},
		),

		CacheMisses: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "fetchflow",
				Subsystem: "cache",
				Name:      "misses_total",
				Help:      "Total number of cache misses",
			},
			[]string{"cache_name"},
		),

		CacheErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "fetchflow",
				Subsystem: "cache",
				Name:      "errors_total",
				Help:      "Total number of cache backend errors",
			},
			[]string{"cache_name"},
		),

		// Schedule Metrics
		ScheduleRuns: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "fetchflow",
				Subsystem: "schedule",
				Name:      "runs_total",
				Help:      "Total number of scheduled batch runs",
			},
			[]string{"runner_name"},
		),

		ScheduleErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "fetchflow",
				Subsystem: "schedule",
				Name:      "errors_total",
				Help:      "Total number of scheduled runs that produced failed fetches",
			},
			[]string{"runner_name"},
		),
	}
}

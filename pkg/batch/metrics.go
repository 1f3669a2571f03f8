package batch

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/vnykmshr/fetchflow/pkg/metrics"
)

// MetricsPool wraps a Pool with Prometheus metrics collection.
type MetricsPool struct {
	pool     *Pool
	name     string
	registry *metrics.Registry
	enabled  bool
}

// NewWithMetrics creates a batch pool with metrics enabled.
// Each metrics-enabled pool gets its own registry to avoid conflicts.
func NewWithMetrics(workers int, name string) *MetricsPool {
	registry := prometheus.NewRegistry()
	config := metrics.Config{
		Enabled:  true,
		Registry: registry,
	}

	pool, err := NewWithConfigAndMetrics(Config{Workers: workers}, name, config)
	if err != nil {
		panic(err)
	}
	return pool
}

// NewWithConfigAndMetrics creates a batch pool with custom config and metrics.
func NewWithConfigAndMetrics(config Config, name string, metricsConfig metrics.Config) (*MetricsPool, error) {
	basePool, err := NewWithConfig(config)
	if err != nil {
		return nil, err
	}

	registry := metrics.DefaultRegistry
	if metricsConfig.Registry != nil {
		registry = metrics.NewRegistry(metricsConfig.Registry)
	}

	mp := &MetricsPool{
		pool:     basePool,
		name:     name,
		registry: registry,
		enabled:  metricsConfig.Enabled,
	}

	if mp.enabled {
		mp.registry.PoolWorkers.WithLabelValues(mp.name).Set(float64(basePool.Workers()))
	}

	return mp, nil
}

// Load fetches every task through the wrapped pool and records batch
// and per-task metrics. The batch contract is unchanged.
func (mp *MetricsPool) Load(ctx context.Context, tasks []string) []Result {
	results := mp.pool.Load(ctx, tasks)

	if mp.enabled {
		mp.registry.BatchesLoaded.WithLabelValues(mp.name).Inc()
		mp.registry.BatchSize.WithLabelValues(mp.name).Observe(float64(len(tasks)))

		for _, result := range results {
			mp.registry.TasksFetched.WithLabelValues(mp.name).Inc()
			mp.registry.FetchDuration.WithLabelValues(mp.name).Observe(result.Duration.Seconds())
			if result.Err != nil {
				mp.registry.FetchFailures.WithLabelValues(mp.name).Inc()
			}
		}
	}

	return results
}

// Workers returns the number of workers the wrapped pool runs per batch.
func (mp *MetricsPool) Workers() int {
	return mp.pool.Workers()
}

// EnableMetrics enables metrics collection.
func (mp *MetricsPool) EnableMetrics(config metrics.Config) error {
	mp.enabled = config.Enabled

	if config.Registry != nil {
		mp.registry = metrics.NewRegistry(config.Registry)
	}

	if mp.enabled {
		mp.registry.PoolWorkers.WithLabelValues(mp.name).Set(float64(mp.pool.Workers()))
	}

	return nil
}

// DisableMetrics disables metrics collection.
func (mp *MetricsPool) DisableMetrics() {
	mp.enabled = false
}

// MetricsEnabled returns true if metrics are currently enabled.
func (mp *MetricsPool) MetricsEnabled() bool {
	return mp.enabled
}

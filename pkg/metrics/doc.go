// Package metrics provides Prometheus instrumentation for fetchflow components.
//
// The metrics package provides automatic instrumentation for:
//   - Batch loads (batches loaded, batch sizes, pool workers)
//   - Fetch operations (tasks fetched, failures, fetch durations)
//   - Cache operations (hits, misses, backend errors)
//   - Scheduled runs (runs, runs with failures)
//
// # Quick Start
//
// Enable metrics by using the metrics-enabled constructors:
//
//	// Batch pool with metrics
//	pool := batch.NewWithMetrics(6, "crawl_pool")
//
// Then expose metrics via HTTP:
//
//	http.Handle("/metrics", promhttp.Handler())
//	log.Fatal(http.ListenAndServe(":8080", nil))
//
// # Custom Registry
//
// Use a custom Prometheus registry for isolation:
//
//	registry := prometheus.NewRegistry()
//	config := metrics.Config{
//		Enabled:  true,
//		Registry: registry,
//	}
//
//	pool, err := batch.NewWithConfigAndMetrics(
//		batch.Config{Workers: 6},
//		"crawl_pool",
//		config,
//	)
//
// # Available Metrics
//
//   - fetchflow_batch_loads_total: Total number of batch load calls
//   - fetchflow_batch_size_tasks: Number of tasks per batch load
//   - fetchflow_batch_pool_workers: Number of workers configured for the pool
//   - fetchflow_fetch_tasks_total: Total number of tasks fetched
//   - fetchflow_fetch_failures_total: Total number of failed fetches
//   - fetchflow_fetch_duration_seconds: Time spent fetching a single task
//   - fetchflow_cache_hits_total: Total number of cache hits
//   - fetchflow_cache_misses_total: Total number of cache misses
//   - fetchflow_cache_errors_total: Total number of cache backend errors
//   - fetchflow_schedule_runs_total: Total number of scheduled batch runs
//   - fetchflow_schedule_errors_total: Scheduled runs that produced failed fetches
package metrics

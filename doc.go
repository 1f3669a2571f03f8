/*
Package fetchflow provides a Go library for batch-fetching many independent
resources concurrently with a bounded worker pool.

Batch loading (pkg/batch):
  - batch: Fixed-size worker pool that loads a whole task list and
    returns all results in one call
  - metrics-enabled pool wrapper for Prometheus instrumentation

Fetching (pkg/fetch):
  - HTTP fetcher over an injected http.Client
  - Redis read-through cache around any fetcher

Scheduling (pkg/schedule):
  - Cron-driven periodic batch runs

Example usage:

	import "github.com/vnykmshr/fetchflow/pkg/batch"

	pool := batch.New(6) // 6 workers
	results := pool.Load(ctx, []string{
		"https://example.com/a",
		"https://example.com/b",
	})

	for _, r := range results {
		if r.Err != nil {
			log.Printf("fetch %s failed: %v", r.Task, r.Err)
		}
	}
*/
package fetchflow

/*
Package batch provides a bounded worker pool that loads a whole list of
independent fetch tasks concurrently and returns all results in one call.

A pool holds a fixed worker count and an injected fetch capability.
Load distributes the tasks across exactly that many workers, waits for
every worker to finish, and returns one Result per task. Nothing about
a batch outlives the Load call: queues and workers are created per call
and are gone, join-verified, before it returns.

Basic usage:

	pool := batch.New(6)

	results := pool.Load(ctx, urls)
	for _, r := range results {
		if r.Err != nil {
			log.Printf("fetch %s failed: %v", r.Task, r.Err)
		}
	}

Contract:

  - One Result per task, always: len(results) == len(tasks).
  - Result order is unspecified; do not correlate it with input order.
  - Fetch failures are carried in Result.Err untouched. A failing task
    never stops other tasks or the batch.
  - Zero tasks return nil with no concurrency setup. One task is
    fetched directly on the calling goroutine (no observer call,
    WorkerID -1) — a documented quirk of the contract.
  - No cancellation mid-batch: ctx reaches each fetch call, but every
    task is dispatched before Load returns.

Configuration:

	pool, err := batch.NewWithConfig(batch.Config{
		Workers: 10,
		Fetcher: fetch.NewHTTP(client),
		Observer: func(workerID int, task string) {
			log.Printf("worker %d fetching %s", workerID, task)
		},
	})

The Fetcher and Observer are invoked concurrently from multiple
workers; supplying implementations that are not safe for concurrent
use is a contract violation by the caller.

Metrics:

NewWithMetrics wraps the pool with Prometheus instrumentation:

	pool := batch.NewWithMetrics(6, "crawl_pool")
	results := pool.Load(ctx, urls)
*/
package batch

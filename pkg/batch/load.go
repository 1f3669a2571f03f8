package batch

import (
	"context"
	"sync"
	"time"
)

// Load fetches every task and returns one Result per task. Result
// order is unspecified; it depends on which worker finishes first.
//
// Zero tasks return nil without touching the pool machinery. A single
// task is fetched synchronously on the calling goroutine — in that
// path no observer call happens and WorkerID is -1. This asymmetry is
// a long-standing quirk of the batch contract, kept as documented
// behavior.
//
// ctx is forwarded to every fetch call, but Load itself has no
// cancellation: every task is handed to the fetcher before Load
// returns, and no worker goroutine survives the call.
func (p *Pool) Load(ctx context.Context, tasks []string) []Result {
	switch len(tasks) {
	case 0:
		return nil
	case 1:
		return []Result{p.fetchOne(ctx, directWorkerID, tasks[0])}
	}

	// Pre-load the queue with every task, then close it: the closed
	// channel is the termination signal each worker observes exactly
	// once, so none can block forever.
	in := make(chan string, len(tasks))
	for _, task := range tasks {
		in <- task
	}
	close(in)

	out := make(chan Result, len(tasks))

	var wg sync.WaitGroup
	for id := 0; id < p.workers; id++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for task := range in {
				if p.observer != nil {
					p.observer(id, task)
				}
				out <- p.fetchOne(ctx, id, task)
			}
		}(id)
	}

	wg.Wait()
	close(out)

	results := make([]Result, 0, len(tasks))
	for result := range out {
		results = append(results, result)
	}
	return results
}

// fetchOne invokes the fetcher for a single task and wraps the outcome.
// Fetch failures are opaque payloads; they are recorded, not acted on.
func (p *Pool) fetchOne(ctx context.Context, workerID int, task string) Result {
	start := time.Now()
	body, err := p.fetcher.Fetch(ctx, task)

	return Result{
		Task:     task,
		Body:     body,
		Err:      err,
		Duration: time.Since(start),
		WorkerID: workerID,
	}
}

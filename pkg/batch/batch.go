package batch

import (
	"time"

	"github.com/vnykmshr/fetchflow/pkg/common/validation"
	"github.com/vnykmshr/fetchflow/pkg/fetch"
)

// DefaultWorkers is the worker count used when Config.Workers is zero.
const DefaultWorkers = 6

// directWorkerID marks results produced on the calling goroutine by
// the single-task path, where no worker exists.
const directWorkerID = -1

// Result represents the outcome of fetching one task.
type Result struct {
	// Task is the identifier that was fetched
	Task string

	// Body is the fetched content, nil when Err is set
	Body []byte

	// Err is whatever the fetcher returned; the pool never inspects it
	Err error

	// Duration is how long the fetch took
	Duration time.Duration

	// WorkerID identifies which worker performed the fetch,
	// or -1 when the single-task path ran on the calling goroutine
	WorkerID int
}

// Observer is called by a worker immediately before each fetch with the
// worker's identity and the task about to be processed. It is invoked
// concurrently from multiple workers and must be safe for that; its
// return never affects the pool.
type Observer func(workerID int, task string)

// Config holds configuration options for creating a batch pool.
type Config struct {
	// Workers is the number of concurrent workers.
	// Zero means DefaultWorkers; negative is invalid.
	Workers int

	// Fetcher retrieves each task. Nil means an HTTP fetcher over a
	// fresh default client.
	Fetcher fetch.Fetcher

	// Observer, if set, is called before every fetch in the pool path.
	Observer Observer
}

// Pool loads batches of tasks with a fixed number of concurrent
// workers. A Pool is immutable after construction and safe for
// concurrent use; every Load call gets its own queues and workers.
type Pool struct {
	workers  int
	fetcher  fetch.Fetcher
	observer Observer
}

// New creates a pool with the given worker count and an HTTP fetcher.
// It panics on a negative count; zero means DefaultWorkers. Use
// NewWithConfig for an error-returning constructor.
func New(workers int) *Pool {
	pool, err := NewWithConfig(Config{Workers: workers})
	if err != nil {
		panic(err)
	}
	return pool
}

// NewWithConfig creates a pool with the specified configuration.
// It fails fast with a ValidationError before any queue or worker
// exists if the configuration is invalid.
func NewWithConfig(config Config) (*Pool, error) {
	if config.Workers == 0 {
		config.Workers = DefaultWorkers
	}
	if err := validation.ValidatePositive("batch", "workers", config.Workers); err != nil {
		return nil, err
	}

	if config.Fetcher == nil {
		config.Fetcher = fetch.NewHTTP(nil)
	}

	return &Pool{
		workers:  config.Workers,
		fetcher:  config.Fetcher,
		observer: config.Observer,
	}, nil
}

// Workers returns the number of workers the pool runs per batch.
func (p *Pool) Workers() int {
	return p.workers
}

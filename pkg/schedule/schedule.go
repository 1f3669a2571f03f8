package schedule

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/vnykmshr/fetchflow/pkg/batch"
	fferrors "github.com/vnykmshr/fetchflow/pkg/common/errors"
	"github.com/vnykmshr/fetchflow/pkg/common/validation"
	"github.com/vnykmshr/fetchflow/pkg/metrics"
)

// Loader loads a batch of tasks and returns one result per task.
// Both batch.Pool and batch.MetricsPool satisfy it.
type Loader interface {
	Load(ctx context.Context, tasks []string) []batch.Result
}

// RunFunc receives the results of one scheduled batch run.
type RunFunc func(results []batch.Result)

// Config holds configuration options for creating a Runner.
type Config struct {
	// Loader executes each scheduled batch. Required.
	Loader Loader

	// Name labels this runner in metrics (defaults to "default").
	Name string

	// Location is the timezone for cron evaluation (defaults to time.Local).
	Location *time.Location

	// Metrics records runs and failed runs when non-nil.
	Metrics *metrics.Registry
}

// job is one registered cron entry.
type job struct {
	entryID  cron.EntryID
	schedule cron.Schedule
}

// Runner re-loads fixed task lists on cron schedules. Supported
// expressions are the standard five-field format plus descriptors
// such as "@hourly" and "@every 90s".
type Runner struct {
	config Config
	cron   *cron.Cron

	mu     sync.Mutex
	jobs   map[string]job
	closed bool
}

// NewRunner creates a runner that drives batches through the given config.
func NewRunner(config Config) (*Runner, error) {
	if config.Loader == nil {
		return nil, validation.ValidateNotNil("schedule", "loader", nil)
	}
	if config.Name == "" {
		config.Name = "default"
	}
	if config.Location == nil {
		config.Location = time.Local
	}

	return &Runner{
		config: config,
		cron:   cron.New(cron.WithLocation(config.Location)),
		jobs:   make(map[string]job),
	}, nil
}

// Add registers a batch run under id. The tasks slice is captured as
// given and re-loaded on every firing; fn, if set, receives each run's
// results. Job ids must be unique.
func (r *Runner) Add(id, expr string, tasks []string, fn RunFunc) error {
	if err := validation.ValidateNotEmpty("schedule", "id", id); err != nil {
		return err
	}

	schedule, err := cron.ParseStandard(expr)
	if err != nil {
		return fferrors.NewValidationError("schedule", "cron", expr, "cannot be parsed").
			WithHint(err.Error())
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return fmt.Errorf("cannot add job %q: %w", id, fferrors.ErrClosed)
	}
	if _, exists := r.jobs[id]; exists {
		return fferrors.NewValidationError("schedule", "id", id, "already registered")
	}

	entryID := r.cron.Schedule(schedule, cron.FuncJob(func() {
		r.run(tasks, fn)
	}))
	r.jobs[id] = job{entryID: entryID, schedule: schedule}
	return nil
}

// run executes one scheduled batch.
func (r *Runner) run(tasks []string, fn RunFunc) {
	results := r.config.Loader.Load(context.Background(), tasks)

	if reg := r.config.Metrics; reg != nil {
		reg.ScheduleRuns.WithLabelValues(r.config.Name).Inc()
		for _, result := range results {
			if result.Err != nil {
				reg.ScheduleErrors.WithLabelValues(r.config.Name).Inc()
				break
			}
		}
	}

	if fn != nil {
		fn(results)
	}
}

// Remove unregisters the job with the given id. Removing an unknown
// id is a no-op.
func (r *Runner) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if j, ok := r.jobs[id]; ok {
		r.cron.Remove(j.entryID)
		delete(r.jobs, id)
	}
}

// Next returns when the job with the given id fires next.
func (r *Runner) Next(id string) (time.Time, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	j, ok := r.jobs[id]
	if !ok {
		return time.Time{}, fmt.Errorf("unknown job %q", id)
	}
	return j.schedule.Next(time.Now().In(r.config.Location)), nil
}

// Jobs returns the ids of all registered jobs.
func (r *Runner) Jobs() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := make([]string, 0, len(r.jobs))
	for id := range r.jobs {
		ids = append(ids, id)
	}
	return ids
}

// Start begins firing registered jobs on their schedules.
func (r *Runner) Start() {
	r.cron.Start()
}

// Stop halts scheduling and waits for any in-flight run to finish.
// Jobs cannot be added after Stop.
func (r *Runner) Stop() {
	r.mu.Lock()
	r.closed = true
	r.mu.Unlock()

	<-r.cron.Stop().Done()
}

// ValidateExpression reports whether expr is a usable cron expression.
func ValidateExpression(expr string) error {
	if _, err := cron.ParseStandard(expr); err != nil {
		return fferrors.NewValidationError("schedule", "cron", expr, "cannot be parsed").
			WithHint(err.Error())
	}
	return nil
}

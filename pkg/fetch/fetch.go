package fetch

import (
	"context"
)

// Fetcher retrieves the resource identified by a task.
type Fetcher interface {
	// Fetch retrieves the resource identified by task and returns its
	// contents, or an error if the resource could not be retrieved.
	// Implementations must be safe for concurrent use; the batch pool
	// calls Fetch from multiple workers at once.
	Fetch(ctx context.Context, task string) ([]byte, error)
}

// Func is a function type that implements the Fetcher interface.
type Func func(ctx context.Context, task string) ([]byte, error)

// Fetch implements the Fetcher interface for Func.
func (f Func) Fetch(ctx context.Context, task string) ([]byte, error) {
	return f(ctx, task)
}

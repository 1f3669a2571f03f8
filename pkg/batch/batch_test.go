package batch

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/vnykmshr/fetchflow/internal/testutil"
	fferrors "github.com/vnykmshr/fetchflow/pkg/common/errors"
	"github.com/vnykmshr/fetchflow/pkg/fetch"
)

// upperFetcher is a fast deterministic fetcher used across tests.
var upperFetcher = fetch.Func(func(_ context.Context, task string) ([]byte, error) {
	return []byte(strings.ToUpper(task)), nil
})

func TestNew(t *testing.T) {
	tests := []struct {
		name        string
		workers     int
		wantWorkers int
		expectPanic bool
	}{
		{"explicit count", 4, 4, false},
		{"single worker", 1, 1, false},
		{"zero means default", 0, DefaultWorkers, false},
		{"negative workers", -1, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.expectPanic {
				testutil.AssertPanics(t, func() { New(tt.workers) })
				return
			}

			pool := New(tt.workers)
			testutil.AssertEqual(t, pool.Workers(), tt.wantWorkers)
		})
	}
}

func TestNewWithConfig(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{"defaults", Config{}, false},
		{"explicit fetcher", Config{Workers: 2, Fetcher: upperFetcher}, false},
		{"negative workers", Config{Workers: -3}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool, err := NewWithConfig(tt.config)
			if tt.wantErr {
				testutil.AssertError(t, err)
				if !errors.Is(err, fferrors.ErrInvalidConfiguration) {
					t.Errorf("error = %v, want ErrInvalidConfiguration", err)
				}
				return
			}

			testutil.AssertNoError(t, err)
			if tt.config.Workers == 0 {
				testutil.AssertEqual(t, pool.Workers(), DefaultWorkers)
			} else {
				testutil.AssertEqual(t, pool.Workers(), tt.config.Workers)
			}
		})
	}
}

func TestNewWithConfigDefaultFetcher(t *testing.T) {
	pool, err := NewWithConfig(Config{Workers: 2})
	testutil.AssertNoError(t, err)
	if pool.fetcher == nil {
		t.Fatal("pool should fall back to the HTTP fetcher")
	}
	if _, ok := pool.fetcher.(*fetch.HTTP); !ok {
		t.Errorf("default fetcher is %T, want *fetch.HTTP", pool.fetcher)
	}
}

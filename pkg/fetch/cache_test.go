package fetch

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vnykmshr/fetchflow/internal/testutil"
	"github.com/vnykmshr/fetchflow/pkg/common/errors"
)

func TestNewCachedValidation(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "localhost:6379"})
	defer func() { _ = client.Close() }()

	noop := Func(func(context.Context, string) ([]byte, error) { return nil, nil })

	tests := []struct {
		name    string
		next    Fetcher
		config  CacheConfig
		wantErr bool
	}{
		{"valid", noop, CacheConfig{Redis: client}, false},
		{"nil fetcher", nil, CacheConfig{Redis: client}, true},
		{"nil redis", noop, CacheConfig{}, true},
		{"negative ttl", noop, CacheConfig{Redis: client, TTL: -time.Second}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCached(tt.next, tt.config)
			if tt.wantErr {
				testutil.AssertError(t, err)
				testutil.AssertEqual(t, errors.IsValidationError(err), true)
			} else {
				testutil.AssertNoError(t, err)
			}
		})
	}
}

func TestCachedDefaults(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "localhost:6379"})
	defer func() { _ = client.Close() }()

	noop := Func(func(context.Context, string) ([]byte, error) { return nil, nil })

	cached, err := NewCached(noop, CacheConfig{Redis: client})
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, cached.config.Prefix, "fetchflow:cache")
	testutil.AssertEqual(t, cached.config.TTL, 5*time.Minute)
	testutil.AssertEqual(t, cached.config.RedisTimeout, 500*time.Millisecond)
	testutil.AssertEqual(t, cached.config.Name, "default")
}

// TestCachedFallsThroughOnBackendError verifies that an unreachable
// cache backend degrades to a direct fetch instead of failing the task.
func TestCachedFallsThroughOnBackendError(t *testing.T) {
	// Port 1 is reserved; connections are refused immediately.
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer func() { _ = client.Close() }()

	var calls int32
	next := Func(func(_ context.Context, task string) ([]byte, error) {
		atomic.AddInt32(&calls, 1)
		return []byte("from origin: " + task), nil
	})

	cached, err := NewCached(next, CacheConfig{Redis: client})
	testutil.AssertNoError(t, err)

	ctx, cancel := testutil.WithTimeout(t)
	defer cancel()

	body, err := cached.Fetch(ctx, "task-1")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, string(body), "from origin: task-1")
	testutil.AssertEqual(t, atomic.LoadInt32(&calls), int32(1))
}

/*
Package fetch defines the fetch capability consumed by the batch pool
and provides its stock implementations.

A Fetcher maps an opaque task identifier to the bytes of the resource
it names. The batch pool never interprets tasks or results itself; it
just invokes whatever Fetcher it was configured with, concurrently
from multiple workers.

Fetcher Interface:

	type Fetcher interface {
		Fetch(ctx context.Context, task string) ([]byte, error)
	}

The Func type provides a convenient way to create fetchers from functions:

	fetcher := fetch.Func(func(ctx context.Context, task string) ([]byte, error) {
		return []byte(strings.ToUpper(task)), nil
	})

HTTP Fetching:

The HTTP fetcher treats tasks as URLs. The client is injected, not
ambient, so transports and timeouts stay under the caller's control:

	client := &http.Client{Timeout: 10 * time.Second}
	fetcher := fetch.NewHTTP(client)

Redis Caching:

Any Fetcher can be wrapped with a read-through cache:

	cached, err := fetch.NewCached(fetcher, fetch.CacheConfig{
		Redis: redis.NewClient(&redis.Options{Addr: "localhost:6379"}),
		TTL:   time.Minute,
	})

Cache lookups that fail for backend reasons fall through to the
underlying fetcher, so a broken Redis never fails a fetchable task.
*/
package fetch

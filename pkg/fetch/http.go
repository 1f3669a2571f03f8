package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// HTTP is a Fetcher that treats each task as a URL and retrieves it
// with a GET request. The http.Client is injected at construction so
// callers control transport settings; no process-wide client is used.
type HTTP struct {
	client *http.Client
}

// NewHTTP creates an HTTP fetcher backed by the given client.
// A nil client gets a fresh http.Client with default settings.
func NewHTTP(client *http.Client) *HTTP {
	if client == nil {
		client = &http.Client{}
	}
	return &HTTP{client: client}
}

// Fetch performs a GET request for the task URL and returns the
// response body. Non-2xx responses are reported as errors.
func (h *HTTP) Fetch(ctx context.Context, task string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, task, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", task, err)
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", task, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch %s: unexpected status %s", task, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: read body: %w", task, err)
	}

	return body, nil
}

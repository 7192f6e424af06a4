package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Fetcher downloads the registry archive.
type Fetcher struct {
	client *http.Client
}

// NewFetcher creates a Fetcher whose requests time out after timeout.
func NewFetcher(timeout time.Duration) *Fetcher {
	return &Fetcher{client: &http.Client{Timeout: timeout}}
}

// Fetch returns the body of url. Non-2xx responses are errors. Nothing is retried.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("source: failed to build request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("source: failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("source: unexpected status %d from %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("source: failed to read response body: %w", err)
	}
	return body, nil
}

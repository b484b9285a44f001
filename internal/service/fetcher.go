package service

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// FileFetcher downloads the edited file the editor server points at in its
// save callbacks. Injected so tests never touch the network.
type FileFetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

type httpFetcher struct {
	client *http.Client
}

// NewHTTPFetcher returns a FileFetcher backed by the given HTTP client.
// Passing nil uses http.DefaultClient. No timeout is applied here; the
// editor server bounds its own transfer.
func NewHTTPFetcher(client *http.Client) FileFetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &httpFetcher{client: client}
}

func (f *httpFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

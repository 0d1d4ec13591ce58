// Package fetch downloads snippet content over HTTP.
//
// The Fetcher interface exists so the service layer can take a mock in
// tests — the same injection pattern the storage contract uses. The only
// production implementation is HTTPFetcher.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/sakif/snipvault/internal/apperror"
)

// Fetcher retrieves the text body at a URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

var _ Fetcher = (*HTTPFetcher)(nil)

// HTTPFetcher fetches with a plain GET. No retries, no timeout — a slow
// or hung server blocks the invocation, which is acceptable for a
// single-shot CLI. Callers wanting a deadline pass it through ctx.
type HTTPFetcher struct {
	client *http.Client
}

// NewHTTPFetcher returns a fetcher using the given client, or
// http.DefaultClient when client is nil.
func NewHTTPFetcher(client *http.Client) *HTTPFetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPFetcher{client: client}
}

// Fetch GETs the URL and returns the whole response body as a string.
// Transport failures and non-2xx statuses are both fetch errors — a 404
// page is not snippet content.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", apperror.Fetch(url, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", apperror.Fetch(url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", apperror.Fetch(url, fmt.Errorf("unexpected status %s", resp.Status))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", apperror.Fetch(url, err)
	}
	return string(body), nil
}

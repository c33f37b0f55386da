// Package mock provides function-field fakes of the core interfaces for tests.
package mock

import (
	"context"

	"github.com/gaurav-prasanna/profilestrap/core"
)

var _ core.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of core.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*core.FetchResult, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*core.FetchResult, error) {
	return f.FetchFn(ctx, url)
}

// PageFetcher returns a Fetcher serving HTML from pages keyed by URL.
// Unknown URLs fail with err.
func PageFetcher(pages map[string]string, err error) *Fetcher {
	return &Fetcher{
		FetchFn: func(_ context.Context, url string) (*core.FetchResult, error) {
			html, ok := pages[url]
			if !ok {
				return nil, err
			}
			return &core.FetchResult{URL: url, StatusCode: 200, HTML: html}, nil
		},
	}
}

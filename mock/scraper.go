package mock

import (
	"context"

	"github.com/gaurav-prasanna/profilestrap/core"
)

var _ core.Scraper = (*Scraper)(nil)

// Scraper is a mock implementation of core.Scraper.
type Scraper struct {
	ScrapeFn func(ctx context.Context, url string) (*core.ScrapedPage, error)
}

func (s *Scraper) Scrape(ctx context.Context, url string) (*core.ScrapedPage, error) {
	return s.ScrapeFn(ctx, url)
}

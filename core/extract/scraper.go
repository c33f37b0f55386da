package extract

import (
	"context"
	"fmt"

	"github.com/gaurav-prasanna/profilestrap/core"
)

var _ core.Scraper = (*Scraper)(nil)

// Scraper fetches a page and reduces it to cleaned text. When a Normalizer
// is set, the page's main content is also rendered as Markdown.
type Scraper struct {
	Fetcher    core.Fetcher
	Normalizer core.Normalizer
}

// NewScraper creates a Scraper.
func NewScraper(fetcher core.Fetcher, normalizer core.Normalizer) *Scraper {
	return &Scraper{Fetcher: fetcher, Normalizer: normalizer}
}

// Scrape fetches url and returns its cleaned text. Fetch failures are
// returned wrapped; unusable pages return ErrParse or ErrEmptyContent.
func (s *Scraper) Scrape(ctx context.Context, url string) (*core.ScrapedPage, error) {
	result, err := s.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}

	doc, err := Parse(result.HTML)
	if err != nil {
		return nil, err
	}

	text, err := doc.Text()
	if err != nil {
		return nil, err
	}

	page := &core.ScrapedPage{Text: text}
	if s.Normalizer != nil {
		// Markdown is a best-effort companion to the text; failures leave it empty.
		if content, err := doc.ContentHTML(); err == nil {
			if md, err := s.Normalizer.Normalize(content); err == nil {
				page.Markdown = md
			}
		}
	}
	return page, nil
}

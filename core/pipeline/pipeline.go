// Package pipeline orchestrates a profile run:
// discover → scrape each candidate → collect records in rank order.
//
// Page-level failures (timeouts, HTTP errors, unparseable or empty pages) are
// logged and skipped; only a failure to discover pages from the base URL is
// returned to the caller.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/gaurav-prasanna/profilestrap/core"
	"github.com/gaurav-prasanna/profilestrap/core/extract"
	"github.com/gaurav-prasanna/profilestrap/core/fetch"
	"github.com/gaurav-prasanna/profilestrap/crawl"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Pipeline composes discovery and scraping over a single site.
type Pipeline struct {
	Fetcher    core.Fetcher
	Scraper    core.Scraper
	Discoverer *crawl.Discoverer
	Logger     zerolog.Logger
	// Concurrency is the number of pages scraped at once. Values below 2
	// scrape sequentially.
	Concurrency int
	Now         func() time.Time
}

// New creates a sequential Pipeline.
func New(fetcher core.Fetcher, scraper core.Scraper, logger zerolog.Logger) *Pipeline {
	return &Pipeline{
		Fetcher:     fetcher,
		Scraper:     scraper,
		Discoverer:  crawl.NewDiscoverer(fetcher),
		Logger:      logger,
		Concurrency: 1,
		Now:         time.Now,
	}
}

// Candidates returns the ranked candidate pages for baseURL, falling back to
// crawl.DefaultPages when none score above zero.
func (p *Pipeline) Candidates(ctx context.Context, baseURL string, maxPages int) ([]string, error) {
	ranked, err := p.Discoverer.Discover(ctx, baseURL, maxPages)
	if err != nil {
		return nil, err
	}
	if len(ranked) == 0 {
		p.Logger.Info().Str("url", baseURL).Strs("defaults", crawl.DefaultPages).
			Msg("no important pages discovered, using defaults")
	}
	for _, sp := range ranked {
		p.Logger.Debug().Str("path", sp.Path).Int("score", sp.Score).Msg("candidate page")
	}
	return crawl.CandidatesOrDefault(ranked), nil
}

// Run discovers up to maxPages candidates and scrapes each one. The result
// lists successfully scraped pages in discovery rank order. A discovery
// failure returns an empty result together with the error.
func (p *Pipeline) Run(ctx context.Context, baseURL string, maxPages int) (*core.PipelineResult, error) {
	candidates, err := p.Candidates(ctx, baseURL, maxPages)
	if err != nil {
		p.Logger.Error().Err(err).Str("url", baseURL).Msg("page discovery failed")
		return core.NewPipelineResult(), err
	}
	p.Logger.Info().Str("url", baseURL).Int("candidates", len(candidates)).Msg("scraping pages")
	return p.ScrapeAll(ctx, baseURL, candidates), nil
}

// ScrapeAll scrapes candidates relative to baseURL. Records are added in the
// order of candidates regardless of completion order, and one page failing
// never stops the others.
func (p *Pipeline) ScrapeAll(ctx context.Context, baseURL string, candidates []string) *core.PipelineResult {
	slots := make([]*core.PageRecord, len(candidates))

	var g errgroup.Group
	g.SetLimit(max(p.Concurrency, 1))
	for i, candidate := range candidates {
		g.Go(func() error {
			slots[i] = p.scrapeOne(ctx, baseURL, candidate)
			return nil
		})
	}
	_ = g.Wait()

	result := core.NewPipelineResult()
	for _, rec := range slots {
		if rec != nil {
			result.Add(*rec)
		}
	}
	return result
}

// Links fetches baseURL and categorizes every link on it.
func (p *Pipeline) Links(ctx context.Context, baseURL string) (*core.CategorizedLinkSet, []string, error) {
	links, err := crawl.FetchLinks(ctx, p.Fetcher, baseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("fetching links: %w", err)
	}
	p.Logger.Info().Str("url", baseURL).Int("links", len(links)).Msg("extracted links")
	return crawl.Categorize(links, baseURL), links, nil
}

func (p *Pipeline) scrapeOne(ctx context.Context, baseURL, candidate string) *core.PageRecord {
	pageURL := PageURL(baseURL, candidate)
	log := p.Logger.With().Str("page", candidate).Str("url", pageURL).Logger()
	log.Debug().Msg("scraping")

	page, err := p.Scraper.Scrape(ctx, pageURL)
	if err != nil {
		log.Warn().Err(err).Str("kind", ErrorKind(err)).Msg("failed to scrape page")
		return nil
	}

	now := time.Now
	if p.Now != nil {
		now = p.Now
	}
	rec := core.NewPageRecord(candidate, pageURL, *page, now())
	log.Info().Int("length", rec.Length).Msg("scraped page")
	return &rec
}

// PageURL builds the URL for a candidate. Absolute candidates are returned
// verbatim; bare paths are joined to baseURL with a single slash.
func PageURL(baseURL, candidate string) string {
	if u, err := url.Parse(candidate); err == nil && u.IsAbs() && u.Host != "" {
		return candidate
	}
	return strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(candidate, "/")
}

// ErrorKind names the failure category of a page-level error for logging.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, extract.ErrEmptyContent):
		return "empty_content"
	case errors.Is(err, extract.ErrParse):
		return "parse"
	}
	if kind := fetch.KindOf(err); kind != "" {
		return string(kind)
	}
	return "unknown"
}

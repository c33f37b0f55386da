// Package crawl discovers the important pages of a single site.
// It harvests links from the base page, classifies them, and ranks internal
// paths with a pattern-based importance heuristic.
package crawl

import (
	"context"
	"fmt"

	"github.com/gaurav-prasanna/profilestrap/core"
)

// Discoverer finds the most important internal pages linked from a base URL.
type Discoverer struct {
	Fetcher core.Fetcher
	Scorer  *Scorer
}

// NewDiscoverer creates a Discoverer using the default scorer.
func NewDiscoverer(fetcher core.Fetcher) *Discoverer {
	return &Discoverer{Fetcher: fetcher, Scorer: NewScorer()}
}

// Discover fetches baseURL, keeps its internal links, and returns at most
// maxPages paths ranked by importance. An empty slice means nothing scored
// above zero; callers fall back to DefaultPages. A failure to fetch or parse
// the base page is returned as an error.
func (d *Discoverer) Discover(ctx context.Context, baseURL string, maxPages int) ([]ScoredPath, error) {
	links, err := FetchLinks(ctx, d.Fetcher, baseURL)
	if err != nil {
		return nil, fmt.Errorf("discovering pages from %s: %w", baseURL, err)
	}
	return d.RankLinks(links, baseURL, maxPages), nil
}

// RankLinks ranks already-harvested links. It is the pure half of Discover.
func (d *Discoverer) RankLinks(links []string, baseURL string, maxPages int) []ScoredPath {
	scorer := d.Scorer
	if scorer == nil {
		scorer = NewScorer()
	}
	return scorer.Rank(InternalPaths(links, baseURL), maxPages)
}

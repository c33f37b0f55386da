// Package core defines the pipeline types and interfaces for ProfileStrap.
// Each stage of the pipeline is a clean, testable interface.
package core

import (
	"context"
	"time"
)

// FetchResult holds the raw HTML and response metadata from a fetch.
type FetchResult struct {
	URL        string
	StatusCode int
	HTML       string
}

// CategorizedLinkSet partitions a set of absolute links relative to a base host.
// Every input link appears in exactly one bucket.
type CategorizedLinkSet struct {
	Internal []string `json:"internal"`
	External []string `json:"external"`
	Images   []string `json:"images"`
	Other    []string `json:"other"`
}

// Total returns the number of links across all buckets.
func (s *CategorizedLinkSet) Total() int {
	return len(s.Internal) + len(s.External) + len(s.Images) + len(s.Other)
}

// ScrapedPage is the cleaned output of a single page scrape.
type ScrapedPage struct {
	Text     string
	Markdown string
}

// Profile is the final artifact of a run: the summary plus the pages it was built from.
type Profile struct {
	RunID       string              `json:"run_id"`
	BaseURL     string              `json:"base_url"`
	GeneratedAt time.Time           `json:"generated_at"`
	Summary     string              `json:"summary"`
	Source      string              `json:"summary_source"` // "ai" or "template"
	Pages       *PipelineResult     `json:"pages"`
	Links       *CategorizedLinkSet `json:"links,omitempty"`
}

// Fetcher retrieves raw HTML from a URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*FetchResult, error)
}

// Scraper fetches a page and reduces it to readable text.
type Scraper interface {
	Scrape(ctx context.Context, url string) (*ScrapedPage, error)
}

// Normalizer converts cleaned HTML into Markdown.
type Normalizer interface {
	Normalize(html string) (string, error)
}

// Summary is a generated business profile and the summarizer that produced it.
type Summary struct {
	Text   string
	Source string
}

// Summarizer turns scraped pages into a natural-language business profile.
type Summarizer interface {
	Summarize(ctx context.Context, pages *PipelineResult) (*Summary, error)
	// Name identifies the implementation in logs and output ("ai", "template").
	Name() string
}

// Renderer converts a Profile into a final output format.
type Renderer interface {
	Render(p *Profile) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".md", ".pdf").
	Extension() string
}

package crawl

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/gaurav-prasanna/profilestrap/core"
)

// linkSources lists the elements and attributes harvested for links.
var linkSources = []struct {
	selector string
	attr     string
}{
	{"a[href]", "href"},
	{"img[src]", "src"},
}

// ExtractLinks harvests anchor hrefs and image sources from html and resolves
// them against baseURL. The result is deduplicated and keeps first-seen order.
func ExtractLinks(html string, baseURL string) ([]string, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base URL: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	links := NewOrderedSet()
	for _, src := range linkSources {
		doc.Find(src.selector).Each(func(_ int, s *goquery.Selection) {
			val, _ := s.Attr(src.attr)
			if resolved := resolveURL(val, base); resolved != "" {
				links.Add(resolved)
			}
		})
	}

	return links.Items(), nil
}

// FetchLinks fetches pageURL and extracts its links.
func FetchLinks(ctx context.Context, fetcher core.Fetcher, pageURL string) ([]string, error) {
	result, err := fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return nil, err
	}
	return ExtractLinks(result.HTML, pageURL)
}

// resolveURL resolves a potentially relative reference against base.
// Empty, whitespace-only, and unparseable references yield "".
func resolveURL(ref string, base *url.URL) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return ""
	}

	parsed, err := url.Parse(ref)
	if err != nil {
		return ""
	}

	return base.ResolveReference(parsed).String()
}

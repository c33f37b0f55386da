// Package render provides output renderers for a business profile.
// This file implements the Markdown renderer, the canonical profile format
// that the PDF renderer also draws from.
package render

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/gaurav-prasanna/profilestrap/core"
)

var _ core.Renderer = (*MarkdownRenderer)(nil)

// MarkdownRenderer writes the profile as a Markdown document: summary first,
// then one section per scraped page in rank order.
type MarkdownRenderer struct{}

// NewMarkdownRenderer creates a MarkdownRenderer.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

// Render returns the profile as Markdown.
func (r *MarkdownRenderer) Render(p *core.Profile) ([]byte, error) {
	if p == nil {
		return nil, fmt.Errorf("no profile to render")
	}
	return []byte(r.Document(p)), nil
}

// Extension returns the file extension for Markdown output.
func (r *MarkdownRenderer) Extension() string {
	return ".md"
}

// Document builds the Markdown text for p.
func (r *MarkdownRenderer) Document(p *core.Profile) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Business Profile: %s\n\n", Title(p))
	fmt.Fprintf(&b, "- Source: %s\n", p.BaseURL)
	if !p.GeneratedAt.IsZero() {
		fmt.Fprintf(&b, "- Generated: %s\n", p.GeneratedAt.UTC().Format(time.RFC3339))
	}
	if p.Source != "" {
		fmt.Fprintf(&b, "- Summary: %s\n", p.Source)
	}
	if p.RunID != "" {
		fmt.Fprintf(&b, "- Run: %s\n", p.RunID)
	}

	b.WriteString("\n## Summary\n\n")
	b.WriteString(strings.TrimSpace(p.Summary))
	b.WriteString("\n")

	records := p.Pages.Records()
	if len(records) > 0 {
		b.WriteString("\n## Pages\n")
	}
	for _, rec := range records {
		fmt.Fprintf(&b, "\n### %s\n\n", rec.ID)
		fmt.Fprintf(&b, "- URL: %s\n", rec.URL)
		fmt.Fprintf(&b, "- Length: %d characters\n\n", rec.Length)
		for _, line := range strings.Split(rec.Preview, "\n") {
			b.WriteString("> ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	if p.Links != nil {
		b.WriteString("\n## Links\n\n")
		fmt.Fprintf(&b, "- Internal: %d\n", len(p.Links.Internal))
		fmt.Fprintf(&b, "- External: %d\n", len(p.Links.External))
		fmt.Fprintf(&b, "- Images: %d\n", len(p.Links.Images))
		fmt.Fprintf(&b, "- Other: %d\n", len(p.Links.Other))
	}
	return b.String()
}

// Title returns the site host of p, or its base URL when it has none.
func Title(p *core.Profile) string {
	if u, err := url.Parse(p.BaseURL); err == nil && u.Host != "" {
		return u.Host
	}
	return p.BaseURL
}

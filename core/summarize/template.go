package summarize

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/gaurav-prasanna/profilestrap/core"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var _ core.Summarizer = (*Template)(nil)

// Template builds a deterministic profile from page records alone.
// It never fails and never contacts a remote service.
type Template struct{}

// Name returns "template".
func (Template) Name() string { return "template" }

// Summarize renders the page counts, lengths, and previews as a plain-text profile.
func (t Template) Summarize(_ context.Context, pages *core.PipelineResult) (*core.Summary, error) {
	return &core.Summary{Text: t.Render(pages), Source: t.Name()}, nil
}

// Render returns the template summary text.
func (Template) Render(pages *core.PipelineResult) string {
	records := pages.Records()
	if len(records) == 0 {
		return NoContent
	}

	title := cases.Title(language.English)
	total := 0
	for _, rec := range records {
		total += rec.Length
	}

	var b strings.Builder
	b.WriteString("BUSINESS PROFILE SUMMARY\n")
	b.WriteString(strings.Repeat("=", 50) + "\n\n")

	if host := siteHost(records[0].URL); host != "" {
		fmt.Fprintf(&b, "SITE: %s\n", host)
	}
	fmt.Fprintf(&b, "PAGES ANALYZED: %d\n", len(records))
	fmt.Fprintf(&b, "TOTAL CONTENT: %d characters\n\n", total)

	b.WriteString("PAGE OVERVIEW:\n")
	for _, rec := range records {
		fmt.Fprintf(&b, "- %s (%s): %d characters\n", title.String(pageLabel(rec.ID)), rec.URL, rec.Length)
	}

	for _, rec := range records {
		fmt.Fprintf(&b, "\n%s:\n%s\n", strings.ToUpper(pageLabel(rec.ID)), rec.Preview)
	}
	return b.String()
}

// pageLabel turns a page identifier into words: "case-studies/acme" → "case studies acme".
func pageLabel(id string) string {
	if u, err := url.Parse(id); err == nil && u.Host != "" {
		id = strings.Trim(u.Path, "/")
		if id == "" {
			id = u.Host
		}
	}
	return strings.Join(strings.FieldsFunc(id, func(r rune) bool {
		return r == '-' || r == '_' || r == '/'
	}), " ")
}

func siteHost(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Host
}

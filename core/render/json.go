// Package render: JSON renderer.
// Emits the profile with its pages in rank order, plus a per-page outline
// (headings and link count) parsed from each page's Markdown.
package render

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/gaurav-prasanna/profilestrap/core"
)

var _ core.Renderer = (*JSONRenderer)(nil)

// JSONRenderer produces indented JSON output.
type JSONRenderer struct{}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// Heading is a Markdown heading found in a page.
type Heading struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
}

// PageOutline summarizes the structure of one page's Markdown.
type PageOutline struct {
	ID       string    `json:"id"`
	Headings []Heading `json:"headings"`
	Links    int       `json:"links"`
}

type profileDocument struct {
	*core.Profile
	Outline []PageOutline `json:"outline"`
}

// Render marshals the profile and its outline with two-space indentation.
func (r *JSONRenderer) Render(p *core.Profile) ([]byte, error) {
	if p == nil {
		return nil, fmt.Errorf("no profile to render")
	}

	doc := profileDocument{Profile: p, Outline: []PageOutline{}}
	for _, rec := range p.Pages.Records() {
		doc.Outline = append(doc.Outline, PageOutline{
			ID:       rec.ID,
			Headings: extractHeadings(rec.Markdown),
			Links:    countLinks(rec.Markdown),
		})
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return data, nil
}

// Extension returns the file extension for JSON output.
func (r *JSONRenderer) Extension() string {
	return ".json"
}

var headingRegex = regexp.MustCompile(`(?m)^(#{1,6})\s+(.+)$`)

func extractHeadings(md string) []Heading {
	matches := headingRegex.FindAllStringSubmatch(md, -1)
	headings := make([]Heading, 0, len(matches))
	for _, m := range matches {
		headings = append(headings, Heading{
			Level: len(m[1]),
			Text:  strings.TrimSpace(m[2]),
		})
	}
	return headings
}

// linkRegex matches Markdown links [text](url) and images ![alt](src).
var linkRegex = regexp.MustCompile(`\[([^\]]*)\]\(([^)]+)\)`)

func countLinks(md string) int {
	return len(linkRegex.FindAllStringIndex(md, -1))
}

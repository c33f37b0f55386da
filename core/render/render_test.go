package render_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/gaurav-prasanna/profilestrap/core"
	"github.com/gaurav-prasanna/profilestrap/core/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProfile() *core.Profile {
	at := time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC)
	pages := core.NewPipelineResult()
	pages.Add(core.NewPageRecord("services", "https://acme.example/services", core.ScrapedPage{
		Text:     "We build mobile apps.",
		Markdown: "# Services\n\nWe build [mobile apps](https://acme.example/apps).\n\n## Web",
	}, at))
	pages.Add(core.NewPageRecord("about", "https://acme.example/about", core.ScrapedPage{Text: "Café founded in 2009."}, at))

	return &core.Profile{
		RunID:       "7d444840-9dc0-11d1-b245-5ffdce74fad2",
		BaseURL:     "https://acme.example",
		GeneratedAt: at,
		Summary:     "Acme is a studio.",
		Source:      "template",
		Pages:       pages,
		Links:       &core.CategorizedLinkSet{Internal: []string{"a", "b"}, External: []string{"c"}},
	}
}

func TestMarkdownRenderer(t *testing.T) {
	t.Parallel()

	r := render.NewMarkdownRenderer()
	assert.Equal(t, ".md", r.Extension())

	data, err := r.Render(testProfile())
	require.NoError(t, err)
	md := string(data)

	assert.True(t, strings.HasPrefix(md, "# Business Profile: acme.example\n"))
	assert.Contains(t, md, "- Generated: 2026-10-18T09:30:00Z\n")
	assert.Contains(t, md, "- Summary: template\n")
	assert.Contains(t, md, "## Summary\n\nAcme is a studio.\n")
	assert.Contains(t, md, "### services\n\n- URL: https://acme.example/services\n- Length: 21 characters\n\n> We build mobile apps.\n")
	assert.Contains(t, md, "- Internal: 2\n- External: 1\n")
	assert.Less(t, strings.Index(md, "### services"), strings.Index(md, "### about"))

	_, err = r.Render(nil)
	require.Error(t, err)
}

func TestMarkdownRenderer_NoPages(t *testing.T) {
	t.Parallel()

	md := render.NewMarkdownRenderer().Document(&core.Profile{BaseURL: "https://acme.example", Summary: "none"})
	assert.NotContains(t, md, "## Pages")
	assert.NotContains(t, md, "## Links")
}

func TestJSONRenderer(t *testing.T) {
	t.Parallel()

	r := render.NewJSONRenderer()
	assert.Equal(t, ".json", r.Extension())

	data, err := r.Render(testProfile())
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  \"run_id\": ")

	var doc struct {
		BaseURL string                     `json:"base_url"`
		Source  string                     `json:"summary_source"`
		Pages   map[string]core.PageRecord `json:"pages"`
		Links   core.CategorizedLinkSet    `json:"links"`
		Outline []render.PageOutline       `json:"outline"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "https://acme.example", doc.BaseURL)
	assert.Equal(t, "template", doc.Source)
	assert.Equal(t, "Café founded in 2009.", doc.Pages["about"].Content)
	assert.Equal(t, []string{"c"}, doc.Links.External)

	require.Len(t, doc.Outline, 2)
	assert.Equal(t, "services", doc.Outline[0].ID)
	assert.Equal(t, []render.Heading{{Level: 1, Text: "Services"}, {Level: 2, Text: "Web"}}, doc.Outline[0].Headings)
	assert.Equal(t, 1, doc.Outline[0].Links)
	assert.Empty(t, doc.Outline[1].Headings)
}

func TestPDFRenderer(t *testing.T) {
	t.Parallel()

	r := render.NewPDFRenderer()
	assert.Equal(t, ".pdf", r.Extension())

	data, err := r.Render(testProfile())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF-"))

	_, err = r.Render(nil)
	require.Error(t, err)
}

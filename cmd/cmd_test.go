package cmd_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gaurav-prasanna/profilestrap/cmd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSite(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/{$}", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(`<html><body>
			<a href="/about">About</a>
			<a href="/services?ref=nav#top">Services</a>
			<a href="/contact">Contact</a>
			<a href="/privacy">Privacy</a>
			<a href="https://github.com/acme">GitHub</a>
			<a href="mailto:hello@acme.example">Mail</a>
			<img src="/logo.png">
		</body></html>`))
	})
	mux.HandleFunc("/about", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html><body><nav>Menu</nav><main><h1>About Acme</h1>\n<p>We build apps since 2009.</p></main></body></html>"))
	})
	mux.HandleFunc("/services", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html><body><main><h1>Services</h1>\n<p>Mobile and web development.</p></main></body></html>"))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	root := cmd.NewRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestProfileCommand(t *testing.T) {
	t.Parallel()

	t.Run("writes an auto-named markdown profile", func(t *testing.T) {
		t.Parallel()

		srv := newSite(t)
		dir := t.TempDir()
		stdout, _, err := run(t, "profile", srv.URL, "--no-ai", "--output-dir", dir)
		require.NoError(t, err)
		assert.Contains(t, stdout, "✓ Written: ")

		matches, err := filepath.Glob(filepath.Join(dir, "*_profile.md"))
		require.NoError(t, err)
		require.Len(t, matches, 1)

		data, err := os.ReadFile(matches[0])
		require.NoError(t, err)
		md := string(data)
		assert.Contains(t, md, "# Business Profile: ")
		assert.Contains(t, md, "- Summary: template")
		assert.Contains(t, md, "PAGES ANALYZED: 2")
		assert.Contains(t, md, "> About Acme We build apps since 2009.")
		assert.NotContains(t, md, "Menu")
		assert.Less(t, strings.Index(md, "### about"), strings.Index(md, "### services"))
	})

	t.Run("writes json to an explicit path", func(t *testing.T) {
		t.Parallel()

		srv := newSite(t)
		target := filepath.Join(t.TempDir(), "acme.json")
		_, _, err := run(t, "profile", srv.URL, "--no-ai", "--format", "json", "--output", target, "--concurrency", "2", "--with-links")
		require.NoError(t, err)

		data, err := os.ReadFile(target)
		require.NoError(t, err)
		var doc struct {
			RunID  string                     `json:"run_id"`
			Source string                     `json:"summary_source"`
			Pages  map[string]json.RawMessage `json:"pages"`
			Links  struct {
				External []string `json:"external"`
				Other    []string `json:"other"`
			} `json:"links"`
		}
		require.NoError(t, json.Unmarshal(data, &doc))
		assert.Len(t, doc.RunID, 36)
		assert.Equal(t, "template", doc.Source)
		assert.Len(t, doc.Pages, 2)
		assert.Equal(t, []string{"https://github.com/acme"}, doc.Links.External)
		assert.Equal(t, []string{"mailto:hello@acme.example"}, doc.Links.Other)
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		t.Parallel()

		_, _, err := run(t, "profile", "example.com", "--no-ai")
		require.ErrorContains(t, err, "invalid URL")

		_, _, err = run(t, "profile", "ftp://example.com", "--no-ai")
		require.ErrorContains(t, err, "invalid URL")

		_, _, err = run(t, "profile", "https://example.com", "--format", "docx")
		require.ErrorContains(t, err, "unknown format")

		_, _, err = run(t, "profile", "https://example.com", "--max-pages", "0")
		require.ErrorContains(t, err, "max pages")
	})

	t.Run("unreachable site is an error", func(t *testing.T) {
		t.Parallel()

		srv := newSite(t)
		srv.Close()
		_, _, err := run(t, "profile", srv.URL, "--no-ai", "--output-dir", t.TempDir())
		require.ErrorContains(t, err, "profiling")
	})
}

func TestLinksCommand(t *testing.T) {
	t.Parallel()

	t.Run("category table", func(t *testing.T) {
		t.Parallel()

		srv := newSite(t)
		stdout, _, err := run(t, "links", srv.URL)
		require.NoError(t, err)
		assert.Contains(t, stdout, "Links on "+srv.URL+": 7")
		assert.Contains(t, stdout, "Category")
		assert.Contains(t, stdout, srv.URL+"/about")
		assert.Contains(t, stdout, "... and 1 more")
		assert.Contains(t, stdout, "https://github.com/acme")
		assert.Contains(t, stdout, srv.URL+"/logo.png")
	})

	t.Run("clean list", func(t *testing.T) {
		t.Parallel()

		srv := newSite(t)
		stdout, _, err := run(t, "links", srv.URL, "--clean")
		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(stdout), "\n")
		assert.Contains(t, lines, srv.URL+"/services")
		assert.NotContains(t, stdout, "ref=nav")
		assert.IsNonDecreasing(t, lines)
	})

	t.Run("organization filter", func(t *testing.T) {
		t.Parallel()

		srv := newSite(t)
		stdout, _, err := run(t, "links", srv.URL, "--org", "ACME")
		require.NoError(t, err)
		assert.Equal(t, "https://github.com/acme\nmailto:hello@acme.example\n", stdout)
	})
}

func TestPagesCommand(t *testing.T) {
	t.Parallel()

	srv := newSite(t)
	stdout, _, err := run(t, "pages", srv.URL, "--max-pages", "3")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Scraped 2 pages from "+srv.URL)
	assert.Contains(t, stdout, "\n[about]\nAbout Acme We build apps since 2009.\n")
	assert.Contains(t, stdout, "\n[services]\nServices Mobile and web development.\n")
}

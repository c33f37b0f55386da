package crawl_test

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/gaurav-prasanna/profilestrap/crawl"
	"github.com/gaurav-prasanna/profilestrap/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractLinks(t *testing.T) {
	t.Parallel()

	t.Run("resolves hrefs and image sources", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<a href="/about">About</a>
			<a href="services/">Services</a>
			<a href="//cdn.example.net/lib">CDN</a>
			<a href="https://other.com/page?x=1#top">Other</a>
			<a href="?page=2">Next</a>
			<a href="#team">Team</a>
			<img src="/logo.png">
		</body></html>`

		links, err := crawl.ExtractLinks(html, "https://example.com/company/")
		require.NoError(t, err)
		assert.Equal(t, []string{
			"https://example.com/about",
			"https://example.com/company/services/",
			"https://cdn.example.net/lib",
			"https://other.com/page?x=1#top",
			"https://example.com/company/?page=2",
			"https://example.com/company/#team",
			"https://example.com/logo.png",
		}, links)
	})

	t.Run("ignores empty and whitespace values", func(t *testing.T) {
		t.Parallel()

		html := `<a href="">x</a><a href="   ">y</a><a>z</a><img src=" "><a href=" /contact ">c</a>`
		links, err := crawl.ExtractLinks(html, "https://example.com")
		require.NoError(t, err)
		assert.Equal(t, []string{"https://example.com/contact"}, links)
	})

	t.Run("deduplicates", func(t *testing.T) {
		t.Parallel()

		html := `<a href="/about">1</a><a href="https://example.com/about">2</a><img src="/about">`
		links, err := crawl.ExtractLinks(html, "https://example.com")
		require.NoError(t, err)
		assert.Equal(t, []string{"https://example.com/about"}, links)
	})

	t.Run("every entry is absolute", func(t *testing.T) {
		t.Parallel()

		html := `<a href="a">1</a><a href="../b">2</a><a href="./c/d">3</a><a href="/e">4</a><img src="f.jpg">`
		links, err := crawl.ExtractLinks(html, "https://example.com/x/y/")
		require.NoError(t, err)
		require.Len(t, links, 5)
		for _, l := range links {
			u, err := url.Parse(l)
			require.NoError(t, err)
			assert.True(t, u.IsAbs(), l)
			assert.NotEmpty(t, u.Host, l)
		}
	})

	t.Run("rejects invalid base URL", func(t *testing.T) {
		t.Parallel()

		_, err := crawl.ExtractLinks(`<a href="/x">x</a>`, "http://[::1")
		require.Error(t, err)
	})
}

func TestFetchLinks(t *testing.T) {
	t.Parallel()

	t.Run("extracts links from fetched page", func(t *testing.T) {
		t.Parallel()

		f := mock.PageFetcher(map[string]string{
			"https://example.com": `<a href="/about">About</a>`,
		}, errors.New("not found"))

		links, err := crawl.FetchLinks(context.Background(), f, "https://example.com")
		require.NoError(t, err)
		assert.Equal(t, []string{"https://example.com/about"}, links)
	})

	t.Run("propagates fetch errors", func(t *testing.T) {
		t.Parallel()

		f := mock.PageFetcher(nil, errors.New("boom"))
		_, err := crawl.FetchLinks(context.Background(), f, "https://example.com")
		require.EqualError(t, err, "boom")
	})
}

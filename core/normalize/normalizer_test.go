package normalize_test

import (
	"testing"

	"github.com/gaurav-prasanna/profilestrap/core/normalize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkdownNormalizer_Normalize(t *testing.T) {
	t.Parallel()

	t.Run("converts headings and paragraphs", func(t *testing.T) {
		t.Parallel()

		md, err := normalize.New("").Normalize("<main><h1>About</h1><p>We build <strong>apps</strong>.</p></main>")
		require.NoError(t, err)
		assert.Contains(t, md, "# About")
		assert.Contains(t, md, "We build **apps**.")
	})

	t.Run("resolves relative links against domain", func(t *testing.T) {
		t.Parallel()

		md, err := normalize.New("https://example.com").Normalize(`<p><a href="/work">Our work</a></p>`)
		require.NoError(t, err)
		assert.Contains(t, md, "[Our work](https://example.com/work)")
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		_, err := normalize.New("").Normalize("   ")
		require.Error(t, err)
	})
}

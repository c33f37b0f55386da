package output_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gaurav-prasanna/profilestrap/core/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileFilename(t *testing.T) {
	t.Parallel()

	tests := []struct {
		base, ext, want string
	}{
		{"https://acme.example", ".md", "acme_example_profile.md"},
		{"https://www.acme.example/about?x=1", ".json", "www_acme_example_profile.json"},
		{"http://localhost:8080", ".pdf", "localhost_8080_profile.pdf"},
		{"", ".md", "site_profile.md"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, output.ProfileFilename(tt.base, tt.ext))
	}
}

func TestWriter_Write(t *testing.T) {
	t.Parallel()

	t.Run("auto-named in output dir", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "out")
		w, err := output.New(dir)
		require.NoError(t, err)
		assert.DirExists(t, dir)

		path, err := w.Write("", "https://acme.example", []byte("profile"), ".md")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "acme_example_profile.md"), path)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "profile", string(data))
	})

	t.Run("explicit path", func(t *testing.T) {
		t.Parallel()

		w, err := output.New(t.TempDir())
		require.NoError(t, err)

		target := filepath.Join(t.TempDir(), "nested", "report.json")
		path, err := w.Write(target, "https://acme.example", []byte("{}"), ".json")
		require.NoError(t, err)
		assert.Equal(t, target, path)
		assert.FileExists(t, target)
	})
}

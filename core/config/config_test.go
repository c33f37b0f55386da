package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gaurav-prasanna/profilestrap/core/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	assert.Equal(t, 8, cfg.MaxPages)
	assert.Equal(t, 15*time.Second, cfg.Timeout)
	assert.Equal(t, 8000, cfg.ContentBudget)
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAI.Model)
	require.NoError(t, cfg.Validate())
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "profilestrap.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
max_pages: 4
timeout: 5s
concurrency: 3
format: json
openai:
  model: gpt-4o
  temperature: 0.1
`), 0o644))

	cfg := config.Default()
	require.NoError(t, config.LoadFile(path, &cfg))
	assert.Equal(t, 4, cfg.MaxPages)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, 3, cfg.Concurrency)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "gpt-4o", cfg.OpenAI.Model)
	assert.InDelta(t, 0.1, cfg.OpenAI.Temperature, 1e-6)
	// Keys absent from the file keep defaults.
	assert.Equal(t, 1000, cfg.OpenAI.MaxTokens)
	assert.Equal(t, 8000, cfg.ContentBudget)
}

func TestLoadFile_Errors(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	require.Error(t, config.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"), &cfg))

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_pages: [nope"), 0o644))
	require.Error(t, config.LoadFile(path, &cfg))
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("OPENAI_MODEL", "local-model")
	t.Setenv("OPENAI_BASE_URL", "http://localhost:8080/v1")
	t.Setenv("PROFILESTRAP_MAX_PAGES", "3")

	cfg := config.Default()
	require.NoError(t, config.ApplyEnv(&cfg))
	assert.Equal(t, "sk-test", cfg.OpenAI.APIKey)
	assert.Equal(t, "local-model", cfg.OpenAI.Model)
	assert.Equal(t, "http://localhost:8080/v1", cfg.OpenAI.BaseURL)
	assert.Equal(t, 3, cfg.MaxPages)

	t.Setenv("PROFILESTRAP_MAX_PAGES", "many")
	require.Error(t, config.ApplyEnv(&cfg))
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("PROFILESTRAP_TEST_DOTENV=from-file\nPROFILESTRAP_TEST_KEEP=from-file\n"), 0o644))
	t.Setenv("PROFILESTRAP_TEST_KEEP", "from-env")
	t.Cleanup(func() { os.Unsetenv("PROFILESTRAP_TEST_DOTENV") })

	require.NoError(t, config.LoadDotEnv(path))
	assert.Equal(t, "from-file", os.Getenv("PROFILESTRAP_TEST_DOTENV"))
	assert.Equal(t, "from-env", os.Getenv("PROFILESTRAP_TEST_KEEP"))

	require.NoError(t, config.LoadDotEnv(filepath.Join(dir, "absent.env")))
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"max pages", func(c *config.Config) { c.MaxPages = 0 }},
		{"timeout", func(c *config.Config) { c.Timeout = 0 }},
		{"concurrency", func(c *config.Config) { c.Concurrency = -1 }},
		{"content budget", func(c *config.Config) { c.ContentBudget = 0 }},
		{"rate limit", func(c *config.Config) { c.RateLimit = -2 }},
		{"format", func(c *config.Config) { c.Format = "docx" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := config.Default()
			tt.mutate(&cfg)
			require.Error(t, cfg.Validate())
		})
	}
}

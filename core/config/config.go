// Package config holds the run configuration passed explicitly to every
// component. It is built once at startup from, in increasing precedence:
// defaults, an optional YAML file, a .env file, the environment, and flags
// (applied by the CLI).
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	yaml "gopkg.in/yaml.v3"
)

// Output formats understood by the renderers.
const (
	FormatMarkdown = "md"
	FormatJSON     = "json"
	FormatPDF      = "pdf"
)

// OpenAI configures the remote summarizer.
type OpenAI struct {
	APIKey      string  `yaml:"api_key"`
	BaseURL     string  `yaml:"base_url"`
	Model       string  `yaml:"model"`
	MaxTokens   int     `yaml:"max_tokens"`
	Temperature float32 `yaml:"temperature"`
}

// Config is the complete run configuration.
type Config struct {
	MaxPages      int           `yaml:"max_pages"`
	Timeout       time.Duration `yaml:"timeout"`
	Concurrency   int           `yaml:"concurrency"`
	ContentBudget int           `yaml:"content_budget"`
	UserAgent     string        `yaml:"user_agent"`
	// RateLimit caps requests per second to the target site; 0 disables it.
	RateLimit float64 `yaml:"rate_limit"`
	OpenAI    OpenAI  `yaml:"openai"`
	NoAI      bool    `yaml:"no_ai"`
	Format    string  `yaml:"format"`
	OutputDir string  `yaml:"output_dir"`
	Verbose   bool    `yaml:"verbose"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		MaxPages:      8,
		Timeout:       15 * time.Second,
		Concurrency:   1,
		ContentBudget: 8000,
		UserAgent:     "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36",
		OpenAI: OpenAI{
			Model:       "gpt-4o-mini",
			MaxTokens:   1000,
			Temperature: 0.3,
		},
		Format: FormatMarkdown,
	}
}

// Load builds a Config from defaults, the YAML file at path (if non-empty),
// a .env file in the working directory (if present), and the environment.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := LoadFile(path, &cfg); err != nil {
			return cfg, err
		}
	}
	if err := LoadDotEnv(".env"); err != nil {
		return cfg, err
	}
	if err := ApplyEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadFile decodes YAML from path over cfg. Keys absent from the file keep
// their current values.
func LoadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return nil
}

// LoadDotEnv loads variables from a .env file without overriding variables
// already set in the environment. A missing file is not an error.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides cfg with any of the supported environment variables
// that are set.
func ApplyEnv(cfg *Config) error {
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		cfg.OpenAI.APIKey = v
	}
	if v := os.Getenv("OPENAI_BASE_URL"); v != "" {
		cfg.OpenAI.BaseURL = v
	}
	if v := os.Getenv("OPENAI_MODEL"); v != "" {
		cfg.OpenAI.Model = v
	}
	if v := strings.TrimSpace(os.Getenv("PROFILESTRAP_MAX_PAGES")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("PROFILESTRAP_MAX_PAGES: %w", err)
		}
		cfg.MaxPages = n
	}
	return nil
}

// Validate checks the configuration for values no component can run with.
func (c Config) Validate() error {
	switch {
	case c.MaxPages <= 0:
		return fmt.Errorf("max pages must be positive, got %d", c.MaxPages)
	case c.Timeout <= 0:
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	case c.Concurrency <= 0:
		return fmt.Errorf("concurrency must be positive, got %d", c.Concurrency)
	case c.ContentBudget <= 0:
		return fmt.Errorf("content budget must be positive, got %d", c.ContentBudget)
	case c.RateLimit < 0:
		return fmt.Errorf("rate limit must not be negative, got %v", c.RateLimit)
	}
	switch c.Format {
	case FormatMarkdown, FormatJSON, FormatPDF:
	default:
		return fmt.Errorf("unknown format %q (want md, json, or pdf)", c.Format)
	}
	return nil
}

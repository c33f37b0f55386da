// Package output handles file naming and writing for profile artifacts.
// An explicit path is written as given; otherwise the filename is derived
// from the site host (e.g., acme_example_profile.md).
package output

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// Writer writes rendered output to disk.
type Writer struct {
	OutputDir string
}

// New creates a Writer targeting the given output directory.
// If outputDir is empty, it defaults to the current working directory.
func New(outputDir string) (*Writer, error) {
	if outputDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		outputDir = wd
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	return &Writer{OutputDir: outputDir}, nil
}

// Write stores data at path, creating parent directories as needed. An empty
// path writes to ProfileFilename(baseURL, ext) inside the output directory.
// It returns the path written.
func (w *Writer) Write(path, baseURL string, data []byte, ext string) (string, error) {
	if path == "" {
		path = filepath.Join(w.OutputDir, ProfileFilename(baseURL, ext))
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing file %s: %w", path, err)
	}
	return path, nil
}

// ProfileFilename returns the auto-generated artifact name for a site.
// Example: https://www.acme.example/about, ".md" → www_acme_example_profile.md
func ProfileFilename(baseURL, ext string) string {
	host := baseURL
	if parsed, err := url.Parse(baseURL); err == nil && parsed.Host != "" {
		host = parsed.Host
	}
	name := sanitize(host)
	if strings.Trim(name, "_") == "" {
		name = "site"
	}
	return name + "_profile" + ext
}

// sanitize replaces non-alphanumeric characters with underscores.
func sanitize(s string) string {
	var b strings.Builder
	for _, ch := range s {
		if (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9') {
			b.WriteRune(ch)
		} else {
			b.WriteRune('_')
		}
	}
	return b.String()
}

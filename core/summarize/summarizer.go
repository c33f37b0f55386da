// Package summarize produces business-profile summaries from scraped pages.
//
// Two implementations exist: OpenAI, backed by a chat-completion service, and
// Template, a deterministic fallback built only from the page records. Chain
// tries the first and falls back to the second, so a run never fails because
// the remote service is missing or erroring.
package summarize

import (
	"context"

	"github.com/gaurav-prasanna/profilestrap/core"
	"github.com/gaurav-prasanna/profilestrap/core/config"
	"github.com/rs/zerolog"
)

var _ core.Summarizer = (*Chain)(nil)

// Chain tries Primary and falls back to Fallback on any error.
type Chain struct {
	Primary  core.Summarizer
	Fallback core.Summarizer
	Logger   zerolog.Logger
}

// Name returns "chain".
func (c *Chain) Name() string { return "chain" }

// Summarize returns the primary summary, or the fallback summary when the
// primary fails. Empty results skip the primary entirely.
func (c *Chain) Summarize(ctx context.Context, pages *core.PipelineResult) (*core.Summary, error) {
	if c.Primary != nil && pages.Len() > 0 {
		summary, err := c.Primary.Summarize(ctx, pages)
		if err == nil {
			return summary, nil
		}
		c.Logger.Warn().Err(err).Str("summarizer", c.Primary.Name()).
			Msg("summary failed, falling back to " + c.Fallback.Name())
	}
	return c.Fallback.Summarize(ctx, pages)
}

// New selects a summarizer by availability: the OpenAI chain when an API key
// is configured and AI is enabled, otherwise the template alone.
func New(cfg config.Config, logger zerolog.Logger) core.Summarizer {
	if cfg.NoAI || cfg.OpenAI.APIKey == "" {
		logger.Debug().Bool("no_ai", cfg.NoAI).Msg("using template summarizer")
		return Template{}
	}
	return &Chain{
		Primary:  NewOpenAI(cfg.OpenAI, cfg.ContentBudget),
		Fallback: Template{},
		Logger:   logger,
	}
}

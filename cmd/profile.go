package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/gaurav-prasanna/profilestrap/core"
	"github.com/gaurav-prasanna/profilestrap/core/config"
	"github.com/gaurav-prasanna/profilestrap/core/extract"
	"github.com/gaurav-prasanna/profilestrap/core/fetch"
	"github.com/gaurav-prasanna/profilestrap/core/normalize"
	"github.com/gaurav-prasanna/profilestrap/core/output"
	"github.com/gaurav-prasanna/profilestrap/core/pipeline"
	"github.com/gaurav-prasanna/profilestrap/core/render"
	"github.com/gaurav-prasanna/profilestrap/core/summarize"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

type profileOptions struct {
	maxPages    int
	noAI        bool
	format      string
	output      string
	outputDir   string
	concurrency int
	withLinks   bool
}

func newProfileCmd(a *app) *cobra.Command {
	opts := &profileOptions{}

	cmd := &cobra.Command{
		Use:   "profile <url>",
		Short: "Build a business profile for a company website",
		Long: `Profile discovers the important pages of a site, scrapes them, summarizes
the business, and writes the profile in the chosen format.

The summary comes from an OpenAI-compatible model when OPENAI_API_KEY is set,
and from a deterministic template otherwise (or with --no-ai).

Examples:
  profilestrap profile https://example.com
  profilestrap profile https://example.com --format json --output-dir ./out
  profilestrap profile https://example.com --no-ai --max-pages 4 --concurrency 4`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runProfile(cmd, args[0], opts)
		},
	}

	f := cmd.Flags()
	f.IntVar(&opts.maxPages, "max-pages", 8, "Maximum number of pages to scrape")
	f.BoolVar(&opts.noAI, "no-ai", false, "Use the template summary instead of the AI model")
	f.StringVar(&opts.format, "format", config.FormatMarkdown, "Output format: md, json, or pdf")
	f.StringVarP(&opts.output, "output", "o", "", "Output file (default: <host>_profile.<ext> in --output-dir)")
	f.StringVar(&opts.outputDir, "output-dir", "", "Output directory (default: current directory)")
	f.IntVar(&opts.concurrency, "concurrency", 1, "Pages scraped at once")
	f.BoolVar(&opts.withLinks, "with-links", false, "Include link category counts in the profile")
	return cmd
}

func (a *app) runProfile(cmd *cobra.Command, rawURL string, opts *profileOptions) error {
	if err := validateURL(rawURL); err != nil {
		return err
	}

	cfg := a.cfg
	fs := cmd.Flags()
	if changed(fs, "max-pages") {
		cfg.MaxPages = opts.maxPages
	}
	if changed(fs, "no-ai") {
		cfg.NoAI = opts.noAI
	}
	if changed(fs, "format") {
		cfg.Format = opts.format
	}
	if changed(fs, "output-dir") {
		cfg.OutputDir = opts.outputDir
	}
	if changed(fs, "concurrency") {
		cfg.Concurrency = opts.concurrency
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	renderer, err := selectRenderer(cfg.Format)
	if err != nil {
		return err
	}
	writer, err := output.New(cfg.OutputDir)
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}

	ctx := cmd.Context()
	p := a.newPipeline(cfg, rawURL)

	stop := a.startSpinner(cmd.ErrOrStderr(), " Profiling "+rawURL)
	profile, err := a.buildProfile(ctx, p, cfg, rawURL, opts.withLinks)
	stop()
	if err != nil {
		return err
	}

	data, err := renderer.Render(profile)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	path, err := writer.Write(opts.output, rawURL, data, renderer.Extension())
	if err != nil {
		return err
	}

	a.logger.Info().Str("run_id", profile.RunID).Int("pages", profile.Pages.Len()).
		Str("summary", profile.Source).Msg("profile complete")
	fmt.Fprintf(cmd.OutOrStdout(), "✓ Written: %s\n", path)
	return nil
}

// buildProfile runs the pipeline and summarizer for baseURL.
func (a *app) buildProfile(ctx context.Context, p *pipeline.Pipeline, cfg config.Config, baseURL string, withLinks bool) (*core.Profile, error) {
	runID := uuid.NewString()
	log := a.logger.With().Str("run_id", runID).Logger()
	p.Logger = log

	pages, err := p.Run(ctx, baseURL, cfg.MaxPages)
	if err != nil {
		return nil, fmt.Errorf("profiling %s: %w", baseURL, err)
	}
	if pages.Len() == 0 {
		log.Warn().Str("url", baseURL).Msg("no pages could be scraped")
	}

	summary, err := summarize.New(cfg, log).Summarize(ctx, pages)
	if err != nil {
		return nil, fmt.Errorf("summarizing: %w", err)
	}

	profile := &core.Profile{
		RunID:       runID,
		BaseURL:     baseURL,
		GeneratedAt: p.Now().UTC(),
		Summary:     summary.Text,
		Source:      summary.Source,
		Pages:       pages,
	}
	if withLinks {
		set, _, err := p.Links(ctx, baseURL)
		if err != nil {
			log.Warn().Err(err).Msg("link categorization failed")
		} else {
			profile.Links = set
		}
	}
	return profile, nil
}

// newPipeline wires the fetcher, scraper, and pipeline from configuration.
func (a *app) newPipeline(cfg config.Config, baseURL string) *pipeline.Pipeline {
	fetcher := fetch.New(
		fetch.WithTimeout(cfg.Timeout),
		fetch.WithUserAgent(cfg.UserAgent),
		fetch.WithRateLimit(cfg.RateLimit),
	)
	scraper := extract.NewScraper(fetcher, normalize.New(baseURL))

	p := pipeline.New(fetcher, scraper, a.logger)
	p.Concurrency = cfg.Concurrency
	return p
}

// startSpinner shows progress on w unless verbose logging is on or w is not
// a terminal stream. The returned function stops it.
func (a *app) startSpinner(w io.Writer, suffix string) func() {
	if _, ok := w.(*os.File); !ok || a.cfg.Verbose {
		return func() {}
	}
	s := spinner.New(spinner.CharSets[9], 100*time.Millisecond, spinner.WithWriter(w))
	s.Suffix = suffix
	s.Start()
	return s.Stop
}

// selectRenderer creates the Renderer for an output format.
func selectRenderer(format string) (core.Renderer, error) {
	switch format {
	case config.FormatMarkdown:
		return render.NewMarkdownRenderer(), nil
	case config.FormatJSON:
		return render.NewJSONRenderer(), nil
	case config.FormatPDF:
		return render.NewPDFRenderer(), nil
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}

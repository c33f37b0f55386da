// Package cmd implements the CLI commands for ProfileStrap using Cobra.
package cmd

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"os/signal"
	"time"

	"github.com/gaurav-prasanna/profilestrap/core/config"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// app carries state shared by every command of one invocation.
type app struct {
	configPath string
	verbose    bool
	timeout    time.Duration
	rateLimit  float64

	cfg    config.Config
	logger zerolog.Logger
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "profilestrap",
		Short: "ProfileStrap: build a business profile from a company website",
		Long: `ProfileStrap discovers the business-relevant pages of a company website
(about, services, contact, work, team, ...), scrapes their text, and produces
a business profile summary.

Usage:
  profilestrap profile <url> [flags]
  profilestrap links <url> [flags]
  profilestrap pages <url> [flags]`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML config file")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "Verbose (debug) logging")
	pf.DurationVar(&a.timeout, "timeout", 15*time.Second, "Per-request timeout")
	pf.Float64Var(&a.rateLimit, "rate-limit", 0, "Max requests per second to the site (0 = unlimited)")

	rootCmd.AddCommand(newProfileCmd(a), newLinksCmd(a), newPagesCmd(a))
	return rootCmd
}

// Execute runs the root command. An interrupt cancels in-flight requests.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := NewRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// setup loads configuration, applies flags that were set explicitly, and
// builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	fs := cmd.Flags()
	if changed(fs, "timeout") {
		cfg.Timeout = a.timeout
	}
	if changed(fs, "rate-limit") {
		cfg.RateLimit = a.rateLimit
	}
	if changed(fs, "verbose") {
		cfg.Verbose = a.verbose
	}

	a.cfg = cfg
	a.logger = newLogger(cmd.ErrOrStderr(), cfg.Verbose)
	return nil
}

func newLogger(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: zerolog.SyncWriter(w), TimeFormat: time.RFC3339}).
		Level(level).
		With().Timestamp().Logger()
}

// changed reports whether the named flag was set on the command line.
func changed(fs *pflag.FlagSet, name string) bool {
	f := fs.Lookup(name)
	return f != nil && f.Changed
}

// validateURL requires an absolute http(s) URL with a host.
func validateURL(rawURL string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("invalid URL: %s (must include scheme, e.g. https://example.com)", rawURL)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("invalid URL: %s (scheme must be http or https)", rawURL)
	}
	return nil
}

package cmd

import (
	"fmt"

	"github.com/gaurav-prasanna/profilestrap/crawl"
	"github.com/rodaine/table"
	"github.com/spf13/cobra"
)

// sampleSize is the number of example links shown per category.
const sampleSize = 3

type linksOptions struct {
	clean bool
	org   string
}

func newLinksCmd(a *app) *cobra.Command {
	opts := &linksOptions{}

	cmd := &cobra.Command{
		Use:   "links <url>",
		Short: "Categorize the links found on a page",
		Long: `Links fetches a page and reports its links by category (internal,
external, images, other) with a few samples of each.

Examples:
  profilestrap links https://example.com
  profilestrap links https://example.com --clean
  profilestrap links https://example.com --org acme`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runLinks(cmd, args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.clean, "clean", false, "Print normalized, deduplicated, sorted links")
	cmd.Flags().StringVar(&opts.org, "org", "", "Print only links mentioning this organization name")
	return cmd
}

func (a *app) runLinks(cmd *cobra.Command, rawURL string, opts *linksOptions) error {
	if err := validateURL(rawURL); err != nil {
		return err
	}
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	p := a.newPipeline(a.cfg, rawURL)
	stop := a.startSpinner(cmd.ErrOrStderr(), " Fetching "+rawURL)
	set, links, err := p.Links(cmd.Context(), rawURL)
	stop()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch {
	case opts.org != "":
		for _, link := range crawl.OrganizationLinks(links, opts.org) {
			fmt.Fprintln(out, link)
		}
		return nil
	case opts.clean:
		for _, link := range crawl.CleanLinks(links) {
			fmt.Fprintln(out, link)
		}
		return nil
	}

	fmt.Fprintf(out, "Links on %s: %d\n\n", rawURL, set.Total())
	tbl := table.New("Category", "Count", "Samples").WithWriter(out)
	addCategory(tbl, "internal", set.Internal)
	addCategory(tbl, "external", set.External)
	addCategory(tbl, "images", set.Images)
	addCategory(tbl, "other", set.Other)
	tbl.Print()
	return nil
}

// addCategory adds one row per sample link; only the first carries the
// category name and count.
func addCategory(tbl table.Table, name string, links []string) {
	samples := links[:min(len(links), sampleSize)]
	if len(samples) == 0 {
		tbl.AddRow(name, 0, "")
		return
	}
	for i, link := range samples {
		if i == 0 {
			tbl.AddRow(name, len(links), link)
		} else {
			tbl.AddRow("", "", link)
		}
	}
	if rest := len(links) - len(samples); rest > 0 {
		tbl.AddRow("", "", fmt.Sprintf("... and %d more", rest))
	}
}

package cmd

import (
	"fmt"

	"github.com/rodaine/table"
	"github.com/spf13/cobra"
)

type pagesOptions struct {
	maxPages int
}

func newPagesCmd(a *app) *cobra.Command {
	opts := &pagesOptions{}

	cmd := &cobra.Command{
		Use:   "pages <url>",
		Short: "Discover and scrape the important pages of a site",
		Long: `Pages ranks the internal pages linked from the given URL, scrapes the top
candidates, and prints each page with a content preview. No summary is made.

Examples:
  profilestrap pages https://example.com
  profilestrap pages https://example.com --max-pages 3`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runPages(cmd, args[0], opts)
		},
	}

	cmd.Flags().IntVar(&opts.maxPages, "max-pages", 8, "Maximum number of pages to scrape")
	return cmd
}

func (a *app) runPages(cmd *cobra.Command, rawURL string, opts *pagesOptions) error {
	if err := validateURL(rawURL); err != nil {
		return err
	}
	cfg := a.cfg
	if changed(cmd.Flags(), "max-pages") {
		cfg.MaxPages = opts.maxPages
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	p := a.newPipeline(cfg, rawURL)
	stop := a.startSpinner(cmd.ErrOrStderr(), " Scraping "+rawURL)
	result, err := p.Run(cmd.Context(), rawURL, cfg.MaxPages)
	stop()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Scraped %d pages from %s\n\n", result.Len(), rawURL)
	if result.Len() == 0 {
		return nil
	}

	tbl := table.New("Page", "Length", "URL").WithWriter(out)
	for _, rec := range result.Records() {
		tbl.AddRow(rec.ID, rec.Length, rec.URL)
	}
	tbl.Print()

	for _, rec := range result.Records() {
		fmt.Fprintf(out, "\n[%s]\n%s\n", rec.ID, rec.Preview)
	}
	return nil
}

package cli

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/me/shopadmin/internal/listview"
)

// listOpts are the shared flags of every list subcommand.
type listOpts struct {
	search   string
	page     int
	pageSize int
}

func addListFlags(cmd *cobra.Command, opts *listOpts) {
	cmd.Flags().StringVarP(&opts.search, "search", "q", "", "Case-insensitive substring filter")
	cmd.Flags().IntVar(&opts.page, "page", 1, "Page number (1-based)")
	cmd.Flags().IntVar(&opts.pageSize, "page-size", listview.DefaultPageSize, "Records per page")
}

// runList executes the list pipeline and prints one page as a table.
func runList[T any](cmd *cobra.Command, cfg listview.Config[T], opts listOpts, header string, row func(T) string) error {
	cfg.PageSize = opts.pageSize

	p := listview.New(cfg)
	if err := p.Load(cmd.Context()); err != nil {
		return err
	}
	p.SetSearch(opts.search)
	p.SetPage(opts.page)

	out := cmd.OutOrStdout()
	window := p.Window()
	if len(window) == 0 {
		fmt.Fprintln(out, "No results.")
		return nil
	}

	fmt.Fprintln(out, header)
	for _, rec := range window {
		fmt.Fprintln(out, row(rec))
	}
	fmt.Fprintf(out, "\nPage %d of %d (%d results)\n", p.Page(), p.TotalPages(), len(p.Filtered()))
	return nil
}

func money(v float64) string {
	return "$" + humanize.CommafWithDigits(v, 2)
}

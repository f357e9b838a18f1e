package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stockledger"
	"github.com/etnz/stockledger/renderer"
	"github.com/google/subcommands"
)

type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "show inventory totals and the category tally" }
func (*summaryCmd) Usage() string {
	return `stk summary

  Computes the inventory overview: item and unit counts, inventory value,
  revenue, alert counts and the per-category tally.
`
}

func (*summaryCmd) SetFlags(f *flag.FlagSet) {}

func (p *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, cfg, err := openBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	items := book.Ledger().Items()
	overview := stockledger.NewOverview(items, book.Ledger().Revenue(), cfg.LowStockThreshold)
	printMarkdown(renderer.Summary(overview, stockledger.Tally(items)))
	return subcommands.ExitSuccess
}

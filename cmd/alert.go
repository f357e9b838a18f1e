package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stockledger/renderer"
	"github.com/google/subcommands"
)

type alertCmd struct {
	threshold int64
}

func (*alertCmd) Name() string     { return "alert" }
func (*alertCmd) Synopsis() string { return "show out-of-stock and low-stock items" }
func (*alertCmd) Usage() string {
	return `stk alert [-t <threshold>]

  Partitions the ledger into out-of-stock items (zero units) and low-stock
  items (below the threshold). The threshold defaults to the configured one.
`
}

func (p *alertCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&p.threshold, "t", 0, "Low-stock threshold for this run.")
}

func (p *alertCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, cfg, err := openBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	threshold := p.threshold
	if threshold <= 0 {
		threshold = cfg.LowStockThreshold
	}

	out, low := book.Ledger().LowStock(threshold)
	printMarkdown(renderer.Alert(out, low, threshold))
	return subcommands.ExitSuccess
}

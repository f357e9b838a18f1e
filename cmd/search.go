package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stockledger/renderer"
	"github.com/google/subcommands"
)

type searchCmd struct{}

func (*searchCmd) Name() string     { return "search" }
func (*searchCmd) Synopsis() string { return "search items by name or category" }
func (*searchCmd) Usage() string {
	return `stk search <query>

  Lists the items whose name or category contains the query,
  case-insensitively, in ledger order.
`
}

func (*searchCmd) SetFlags(f *flag.FlagSet) {}

func (p *searchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: search wants exactly one query argument.")
		return subcommands.ExitUsageError
	}

	book, _, err := openBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	query := f.Arg(0)
	matches := book.Ledger().Search(query)
	printMarkdown(renderer.Items(fmt.Sprintf("Items matching %q", query), matches))
	return subcommands.ExitSuccess
}

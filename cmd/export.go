package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stockledger"
	"github.com/google/subcommands"
)

type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export all items in the import/export format" }
func (*exportCmd) Usage() string {
	return `stk export [-o <file>]

  Writes every item as one JSON object per line, to stdout or to a file.
  The output can be imported into another data directory with stk import.
`
}

func (p *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.output, "o", "", "Output file. Defaults to stdout.")
}

func (p *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, _, err := openBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	w := os.Stdout
	if p.output != "" {
		file, err := os.Create(p.output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening export file %q: %v\n", p.output, err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		w = file
	}

	if err := stockledger.ExportItems(w, book.Ledger().Items()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

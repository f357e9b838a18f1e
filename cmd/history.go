package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stockledger/renderer"
	"github.com/google/subcommands"
)

type historyCmd struct {
	tail int
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "show the activity journal" }
func (*historyCmd) Usage() string {
	return `stk history [-n <count>]

  Shows the most recent journal entries in write order, followed by a
  per-action summary of the whole journal.
`
}

func (p *historyCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&p.tail, "n", 20, "Show only the last N entries. 0 shows everything.")
}

func (p *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, _, err := openBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	journal := book.Journal()
	printMarkdown(renderer.History(journal.Recent(p.tail), journal.Summarize()))
	return subcommands.ExitSuccess
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type deleteCmd struct {
	id   int64
	name string
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "remove an item from the ledger" }
func (*deleteCmd) Usage() string {
	return `stk delete [-id <id> | -name <name>]

  Removes the item. The journal records the quantity held at removal time,
  so the loss stays auditable.
`
}

func (p *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&p.id, "id", 0, "Item id to delete.")
	f.StringVar(&p.name, "name", "", "Exact item name, used when -id is not given.")
}

func (p *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, _, err := openBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	id, err := resolveID(book.Ledger(), p.id, p.name)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	removed, err := book.Delete(id)
	if err == nil || isJournalWarning(err) {
		fmt.Printf("Deleted %q (id %d), %d units written off\n", removed.Name, removed.ID, removed.Quantity)
	}
	return reportMutation(err)
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type restockCmd struct {
	id   int64
	name string
	qty  int64
}

func (*restockCmd) Name() string     { return "restock" }
func (*restockCmd) Synopsis() string { return "add units to an existing item" }
func (*restockCmd) Usage() string {
	return `stk restock [-id <id> | -name <name>] -qty <n>

  Increases an existing item's quantity without creating a new item.
`
}

func (p *restockCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&p.id, "id", 0, "Item id to restock.")
	f.StringVar(&p.name, "name", "", "Exact item name, used when -id is not given.")
	f.Int64Var(&p.qty, "qty", 0, "Units to add.")
}

func (p *restockCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	it, err := book.Restock(id, p.qty)
	if err == nil || isJournalWarning(err) {
		fmt.Printf("Restocked %q (id %d) to %d units\n", it.Name, it.ID, it.Quantity)
	}
	return reportMutation(err)
}

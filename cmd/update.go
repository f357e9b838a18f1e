package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stockledger"
	"github.com/google/subcommands"
)

type updateCmd struct {
	id       int64
	newID    int64
	name     string
	category string
	qty      int64
	price    float64

	set map[string]bool // flags explicitly provided on the command line
}

func (*updateCmd) Name() string     { return "update" }
func (*updateCmd) Synopsis() string { return "change one or more fields of an item" }
func (*updateCmd) Usage() string {
	return `stk update -id <id> [-new-id <id>] [-name <name>] [-category <category>] [-qty <n>] [-price <unit price>]

  Applies a partial update: only the flags given change, everything else
  keeps its prior value. An id change is validated for uniqueness.
`
}

func (p *updateCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&p.id, "id", 0, "Item id to update.")
	f.Int64Var(&p.newID, "new-id", 0, "New id for the item.")
	f.StringVar(&p.name, "name", "", "New name.")
	f.StringVar(&p.category, "category", "", "New category.")
	f.Int64Var(&p.qty, "qty", 0, "New quantity.")
	f.Float64Var(&p.price, "price", 0, "New unit price.")
}

func (p *updateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p.set = make(map[string]bool)
	f.Visit(func(fl *flag.Flag) { p.set[fl.Name] = true })

	book, cfg, err := openBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var patch stockledger.Patch
	if p.set["new-id"] {
		patch.ID = &p.newID
	}
	if p.set["name"] {
		patch.Name = &p.name
	}
	if p.set["category"] {
		category, err := stockledger.ParseCategory(p.category)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitFailure
		}
		patch.Category = &category
	}
	if p.set["qty"] {
		patch.Quantity = &p.qty
	}
	if p.set["price"] {
		price := stockledger.M(p.price, cfg.Currency)
		patch.Price = &price
	}

	it, err := book.Update(p.id, patch)
	if err == nil || isJournalWarning(err) {
		fmt.Printf("Updated %q (id %d)\n", it.Name, it.ID)
	}
	return reportMutation(err)
}

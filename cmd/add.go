package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stockledger"
	"github.com/google/subcommands"
)

type addCmd struct {
	id       int64
	name     string
	category string
	qty      int64
	price    float64
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a new item to the ledger" }
func (*addCmd) Usage() string {
	return `stk add -name <name> -category <category> [-id <id>] [-qty <n>] [-price <unit price>]

  Adds a new item. The id defaults to the next free one. If an item with the
  exact same name already exists the add is rejected: restock it instead,
  so the same product never exists under two ids.
`
}

func (p *addCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&p.id, "id", 0, "Item id. Defaults to the next free id.")
	f.StringVar(&p.name, "name", "", "Item name.")
	f.StringVar(&p.category, "category", "", "Item category.")
	f.Int64Var(&p.qty, "qty", 0, "Initial quantity.")
	f.Float64Var(&p.price, "price", 0, "Initial unit price.")
}

func (p *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, cfg, err := openBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	category, err := stockledger.ParseCategory(p.category)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	id := p.id
	if id == 0 {
		id = book.Ledger().NextID()
	}

	err = book.Add(stockledger.Item{
		ID:        id,
		Name:      p.name,
		Category:  category,
		Quantity:  p.qty,
		LastPrice: stockledger.M(p.price, cfg.Currency),
	})
	if errors.Is(err, stockledger.ErrDuplicateName) {
		fmt.Fprintf(os.Stderr, "Error: %v\nUse `stk restock -name %q -qty %d` to merge the quantities instead.\n", err, p.name, p.qty)
		return subcommands.ExitFailure
	}
	if err == nil || isJournalWarning(err) {
		fmt.Printf("Added %q (id %d)\n", p.name, id)
	}
	return reportMutation(err)
}

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

type sellCmd struct {
	id    int64
	name  string
	qty   int64
	price float64
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "record a sale against an item" }
func (*sellCmd) Usage() string {
	return `stk sell [-id <id> | -name <name>] -qty <n> -price <unit price>

  Records a sale: decrements the item's quantity, updates its last price,
  and adds the sale amount to the running revenue.
`
}

func (p *sellCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&p.id, "id", 0, "Item id to sell.")
	f.StringVar(&p.name, "name", "", "Exact item name, used when -id is not given.")
	f.Int64Var(&p.qty, "qty", 0, "Number of units sold.")
	f.Float64Var(&p.price, "price", 0, "Unit price of this sale.")
}

func (p *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, cfg, err := openBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	id, err := resolveID(book.Ledger(), p.id, p.name)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	sale, err := book.Sell(id, p.qty, stockledger.M(p.price, cfg.Currency))
	if err == nil || isJournalWarning(err) {
		printMarkdown(renderer.Receipt(sale))
	}
	return reportMutation(err)
}

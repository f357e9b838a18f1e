package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stockledger"
	"github.com/google/subcommands"
	"gopkg.in/yaml.v3"
)

type importCmd struct {
	catalog string
	mapping string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import items from an export or a supplier catalog" }
func (*importCmd) Usage() string {
	return `stk import <file>
stk import -catalog <file> -mapping <mapping.yaml>

  Imports items into the ledger. The default input is the JSONL
  import/export format produced by stk export. With -catalog, the input is
  an arbitrary supplier JSON document and -mapping points to a YAML file of
  jsonpath queries locating the item fields.

  Items whose exact name already exists are merged as restocks; new items
  get the next free id when they carry none.
`
}

func (p *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.catalog, "catalog", "", "Supplier catalog JSON file to import.")
	f.StringVar(&p.mapping, "mapping", "", "YAML mapping of jsonpath queries for -catalog.")
}

func (p *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, cfg, err := openBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var items []stockledger.Item
	switch {
	case p.catalog != "":
		items, err = p.readCatalog(cfg.Currency)
	case f.NArg() == 1:
		items, err = p.readExport(f.Arg(0), cfg.Currency)
	default:
		fmt.Fprintln(os.Stderr, "Error: give an export file argument, or -catalog with -mapping.")
		return subcommands.ExitUsageError
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	var added, merged int
	for _, it := range items {
		if prev, err := book.Ledger().FindByName(it.Name); err == nil {
			if _, err := book.Restock(prev.ID, it.Quantity); err != nil && !isJournalWarning(err) {
				fmt.Fprintf(os.Stderr, "Error merging %q: %v\n", it.Name, err)
				return subcommands.ExitFailure
			}
			merged++
			continue
		}
		if it.ID == 0 {
			it.ID = book.Ledger().NextID()
		}
		if err := book.Add(it); err != nil && !isJournalWarning(err) {
			fmt.Fprintf(os.Stderr, "Error importing %q: %v\n", it.Name, err)
			return subcommands.ExitFailure
		}
		added++
	}

	fmt.Printf("Imported %d items (%d added, %d merged as restocks)\n", added+merged, added, merged)
	return subcommands.ExitSuccess
}

func (p *importCmd) readExport(path, currency string) ([]stockledger.Item, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open import file %q: %w", path, err)
	}
	defer f.Close()
	return stockledger.ImportItems(f, currency)
}

func (p *importCmd) readCatalog(currency string) ([]stockledger.Item, error) {
	if p.mapping == "" {
		return nil, fmt.Errorf("-catalog needs a -mapping file")
	}
	data, err := os.ReadFile(p.mapping)
	if err != nil {
		return nil, fmt.Errorf("could not read mapping %q: %w", p.mapping, err)
	}
	var m stockledger.CatalogMapping
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("could not parse mapping %q: %w", p.mapping, err)
	}

	f, err := os.Open(p.catalog)
	if err != nil {
		return nil, fmt.Errorf("could not open catalog %q: %w", p.catalog, err)
	}
	defer f.Close()
	return stockledger.ImportCatalog(f, m, currency)
}

// Package cmd implements the CLI application to manage a stock ledger.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stockledger"
	"github.com/google/subcommands"
)

// Commands lists every subcommand. A main package registers them on a
// commander and executes the user-selected one.
var Commands = []subcommands.Command{
	&sellCmd{},
	&addCmd{},
	&restockCmd{},
	&listCmd{},
	&updateCmd{},
	&deleteCmd{},
	&searchCmd{},
	&alertCmd{},
	&historyCmd{},
	&summaryCmd{},
	&menuCmd{},
	&exportCmd{},
	&importCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configPath = flag.String("config", "stockledger.yaml", "Path to the YAML configuration file")
var dataDir = flag.String("data-dir", "", "Data directory override (defaults to the configured one)")

// loadConfig reads the config file and applies command-line overrides.
func loadConfig() (stockledger.Config, error) {
	cfg, err := stockledger.LoadConfig(*configPath)
	if err != nil {
		return cfg, err
	}
	if *dataDir != "" {
		cfg.Dir = *dataDir
	}
	return cfg, nil
}

// openBook loads the ledger, revenue and journal from the configured store.
func openBook() (*stockledger.Book, stockledger.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, cfg, err
	}
	book, err := stockledger.OpenBook(cfg.Store())
	if err != nil {
		return nil, cfg, fmt.Errorf("could not open ledger in %q: %w", cfg.Dir, err)
	}
	return book, cfg, nil
}

// reportMutation handles the shared tail of every mutating command: a
// journal write failure is a warning, anything else is a failure.
func reportMutation(err error) subcommands.ExitStatus {
	if err == nil {
		return subcommands.ExitSuccess
	}
	if errors.Is(err, stockledger.ErrJournalWrite) {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		return subcommands.ExitSuccess
	}
	fmt.Fprintln(os.Stderr, "Error:", err)
	return subcommands.ExitFailure
}

// isJournalWarning reports whether the mutation itself succeeded and only
// the journal write failed.
func isJournalWarning(err error) bool {
	return errors.Is(err, stockledger.ErrJournalWrite)
}

// resolveID turns an -id or -name selector into an item id.
func resolveID(ledger *stockledger.Ledger, id int64, name string) (int64, error) {
	if id > 0 {
		return id, nil
	}
	if name == "" {
		return 0, fmt.Errorf("select an item with -id or -name")
	}
	it, err := ledger.FindByName(name)
	if err != nil {
		return 0, err
	}
	return it.ID, nil
}

package cmd

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/etnz/stockledger"
	"github.com/etnz/stockledger/renderer"
	"github.com/google/subcommands"
)

// menuCmd is the interactive shell around the command layer: a numbered
// menu matching the original tool's surface. All validation and state
// changes happen in the Book; the menu only reads input and prints results.
type menuCmd struct{}

func (*menuCmd) Name() string     { return "menu" }
func (*menuCmd) Synopsis() string { return "run the interactive menu" }
func (*menuCmd) Usage() string {
	return `stk menu

  Runs the interactive session: a numbered menu looping until Exit, which
  flushes the final snapshot and records a SYSTEM journal entry.
`
}

func (*menuCmd) SetFlags(f *flag.FlagSet) {}

func (p *menuCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, cfg, err := openBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	m := menu{book: book, cfg: cfg, threshold: cfg.LowStockThreshold, in: bufio.NewScanner(os.Stdin)}
	return m.run()
}

type menu struct {
	book *stockledger.Book
	cfg  stockledger.Config
	// threshold starts at the configured value and can be changed for the
	// rest of the session from the alert screen.
	threshold int64
	in        *bufio.Scanner
}

func (m *menu) run() subcommands.ExitStatus {
	for {
		fmt.Println()
		fmt.Println("1. Sell    2. Add      3. View All")
		fmt.Println("4. Update  5. Delete   6. Search")
		fmt.Println("7. Alert   8. History  9. Exit")

		choice, err := m.promptInt("Choice")
		if err != nil {
			if errors.Is(err, io.EOF) {
				return m.exit()
			}
			fmt.Println("Please enter a number between 1 and 9.")
			continue
		}

		switch choice {
		case 1:
			err = m.sell()
		case 2:
			err = m.add()
		case 3:
			printMarkdown(renderer.Items("Stock Items", m.book.Ledger().Items()))
		case 4:
			err = m.update()
		case 5:
			err = m.delete()
		case 6:
			err = m.search()
		case 7:
			err = m.alert()
		case 8:
			printMarkdown(renderer.History(m.book.Journal().Recent(20), m.book.Journal().Summarize()))
		case 9:
			return m.exit()
		default:
			fmt.Println("Please enter a number between 1 and 9.")
		}

		switch {
		case errors.Is(err, io.EOF):
			return m.exit()
		case errors.Is(err, stockledger.ErrJournalWrite):
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		case err != nil:
			fmt.Println("Error:", err)
		}
	}
}

func (m *menu) exit() subcommands.ExitStatus {
	if err := m.book.Close(); err != nil && !errors.Is(err, stockledger.ErrJournalWrite) {
		fmt.Fprintln(os.Stderr, "Error saving on exit:", err)
		return subcommands.ExitFailure
	}
	fmt.Println("Goodbye.")
	return subcommands.ExitSuccess
}

func (m *menu) sell() error {
	id, err := m.promptItem()
	if err != nil {
		return err
	}
	qty, err := m.promptInt64("Quantity")
	if err != nil {
		return err
	}
	price, err := m.promptFloat("Unit price")
	if err != nil {
		return err
	}
	sale, err := m.book.Sell(id, qty, stockledger.M(price, m.cfg.Currency))
	if err == nil || errors.Is(err, stockledger.ErrJournalWrite) {
		printMarkdown(renderer.Receipt(sale))
	}
	return err
}

func (m *menu) add() error {
	name, err := m.prompt("Name")
	if err != nil {
		return err
	}

	// An existing exact name is a restock, never a second item.
	if prev, err := m.book.Ledger().FindByName(name); err == nil {
		fmt.Printf("%q already exists as item %d with %d units.\n", prev.Name, prev.ID, prev.Quantity)
		qty, err := m.promptInt64("Units to add")
		if err != nil {
			return err
		}
		it, err := m.book.Restock(prev.ID, qty)
		if err == nil || errors.Is(err, stockledger.ErrJournalWrite) {
			fmt.Printf("Restocked %q to %d units.\n", it.Name, it.Quantity)
		}
		return err
	}

	fmt.Println("Categories:")
	for i, c := range stockledger.Categories() {
		fmt.Printf("  %d. %s\n", i+1, c)
	}
	n, err := m.promptInt("Category")
	if err != nil {
		return err
	}
	cats := stockledger.Categories()
	if n < 1 || n > len(cats) {
		return fmt.Errorf("%w: choice %d", stockledger.ErrInvalidCategory, n)
	}

	qty, err := m.promptInt64("Quantity")
	if err != nil {
		return err
	}
	price, err := m.promptFloat("Unit price")
	if err != nil {
		return err
	}

	id := m.book.Ledger().NextID()
	err = m.book.Add(stockledger.Item{
		ID:        id,
		Name:      name,
		Category:  cats[n-1],
		Quantity:  qty,
		LastPrice: stockledger.M(price, m.cfg.Currency),
	})
	if err == nil || errors.Is(err, stockledger.ErrJournalWrite) {
		fmt.Printf("Added %q (id %d).\n", name, id)
	}
	return err
}

func (m *menu) update() error {
	id, err := m.promptItem()
	if err != nil {
		return err
	}
	fmt.Println("Leave a field empty to keep its value.")

	var patch stockledger.Patch
	if s, err := m.prompt("New name"); err != nil {
		return err
	} else if s != "" {
		patch.Name = &s
	}
	if s, err := m.prompt("New category"); err != nil {
		return err
	} else if s != "" {
		category, err := stockledger.ParseCategory(s)
		if err != nil {
			return err
		}
		patch.Category = &category
	}
	if s, err := m.prompt("New quantity"); err != nil {
		return err
	} else if s != "" {
		qty, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid quantity %q: %w", s, err)
		}
		patch.Quantity = &qty
	}
	if s, err := m.prompt("New price"); err != nil {
		return err
	} else if s != "" {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("invalid price %q: %w", s, err)
		}
		price := stockledger.M(f, m.cfg.Currency)
		patch.Price = &price
	}

	it, err := m.book.Update(id, patch)
	if err == nil || errors.Is(err, stockledger.ErrJournalWrite) {
		fmt.Printf("Updated %q (id %d).\n", it.Name, it.ID)
	}
	return err
}

func (m *menu) delete() error {
	id, err := m.promptItem()
	if err != nil {
		return err
	}
	it, err := m.book.Ledger().FindByID(id)
	if err != nil {
		return err
	}
	confirm, err := m.prompt(fmt.Sprintf("Delete %q holding %d units? (y/N)", it.Name, it.Quantity))
	if err != nil {
		return err
	}
	if !strings.EqualFold(confirm, "y") {
		fmt.Println("Kept.")
		return nil
	}
	removed, err := m.book.Delete(id)
	if err == nil || errors.Is(err, stockledger.ErrJournalWrite) {
		fmt.Printf("Deleted %q (id %d).\n", removed.Name, removed.ID)
	}
	return err
}

func (m *menu) alert() error {
	out, low := m.book.Ledger().LowStock(m.threshold)
	printMarkdown(renderer.Alert(out, low, m.threshold))

	confirm, err := m.prompt("Change threshold? (y/N)")
	if err != nil {
		return err
	}
	if !strings.EqualFold(confirm, "y") {
		return nil
	}
	n, err := m.promptInt64("New threshold")
	if err != nil {
		return err
	}
	if n < 0 {
		return fmt.Errorf("threshold cannot be negative: %d", n)
	}
	m.threshold = n
	fmt.Printf("Threshold set to %d for this session.\n", n)
	return nil
}

func (m *menu) search() error {
	query, err := m.prompt("Search")
	if err != nil {
		return err
	}
	matches := m.book.Ledger().Search(query)
	printMarkdown(renderer.Items(fmt.Sprintf("Items matching %q", query), matches))
	return nil
}

func (m *menu) promptItem() (int64, error) {
	s, err := m.prompt("Item id or name")
	if err != nil {
		return 0, err
	}
	if id, err := strconv.ParseInt(s, 10, 64); err == nil {
		return id, nil
	}
	it, err := m.book.Ledger().FindByName(s)
	if err != nil {
		return 0, err
	}
	return it.ID, nil
}

func (m *menu) prompt(label string) (string, error) {
	fmt.Printf("%s: ", label)
	if !m.in.Scan() {
		if err := m.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(m.in.Text()), nil
}

func (m *menu) promptInt(label string) (int, error) {
	s, err := m.prompt(label)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q: %w", s, err)
	}
	return n, nil
}

func (m *menu) promptInt64(label string) (int64, error) {
	s, err := m.prompt(label)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q: %w", s, err)
	}
	return n, nil
}

func (m *menu) promptFloat(label string) (float64, error) {
	s, err := m.prompt(label)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q: %w", s, err)
	}
	return f, nil
}

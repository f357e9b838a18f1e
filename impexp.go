package stockledger

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// this file contains functions to handle the import/export format.
// It should remain human readable, single file and be easy to merge into
// another data directory.

// jitem is the readable shape of one exported item.
type jitem struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Quantity int64           `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Added    int64           `json:"added,omitempty"` // epoch seconds
}

// ExportItems exports items to 'w' in the import/export format: a JSONL
// stream, one JSON object per item, in ledger order.
func ExportItems(w io.Writer, items []Item) error {
	for _, it := range items {
		ji := jitem{
			ID:       it.ID,
			Name:     it.Name,
			Category: string(it.Category),
			Quantity: it.Quantity,
			Price:    decimal.RequireFromString(it.LastPrice.Text()),
			Added:    it.Added.Unix(),
		}
		data, err := json.Marshal(ji)
		if err != nil {
			return fmt.Errorf("cannot marshal item %d: %w", it.ID, err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("cannot write item format: %w", err)
		}
	}
	return nil
}

// ImportItems imports items from 'r' in the import/export format. Prices are
// restored in the given currency. Every line must parse; a bad line fails the
// whole import so a merge is all-or-nothing.
func ImportItems(r io.Reader, currency string) ([]Item, error) {
	var items []Item
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}
		var ji jitem
		if err := json.Unmarshal(line, &ji); err != nil {
			return nil, fmt.Errorf("cannot parse line for item import format: %q: %w", string(line), err)
		}
		category, err := ParseCategory(ji.Category)
		if err != nil {
			return nil, fmt.Errorf("cannot import item %q: %w", ji.Name, err)
		}
		it := Item{
			ID:        ji.ID,
			Name:      ji.Name,
			Category:  category,
			Quantity:  ji.Quantity,
			LastPrice: M(ji.Price, currency),
		}
		if ji.Added != 0 {
			it.Added = time.Unix(ji.Added, 0)
		}
		items = append(items, it)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading import stream: %w", err)
	}
	return items, nil
}

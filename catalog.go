package stockledger

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

// Supplier catalogs come as arbitrary JSON documents. A CatalogMapping tells
// the importer where to find the entry list and, within each entry, the item
// fields, using jsonpath queries.

// CatalogMapping describes how to pluck items out of a supplier catalog.
type CatalogMapping struct {
	Items    string `yaml:"items"`              // path to the list of entries, e.g. "$.products[*]"
	Name     string `yaml:"name"`               // per-entry path to the product name
	Category string `yaml:"category,omitempty"` // per-entry path; entries default to Other
	Quantity string `yaml:"quantity"`           // per-entry path to the unit count
	Price    string `yaml:"price"`              // per-entry path to the unit price
}

// ImportCatalog reads a supplier catalog from 'r' and extracts items using
// the mapping. Imported items have no id; the caller assigns free ids before
// adding them to a ledger.
func ImportCatalog(r io.Reader, m CatalogMapping, currency string) ([]Item, error) {
	if m.Items == "" || m.Name == "" || m.Quantity == "" || m.Price == "" {
		return nil, fmt.Errorf("catalog mapping must define items, name, quantity and price paths")
	}

	var doc any
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("cannot parse catalog JSON: %w", err)
	}

	jval, err := jsonpath.Get(m.Items, doc)
	if err != nil {
		return nil, fmt.Errorf("error evaluating items path %q: %w", m.Items, err)
	}
	entries, ok := jval.([]any)
	if !ok {
		// a single-entry catalog is still a catalog
		entries = []any{jval}
	}

	var items []Item
	for i, entry := range entries {
		it, err := pluckItem(entry, m, currency)
		if err != nil {
			return nil, fmt.Errorf("catalog entry %d: %w", i, err)
		}
		items = append(items, it)
	}
	return items, nil
}

func pluckItem(entry any, m CatalogMapping, currency string) (Item, error) {
	name, err := pluckString(entry, m.Name)
	if err != nil {
		return Item{}, fmt.Errorf("name: %w", err)
	}

	category := Category("Other")
	if m.Category != "" {
		s, err := pluckString(entry, m.Category)
		if err != nil {
			return Item{}, fmt.Errorf("category: %w", err)
		}
		category, err = ParseCategory(s)
		if err != nil {
			return Item{}, err
		}
	}

	qty, err := pluckNumber(entry, m.Quantity)
	if err != nil {
		return Item{}, fmt.Errorf("quantity: %w", err)
	}
	if qty != math.Trunc(qty) || qty < 0 {
		return Item{}, fmt.Errorf("%w: got %v", ErrNegativeQuantity, qty)
	}

	price, err := pluckNumber(entry, m.Price)
	if err != nil {
		return Item{}, fmt.Errorf("price: %w", err)
	}

	return Item{
		Name:      name,
		Category:  category,
		Quantity:  int64(qty),
		LastPrice: M(price, currency),
	}, nil
}

// unwrap keeps the first answer when jsonpath returns a list of one, because
// jsonpath is never clear about whether it returns a list or a single value.
func unwrap(jval any) any {
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		return jlist[0]
	}
	return jval
}

func pluckString(entry any, path string) (string, error) {
	jval, err := jsonpath.Get(path, entry)
	if err != nil {
		return "", fmt.Errorf("error evaluating %q: %w", path, err)
	}
	s, ok := unwrap(jval).(string)
	if !ok {
		return "", fmt.Errorf("%q is not a string: %v", path, jval)
	}
	return s, nil
}

func pluckNumber(entry any, path string) (float64, error) {
	jval, err := jsonpath.Get(path, entry)
	if err != nil {
		return 0, fmt.Errorf("error evaluating %q: %w", path, err)
	}
	switch v := unwrap(jval).(type) {
	case float64:
		return v, nil
	case string:
		// some catalogs quote their numbers
		v = strings.ReplaceAll(strings.TrimSpace(v), ",", ".")
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, fmt.Errorf("%q is an invalid number string %q: %w", path, v, err)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("%q is not a number: %v", path, jval)
	}
}

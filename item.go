package stockledger

import (
	"fmt"
	"strings"
	"time"
)

// Category is one of the fixed set of product categories.
type Category string

// categories is the fixed, ordered set of permitted categories.
// Its order is the display order for tallies and reports.
var categories = []Category{
	"Fruits",
	"Vegetables",
	"Snacks",
	"Beverages",
	"Dairy",
	"Meat",
	"Bakery",
	"Frozen Foods",
	"Other",
}

// Categories returns the fixed ordered set of permitted categories.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// ParseCategory resolves a string to a member of the category set.
// Matching is case-insensitive; the canonical spelling is returned.
func ParseCategory(s string) (Category, error) {
	for _, c := range categories {
		if strings.EqualFold(string(c), s) {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q (want one of %v)", ErrInvalidCategory, s, categories)
}

// Item is a single stock keeping unit tracked by the ledger.
type Item struct {
	ID        int64
	Name      string
	Category  Category
	Quantity  int64
	LastPrice Money
	Added     time.Time
}

// Validate checks the item's fields against the data model rules.
// It does not check id uniqueness, which needs the ledger.
func (it Item) Validate() error {
	if it.ID <= 0 {
		return fmt.Errorf("%w: id must be positive, got %d", ErrInvalidID, it.ID)
	}
	if strings.TrimSpace(it.Name) == "" {
		return ErrEmptyName
	}
	// The snapshot stores one field per line, so a line break inside a name
	// would shift every field after it.
	if strings.ContainsAny(it.Name, "\n\r") {
		return fmt.Errorf("%w: %q", ErrInvalidName, it.Name)
	}
	if _, err := ParseCategory(string(it.Category)); err != nil {
		return err
	}
	if it.Quantity < 0 {
		return fmt.Errorf("%w: got %d", ErrNegativeQuantity, it.Quantity)
	}
	if it.LastPrice.IsNegative() {
		return fmt.Errorf("%w: got %s", ErrNegativePrice, it.LastPrice.Text())
	}
	return nil
}

// OutOfStock reports whether the item is present but unsellable.
func (it Item) OutOfStock() bool { return it.Quantity == 0 }

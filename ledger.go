package stockledger

import (
	"fmt"
	"iter"
	"strings"
	"time"
)

// DefaultLowStockThreshold is the quantity below which an item is flagged
// as running low, unless the caller overrides it.
const DefaultLowStockThreshold = 15

// Ledger is the authoritative in-memory collection of stock items plus the
// accumulated sale revenue.
//
// Items keep their insertion order, which is also the display order.
// No two items share an id, and revenue only ever grows.
type Ledger struct {
	items   []Item
	index   map[int64]int // item id -> position in items
	revenue Money
}

// NewLedger creates an empty ledger whose revenue is zero in the given currency.
func NewLedger(currency string) *Ledger {
	return &Ledger{
		items:   make([]Item, 0),
		index:   make(map[int64]int),
		revenue: M(0, currency),
	}
}

// NewLedgerFrom builds a ledger from a loaded snapshot and revenue total.
// Items with a duplicate id are dropped, keeping the first occurrence.
func NewLedgerFrom(items []Item, revenue Money) *Ledger {
	l := &Ledger{
		items:   make([]Item, 0, len(items)),
		index:   make(map[int64]int, len(items)),
		revenue: revenue,
	}
	for _, it := range items {
		if _, dup := l.index[it.ID]; dup {
			continue
		}
		l.index[it.ID] = len(l.items)
		l.items = append(l.items, it)
	}
	return l
}

// Len returns the number of items in the ledger.
func (l *Ledger) Len() int { return len(l.items) }

// Revenue returns the accumulated sale revenue.
func (l *Ledger) Revenue() Money { return l.revenue }

// Items returns a copy of the item sequence in ledger order.
func (l *Ledger) Items() []Item {
	out := make([]Item, len(l.items))
	copy(out, l.items)
	return out
}

// All returns an iterator over items in ledger order.
func (l *Ledger) All() iter.Seq2[int, Item] {
	return func(yield func(int, Item) bool) {
		for i, it := range l.items {
			if !yield(i, it) {
				return
			}
		}
	}
}

// hasID reports whether the id is taken by an item other than exclude.
// exclude identifies the item being edited by its current id; pass 0 when
// adding a new item.
func (l *Ledger) hasID(id, exclude int64) bool {
	pos, ok := l.index[id]
	return ok && l.items[pos].ID != exclude
}

// NextID returns the smallest positive id not in use.
func (l *Ledger) NextID() int64 {
	var max int64
	for id := range l.index {
		if id > max {
			max = id
		}
	}
	return max + 1
}

// FindByID returns the item with the given id.
func (l *Ledger) FindByID(id int64) (Item, error) {
	pos, ok := l.index[id]
	if !ok {
		return Item{}, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	return l.items[pos], nil
}

// FindByName returns the item whose name matches exactly.
func (l *Ledger) FindByName(name string) (Item, error) {
	for _, it := range l.items {
		if it.Name == name {
			return it, nil
		}
	}
	return Item{}, fmt.Errorf("%w: name %q", ErrNotFound, name)
}

// Add validates the item and appends it to the ledger.
//
// An exact name match is rejected with ErrDuplicateName so the caller can
// offer a restock instead: two products must not exist under different ids
// with the same name.
func (l *Ledger) Add(it Item) error {
	if err := it.Validate(); err != nil {
		return err
	}
	if l.hasID(it.ID, 0) {
		return fmt.Errorf("%w: %d", ErrDuplicateID, it.ID)
	}
	if prev, err := l.FindByName(it.Name); err == nil {
		return fmt.Errorf("%w: %q is item %d", ErrDuplicateName, prev.Name, prev.ID)
	}
	if it.Added.IsZero() {
		it.Added = time.Now()
	}
	l.index[it.ID] = len(l.items)
	l.items = append(l.items, it)
	return nil
}

// Restock adds qty units to an existing item.
func (l *Ledger) Restock(id, qty int64) (Item, error) {
	if qty < 0 {
		return Item{}, fmt.Errorf("%w: got %d", ErrNegativeQuantity, qty)
	}
	pos, ok := l.index[id]
	if !ok {
		return Item{}, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	l.items[pos].Quantity += qty
	return l.items[pos], nil
}

// Patch describes a partial update: nil fields keep their prior value.
type Patch struct {
	ID       *int64
	Name     *string
	Category *Category
	Quantity *int64
	Price    *Money
}

// Update applies a partial update to the item with the given id.
// An id change re-validates uniqueness, excluding the item itself.
// It returns the item before and after the change.
func (l *Ledger) Update(id int64, p Patch) (before, after Item, err error) {
	pos, ok := l.index[id]
	if !ok {
		return Item{}, Item{}, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	before = l.items[pos]
	after = before

	if p.ID != nil {
		if l.hasID(*p.ID, id) {
			return before, before, fmt.Errorf("%w: %d", ErrDuplicateID, *p.ID)
		}
		after.ID = *p.ID
	}
	if p.Name != nil {
		after.Name = *p.Name
	}
	if p.Category != nil {
		after.Category = *p.Category
	}
	if p.Quantity != nil {
		after.Quantity = *p.Quantity
	}
	if p.Price != nil {
		after.LastPrice = *p.Price
	}
	if err := after.Validate(); err != nil {
		return before, before, err
	}

	delete(l.index, before.ID)
	l.index[after.ID] = pos
	l.items[pos] = after
	return before, after, nil
}

// Delete removes the item from the ledger and returns it, so the caller can
// record the quantity lost at the time of removal.
func (l *Ledger) Delete(id int64) (Item, error) {
	pos, ok := l.index[id]
	if !ok {
		return Item{}, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	removed := l.items[pos]
	l.items = append(l.items[:pos], l.items[pos+1:]...)
	delete(l.index, id)
	// reindex the tail that shifted left.
	for i := pos; i < len(l.items); i++ {
		l.index[l.items[i].ID] = i
	}
	return removed, nil
}

// Sale is the result of a successful sell operation.
type Sale struct {
	Item      Item
	Quantity  int64
	UnitPrice Money
	Amount    Money
	Remaining int64
}

// Sell removes qty units from the item at the given unit price.
// On success the item's last price is updated and the revenue grows by
// qty x unitPrice. On error the ledger is left untouched.
func (l *Ledger) Sell(id, qty int64, unitPrice Money) (Sale, error) {
	pos, ok := l.index[id]
	if !ok {
		return Sale{}, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	it := l.items[pos]
	switch {
	case it.Quantity == 0:
		return Sale{}, fmt.Errorf("%w: %q", ErrOutOfStock, it.Name)
	case qty <= 0:
		return Sale{}, fmt.Errorf("%w: got %d", ErrInvalidQuantity, qty)
	case qty > it.Quantity:
		return Sale{}, fmt.Errorf("%w: want %d, have %d", ErrInsufficientQuantity, qty, it.Quantity)
	case unitPrice.IsNegative():
		return Sale{}, fmt.Errorf("%w: got %s", ErrInvalidPrice, unitPrice.Text())
	}

	it.Quantity -= qty
	it.LastPrice = unitPrice
	l.items[pos] = it
	amount := unitPrice.MulQty(qty)
	l.revenue = l.revenue.Add(amount)

	return Sale{
		Item:      it,
		Quantity:  qty,
		UnitPrice: unitPrice,
		Amount:    amount,
		Remaining: it.Quantity,
	}, nil
}

// Search returns the items whose name or category contains the query,
// case-insensitively, in ledger order.
func (l *Ledger) Search(query string) []Item {
	q := strings.ToLower(query)
	var out []Item
	for _, it := range l.items {
		if strings.Contains(strings.ToLower(it.Name), q) ||
			strings.Contains(strings.ToLower(string(it.Category)), q) {
			out = append(out, it)
		}
	}
	return out
}

// LowStock partitions the ledger into items that are out of stock and items
// strictly below the threshold but not empty. An item at the threshold is in
// neither bucket.
func (l *Ledger) LowStock(threshold int64) (out, low []Item) {
	for _, it := range l.items {
		switch {
		case it.Quantity == 0:
			out = append(out, it)
		case it.Quantity < threshold:
			low = append(low, it)
		}
	}
	return out, low
}

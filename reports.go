package stockledger

// Pure report computations over a snapshot of the item sequence.
// No side effects, no persistence.

// CategoryCount is one line of a category tally.
type CategoryCount struct {
	Category Category
	Count    int
}

// Tally counts items per category, in category-set order. Categories with no
// items are omitted.
func Tally(items []Item) []CategoryCount {
	counts := make(map[Category]int, len(categories))
	for _, it := range items {
		counts[it.Category]++
	}
	var out []CategoryCount
	for _, c := range categories {
		if n := counts[c]; n > 0 {
			out = append(out, CategoryCount{Category: c, Count: n})
		}
	}
	return out
}

// Overview aggregates the state of the whole inventory.
type Overview struct {
	Items      int   // distinct stock keeping units
	Units      int64 // aggregate quantity across all items
	Value      Money // sum of quantity x last price
	Revenue    Money // accumulated sale revenue
	OutOfStock int
	LowStock   int
	Threshold  int64
}

// NewOverview computes the inventory overview for the given threshold.
func NewOverview(items []Item, revenue Money, threshold int64) Overview {
	o := Overview{
		Items:     len(items),
		Value:     M(0, revenue.Currency()),
		Revenue:   revenue,
		Threshold: threshold,
	}
	for _, it := range items {
		o.Units += it.Quantity
		o.Value = o.Value.Add(it.LastPrice.MulQty(it.Quantity))
		switch {
		case it.Quantity == 0:
			o.OutOfStock++
		case it.Quantity < threshold:
			o.LowStock++
		}
	}
	return o
}

package stockledger

import "testing"

func TestTally(t *testing.T) {
	items := []Item{
		testItem(1, "Apple", "Fruits", 10, 2.50),
		testItem(2, "Pear", "Fruits", 5, 1.80),
		testItem(3, "Milk", "Dairy", 0, 1.20),
		testItem(4, "Chips", "Snacks", 14, 3.00),
	}

	got := Tally(items)
	want := []CategoryCount{
		{Category: "Fruits", Count: 2},
		{Category: "Snacks", Count: 1},
		{Category: "Dairy", Count: 1},
	}
	if len(got) != len(want) {
		t.Fatalf("tally holds %d lines, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("tally[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestTally_Empty(t *testing.T) {
	if got := Tally(nil); len(got) != 0 {
		t.Errorf("tally of nothing = %v", got)
	}
}

func TestNewOverview(t *testing.T) {
	items := []Item{
		testItem(1, "Apple", "Fruits", 10, 2.50), // value 25
		testItem(2, "Milk", "Dairy", 0, 1.20),    // out of stock
		testItem(3, "Chips", "Snacks", 14, 3.00), // low, value 42
		testItem(4, "Bread", "Bakery", 15, 2.00), // at threshold, value 30
	}

	o := NewOverview(items, M(10, "USD"), 15)
	if o.Items != 4 {
		t.Errorf("items = %d, want 4", o.Items)
	}
	if o.Units != 39 {
		t.Errorf("units = %d, want 39", o.Units)
	}
	if !o.Value.Equal(M(97, "USD")) {
		t.Errorf("value = %s, want 97", o.Value.Text())
	}
	if !o.Revenue.Equal(M(10, "USD")) {
		t.Errorf("revenue = %s, want 10", o.Revenue.Text())
	}
	if o.OutOfStock != 1 || o.LowStock != 1 {
		t.Errorf("alerts = %d out, %d low, want 1 and 1", o.OutOfStock, o.LowStock)
	}
	if o.Threshold != 15 {
		t.Errorf("threshold = %d, want 15", o.Threshold)
	}
}

func TestNewOverview_Empty(t *testing.T) {
	o := NewOverview(nil, M(0, "USD"), 15)
	if o.Items != 0 || o.Units != 0 || !o.Value.IsZero() {
		t.Errorf("overview of nothing = %+v", o)
	}
}

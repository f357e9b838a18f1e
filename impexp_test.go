package stockledger

import (
	"bytes"
	"strings"
	"testing"
)

func TestExportImportItems(t *testing.T) {
	items := []Item{
		testItem(1, "Apple", "Fruits", 10, 2.50),
		testItem(2, "Frozen Peas", "Frozen Foods", 0, 1.99),
	}

	var buf bytes.Buffer
	if err := ExportItems(&buf, items); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("exported %d lines, want 2", len(lines))
	}
	want := `{"id":1,"name":"Apple","category":"Fruits","quantity":10,"price":"2.5","added":1719878400}`
	if lines[0] != want {
		t.Errorf("line 0 = %s, want %s", lines[0], want)
	}

	got, err := ImportItems(&buf, "USD")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("imported %d items, want 2", len(got))
	}
	for i := range items {
		if got[i].ID != items[i].ID || got[i].Name != items[i].Name ||
			got[i].Category != items[i].Category || got[i].Quantity != items[i].Quantity {
			t.Errorf("item %d = %+v, want %+v", i, got[i], items[i])
		}
		if !got[i].LastPrice.Equal(items[i].LastPrice) {
			t.Errorf("item %d price = %s, want %s", i, got[i].LastPrice.Text(), items[i].LastPrice.Text())
		}
		if !got[i].Added.Equal(items[i].Added) {
			t.Errorf("item %d added = %v, want %v", i, got[i].Added, items[i].Added)
		}
	}
}

func TestImportItems_SkipsBlankLines(t *testing.T) {
	input := `{"id":1,"name":"Apple","category":"Fruits","quantity":10,"price":"2.5"}

{"id":2,"name":"Milk","category":"dairy","quantity":5,"price":"1.2"}
`
	got, err := ImportItems(strings.NewReader(input), "USD")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("imported %d items, want 2", len(got))
	}
	// Categories normalize to their canonical spelling.
	if got[1].Category != "Dairy" {
		t.Errorf("category = %q, want Dairy", got[1].Category)
	}
	// No added field means no added time.
	if !got[0].Added.IsZero() {
		t.Errorf("added = %v, want zero", got[0].Added)
	}
}

func TestImportItems_AllOrNothing(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{
			name: "broken json",
			input: `{"id":1,"name":"Apple","category":"Fruits","quantity":10,"price":"2.5"}
{"id":2,"name":`,
		},
		{
			name: "unknown category",
			input: `{"id":1,"name":"Apple","category":"Fruits","quantity":10,"price":"2.5"}
{"id":2,"name":"Gizmo","category":"Gadgets","quantity":5,"price":"9.9"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ImportItems(strings.NewReader(tc.input), "USD")
			if err == nil {
				t.Fatal("expected the import to fail")
			}
			if got != nil {
				t.Errorf("failed import returned items: %v", got)
			}
		})
	}
}

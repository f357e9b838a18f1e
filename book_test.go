package stockledger

import (
	"errors"
	"testing"
)

// openTestBook opens a book over a fresh directory.
func openTestBook(t *testing.T, dir string) *Book {
	t.Helper()
	b, err := OpenBook(NewStore(dir, "USD"))
	if err != nil {
		t.Fatalf("OpenBook: %v", err)
	}
	return b
}

func TestBook_SessionRoundTrip(t *testing.T) {
	dir := t.TempDir()

	// First session: stock the shelf, sell, close.
	b := openTestBook(t, dir)
	if err := b.Add(testItem(1, "Apple", "Fruits", 10, 2.50)); err != nil {
		t.Fatal(err)
	}
	if err := b.Add(testItem(2, "Milk", "Dairy", 20, 1.20)); err != nil {
		t.Fatal(err)
	}
	sale, err := b.Sell(1, 4, M(2.50, "USD"))
	if err != nil {
		t.Fatal(err)
	}
	if sale.Remaining != 6 {
		t.Fatalf("remaining = %d, want 6", sale.Remaining)
	}
	if err := b.Close(); err != nil {
		t.Fatal(err)
	}

	// Second session: everything is back, including the journal.
	b2 := openTestBook(t, dir)
	if b2.Ledger().Len() != 2 {
		t.Fatalf("reloaded %d items, want 2", b2.Ledger().Len())
	}
	apple, err := b2.Ledger().FindByID(1)
	if err != nil {
		t.Fatal(err)
	}
	if apple.Quantity != 6 {
		t.Errorf("reloaded quantity = %d, want 6", apple.Quantity)
	}
	if !b2.Ledger().Revenue().Equal(M(10, "USD")) {
		t.Errorf("reloaded revenue = %s, want 10", b2.Ledger().Revenue().Text())
	}

	counts := b2.Journal().Summarize()
	if counts[ActionAdd] != 2 || counts[ActionSale] != 1 || counts[ActionSystem] != 1 {
		t.Errorf("journal counts = %v", counts)
	}
}

func TestBook_MutationsPersistImmediately(t *testing.T) {
	dir := t.TempDir()
	b := openTestBook(t, dir)
	if err := b.Add(testItem(1, "Apple", "Fruits", 10, 2.50)); err != nil {
		t.Fatal(err)
	}
	if _, err := b.Restock(1, 5); err != nil {
		t.Fatal(err)
	}

	// A second book sees the state without any Close in between.
	b2 := openTestBook(t, dir)
	it, err := b2.Ledger().FindByID(1)
	if err != nil {
		t.Fatal(err)
	}
	if it.Quantity != 15 {
		t.Errorf("quantity = %d, want 15", it.Quantity)
	}
}

func TestBook_UpdateAndDelete(t *testing.T) {
	dir := t.TempDir()
	b := openTestBook(t, dir)
	if err := b.Add(testItem(1, "Apple", "Fruits", 10, 2.50)); err != nil {
		t.Fatal(err)
	}

	name := "Green Apple"
	it, err := b.Update(1, Patch{Name: &name})
	if err != nil {
		t.Fatal(err)
	}
	if it.Name != "Green Apple" {
		t.Errorf("updated name = %q", it.Name)
	}

	removed, err := b.Delete(1)
	if err != nil {
		t.Fatal(err)
	}
	if removed.Quantity != 10 {
		t.Errorf("removed quantity = %d, want 10", removed.Quantity)
	}

	b2 := openTestBook(t, dir)
	if b2.Ledger().Len() != 0 {
		t.Errorf("reloaded %d items, want none", b2.Ledger().Len())
	}
	counts := b2.Journal().Summarize()
	if counts[ActionUpdate] != 1 || counts[ActionDelete] != 1 {
		t.Errorf("journal counts = %v", counts)
	}
}

func TestBook_FailedMutationLeavesNoTrace(t *testing.T) {
	dir := t.TempDir()
	b := openTestBook(t, dir)
	if err := b.Add(testItem(1, "Apple", "Fruits", 10, 2.50)); err != nil {
		t.Fatal(err)
	}

	if _, err := b.Sell(1, 99, M(2.50, "USD")); !errors.Is(err, ErrInsufficientQuantity) {
		t.Fatalf("Sell error = %v, want ErrInsufficientQuantity", err)
	}

	b2 := openTestBook(t, dir)
	if n := b2.Journal().Summarize()[ActionSale]; n != 0 {
		t.Errorf("failed sale was journaled %d times", n)
	}
	if !b2.Ledger().Revenue().IsZero() {
		t.Errorf("failed sale changed revenue: %s", b2.Ledger().Revenue().Text())
	}
}

func TestBook_RejectsNameThatBreaksTheSnapshot(t *testing.T) {
	// A name holding a line break would shift every field after it in the
	// six-lines-per-item snapshot and destroy the whole ledger on reload,
	// so it must never get in.
	dir := t.TempDir()
	b := openTestBook(t, dir)

	bad := testItem(1, "Apple\nFruits", "Fruits", 10, 2.50)
	if err := b.Add(bad); !errors.Is(err, ErrInvalidName) {
		t.Fatalf("Add error = %v, want ErrInvalidName", err)
	}
	if err := b.Add(testItem(2, "Milk", "Dairy", 5, 1.20)); err != nil {
		t.Fatal(err)
	}

	b2 := openTestBook(t, dir)
	if b2.Ledger().Len() != 1 {
		t.Fatalf("reloaded %d items, want 1", b2.Ledger().Len())
	}
	if it, err := b2.Ledger().FindByID(2); err != nil || it.Name != "Milk" {
		t.Errorf("reloaded item = %v, %v", it, err)
	}
}

func TestBook_JournalEntriesAreReadable(t *testing.T) {
	dir := t.TempDir()
	b := openTestBook(t, dir)
	if err := b.Add(testItem(1, "Apple", "Fruits", 10, 2.50)); err != nil {
		t.Fatal(err)
	}
	if _, err := b.Sell(1, 4, M(2.50, "USD")); err != nil {
		t.Fatal(err)
	}

	entries := b.Journal().Recent(0)
	if len(entries) != 2 {
		t.Fatalf("journal holds %d entries, want 2", len(entries))
	}
	if got, want := entries[1].Detail, `sold 4 x "Apple" (id 1) at $2.50 for $10.00, 6 left`; got != want {
		t.Errorf("sale detail = %q, want %q", got, want)
	}
}

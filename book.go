package stockledger

import (
	"errors"
	"fmt"
)

// ErrJournalWrite flags a mutation that succeeded and was persisted, but
// whose journal entry could not be written. The caller reports it as a
// warning; the ledger state stands.
var ErrJournalWrite = errors.New("journal write failed")

// Book binds the ledger, its store and its journal into the single owned
// context object every operation goes through. Every mutating operation
// saves the snapshot before appending the journal entry, so a crash in
// between is detectable by comparing the journal tail to the snapshot on the
// next load.
type Book struct {
	ledger  *Ledger
	store   *Store
	journal *Journal
}

// OpenBook loads the ledger, revenue and journal from the store. Missing
// files initialize an empty book.
func OpenBook(store *Store) (*Book, error) {
	items, err := store.LoadItems()
	if err != nil {
		return nil, err
	}
	revenue, err := store.LoadRevenue()
	if err != nil {
		return nil, err
	}
	history, err := store.LoadJournal()
	if err != nil {
		return nil, err
	}
	return &Book{
		ledger:  NewLedgerFrom(items, revenue),
		store:   store,
		journal: NewJournal(store, history),
	}, nil
}

// Ledger exposes the in-memory state for queries and reports.
func (b *Book) Ledger() *Ledger { return b.ledger }

// Journal exposes the activity journal for history views.
func (b *Book) Journal() *Journal { return b.journal }

// Add validates and appends a new item, persists the snapshot and records an
// ADD entry.
func (b *Book) Add(it Item) error {
	if err := b.ledger.Add(it); err != nil {
		return err
	}
	added, _ := b.ledger.FindByID(it.ID)
	if err := b.store.SaveItems(b.ledger.Items()); err != nil {
		return err
	}
	detail := fmt.Sprintf("added %q (id %d), %s, %d units at %s",
		added.Name, added.ID, added.Category, added.Quantity, added.LastPrice)
	return b.log(ActionAdd, detail)
}

// Restock merges qty units into an existing item.
func (b *Book) Restock(id, qty int64) (Item, error) {
	it, err := b.ledger.Restock(id, qty)
	if err != nil {
		return Item{}, err
	}
	if err := b.store.SaveItems(b.ledger.Items()); err != nil {
		return it, err
	}
	detail := fmt.Sprintf("restocked %q (id %d) by %d to %d", it.Name, it.ID, qty, it.Quantity)
	return it, b.log(ActionRestock, detail)
}

// Update applies a partial update and records the before/after identity.
func (b *Book) Update(id int64, p Patch) (Item, error) {
	before, after, err := b.ledger.Update(id, p)
	if err != nil {
		return Item{}, err
	}
	if err := b.store.SaveItems(b.ledger.Items()); err != nil {
		return after, err
	}
	detail := fmt.Sprintf("updated %q (id %d) -> %q (id %d)", before.Name, before.ID, after.Name, after.ID)
	return after, b.log(ActionUpdate, detail)
}

// Delete removes an item, recording the quantity held at removal time so the
// loss stays auditable.
func (b *Book) Delete(id int64) (Item, error) {
	removed, err := b.ledger.Delete(id)
	if err != nil {
		return Item{}, err
	}
	if err := b.store.SaveItems(b.ledger.Items()); err != nil {
		return removed, err
	}
	detail := fmt.Sprintf("deleted %q (id %d) holding %d units", removed.Name, removed.ID, removed.Quantity)
	return removed, b.log(ActionDelete, detail)
}

// Sell records a sale. The snapshot and the revenue are saved together:
// either both changes are durable or neither is.
func (b *Book) Sell(id, qty int64, unitPrice Money) (Sale, error) {
	sale, err := b.ledger.Sell(id, qty, unitPrice)
	if err != nil {
		return Sale{}, err
	}
	if err := b.store.SaveSale(b.ledger.Items(), b.ledger.Revenue()); err != nil {
		return sale, err
	}
	detail := fmt.Sprintf("sold %d x %q (id %d) at %s for %s, %d left",
		sale.Quantity, sale.Item.Name, sale.Item.ID, sale.UnitPrice, sale.Amount, sale.Remaining)
	return sale, b.log(ActionSale, detail)
}

// Close flushes the final snapshot and revenue and records a SYSTEM entry.
func (b *Book) Close() error {
	if err := b.store.SaveSale(b.ledger.Items(), b.ledger.Revenue()); err != nil {
		return err
	}
	return b.log(ActionSystem, "session closed, snapshot saved")
}

func (b *Book) log(a Action, detail string) error {
	if err := b.journal.Append(a, detail); err != nil {
		return fmt.Errorf("%w: %v", ErrJournalWrite, err)
	}
	return nil
}

package stockledger

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// File names within the store directory, inherited from the original data
// layout so existing data dirs keep working.
const (
	itemsFile   = "stock.dat"
	revenueFile = "grand_total.dat"
	journalFile = "history.log"
)

// Store is the persistence adapter: it owns the data directory holding the
// item snapshot, the revenue total and the append-only journal.
type Store struct {
	dir      string
	currency string
}

// NewStore creates a store over the given directory. The directory is
// created on the first save, not here.
func NewStore(dir, currency string) *Store {
	return &Store{dir: dir, currency: currency}
}

// Dir returns the store's data directory.
func (s *Store) Dir() string { return s.dir }

// Currency returns the currency amounts are restored in.
func (s *Store) Currency() string { return s.currency }

func (s *Store) path(name string) string { return filepath.Join(s.dir, name) }

// LoadItems reads the item snapshot. A missing file is an empty ledger, not
// an error.
func (s *Store) LoadItems() ([]Item, error) {
	f, err := os.Open(s.path(itemsFile))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open snapshot %q: %w", s.path(itemsFile), err)
	}
	defer f.Close()
	return DecodeItems(f, s.currency)
}

// SaveItems overwrites the item snapshot with the full item sequence.
func (s *Store) SaveItems(items []Item) error {
	return s.overwrite(itemsFile, func(f *os.File) error {
		return EncodeItems(f, items)
	})
}

// LoadRevenue reads the revenue total. A missing file is zero revenue.
func (s *Store) LoadRevenue() (Money, error) {
	f, err := os.Open(s.path(revenueFile))
	if errors.Is(err, fs.ErrNotExist) {
		return M(0, s.currency), nil
	}
	if err != nil {
		return M(0, s.currency), fmt.Errorf("could not open revenue file %q: %w", s.path(revenueFile), err)
	}
	defer f.Close()
	return DecodeRevenue(f, s.currency)
}

// SaveRevenue overwrites the revenue file.
func (s *Store) SaveRevenue(revenue Money) error {
	return s.overwrite(revenueFile, func(f *os.File) error {
		return EncodeRevenue(f, revenue)
	})
}

// SaveSale persists the snapshot and the revenue together. Both files are
// staged to temporary names first and only renamed into place once both
// writes succeeded, so a failure while writing leaves neither changed.
func (s *Store) SaveSale(items []Item, revenue Money) error {
	itemsTmp, err := s.stage(itemsFile, func(f *os.File) error {
		return EncodeItems(f, items)
	})
	if err != nil {
		return err
	}
	revenueTmp, err := s.stage(revenueFile, func(f *os.File) error {
		return EncodeRevenue(f, revenue)
	})
	if err != nil {
		os.Remove(itemsTmp)
		return err
	}
	if err := os.Rename(itemsTmp, s.path(itemsFile)); err != nil {
		os.Remove(itemsTmp)
		os.Remove(revenueTmp)
		return fmt.Errorf("could not replace snapshot: %w", err)
	}
	if err := os.Rename(revenueTmp, s.path(revenueFile)); err != nil {
		os.Remove(revenueTmp)
		return fmt.Errorf("could not replace revenue file: %w", err)
	}
	return nil
}

// LoadJournal reads the activity journal. A missing file is an empty journal.
func (s *Store) LoadJournal() ([]Entry, error) {
	f, err := os.Open(s.path(journalFile))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open journal %q: %w", s.path(journalFile), err)
	}
	defer f.Close()
	return DecodeJournal(f)
}

// AppendEntry appends one journal line and syncs it before returning, so a
// recorded action is durable by the time the operation completes.
func (s *Store) AppendEntry(e Entry) error {
	if err := s.mkdir(); err != nil {
		return err
	}
	f, err := os.OpenFile(s.path(journalFile), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("could not open journal %q: %w", s.path(journalFile), err)
	}
	defer f.Close()
	if err := EncodeEntry(f, e); err != nil {
		return err
	}
	return f.Sync()
}

// overwrite replaces a file through a staged temporary, keeping the previous
// content intact when the write fails.
func (s *Store) overwrite(name string, write func(*os.File) error) error {
	tmp, err := s.stage(name, write)
	if err != nil {
		return err
	}
	if err := os.Rename(tmp, s.path(name)); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("could not replace %q: %w", s.path(name), err)
	}
	return nil
}

// stage writes a temporary sibling of name and returns its path.
func (s *Store) stage(name string, write func(*os.File) error) (string, error) {
	if err := s.mkdir(); err != nil {
		return "", err
	}
	f, err := os.CreateTemp(s.dir, name+".*")
	if err != nil {
		return "", fmt.Errorf("could not stage %q: %w", name, err)
	}
	if err := write(f); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("could not finish staging %q: %w", name, err)
	}
	return f.Name(), nil
}

func (s *Store) mkdir() error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("could not create data directory %q: %w", s.dir, err)
	}
	return nil
}

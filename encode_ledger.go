package stockledger

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
	"time"
)

// The item snapshot is a plain sequential text stream, six lines per item:
// id, name, category, quantity, lastPrice, added (epoch seconds).
// Field order and count must round-trip exactly; the end of the file is the
// end of the list.

// EncodeItems writes the items to w in the snapshot format.
func EncodeItems(w io.Writer, items []Item) error {
	for _, it := range items {
		_, err := fmt.Fprintf(w, "%d\n%s\n%s\n%d\n%s\n%d\n",
			it.ID, it.Name, it.Category, it.Quantity, it.LastPrice.Text(), it.Added.Unix())
		if err != nil {
			return fmt.Errorf("could not write item %d: %w", it.ID, err)
		}
	}
	return nil
}

// DecodeItems reads items from a snapshot stream. Prices are restored in the
// given currency.
//
// A malformed or partial record truncates the load: everything read up to
// that point is returned and the rest of the stream is ignored, so a damaged
// snapshot never aborts startup.
func DecodeItems(r io.Reader, currency string) ([]Item, error) {
	scanner := bufio.NewScanner(r)
	var items []Item

	for {
		record, ok := readRecord(scanner, 6)
		if !ok {
			break
		}
		it, err := decodeItem(record, currency)
		if err != nil {
			log.Printf("warning: truncating snapshot at record %d: %v", len(items)+1, err)
			break
		}
		items = append(items, it)
	}

	if err := scanner.Err(); err != nil {
		return items, fmt.Errorf("error reading snapshot: %w", err)
	}
	return items, nil
}

// readRecord reads exactly n lines; ok is false on a clean or partial end.
func readRecord(scanner *bufio.Scanner, n int) ([]string, bool) {
	record := make([]string, 0, n)
	for len(record) < n {
		if !scanner.Scan() {
			return nil, false
		}
		record = append(record, scanner.Text())
	}
	return record, true
}

func decodeItem(record []string, currency string) (Item, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(record[0]), 10, 64)
	if err != nil {
		return Item{}, fmt.Errorf("bad id %q: %w", record[0], err)
	}
	qty, err := strconv.ParseInt(strings.TrimSpace(record[3]), 10, 64)
	if err != nil {
		return Item{}, fmt.Errorf("bad quantity %q: %w", record[3], err)
	}
	price, err := ParseMoney(strings.TrimSpace(record[4]), currency)
	if err != nil {
		return Item{}, fmt.Errorf("bad price: %w", err)
	}
	added, err := strconv.ParseInt(strings.TrimSpace(record[5]), 10, 64)
	if err != nil {
		return Item{}, fmt.Errorf("bad timestamp %q: %w", record[5], err)
	}
	it := Item{
		ID:        id,
		Name:      record[1],
		Category:  Category(record[2]),
		Quantity:  qty,
		LastPrice: price,
		Added:     time.Unix(added, 0),
	}
	// A record that parses but breaks the data model (unknown category,
	// negative quantity) is just as malformed as one that does not parse.
	if err := it.Validate(); err != nil {
		return Item{}, err
	}
	return it, nil
}

// EncodeRevenue writes the revenue total: a single decimal, whole file.
func EncodeRevenue(w io.Writer, revenue Money) error {
	if _, err := fmt.Fprintf(w, "%s\n", revenue.Text()); err != nil {
		return fmt.Errorf("could not write revenue: %w", err)
	}
	return nil
}

// DecodeRevenue reads the revenue total in the given currency.
func DecodeRevenue(r io.Reader, currency string) (Money, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return M(0, currency), fmt.Errorf("error reading revenue: %w", err)
	}
	s := strings.TrimSpace(string(data))
	if s == "" {
		return M(0, currency), nil
	}
	return ParseMoney(s, currency)
}

// journalTimeFormat is the human-readable timestamp of journal lines.
const journalTimeFormat = "2006-01-02 15:04:05"

// EncodeEntry writes one journal line: "[<timestamp>] <ACTION>: <detail>".
func EncodeEntry(w io.Writer, e Entry) error {
	_, err := fmt.Fprintf(w, "[%s] %s: %s\n", e.Time.Format(journalTimeFormat), e.Action, e.Detail)
	if err != nil {
		return fmt.Errorf("could not write journal entry: %w", err)
	}
	return nil
}

// DecodeJournal reads journal lines back into entries. Lines that do not
// parse are skipped: the journal is never rewritten, so a damaged line must
// not block loading the rest.
func DecodeJournal(r io.Reader) ([]Entry, error) {
	scanner := bufio.NewScanner(r)
	var entries []Entry
	for scanner.Scan() {
		line := scanner.Text()
		e, err := decodeEntry(line)
		if err != nil {
			log.Printf("warning: skipping journal line %q: %v", line, err)
			continue
		}
		entries = append(entries, e)
	}
	if err := scanner.Err(); err != nil {
		return entries, fmt.Errorf("error reading journal: %w", err)
	}
	return entries, nil
}

func decodeEntry(line string) (Entry, error) {
	if !strings.HasPrefix(line, "[") {
		return Entry{}, fmt.Errorf("missing timestamp bracket")
	}
	end := strings.Index(line, "]")
	if end < 0 {
		return Entry{}, fmt.Errorf("unterminated timestamp")
	}
	ts, err := time.ParseInLocation(journalTimeFormat, line[1:end], time.Local)
	if err != nil {
		return Entry{}, fmt.Errorf("bad timestamp: %w", err)
	}
	rest := strings.TrimPrefix(line[end+1:], " ")
	kind, detail, ok := strings.Cut(rest, ": ")
	if !ok {
		return Entry{}, fmt.Errorf("missing action kind")
	}
	action, err := ParseAction(kind)
	if err != nil {
		return Entry{}, err
	}
	return Entry{Time: ts, Action: action, Detail: detail}, nil
}

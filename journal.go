package stockledger

import (
	"fmt"
	"time"
)

// Action is the canonical kind of a journal entry. Summaries match on the
// action kind, never on the free-text detail.
type Action string

const (
	ActionSale    Action = "SALE"
	ActionAdd     Action = "ADD"
	ActionRestock Action = "RESTOCK"
	ActionUpdate  Action = "UPDATE"
	ActionDelete  Action = "DELETE"
	ActionSystem  Action = "SYSTEM"
)

// actions in their display order.
var actions = []Action{ActionSale, ActionAdd, ActionRestock, ActionUpdate, ActionDelete, ActionSystem}

// Actions returns all action kinds in display order.
func Actions() []Action {
	out := make([]Action, len(actions))
	copy(out, actions)
	return out
}

// ParseAction resolves a string to an action kind.
func ParseAction(s string) (Action, error) {
	for _, a := range actions {
		if string(a) == s {
			return a, nil
		}
	}
	return "", fmt.Errorf("unknown action kind: %q", s)
}

// Entry is one timestamped record of a mutating action.
// Entries are append-only: never mutated or removed once written.
type Entry struct {
	Time   time.Time
	Action Action
	Detail string
}

// EntrySink receives entries for durable storage, one synchronous write per
// append.
type EntrySink interface {
	AppendEntry(Entry) error
}

// Journal is the in-memory view of the append-only activity log.
//
// A write failure in the sink is reported to the caller but the in-memory
// entry stands: the journal is a best-effort audit trail, the item snapshot
// is the system of record.
type Journal struct {
	entries []Entry
	sink    EntrySink
}

// NewJournal creates a journal over previously loaded entries.
// sink may be nil for a purely in-memory journal.
func NewJournal(sink EntrySink, history []Entry) *Journal {
	return &Journal{entries: history, sink: sink}
}

// Append records an action now and synchronously writes it to the sink.
func (j *Journal) Append(a Action, detail string) error {
	e := Entry{Time: time.Now(), Action: a, Detail: detail}
	j.entries = append(j.entries, e)
	if j.sink == nil {
		return nil
	}
	if err := j.sink.AppendEntry(e); err != nil {
		return fmt.Errorf("could not persist journal entry: %w", err)
	}
	return nil
}

// Len returns the number of entries.
func (j *Journal) Len() int { return len(j.entries) }

// Recent returns the last n entries in write order.
func (j *Journal) Recent(n int) []Entry {
	if n <= 0 || n > len(j.entries) {
		n = len(j.entries)
	}
	out := make([]Entry, n)
	copy(out, j.entries[len(j.entries)-n:])
	return out
}

// Summarize counts entries by action kind.
func (j *Journal) Summarize() map[Action]int {
	counts := make(map[Action]int)
	for _, e := range j.entries {
		counts[e.Action]++
	}
	return counts
}

package stockledger

import (
	"errors"
	"testing"
)

// failingSink always refuses the write.
type failingSink struct{}

func (failingSink) AppendEntry(Entry) error { return errors.New("disk full") }

func TestJournal_Append(t *testing.T) {
	j := NewJournal(nil, nil)
	if err := j.Append(ActionAdd, "added something"); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if j.Len() != 1 {
		t.Fatalf("len = %d, want 1", j.Len())
	}
	e := j.Recent(1)[0]
	if e.Action != ActionAdd || e.Detail != "added something" {
		t.Errorf("entry = %+v", e)
	}
	if e.Time.IsZero() {
		t.Error("entry time not stamped")
	}
}

func TestJournal_AppendSinkFailure(t *testing.T) {
	j := NewJournal(failingSink{}, nil)
	err := j.Append(ActionSale, "sold something")
	if err == nil {
		t.Fatal("expected an error from the sink")
	}
	// The in-memory entry stands even when the write failed.
	if j.Len() != 1 {
		t.Errorf("len = %d, want 1", j.Len())
	}
}

func TestJournal_Recent(t *testing.T) {
	j := NewJournal(nil, nil)
	details := []string{"a", "b", "c", "d", "e"}
	for _, d := range details {
		if err := j.Append(ActionUpdate, d); err != nil {
			t.Fatal(err)
		}
	}

	testCases := []struct {
		name string
		n    int
		want []string
	}{
		{name: "last two", n: 2, want: []string{"d", "e"}},
		{name: "all of them", n: 5, want: details},
		{name: "more than held", n: 10, want: details},
		{name: "zero means all", n: 0, want: details},
		{name: "negative means all", n: -1, want: details},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := j.Recent(tc.n)
			if len(got) != len(tc.want) {
				t.Fatalf("Recent(%d) returned %d entries, want %d", tc.n, len(got), len(tc.want))
			}
			for i := range tc.want {
				if got[i].Detail != tc.want[i] {
					t.Errorf("Recent(%d)[%d] = %q, want %q", tc.n, i, got[i].Detail, tc.want[i])
				}
			}
		})
	}
}

func TestJournal_Summarize(t *testing.T) {
	j := NewJournal(nil, nil)
	plan := []Action{
		ActionAdd, ActionAdd, ActionSale, ActionSale, ActionSale,
		ActionRestock, ActionUpdate, ActionDelete, ActionSystem, ActionSale,
	}
	for _, a := range plan {
		if err := j.Append(a, "x"); err != nil {
			t.Fatal(err)
		}
	}

	counts := j.Summarize()
	want := map[Action]int{
		ActionSale:    4,
		ActionAdd:     2,
		ActionRestock: 1,
		ActionUpdate:  1,
		ActionDelete:  1,
		ActionSystem:  1,
	}
	for a, n := range want {
		if counts[a] != n {
			t.Errorf("count[%s] = %d, want %d", a, counts[a], n)
		}
	}
}

func TestParseAction(t *testing.T) {
	for _, a := range Actions() {
		got, err := ParseAction(string(a))
		if err != nil || got != a {
			t.Errorf("ParseAction(%q) = %q, %v", a, got, err)
		}
	}
	if _, err := ParseAction("sale"); err == nil {
		t.Error("ParseAction accepted a lowercase kind")
	}
}

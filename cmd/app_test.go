package cmd

import (
	"errors"
	"fmt"
	"testing"

	"github.com/etnz/stockledger"
	"github.com/google/subcommands"
)

func TestCommands_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for _, c := range Commands {
		name := c.Name()
		if name == "" {
			t.Errorf("command %T has no name", c)
		}
		if seen[name] {
			t.Errorf("command name %q registered twice", name)
		}
		seen[name] = true
		if c.Synopsis() == "" {
			t.Errorf("command %q has no synopsis", name)
		}
		if c.Usage() == "" {
			t.Errorf("command %q has no usage", name)
		}
	}
}

func TestResolveID(t *testing.T) {
	ledger := stockledger.NewLedger("USD")
	if err := ledger.Add(stockledger.Item{
		ID:        3,
		Name:      "Apple",
		Category:  "Fruits",
		Quantity:  10,
		LastPrice: stockledger.M(2.50, "USD"),
	}); err != nil {
		t.Fatal(err)
	}

	testCases := []struct {
		name    string
		id      int64
		byName  string
		want    int64
		wantErr bool
	}{
		{name: "by id", id: 3, want: 3},
		{name: "id wins over name", id: 3, byName: "ignored", want: 3},
		{name: "by name", byName: "Apple", want: 3},
		{name: "unknown name", byName: "Pear", wantErr: true},
		{name: "no selector", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := resolveID(ledger, tc.id, tc.byName)
			if tc.wantErr {
				if err == nil {
					t.Error("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != tc.want {
				t.Errorf("resolveID = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestReportMutation(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want subcommands.ExitStatus
	}{
		{name: "success", err: nil, want: subcommands.ExitSuccess},
		{name: "journal warning", err: fmt.Errorf("%w: disk full", stockledger.ErrJournalWrite), want: subcommands.ExitSuccess},
		{name: "real failure", err: errors.New("boom"), want: subcommands.ExitFailure},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := reportMutation(tc.err); got != tc.want {
				t.Errorf("reportMutation(%v) = %v, want %v", tc.err, got, tc.want)
			}
		})
	}
}

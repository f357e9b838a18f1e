package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/etnz/stockledger"
)

// History renders the recent journal entries followed by the per-action
// summary of the whole journal.
func History(entries []stockledger.Entry, summary map[stockledger.Action]int) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Activity History")
	if len(entries) == 0 {
		doc.PlainText("No activity recorded yet.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignLeft},
		Header:    []string{"Time", "Action", "Detail"},
		Rows:      [][]string{},
	}
	for _, e := range entries {
		table.Rows = append(table.Rows, []string{
			e.Time.Format("2006-01-02 15:04:05"),
			string(e.Action),
			e.Detail,
		})
	}
	doc.Table(table)

	doc.H2("Summary")
	counts := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Action", "Count"},
		Rows:      [][]string{},
	}
	for _, a := range stockledger.Actions() {
		if n := summary[a]; n > 0 {
			counts.Rows = append(counts.Rows, []string{string(a), fmt.Sprintf("%d", n)})
		}
	}
	doc.Table(counts)

	return doc.String()
}

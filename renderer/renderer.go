// Package renderer builds markdown views of ledger state. Rendering to the
// terminal (colors, width) is the caller's concern.
package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/etnz/stockledger"
)

// Items renders an item table with the given title.
func Items(title string, items []stockledger.Item) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(title)
	if len(items) == 0 {
		doc.PlainText("No items.")
		return doc.String()
	}
	doc.Table(itemTable(items))
	return doc.String()
}

// itemTable builds the shared item table layout.
func itemTable(items []stockledger.Item) md.TableSet {
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignRight,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignLeft,
		},
		Header: []string{"ID", "Name", "Category", "Qty", "Last Price", "Added"},
		Rows:   [][]string{},
	}
	for _, it := range items {
		table.Rows = append(table.Rows, []string{
			fmt.Sprintf("%d", it.ID),
			it.Name,
			string(it.Category),
			fmt.Sprintf("%d", it.Quantity),
			it.LastPrice.String(),
			it.Added.Format("2006-01-02"),
		})
	}
	return table
}

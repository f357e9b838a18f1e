package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/etnz/stockledger"
)

// Summary renders the inventory overview and the category tally.
func Summary(o stockledger.Overview, tally []stockledger.CategoryCount) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Inventory Summary")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Metric", "Value"},
		Rows: [][]string{
			{"Items", fmt.Sprintf("%d", o.Items)},
			{"Units in stock", fmt.Sprintf("%d", o.Units)},
			{"Inventory value", o.Value.String()},
			{"Total revenue", o.Revenue.String()},
			{"Out of stock", fmt.Sprintf("%d", o.OutOfStock)},
			{fmt.Sprintf("Low stock (< %d)", o.Threshold), fmt.Sprintf("%d", o.LowStock)},
		},
	})

	if len(tally) > 0 {
		doc.H2("By Category")
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
			Header:    []string{"Category", "Items"},
			Rows:      [][]string{},
		}
		for _, t := range tally {
			table.Rows = append(table.Rows, []string{string(t.Category), fmt.Sprintf("%d", t.Count)})
		}
		doc.Table(table)
	}

	return doc.String()
}

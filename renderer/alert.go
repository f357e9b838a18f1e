package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/etnz/stockledger"
)

// Alert renders the stock alert report: items that are out of stock, then
// items strictly below the threshold.
func Alert(out, low []stockledger.Item, threshold int64) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Stock Alert")
	if len(out) == 0 && len(low) == 0 {
		doc.PlainText(fmt.Sprintf("All items hold at least %d units.", threshold))
		return doc.String()
	}

	if len(out) > 0 {
		doc.H2("Out of Stock")
		doc.Table(itemTable(out))
	}
	if len(low) > 0 {
		doc.H2(fmt.Sprintf("Low Stock (below %d)", threshold))
		doc.Table(itemTable(low))
	}
	return doc.String()
}

// Receipt renders a one-sale receipt.
func Receipt(sale stockledger.Sale) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Sale Recorded")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"", ""},
		Rows: [][]string{
			{"Item", fmt.Sprintf("%s (id %d)", sale.Item.Name, sale.Item.ID)},
			{"Quantity", fmt.Sprintf("%d", sale.Quantity)},
			{"Unit price", sale.UnitPrice.String()},
			{"Amount", sale.Amount.String()},
			{"Remaining", fmt.Sprintf("%d", sale.Remaining)},
		},
	})
	return doc.String()
}

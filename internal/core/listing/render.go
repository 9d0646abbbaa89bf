package listing

import "strings"

// FailureReply is sent when no title could be resolved for a link.
const FailureReply = "❌ Unable to extract product info"

// Render produces the fixed-format reply for a record. An absent price
// renders as a bare "@rs" marker so the reply shape stays constant.
func Render(record Record) string {
	var b strings.Builder

	b.WriteString(record.Title)
	b.WriteString(" ")
	b.WriteString(renderPrice(record.Fields.Price))
	b.WriteString("\n")
	b.WriteString(record.URL.Value)

	if record.Fields.IsMarketplace {
		b.WriteString("\nSize - ")
		b.WriteString(record.Fields.Size)
		b.WriteString("\nPin - ")
		b.WriteString(record.Fields.Pin)
	}

	return b.String()
}

func renderPrice(price string) string {
	if price == "" {
		return "@rs"
	}

	return "@" + price + " rs"
}

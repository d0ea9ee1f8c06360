package ledger

import (
	"strings"
)

// NoDataMessage is shown instead of a report when nothing has been recorded.
const NoDataMessage = "No expenses recorded yet. Start adding expenses to see your budget!"

const (
	reportBanner = "╔══════════════════════════════════════╗\n" +
		"║      TRIP BUDGET SUMMARY             ║\n" +
		"╚══════════════════════════════════════╝"
	reportRule = "─────────────────────────────────────────"
)

// RenderReport formats a summary as the multi-line budget report: a banner,
// one block per category in summary order, and the grand total.
func RenderReport(s Summary) string {
	if s.NoData {
		return NoDataMessage
	}

	var b strings.Builder
	b.WriteString(reportBanner)
	b.WriteString("\n")

	for _, ct := range s.Categories {
		b.WriteString("\n")
		b.WriteString(ct.Category + ":\n")
		for _, it := range ct.Items {
			b.WriteString("  • " + FormatMoney(it.Amount) + " (" + it.Description + ")\n")
		}
		b.WriteString("  Subtotal: " + FormatMoney(ct.Subtotal) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(reportRule + "\n")
	b.WriteString("💰 TOTAL TRIP BUDGET: " + FormatMoney(s.Total) + "\n")
	b.WriteString(reportRule + "\n")
	return b.String()
}

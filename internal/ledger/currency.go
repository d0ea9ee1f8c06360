package ledger

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// The ledger holds a single currency with no minor units.
const (
	Currency       = "INR"
	CurrencySymbol = "₹"
)

var numberPrinter = message.NewPrinter(language.English)

// FormatAmount renders amount with thousands separators, e.g. 10950 -> "10,950".
func FormatAmount(amount int64) string {
	return numberPrinter.Sprintf("%d", amount)
}

// FormatMoney prefixes FormatAmount with the currency symbol: "₹10,950".
func FormatMoney(amount int64) string {
	if amount < 0 {
		return "-" + CurrencySymbol + FormatAmount(-amount)
	}
	return CurrencySymbol + FormatAmount(amount)
}

package finance

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var rupiahPrinter = message.NewPrinter(language.Indonesian)

// FormatRupiah renders the absolute amount with Indonesian digit
// grouping and no decimal places (rupiah has no everyday subunit).
// The sign is deliberately left to the caller: call sites render
// direction with color or an explicit prefix instead of a minus sign.
func FormatRupiah(amount int64) string {
	if amount < 0 {
		amount = -amount
	}
	return rupiahPrinter.Sprintf("Rp%d", amount)
}

// FormatRupiahSigned prefixes the formatted amount with + or -.
// Zero counts as positive.
func FormatRupiahSigned(amount int64) string {
	prefix := "+"
	if amount < 0 {
		prefix = "-"
	}
	return prefix + FormatRupiah(amount)
}

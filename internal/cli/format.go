package cli

import (
	"strings"

	"github.com/shopspring/decimal"
)

// descriptionDisplayMax is the longest description shown untruncated in
// tabular output; longer ones are cut to descriptionKeep runes plus an
// ellipsis.
const (
	descriptionDisplayMax = 30
	descriptionKeep       = 28
)

// FormatMoney renders an amount for display: currency symbol prefix, a
// thousands-grouped integer part, and exactly two decimals. Persisted
// amounts never go through this; it is display-only.
func FormatMoney(symbol string, amount decimal.Decimal) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Neg()
	}

	fixed := amount.StringFixed(2)
	intPart, fracPart, _ := strings.Cut(fixed, ".")

	return sign + symbol + groupThousands(intPart) + "." + fracPart
}

// groupThousands inserts comma separators into a string of digits.
func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	remainder := len(digits) % 3
	if remainder > 0 {
		b.WriteString(digits[:remainder])
	}
	for i := remainder; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// TruncateDescription shortens a description for tabular display.
// Descriptions up to 30 runes pass through unchanged; longer ones keep
// the first 28 runes with a trailing ellipsis.
func TruncateDescription(description string) string {
	runes := []rune(description)
	if len(runes) <= descriptionDisplayMax {
		return description
	}
	return string(runes[:descriptionKeep]) + "..."
}

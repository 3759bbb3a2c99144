package pkg

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatCurrency formats an amount as USD with thousands grouping and
// exactly two decimal places (e.g. $12,345.60).
func FormatCurrency(amount float64) string {
	negative := false
	if amount < 0 {
		negative = true
		amount = -amount
	}

	raw := fmt.Sprintf("%.2f", amount)
	parts := strings.SplitN(raw, ".", 2)
	intPart := parts[0]
	decPart := parts[1]

	result := "$" + groupThousands(intPart) + "." + decPart
	if negative {
		result = "-" + result
	}
	return result
}

// groupThousands inserts commas every three digits from the right.
func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	result := s[n-3:]
	remaining := s[:n-3]
	for len(remaining) > 3 {
		result = remaining[len(remaining)-3:] + "," + result
		remaining = remaining[:len(remaining)-3]
	}
	return remaining + "," + result
}

// FormatQuantity renders a quantity with its unit, trimming trailing zeros
// ("27.5 SQ", "3 EA").
func FormatQuantity(quantity float64, unit string) string {
	text := strconv.FormatFloat(quantity, 'f', 2, 64)
	text = strings.TrimRight(text, "0")
	text = strings.TrimSuffix(text, ".")
	if unit == "" {
		return text
	}
	return text + " " + unit
}

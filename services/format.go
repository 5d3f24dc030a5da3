package services

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatAED formats a decimal amount as AED currency with thousands
// grouping and exactly 2 decimal places, e.g. "AED 12,345.67". This is the
// only place monetary values are rounded; all arithmetic upstream stays
// exact.
func FormatAED(amount decimal.Decimal) string {
	negative := amount.IsNegative()
	if negative {
		amount = amount.Neg()
	}

	raw := amount.StringFixed(2)

	parts := strings.SplitN(raw, ".", 2)
	result := "AED " + groupThousands(parts[0]) + "." + parts[1]
	if negative {
		result = "-" + result
	}
	return result
}

// FormatAmount is FormatAED without the currency prefix, for table cells
// that carry the currency in their header.
func FormatAmount(amount decimal.Decimal) string {
	negative := amount.IsNegative()
	if negative {
		amount = amount.Neg()
	}

	raw := amount.StringFixed(2)

	parts := strings.SplitN(raw, ".", 2)
	result := groupThousands(parts[0]) + "." + parts[1]
	if negative {
		result = "-" + result
	}
	return result
}

// groupThousands inserts commas into an integer string every 3 digits from
// the right.
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
	if len(remaining) > 0 {
		result = remaining + "," + result
	}

	return result
}

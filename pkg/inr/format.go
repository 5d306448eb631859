package inr

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatCurrency renders amount with two decimals and en-IN grouping: 1234567.5 -> "12,34,567.50".
func FormatCurrency(amount decimal.Decimal) string {
	return format(amount.Round(2).StringFixed(2))
}

// FormatNumber renders amount with en-IN grouping and at most three decimals, trailing zeros dropped.
func FormatNumber(amount decimal.Decimal) string {
	return format(amount.Round(3).String())
}

func format(s string) string {
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart, frac, hasFrac := strings.Cut(s, ".")

	var b strings.Builder

	if neg && strings.Trim(s, "0.") != "" {
		b.WriteByte('-')
	}

	b.WriteString(group(intPart))

	if hasFrac {
		b.WriteByte('.')
		b.WriteString(frac)
	}

	return b.String()
}

// group inserts separators after the last three digits and then every two digits.
func group(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]

	var b strings.Builder
	b.Grow(len(digits) + len(digits)/2)

	lead := 2 - len(head)%2
	b.WriteString(head[:lead])

	for i := lead; i < len(head); i += 2 {
		b.WriteByte(',')
		b.WriteString(head[i : i+2])
	}

	b.WriteByte(',')
	b.WriteString(tail)

	return b.String()
}

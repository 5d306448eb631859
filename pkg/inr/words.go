// Package inr formats rupee amounts the way Indian invoices print them:
// lakh/crore digit grouping and amounts spelled out in words.
package inr

import (
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	crore    = 10_000_000
	lakh     = 100_000
	thousand = 1_000
)

var bigCrore = big.NewInt(crore)

var (
	ones  = [...]string{"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine"}
	teens = [...]string{"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen", "Seventeen", "Eighteen", "Nineteen"}
	tens  = [...]string{"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety"}
)

// Words spells n in English using the Indian grouping (crore, lakh, thousand).
// Zero is "Zero". Negative values are spelled by magnitude with a "Minus" prefix.
func Words(n int64) string {
	return spell(big.NewInt(n))
}

// AmountInWords drops the fractional part of amount and spells the rest followed by "only",
// e.g. 2950.75 -> "Two Thousand Nine Hundred Fifty only".
func AmountInWords(amount decimal.Decimal) string {
	return spell(amount.BigInt()) + " only"
}

func spell(n *big.Int) string {
	switch n.Sign() {
	case 0:
		return "Zero"
	case -1:
		return "Minus " + words(new(big.Int).Neg(n))
	default:
		return words(n)
	}
}

// words spells a positive n.
func words(n *big.Int) string {
	parts := make([]string, 0, 4)

	// Crore counts above 999 are grouped again: 1,00,000 crore is "One Lakh Crore".
	c, rem := new(big.Int).QuoRem(n, bigCrore, new(big.Int))
	if c.Sign() > 0 {
		parts = append(parts, words(c)+" Crore")
	}

	return strings.Join(append(parts, belowCrore(rem.Uint64())...), " ")
}

func belowCrore(n uint64) []string {
	var parts []string

	if l := n % crore / lakh; l > 0 {
		parts = append(parts, underThousand(l)+" Lakh")
	}

	if t := n % lakh / thousand; t > 0 {
		parts = append(parts, underThousand(t)+" Thousand")
	}

	if r := n % thousand; r > 0 {
		parts = append(parts, underThousand(r))
	}

	return parts
}

func underThousand(n uint64) string {
	switch {
	case n < 10:
		return ones[n]
	case n < 20:
		return teens[n-10]
	case n < 100:
		if n%10 == 0 {
			return tens[n/10]
		}

		return tens[n/10] + " " + ones[n%10]
	}

	if n%100 == 0 {
		return ones[n/100] + " Hundred"
	}

	return ones[n/100] + " Hundred " + underThousand(n%100)
}

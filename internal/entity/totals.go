package entity

import (
	"github.com/shopspring/decimal"

	"github.com/samandr77/microservices/invoice/pkg/inr"
)

const DefaultGSTRatePercent = 18

var oneHundred = decimal.NewFromInt(100)

// Totals are derived from the line items and the GST rate, never edited directly.
type Totals struct {
	Basic   decimal.Decimal `json:"basic"`
	GST     decimal.Decimal `json:"gst"`
	Net     decimal.Decimal `json:"net"`
	InWords string          `json:"inWords"`
}

// RecomputeTotals sums every item amount (discounts included), applies GST rounded to whole rupees
// and spells the net amount.
func RecomputeTotals(items []LineItem, gstRatePercent int) Totals {
	basic := decimal.Zero
	for _, item := range items {
		basic = basic.Add(item.Amount)
	}

	gst := GSTAmount(basic, gstRatePercent)
	net := basic.Add(gst)

	return Totals{
		Basic:   basic,
		GST:     gst,
		Net:     net,
		InWords: inr.AmountInWords(net),
	}
}

// GSTAmount returns basic * rate / 100 rounded to the nearest rupee, halves away from zero.
func GSTAmount(basic decimal.Decimal, gstRatePercent int) decimal.Decimal {
	if gstRatePercent == 0 {
		return decimal.Zero
	}

	return basic.Mul(decimal.NewFromInt(int64(gstRatePercent))).Div(oneHundred).Round(0)
}

package entity

import (
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

const (
	DefaultUOM           = "Nos."
	DefaultDiscountLabel = "Special Discount"
)

type LineItem struct {
	ID uuid.UUID `json:"id"`
	// No is the 1-based row number of a regular item. Discounts have no number (0).
	No            int                 `json:"no"`
	Details       string              `json:"details"`
	UOM           string              `json:"uom"`
	Qty           decimal.NullDecimal `json:"qty"`
	Rate          decimal.NullDecimal `json:"rate"`
	Amount        decimal.Decimal     `json:"amount"`
	IsDiscount    bool                `json:"isDiscount"`
	DiscountLabel string              `json:"discountLabel,omitempty"`
}

// NewLineItem returns a blank regular item. Quantity and rate start unset so that forms show empty
// inputs instead of zeros.
func NewLineItem(id uuid.UUID, no int) LineItem {
	return LineItem{
		ID:     id,
		No:     no,
		UOM:    DefaultUOM,
		Amount: decimal.Zero,
	}
}

func NewDiscount(id uuid.UUID) LineItem {
	return LineItem{
		ID:            id,
		Amount:        decimal.Zero,
		IsDiscount:    true,
		DiscountLabel: DefaultDiscountLabel,
	}
}

// LineAmount returns qty * rate. The second result is false when either operand is unset, in which
// case the caller keeps the current amount.
func LineAmount(qty, rate decimal.NullDecimal) (decimal.Decimal, bool) {
	if !qty.Valid || !rate.Valid {
		return decimal.Decimal{}, false
	}

	return qty.Decimal.Mul(rate.Decimal), true
}

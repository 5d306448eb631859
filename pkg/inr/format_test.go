package inr_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/invoice/pkg/inr"
)

func TestFormatCurrency(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		amount string
		want   string
	}{
		{amount: "0", want: "0.00"},
		{amount: "5", want: "5.00"},
		{amount: "999.999", want: "1,000.00"},
		{amount: "2950", want: "2,950.00"},
		{amount: "125000.5", want: "1,25,000.50"},
		{amount: "1234567.5", want: "12,34,567.50"},
		{amount: "999999999999", want: "9,99,99,99,99,999.00"},
		{amount: "-100", want: "-100.00"},
		{amount: "-123456.789", want: "-1,23,456.79"},
		{amount: "-0.001", want: "0.00"},
		{amount: "100000000000000000000", want: "10,00,00,00,00,00,00,00,00,000.00"},
		{amount: "-1000000000000000000000", want: "-1,00,00,00,00,00,00,00,00,00,000.00"},
	} {
		tt := tt
		t.Run(tt.amount, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tt.want, inr.FormatCurrency(decimal.RequireFromString(tt.amount)))
		})
	}
}

func TestFormatNumber(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		amount string
		want   string
	}{
		{amount: "0", want: "0"},
		{amount: "2500", want: "2,500"},
		{amount: "2500.50", want: "2,500.5"},
		{amount: "1234567.12345", want: "12,34,567.123"},
	} {
		tt := tt
		t.Run(tt.amount, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tt.want, inr.FormatNumber(decimal.RequireFromString(tt.amount)))
		})
	}
}

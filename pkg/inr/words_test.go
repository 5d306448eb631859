package inr_test

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/invoice/pkg/inr"
)

func TestWords(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		n    int64
		want string
	}{
		{n: 0, want: "Zero"},
		{n: 7, want: "Seven"},
		{n: 13, want: "Thirteen"},
		{n: 40, want: "Forty"},
		{n: 99, want: "Ninety Nine"},
		{n: 100, want: "One Hundred"},
		{n: 101, want: "One Hundred One"},
		{n: 999, want: "Nine Hundred Ninety Nine"},
		{n: 1500, want: "One Thousand Five Hundred"},
		{n: 2950, want: "Two Thousand Nine Hundred Fifty"},
		{n: 100000, want: "One Lakh"},
		{n: 125000, want: "One Lakh Twenty Five Thousand"},
		{n: 1005010, want: "Ten Lakh Five Thousand Ten"},
		{n: 10000000, want: "One Crore"},
		{n: 12345678, want: "One Crore Twenty Three Lakh Forty Five Thousand Six Hundred Seventy Eight"},
		{n: 1000000000000, want: "One Lakh Crore"},
		{
			n:    999999999999,
			want: "Ninety Nine Thousand Nine Hundred Ninety Nine Crore Ninety Nine Lakh Ninety Nine Thousand Nine Hundred Ninety Nine",
		},
		{n: -450, want: "Minus Four Hundred Fifty"},
	} {
		tt := tt
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tt.want, inr.Words(tt.n))
		})
	}
}

func TestWords_MinInt64(t *testing.T) {
	t.Parallel()

	require.NotPanics(t, func() {
		got := inr.Words(math.MinInt64)
		require.Contains(t, got, "Minus ")
	})
}

func TestAmountInWords(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		amount string
		want   string
	}{
		{amount: "0", want: "Zero only"},
		{amount: "0.99", want: "Zero only"},
		{amount: "2950", want: "Two Thousand Nine Hundred Fifty only"},
		{amount: "2950.75", want: "Two Thousand Nine Hundred Fifty only"},
		{amount: "10000000", want: "One Crore only"},
		{amount: "-2950.75", want: "Minus Two Thousand Nine Hundred Fifty only"},
		{amount: "9223372036854775808", want: "Ninety Two Thousand Two Hundred Thirty Three Crore Seventy Two Lakh Three Thousand Six Hundred Eighty Five Crore " +
			"Forty Seven Lakh Seventy Five Thousand Eight Hundred Eight only"},
		{amount: "10000000000000000000", want: "One Lakh Crore Crore only"},
		{amount: "11800000000000000000.5", want: "One Lakh Eighteen Thousand Crore Crore only"},
	} {
		tt := tt
		t.Run(tt.amount, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tt.want, inr.AmountInWords(decimal.RequireFromString(tt.amount)))
		})
	}
}

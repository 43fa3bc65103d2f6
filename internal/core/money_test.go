package core

import (
	"math"
	"testing"
)

func TestFormatCurrency(t *testing.T) {
	cases := []struct {
		amount   float64
		symbol   string
		decimals int
		out      string
	}{
		{1234.5, "$", 2, "$1,234.50"},
		{5, "€", 0, "€5"},
		{0, "$", 2, "$0.00"},
		{999.999, "$", 2, "$1,000.00"},
		{1234567.891, "$", 2, "$1,234,567.89"},
		{-1234.5, "$", 2, "$-1,234.50"},
		{-123, "$", 2, "$-123.00"},
		{1.005, "$", 2, "$1.01"}, // half away from zero
		{-2.5, "$", 0, "$-3"},
		{1234.5678, "£", 4, "£1,234.5678"},
		{100000, "", 0, "100,000"},
		{12.3, "$", -1, "$12"},
		{-0.004, "$", 2, "$-0.00"}, // sign survives rounding to zero
		{-0.4, "$", 0, "$-0"},
		{math.Copysign(0, -1), "$", 2, "$0.00"},
	}
	for _, tc := range cases {
		got := FormatCurrency(tc.amount, tc.symbol, tc.decimals)
		if got != tc.out {
			t.Fatalf("FormatCurrency(%v, %q, %d) = %q, want %q", tc.amount, tc.symbol, tc.decimals, got, tc.out)
		}
	}
}

func TestFormatFixedNonFinite(t *testing.T) {
	if got := FormatFixed(math.NaN(), 2); got != "NaN" {
		t.Fatalf("NaN: got %q", got)
	}
	if got := FormatCurrency(math.Inf(1), "$", 2); got != "$Infinity" {
		t.Fatalf("+Inf: got %q", got)
	}
	if got := FormatCurrency(math.Inf(-1), "$", 2); got != "$-Infinity" {
		t.Fatalf("-Inf: got %q", got)
	}
}

func TestCurrencyFormatDefaults(t *testing.T) {
	f := DefaultCurrencyFormat()
	if got := f.Format(1234.5); got != "$1,234.50" {
		t.Fatalf("default format: got %q", got)
	}
}

func TestPercentageChange(t *testing.T) {
	cases := []struct {
		current, previous, out float64
	}{
		{50, 0, 100},
		{0, 0, 0},
		{-10, 0, 0},
		{150, 100, 50},
		{50, 100, -50},
		{100, 100, 0},
		{10, -20, -150},
	}
	for _, tc := range cases {
		if got := PercentageChange(tc.current, tc.previous); got != tc.out {
			t.Fatalf("PercentageChange(%v, %v) = %v, want %v", tc.current, tc.previous, got, tc.out)
		}
	}
}

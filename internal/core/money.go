// Package core provides money formatting and aggregation of expense records.
//
// This file contains the currency and percentage helpers used to present
// aggregated amounts.
package core

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	DefaultCurrency = "$"
	DefaultDecimals = 2
)

// CurrencyFormat holds the symbol and precision used by FormatCurrency.
type CurrencyFormat struct {
	Symbol   string
	Decimals int
}

// DefaultCurrencyFormat returns "$" with two decimals.
func DefaultCurrencyFormat() CurrencyFormat {
	return CurrencyFormat{Symbol: DefaultCurrency, Decimals: DefaultDecimals}
}

// Format formats amount with the receiver's symbol and precision.
func (f CurrencyFormat) Format(amount float64) string {
	return FormatCurrency(amount, f.Symbol, f.Decimals)
}

// FormatCurrency prefixes symbol to amount rounded half away from zero to
// decimals places, with comma thousands separators in the integer part.
//
// Examples:
//
//	FormatCurrency(1234.5, "$", 2) -> "$1,234.50"
//	FormatCurrency(5, "€", 0)      -> "€5"
//	FormatCurrency(-1234.5, "$", 2) -> "$-1,234.50"
func FormatCurrency(amount float64, symbol string, decimals int) string {
	if decimals < 0 {
		decimals = 0
	}
	return symbol + groupThousands(FormatFixed(amount, decimals))
}

// FormatFixed rounds amount half away from zero and renders exactly places
// decimals, without grouping. A negative amount keeps its sign even when it
// rounds to zero ("-0.00"). NaN and infinities render as "NaN", "Infinity"
// and "-Infinity".
func FormatFixed(amount float64, places int) string {
	switch {
	case math.IsNaN(amount):
		return "NaN"
	case math.IsInf(amount, 1):
		return "Infinity"
	case math.IsInf(amount, -1):
		return "-Infinity"
	}
	s := decimal.NewFromFloat(amount).StringFixed(int32(places))
	if amount < 0 && !strings.HasPrefix(s, "-") {
		s = "-" + s
	}
	return s
}

// groupThousands inserts commas every three digits of the integer part. The
// sign and the fractional digits are left alone.
func groupThousands(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}
	if len(intPart) <= 3 || strings.TrimLeft(intPart, "0123456789") != "" {
		return sign + intPart + frac
	}

	var b strings.Builder
	b.Grow(len(s) + len(intPart)/3 + 1)
	b.WriteString(sign)
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}
	b.WriteString(frac)
	return b.String()
}

// PercentageChange returns (current-previous)/previous*100. A zero previous
// value yields 100 when current is positive and 0 otherwise.
func PercentageChange(current, previous float64) float64 {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return (current - previous) / previous * 100
}

// Package core holds the domain types and the money, date and text value
// rules shared by the form and JSON API paths. Amounts are fixed-point
// cents; floats appear only at the serialization boundary.
package core

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// MaxCents is the largest storable amount, 99999999.99 in cents.
const MaxCents int64 = 9_999_999_999

// Money is a currency amount in exact cents.
type Money struct {
	Cents int64
}

// ParseAmount converts a decimal string to Money.
//
// At most two fractional digits are accepted; a third digit is rejected
// rather than rounded so stored amounts always carry exactly the precision
// the caller supplied. Zero, negative, signed and out-of-range values fail
// with an amount validation error.
//
//	ParseAmount("12.34") -> 1234 cents
//	ParseAmount("12")    -> 1200 cents
//	ParseAmount("12.345") -> error
func ParseAmount(s string) (Money, error) {
	return parseAmountField(s, "amount")
}

func parseAmountField(s, field string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Money{}, invalidAmount(field, "Invalid amount format")
	}
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		return Money{}, invalidAmount(field, "Amount must be greater than zero")
	}
	parts := strings.Split(s, ".")
	if len(parts) > 2 {
		return Money{}, invalidAmount(field, "Invalid amount format")
	}
	intPart := parts[0]
	fracPart := ""
	if len(parts) == 2 {
		fracPart = parts[1]
	}
	if intPart == "" {
		intPart = "0"
	}
	if len(fracPart) > 2 {
		return Money{}, invalidAmount(field, "Amount cannot have more than two decimal places")
	}
	for _, r := range intPart {
		if !unicode.IsDigit(r) {
			return Money{}, invalidAmount(field, "Invalid amount format")
		}
	}
	for _, r := range fracPart {
		if !unicode.IsDigit(r) {
			return Money{}, invalidAmount(field, "Invalid amount format")
		}
	}
	iv, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return Money{}, invalidAmount(field, "Invalid amount format")
	}
	const maxSafeInt64 = (1<<63 - 1) / 100
	if iv > maxSafeInt64 {
		return Money{}, invalidAmount(field, "Amount cannot exceed 99999999.99")
	}
	var fracCents int64
	if len(fracPart) > 0 {
		fracCents = int64(fracPart[0]-'0') * 10
		if len(fracPart) > 1 {
			fracCents += int64(fracPart[1] - '0')
		}
	}
	cents := iv*100 + fracCents
	if cents <= 0 {
		return Money{}, invalidAmount(field, "Amount must be greater than zero")
	}
	if cents > MaxCents {
		return Money{}, invalidAmount(field, "Amount cannot exceed 99999999.99")
	}
	return Money{Cents: cents}, nil
}

// Validate checks the storable bounds on an already-parsed amount.
func (m Money) Validate() error {
	if m.Cents <= 0 {
		return invalidAmount("amount", "Amount must be greater than zero")
	}
	if m.Cents > MaxCents {
		return invalidAmount("amount", "Amount cannot exceed 99999999.99")
	}
	return nil
}

// Dollars returns the float value for wire serialization only.
// Calculations stay in cents.
func (m Money) Dollars() float64 {
	return float64(m.Cents) / 100.0
}

// String formats the exact decimal value with two fractional digits.
func (m Money) String() string {
	cents := m.Cents
	neg := cents < 0
	if neg {
		cents = -cents
	}
	s := fmt.Sprintf("%d.%02d", cents/100, cents%100)
	if neg {
		return "-" + s
	}
	return s
}

// Balance computes income minus expenses. Pure: same inputs, same output.
func Balance(income, expenses Money) Money {
	return Money{Cents: income.Cents - expenses.Cents}
}

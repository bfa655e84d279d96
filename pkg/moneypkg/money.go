// Package moneypkg provides common money related functionality for apps.
package moneypkg

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/go-petr/pet-atm/pkg/errorspkg"
)

// DisplayPlaces is the number of decimal places money is printed with.
const DisplayPlaces = 2

// MaxExponent bounds the decimal exponent of a parsed amount in both directions.
const MaxExponent = 18

// MaxAmount is the largest absolute amount Parse accepts.
var MaxAmount = decimal.New(1, 15)

// Parse converts user input into a money amount.
func Parse(s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: amount %q: %v", errorspkg.ErrInvalidInput, s, err)
	}

	// Checked before any arithmetic: rescaling 1e100000000 never finishes.
	if exp := amount.Exponent(); exp > MaxExponent || exp < -MaxExponent {
		return decimal.Zero, fmt.Errorf("%w: amount %q: exponent out of range", errorspkg.ErrInvalidInput, s)
	}

	if amount.Abs().GreaterThan(MaxAmount) {
		return decimal.Zero, fmt.Errorf("%w: amount %q: greater than %s", errorspkg.ErrInvalidInput, s, MaxAmount)
	}

	return amount, nil
}

// Format returns the amount with exactly two decimal places.
func Format(amount decimal.Decimal) string {
	return amount.StringFixed(DisplayPlaces)
}

// IsPositive returns true if the amount is strictly greater than zero.
func IsPositive(amount decimal.Decimal) bool {
	return amount.GreaterThan(decimal.Zero)
}

// Package domain provides defenitions of all entities.
package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	// ErrCustomerNotFound indicates that no customer holds the given account number.
	ErrCustomerNotFound = errors.New("account not found")
	// ErrRegistryFull indicates that the registry reached its maximum number of customers.
	ErrRegistryFull = errors.New("maximum limit reached")
	// ErrBelowMinimumBalance indicates that the initial balance is lower than the required minimum.
	ErrBelowMinimumBalance = errors.New("initial balance below minimum")
	// ErrNonPositiveAmount indicates zero or negative deposit or withdrawal amount.
	ErrNonPositiveAmount = errors.New("amount must be positive")
	// ErrInsufficientBalance indicates that the withdrawal would break the minimum balance.
	ErrInsufficientBalance = errors.New("insufficient balance")
)

// Customer holds a single account of the registry.
//
// Account numbers are not unique, lookups resolve to the first customer added.
type Customer struct {
	Name          string          `json:"name"`
	AccountNumber int             `json:"account_number"`
	IDDocument    string          `json:"id_document"`
	Balance       decimal.Decimal `json:"balance"`
}

// CreateCustomerParams holds the data needed to register a customer.
type CreateCustomerParams struct {
	Name          string
	AccountNumber int
	IDDocument    string
	Balance       decimal.Decimal
}

// Package domain defines domain-level errors for the trading feature.
package domain

import "errors"

// Business failures of the trade executor. Every one of them aborts the
// whole atomic unit; none leaves a partial mutation behind.
var (
	// ErrAccountNotFound indicates the username has no account row.
	ErrAccountNotFound = errors.New("account not found")

	// ErrQuoteNotFound indicates the security id is unknown to the quote store.
	ErrQuoteNotFound = errors.New("quote not found")

	// ErrInvalidQuote indicates the stored price text could not be parsed
	// as a decimal. The trade is rejected instead of executing at zero.
	ErrInvalidQuote = errors.New("quote price is not parseable")

	// ErrInsufficientFunds indicates the buy cost exceeds the account balance.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrInsufficientHoldings indicates the sell quantity exceeds the held
	// quantity, or the holding does not exist.
	ErrInsufficientHoldings = errors.New("insufficient holdings")

	// ErrInvalidQuantity indicates a zero or negative order quantity.
	ErrInvalidQuantity = errors.New("quantity must be positive")

	// ErrConcurrencyConflict indicates the order lost a version-stamp race
	// against a concurrent mutation of the same account or holding. Nothing
	// was committed, so the caller may safely retry the whole order.
	ErrConcurrencyConflict = errors.New("concurrent modification, retry the order")
)

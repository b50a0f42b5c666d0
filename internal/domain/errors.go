package domain

import "errors"

var (
	// Account errors
	ErrAccountNotFound      = errors.New("account not found")
	ErrAccountExists        = errors.New("account number already in use")
	ErrAccountNotMutable    = errors.New("account status does not permit this operation")
	ErrInvalidStatus        = errors.New("unknown account status")
	ErrInvalidAccountNumber = errors.New("invalid account number")
	ErrInsufficientFunds    = errors.New("insufficient funds")

	// Amount errors
	ErrInvalidAmount   = errors.New("amount must be positive")
	ErrAmountPrecision = errors.New("amount has more than two decimal places")
	ErrInvalidCurrency = errors.New("invalid currency code")

	// Transfer errors
	ErrSameAccount         = errors.New("cannot transfer to same account")
	ErrCurrencyMismatch    = errors.New("cannot transfer between different currencies")
	ErrTransferNotFound    = errors.New("transfer not found")
	ErrTransactionNotFound = errors.New("transaction not found")

	// Storage contention; callers may retry.
	ErrConcurrencyConflict = errors.New("operation conflicted with a concurrent update")
)

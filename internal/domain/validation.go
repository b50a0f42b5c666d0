package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	MaxOperationAmount = "1000000000" // 1 billion, per-operation cap
)

// Currency codes accepted by the ledger (ISO 4217).
var validCurrencies = map[string]bool{
	"USD": true, "EUR": true, "GBP": true, "JPY": true,
	"CAD": true, "AUD": true, "INR": true, "CHF": true,
	"CNY": true, "SEK": true, "NZD": true, "SGD": true,
}

// ValidateAmount validates an operation amount: strictly positive,
// at most two decimal places, below the per-operation cap.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	if !amount.Equal(amount.Round(2)) {
		return ErrAmountPrecision
	}

	maxAmount, _ := decimal.NewFromString(MaxOperationAmount)
	if amount.GreaterThan(maxAmount) {
		return fmt.Errorf("%w: maximum amount is %s", ErrInvalidAmount, MaxOperationAmount)
	}

	return nil
}

// ValidateCurrency validates a currency code.
func ValidateCurrency(currency string) error {
	currency = strings.ToUpper(strings.TrimSpace(currency))

	if !validCurrencies[currency] {
		return fmt.Errorf("%w: %s is not a supported ISO 4217 code", ErrInvalidCurrency, currency)
	}

	return nil
}

// ValidateAccountNumber validates a collaborator-supplied account number.
// Identity generation is the caller's concern; the ledger only requires a
// non-empty, reasonably sized opaque string.
func ValidateAccountNumber(number string) error {
	number = strings.TrimSpace(number)

	if number == "" {
		return fmt.Errorf("%w: empty", ErrInvalidAccountNumber)
	}

	if len(number) > 20 {
		return fmt.Errorf("%w: exceeds 20 characters", ErrInvalidAccountNumber)
	}

	return nil
}

// ValidatePagination clamps limit/offset to sane bounds.
func ValidatePagination(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 10000 {
		limit = 10000
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

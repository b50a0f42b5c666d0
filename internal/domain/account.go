package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountStatus represents the lifecycle state of an account.
type AccountStatus string

const (
	AccountStatusActive   AccountStatus = "active"
	AccountStatusInactive AccountStatus = "inactive"
	AccountStatusFrozen   AccountStatus = "frozen"
	AccountStatusClosed   AccountStatus = "closed"
)

// Account represents a ledger account that can hold a balance.
// The balance is only ever changed through the ledger operations;
// closing an account is a status change, never a deletion.
type Account struct {
	ID            string
	AccountNumber string
	OwnerID       string
	Nickname      string
	Currency      string
	Status        AccountStatus
	Balance       decimal.Decimal
	Version       int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ValidateMutable checks whether the account status permits balance mutations.
// Only active accounts accept deposits, withdrawals or transfer legs.
func (a *Account) ValidateMutable() error {
	if a.Status != AccountStatusActive {
		return ErrAccountNotMutable
	}
	return nil
}

// ValidateDeposit checks if the account can be credited by amount.
func (a *Account) ValidateDeposit(amount decimal.Decimal) error {
	if err := a.ValidateMutable(); err != nil {
		return err
	}
	return ValidateAmount(amount)
}

// ValidateWithdrawal checks if the account can be debited by amount
// without breaking the no-overdraft floor.
func (a *Account) ValidateWithdrawal(amount decimal.Decimal) error {
	if err := a.ValidateMutable(); err != nil {
		return err
	}
	if err := ValidateAmount(amount); err != nil {
		return err
	}
	if amount.GreaterThan(a.Balance) {
		return ErrInsufficientFunds
	}
	return nil
}

// ApplyDeposit returns the new balance after crediting amount.
func (a *Account) ApplyDeposit(amount decimal.Decimal) decimal.Decimal {
	return a.Balance.Add(amount)
}

// ApplyWithdrawal returns the new balance after debiting amount.
func (a *Account) ApplyWithdrawal(amount decimal.Decimal) decimal.Decimal {
	return a.Balance.Sub(amount)
}

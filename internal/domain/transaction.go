package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies a ledger transaction.
type TransactionType string

const (
	TransactionTypeDeposit     TransactionType = "deposit"
	TransactionTypeWithdrawal  TransactionType = "withdrawal"
	TransactionTypeTransferIn  TransactionType = "transfer_in"
	TransactionTypeTransferOut TransactionType = "transfer_out"
	TransactionTypeInterest    TransactionType = "interest"
	TransactionTypeFee         TransactionType = "fee"
)

// Transaction is an immutable record of a single balance-affecting event.
// BalanceAfter is the owning account's balance immediately after the event;
// replaying an account's transactions from zero reproduces every snapshot.
type Transaction struct {
	ID              string
	AccountID       string
	Type            TransactionType
	Amount          decimal.Decimal
	BalanceAfter    decimal.Decimal
	Description     string
	TransferID      *string
	ReferenceNumber string
	CreatedAt       time.Time
}

// IsCredit reports whether the type increases the account balance.
func (t TransactionType) IsCredit() bool {
	switch t {
	case TransactionTypeDeposit, TransactionTypeTransferIn, TransactionTypeInterest:
		return true
	}
	return false
}

// SignedAmount returns the amount with the sign of its balance effect:
// credits positive, debits negative.
func (t *Transaction) SignedAmount() decimal.Decimal {
	if t.Type.IsCredit() {
		return t.Amount
	}
	return t.Amount.Neg()
}

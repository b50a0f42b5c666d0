package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestTransactionType_IsCredit(t *testing.T) {
	credits := []TransactionType{TransactionTypeDeposit, TransactionTypeTransferIn, TransactionTypeInterest}
	debits := []TransactionType{TransactionTypeWithdrawal, TransactionTypeTransferOut, TransactionTypeFee}

	for _, typ := range credits {
		if !typ.IsCredit() {
			t.Errorf("expected %s to be a credit", typ)
		}
	}
	for _, typ := range debits {
		if typ.IsCredit() {
			t.Errorf("expected %s to be a debit", typ)
		}
	}
}

func TestTransaction_SignedAmount(t *testing.T) {
	amount := decimal.RequireFromString("25.50")

	credit := &Transaction{Type: TransactionTypeDeposit, Amount: amount}
	if got := credit.SignedAmount(); !got.Equal(amount) {
		t.Fatalf("expected %s, got %s", amount, got)
	}

	debit := &Transaction{Type: TransactionTypeFee, Amount: amount}
	if got := debit.SignedAmount(); !got.Equal(amount.Neg()) {
		t.Fatalf("expected %s, got %s", amount.Neg(), got)
	}
}

package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ecofin/ledger/internal/domain"
	"github.com/ecofin/ledger/internal/usecase"
	"github.com/ecofin/ledger/internal/usecase/mocks"
)

func seedTransactions(t *testing.T, repo *mocks.MockTransactionRepository, txns ...*domain.Transaction) {
	t.Helper()
	for _, txn := range txns {
		if err := repo.Create(context.Background(), nil, txn); err != nil {
			t.Fatalf("seed transaction: %v", err)
		}
	}
}

func TestTransactionUseCase_ListTransactions(t *testing.T) {
	accRepo := mocks.NewMockAccountRepository()
	txnRepo := mocks.NewMockTransactionRepository()
	seedAccount(t, accRepo, activeAccount("acc-1", "ACC-001", "100.00"))

	deposit := domain.TransactionTypeDeposit
	seedTransactions(t, txnRepo,
		&domain.Transaction{ID: "txn-1", AccountID: "acc-1", Type: domain.TransactionTypeDeposit, Amount: decimal.NewFromInt(100), ReferenceNumber: "ref-1"},
		&domain.Transaction{ID: "txn-2", AccountID: "acc-1", Type: domain.TransactionTypeWithdrawal, Amount: decimal.NewFromInt(20), ReferenceNumber: "ref-2"},
		&domain.Transaction{ID: "txn-3", AccountID: "acc-2", Type: domain.TransactionTypeDeposit, Amount: decimal.NewFromInt(5), ReferenceNumber: "ref-3"},
	)

	uc := usecase.NewTransactionUseCase(accRepo, txnRepo)

	t.Run("lists only the account's transactions", func(t *testing.T) {
		txns, err := uc.ListTransactions(context.Background(), usecase.ListTransactionsInput{AccountNumber: "ACC-001"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(txns) != 2 {
			t.Fatalf("expected 2 transactions, got %d", len(txns))
		}
	})

	t.Run("type filter narrows the list", func(t *testing.T) {
		txns, err := uc.ListTransactions(context.Background(), usecase.ListTransactionsInput{
			AccountNumber: "ACC-001",
			Type:          &deposit,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(txns) != 1 || txns[0].ID != "txn-1" {
			t.Fatalf("expected only the deposit, got %d transactions", len(txns))
		}
	})

	t.Run("unknown account", func(t *testing.T) {
		_, err := uc.ListTransactions(context.Background(), usecase.ListTransactionsInput{AccountNumber: "ACC-404"})
		if !errors.Is(err, domain.ErrAccountNotFound) {
			t.Fatalf("expected ErrAccountNotFound, got %v", err)
		}
	})

	t.Run("pagination defaults are clamped", func(t *testing.T) {
		var captured usecase.TransactionFilter
		txnRepo.ListByAccountFunc = func(ctx context.Context, accountID string, filter usecase.TransactionFilter) ([]*domain.Transaction, error) {
			captured = filter
			return nil, nil
		}
		defer func() { txnRepo.ListByAccountFunc = nil }()

		from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		if _, err := uc.ListTransactions(context.Background(), usecase.ListTransactionsInput{
			AccountNumber: "ACC-001",
			From:          &from,
			Descending:    true,
			Limit:         -1,
			Offset:        -5,
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if captured.Limit <= 0 {
			t.Errorf("expected a positive default limit, got %d", captured.Limit)
		}
		if captured.Offset != 0 {
			t.Errorf("expected offset clamped to 0, got %d", captured.Offset)
		}
		if !captured.Descending {
			t.Error("expected descending order to pass through")
		}
		if captured.From == nil || !captured.From.Equal(from) {
			t.Error("expected from filter to pass through")
		}
	})
}

func TestTransactionUseCase_GetTransactionByReference(t *testing.T) {
	txnRepo := mocks.NewMockTransactionRepository()
	seedTransactions(t, txnRepo,
		&domain.Transaction{ID: "txn-1", AccountID: "acc-1", ReferenceNumber: "ref-1"},
	)

	uc := usecase.NewTransactionUseCase(mocks.NewMockAccountRepository(), txnRepo)

	txn, err := uc.GetTransactionByReference(context.Background(), "ref-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if txn.ID != "txn-1" {
		t.Errorf("expected txn-1, got %s", txn.ID)
	}

	if _, err := uc.GetTransactionByReference(context.Background(), "missing"); !errors.Is(err, domain.ErrTransactionNotFound) {
		t.Fatalf("expected ErrTransactionNotFound, got %v", err)
	}
}

func TestTransactionUseCase_ListTransactionsByTransfer(t *testing.T) {
	transferID := "tr-1"
	txnRepo := mocks.NewMockTransactionRepository()
	seedTransactions(t, txnRepo,
		&domain.Transaction{ID: "txn-1", AccountID: "acc-1", Type: domain.TransactionTypeTransferOut, TransferID: &transferID},
		&domain.Transaction{ID: "txn-2", AccountID: "acc-2", Type: domain.TransactionTypeTransferIn, TransferID: &transferID},
		&domain.Transaction{ID: "txn-3", AccountID: "acc-1", Type: domain.TransactionTypeDeposit},
	)

	uc := usecase.NewTransactionUseCase(mocks.NewMockAccountRepository(), txnRepo)

	legs, err := uc.ListTransactionsByTransfer(context.Background(), transferID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(legs) != 2 {
		t.Fatalf("expected 2 legs, got %d", len(legs))
	}
}

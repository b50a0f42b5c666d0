package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"github.com/ecofin/ledger/internal/domain"
	"github.com/ecofin/ledger/internal/usecase"
	"github.com/ecofin/ledger/internal/usecase/mocks"
)

func reconciliationFixture(t *testing.T, balance string) (*mocks.MockAccountRepository, *mocks.MockTransactionRepository, *mocks.MockLedgerRepository) {
	t.Helper()
	accRepo := mocks.NewMockAccountRepository()
	txnRepo := mocks.NewMockTransactionRepository()
	ledgerRepo := mocks.NewMockLedgerRepository(gomock.NewController(t))
	seedAccount(t, accRepo, activeAccount("acc-1", "ACC-001", balance))
	return accRepo, txnRepo, ledgerRepo
}

func txn(id string, typ domain.TransactionType, amount, after string) *domain.Transaction {
	return &domain.Transaction{
		ID:              id,
		AccountID:       "acc-1",
		Type:            typ,
		Amount:          decimal.RequireFromString(amount),
		BalanceAfter:    decimal.RequireFromString(after),
		ReferenceNumber: "ref-" + id,
	}
}

func TestReconciliationUseCase_ReplayAccount(t *testing.T) {
	t.Run("clean log reconciles", func(t *testing.T) {
		accRepo, txnRepo, ledgerRepo := reconciliationFixture(t, "120.00")
		seedTransactions(t, txnRepo,
			txn("1", domain.TransactionTypeDeposit, "100.00", "100.00"),
			txn("2", domain.TransactionTypeWithdrawal, "30.00", "70.00"),
			txn("3", domain.TransactionTypeDeposit, "50.00", "120.00"),
		)
		ledgerRepo.EXPECT().SumSignedAmounts(gomock.Any(), "acc-1").Return(decimal.RequireFromString("120.00"), nil)

		uc := usecase.NewReconciliationUseCase(accRepo, txnRepo, ledgerRepo)
		result, err := uc.ReplayAccount(context.Background(), "ACC-001")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !result.IsReconciled {
			t.Error("expected account to reconcile")
		}
		if result.TransactionCount != 3 {
			t.Errorf("expected 3 transactions replayed, got %d", result.TransactionCount)
		}
		if !result.ReplayedBalance.Equal(decimal.NewFromInt(120)) {
			t.Errorf("expected replayed balance 120, got %s", result.ReplayedBalance)
		}
		if !result.Difference.IsZero() {
			t.Errorf("expected zero difference, got %s", result.Difference)
		}
		if result.SnapshotMismatch != nil {
			t.Errorf("unexpected snapshot mismatch: %s", *result.SnapshotMismatch)
		}
	})

	t.Run("tampered snapshot is reported", func(t *testing.T) {
		accRepo, txnRepo, ledgerRepo := reconciliationFixture(t, "70.00")
		seedTransactions(t, txnRepo,
			txn("1", domain.TransactionTypeDeposit, "100.00", "100.00"),
			txn("2", domain.TransactionTypeWithdrawal, "30.00", "75.00"),
		)
		ledgerRepo.EXPECT().SumSignedAmounts(gomock.Any(), "acc-1").Return(decimal.RequireFromString("70.00"), nil)

		uc := usecase.NewReconciliationUseCase(accRepo, txnRepo, ledgerRepo)
		result, err := uc.ReplayAccount(context.Background(), "ACC-001")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if result.IsReconciled {
			t.Error("expected reconciliation to fail")
		}
		if result.SnapshotMismatch == nil {
			t.Fatal("expected a snapshot mismatch report")
		}
	})

	t.Run("recorded balance drift is reported", func(t *testing.T) {
		accRepo, txnRepo, ledgerRepo := reconciliationFixture(t, "150.00")
		seedTransactions(t, txnRepo,
			txn("1", domain.TransactionTypeDeposit, "100.00", "100.00"),
		)
		ledgerRepo.EXPECT().SumSignedAmounts(gomock.Any(), "acc-1").Return(decimal.RequireFromString("100.00"), nil)

		uc := usecase.NewReconciliationUseCase(accRepo, txnRepo, ledgerRepo)
		result, err := uc.ReplayAccount(context.Background(), "ACC-001")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if result.IsReconciled {
			t.Error("expected reconciliation to fail")
		}
		if !result.Difference.Equal(decimal.NewFromInt(50)) {
			t.Errorf("expected difference 50, got %s", result.Difference)
		}
	})

	t.Run("storage sum disagreement is reported", func(t *testing.T) {
		accRepo, txnRepo, ledgerRepo := reconciliationFixture(t, "100.00")
		seedTransactions(t, txnRepo,
			txn("1", domain.TransactionTypeDeposit, "100.00", "100.00"),
		)
		ledgerRepo.EXPECT().SumSignedAmounts(gomock.Any(), "acc-1").Return(decimal.RequireFromString("90.00"), nil)

		uc := usecase.NewReconciliationUseCase(accRepo, txnRepo, ledgerRepo)
		result, err := uc.ReplayAccount(context.Background(), "ACC-001")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if result.IsReconciled {
			t.Error("expected reconciliation to fail")
		}
		if result.SnapshotMismatch == nil {
			t.Fatal("expected a mismatch report")
		}
	})

	t.Run("empty log reconciles a zero-balance account", func(t *testing.T) {
		accRepo, txnRepo, ledgerRepo := reconciliationFixture(t, "0.00")
		ledgerRepo.EXPECT().SumSignedAmounts(gomock.Any(), "acc-1").Return(decimal.Zero, nil)

		uc := usecase.NewReconciliationUseCase(accRepo, txnRepo, ledgerRepo)
		result, err := uc.ReplayAccount(context.Background(), "ACC-001")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !result.IsReconciled {
			t.Error("expected empty account to reconcile")
		}
		if result.TransactionCount != 0 {
			t.Errorf("expected 0 transactions, got %d", result.TransactionCount)
		}
	})

	t.Run("unknown account", func(t *testing.T) {
		accRepo, txnRepo, ledgerRepo := reconciliationFixture(t, "0.00")

		uc := usecase.NewReconciliationUseCase(accRepo, txnRepo, ledgerRepo)
		if _, err := uc.ReplayAccount(context.Background(), "ACC-404"); !errors.Is(err, domain.ErrAccountNotFound) {
			t.Fatalf("expected ErrAccountNotFound, got %v", err)
		}
	})

	t.Run("storage error surfaces", func(t *testing.T) {
		accRepo, txnRepo, ledgerRepo := reconciliationFixture(t, "0.00")
		sumErr := errors.New("db down")
		ledgerRepo.EXPECT().SumSignedAmounts(gomock.Any(), "acc-1").Return(decimal.Zero, sumErr)

		uc := usecase.NewReconciliationUseCase(accRepo, txnRepo, ledgerRepo)
		if _, err := uc.ReplayAccount(context.Background(), "ACC-001"); !errors.Is(err, sumErr) {
			t.Fatalf("expected storage error, got %v", err)
		}
	})
}

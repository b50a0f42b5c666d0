package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ecofin/ledger/internal/adapter/repository/memory"
	"github.com/ecofin/ledger/internal/domain"
)

func newStoreFixture() (*memory.Store, *memory.TxManager, *memory.AccountRepository, *memory.TransactionRepository) {
	store := memory.NewStore()
	return store, memory.NewTxManager(store), memory.NewAccountRepository(store), memory.NewTransactionRepository(store)
}

func mustCreateAccount(t *testing.T, repo *memory.AccountRepository, id, number, balance string) {
	t.Helper()
	err := repo.Create(context.Background(), &domain.Account{
		ID:            id,
		AccountNumber: number,
		Currency:      "USD",
		Status:        domain.AccountStatusActive,
		Balance:       decimal.RequireFromString(balance),
	})
	if err != nil {
		t.Fatalf("create account: %v", err)
	}
}

func TestStore_RollbackRestoresSnapshot(t *testing.T) {
	ctx := context.Background()
	_, txMgr, accRepo, txnRepo := newStoreFixture()
	mustCreateAccount(t, accRepo, "acc-1", "ACC-001", "100.00")

	tx, err := txMgr.Begin(ctx)
	if err != nil {
		t.Fatalf("begin: %v", err)
	}

	if err := accRepo.UpdateBalance(ctx, tx, "acc-1", decimal.NewFromInt(500), time.Now()); err != nil {
		t.Fatalf("update balance: %v", err)
	}
	if err := txnRepo.Create(ctx, tx, &domain.Transaction{
		ID: "txn-1", AccountID: "acc-1", Type: domain.TransactionTypeDeposit,
		Amount: decimal.NewFromInt(400), BalanceAfter: decimal.NewFromInt(500),
		ReferenceNumber: "ref-1",
	}); err != nil {
		t.Fatalf("create transaction: %v", err)
	}

	if err := tx.Rollback(ctx); err != nil {
		t.Fatalf("rollback: %v", err)
	}

	account, err := accRepo.GetByNumber(ctx, "ACC-001")
	if err != nil {
		t.Fatalf("get account: %v", err)
	}
	if !account.Balance.Equal(decimal.NewFromInt(100)) {
		t.Errorf("expected balance restored to 100, got %s", account.Balance)
	}

	count, err := txnRepo.CountByAccount(ctx, "acc-1")
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Errorf("expected transaction log rolled back, got %d rows", count)
	}
}

func TestStore_CommitKeepsWrites(t *testing.T) {
	ctx := context.Background()
	_, txMgr, accRepo, txnRepo := newStoreFixture()
	mustCreateAccount(t, accRepo, "acc-1", "ACC-001", "100.00")

	tx, err := txMgr.Begin(ctx)
	if err != nil {
		t.Fatalf("begin: %v", err)
	}
	if err := accRepo.UpdateBalance(ctx, tx, "acc-1", decimal.NewFromInt(150), time.Now()); err != nil {
		t.Fatalf("update balance: %v", err)
	}
	if err := txnRepo.Create(ctx, tx, &domain.Transaction{
		ID: "txn-1", AccountID: "acc-1", Type: domain.TransactionTypeDeposit,
		Amount: decimal.NewFromInt(50), BalanceAfter: decimal.NewFromInt(150),
		ReferenceNumber: "ref-1",
	}); err != nil {
		t.Fatalf("create transaction: %v", err)
	}
	if err := tx.Commit(ctx); err != nil {
		t.Fatalf("commit: %v", err)
	}

	account, err := accRepo.GetByNumber(ctx, "ACC-001")
	if err != nil {
		t.Fatalf("get account: %v", err)
	}
	if !account.Balance.Equal(decimal.NewFromInt(150)) {
		t.Errorf("expected balance 150, got %s", account.Balance)
	}
	if account.Version != 1 {
		t.Errorf("expected version bump to 1, got %d", account.Version)
	}
}

func TestStore_RollbackAfterCommitIsNoop(t *testing.T) {
	ctx := context.Background()
	_, txMgr, accRepo, _ := newStoreFixture()
	mustCreateAccount(t, accRepo, "acc-1", "ACC-001", "100.00")

	tx, err := txMgr.Begin(ctx)
	if err != nil {
		t.Fatalf("begin: %v", err)
	}
	if err := accRepo.UpdateBalance(ctx, tx, "acc-1", decimal.NewFromInt(200), time.Now()); err != nil {
		t.Fatalf("update balance: %v", err)
	}
	if err := tx.Commit(ctx); err != nil {
		t.Fatalf("commit: %v", err)
	}
	if err := tx.Rollback(ctx); err != nil {
		t.Fatalf("rollback after commit: %v", err)
	}

	account, err := accRepo.GetByNumber(ctx, "ACC-001")
	if err != nil {
		t.Fatalf("get account: %v", err)
	}
	if !account.Balance.Equal(decimal.NewFromInt(200)) {
		t.Errorf("expected committed balance 200, got %s", account.Balance)
	}
}

func TestStore_DoubleCommitFails(t *testing.T) {
	ctx := context.Background()
	_, txMgr, _, _ := newStoreFixture()

	tx, err := txMgr.Begin(ctx)
	if err != nil {
		t.Fatalf("begin: %v", err)
	}
	if err := tx.Commit(ctx); err != nil {
		t.Fatalf("commit: %v", err)
	}
	if err := tx.Commit(ctx); err == nil {
		t.Fatal("expected second commit to fail")
	}
}

func TestStore_ClosedTransactionRejected(t *testing.T) {
	ctx := context.Background()
	_, txMgr, accRepo, _ := newStoreFixture()
	mustCreateAccount(t, accRepo, "acc-1", "ACC-001", "100.00")

	tx, err := txMgr.Begin(ctx)
	if err != nil {
		t.Fatalf("begin: %v", err)
	}
	if err := tx.Rollback(ctx); err != nil {
		t.Fatalf("rollback: %v", err)
	}

	if err := accRepo.UpdateBalance(ctx, tx, "acc-1", decimal.NewFromInt(1), time.Now()); err == nil {
		t.Fatal("expected write on closed transaction to fail")
	}
}

func TestAccountRepository_DuplicateNumber(t *testing.T) {
	_, _, accRepo, _ := newStoreFixture()
	mustCreateAccount(t, accRepo, "acc-1", "ACC-001", "0.00")

	err := accRepo.Create(context.Background(), &domain.Account{
		ID:            "acc-2",
		AccountNumber: "ACC-001",
		Currency:      "USD",
		Status:        domain.AccountStatusActive,
		Balance:       decimal.Zero,
	})
	if !errors.Is(err, domain.ErrAccountExists) {
		t.Fatalf("expected ErrAccountExists, got %v", err)
	}
}

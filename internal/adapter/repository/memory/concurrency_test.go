package memory_test

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/ecofin/ledger/internal/adapter/repository/memory"
	"github.com/ecofin/ledger/internal/adapter/repository/postgres"
	"github.com/ecofin/ledger/internal/domain"
	"github.com/ecofin/ledger/internal/usecase"
)

// Concurrent deposits must serialize: no lost updates, and every recorded
// balance_after snapshot must be distinct.
func TestConcurrentDeposits(t *testing.T) {
	const workers = 50

	ctx := context.Background()
	store := memory.NewStore()
	accRepo := memory.NewAccountRepository(store)
	txnRepo := memory.NewTransactionRepository(store)

	uc := usecase.NewLedgerUseCase(
		memory.NewTxManager(store),
		accRepo,
		txnRepo,
		postgres.NewULIDGenerator(),
		postgres.NewUUIDGenerator(),
		nil,
	)

	err := accRepo.Create(ctx, &domain.Account{
		ID:            "acc-1",
		AccountNumber: "ACC-001",
		Currency:      "USD",
		Status:        domain.AccountStatusActive,
		Balance:       decimal.Zero,
	})
	if err != nil {
		t.Fatalf("create account: %v", err)
	}

	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.Deposit(ctx, usecase.DepositInput{
				AccountNumber: "ACC-001",
				Amount:        decimal.NewFromInt(1),
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			t.Fatalf("deposit failed: %v", err)
		}
	}

	account, err := accRepo.GetByNumber(ctx, "ACC-001")
	if err != nil {
		t.Fatalf("get account: %v", err)
	}
	if !account.Balance.Equal(decimal.NewFromInt(workers)) {
		t.Errorf("expected balance %d, got %s", workers, account.Balance)
	}

	txns, err := txnRepo.ListByAccount(ctx, "acc-1", usecase.TransactionFilter{Limit: workers * 2})
	if err != nil {
		t.Fatalf("list transactions: %v", err)
	}
	if len(txns) != workers {
		t.Fatalf("expected %d transactions, got %d", workers, len(txns))
	}

	seen := make(map[string]bool, workers)
	for _, txn := range txns {
		key := txn.BalanceAfter.String()
		if seen[key] {
			t.Fatalf("duplicate balance_after snapshot %s", key)
		}
		seen[key] = true
	}
}

// Concurrent transfers between the same pair of accounts in both directions
// must not deadlock and must conserve the total balance.
func TestConcurrentTransfersConserveTotal(t *testing.T) {
	const rounds = 25

	ctx := context.Background()
	store := memory.NewStore()
	accRepo := memory.NewAccountRepository(store)
	txnRepo := memory.NewTransactionRepository(store)
	transferRepo := memory.NewTransferRepository(store)

	idGen := postgres.NewULIDGenerator()
	uc := usecase.NewTransferUseCase(
		memory.NewTxManager(store),
		accRepo,
		transferRepo,
		txnRepo,
		idGen,
		postgres.NewUUIDGenerator(),
		nil,
		nil,
	)

	for _, a := range []struct{ id, number string }{
		{"acc-a", "ACC-A"},
		{"acc-b", "ACC-B"},
	} {
		err := accRepo.Create(ctx, &domain.Account{
			ID:            a.id,
			AccountNumber: a.number,
			Currency:      "USD",
			Status:        domain.AccountStatusActive,
			Balance:       decimal.NewFromInt(1000),
		})
		if err != nil {
			t.Fatalf("create account: %v", err)
		}
	}

	var wg sync.WaitGroup
	for i := 0; i < rounds; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			uc.CreateTransfer(ctx, usecase.CreateTransferInput{
				SourceAccountNumber:      "ACC-A",
				DestinationAccountNumber: "ACC-B",
				Amount:                   decimal.NewFromInt(3),
			})
		}()
		go func() {
			defer wg.Done()
			uc.CreateTransfer(ctx, usecase.CreateTransferInput{
				SourceAccountNumber:      "ACC-B",
				DestinationAccountNumber: "ACC-A",
				Amount:                   decimal.NewFromInt(2),
			})
		}()
	}
	wg.Wait()

	a, err := accRepo.GetByNumber(ctx, "ACC-A")
	if err != nil {
		t.Fatalf("get account: %v", err)
	}
	b, err := accRepo.GetByNumber(ctx, "ACC-B")
	if err != nil {
		t.Fatalf("get account: %v", err)
	}

	total := a.Balance.Add(b.Balance)
	if !total.Equal(decimal.NewFromInt(2000)) {
		t.Fatalf("total balance not conserved: %s", total)
	}
}

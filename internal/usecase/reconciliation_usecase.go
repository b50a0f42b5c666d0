package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ReconciliationUseCase verifies that replaying an account's transaction log
// from zero reproduces every balance snapshot and the recorded balance.
type ReconciliationUseCase struct {
	accountRepo     AccountRepository
	transactionRepo TransactionRepository
	ledgerRepo      LedgerRepository
}

// NewReconciliationUseCase creates a new ReconciliationUseCase.
func NewReconciliationUseCase(
	accountRepo AccountRepository,
	transactionRepo TransactionRepository,
	ledgerRepo LedgerRepository,
) *ReconciliationUseCase {
	return &ReconciliationUseCase{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		ledgerRepo:      ledgerRepo,
	}
}

// ReconciliationResult represents the outcome of replaying one account.
type ReconciliationResult struct {
	AccountNumber    string
	RecordedBalance  decimal.Decimal
	ReplayedBalance  decimal.Decimal
	Difference       decimal.Decimal
	TransactionCount int
	SnapshotMismatch *string
	IsReconciled     bool
	CheckedAt        time.Time
}

// ReplayAccount replays the full transaction log of an account in creation
// order, checking each balance_after snapshot against the running balance,
// then compares the final running balance with the recorded balance and with
// the storage-side signed sum.
func (uc *ReconciliationUseCase) ReplayAccount(ctx context.Context, accountNumber string) (*ReconciliationResult, error) {
	account, err := uc.accountRepo.GetByNumber(ctx, accountNumber)
	if err != nil {
		return nil, err
	}

	result := &ReconciliationResult{
		AccountNumber:   account.AccountNumber,
		RecordedBalance: account.Balance,
		CheckedAt:       time.Now().UTC(),
	}

	running := decimal.Zero
	offset := 0

	for {
		batch, err := uc.transactionRepo.ListByAccount(ctx, account.ID, TransactionFilter{
			Limit:  ReplayPageSize,
			Offset: offset,
		})
		if err != nil {
			return nil, err
		}
		if len(batch) == 0 {
			break
		}

		for _, txn := range batch {
			running = running.Add(txn.SignedAmount())
			if !running.Equal(txn.BalanceAfter) && result.SnapshotMismatch == nil {
				msg := fmt.Sprintf(
					"transaction %s: replayed balance %s, snapshot %s",
					txn.ReferenceNumber, running.String(), txn.BalanceAfter.String(),
				)
				result.SnapshotMismatch = &msg
			}
			result.TransactionCount++
		}

		if len(batch) < ReplayPageSize {
			break
		}
		offset += ReplayPageSize
	}

	result.ReplayedBalance = running
	result.Difference = account.Balance.Sub(running)
	result.IsReconciled = result.Difference.IsZero() && result.SnapshotMismatch == nil

	// Cross-check against the storage-side aggregate when available.
	if uc.ledgerRepo != nil {
		sum, err := uc.ledgerRepo.SumSignedAmounts(ctx, account.ID)
		if err != nil {
			return nil, err
		}
		if !sum.Equal(running) {
			msg := fmt.Sprintf("storage sum %s disagrees with replay %s", sum.String(), running.String())
			result.SnapshotMismatch = &msg
			result.IsReconciled = false
		}
	}

	return result, nil
}

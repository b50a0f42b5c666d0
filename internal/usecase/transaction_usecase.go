package usecase

import (
	"context"
	"time"

	"github.com/ecofin/ledger/internal/domain"
)

// TransactionUseCase exposes read access to the transaction log for
// reporting collaborators. It never mutates the log.
type TransactionUseCase struct {
	accountRepo     AccountRepository
	transactionRepo TransactionRepository
}

// NewTransactionUseCase creates a new TransactionUseCase.
func NewTransactionUseCase(accountRepo AccountRepository, transactionRepo TransactionRepository) *TransactionUseCase {
	return &TransactionUseCase{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
	}
}

// ListTransactionsInput represents input for listing an account's transactions.
type ListTransactionsInput struct {
	AccountNumber string
	Type          *domain.TransactionType
	From          *time.Time
	To            *time.Time
	Descending    bool
	Limit         int
	Offset        int
}

// ListTransactions lists an account's transactions ordered by creation time.
func (uc *TransactionUseCase) ListTransactions(ctx context.Context, input ListTransactionsInput) ([]*domain.Transaction, error) {
	account, err := uc.accountRepo.GetByNumber(ctx, input.AccountNumber)
	if err != nil {
		return nil, err
	}

	limit, offset := clampPage(input.Limit, input.Offset)

	return uc.transactionRepo.ListByAccount(ctx, account.ID, TransactionFilter{
		Type:       input.Type,
		From:       input.From,
		To:         input.To,
		Descending: input.Descending,
		Limit:      limit,
		Offset:     offset,
	})
}

// GetTransactionByReference retrieves a transaction by its reference number.
func (uc *TransactionUseCase) GetTransactionByReference(ctx context.Context, referenceNumber string) (*domain.Transaction, error) {
	return uc.transactionRepo.GetByReference(ctx, referenceNumber)
}

// ListTransactionsByTransfer lists the two legs recorded for a transfer.
func (uc *TransactionUseCase) ListTransactionsByTransfer(ctx context.Context, transferID string) ([]*domain.Transaction, error) {
	return uc.transactionRepo.ListByTransfer(ctx, transferID)
}

package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/ecofin/ledger/internal/domain"
	"github.com/ecofin/ledger/internal/infrastructure/metrics"
)

// TransferUseCase coordinates a two-account balance move as one unit of work:
// pending transfer record, debit leg, credit leg, completed status, and the
// two linked transaction rows all commit or roll back together.
type TransferUseCase struct {
	txManager       TxManager
	accountRepo     AccountRepository
	transferRepo    TransferRepository
	transactionRepo TransactionRepository
	idGen           IDGenerator
	refGen          ReferenceGenerator
	publisher       EventPublisher
	metrics         *metrics.Metrics
}

// NewTransferUseCase creates a new TransferUseCase.
func NewTransferUseCase(
	txManager TxManager,
	accountRepo AccountRepository,
	transferRepo TransferRepository,
	transactionRepo TransactionRepository,
	idGen IDGenerator,
	refGen ReferenceGenerator,
	publisher EventPublisher,
	m *metrics.Metrics,
) *TransferUseCase {
	return &TransferUseCase{
		txManager:       txManager,
		accountRepo:     accountRepo,
		transferRepo:    transferRepo,
		transactionRepo: transactionRepo,
		idGen:           idGen,
		refGen:          refGen,
		publisher:       publisher,
		metrics:         m,
	}
}

// CreateTransferInput represents input for creating a transfer.
type CreateTransferInput struct {
	SourceAccountNumber      string
	DestinationAccountNumber string
	Amount                   decimal.Decimal
	Notes                    string
}

// CreateTransfer moves amount from the source to the destination account.
// Validation failures happen before any state change; a persistence failure
// after the unit of work starts rolls the whole unit back and records the
// transfer as failed, never as completed.
func (uc *TransferUseCase) CreateTransfer(ctx context.Context, input CreateTransferInput) (*domain.Transfer, error) {
	// Fail fast before touching storage.
	if input.SourceAccountNumber == input.DestinationAccountNumber {
		return nil, domain.ErrSameAccount
	}
	if err := domain.ValidateAmount(input.Amount); err != nil {
		return nil, err
	}

	// Lock both accounts in a globally consistent order (deadlock prevention).
	numbers := []string{input.SourceAccountNumber, input.DestinationAccountNumber}
	sort.Strings(numbers)

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	accounts, err := uc.accountRepo.GetByNumbersForUpdate(ctx, tx, numbers)
	if err != nil {
		return nil, err
	}
	if len(accounts) != len(numbers) {
		return nil, domain.ErrAccountNotFound
	}

	var source, destination *domain.Account
	for _, a := range accounts {
		switch a.AccountNumber {
		case input.SourceAccountNumber:
			source = a
		case input.DestinationAccountNumber:
			destination = a
		}
	}
	if source == nil || destination == nil {
		return nil, domain.ErrAccountNotFound
	}

	if source.Currency != destination.Currency {
		return nil, domain.ErrCurrencyMismatch
	}
	if err := destination.ValidateMutable(); err != nil {
		return nil, err
	}
	if err := source.ValidateWithdrawal(input.Amount); err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	transfer := &domain.Transfer{
		ID:                   uc.idGen.Generate(),
		ReferenceNumber:      uc.refGen.Generate(),
		SourceAccountID:      source.ID,
		DestinationAccountID: destination.ID,
		Amount:               input.Amount,
		Status:               domain.TransferStatusPending,
		Notes:                input.Notes,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	if err := uc.transferRepo.Create(ctx, tx, transfer); err != nil {
		return nil, err
	}

	if err := uc.executeLegs(ctx, tx, transfer, source, destination, input, now); err != nil {
		tx.Rollback(ctx)
		uc.recordFailure(ctx, transfer)
		if uc.metrics != nil {
			uc.metrics.TransfersFailed.Inc()
		}
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		uc.recordFailure(ctx, transfer)
		if uc.metrics != nil {
			uc.metrics.TransfersFailed.Inc()
		}
		return nil, err
	}

	transfer.Status = domain.TransferStatusCompleted

	if uc.metrics != nil {
		uc.metrics.TransfersCompleted.Inc()
		amount, _ := transfer.Amount.Float64()
		uc.metrics.TransferAmount.Observe(amount)
	}

	uc.publish(ctx, transfer, source.Currency, now)

	return transfer, nil
}

// executeLegs runs steps 2-6 of the transfer inside the open unit of work:
// debit source, credit destination, mark completed, append both legs.
func (uc *TransferUseCase) executeLegs(
	ctx context.Context,
	tx Tx,
	transfer *domain.Transfer,
	source, destination *domain.Account,
	input CreateTransferInput,
	now time.Time,
) error {
	sourceBalance := source.ApplyWithdrawal(input.Amount)
	if err := uc.accountRepo.UpdateBalance(ctx, tx, source.ID, sourceBalance, now); err != nil {
		return err
	}

	destinationBalance := destination.ApplyDeposit(input.Amount)
	if err := uc.accountRepo.UpdateBalance(ctx, tx, destination.ID, destinationBalance, now); err != nil {
		return err
	}

	if err := uc.transferRepo.UpdateStatus(ctx, tx, transfer.ID, domain.TransferStatusCompleted, now); err != nil {
		return err
	}

	outLeg := &domain.Transaction{
		ID:              uc.idGen.Generate(),
		AccountID:       source.ID,
		Type:            domain.TransactionTypeTransferOut,
		Amount:          input.Amount,
		BalanceAfter:    sourceBalance,
		Description:     fmt.Sprintf("Transfer to account %s", destination.AccountNumber),
		TransferID:      &transfer.ID,
		ReferenceNumber: uc.refGen.Generate(),
		CreatedAt:       now,
	}
	if err := uc.transactionRepo.Create(ctx, tx, outLeg); err != nil {
		return err
	}

	inLeg := &domain.Transaction{
		ID:              uc.idGen.Generate(),
		AccountID:       destination.ID,
		Type:            domain.TransactionTypeTransferIn,
		Amount:          input.Amount,
		BalanceAfter:    destinationBalance,
		Description:     fmt.Sprintf("Transfer from account %s", source.AccountNumber),
		TransferID:      &transfer.ID,
		ReferenceNumber: uc.refGen.Generate(),
		CreatedAt:       now,
	}
	if err := uc.transactionRepo.Create(ctx, tx, inLeg); err != nil {
		return err
	}

	source.Balance = sourceBalance
	source.Version++
	destination.Balance = destinationBalance
	destination.Version++

	return nil
}

// recordFailure writes a failed transfer record in its own unit of work after
// the original one was rolled back, so the attempt stays auditable without
// leaving the accounts inconsistent. Best effort only.
func (uc *TransferUseCase) recordFailure(ctx context.Context, transfer *domain.Transfer) {
	transfer.Status = domain.TransferStatusFailed
	transfer.UpdatedAt = time.Now().UTC()

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		log.Warn().Err(err).Str("transfer_id", transfer.ID).Msg("failed to record failed transfer")
		return
	}
	defer tx.Rollback(ctx)

	if err := uc.transferRepo.Create(ctx, tx, transfer); err != nil {
		log.Warn().Err(err).Str("transfer_id", transfer.ID).Msg("failed to record failed transfer")
		return
	}

	if err := tx.Commit(ctx); err != nil {
		log.Warn().Err(err).Str("transfer_id", transfer.ID).Msg("failed to record failed transfer")
	}
}

// GetTransfer retrieves a transfer by ID.
func (uc *TransferUseCase) GetTransfer(ctx context.Context, id string) (*domain.Transfer, error) {
	return uc.transferRepo.GetByID(ctx, id)
}

// ListTransfersByAccountInput represents input for listing transfers.
type ListTransfersByAccountInput struct {
	AccountNumber string
	Limit         int
	Offset        int
}

// ListTransfersByAccount lists transfers touching an account as either leg.
func (uc *TransferUseCase) ListTransfersByAccount(ctx context.Context, input ListTransfersByAccountInput) ([]*domain.Transfer, error) {
	account, err := uc.accountRepo.GetByNumber(ctx, input.AccountNumber)
	if err != nil {
		return nil, err
	}

	limit, offset := clampPage(input.Limit, input.Offset)
	return uc.transferRepo.ListByAccount(ctx, account.ID, limit, offset)
}

func (uc *TransferUseCase) publish(ctx context.Context, transfer *domain.Transfer, currency string, completedAt time.Time) {
	if uc.publisher == nil {
		return
	}

	event := domain.TransferCompletedEvent{
		TransferID:           transfer.ID,
		ReferenceNumber:      transfer.ReferenceNumber,
		SourceAccountID:      transfer.SourceAccountID,
		DestinationAccountID: transfer.DestinationAccountID,
		Amount:               transfer.Amount.StringFixed(2),
		Currency:             currency,
		CompletedAt:          completedAt.Format(time.RFC3339),
	}

	if err := uc.publisher.Publish(ctx, domain.EventTypeTransferCompleted, event); err != nil {
		log.Warn().Err(err).Str("transfer_id", transfer.ID).Msg("failed to publish event")
	}
}

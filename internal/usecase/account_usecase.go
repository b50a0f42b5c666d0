package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/ecofin/ledger/internal/domain"
	"github.com/ecofin/ledger/internal/infrastructure/metrics"
)

// AccountUseCase handles account lifecycle logic. Identity generation is the
// caller's concern: the account number arrives pre-validated and unique.
type AccountUseCase struct {
	accountRepo AccountRepository
	idGen       IDGenerator
	publisher   EventPublisher
	metrics     *metrics.Metrics
}

// NewAccountUseCase creates a new AccountUseCase.
func NewAccountUseCase(accountRepo AccountRepository, idGen IDGenerator, publisher EventPublisher, m *metrics.Metrics) *AccountUseCase {
	return &AccountUseCase{
		accountRepo: accountRepo,
		idGen:       idGen,
		publisher:   publisher,
		metrics:     m,
	}
}

// CreateAccountInput represents input for creating an account.
type CreateAccountInput struct {
	AccountNumber string
	OwnerID       string
	Currency      string
	Nickname      string
}

// CreateAccount creates a new account with zero balance and active status.
func (uc *AccountUseCase) CreateAccount(ctx context.Context, input CreateAccountInput) (*domain.Account, error) {
	if err := domain.ValidateAccountNumber(input.AccountNumber); err != nil {
		return nil, err
	}
	if err := domain.ValidateCurrency(input.Currency); err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	account := &domain.Account{
		ID:            uc.idGen.Generate(),
		AccountNumber: strings.TrimSpace(input.AccountNumber),
		OwnerID:       input.OwnerID,
		Nickname:      input.Nickname,
		Currency:      strings.ToUpper(strings.TrimSpace(input.Currency)),
		Status:        domain.AccountStatusActive,
		Balance:       decimal.Zero,
		Version:       0,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := uc.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.AccountsCreated.Inc()
	}

	uc.publish(ctx, domain.EventTypeAccountCreated, domain.AccountCreatedEvent{
		AccountNumber: account.AccountNumber,
		OwnerID:       account.OwnerID,
		Currency:      account.Currency,
	})

	return account, nil
}

// GetAccount retrieves an account by number.
func (uc *AccountUseCase) GetAccount(ctx context.Context, number string) (*domain.Account, error) {
	return uc.accountRepo.GetByNumber(ctx, number)
}

// ListAccountsInput represents input for listing an owner's accounts.
type ListAccountsInput struct {
	OwnerID string
	Limit   int
	Offset  int
}

// ListAccounts lists an owner's accounts with pagination.
func (uc *AccountUseCase) ListAccounts(ctx context.Context, input ListAccountsInput) ([]*domain.Account, error) {
	limit, offset := clampPage(input.Limit, input.Offset)
	return uc.accountRepo.ListByOwner(ctx, input.OwnerID, limit, offset)
}

// UpdateStatus changes an account's status. Closure and freezing go through
// here; the account row itself is never deleted.
func (uc *AccountUseCase) UpdateStatus(ctx context.Context, number string, status domain.AccountStatus) (*domain.Account, error) {
	switch status {
	case domain.AccountStatusActive, domain.AccountStatusInactive,
		domain.AccountStatusFrozen, domain.AccountStatusClosed:
	default:
		return nil, domain.ErrInvalidStatus
	}

	account, err := uc.accountRepo.GetByNumber(ctx, number)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if err := uc.accountRepo.UpdateStatus(ctx, number, status, now); err != nil {
		return nil, err
	}

	account.Status = status
	account.UpdatedAt = now

	return account, nil
}

func (uc *AccountUseCase) publish(ctx context.Context, eventType string, payload any) {
	if uc.publisher == nil {
		return
	}
	if err := uc.publisher.Publish(ctx, eventType, payload); err != nil {
		log.Warn().Err(err).Str("event_type", eventType).Msg("failed to publish event")
	}
}

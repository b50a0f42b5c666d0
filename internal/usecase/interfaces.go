package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ecofin/ledger/internal/domain"
)

// AccountRepository defines data access for accounts.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	GetByNumber(ctx context.Context, number string) (*domain.Account, error)
	GetByNumberForUpdate(ctx context.Context, tx Tx, number string) (*domain.Account, error)
	// GetByNumbersForUpdate locks all requested accounts in a globally
	// consistent order before returning them.
	GetByNumbersForUpdate(ctx context.Context, tx Tx, numbers []string) ([]*domain.Account, error)
	UpdateBalance(ctx context.Context, tx Tx, id string, balance decimal.Decimal, updatedAt time.Time) error
	UpdateStatus(ctx context.Context, number string, status domain.AccountStatus, updatedAt time.Time) error
	ListByOwner(ctx context.Context, ownerID string, limit, offset int) ([]*domain.Account, error)
}

// TransactionFilter narrows transaction log reads.
type TransactionFilter struct {
	Type       *domain.TransactionType
	From       *time.Time
	To         *time.Time
	Descending bool
	Limit      int
	Offset     int
}

// TransactionRepository defines data access for the append-only transaction log.
// Rows are never updated or deleted once written.
type TransactionRepository interface {
	Create(ctx context.Context, tx Tx, txn *domain.Transaction) error
	GetByReference(ctx context.Context, referenceNumber string) (*domain.Transaction, error)
	ListByAccount(ctx context.Context, accountID string, filter TransactionFilter) ([]*domain.Transaction, error)
	ListByTransfer(ctx context.Context, transferID string) ([]*domain.Transaction, error)
	CountByAccount(ctx context.Context, accountID string) (int64, error)
}

// TransferRepository defines data access for transfers.
type TransferRepository interface {
	Create(ctx context.Context, tx Tx, transfer *domain.Transfer) error
	UpdateStatus(ctx context.Context, tx Tx, id string, status domain.TransferStatus, updatedAt time.Time) error
	GetByID(ctx context.Context, id string) (*domain.Transfer, error)
	ListByAccount(ctx context.Context, accountID string, limit, offset int) ([]*domain.Transfer, error)
}

// LedgerRepository defines ledger-wide aggregate reads.
type LedgerRepository interface {
	SumSignedAmounts(ctx context.Context, accountID string) (decimal.Decimal, error)
}

// Tx represents a storage transaction: the atomic unit that groups balance
// mutations, transaction appends and transfer status updates.
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TxManager handles storage transaction lifecycle.
type TxManager interface {
	Begin(ctx context.Context) (Tx, error)
}

// IDGenerator generates unique row IDs.
type IDGenerator interface {
	Generate() string
}

// ReferenceGenerator generates opaque reference numbers for audit records.
type ReferenceGenerator interface {
	Generate() string
}

// EventPublisher publishes ledger events after the owning unit of work has
// committed. Failures are logged, never propagated into the operation result.
type EventPublisher interface {
	Publish(ctx context.Context, eventType string, payload any) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}

package memory

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ecofin/ledger/internal/domain"
	"github.com/ecofin/ledger/internal/usecase"
)

// AccountRepository implements usecase.AccountRepository in memory.
type AccountRepository struct {
	store *Store
}

// NewAccountRepository creates a new AccountRepository.
func NewAccountRepository(store *Store) *AccountRepository {
	return &AccountRepository{store: store}
}

// Create creates a new account.
func (r *AccountRepository) Create(ctx context.Context, account *domain.Account) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.numberToID[account.AccountNumber]; ok {
		return domain.ErrAccountExists
	}

	r.store.accounts[account.ID] = *account
	r.store.numberToID[account.AccountNumber] = account.ID
	return nil
}

// GetByNumber retrieves an account by account number.
func (r *AccountRepository) GetByNumber(ctx context.Context, number string) (*domain.Account, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	return r.store.lookupByNumber(number)
}

// GetByNumberForUpdate retrieves an account inside an open unit of work.
// The store mutex held by the transaction is the lock.
func (r *AccountRepository) GetByNumberForUpdate(ctx context.Context, tx usecase.Tx, number string) (*domain.Account, error) {
	if _, err := held(r.store, tx); err != nil {
		return nil, err
	}
	return r.store.lookupByNumber(number)
}

// GetByNumbersForUpdate retrieves multiple accounts inside an open unit of
// work. Missing numbers are skipped, matching the SQL implementation.
func (r *AccountRepository) GetByNumbersForUpdate(ctx context.Context, tx usecase.Tx, numbers []string) ([]*domain.Account, error) {
	if _, err := held(r.store, tx); err != nil {
		return nil, err
	}

	accounts := make([]*domain.Account, 0, len(numbers))
	for _, number := range numbers {
		account, err := r.store.lookupByNumber(number)
		if err != nil {
			continue
		}
		accounts = append(accounts, account)
	}
	return accounts, nil
}

// UpdateBalance updates the balance of an account and bumps its version.
func (r *AccountRepository) UpdateBalance(ctx context.Context, tx usecase.Tx, id string, balance decimal.Decimal, updatedAt time.Time) error {
	if _, err := held(r.store, tx); err != nil {
		return err
	}

	account, ok := r.store.accounts[id]
	if !ok {
		return domain.ErrAccountNotFound
	}

	account.Balance = balance
	account.Version++
	account.UpdatedAt = updatedAt
	r.store.accounts[id] = account
	return nil
}

// UpdateStatus changes the status of an account.
func (r *AccountRepository) UpdateStatus(ctx context.Context, number string, status domain.AccountStatus, updatedAt time.Time) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	id, ok := r.store.numberToID[number]
	if !ok {
		return domain.ErrAccountNotFound
	}

	account := r.store.accounts[id]
	account.Status = status
	account.UpdatedAt = updatedAt
	r.store.accounts[id] = account
	return nil
}

// ListByOwner lists accounts owned by ownerID, ordered by account number.
func (r *AccountRepository) ListByOwner(ctx context.Context, ownerID string, limit, offset int) ([]*domain.Account, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var accounts []*domain.Account
	for _, account := range r.store.accounts {
		if account.OwnerID == ownerID {
			cp := account
			accounts = append(accounts, &cp)
		}
	}

	sort.Slice(accounts, func(i, j int) bool {
		return accounts[i].AccountNumber < accounts[j].AccountNumber
	})

	return page(accounts, limit, offset), nil
}

func (s *Store) lookupByNumber(number string) (*domain.Account, error) {
	id, ok := s.numberToID[number]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	account := s.accounts[id]
	return &account, nil
}

func page[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return nil
	}
	items = items[offset:]
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items
}

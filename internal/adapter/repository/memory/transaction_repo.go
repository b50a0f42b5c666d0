package memory

import (
	"context"
	"sort"

	"github.com/ecofin/ledger/internal/domain"
	"github.com/ecofin/ledger/internal/usecase"
)

// TransactionRepository implements usecase.TransactionRepository in memory.
// The backing slice is append-only; rows are never updated in place.
type TransactionRepository struct {
	store *Store
}

// NewTransactionRepository creates a new TransactionRepository.
func NewTransactionRepository(store *Store) *TransactionRepository {
	return &TransactionRepository{store: store}
}

// Create appends a transaction inside an open unit of work.
func (r *TransactionRepository) Create(ctx context.Context, tx usecase.Tx, txn *domain.Transaction) error {
	if _, err := held(r.store, tx); err != nil {
		return err
	}

	r.store.transactions = append(r.store.transactions, *txn)
	return nil
}

// GetByReference retrieves a transaction by reference number.
func (r *TransactionRepository) GetByReference(ctx context.Context, referenceNumber string) (*domain.Transaction, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i := range r.store.transactions {
		if r.store.transactions[i].ReferenceNumber == referenceNumber {
			cp := r.store.transactions[i]
			return &cp, nil
		}
	}
	return nil, domain.ErrTransactionNotFound
}

// ListByAccount lists an account's transactions, filtered and ordered by
// creation time. Append order breaks ties, so the listing is stable.
func (r *TransactionRepository) ListByAccount(ctx context.Context, accountID string, filter usecase.TransactionFilter) ([]*domain.Transaction, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var result []*domain.Transaction
	for i := range r.store.transactions {
		txn := r.store.transactions[i]
		if txn.AccountID != accountID {
			continue
		}
		if filter.Type != nil && txn.Type != *filter.Type {
			continue
		}
		if filter.From != nil && txn.CreatedAt.Before(*filter.From) {
			continue
		}
		if filter.To != nil && txn.CreatedAt.After(*filter.To) {
			continue
		}
		cp := txn
		result = append(result, &cp)
	}

	if filter.Descending {
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		})
	}

	return page(result, filter.Limit, filter.Offset), nil
}

// ListByTransfer lists the transactions linked to a transfer.
func (r *TransactionRepository) ListByTransfer(ctx context.Context, transferID string) ([]*domain.Transaction, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var result []*domain.Transaction
	for i := range r.store.transactions {
		txn := r.store.transactions[i]
		if txn.TransferID != nil && *txn.TransferID == transferID {
			cp := txn
			result = append(result, &cp)
		}
	}
	return result, nil
}

// CountByAccount counts an account's transactions.
func (r *TransactionRepository) CountByAccount(ctx context.Context, accountID string) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var count int64
	for i := range r.store.transactions {
		if r.store.transactions[i].AccountID == accountID {
			count++
		}
	}
	return count, nil
}

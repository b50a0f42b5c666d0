package memory

import (
	"context"

	"github.com/shopspring/decimal"
)

// LedgerRepository implements usecase.LedgerRepository in memory.
type LedgerRepository struct {
	store *Store
}

// NewLedgerRepository creates a new LedgerRepository.
func NewLedgerRepository(store *Store) *LedgerRepository {
	return &LedgerRepository{store: store}
}

// SumSignedAmounts sums credits minus debits across an account's full
// transaction history.
func (r *LedgerRepository) SumSignedAmounts(ctx context.Context, accountID string) (decimal.Decimal, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	sum := decimal.Zero
	for i := range r.store.transactions {
		if r.store.transactions[i].AccountID != accountID {
			continue
		}
		sum = sum.Add(r.store.transactions[i].SignedAmount())
	}
	return sum, nil
}

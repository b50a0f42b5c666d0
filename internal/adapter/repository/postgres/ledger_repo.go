package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/ecofin/ledger/internal/infrastructure/postgres/generated"
)

// LedgerRepository implements usecase.LedgerRepository using SQL-side
// aggregation, so reconciliation can cross-check the Go-side replay against
// the database's own arithmetic.
type LedgerRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewLedgerRepository creates a new LedgerRepository.
func NewLedgerRepository(pool *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// SumSignedAmounts sums credits minus debits across an account's full
// transaction history.
func (r *LedgerRepository) SumSignedAmounts(ctx context.Context, accountID string) (decimal.Decimal, error) {
	total, err := r.queries.SumSignedAmountsByAccount(ctx, accountID)
	if err != nil {
		return decimal.Zero, err
	}

	return numericToDecimal(total), nil
}

package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ecofin/ledger/internal/domain"
	"github.com/ecofin/ledger/internal/infrastructure/postgres/generated"
	"github.com/ecofin/ledger/internal/usecase"
)

// TransactionRepository implements usecase.TransactionRepository. The
// transactions table is append-only; no update or delete queries exist for
// it.
type TransactionRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewTransactionRepository creates a new TransactionRepository.
func NewTransactionRepository(pool *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// Create appends a transaction record inside an open unit of work.
func (r *TransactionRepository) Create(ctx context.Context, tx usecase.Tx, txn *domain.Transaction) error {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	_, err := queries.CreateTransaction(ctx, generated.CreateTransactionParams{
		ID:              txn.ID,
		AccountID:       txn.AccountID,
		Type:            string(txn.Type),
		Amount:          decimalToNumeric(txn.Amount),
		BalanceAfter:    decimalToNumeric(txn.BalanceAfter),
		Description:     txn.Description,
		TransferID:      stringPtrToPgText(txn.TransferID),
		ReferenceNumber: txn.ReferenceNumber,
		CreatedAt:       timeToPgTimestamptz(txn.CreatedAt),
	})

	return err
}

// GetByReference retrieves a transaction by its reference number.
func (r *TransactionRepository) GetByReference(ctx context.Context, referenceNumber string) (*domain.Transaction, error) {
	row, err := r.queries.GetTransactionByReference(ctx, referenceNumber)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTransactionNotFound
		}

		return nil, err
	}

	return rowToTransaction(row), nil
}

// ListByAccount lists an account's transactions with optional type and time
// filters.
func (r *TransactionRepository) ListByAccount(ctx context.Context, accountID string, filter usecase.TransactionFilter) ([]*domain.Transaction, error) {
	typeFilter := ""
	if filter.Type != nil {
		typeFilter = string(*filter.Type)
	}

	var (
		rows []generated.Transaction
		err  error
	)

	if filter.Descending {
		rows, err = r.queries.ListTransactionsByAccountDesc(ctx, generated.ListTransactionsByAccountDescParams{
			AccountID: accountID,
			Type:      typeFilter,
			FromTime:  timePtrToPgTimestamptz(filter.From),
			ToTime:    timePtrToPgTimestamptz(filter.To),
			Limit:     int32(filter.Limit),
			Offset:    int32(filter.Offset),
		})
	} else {
		rows, err = r.queries.ListTransactionsByAccountAsc(ctx, generated.ListTransactionsByAccountAscParams{
			AccountID: accountID,
			Type:      typeFilter,
			FromTime:  timePtrToPgTimestamptz(filter.From),
			ToTime:    timePtrToPgTimestamptz(filter.To),
			Limit:     int32(filter.Limit),
			Offset:    int32(filter.Offset),
		})
	}
	if err != nil {
		return nil, err
	}

	transactions := make([]*domain.Transaction, 0, len(rows))
	for _, row := range rows {
		transactions = append(transactions, rowToTransaction(row))
	}

	return transactions, nil
}

// ListByTransfer lists both legs of a transfer in creation order.
func (r *TransactionRepository) ListByTransfer(ctx context.Context, transferID string) ([]*domain.Transaction, error) {
	rows, err := r.queries.ListTransactionsByTransfer(ctx, pgtype.Text{String: transferID, Valid: true})
	if err != nil {
		return nil, err
	}

	transactions := make([]*domain.Transaction, 0, len(rows))
	for _, row := range rows {
		transactions = append(transactions, rowToTransaction(row))
	}

	return transactions, nil
}

// CountByAccount counts an account's transactions.
func (r *TransactionRepository) CountByAccount(ctx context.Context, accountID string) (int64, error) {
	return r.queries.CountTransactionsByAccount(ctx, accountID)
}

func rowToTransaction(row generated.Transaction) *domain.Transaction {
	return &domain.Transaction{
		ID:              row.ID,
		AccountID:       row.AccountID,
		Type:            domain.TransactionType(row.Type),
		Amount:          numericToDecimal(row.Amount),
		BalanceAfter:    numericToDecimal(row.BalanceAfter),
		Description:     row.Description,
		TransferID:      pgTextToStringPtr(row.TransferID),
		ReferenceNumber: row.ReferenceNumber,
		CreatedAt:       row.CreatedAt.Time,
	}
}

func stringPtrToPgText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}

func pgTextToStringPtr(t pgtype.Text) *string {
	if !t.Valid {
		return nil
	}
	s := t.String
	return &s
}

package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ecofin/ledger/internal/domain"
	"github.com/ecofin/ledger/internal/infrastructure/postgres/generated"
	"github.com/ecofin/ledger/internal/usecase"
)

// TransferRepository implements usecase.TransferRepository.
type TransferRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewTransferRepository creates a new TransferRepository.
func NewTransferRepository(pool *pgxpool.Pool) *TransferRepository {
	return &TransferRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// Create creates a transfer record inside an open unit of work.
func (r *TransferRepository) Create(ctx context.Context, tx usecase.Tx, transfer *domain.Transfer) error {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	_, err := queries.CreateTransfer(ctx, generated.CreateTransferParams{
		ID:                   transfer.ID,
		ReferenceNumber:      transfer.ReferenceNumber,
		SourceAccountID:      transfer.SourceAccountID,
		DestinationAccountID: transfer.DestinationAccountID,
		Amount:               decimalToNumeric(transfer.Amount),
		Status:               string(transfer.Status),
		Notes:                transfer.Notes,
		CreatedAt:            timeToPgTimestamptz(transfer.CreatedAt),
		UpdatedAt:            timeToPgTimestamptz(transfer.UpdatedAt),
	})

	return err
}

// UpdateStatus transitions a transfer's lifecycle status.
func (r *TransferRepository) UpdateStatus(ctx context.Context, tx usecase.Tx, id string, status domain.TransferStatus, updatedAt time.Time) error {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	affected, err := queries.UpdateTransferStatus(ctx, generated.UpdateTransferStatusParams{
		ID:        id,
		Status:    string(status),
		UpdatedAt: timeToPgTimestamptz(updatedAt),
	})
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrTransferNotFound
	}

	return nil
}

// GetByID retrieves a transfer by ID.
func (r *TransferRepository) GetByID(ctx context.Context, id string) (*domain.Transfer, error) {
	row, err := r.queries.GetTransferByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTransferNotFound
		}

		return nil, err
	}

	return rowToTransfer(row), nil
}

// ListByAccount lists transfers touching an account as either leg, newest
// first.
func (r *TransferRepository) ListByAccount(ctx context.Context, accountID string, limit, offset int) ([]*domain.Transfer, error) {
	rows, err := r.queries.ListTransfersByAccount(ctx, generated.ListTransfersByAccountParams{
		SourceAccountID: accountID,
		Limit:           int32(limit),
		Offset:          int32(offset),
	})
	if err != nil {
		return nil, err
	}

	transfers := make([]*domain.Transfer, 0, len(rows))
	for _, row := range rows {
		transfers = append(transfers, rowToTransfer(row))
	}

	return transfers, nil
}

func rowToTransfer(row generated.Transfer) *domain.Transfer {
	return &domain.Transfer{
		ID:                   row.ID,
		ReferenceNumber:      row.ReferenceNumber,
		SourceAccountID:      row.SourceAccountID,
		DestinationAccountID: row.DestinationAccountID,
		Amount:               numericToDecimal(row.Amount),
		Status:               domain.TransferStatus(row.Status),
		Notes:                row.Notes,
		CreatedAt:            row.CreatedAt.Time,
		UpdatedAt:            row.UpdatedAt.Time,
	}
}

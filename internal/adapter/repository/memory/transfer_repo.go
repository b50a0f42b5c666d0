package memory

import (
	"context"
	"sort"
	"time"

	"github.com/ecofin/ledger/internal/domain"
	"github.com/ecofin/ledger/internal/usecase"
)

// TransferRepository implements usecase.TransferRepository in memory.
type TransferRepository struct {
	store *Store
}

// NewTransferRepository creates a new TransferRepository.
func NewTransferRepository(store *Store) *TransferRepository {
	return &TransferRepository{store: store}
}

// Create creates a transfer record inside an open unit of work.
func (r *TransferRepository) Create(ctx context.Context, tx usecase.Tx, transfer *domain.Transfer) error {
	if _, err := held(r.store, tx); err != nil {
		return err
	}

	r.store.transfers[transfer.ID] = *transfer
	return nil
}

// UpdateStatus transitions a transfer's lifecycle status.
func (r *TransferRepository) UpdateStatus(ctx context.Context, tx usecase.Tx, id string, status domain.TransferStatus, updatedAt time.Time) error {
	if _, err := held(r.store, tx); err != nil {
		return err
	}

	transfer, ok := r.store.transfers[id]
	if !ok {
		return domain.ErrTransferNotFound
	}

	transfer.Status = status
	transfer.UpdatedAt = updatedAt
	r.store.transfers[id] = transfer
	return nil
}

// GetByID retrieves a transfer by ID.
func (r *TransferRepository) GetByID(ctx context.Context, id string) (*domain.Transfer, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	transfer, ok := r.store.transfers[id]
	if !ok {
		return nil, domain.ErrTransferNotFound
	}
	return &transfer, nil
}

// ListByAccount lists transfers touching an account as either leg, newest
// first.
func (r *TransferRepository) ListByAccount(ctx context.Context, accountID string, limit, offset int) ([]*domain.Transfer, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var transfers []*domain.Transfer
	for _, transfer := range r.store.transfers {
		if transfer.SourceAccountID == accountID || transfer.DestinationAccountID == accountID {
			cp := transfer
			transfers = append(transfers, &cp)
		}
	}

	sort.Slice(transfers, func(i, j int) bool {
		if transfers[i].CreatedAt.Equal(transfers[j].CreatedAt) {
			return transfers[i].ID > transfers[j].ID
		}
		return transfers[i].CreatedAt.After(transfers[j].CreatedAt)
	})

	return page(transfers, limit, offset), nil
}

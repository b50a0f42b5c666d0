package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransferStatus represents the lifecycle state of a transfer.
type TransferStatus string

const (
	TransferStatusPending   TransferStatus = "pending"
	TransferStatusCompleted TransferStatus = "completed"
	TransferStatusFailed    TransferStatus = "failed"
	TransferStatusCancelled TransferStatus = "cancelled"
)

// Transfer represents a money movement between two accounts.
// A transfer reaches completed status only when both legs were durably
// applied inside the same unit of work.
type Transfer struct {
	ID                   string
	ReferenceNumber      string
	SourceAccountID      string
	DestinationAccountID string
	Amount               decimal.Decimal
	Status               TransferStatus
	Notes                string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// Validate validates a transfer request before any state change.
func (t *Transfer) Validate() error {
	if t.SourceAccountID == t.DestinationAccountID {
		return ErrSameAccount
	}
	return ValidateAmount(t.Amount)
}

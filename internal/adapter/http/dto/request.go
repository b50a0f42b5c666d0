package dto

import (
	"github.com/shopspring/decimal"

	"github.com/ecofin/ledger/internal/usecase"
)

// CreateAccountRequest represents a request to create an account.
type CreateAccountRequest struct {
	AccountNumber string `json:"account_number"`
	OwnerID       string `json:"owner_id"`
	Currency      string `json:"currency"`
	Nickname      string `json:"nickname"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateAccountRequest) ToUseCaseInput() usecase.CreateAccountInput {
	return usecase.CreateAccountInput{
		AccountNumber: r.AccountNumber,
		OwnerID:       r.OwnerID,
		Currency:      r.Currency,
		Nickname:      r.Nickname,
	}
}

// UpdateAccountStatusRequest represents a request to change account status.
type UpdateAccountStatusRequest struct {
	Status string `json:"status"`
}

// DepositRequest represents a deposit into an account.
type DepositRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
}

// WithdrawRequest represents a withdrawal from an account.
type WithdrawRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
}

// PostInterestRequest represents an interest posting.
type PostInterestRequest struct {
	Rate decimal.Decimal `json:"rate"`
}

// ChargeFeeRequest represents a fee charge.
type ChargeFeeRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
}

// CreateTransferRequest represents a request to create a transfer.
type CreateTransferRequest struct {
	SourceAccountNumber      string          `json:"source_account_number"`
	DestinationAccountNumber string          `json:"destination_account_number"`
	Amount                   decimal.Decimal `json:"amount"`
	Notes                    string          `json:"notes,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateTransferRequest) ToUseCaseInput() usecase.CreateTransferInput {
	return usecase.CreateTransferInput{
		SourceAccountNumber:      r.SourceAccountNumber,
		DestinationAccountNumber: r.DestinationAccountNumber,
		Amount:                   r.Amount,
		Notes:                    r.Notes,
	}
}

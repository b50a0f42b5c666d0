package domain

// Event types published after the corresponding unit of work commits.
// Consumers get read access to ledger facts after the fact; publishing is
// best-effort and never part of the atomic unit.
const (
	EventTypeAccountCreated    = "account.created"
	EventTypeTransferCompleted = "transfer.completed"
)

// AccountCreatedEvent payload
type AccountCreatedEvent struct {
	AccountNumber string `json:"account_number"`
	OwnerID       string `json:"owner_id"`
	Currency      string `json:"currency"`
}

// TransferCompletedEvent payload
type TransferCompletedEvent struct {
	TransferID           string `json:"transfer_id"`
	ReferenceNumber      string `json:"reference_number"`
	SourceAccountID      string `json:"source_account_id"`
	DestinationAccountID string `json:"destination_account_id"`
	Amount               string `json:"amount"`
	Currency             string `json:"currency"`
	CompletedAt          string `json:"completed_at"`
}

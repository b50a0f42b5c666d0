package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ecofin/ledger/internal/adapter/http/dto"
	"github.com/ecofin/ledger/internal/domain"
	"github.com/ecofin/ledger/internal/usecase"
)

// TransactionService defines the behavior needed by TransactionHandler.
type TransactionService interface {
	ListTransactions(ctx context.Context, input usecase.ListTransactionsInput) ([]*domain.Transaction, error)
	GetTransactionByReference(ctx context.Context, referenceNumber string) (*domain.Transaction, error)
	ListTransactionsByTransfer(ctx context.Context, transferID string) ([]*domain.Transaction, error)
}

// TransactionHandler handles transaction log reads.
type TransactionHandler struct {
	transactionUC TransactionService
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(transactionUC TransactionService) *TransactionHandler {
	return &TransactionHandler{transactionUC: transactionUC}
}

// ListByAccount lists an account's transactions with optional filters:
// type, from, to (RFC 3339), order=asc|desc, limit, offset.
func (h *TransactionHandler) ListByAccount(w http.ResponseWriter, r *http.Request) {
	number := chi.URLParam(r, "number")

	input := usecase.ListTransactionsInput{
		AccountNumber: number,
		From:          parseTimeQuery(r, "from"),
		To:            parseTimeQuery(r, "to"),
		Descending:    r.URL.Query().Get("order") != "asc",
		Limit:         parseIntQuery(r, "limit", usecase.DefaultPageSize),
		Offset:        parseIntQuery(r, "offset", 0),
	}

	if t := r.URL.Query().Get("type"); t != "" {
		typ := domain.TransactionType(t)
		input.Type = &typ
	}

	transactions, err := h.transactionUC.ListTransactions(r.Context(), input)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list transactions", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListTransactionsResponse{
		Transactions: dto.TransactionsFromDomain(transactions),
		Total:        int64(len(transactions)),
	})
}

// GetByReference retrieves a transaction by its reference number.
func (h *TransactionHandler) GetByReference(w http.ResponseWriter, r *http.Request) {
	reference := chi.URLParam(r, "reference")
	if reference == "" {
		writeError(w, http.StatusBadRequest, "missing reference number", "")
		return
	}

	txn, err := h.transactionUC.GetTransactionByReference(r.Context(), reference)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get transaction", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.TransactionFromDomain(txn))
}

// ListByTransfer lists both legs of a transfer.
func (h *TransactionHandler) ListByTransfer(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing transfer ID", "")
		return
	}

	transactions, err := h.transactionUC.ListTransactionsByTransfer(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list transfer transactions", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.TransactionsFromDomain(transactions))
}

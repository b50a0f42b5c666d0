package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/ecofin/ledger/internal/adapter/http/dto"
	"github.com/ecofin/ledger/internal/domain"
	"github.com/ecofin/ledger/internal/usecase"
)

// LedgerService defines the behavior needed by LedgerHandler.
type LedgerService interface {
	Deposit(ctx context.Context, input usecase.DepositInput) (*domain.Transaction, error)
	Withdraw(ctx context.Context, input usecase.WithdrawInput) (*domain.Transaction, error)
	PostInterest(ctx context.Context, accountNumber string, rate decimal.Decimal) (*domain.Transaction, error)
	ChargeFee(ctx context.Context, accountNumber string, amount decimal.Decimal, description string) (*domain.Transaction, error)
}

// LedgerHandler handles single-account ledger operations.
type LedgerHandler struct {
	ledgerUC LedgerService
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(ledgerUC LedgerService) *LedgerHandler {
	return &LedgerHandler{ledgerUC: ledgerUC}
}

// Deposit credits an account.
func (h *LedgerHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	number := chi.URLParam(r, "number")

	var req dto.DepositRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	txn, err := h.ledgerUC.Deposit(r.Context(), usecase.DepositInput{
		AccountNumber: number,
		Amount:        req.Amount,
		Description:   req.Description,
	})
	if err != nil {
		writeError(w, mapDomainError(err), "failed to deposit", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.TransactionFromDomain(txn))
}

// Withdraw debits an account.
func (h *LedgerHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	number := chi.URLParam(r, "number")

	var req dto.WithdrawRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	txn, err := h.ledgerUC.Withdraw(r.Context(), usecase.WithdrawInput{
		AccountNumber: number,
		Amount:        req.Amount,
		Description:   req.Description,
	})
	if err != nil {
		writeError(w, mapDomainError(err), "failed to withdraw", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.TransactionFromDomain(txn))
}

// PostInterest credits interest computed from the current balance.
func (h *LedgerHandler) PostInterest(w http.ResponseWriter, r *http.Request) {
	number := chi.URLParam(r, "number")

	var req dto.PostInterestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	txn, err := h.ledgerUC.PostInterest(r.Context(), number, req.Rate)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to post interest", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.TransactionFromDomain(txn))
}

// ChargeFee debits a fee from an account.
func (h *LedgerHandler) ChargeFee(w http.ResponseWriter, r *http.Request) {
	number := chi.URLParam(r, "number")

	var req dto.ChargeFeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	txn, err := h.ledgerUC.ChargeFee(r.Context(), number, req.Amount, req.Description)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to charge fee", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.TransactionFromDomain(txn))
}

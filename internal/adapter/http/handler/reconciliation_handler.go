package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ecofin/ledger/internal/adapter/http/dto"
	"github.com/ecofin/ledger/internal/usecase"
)

// ReconciliationService defines the behavior needed by ReconciliationHandler.
type ReconciliationService interface {
	ReplayAccount(ctx context.Context, accountNumber string) (*usecase.ReconciliationResult, error)
}

// ReconciliationHandler handles reconciliation requests.
type ReconciliationHandler struct {
	reconciliationUC ReconciliationService
}

// NewReconciliationHandler creates a new ReconciliationHandler.
func NewReconciliationHandler(reconciliationUC ReconciliationService) *ReconciliationHandler {
	return &ReconciliationHandler{reconciliationUC: reconciliationUC}
}

// ReplayAccount replays an account's transaction log and reports whether the
// recorded balance matches. A clean account returns 200; a discrepancy
// returns 409 with the same body so callers can alert on status alone.
func (h *ReconciliationHandler) ReplayAccount(w http.ResponseWriter, r *http.Request) {
	number := chi.URLParam(r, "number")

	result, err := h.reconciliationUC.ReplayAccount(r.Context(), number)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to replay account", err.Error())
		return
	}

	status := http.StatusOK
	if !result.IsReconciled {
		status = http.StatusConflict
	}

	writeJSON(w, status, dto.ReconciliationFromResult(result))
}

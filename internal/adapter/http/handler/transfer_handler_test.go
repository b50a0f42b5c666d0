package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/ecofin/ledger/internal/adapter/http/dto"
	"github.com/ecofin/ledger/internal/domain"
	"github.com/ecofin/ledger/internal/usecase"
)

type stubTransferService struct {
	createFunc func(ctx context.Context, input usecase.CreateTransferInput) (*domain.Transfer, error)
	getFunc    func(ctx context.Context, id string) (*domain.Transfer, error)
	listFunc   func(ctx context.Context, input usecase.ListTransfersByAccountInput) ([]*domain.Transfer, error)
}

func (s *stubTransferService) CreateTransfer(ctx context.Context, input usecase.CreateTransferInput) (*domain.Transfer, error) {
	return s.createFunc(ctx, input)
}

func (s *stubTransferService) GetTransfer(ctx context.Context, id string) (*domain.Transfer, error) {
	return s.getFunc(ctx, id)
}

func (s *stubTransferService) ListTransfersByAccount(ctx context.Context, input usecase.ListTransfersByAccountInput) ([]*domain.Transfer, error) {
	return s.listFunc(ctx, input)
}

func transferRouter(svc TransferService) http.Handler {
	h := NewTransferHandler(svc)
	r := chi.NewRouter()
	r.Post("/transfers", h.Create)
	r.Get("/transfers/{id}", h.Get)
	r.Get("/accounts/{number}/transfers", h.ListByAccount)
	return r
}

func testTransfer(status domain.TransferStatus) *domain.Transfer {
	return &domain.Transfer{
		ID:                   "tr-1",
		ReferenceNumber:      "ref-tr-1",
		SourceAccountID:      "acc-a",
		DestinationAccountID: "acc-b",
		Amount:               decimal.NewFromInt(50),
		Status:               status,
	}
}

func TestTransferHandler_Create(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		serviceErr error
		wantStatus int
	}{
		{
			name:       "created",
			body:       `{"source_account_number":"ACC-A","destination_account_number":"ACC-B","amount":"50"}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "malformed body",
			body:       `{"amount":`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "same account",
			body:       `{"source_account_number":"ACC-A","destination_account_number":"ACC-A","amount":"50"}`,
			serviceErr: domain.ErrSameAccount,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "currency mismatch",
			body:       `{"source_account_number":"ACC-A","destination_account_number":"ACC-B","amount":"50"}`,
			serviceErr: domain.ErrCurrencyMismatch,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "insufficient funds",
			body:       `{"source_account_number":"ACC-A","destination_account_number":"ACC-B","amount":"50000"}`,
			serviceErr: domain.ErrInsufficientFunds,
			wantStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubTransferService{
				createFunc: func(ctx context.Context, input usecase.CreateTransferInput) (*domain.Transfer, error) {
					if tt.serviceErr != nil {
						return nil, tt.serviceErr
					}
					return testTransfer(domain.TransferStatusCompleted), nil
				},
			}

			req := httptest.NewRequest(http.MethodPost, "/transfers", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			transferRouter(svc).ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.wantStatus, rec.Code, rec.Body)
			}

			if tt.wantStatus == http.StatusCreated {
				var resp dto.TransferResponse
				if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
					t.Fatalf("decode response: %v", err)
				}
				if resp.Status != "completed" {
					t.Errorf("expected completed status, got %s", resp.Status)
				}
			}
		})
	}
}

func TestTransferHandler_Get(t *testing.T) {
	svc := &stubTransferService{
		getFunc: func(ctx context.Context, id string) (*domain.Transfer, error) {
			if id != "tr-1" {
				return nil, domain.ErrTransferNotFound
			}
			return testTransfer(domain.TransferStatusCompleted), nil
		},
	}
	router := transferRouter(svc)

	t.Run("found", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/transfers/tr-1", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/transfers/tr-404", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}

func TestTransferHandler_ListByAccount(t *testing.T) {
	svc := &stubTransferService{
		listFunc: func(ctx context.Context, input usecase.ListTransfersByAccountInput) ([]*domain.Transfer, error) {
			if input.AccountNumber != "ACC-A" {
				return nil, domain.ErrAccountNotFound
			}
			return []*domain.Transfer{testTransfer(domain.TransferStatusCompleted)}, nil
		},
	}
	router := transferRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/accounts/ACC-A/transfers", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []*dto.TransferResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp) != 1 {
		t.Errorf("expected 1 transfer, got %d", len(resp))
	}
}

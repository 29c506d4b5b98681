package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/GregMSThompson/bank-registry/internal/errs"
	"github.com/GregMSThompson/bank-registry/internal/models"
	"github.com/GregMSThompson/bank-registry/internal/response"
)

type BankService interface {
	GetBanks(ctx context.Context) ([]*models.Bank, error)
	GetBank(ctx context.Context, accountNumber string) (*models.Bank, error)
	AddBank(ctx context.Context, bank *models.Bank) (*models.Bank, error)
	UpdateBank(ctx context.Context, bank *models.Bank) (*models.Bank, error)
	DeleteBank(ctx context.Context, accountNumber string) error
}

type bankHandlers struct {
	ResponseHandler response.ResponseHandler
	BankSvc         BankService
}

func NewBankHandlers(deps *Deps) *bankHandlers {
	return &bankHandlers{
		ResponseHandler: deps.ResponseHandler,
		BankSvc:         deps.BankSvc,
	}
}

func (h *bankHandlers) BankRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.GetBanks)
	r.Post("/", h.AddBank)
	r.Patch("/", h.UpdateBank) // account number travels in the body
	r.Get("/{accountNumber}", h.GetBank)
	r.Delete("/{accountNumber}", h.DeleteBank)
	return r
}

func (h *bankHandlers) GetBanks(w http.ResponseWriter, r *http.Request) {
	banks, err := h.BankSvc.GetBanks(r.Context())
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, banks)
}

func (h *bankHandlers) GetBank(w http.ResponseWriter, r *http.Request) {
	accountNumber := chi.URLParam(r, "accountNumber")
	bank, err := h.BankSvc.GetBank(r.Context(), accountNumber)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, bank)
}

func (h *bankHandlers) AddBank(w http.ResponseWriter, r *http.Request) {
	bank, err := decodeBank(r)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	created, err := h.BankSvc.AddBank(r.Context(), bank)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusCreated, created)
}

func (h *bankHandlers) UpdateBank(w http.ResponseWriter, r *http.Request) {
	bank, err := decodeBank(r)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	updated, err := h.BankSvc.UpdateBank(r.Context(), bank)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, updated)
}

func (h *bankHandlers) DeleteBank(w http.ResponseWriter, r *http.Request) {
	accountNumber := chi.URLParam(r, "accountNumber")
	if err := h.BankSvc.DeleteBank(r.Context(), accountNumber); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusNoContent, nil)
}

func decodeBank(r *http.Request) (*models.Bank, error) {
	var bank models.Bank
	if err := json.NewDecoder(r.Body).Decode(&bank); err != nil {
		return nil, errs.NewValidationError("request body must be a bank JSON object")
	}
	if strings.TrimSpace(bank.AccountNumber) == "" {
		return nil, errs.NewValidationError("accountNumber is required")
	}
	return &bank, nil
}

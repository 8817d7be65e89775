package handler

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/srgjo27/fleet_ledger/internal/core/domain"
	"github.com/srgjo27/fleet_ledger/internal/core/services"
)

// ledgerErrorResponse tells the client the balance already moved, so the
// payment is not retried.
type ledgerErrorResponse struct {
	Error   string          `json:"error"`
	Company *domain.Company `json:"company"`
}

type CompanyHandler struct {
	svc *services.CompanyService
	log *zap.Logger
}

func NewCompanyHandler(svc *services.CompanyService, log *zap.Logger) *CompanyHandler {
	return &CompanyHandler{svc: svc, log: log}
}

func (h *CompanyHandler) CreateCompany(w http.ResponseWriter, r *http.Request) {
	var req services.CreateCompanyRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	company, err := h.svc.CreateCompany(r.Context(), req)
	if err != nil {
		writeError(w, h.log, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, company)
}

func (h *CompanyHandler) GetCompany(w http.ResponseWriter, r *http.Request) {
	companyID, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	company, err := h.svc.GetCompany(r.Context(), companyID)
	if err != nil {
		writeError(w, h.log, r, err)
		return
	}

	writeJSON(w, http.StatusOK, company)
}

func (h *CompanyHandler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	companyID, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	var req services.RecordPaymentRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.svc.RecordPayment(r.Context(), companyID, req)
	if errors.Is(err, domain.ErrLedgerNotRecorded) && resp != nil {
		h.log.Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		writeJSON(w, http.StatusInternalServerError, ledgerErrorResponse{
			Error:   domain.ErrLedgerNotRecorded.Error(),
			Company: resp.Company,
		})
		return
	}
	if err != nil {
		writeError(w, h.log, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

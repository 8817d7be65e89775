package handler

import (
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/srgjo27/fleet_ledger/internal/core/domain"
	"github.com/srgjo27/fleet_ledger/internal/core/services"
)

// FinanceHandler exposes the read-only finance views.
type FinanceHandler struct {
	driverPayments *services.DriverPaymentService
	companies      *services.CompanyService
	log            *zap.Logger
}

func NewFinanceHandler(driverPayments *services.DriverPaymentService, companies *services.CompanyService, log *zap.Logger) *FinanceHandler {
	return &FinanceHandler{driverPayments: driverPayments, companies: companies, log: log}
}

type paymentListResponse struct {
	Payments []domain.Payment `json:"payments"`
}

func (h *FinanceHandler) DriverStatement(w http.ResponseWriter, r *http.Request) {
	driverID, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	stmt, err := h.driverPayments.DriverStatement(r.Context(), driverID)
	if err != nil {
		writeError(w, h.log, r, err)
		return
	}

	writeJSON(w, http.StatusOK, stmt)
}

func (h *FinanceHandler) ListPayments(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	entityID, err := uuid.Parse(q.Get("entityId"))
	if err != nil {
		writeError(w, h.log, r, domain.NewValidationError("entityId", "must be a valid UUID"))
		return
	}

	payments, err := h.companies.ListPayments(r.Context(), domain.EntityType(q.Get("entityType")), entityID)
	if err != nil {
		writeError(w, h.log, r, err)
		return
	}

	writeJSON(w, http.StatusOK, paymentListResponse{Payments: payments})
}

package handler

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/srgjo27/fleet_ledger/internal/core/domain"
	"github.com/srgjo27/fleet_ledger/internal/core/services"
)

type DriverPaymentHandler struct {
	svc *services.DriverPaymentService
	log *zap.Logger
}

func NewDriverPaymentHandler(svc *services.DriverPaymentService, log *zap.Logger) *DriverPaymentHandler {
	return &DriverPaymentHandler{svc: svc, log: log}
}

type driverPaymentListResponse struct {
	DriverPayments []domain.DriverPayment `json:"driverPayments"`
}

func (h *DriverPaymentHandler) AddDriverPayment(w http.ResponseWriter, r *http.Request) {
	bookingID, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	var req services.AddDriverPaymentRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	payment, err := h.svc.AddDriverPayment(r.Context(), bookingID, req)
	if err != nil {
		writeError(w, h.log, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, payment)
}

func (h *DriverPaymentHandler) ListDriverPayments(w http.ResponseWriter, r *http.Request) {
	bookingID, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	payments, err := h.svc.ListForBooking(r.Context(), bookingID)
	if err != nil {
		writeError(w, h.log, r, err)
		return
	}

	writeJSON(w, http.StatusOK, driverPaymentListResponse{DriverPayments: payments})
}

func (h *DriverPaymentHandler) UpdateDriverPayment(w http.ResponseWriter, r *http.Request) {
	bookingID, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}
	paymentID, ok := uuidParam(w, r, "paymentId")
	if !ok {
		return
	}

	var req services.UpdateDriverPaymentRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	payment, err := h.svc.UpdateDriverPayment(r.Context(), bookingID, paymentID, req)
	if err != nil {
		writeError(w, h.log, r, err)
		return
	}

	writeJSON(w, http.StatusOK, payment)
}

func (h *DriverPaymentHandler) DeleteDriverPayment(w http.ResponseWriter, r *http.Request) {
	bookingID, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}
	paymentID, ok := uuidParam(w, r, "paymentId")
	if !ok {
		return
	}

	if err := h.svc.DeleteDriverPayment(r.Context(), bookingID, paymentID); err != nil {
		writeError(w, h.log, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

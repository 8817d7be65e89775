package handler

import (
	"net/http"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/srgjo27/fleet_ledger/internal/core/domain"
	"github.com/srgjo27/fleet_ledger/internal/core/services"
)

type BookingHandler struct {
	svc *services.BookingService
	log *zap.Logger
}

func NewBookingHandler(svc *services.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{svc: svc, log: log}
}

type setBilledRequest struct {
	Billed bool `json:"billed"`
}

type expenseListResponse struct {
	Expenses []domain.Expense `json:"expenses"`
	Total    decimal.Decimal  `json:"total"`
}

type bookingPaymentListResponse struct {
	Payments []domain.BookingPayment `json:"payments"`
	Total    decimal.Decimal         `json:"total"`
}

func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req services.CreateBookingRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	booking, err := h.svc.CreateBooking(r.Context(), req)
	if err != nil {
		writeError(w, h.log, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, services.Summarize(booking))
}

func (h *BookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	bookingID, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	booking, err := h.svc.GetBooking(r.Context(), bookingID)
	if err != nil {
		writeError(w, h.log, r, err)
		return
	}

	writeJSON(w, http.StatusOK, services.Summarize(booking))
}

func (h *BookingHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	bookingID, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	var req services.UpdateStatusRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	booking, err := h.svc.UpdateStatus(r.Context(), bookingID, req)
	if err != nil {
		writeError(w, h.log, r, err)
		return
	}

	writeJSON(w, http.StatusOK, services.Summarize(booking))
}

func (h *BookingHandler) SetBilled(w http.ResponseWriter, r *http.Request) {
	bookingID, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	var req setBilledRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	booking, err := h.svc.SetBilled(r.Context(), bookingID, req.Billed)
	if err != nil {
		writeError(w, h.log, r, err)
		return
	}

	writeJSON(w, http.StatusOK, services.Summarize(booking))
}

func (h *BookingHandler) AddExpense(w http.ResponseWriter, r *http.Request) {
	bookingID, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	var req services.AddExpenseRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	booking, err := h.svc.AddExpense(r.Context(), bookingID, req)
	if err != nil {
		writeError(w, h.log, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, services.Summarize(booking))
}

func (h *BookingHandler) ListExpenses(w http.ResponseWriter, r *http.Request) {
	bookingID, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	expenses, total, err := h.svc.ListExpenses(r.Context(), bookingID)
	if err != nil {
		writeError(w, h.log, r, err)
		return
	}

	writeJSON(w, http.StatusOK, expenseListResponse{Expenses: expenses, Total: total})
}

func (h *BookingHandler) AddPayment(w http.ResponseWriter, r *http.Request) {
	bookingID, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	var req services.AddPaymentRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	booking, err := h.svc.AddPayment(r.Context(), bookingID, req)
	if err != nil {
		writeError(w, h.log, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, services.Summarize(booking))
}

func (h *BookingHandler) ListPayments(w http.ResponseWriter, r *http.Request) {
	bookingID, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	payments, total, err := h.svc.ListPayments(r.Context(), bookingID)
	if err != nil {
		writeError(w, h.log, r, err)
		return
	}

	writeJSON(w, http.StatusOK, bookingPaymentListResponse{Payments: payments, Total: total})
}

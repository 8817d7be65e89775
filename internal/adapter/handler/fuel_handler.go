package handler

import (
	"net/http"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/srgjo27/fleet_ledger/internal/core/domain"
	"github.com/srgjo27/fleet_ledger/internal/core/services"
)

type FuelHandler struct {
	svc *services.FuelService
	log *zap.Logger
}

func NewFuelHandler(svc *services.FuelService, log *zap.Logger) *FuelHandler {
	return &FuelHandler{svc: svc, log: log}
}

type fuelEntryListResponse struct {
	FuelEntries  []domain.FuelEntry `json:"fuelEntries"`
	FinanceTotal *decimal.Decimal   `json:"financeTotal,omitempty"`
}

func (h *FuelHandler) CreateFuelEntry(w http.ResponseWriter, r *http.Request) {
	var req services.CreateFuelEntryRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	entry, err := h.svc.CreateFuelEntry(r.Context(), req)
	if err != nil {
		writeError(w, h.log, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, entry)
}

func (h *FuelHandler) UpdateFuelEntry(w http.ResponseWriter, r *http.Request) {
	entryID, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	var req services.UpdateFuelEntryRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	entry, err := h.svc.UpdateFuelEntry(r.Context(), entryID, req)
	if err != nil {
		writeError(w, h.log, r, err)
		return
	}

	writeJSON(w, http.StatusOK, entry)
}

func (h *FuelHandler) GetFuelEntry(w http.ResponseWriter, r *http.Request) {
	entryID, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	entry, err := h.svc.GetFuelEntry(r.Context(), entryID)
	if err != nil {
		writeError(w, h.log, r, err)
		return
	}

	writeJSON(w, http.StatusOK, entry)
}

func (h *FuelHandler) ListForVehicle(w http.ResponseWriter, r *http.Request) {
	vehicleID, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	entries, err := h.svc.ListForVehicle(r.Context(), vehicleID)
	if err != nil {
		writeError(w, h.log, r, err)
		return
	}

	writeJSON(w, http.StatusOK, fuelEntryListResponse{FuelEntries: entries})
}

func (h *FuelHandler) ListForBooking(w http.ResponseWriter, r *http.Request) {
	bookingID, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	entries, total, err := h.svc.ListForBooking(r.Context(), bookingID)
	if err != nil {
		writeError(w, h.log, r, err)
		return
	}

	writeJSON(w, http.StatusOK, fuelEntryListResponse{FuelEntries: entries, FinanceTotal: &total})
}

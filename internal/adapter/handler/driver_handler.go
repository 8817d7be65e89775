package handler

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/srgjo27/fleet_ledger/internal/core/services"
)

// DriverHandler serves the driver registry and the advance tracker.
type DriverHandler struct {
	svc *services.AdvanceService
	log *zap.Logger
}

func NewDriverHandler(svc *services.AdvanceService, log *zap.Logger) *DriverHandler {
	return &DriverHandler{svc: svc, log: log}
}

func (h *DriverHandler) CreateDriver(w http.ResponseWriter, r *http.Request) {
	var req services.CreateDriverRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	driver, err := h.svc.CreateDriver(r.Context(), req)
	if err != nil {
		writeError(w, h.log, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, driver)
}

func (h *DriverHandler) GetDriver(w http.ResponseWriter, r *http.Request) {
	driverID, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	driver, err := h.svc.GetDriver(r.Context(), driverID)
	if err != nil {
		writeError(w, h.log, r, err)
		return
	}

	writeJSON(w, http.StatusOK, driver)
}

func (h *DriverHandler) AddAdvance(w http.ResponseWriter, r *http.Request) {
	driverID, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	var req services.AddAdvanceRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	driver, err := h.svc.AddAdvance(r.Context(), driverID, req)
	if err != nil {
		writeError(w, h.log, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, driver)
}

func (h *DriverHandler) SettleAdvance(w http.ResponseWriter, r *http.Request) {
	driverID, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	var req services.SettleAdvanceRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	driver, err := h.svc.SettleAdvance(r.Context(), driverID, req)
	if err != nil {
		writeError(w, h.log, r, err)
		return
	}

	writeJSON(w, http.StatusOK, driver)
}

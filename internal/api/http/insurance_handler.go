package http

import (
	"encoding/json"
	"net/http"
	"time"

	"wegorent-backend/internal/service"
)

type InsuranceHandler struct {
	insuranceSvc service.InsuranceService
}

func NewInsuranceHandler(insuranceSvc service.InsuranceService) *InsuranceHandler {
	return &InsuranceHandler{insuranceSvc: insuranceSvc}
}

func (h *InsuranceHandler) List(w http.ResponseWriter, r *http.Request) {
	statuses, err := h.insuranceSvc.ListStatuses(r.Context(), partnerIDFrom(r))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, statuses)
}

type insuranceWindowRequest struct {
	InsuranceStart *time.Time `json:"insurance_start"`
	InsuranceEnd   *time.Time `json:"insurance_end"`
}

func (h *InsuranceHandler) UpdateWindow(w http.ResponseWriter, r *http.Request) {
	var req insuranceWindowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	if err := h.insuranceSvc.UpdateWindow(r.Context(), partnerIDFrom(r), pathID(r), req.InsuranceStart, req.InsuranceEnd); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

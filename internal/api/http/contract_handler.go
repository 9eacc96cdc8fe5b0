package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"wegorent-backend/internal/contract"
	"wegorent-backend/internal/domain"
	"wegorent-backend/internal/service"
)

type ContractHandler struct {
	contractSvc service.ContractService
}

func NewContractHandler(contractSvc service.ContractService) *ContractHandler {
	return &ContractHandler{contractSvc: contractSvc}
}

// contractRequest is the wire form of a contract draft. Price and tax values
// stay strings so the lenient coercion rules apply on the server, matching
// the dashboard's live recompute.
type contractRequest struct {
	ClientID     int32                        `json:"client_id"`
	Client       domain.ClientSnapshot        `json:"client"`
	VehicleID    int32                        `json:"vehicle_id"`
	SecondDriver *domain.SecondDriverSnapshot `json:"second_driver,omitempty"`

	StartDateTime time.Time `json:"start_date_time"`
	EndDateTime   time.Time `json:"end_date_time"`
	StartLocation string    `json:"start_location"`
	EndLocation   string    `json:"end_location"`

	PricePerDay string                `json:"price_per_day"`
	Status      domain.ContractStatus `json:"status"`
}

func (req contractRequest) draft() contract.Draft {
	return contract.Draft{
		ClientID:      req.ClientID,
		Client:        req.Client,
		VehicleID:     req.VehicleID,
		SecondDriver:  req.SecondDriver,
		StartDateTime: req.StartDateTime,
		EndDateTime:   req.EndDateTime,
		StartLocation: req.StartLocation,
		EndLocation:   req.EndLocation,
		PricePerDay:   req.PricePerDay,
		Status:        req.Status,
	}
}

func (h *ContractHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req contractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	c, err := h.contractSvc.CreateContract(r.Context(), partnerIDFrom(r), req.draft())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, c)
}

func (h *ContractHandler) Get(w http.ResponseWriter, r *http.Request) {
	c, err := h.contractSvc.GetContract(r.Context(), pathID(r), partnerIDFrom(r))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, c)
}

type contractListResponse struct {
	Contracts []domain.Contract `json:"contracts"`
	Total     int32             `json:"total"`
}

func (h *ContractHandler) List(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("page_size"))

	contracts, total, err := h.contractSvc.ListContracts(r.Context(), partnerIDFrom(r), status, int32(page), int32(pageSize))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, contractListResponse{Contracts: contracts, Total: total})
}

func (h *ContractHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req contractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	c, err := h.contractSvc.UpdateContract(r.Context(), pathID(r), partnerIDFrom(r), req.draft())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, c)
}

type statusRequest struct {
	Status string `json:"status"`
}

func (h *ContractHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	if err := h.contractSvc.UpdateContractStatus(r.Context(), pathID(r), partnerIDFrom(r), req.Status); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": req.Status})
}

func (h *ContractHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.contractSvc.DeleteContract(r.Context(), pathID(r), partnerIDFrom(r)); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

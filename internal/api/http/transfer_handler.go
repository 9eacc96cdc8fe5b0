package http

import (
	"encoding/json"
	"net/http"

	"wegorent-backend/internal/domain"
	"wegorent-backend/internal/service"
)

type TransferHandler struct {
	transferSvc service.TransferService
}

func NewTransferHandler(transferSvc service.TransferService) *TransferHandler {
	return &TransferHandler{transferSvc: transferSvc}
}

func (h *TransferHandler) CreateVehicle(w http.ResponseWriter, r *http.Request) {
	var vehicle domain.TransferVehicle
	if err := json.NewDecoder(r.Body).Decode(&vehicle); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	vehicle.PartnerID = partnerIDFrom(r)

	if err := h.transferSvc.CreateVehicle(r.Context(), &vehicle); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, vehicle)
}

func (h *TransferHandler) ListVehicles(w http.ResponseWriter, r *http.Request) {
	vehicles, err := h.transferSvc.ListVehicles(r.Context(), partnerIDFrom(r))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, vehicles)
}

func (h *TransferHandler) UpdateVehicle(w http.ResponseWriter, r *http.Request) {
	var vehicle domain.TransferVehicle
	if err := json.NewDecoder(r.Body).Decode(&vehicle); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	vehicle.ID = pathID(r)
	vehicle.PartnerID = partnerIDFrom(r)

	if err := h.transferSvc.UpdateVehicle(r.Context(), &vehicle); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, vehicle)
}

func (h *TransferHandler) DeleteVehicle(w http.ResponseWriter, r *http.Request) {
	if err := h.transferSvc.DeleteVehicle(r.Context(), pathID(r), partnerIDFrom(r)); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type quoteRequest struct {
	VehicleID int32           `json:"vehicle_id"`
	Pickup    string          `json:"pickup"`
	Dropoff   string          `json:"dropoff"`
	TripType  domain.TripType `json:"trip_type"`
}

type fareResponse struct {
	Price float64 `json:"price"`
}

// Quote prices a route without creating a booking. The endpoint is public:
// the booking widget quotes fares before the visitor has any account.
func (h *TransferHandler) Quote(w http.ResponseWriter, r *http.Request) {
	var req quoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if req.TripType != domain.TripTypeRoundtrip {
		req.TripType = domain.TripTypeOneWay
	}

	fare, err := h.transferSvc.QuoteFare(r.Context(), req.VehicleID, req.Pickup, req.Dropoff, req.TripType)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, fareResponse{Price: fare})
}

func (h *TransferHandler) Book(w http.ResponseWriter, r *http.Request) {
	var booking domain.TransferBooking
	if err := json.NewDecoder(r.Body).Decode(&booking); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	if err := h.transferSvc.BookTransfer(r.Context(), &booking); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, booking)
}

func (h *TransferHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.transferSvc.ListBookings(r.Context(), partnerIDFrom(r))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, bookings)
}

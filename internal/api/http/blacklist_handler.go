package http

import (
	"encoding/json"
	"net/http"

	"wegorent-backend/internal/domain"
	"wegorent-backend/internal/service"
)

type BlacklistHandler struct {
	blacklistSvc service.BlacklistService
}

func NewBlacklistHandler(blacklistSvc service.BlacklistService) *BlacklistHandler {
	return &BlacklistHandler{blacklistSvc: blacklistSvc}
}

func (h *BlacklistHandler) Create(w http.ResponseWriter, r *http.Request) {
	var entry domain.BlacklistEntry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	entry.PartnerID = partnerIDFrom(r)

	if err := h.blacklistSvc.AddEntry(r.Context(), &entry); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, entry)
}

func (h *BlacklistHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.blacklistSvc.ListEntries(r.Context(), partnerIDFrom(r))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, entries)
}

type blacklistCheckResponse struct {
	Blacklisted bool                   `json:"blacklisted"`
	Entry       *domain.BlacklistEntry `json:"entry,omitempty"`
}

// Check screens a person's papers ahead of the contract form, so the
// dashboard can warn the operator before anything is filled in.
func (h *BlacklistHandler) Check(w http.ResponseWriter, r *http.Request) {
	cin := r.URL.Query().Get("cin")
	passport := r.URL.Query().Get("passport")

	entry, err := h.blacklistSvc.CheckPerson(r.Context(), partnerIDFrom(r), cin, passport)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, blacklistCheckResponse{Blacklisted: entry != nil, Entry: entry})
}

func (h *BlacklistHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.blacklistSvc.RemoveEntry(r.Context(), pathID(r), partnerIDFrom(r)); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

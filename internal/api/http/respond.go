package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"wegorent-backend/internal/domain"
	"wegorent-backend/internal/logger"
	"wegorent-backend/internal/security"
	"wegorent-backend/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			logger.Error("failed to encode response", "error", err)
		}
	}
}

// respondError maps domain errors onto HTTP status codes. Anything
// unrecognized is a 500 with a generic body; the detail goes to the log only.
func respondError(w http.ResponseWriter, err error) {
	var mf *domain.MissingFieldError
	var nf *domain.NotFoundError

	switch {
	case errors.As(err, &mf):
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: mf.Error()})
	case errors.As(err, &nf):
		respondJSON(w, http.StatusNotFound, errorResponse{Error: nf.Error()})
	case errors.Is(err, domain.ErrBlacklisted):
		respondJSON(w, http.StatusForbidden, errorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, security.ErrInvalidToken),
		errors.Is(err, security.ErrExpiredToken),
		errors.Is(err, security.ErrWrongTokenType),
		errors.Is(err, domain.ErrUnauthorized):
		respondJSON(w, http.StatusUnauthorized, errorResponse{Error: err.Error()})
	default:
		logger.Error("request failed", "error", err)
		respondJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}

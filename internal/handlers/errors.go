package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"kindergarden/internal/game"
	"kindergarden/internal/repository"
	"kindergarden/internal/service"
	"kindergarden/internal/validation"
)

// errorResponse is the JSON body for every non-2xx API response
type errorResponse struct {
	Error string `json:"error"`
}

// writeJSON serializes a response body with the proper content type
func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("failed to encode response")
	}
}

// respondError writes a JSON error with an explicit status
func respondError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// respondServiceError maps domain errors onto HTTP statuses. Anything
// unrecognized is a 500 with the detail kept out of the response body.
func respondServiceError(w http.ResponseWriter, err error) {
	var verr validation.ValidationError
	switch {
	case errors.As(err, &verr):
		respondError(w, http.StatusBadRequest, verr.Error())
	case errors.Is(err, repository.ErrPlayerNotFound):
		respondError(w, http.StatusNotFound, "player not found")
	case errors.Is(err, game.ErrNoSession):
		respondError(w, http.StatusConflict, "no active session")
	case errors.Is(err, game.ErrSessionComplete):
		respondError(w, http.StatusConflict, "session already complete")
	case errors.Is(err, game.ErrActivityUnavailable):
		respondError(w, http.StatusConflict, "no content available for this activity")
	case errors.Is(err, game.ErrMemorySession), errors.Is(err, game.ErrNotMemorySession):
		respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, game.ErrUnknownCard):
		respondError(w, http.StatusBadRequest, "unknown card")
	case errors.Is(err, service.ErrBadCredentials):
		respondError(w, http.StatusUnauthorized, "invalid credentials")
	default:
		logrus.WithError(err).Error("request failed")
		respondError(w, http.StatusInternalServerError, "internal server error")
	}
}

// decodeJSON reads a request body into dst, rejecting unknown fields
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return validation.ValidationError{Field: "body", Message: "invalid JSON payload"}
	}
	return nil
}

package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"kindergarden/internal/models"
	"kindergarden/internal/repository"
	"kindergarden/internal/service"
)

// SyncHandler exposes the device-sync gateway on a single endpoint, keyed by
// method and query parameters the way the hosted gateway is. Devices treat it
// as advisory: a failed sync never blocks local play, so errors here still
// return a well-formed JSON body.
type SyncHandler struct {
	sync *service.SyncService
}

// NewSyncHandler creates a new sync handler
func NewSyncHandler(sync *service.SyncService) *SyncHandler {
	return &SyncHandler{sync: sync}
}

// Upsert applies one inbound user record.
// POST /sync
func (h *SyncHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	var user models.SyncUser
	// lenient decode: older clients send extra fields
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	stored, err := h.sync.Upsert(user)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"user":    stored,
	})
}

// Get serves the read side of the gateway, dispatched on ?action=.
// GET /sync?action=getAllUsers | GET /sync?action=health
func (h *SyncHandler) Get(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Query().Get("action") {
	case "getAllUsers":
		users, err := h.sync.GetAllUsers()
		if err != nil {
			respondServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"users":   users,
			"count":   len(users),
		})
	case "health":
		count, err := h.sync.Count()
		if err != nil {
			logrus.WithError(err).Error("health check failed")
			writeJSON(w, http.StatusServiceUnavailable, map[string]any{
				"status": "unhealthy",
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"status":    "ok",
			"userCount": count,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	default:
		respondError(w, http.StatusBadRequest, "unknown action")
	}
}

// Delete removes one synced user.
// DELETE /sync?userId=12345
func (h *SyncHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		respondError(w, http.StatusBadRequest, "userId is required")
		return
	}

	if err := h.sync.Delete(userID); err != nil {
		if err == repository.ErrPlayerNotFound {
			respondError(w, http.StatusNotFound, "User not found")
			return
		}
		respondServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"deleted": userID,
	})
}

package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"

	"kindergarden/internal/security"
	"kindergarden/internal/service"
)

var errFetchUserInfo = errors.New("failed to fetch Google user info")

// AdminHandler serves the parent/teacher panel API
type AdminHandler struct {
	admin    *service.AdminService
	progress *service.ProgressService
	reports  *service.ReportService
	mw       *Middleware
	oauth    *oauth2.Config // nil disables Google sign-in
}

// NewAdminHandler creates a new admin handler. oauth may be nil when Google
// sign-in is not configured.
func NewAdminHandler(admin *service.AdminService, progress *service.ProgressService,
	reports *service.ReportService, mw *Middleware, oauth *oauth2.Config) *AdminHandler {
	return &AdminHandler{admin: admin, progress: progress, reports: reports, mw: mw, oauth: oauth}
}

// Login checks the panel password and sets the session cookie.
// POST /admin/login {"password": "..."}
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Password string `json:"password"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondServiceError(w, err)
		return
	}

	token, err := h.admin.Authenticate(req.Password)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	h.issueSession(w, r, token)
}

// Logout clears the admin session cookie.
// POST /admin/logout
func (h *AdminHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, security.CreateDeleteCookie(r, adminCookieName))
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

// issueSession sets the session cookie and returns the CSRF token the client
// must send with mutating panel requests.
func (h *AdminHandler) issueSession(w http.ResponseWriter, r *http.Request, token string) {
	csrfToken, err := h.mw.CSRFToken(token)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	expires := time.Now().Add(h.admin.TokenTTL())
	http.SetCookie(w, security.CreateSessionCookie(r, adminCookieName, token, expires))
	writeJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"csrfToken": csrfToken,
		"expiresAt": expires.UTC().Format(time.RFC3339),
	})
}

// ListPlayers returns the full roster with per-player aggregates.
// GET /admin/players
func (h *AdminHandler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	withStats, err := h.admin.ListPlayers()
	if err != nil {
		respondServiceError(w, err)
		return
	}

	players := make([]map[string]any, 0, len(withStats))
	for _, ps := range withStats {
		view := toPlayerView(&ps.Player)
		players = append(players, map[string]any{
			"player": view,
			"stats": map[string]any{
				"sessions":          ps.Stats.TotalSessions,
				"questionsAnswered": ps.Stats.QuestionsAnswered,
				"correctAnswers":    ps.Stats.CorrectAnswers,
				"accuracy":          ps.Stats.Accuracy,
				"activitiesPlayed":  ps.Stats.ActivitiesPlayed,
			},
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"players": players})
}

// Overview returns the roster-level aggregate.
// GET /admin/overview
func (h *AdminHandler) Overview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.admin.Aggregate()
	if err != nil {
		respondServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, overview)
}

// DeletePlayer removes one profile and its history.
// DELETE /admin/players/{id}
func (h *AdminHandler) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	id, err := parsePlayerID(r)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if err := h.admin.DeletePlayer(id); err != nil {
		respondServiceError(w, err)
		return
	}
	logrus.WithField("player_id", id).Info("player deleted by admin")
	w.WriteHeader(http.StatusNoContent)
}

// Export streams the roster in the requested format.
// GET /admin/export?format=json | csv
func (h *AdminHandler) Export(w http.ResponseWriter, r *http.Request) {
	stamp := time.Now().UTC().Format("2006-01-02")
	switch r.URL.Query().Get("format") {
	case "csv":
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="garden-%s.csv"`, stamp))
		if err := h.admin.ExportCSV(w); err != nil {
			logrus.WithError(err).Error("csv export failed")
		}
	case "json", "":
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="garden-%s.json"`, stamp))
		if err := h.admin.ExportJSON(w); err != nil {
			logrus.WithError(err).Error("json export failed")
		}
	default:
		respondError(w, http.StatusBadRequest, "unknown export format")
	}
}

// SendReport emails one child's progress summary to a parent.
// POST /admin/players/{id}/report {"email": "parent@example.com"}
func (h *AdminHandler) SendReport(w http.ResponseWriter, r *http.Request) {
	if !h.reports.IsEnabled() {
		respondError(w, http.StatusServiceUnavailable, "progress reports are not configured")
		return
	}

	id, err := parsePlayerID(r)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	var req struct {
		Email string `json:"email"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondServiceError(w, err)
		return
	}
	if req.Email == "" {
		respondError(w, http.StatusBadRequest, "email is required")
		return
	}

	player, err := h.progress.Get(id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	stats, err := h.progress.Stats(id)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	if err := h.reports.SendProgressReport(r.Context(), req.Email, player, stats); err != nil {
		respondServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

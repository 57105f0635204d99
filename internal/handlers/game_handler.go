package handlers

import (
	"net/http"
	"strconv"
	"time"

	"kindergarden/internal/difficulty"
	"kindergarden/internal/models"
	"kindergarden/internal/service"
	"kindergarden/internal/validation"
)

// GameHandler serves the player-facing API: profiles, activity sessions,
// answers, and memory flips.
type GameHandler struct {
	progress *service.ProgressService
	games    *service.GameService
}

// NewGameHandler creates a new game handler
func NewGameHandler(progress *service.ProgressService, games *service.GameService) *GameHandler {
	return &GameHandler{progress: progress, games: games}
}

// playerView is the wire shape of a profile
type playerView struct {
	ID           string                `json:"id"`
	Name         string                `json:"name"`
	Score        int                   `json:"score"`
	PlantStage   int                   `json:"plantStage"`
	PlantName    string                `json:"plantName"`
	PlantEmoji   string                `json:"plantEmoji"`
	NextStageAt  int                   `json:"nextStageAt"`
	Streak       int                   `json:"streak"`
	LastPlayed   *time.Time            `json:"lastPlayed,omitempty"`
	Achievements models.Achievements   `json:"achievements"`
	Challenge    models.DailyChallenge `json:"dailyChallenge"`
	CreatedAt    time.Time             `json:"createdAt"`
}

func toPlayerView(p *models.Player) playerView {
	return playerView{
		ID:           strconv.FormatInt(p.ID, 10),
		Name:         p.DisplayName,
		Score:        p.Score,
		PlantStage:   p.PlantStage,
		PlantName:    difficulty.StageName(p.PlantStage),
		PlantEmoji:   difficulty.StageEmoji(p.PlantStage),
		NextStageAt:  difficulty.ScoreTarget(p.PlantStage),
		Streak:       p.Streak,
		LastPlayed:   p.LastPlayed,
		Achievements: p.Achievements,
		Challenge:    p.Challenge,
		CreatedAt:    p.CreatedAt,
	}
}

// sessionView is the wire shape of an activity session
type sessionView struct {
	SessionID     string              `json:"sessionId"`
	Kind          models.ActivityKind `json:"kind"`
	State         string              `json:"state"`
	Questions     []models.Question   `json:"questions"`
	QuestionIndex int                 `json:"questionIndex"`
	CorrectCount  int                 `json:"correctCount"`
	PointsEarned  int                 `json:"pointsEarned"`
}

func toSessionView(s *models.ActivitySession) sessionView {
	return sessionView{
		SessionID:     s.ID,
		Kind:          s.Kind,
		State:         s.State.String(),
		Questions:     s.Questions,
		QuestionIndex: s.QuestionIndex,
		CorrectCount:  s.CorrectCount,
		PointsEarned:  s.PointsEarned,
	}
}

func parsePlayerID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		return 0, validation.ValidationError{Field: "id", Message: "player id must be an integer"}
	}
	return id, nil
}

// CreatePlayer loads or creates a profile by display name.
// POST /api/players {"name": "amy"}
func (h *GameHandler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondServiceError(w, err)
		return
	}

	player, created, err := h.progress.LoadOrCreate(req.Name)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	writeJSON(w, status, toPlayerView(player))
}

// GetPlayer returns one profile.
// GET /api/players/{id}
func (h *GameHandler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	id, err := parsePlayerID(r)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	player, err := h.progress.Get(id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toPlayerView(player))
}

// GetStats returns a profile's aggregated answer history.
// GET /api/players/{id}/stats
func (h *GameHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	id, err := parsePlayerID(r)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if _, err := h.progress.Get(id); err != nil {
		respondServiceError(w, err)
		return
	}
	stats, err := h.progress.Stats(id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"playerId":          strconv.FormatInt(stats.PlayerID, 10),
		"sessions":          stats.TotalSessions,
		"questionsAnswered": stats.QuestionsAnswered,
		"correctAnswers":    stats.CorrectAnswers,
		"wrongAnswers":      stats.WrongAnswers,
		"accuracy":          stats.Accuracy,
		"activitiesPlayed":  stats.ActivitiesPlayed,
		"lastPlayed":        stats.LastPlayed,
	})
}

// StartActivity begins a session for one activity kind.
// POST /api/players/{id}/activities/{kind}/start
func (h *GameHandler) StartActivity(w http.ResponseWriter, r *http.Request) {
	id, err := parsePlayerID(r)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	kind := r.PathValue("kind")
	if !models.IsValidActivityKind(kind) {
		respondError(w, http.StatusBadRequest, "unknown activity kind")
		return
	}

	session, err := h.games.StartActivity(id, models.ActivityKind(kind))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toSessionView(session))
}

// GetSession returns the player's in-flight session.
// GET /api/players/{id}/session
func (h *GameHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	id, err := parsePlayerID(r)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	session, ok := h.games.CurrentSession(id)
	if !ok {
		respondError(w, http.StatusNotFound, "no active session")
		return
	}
	writeJSON(w, http.StatusOK, toSessionView(session))
}

// SubmitAnswer runs one answer through the current session.
// POST /api/players/{id}/answer {"answer": "B", "latencyMs": 1200}
func (h *GameHandler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	id, err := parsePlayerID(r)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	var req struct {
		Answer    string `json:"answer"`
		LatencyMs int    `json:"latencyMs"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondServiceError(w, err)
		return
	}

	outcome, err := h.games.SubmitAnswer(id, req.Answer, req.LatencyMs)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, outcome)
}

// FlipCard advances a memory round by one card flip.
// POST /api/players/{id}/memory/flip {"cardId": "..."}
func (h *GameHandler) FlipCard(w http.ResponseWriter, r *http.Request) {
	id, err := parsePlayerID(r)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	var req struct {
		CardID string `json:"cardId"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondServiceError(w, err)
		return
	}

	outcome, err := h.games.FlipCard(id, req.CardID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, outcome)
}

// EndActivity abandons the current session.
// DELETE /api/players/{id}/session
func (h *GameHandler) EndActivity(w http.ResponseWriter, r *http.Request) {
	id, err := parsePlayerID(r)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	h.games.EndActivity(id)
	w.WriteHeader(http.StatusNoContent)
}

package service

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"kindergarden/internal/difficulty"
	"kindergarden/internal/game"
	"kindergarden/internal/models"
	"kindergarden/internal/repository"
	"kindergarden/internal/security"
)

// ErrBadCredentials is returned for a wrong admin password or a sign-in from
// an email outside the allow-list.
var ErrBadCredentials = errors.New("bad credentials")

// AdminService backs the parent/teacher panel: authentication, the roster
// view, deletion, and exports.
type AdminService struct {
	players  *repository.PlayerRepo
	answers  *repository.AnswerRepo
	sessions *game.Manager

	passwordHash  string
	tokens        *security.TokenIssuer
	allowedEmails map[string]bool
}

// NewAdminService creates a new admin service. allowedEmails is the
// comma-separated Google sign-in allow-list; empty disables Google sign-in.
func NewAdminService(players *repository.PlayerRepo, answers *repository.AnswerRepo, sessions *game.Manager,
	passwordHash string, tokens *security.TokenIssuer, allowedEmails string) *AdminService {

	allowed := make(map[string]bool)
	for _, email := range strings.Split(allowedEmails, ",") {
		if email = strings.ToLower(strings.TrimSpace(email)); email != "" {
			allowed[email] = true
		}
	}

	return &AdminService{
		players:       players,
		answers:       answers,
		sessions:      sessions,
		passwordHash:  passwordHash,
		tokens:        tokens,
		allowedEmails: allowed,
	}
}

// Authenticate checks the admin password and issues a session token
func (s *AdminService) Authenticate(password string) (string, error) {
	if s.passwordHash == "" {
		return "", ErrBadCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)); err != nil {
		return "", ErrBadCredentials
	}
	return s.tokens.Issue("admin")
}

// AuthenticateEmail issues a session token for an allow-listed Google account
func (s *AdminService) AuthenticateEmail(email string) (string, error) {
	if !s.allowedEmails[strings.ToLower(strings.TrimSpace(email))] {
		return "", ErrBadCredentials
	}
	return s.tokens.Issue(email)
}

// VerifyToken validates an admin session token
func (s *AdminService) VerifyToken(token string) error {
	_, err := s.tokens.Verify(token)
	return err
}

// TokenTTL returns the admin session lifetime, for the cookie expiry
func (s *AdminService) TokenTTL() time.Duration {
	return s.tokens.TTL()
}

// GoogleSignInEnabled reports whether any emails are allow-listed
func (s *AdminService) GoogleSignInEnabled() bool {
	return len(s.allowedEmails) > 0
}

// ListPlayers returns every profile with its aggregated history
func (s *AdminService) ListPlayers() ([]models.PlayerWithStats, error) {
	players, err := s.players.List()
	if err != nil {
		return nil, err
	}

	out := make([]models.PlayerWithStats, 0, len(players))
	for _, p := range players {
		stats, err := s.answers.Stats(p.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, models.PlayerWithStats{Player: p, Stats: *stats})
	}
	return out, nil
}

// DeletePlayer removes a profile, its history, and any live session
func (s *AdminService) DeletePlayer(id int64) error {
	s.sessions.End(id)
	return s.players.Delete(id)
}

// Overview is the roster-level aggregate for the panel header
type Overview struct {
	TotalPlayers  int     `json:"totalPlayers"`
	TotalScore    int     `json:"totalScore"`
	AverageStage  float64 `json:"averageStage"`
	PlayedToday   int     `json:"playedToday"`
	LongestStreak int     `json:"longestStreak"`
}

// Aggregate computes the roster overview
func (s *AdminService) Aggregate() (*Overview, error) {
	players, err := s.players.List()
	if err != nil {
		return nil, err
	}

	o := &Overview{TotalPlayers: len(players)}
	today := time.Now().UTC().Format("2006-01-02")
	stageSum := 0
	for _, p := range players {
		o.TotalScore += p.Score
		stageSum += p.PlantStage
		if p.Streak > o.LongestStreak {
			o.LongestStreak = p.Streak
		}
		if p.LastPlayed != nil && p.LastPlayed.UTC().Format("2006-01-02") == today {
			o.PlayedToday++
		}
	}
	if len(players) > 0 {
		o.AverageStage = float64(stageSum) / float64(len(players))
	}
	return o, nil
}

// exportRow is the flattened record shared by both export formats
type exportRow struct {
	PlayerID   string  `json:"playerId"`
	Name       string  `json:"name"`
	Score      int     `json:"score"`
	PlantStage int     `json:"plantStage"`
	PlantName  string  `json:"plantName"`
	Streak     int     `json:"streak"`
	Sessions   int     `json:"sessions"`
	Answered   int     `json:"questionsAnswered"`
	Correct    int     `json:"correctAnswers"`
	Accuracy   float64 `json:"accuracy"`
	LastPlayed string  `json:"lastPlayed,omitempty"`
	CreatedAt  string  `json:"createdAt"`
}

func (s *AdminService) exportRows() ([]exportRow, error) {
	withStats, err := s.ListPlayers()
	if err != nil {
		return nil, err
	}

	rows := make([]exportRow, 0, len(withStats))
	for _, ps := range withStats {
		row := exportRow{
			PlayerID:   strconv.FormatInt(ps.Player.ID, 10),
			Name:       ps.Player.DisplayName,
			Score:      ps.Player.Score,
			PlantStage: ps.Player.PlantStage,
			PlantName:  difficulty.StageName(ps.Player.PlantStage),
			Streak:     ps.Player.Streak,
			Sessions:   ps.Stats.TotalSessions,
			Answered:   ps.Stats.QuestionsAnswered,
			Correct:    ps.Stats.CorrectAnswers,
			Accuracy:   ps.Stats.Accuracy,
			CreatedAt:  ps.Player.CreatedAt.UTC().Format(time.RFC3339),
		}
		if ps.Player.LastPlayed != nil {
			row.LastPlayed = ps.Player.LastPlayed.UTC().Format(time.RFC3339)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// ExportJSON writes the full roster as a JSON document
func (s *AdminService) ExportJSON(w io.Writer) error {
	rows, err := s.exportRows()
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(map[string]any{
		"exportedAt": time.Now().UTC().Format(time.RFC3339),
		"players":    rows,
	})
}

// ExportCSV writes the full roster as CSV
func (s *AdminService) ExportCSV(w io.Writer) error {
	rows, err := s.exportRows()
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	header := []string{"player_id", "name", "score", "plant_stage", "plant_name", "streak",
		"sessions", "questions_answered", "correct_answers", "accuracy", "last_played", "created_at"}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, r := range rows {
		record := []string{
			r.PlayerID, r.Name,
			strconv.Itoa(r.Score), strconv.Itoa(r.PlantStage), r.PlantName,
			strconv.Itoa(r.Streak), strconv.Itoa(r.Sessions), strconv.Itoa(r.Answered),
			strconv.Itoa(r.Correct), fmt.Sprintf("%.3f", r.Accuracy),
			r.LastPlayed, r.CreatedAt,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

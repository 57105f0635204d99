package repository

import (
	"database/sql"
	"fmt"
	"time"

	"kindergarden/internal/database"
	"kindergarden/internal/models"
)

// AnswerRepo persists the append-only answer history
type AnswerRepo struct {
	db database.Querier
}

// NewAnswerRepo creates a new answer history repository
func NewAnswerRepo(db database.Querier) *AnswerRepo {
	return &AnswerRepo{db: db}
}

// Append stores one answer record and fills in its id.
// Records are never updated or reordered.
func (r *AnswerRepo) Append(rec *models.AnswerRecord) error {
	id, err := r.db.ExecReturningID(
		`INSERT INTO answer_events (player_id, session_id, kind, question_index, correct, attempt, latency_ms, points_earned, answered_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.PlayerID, rec.SessionID, string(rec.Kind), rec.QuestionIndex,
		rec.Correct, rec.Attempt, rec.LatencyMs, rec.PointsEarned, rec.AnsweredAt.UTC())
	if err != nil {
		return fmt.Errorf("failed to append answer record: %w", err)
	}
	rec.ID = id
	return nil
}

// History returns a player's most recent records, newest first
func (r *AnswerRepo) History(playerID int64, limit int) ([]models.AnswerRecord, error) {
	rows, err := r.db.Query(
		`SELECT id, player_id, session_id, kind, question_index, correct, attempt, latency_ms, points_earned, answered_at
		 FROM answer_events WHERE player_id = ? ORDER BY answered_at DESC, id DESC LIMIT ?`,
		playerID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}
	defer rows.Close()

	var records []models.AnswerRecord
	for rows.Next() {
		var rec models.AnswerRecord
		var kind string
		err := rows.Scan(&rec.ID, &rec.PlayerID, &rec.SessionID, &kind, &rec.QuestionIndex,
			&rec.Correct, &rec.Attempt, &rec.LatencyMs, &rec.PointsEarned, &rec.AnsweredAt)
		if err != nil {
			return nil, err
		}
		rec.Kind = models.ActivityKind(kind)
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Stats aggregates a player's answer history
func (r *AnswerRepo) Stats(playerID int64) (*models.PlayerStats, error) {
	stats := &models.PlayerStats{
		PlayerID:         playerID,
		ActivitiesPlayed: make(map[string]int),
	}

	err := r.db.QueryRow(
		`SELECT COUNT(DISTINCT session_id), COUNT(*),
		        COALESCE(SUM(CASE WHEN correct THEN 1 ELSE 0 END), 0)
		 FROM answer_events WHERE player_id = ?`,
		playerID).Scan(&stats.TotalSessions, &stats.QuestionsAnswered, &stats.CorrectAnswers)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate stats: %w", err)
	}

	stats.WrongAnswers = stats.QuestionsAnswered - stats.CorrectAnswers
	if stats.QuestionsAnswered > 0 {
		stats.Accuracy = float64(stats.CorrectAnswers) / float64(stats.QuestionsAnswered)
	}

	// a plain column select keeps the driver's time conversion; MAX() would not
	var lastPlayed time.Time
	err = r.db.QueryRow(
		"SELECT answered_at FROM answer_events WHERE player_id = ? ORDER BY answered_at DESC, id DESC LIMIT 1",
		playerID).Scan(&lastPlayed)
	switch err {
	case nil:
		stats.LastPlayed = &lastPlayed
	case sql.ErrNoRows:
		// never played
	default:
		return nil, fmt.Errorf("failed to read last answer time: %w", err)
	}

	rows, err := r.db.Query(
		"SELECT kind, COUNT(DISTINCT session_id) FROM answer_events WHERE player_id = ? GROUP BY kind",
		playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate per-activity stats: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var kind string
		var count int
		if err := rows.Scan(&kind, &count); err != nil {
			return nil, err
		}
		stats.ActivitiesPlayed[kind] = count
	}
	return stats, rows.Err()
}

// TotalsByKind sums correct answers per activity across the player's history;
// the achievement checks use it for the per-activity mastery flags.
func (r *AnswerRepo) TotalsByKind(playerID int64) (map[models.ActivityKind]int, error) {
	rows, err := r.db.Query(
		`SELECT kind, COALESCE(SUM(CASE WHEN correct THEN 1 ELSE 0 END), 0)
		 FROM answer_events WHERE player_id = ? GROUP BY kind`,
		playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to total answers by kind: %w", err)
	}
	defer rows.Close()

	totals := make(map[models.ActivityKind]int)
	for rows.Next() {
		var kind string
		var n int
		if err := rows.Scan(&kind, &n); err != nil {
			return nil, err
		}
		totals[models.ActivityKind(kind)] = n
	}
	return totals, rows.Err()
}

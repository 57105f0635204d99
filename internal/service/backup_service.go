package service

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"kindergarden/internal/database"
)

// BackupData is the complete portable dump of the store, usable to move an
// installation between machines or database engines.
type BackupData struct {
	Version      string         `json:"version"`
	ExportedAt   time.Time      `json:"exported_at"`
	DatabaseType string         `json:"database_type"`
	Players      []PlayerBackup `json:"players"`
	Answers      []AnswerBackup `json:"answers"`
}

// PlayerBackup is one player row in wire form
type PlayerBackup struct {
	ID           int64      `json:"id"`
	DisplayName  string     `json:"display_name"`
	Score        int        `json:"score"`
	PlantStage   int        `json:"plant_stage"`
	Streak       int        `json:"streak"`
	LastPlayed   *time.Time `json:"last_played,omitempty"`
	Achievements string     `json:"achievements"`
	Challenge    string     `json:"challenge"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// AnswerBackup is one answer event row in wire form
type AnswerBackup struct {
	PlayerID      int64     `json:"player_id"`
	SessionID     string    `json:"session_id"`
	Kind          string    `json:"kind"`
	QuestionIndex int       `json:"question_index"`
	Correct       bool      `json:"correct"`
	Attempt       int       `json:"attempt"`
	LatencyMs     int       `json:"latency_ms"`
	PointsEarned  int       `json:"points_earned"`
	AnsweredAt    time.Time `json:"answered_at"`
}

// BackupService exports and imports full database snapshots
type BackupService struct {
	db *database.DB
}

// NewBackupService creates a new backup service
func NewBackupService(db *database.DB) *BackupService {
	return &BackupService{db: db}
}

// Export writes a complete snapshot as JSON
func (s *BackupService) Export(w io.Writer) error {
	backup := BackupData{
		Version:      "1",
		ExportedAt:   time.Now().UTC(),
		DatabaseType: s.db.Dialect.DriverName(),
	}

	if err := s.exportPlayers(&backup); err != nil {
		return fmt.Errorf("failed to export players: %w", err)
	}
	if err := s.exportAnswers(&backup); err != nil {
		return fmt.Errorf("failed to export answers: %w", err)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(backup); err != nil {
		return fmt.Errorf("failed to encode backup: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"players": len(backup.Players),
		"answers": len(backup.Answers),
	}).Info("backup exported")
	return nil
}

func (s *BackupService) exportPlayers(backup *BackupData) error {
	rows, err := s.db.Query("SELECT id, display_name, score, plant_stage, streak, last_played, achievements, challenge, created_at, updated_at FROM players ORDER BY id")
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var p PlayerBackup
		var lastPlayed sql.NullTime
		if err := rows.Scan(&p.ID, &p.DisplayName, &p.Score, &p.PlantStage, &p.Streak,
			&lastPlayed, &p.Achievements, &p.Challenge, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return err
		}
		if lastPlayed.Valid {
			t := lastPlayed.Time
			p.LastPlayed = &t
		}
		backup.Players = append(backup.Players, p)
	}
	return rows.Err()
}

func (s *BackupService) exportAnswers(backup *BackupData) error {
	rows, err := s.db.Query("SELECT player_id, session_id, kind, question_index, correct, attempt, latency_ms, points_earned, answered_at FROM answer_events ORDER BY id")
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var a AnswerBackup
		if err := rows.Scan(&a.PlayerID, &a.SessionID, &a.Kind, &a.QuestionIndex,
			&a.Correct, &a.Attempt, &a.LatencyMs, &a.PointsEarned, &a.AnsweredAt); err != nil {
			return err
		}
		backup.Answers = append(backup.Answers, a)
	}
	return rows.Err()
}

// Import restores a snapshot into the store. Existing rows with matching ids
// are overwritten; the whole restore runs in one transaction.
func (s *BackupService) Import(r io.Reader) error {
	var backup BackupData
	if err := json.NewDecoder(r).Decode(&backup); err != nil {
		return fmt.Errorf("failed to decode backup: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, p := range backup.Players {
		var lastPlayed interface{}
		if p.LastPlayed != nil {
			lastPlayed = p.LastPlayed.UTC()
		}
		_, err := tx.Exec(tx.GetDialect().UpsertPlayerQuery(),
			p.ID, p.DisplayName, p.Score, p.PlantStage, p.Streak,
			lastPlayed, p.Achievements, p.Challenge, p.CreatedAt, p.UpdatedAt)
		if err != nil {
			return fmt.Errorf("failed to restore player %d: %w", p.ID, err)
		}
	}

	for _, a := range backup.Answers {
		_, err := tx.Exec(
			`INSERT INTO answer_events (player_id, session_id, kind, question_index, correct, attempt, latency_ms, points_earned, answered_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			a.PlayerID, a.SessionID, a.Kind, a.QuestionIndex,
			a.Correct, a.Attempt, a.LatencyMs, a.PointsEarned, a.AnsweredAt)
		if err != nil {
			return fmt.Errorf("failed to restore answer event: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"players": len(backup.Players),
		"answers": len(backup.Answers),
	}).Info("backup imported")
	return nil
}

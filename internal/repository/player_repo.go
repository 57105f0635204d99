// Package repository holds the SQL persistence layer. Repositories speak the
// dialect-neutral query surface of the database package and return domain
// models.
package repository

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"kindergarden/internal/database"
	"kindergarden/internal/models"
)

// ErrPlayerNotFound is returned when a player id has no stored profile
var ErrPlayerNotFound = errors.New("player not found")

// PlayerRepo persists player profiles
type PlayerRepo struct {
	db database.Querier
}

// NewPlayerRepo creates a new player repository
func NewPlayerRepo(db database.Querier) *PlayerRepo {
	return &PlayerRepo{db: db}
}

const playerColumns = "id, display_name, score, plant_stage, streak, last_played, achievements, challenge, created_at, updated_at"

// Get loads a profile by id
func (r *PlayerRepo) Get(id int64) (*models.Player, error) {
	row := r.db.QueryRow("SELECT "+playerColumns+" FROM players WHERE id = ?", id)
	player, err := scanPlayer(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPlayerNotFound
	}
	return player, err
}

// Save writes the whole profile in one upsert, so a crash can never leave a
// half-updated row.
func (r *PlayerRepo) Save(p *models.Player) error {
	achievements, err := json.Marshal(p.Achievements)
	if err != nil {
		return fmt.Errorf("failed to encode achievements: %w", err)
	}
	challenge, err := json.Marshal(p.Challenge)
	if err != nil {
		return fmt.Errorf("failed to encode challenge: %w", err)
	}

	now := time.Now().UTC()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now

	var lastPlayed interface{}
	if p.LastPlayed != nil {
		lastPlayed = p.LastPlayed.UTC()
	}

	_, err = r.db.Exec(r.db.GetDialect().UpsertPlayerQuery(),
		p.ID, p.DisplayName, p.Score, p.PlantStage, p.Streak,
		lastPlayed, string(achievements), string(challenge),
		p.CreatedAt.UTC(), p.UpdatedAt.UTC())
	if err != nil {
		return fmt.Errorf("failed to save player %d: %w", p.ID, err)
	}
	return nil
}

// Delete removes a profile; answer history goes with it via the foreign key
func (r *PlayerRepo) Delete(id int64) error {
	result, err := r.db.Exec("DELETE FROM players WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete player %d: %w", id, err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return ErrPlayerNotFound
	}
	return nil
}

// List returns all profiles ordered by most recent activity
func (r *PlayerRepo) List() ([]models.Player, error) {
	rows, err := r.db.Query("SELECT " + playerColumns + " FROM players ORDER BY updated_at DESC")
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	defer rows.Close()

	var players []models.Player
	for rows.Next() {
		player, err := scanPlayer(rows)
		if err != nil {
			return nil, err
		}
		players = append(players, *player)
	}
	return players, rows.Err()
}

// Count returns the number of stored profiles
func (r *PlayerRepo) Count() (int, error) {
	var n int
	err := r.db.QueryRow("SELECT COUNT(*) FROM players").Scan(&n)
	return n, err
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPlayer(row rowScanner) (*models.Player, error) {
	var p models.Player
	var lastPlayed sql.NullTime
	var achievements, challenge string

	err := row.Scan(&p.ID, &p.DisplayName, &p.Score, &p.PlantStage, &p.Streak,
		&lastPlayed, &achievements, &challenge, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if lastPlayed.Valid {
		t := lastPlayed.Time
		p.LastPlayed = &t
	}

	// Corrupt JSON columns degrade to zero values rather than failing the
	// load; the profile stays playable and the flags rebuild over time.
	if err := json.Unmarshal([]byte(achievements), &p.Achievements); err != nil {
		logrus.WithError(err).WithField("player_id", p.ID).Warn("resetting unreadable achievements")
		p.Achievements = models.Achievements{}
	}
	if err := json.Unmarshal([]byte(challenge), &p.Challenge); err != nil {
		logrus.WithError(err).WithField("player_id", p.ID).Warn("resetting unreadable challenge")
		p.Challenge = models.DailyChallenge{}
	}

	return &p, nil
}

package repository

import (
	"path/filepath"
	"testing"
	"time"

	"kindergarden/internal/config"
	"kindergarden/internal/database"
	"kindergarden/internal/models"
)

func openTestDB(t *testing.T) *database.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping database-backed test in short mode")
	}

	cfg := &config.Config{
		DatabaseType: "sqlite",
		DatabasePath: filepath.Join(t.TempDir(), "test.db"),
	}
	db, err := database.Open(cfg)
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := db.RunMigrations("../../migrations"); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}
	return db
}

func TestPlayerRoundTrip(t *testing.T) {
	repo := NewPlayerRepo(openTestDB(t))

	played := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	player := &models.Player{
		ID:          42,
		DisplayName: "Amy",
		Score:       120,
		PlantStage:  2,
		Streak:      3,
		LastPlayed:  &played,
		Achievements: models.Achievements{
			First100: true,
		},
		Challenge: models.DailyChallenge{Date: "2026-03-10", Target: 8, Answered: 2},
	}
	if err := repo.Save(player); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := repo.Get(42)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.DisplayName != "Amy" || got.Score != 120 || got.PlantStage != 2 || got.Streak != 3 {
		t.Errorf("unexpected profile: %+v", got)
	}
	if !got.Achievements.First100 {
		t.Error("achievements not round-tripped")
	}
	if got.Challenge != player.Challenge {
		t.Errorf("challenge = %+v, want %+v", got.Challenge, player.Challenge)
	}
}

func TestGetUnknownPlayer(t *testing.T) {
	repo := NewPlayerRepo(openTestDB(t))
	if _, err := repo.Get(999); err != ErrPlayerNotFound {
		t.Errorf("err = %v, want ErrPlayerNotFound", err)
	}
}

func TestCorruptJSONColumnsDegradeToDefaults(t *testing.T) {
	db := openTestDB(t)
	repo := NewPlayerRepo(db)

	player := &models.Player{
		ID:           7,
		DisplayName:  "Ben",
		Score:        55,
		Achievements: models.Achievements{First100: true},
		Challenge:    models.DailyChallenge{Date: "2026-03-10", Target: 10},
	}
	if err := repo.Save(player); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// mangle the JSON columns the way a partial write or manual edit would
	if _, err := db.Exec("UPDATE players SET achievements = ?, challenge = ? WHERE id = ?",
		"{broken", "garbage", int64(7)); err != nil {
		t.Fatalf("failed to corrupt row: %v", err)
	}

	got, err := repo.Get(7)
	if err != nil {
		t.Fatalf("Get must survive corrupt JSON, got: %v", err)
	}
	if got.Achievements != (models.Achievements{}) {
		t.Errorf("achievements should reset to defaults, got %+v", got.Achievements)
	}
	if got.Challenge != (models.DailyChallenge{}) {
		t.Errorf("challenge should reset to defaults, got %+v", got.Challenge)
	}
	// the rest of the profile is untouched
	if got.DisplayName != "Ben" || got.Score != 55 {
		t.Errorf("profile fields lost: %+v", got)
	}
}

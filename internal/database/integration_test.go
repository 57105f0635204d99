package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"kindergarden/internal/config"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	cfg := &config.Config{
		DatabaseType: "sqlite",
		DatabasePath: filepath.Join(t.TempDir(), "test.db"),
	}
	db, err := Open(cfg)
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.RunMigrations("../../migrations"); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}
	return db
}

// TestDatabaseIntegration tests the complete database lifecycle
func TestDatabaseIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	db := openTestDB(t)

	ctx := context.Background()
	if err := db.PingContext(ctx); err != nil {
		t.Fatalf("Failed to ping database: %v", err)
	}

	// migrations must have created the schema
	for _, table := range []string{"players", "answer_events", "migrations"} {
		var name string
		err := db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		if err != nil {
			t.Errorf("Table %s not found: %v", table, err)
		}
	}

	// migrations are idempotent
	if err := db.RunMigrations("../../migrations"); err != nil {
		t.Fatalf("second migration run failed: %v", err)
	}
}

// TestPlayerUpsert exercises the dialect upsert used by the progress store
func TestPlayerUpsert(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	db := openTestDB(t)
	now := time.Now().UTC()

	upsert := func(score int) {
		t.Helper()
		_, err := db.Exec(db.Dialect.UpsertPlayerQuery(),
			int64(12345), "amy", score, 0, 1, now, "{}", "{}", now, now)
		if err != nil {
			t.Fatalf("upsert failed: %v", err)
		}
	}

	upsert(5)
	upsert(10)

	var count, score int
	if err := db.QueryRow("SELECT COUNT(*), MAX(score) FROM players").Scan(&count, &score); err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if count != 1 {
		t.Errorf("expected a single row after double upsert, got %d", count)
	}
	if score != 10 {
		t.Errorf("score = %d, want 10", score)
	}
}

// TestDatabaseTransactions tests transaction support
func TestDatabaseTransactions(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	db := openTestDB(t)
	now := time.Now().UTC()

	_, err := db.Exec(db.Dialect.UpsertPlayerQuery(),
		int64(1), "amy", 0, 0, 0, nil, "{}", "{}", now, now)
	if err != nil {
		t.Fatalf("seed player: %v", err)
	}

	insertEvent := "INSERT INTO answer_events (player_id, session_id, kind, question_index, correct, attempt, latency_ms, points_earned, answered_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)"

	tx, err := db.Begin()
	if err != nil {
		t.Fatalf("Failed to begin transaction: %v", err)
	}
	if _, err := tx.Exec(insertEvent, 1, "s1", "alphabet", 0, true, 1, 900, 1, now); err != nil {
		tx.Rollback()
		t.Fatalf("Failed to insert in transaction: %v", err)
	}
	if err := tx.Commit(); err != nil {
		t.Fatalf("Failed to commit transaction: %v", err)
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM answer_events").Scan(&count); err != nil {
		t.Fatalf("Failed to query after commit: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected 1 event, got %d", count)
	}

	tx2, err := db.Begin()
	if err != nil {
		t.Fatalf("Failed to begin second transaction: %v", err)
	}
	if _, err := tx2.Exec(insertEvent, 1, "s2", "math", 0, false, 1, 1200, 0, now); err != nil {
		tx2.Rollback()
		t.Fatalf("Failed to insert in second transaction: %v", err)
	}
	if err := tx2.Rollback(); err != nil {
		t.Fatalf("Failed to rollback transaction: %v", err)
	}

	if err := db.QueryRow("SELECT COUNT(*) FROM answer_events").Scan(&count); err != nil {
		t.Fatalf("Failed to query after rollback: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected 1 event after rollback, got %d", count)
	}
}

// TestConcurrentAccess tests concurrent database access
func TestConcurrentAccess(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	db := openTestDB(t)
	now := time.Now().UTC()

	_, err := db.Exec(db.Dialect.UpsertPlayerQuery(),
		int64(7), "ben", 42, 1, 3, now, "{}", "{}", now, now)
	if err != nil {
		t.Fatalf("Failed to create test player: %v", err)
	}

	done := make(chan bool)
	for i := 0; i < 10; i++ {
		go func() {
			var name string
			err := db.QueryRow("SELECT display_name FROM players WHERE id = ?", 7).Scan(&name)
			if err != nil {
				t.Errorf("Concurrent read failed: %v", err)
			}
			if name != "ben" {
				t.Errorf("Expected display name 'ben', got '%s'", name)
			}
			done <- true
		}()
	}
	for i := 0; i < 10; i++ {
		<-done
	}
}

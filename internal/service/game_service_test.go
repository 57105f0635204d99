package service

import (
	"math/rand"
	"testing"

	"kindergarden/internal/game"
	"kindergarden/internal/generator"
	"kindergarden/internal/models"
)

func newTestGame(t *testing.T) (*GameService, *ProgressService) {
	progress, _ := newTestProgress(t)
	sessions := game.NewManager(generator.NewWithRand(rand.New(rand.NewSource(31))), 1)
	return NewGameService(progress, sessions), progress
}

// completeMemoryBoard plays the whole board pair by pair through the service
func completeMemoryBoard(t *testing.T, svc *GameService, playerID int64, session *models.ActivitySession) *game.FlipOutcome {
	t.Helper()
	board := session.Questions[0].Memory
	if board == nil {
		t.Fatal("no board payload")
	}
	pairs := map[string][]string{}
	for _, c := range board.Cards {
		pairs[c.PairID] = append(pairs[c.PairID], c.ID)
	}

	var outcome *game.FlipOutcome
	for _, ids := range pairs {
		for _, id := range ids {
			var err error
			outcome, err = svc.FlipCard(playerID, id)
			if err != nil {
				t.Fatalf("flip: %v", err)
			}
		}
	}
	return outcome
}

func TestSubmitAnswerPersistsProgress(t *testing.T) {
	svc, progress := newTestGame(t)
	player, _, err := progress.LoadOrCreate("amy")
	if err != nil {
		t.Fatalf("LoadOrCreate failed: %v", err)
	}

	session, err := svc.StartActivity(player.ID, models.ActivityAlphabet)
	if err != nil {
		t.Fatalf("StartActivity failed: %v", err)
	}

	outcome, err := svc.SubmitAnswer(player.ID, session.Questions[0].Target, 800)
	if err != nil {
		t.Fatalf("SubmitAnswer failed: %v", err)
	}
	if !outcome.Correct {
		t.Fatal("correct answer rejected")
	}

	stored, err := progress.Get(player.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if stored.Score != 1 || stored.Streak != 1 || stored.Challenge.Answered != 1 {
		t.Errorf("profile not updated: score=%d streak=%d answered=%d",
			stored.Score, stored.Streak, stored.Challenge.Answered)
	}
}

func TestMemoryCompletionCountsInHistory(t *testing.T) {
	svc, progress := newTestGame(t)
	player, _, err := progress.LoadOrCreate("amy")
	if err != nil {
		t.Fatalf("LoadOrCreate failed: %v", err)
	}

	session, err := svc.StartActivity(player.ID, models.ActivityMemory)
	if err != nil {
		t.Fatalf("StartActivity failed: %v", err)
	}

	outcome := completeMemoryBoard(t, svc, player.ID, session)
	if !outcome.Completed {
		t.Fatal("board not completed")
	}

	// the finished round lands in the profile like any answered question
	stored, err := progress.Get(player.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if stored.Score != outcome.Bonus {
		t.Errorf("score = %d, want the bonus %d", stored.Score, outcome.Bonus)
	}
	if stored.Streak != 1 {
		t.Errorf("streak = %d, want 1 after a memory-only day", stored.Streak)
	}
	if stored.Challenge.Answered != 1 {
		t.Errorf("challenge answered = %d, want 1", stored.Challenge.Answered)
	}
	if stored.LastPlayed == nil {
		t.Error("LastPlayed not set")
	}

	// and in the aggregated history
	stats, err := progress.Stats(player.ID)
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if stats.TotalSessions != 1 {
		t.Errorf("total sessions = %d, want 1", stats.TotalSessions)
	}
	if stats.ActivitiesPlayed[string(models.ActivityMemory)] != 1 {
		t.Errorf("memory sessions = %d, want 1", stats.ActivitiesPlayed[string(models.ActivityMemory)])
	}

	totals, err := progress.answers.TotalsByKind(player.ID)
	if err != nil {
		t.Fatalf("TotalsByKind failed: %v", err)
	}
	if totals[models.ActivityMemory] != 1 {
		t.Errorf("memory totals = %d, want 1", totals[models.ActivityMemory])
	}
}

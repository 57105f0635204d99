package service

import (
	"github.com/sirupsen/logrus"

	"kindergarden/internal/game"
	"kindergarden/internal/models"
)

// GameService glues the live session manager to the persisted profiles:
// every answer and completed board is reflected back into the store before
// the response leaves.
type GameService struct {
	progress *ProgressService
	sessions *game.Manager
}

// NewGameService creates a new game service
func NewGameService(progress *ProgressService, sessions *game.Manager) *GameService {
	return &GameService{progress: progress, sessions: sessions}
}

// StartActivity begins a fresh session for the player
func (s *GameService) StartActivity(playerID int64, kind models.ActivityKind) (*models.ActivitySession, error) {
	player, err := s.progress.Get(playerID)
	if err != nil {
		return nil, err
	}
	return s.sessions.Start(player, kind)
}

// CurrentSession returns the player's in-flight session, if any
func (s *GameService) CurrentSession(playerID int64) (*models.ActivitySession, bool) {
	return s.sessions.Current(playerID)
}

// SubmitAnswer runs one answer through the session and persists the fallout:
// the history record, streak, daily challenge, achievements, and profile.
func (s *GameService) SubmitAnswer(playerID int64, answer string, latencyMs int) (*models.AnswerOutcome, error) {
	player, err := s.progress.Get(playerID)
	if err != nil {
		return nil, err
	}

	outcome, record, err := s.sessions.Answer(player, answer, latencyMs)
	if err != nil {
		return nil, err
	}

	if err := s.progress.RecordAnswer(player, record); err != nil {
		return nil, err
	}
	if err := s.progress.Save(player); err != nil {
		return nil, err
	}

	// the record may have earned new badges
	outcome.Achievements = player.Achievements
	return outcome, nil
}

// FlipCard advances a memory round. Individual flips only change live board
// state; the flip that completes the board yields a history record and runs
// through the same bookkeeping as a quiz answer.
func (s *GameService) FlipCard(playerID int64, cardID string) (*game.FlipOutcome, error) {
	player, err := s.progress.Get(playerID)
	if err != nil {
		return nil, err
	}

	outcome, record, err := s.sessions.Flip(player, cardID)
	if err != nil {
		return nil, err
	}

	if record != nil {
		if err := s.progress.RecordAnswer(player, record); err != nil {
			return nil, err
		}
		if err := s.progress.Save(player); err != nil {
			logrus.WithError(err).WithField("player_id", playerID).Error("failed to persist memory completion")
			return nil, err
		}
	}
	return outcome, nil
}

// EndActivity abandons the player's current session without completing it
func (s *GameService) EndActivity(playerID int64) {
	s.sessions.End(playerID)
}

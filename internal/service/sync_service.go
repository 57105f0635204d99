package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/sirupsen/logrus"

	"kindergarden/internal/models"
	"kindergarden/internal/repository"
	"kindergarden/internal/validation"
)

// SyncService implements the device-sync contract on top of the local store
// and optionally mirrors writes to a configured upstream. The mirror is
// advisory: the local store is always the source of truth and an unreachable
// upstream never fails a request.
type SyncService struct {
	players  *repository.PlayerRepo
	answers  *repository.AnswerRepo
	upstream string
	timeout  time.Duration
	client   *http.Client
}

// NewSyncService creates a new sync service; an empty upstreamURL disables
// the mirror push.
func NewSyncService(players *repository.PlayerRepo, answers *repository.AnswerRepo, upstreamURL string, timeout time.Duration) *SyncService {
	return &SyncService{
		players:  players,
		answers:  answers,
		upstream: upstreamURL,
		timeout:  timeout,
		client:   &http.Client{Timeout: timeout},
	}
}

// Upsert applies an inbound sync payload to the local store and returns the
// stored state. Unknown ids create a profile; known ids take the payload's
// name and score.
func (s *SyncService) Upsert(user models.SyncUser) (*models.SyncUser, error) {
	id, err := parseSyncUserID(user.UserID)
	if err != nil {
		return nil, err
	}
	if err := validation.ValidatePlayerName(user.Name); err != nil {
		return nil, err
	}

	player, err := s.players.Get(id)
	if err == repository.ErrPlayerNotFound {
		player = &models.Player{ID: id}
	} else if err != nil {
		return nil, err
	}

	player.DisplayName = collapseSpaces(user.Name)
	player.Score = user.TotalScore
	if !user.LastUpdated.IsZero() {
		t := user.LastUpdated
		player.LastPlayed = &t
	}
	if player.CreatedAt.IsZero() && !user.CreatedAt.IsZero() {
		player.CreatedAt = user.CreatedAt
	}

	if err := s.players.Save(player); err != nil {
		return nil, err
	}

	stored, err := s.toSyncUser(*player)
	if err != nil {
		return nil, err
	}

	s.mirror(*stored)
	return stored, nil
}

// GetAllUsers returns every stored profile in the sync wire shape
func (s *SyncService) GetAllUsers() ([]models.SyncUser, error) {
	players, err := s.players.List()
	if err != nil {
		return nil, err
	}

	users := make([]models.SyncUser, 0, len(players))
	for _, p := range players {
		u, err := s.toSyncUser(p)
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	return users, nil
}

// Delete removes a profile by sync id
func (s *SyncService) Delete(userID string) error {
	id, err := parseSyncUserID(userID)
	if err != nil {
		return err
	}
	return s.players.Delete(id)
}

// Count returns the number of synced profiles, for the health check
func (s *SyncService) Count() (int, error) {
	return s.players.Count()
}

func (s *SyncService) toSyncUser(p models.Player) (*models.SyncUser, error) {
	stats, err := s.answers.Stats(p.ID)
	if err != nil {
		return nil, err
	}

	activities := make(map[string]any, len(stats.ActivitiesPlayed))
	for kind, sessions := range stats.ActivitiesPlayed {
		activities[kind] = map[string]any{"sessions": sessions}
	}

	lastUpdated := p.UpdatedAt
	if p.LastPlayed != nil && p.LastPlayed.After(lastUpdated) {
		lastUpdated = *p.LastPlayed
	}

	return &models.SyncUser{
		UserID:              strconv.FormatInt(p.ID, 10),
		Name:                p.DisplayName,
		Activities:          activities,
		TotalScore:          p.Score,
		CompletedActivities: stats.TotalSessions,
		LastUpdated:         lastUpdated,
		CreatedAt:           p.CreatedAt,
	}, nil
}

// mirror pushes one record to the upstream with exponential backoff, in the
// background. Failures are logged and dropped.
func (s *SyncService) mirror(user models.SyncUser) {
	if s.upstream == "" {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()

		err := backoff.Retry(func() error {
			return s.push(ctx, user)
		}, backoff.WithContext(backoff.NewExponentialBackOff(), ctx))
		if err != nil {
			logrus.WithError(err).WithField("user_id", user.UserID).Warn("upstream mirror push failed")
		}
	}()
}

func (s *SyncService) push(ctx context.Context, user models.SyncUser) error {
	body, err := json.Marshal(user)
	if err != nil {
		return backoff.Permanent(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.upstream, bytes.NewReader(body))
	if err != nil {
		return backoff.Permanent(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		return fmt.Errorf("upstream returned %d", resp.StatusCode)
	}
	if resp.StatusCode >= 400 {
		return backoff.Permanent(fmt.Errorf("upstream rejected push: %d", resp.StatusCode))
	}
	return nil
}

func parseSyncUserID(userID string) (int64, error) {
	id, err := strconv.ParseInt(userID, 10, 64)
	if err != nil || id < 0 {
		return 0, validation.ValidationError{Field: "userId", Message: "userId must be a non-negative integer"}
	}
	return id, nil
}

// Package service holds the application logic between the HTTP handlers and
// the repositories.
package service

import (
	"math/rand"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"kindergarden/internal/models"
	"kindergarden/internal/repository"
	"kindergarden/internal/validation"
)

// Streak thresholds for the achievement flags
const (
	streakBadgeSmall = 5
	streakBadgeBig   = 10
)

// Score thresholds for the achievement flags
const (
	scoreBadgeFirst = 100
	scoreBadgeMid   = 500
	scoreBadgeTop   = 1000
)

// masteryThreshold is the correct-answer count that earns a per-activity
// mastery badge.
const masteryThreshold = 25

// challengeTargets are the possible daily question goals
var challengeTargets = []int{5, 8, 10, 12, 15}

// ProgressService owns player profiles: creation, streaks, daily challenges,
// and achievements.
type ProgressService struct {
	players *repository.PlayerRepo
	answers *repository.AnswerRepo
	rng     *rand.Rand
	now     func() time.Time
}

// NewProgressService creates a new progress service
func NewProgressService(players *repository.PlayerRepo, answers *repository.AnswerRepo) *ProgressService {
	return &ProgressService{
		players: players,
		answers: answers,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		now:     time.Now,
	}
}

// NormalizeName canonicalizes a display name for identity: surrounding
// whitespace trimmed, inner runs collapsed to single spaces, lowercased. Two
// names that normalize equally are the same player. The stored display name
// keeps the caller's casing, see collapseSpaces.
func NormalizeName(name string) string {
	return strings.ToLower(collapseSpaces(name))
}

// collapseSpaces tidies a display name without changing its casing
func collapseSpaces(name string) string {
	return strings.Join(strings.Fields(name), " ")
}

// PlayerIDFromName derives the stable numeric id for a display name. The hash
// is the classic 31-multiplier string hash over the normalized form, folded
// to 32 bits and made non-negative. It is not collision-free, but at
// household scale two kids' names colliding is vanishingly unlikely.
func PlayerIDFromName(name string) int64 {
	var h int32
	for _, c := range NormalizeName(name) {
		h = (h << 5) - h + int32(c)
	}
	if h < 0 {
		h = -h
	}
	return int64(h)
}

// LoadOrCreate returns the profile for a display name, creating a fresh one
// on first sight. The bool reports whether a new profile was created.
func (s *ProgressService) LoadOrCreate(displayName string) (*models.Player, bool, error) {
	if err := validation.ValidatePlayerName(displayName); err != nil {
		return nil, false, err
	}

	id := PlayerIDFromName(displayName)

	player, err := s.players.Get(id)
	if err == nil {
		s.refreshDay(player)
		if err := s.players.Save(player); err != nil {
			return nil, false, err
		}
		return player, false, nil
	}
	if err != repository.ErrPlayerNotFound {
		return nil, false, err
	}

	now := s.now().UTC()
	player = &models.Player{
		ID:          id,
		DisplayName: collapseSpaces(displayName),
		Challenge:   s.newChallenge(),
		CreatedAt:   now,
	}
	if err := s.players.Save(player); err != nil {
		return nil, false, err
	}

	logrus.WithFields(logrus.Fields{
		"player_id": id,
		"name":      player.DisplayName,
	}).Info("created player profile")
	return player, true, nil
}

// Get loads a profile by id
func (s *ProgressService) Get(id int64) (*models.Player, error) {
	return s.players.Get(id)
}

// Save persists a profile
func (s *ProgressService) Save(player *models.Player) error {
	return s.players.Save(player)
}

// RecordAnswer persists one answer record and applies its side effects to the
// profile: streak touch, daily-challenge progress, achievement flags. The
// caller saves the profile afterwards.
func (s *ProgressService) RecordAnswer(player *models.Player, rec *models.AnswerRecord) error {
	if err := s.answers.Append(rec); err != nil {
		return err
	}

	s.refreshDay(player)
	s.touchStreak(player)
	now := rec.AnsweredAt
	player.LastPlayed = &now

	player.Challenge.Answered++
	if !player.Challenge.Completed && player.Challenge.Answered >= player.Challenge.Target {
		player.Challenge.Completed = true
		logrus.WithField("player_id", player.ID).Info("daily challenge completed")
	}

	return s.refreshAchievements(player)
}

// refreshDay rolls the daily challenge when the calendar day has changed.
// It is idempotent within a day, so loading a profile twice changes nothing.
func (s *ProgressService) refreshDay(player *models.Player) {
	if player.Challenge.Date != s.today() {
		player.Challenge = s.newChallenge()
	}
}

// touchStreak applies the daily-streak rule using the previous play date:
// same day leaves it, yesterday extends it, anything older resets to 1.
// Called only on play, before LastPlayed moves to now.
func (s *ProgressService) touchStreak(player *models.Player) {
	if player.LastPlayed == nil {
		player.Streak = 1
		return
	}

	switch dayString(*player.LastPlayed) {
	case s.today():
		// already played today
	case dayString(s.now().UTC().AddDate(0, 0, -1)):
		player.Streak++
	default:
		player.Streak = 1
	}
}

// refreshAchievements recomputes the flags and merges them monotonically;
// a badge once earned is never taken away.
func (s *ProgressService) refreshAchievements(player *models.Player) error {
	fresh := models.Achievements{
		First100:  player.Score >= scoreBadgeFirst,
		Score500:  player.Score >= scoreBadgeMid,
		Score1000: player.Score >= scoreBadgeTop,
		Streak5:   player.Streak >= streakBadgeSmall,
		Streak10:  player.Streak >= streakBadgeBig,
	}

	totals, err := s.answers.TotalsByKind(player.ID)
	if err != nil {
		return err
	}
	fresh.AlphabetMaster = totals[models.ActivityAlphabet] >= masteryThreshold
	fresh.NumbersMaster = totals[models.ActivityNumbers]+totals[models.ActivityMath] >= masteryThreshold

	allGames := true
	for _, kind := range models.AllActivityKinds {
		if totals[kind] == 0 {
			allGames = false
			break
		}
	}
	fresh.AllGames = allGames

	player.Achievements = player.Achievements.Merge(fresh)
	return nil
}

// Stats aggregates a player's answer history
func (s *ProgressService) Stats(playerID int64) (*models.PlayerStats, error) {
	return s.answers.Stats(playerID)
}

func (s *ProgressService) newChallenge() models.DailyChallenge {
	return models.DailyChallenge{
		Date:   s.today(),
		Target: challengeTargets[s.rng.Intn(len(challengeTargets))],
	}
}

func (s *ProgressService) today() string {
	return dayString(s.now().UTC())
}

func dayString(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

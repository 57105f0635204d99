// Package game runs the live activity sessions: question flow, scoring,
// plant-stage advancement, and the memory-board flip machinery. Sessions are
// held in memory; profiles and answer history are persisted by the service
// layer after each call.
package game

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"kindergarden/internal/difficulty"
	"kindergarden/internal/generator"
	"kindergarden/internal/models"
)

var (
	ErrNoSession           = errors.New("no active session for player")
	ErrSessionComplete     = errors.New("session already complete")
	ErrActivityUnavailable = errors.New("no questions available for activity")
	ErrNotMemorySession    = errors.New("current session is not a memory round")
	ErrMemorySession       = errors.New("memory rounds are played with flips, not answers")
	ErrUnknownCard         = errors.New("card is not on the board")
)

// DefaultPointsPerCorrect is the score awarded per correct answer when the
// manager is not configured otherwise. Wrong answers never subtract points.
const DefaultPointsPerCorrect = 1

// Manager owns all in-flight sessions, one per player. A coarse lock
// serializes every mutation; at kindergarten scale contention is not a
// concern, and it guarantees a single writer per player.
type Manager struct {
	mu       sync.Mutex
	sessions map[int64]*liveSession

	gen              *generator.Generator
	pointsPerCorrect int

	now       func() time.Time
	afterFunc func(time.Duration, func()) *time.Timer
}

type liveSession struct {
	session *models.ActivitySession
	memory  *memoryRound
}

// NewManager wires a session manager around the given generator.
// pointsPerCorrect values below 1 fall back to the default.
func NewManager(gen *generator.Generator, pointsPerCorrect int) *Manager {
	if pointsPerCorrect < 1 {
		pointsPerCorrect = DefaultPointsPerCorrect
	}
	return &Manager{
		sessions:         make(map[int64]*liveSession),
		gen:              gen,
		pointsPerCorrect: pointsPerCorrect,
		now:              time.Now,
		afterFunc:        time.AfterFunc,
	}
}

// Start begins a fresh session for the player, replacing any session still in
// flight. Every start generates a new batch; nothing is resumed.
func (m *Manager) Start(player *models.Player, kind models.ActivityKind) (*models.ActivitySession, error) {
	batch := m.gen.Batch(kind, difficulty.ForStage(player.PlantStage))
	if len(batch) == 0 {
		return nil, ErrActivityUnavailable
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.dropLocked(player.ID)

	session := &models.ActivitySession{
		ID:        uuid.NewString(),
		PlayerID:  player.ID,
		Kind:      kind,
		State:     models.SessionInProgress,
		Questions: batch,
		StartedAt: m.now(),
	}

	live := &liveSession{session: session}
	if kind == models.ActivityMemory {
		live.memory = newMemoryRound(batch[0].Memory, m.now())
	}
	m.sessions[player.ID] = live

	return session, nil
}

// Current returns the player's in-flight session, if any
func (m *Manager) Current(playerID int64) (*models.ActivitySession, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	live, ok := m.sessions[playerID]
	if !ok {
		return nil, false
	}
	return live.session, true
}

// End discards the player's session without completing it
func (m *Manager) End(playerID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dropLocked(playerID)
}

// dropLocked removes a session and disarms any pending board timer
func (m *Manager) dropLocked(playerID int64) {
	if live, ok := m.sessions[playerID]; ok {
		if live.memory != nil {
			live.memory.disarm()
		}
		delete(m.sessions, playerID)
	}
}

// Answer submits the player's choice for the current question. A wrong answer
// keeps the question in place so the child retries until correct; only
// correct answers score and advance. The returned record is the history row
// for the attempt.
func (m *Manager) Answer(player *models.Player, given string, latencyMs int) (*models.AnswerOutcome, *models.AnswerRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	live, ok := m.sessions[player.ID]
	if !ok {
		return nil, nil, ErrNoSession
	}
	session := live.session
	if session.State != models.SessionInProgress {
		return nil, nil, ErrSessionComplete
	}
	if session.Kind == models.ActivityMemory {
		return nil, nil, ErrMemorySession
	}

	question := session.Questions[session.QuestionIndex]
	correct := given == question.Target
	session.Attempts++

	record := &models.AnswerRecord{
		PlayerID:      player.ID,
		SessionID:     session.ID,
		Kind:          session.Kind,
		QuestionIndex: session.QuestionIndex,
		Correct:       correct,
		Attempt:       session.Attempts,
		LatencyMs:     latencyMs,
		AnsweredAt:    m.now(),
	}

	outcome := &models.AnswerOutcome{
		Correct:       correct,
		QuestionIndex: session.QuestionIndex,
	}

	if correct {
		points := m.pointsPerCorrect
		player.Score += points
		session.PointsEarned += points
		session.CorrectCount++
		session.Attempts = 0
		session.QuestionIndex++
		record.PointsEarned = points
		outcome.PointsEarned = points

		if session.QuestionIndex >= len(session.Questions) {
			m.completeLocked(player, session)
		} else {
			next := session.Questions[session.QuestionIndex]
			outcome.NextQuestion = &next
			outcome.QuestionIndex = session.QuestionIndex
		}
	}

	outcome.Score = player.Score
	outcome.State = session.State.String()
	outcome.StageAdvanced = session.StageAdvanced
	outcome.PlantStage = player.PlantStage
	outcome.PlantName = difficulty.StageName(player.PlantStage)
	outcome.Achievements = player.Achievements

	return outcome, record, nil
}

// SweepCompleted drops completed sessions older than maxAge and returns how
// many were removed. Completed sessions otherwise stay around until the
// player's next Start, so a periodic sweep keeps the map from holding every
// finished round forever.
func (m *Manager) SweepCompleted(maxAge time.Duration) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	cutoff := m.now().Add(-maxAge)
	removed := 0
	for playerID, live := range m.sessions {
		s := live.session
		if s.State == models.SessionComplete && s.CompletedAt != nil && s.CompletedAt.Before(cutoff) {
			m.dropLocked(playerID)
			removed++
		}
	}
	return removed
}

// completeLocked finishes a session and grows the plant at most one stage,
// even when the score jump spans several thresholds.
func (m *Manager) completeLocked(player *models.Player, session *models.ActivitySession) {
	session.State = models.SessionComplete
	done := m.now()
	session.CompletedAt = &done

	if difficulty.CanAdvance(player.PlantStage, player.Score) {
		player.PlantStage++
		session.StageAdvanced = true
	}
}

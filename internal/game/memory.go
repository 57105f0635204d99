package game

import (
	"time"

	"kindergarden/internal/difficulty"
	"kindergarden/internal/models"
)

// mismatchFlipDelay is how long a mismatched pair stays face up
const mismatchFlipDelay = 800 * time.Millisecond

// Memory completion bonus: a flat award plus efficiency bonuses for few moves
// and a quick finish.
const (
	memoryBaseBonus  = 50
	memoryMoveBudget = 30
	memoryTimeBudget = 20
)

// FlipOutcome is returned to the client after each card flip
type FlipOutcome struct {
	Accepted bool     `json:"accepted"`
	CardID   string   `json:"cardId,omitempty"`
	FaceUp   []string `json:"faceUp"`
	Matched  bool     `json:"matched"`
	Mismatch bool     `json:"mismatch"`
	Moves    int      `json:"moves"`
	Found    int      `json:"found"`
	Pairs    int      `json:"pairs"`

	Completed     bool   `json:"completed"`
	Bonus         int    `json:"bonus,omitempty"`
	Score         int    `json:"score"`
	StageAdvanced bool   `json:"stageAdvanced"`
	PlantStage    int    `json:"plantStage"`
	PlantName     string `json:"plantName,omitempty"`
}

// memoryRound is the live state of one memory board. It is only touched under
// the manager lock; the flip-back timer re-acquires that lock and checks the
// generation counter so a stale timer never clobbers a newer round state.
type memoryRound struct {
	board      *models.MemoryBoard
	cards      map[string]models.MemoryCard // by card ID
	faceUp     []string
	matched    map[string]bool
	moves      int
	startedAt  time.Time
	generation int
	timer      *time.Timer
}

func newMemoryRound(board *models.MemoryBoard, startedAt time.Time) *memoryRound {
	cards := make(map[string]models.MemoryCard, len(board.Cards))
	for _, c := range board.Cards {
		cards[c.ID] = c
	}
	return &memoryRound{
		board:     board,
		cards:     cards,
		matched:   make(map[string]bool),
		startedAt: startedAt,
	}
}

// disarm stops a pending flip-back timer and invalidates any that already fired
func (r *memoryRound) disarm() {
	r.generation++
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
}

func (r *memoryRound) isFaceUp(cardID string) bool {
	for _, id := range r.faceUp {
		if id == cardID {
			return true
		}
	}
	return false
}

// Flip turns a card face up for the given player. Flips on matched or already
// face-up cards, and any flip while two cards are showing, are accepted
// no-ops; the board state in the outcome lets the client re-render either way.
// The returned record is non-nil only on the flip that completes the board and
// is the history row for the round.
func (m *Manager) Flip(player *models.Player, cardID string) (*FlipOutcome, *models.AnswerRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	live, ok := m.sessions[player.ID]
	if !ok {
		return nil, nil, ErrNoSession
	}
	if live.memory == nil {
		return nil, nil, ErrNotMemorySession
	}
	session := live.session
	if session.State != models.SessionInProgress {
		return nil, nil, ErrSessionComplete
	}

	r := live.memory
	if _, known := r.cards[cardID]; !known {
		return nil, nil, ErrUnknownCard
	}

	outcome := &FlipOutcome{CardID: cardID, Pairs: r.board.Pairs}

	// third flip, repeat flip, or flip on a matched card: ignore
	if len(r.faceUp) >= 2 || r.matched[cardID] || r.isFaceUp(cardID) {
		m.fillFlipOutcome(outcome, player, r, session)
		return outcome, nil, nil
	}

	outcome.Accepted = true
	r.faceUp = append(r.faceUp, cardID)

	var record *models.AnswerRecord
	if len(r.faceUp) == 2 {
		r.moves++
		first, second := r.cards[r.faceUp[0]], r.cards[r.faceUp[1]]
		if first.PairID == second.PairID {
			outcome.Matched = true
			r.matched[first.ID] = true
			r.matched[second.ID] = true
			r.faceUp = nil

			if len(r.matched) == len(r.cards) {
				record = m.finishMemoryLocked(player, session, r, outcome)
			}
		} else {
			outcome.Mismatch = true
			m.scheduleFlipBack(player.ID, r)
		}
	}

	m.fillFlipOutcome(outcome, player, r, session)
	return outcome, record, nil
}

// scheduleFlipBack arms the auto flip-back for a mismatched pair. The callback
// checks the generation so a round restarted before it fires is untouched.
func (m *Manager) scheduleFlipBack(playerID int64, r *memoryRound) {
	gen := r.generation
	r.timer = m.afterFunc(mismatchFlipDelay, func() {
		m.mu.Lock()
		defer m.mu.Unlock()

		live, ok := m.sessions[playerID]
		if !ok || live.memory == nil || live.memory.generation != gen {
			return
		}
		live.memory.faceUp = nil
		live.memory.timer = nil
	})
}

// finishMemoryLocked awards the completion bonus and closes the session. The
// returned record puts the round into the answer history, so memory play
// counts toward stats, streaks, and achievements like any other activity.
func (m *Manager) finishMemoryLocked(player *models.Player, session *models.ActivitySession, r *memoryRound, outcome *FlipOutcome) *models.AnswerRecord {
	r.disarm()

	done := m.now()
	elapsed := int(done.Sub(r.startedAt).Seconds())
	bonus := memoryBaseBonus
	if extra := memoryMoveBudget - r.moves; extra > 0 {
		bonus += extra
	}
	if extra := memoryTimeBudget - elapsed/10; extra > 0 {
		bonus += extra
	}

	player.Score += bonus
	session.PointsEarned += bonus
	session.CorrectCount = r.board.Pairs
	m.completeLocked(player, session)

	outcome.Completed = true
	outcome.Bonus = bonus

	return &models.AnswerRecord{
		PlayerID:     player.ID,
		SessionID:    session.ID,
		Kind:         session.Kind,
		Correct:      true,
		Attempt:      1,
		LatencyMs:    int(done.Sub(r.startedAt).Milliseconds()),
		PointsEarned: bonus,
		AnsweredAt:   done,
	}
}

func (m *Manager) fillFlipOutcome(outcome *FlipOutcome, player *models.Player, r *memoryRound, session *models.ActivitySession) {
	outcome.FaceUp = append([]string(nil), r.faceUp...)
	outcome.Moves = r.moves
	outcome.Found = len(r.matched) / 2
	outcome.Score = player.Score
	outcome.StageAdvanced = session.StageAdvanced
	outcome.PlantStage = player.PlantStage
	outcome.PlantName = difficulty.StageName(player.PlantStage)
}

package models

import "time"

// SessionState tracks an activity session through its lifecycle
type SessionState int

const (
	SessionIdle SessionState = iota
	SessionInProgress
	SessionComplete
)

func (s SessionState) String() string {
	switch s {
	case SessionInProgress:
		return "in_progress"
	case SessionComplete:
		return "complete"
	default:
		return "idle"
	}
}

// ActivitySession is one playthrough of a generated question batch
type ActivitySession struct {
	ID            string
	PlayerID      int64
	Kind          ActivityKind
	State         SessionState
	Questions     []Question
	QuestionIndex int
	Attempts      int // attempts on the current question
	CorrectCount  int
	PointsEarned  int
	StageAdvanced bool
	StartedAt     time.Time
	CompletedAt   *time.Time
}

// AnswerRecord is one append-only session-history entry.
// Records are strictly ordered by answer time; downstream accuracy and
// latency statistics depend on that order.
type AnswerRecord struct {
	ID            int64
	PlayerID      int64
	SessionID     string
	Kind          ActivityKind
	QuestionIndex int
	Correct       bool
	Attempt       int
	LatencyMs     int
	PointsEarned  int
	AnsweredAt    time.Time
}

// AnswerOutcome is returned to the client after each submitted answer
type AnswerOutcome struct {
	Correct       bool         `json:"correct"`
	PointsEarned  int          `json:"pointsEarned"`
	Score         int          `json:"score"`
	QuestionIndex int          `json:"questionIndex"`
	State         string       `json:"state"`
	StageAdvanced bool         `json:"stageAdvanced"`
	PlantStage    int          `json:"plantStage"`
	PlantName     string       `json:"plantName,omitempty"`
	NextQuestion  *Question    `json:"nextQuestion,omitempty"`
	Achievements  Achievements `json:"achievements"`
}

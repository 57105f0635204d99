package models

import "time"

// Player represents a child's saved garden profile
type Player struct {
	ID          int64
	DisplayName string
	Score       int
	PlantStage  int
	Streak      int
	LastPlayed  *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Achievements Achievements
	Challenge    DailyChallenge
}

// Achievements holds the monotonic award flags; once set they never reset
type Achievements struct {
	First100       bool `json:"first100"`
	Score500       bool `json:"score500"`
	Score1000      bool `json:"score1000"`
	Streak5        bool `json:"streak5"`
	Streak10       bool `json:"streak10"`
	AllGames       bool `json:"all_games"`
	AlphabetMaster bool `json:"alphabet_master"`
	NumbersMaster  bool `json:"numbers_master"`
}

// Merge keeps flags monotonic when combining stored and freshly computed values
func (a Achievements) Merge(other Achievements) Achievements {
	return Achievements{
		First100:       a.First100 || other.First100,
		Score500:       a.Score500 || other.Score500,
		Score1000:      a.Score1000 || other.Score1000,
		Streak5:        a.Streak5 || other.Streak5,
		Streak10:       a.Streak10 || other.Streak10,
		AllGames:       a.AllGames || other.AllGames,
		AlphabetMaster: a.AlphabetMaster || other.AlphabetMaster,
		NumbersMaster:  a.NumbersMaster || other.NumbersMaster,
	}
}

// DailyChallenge is the per-day question target, reset on date rollover
type DailyChallenge struct {
	Date      string `json:"date"` // YYYY-MM-DD
	Target    int    `json:"target"`
	Answered  int    `json:"answered"`
	Completed bool   `json:"completed"`
}

// PlayerStats aggregates a player's answer history
type PlayerStats struct {
	PlayerID          int64
	TotalSessions     int
	QuestionsAnswered int
	CorrectAnswers    int
	WrongAnswers      int
	Accuracy          float64
	ActivitiesPlayed  map[string]int
	LastPlayed        *time.Time
}

// PlayerWithStats combines a profile with its aggregates for the admin view
type PlayerWithStats struct {
	Player Player
	Stats  PlayerStats
}

// SyncUser is the advisory wire shape of the sync gateway contract
type SyncUser struct {
	UserID              string         `json:"userId"`
	Name                string         `json:"name"`
	Activities          map[string]any `json:"activities,omitempty"`
	TotalScore          int            `json:"totalScore"`
	CompletedActivities int            `json:"completedActivities"`
	LastUpdated         time.Time      `json:"lastUpdated"`
	CreatedAt           time.Time      `json:"createdAt"`
}

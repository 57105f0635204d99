package models

// ActivityKind identifies one of the learning activities
type ActivityKind string

const (
	ActivityAlphabet   ActivityKind = "alphabet"
	ActivityPhonics    ActivityKind = "phonics"
	ActivityMatch      ActivityKind = "match"
	ActivityListen     ActivityKind = "listen"
	ActivityNumbers    ActivityKind = "numbers"
	ActivityColors     ActivityKind = "colors"
	ActivityShapes     ActivityKind = "shapes"
	ActivityVocab      ActivityKind = "vocab"
	ActivityMemory     ActivityKind = "memory"
	ActivitySightWords ActivityKind = "sightwords"
	ActivityRhyme      ActivityKind = "rhyme"
	ActivityMath       ActivityKind = "math"
	ActivityPattern    ActivityKind = "pattern"
	ActivityCategory   ActivityKind = "category"
)

// AllActivityKinds lists every activity in presentation order
var AllActivityKinds = []ActivityKind{
	ActivityAlphabet, ActivityPhonics, ActivityMatch, ActivityListen,
	ActivityNumbers, ActivityColors, ActivityShapes, ActivityVocab,
	ActivityMemory, ActivitySightWords, ActivityRhyme, ActivityMath,
	ActivityPattern, ActivityCategory,
}

// IsValidActivityKind reports whether the string names a known activity
func IsValidActivityKind(s string) bool {
	for _, k := range AllActivityKinds {
		if string(k) == s {
			return true
		}
	}
	return false
}

// Question is one generated prompt. Kind selects which auxiliary payload is
// populated; for every kind except memory, Target appears in Options exactly once.
type Question struct {
	Kind      ActivityKind `json:"kind"`
	Prompt    string       `json:"prompt"`
	Target    string       `json:"target"`
	Options   []string     `json:"options"`
	Narration string       `json:"narration"`
	Icon      string       `json:"icon,omitempty"`

	OptionIcons []string      `json:"optionIcons,omitempty"` // vocab, shapes, numbers
	ColorHex    string        `json:"colorHex,omitempty"`    // colors
	Hint        string        `json:"hint,omitempty"`        // pattern
	Count       *CountPayload `json:"count,omitempty"`       // numbers
	Memory      *MemoryBoard  `json:"memory,omitempty"`      // memory
}

// HasTargetOption reports whether Target occurs in Options exactly once
func (q *Question) HasTargetOption() bool {
	n := 0
	for _, opt := range q.Options {
		if opt == q.Target {
			n++
		}
	}
	return n == 1
}

// CountPayload backs the on-demand "count the objects" modal for number questions
type CountPayload struct {
	ButtonText string   `json:"buttonText"`
	ModalTitle string   `json:"modalTitle"`
	Objects    []string `json:"objects"`
}

// MemoryCard is one face-down card on a memory board
type MemoryCard struct {
	ID      string `json:"id"`
	PairID  string `json:"pairId"`
	Display string `json:"display"`
	Label   string `json:"label"`
}

// MemoryBoard is the full card layout for one memory round
type MemoryBoard struct {
	Pairs         int          `json:"pairs"`
	Cards         []MemoryCard `json:"cards"`
	PreviewMillis int          `json:"previewMillis"`
}

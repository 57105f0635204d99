package difficulty

import "testing"

func TestStageTablesAligned(t *testing.T) {
	if len(stageNames) != len(stageEmojis) {
		t.Fatalf("names and emojis out of sync: %d vs %d", len(stageNames), len(stageEmojis))
	}
	if len(scoreTargets) != len(stageNames) {
		t.Fatalf("score targets out of sync: %d vs %d", len(scoreTargets), len(stageNames))
	}
	for i := 1; i < len(scoreTargets); i++ {
		if scoreTargets[i] <= scoreTargets[i-1] {
			t.Errorf("score target %d (%d) not above previous (%d)", i, scoreTargets[i], scoreTargets[i-1])
		}
	}
}

func TestCanAdvance(t *testing.T) {
	tests := []struct {
		name  string
		stage int
		score int
		want  bool
	}{
		{"below first target", 0, 49, false},
		{"at first target", 0, 50, true},
		{"above first target", 0, 300, true},
		{"mid stage short", 5, 499, false},
		{"mid stage exact", 5, 500, true},
		{"max stage never advances", MaxStage(), 1_000_000, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanAdvance(tt.stage, tt.score); got != tt.want {
				t.Errorf("CanAdvance(%d, %d) = %v, want %v", tt.stage, tt.score, got, tt.want)
			}
		})
	}
}

func TestStageLookupsSaturate(t *testing.T) {
	if StageName(-1) != stageNames[0] {
		t.Error("negative stage should clamp to first")
	}
	if StageName(999) != stageNames[MaxStage()] {
		t.Error("overflowing stage should clamp to last")
	}
	if StageEmoji(0) == "" || StageEmoji(MaxStage()) == "" {
		t.Error("stage emojis must be non-empty")
	}
}

package difficulty

import "testing"

func TestForStageMonotonic(t *testing.T) {
	prev := ForStage(0)
	for stage := 1; stage < 25; stage++ {
		cur := ForStage(stage)
		checks := []struct {
			name       string
			prev, curr int
		}{
			{"AlphabetLetters", prev.AlphabetLetters, cur.AlphabetLetters},
			{"PhonicsMaxLevel", prev.PhonicsMaxLevel, cur.PhonicsMaxLevel},
			{"MatchMaxLevel", prev.MatchMaxLevel, cur.MatchMaxLevel},
			{"VocabMaxLevel", prev.VocabMaxLevel, cur.VocabMaxLevel},
			{"RhymeMaxLevel", prev.RhymeMaxLevel, cur.RhymeMaxLevel},
			{"SightMaxLevel", prev.SightMaxLevel, cur.SightMaxLevel},
			{"PatternMaxTier", prev.PatternMaxTier, cur.PatternMaxTier},
			{"ListenMaxNumber", prev.ListenMaxNumber, cur.ListenMaxNumber},
			{"CountMaxNumber", prev.CountMaxNumber, cur.CountMaxNumber},
			{"MathMaxNumber", prev.MathMaxNumber, cur.MathMaxNumber},
			{"ColorPoolSize", prev.ColorPoolSize, cur.ColorPoolSize},
			{"ShapeOptions", prev.ShapeOptions, cur.ShapeOptions},
			{"VocabOptions", prev.VocabOptions, cur.VocabOptions},
			{"SightCount", prev.SightCount, cur.SightCount},
			{"MemoryPairs", prev.MemoryPairs, cur.MemoryPairs},
		}
		for _, c := range checks {
			if c.curr < c.prev {
				t.Errorf("stage %d: %s decreased (%d -> %d)", stage, c.name, c.prev, c.curr)
			}
		}
		if prev.Subtraction && !cur.Subtraction {
			t.Errorf("stage %d: subtraction revoked", stage)
		}
		if prev.Multiplication && !cur.Multiplication {
			t.Errorf("stage %d: multiplication revoked", stage)
		}
		prev = cur
	}
}

func TestForStageBoundaries(t *testing.T) {
	tests := []struct {
		stage    int
		letters  int
		phonics  int
		memory   int
		subtract bool
		multiply bool
	}{
		{-5, 13, 1, 2, false, false},
		{0, 13, 1, 2, false, false},
		{2, 13, 1, 3, false, false},
		{3, 19, 2, 3, true, false},
		{6, 26, 3, 6, true, false},
		{10, 26, 3, 10, true, true},
		{19, 26, 3, 12, true, true},
		{100, 26, 3, 12, true, true},
	}
	for _, tt := range tests {
		lim := ForStage(tt.stage)
		if lim.AlphabetLetters != tt.letters {
			t.Errorf("stage %d: letters = %d, want %d", tt.stage, lim.AlphabetLetters, tt.letters)
		}
		if lim.PhonicsMaxLevel != tt.phonics {
			t.Errorf("stage %d: phonics = %d, want %d", tt.stage, lim.PhonicsMaxLevel, tt.phonics)
		}
		if lim.MemoryPairs != tt.memory {
			t.Errorf("stage %d: memory pairs = %d, want %d", tt.stage, lim.MemoryPairs, tt.memory)
		}
		if lim.Subtraction != tt.subtract {
			t.Errorf("stage %d: subtraction = %v", tt.stage, lim.Subtraction)
		}
		if lim.Multiplication != tt.multiply {
			t.Errorf("stage %d: multiplication = %v", tt.stage, lim.Multiplication)
		}
	}
}

func TestListenNumberCaps(t *testing.T) {
	if got := ForStage(0).ListenMaxNumber; got != 5 {
		t.Errorf("stage 0 listen max = %d, want 5", got)
	}
	if got := ForStage(19).ListenMaxNumber; got != 50 {
		t.Errorf("stage 19 listen max = %d, want 50", got)
	}
}

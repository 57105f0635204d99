package content

import "testing"

func TestPhonicsCoversAlphabet(t *testing.T) {
	if len(Phonics) != len(Alphabet) {
		t.Fatalf("phonics table has %d entries for %d letters", len(Phonics), len(Alphabet))
	}
	seen := map[string]bool{}
	for _, e := range Phonics {
		if e.Letter == "" || e.Sound == "" || e.Word == "" || e.Icon == "" {
			t.Errorf("incomplete phonics entry: %+v", e)
		}
		if e.Level < 1 || e.Level > 3 {
			t.Errorf("phonics %s: level %d out of range", e.Letter, e.Level)
		}
		if seen[e.Letter] {
			t.Errorf("duplicate phonics letter %s", e.Letter)
		}
		seen[e.Letter] = true
	}
}

func TestConfusablesStayInAlphabet(t *testing.T) {
	letters := map[string]bool{}
	for _, r := range Alphabet {
		letters[string(r)] = true
	}
	for letter, similar := range ConfusableLetters {
		if !letters[letter] {
			t.Errorf("confusable key %q is not a letter", letter)
		}
		for _, s := range similar {
			if !letters[s] {
				t.Errorf("confusable %q -> %q is not a letter", letter, s)
			}
			if s == letter {
				t.Errorf("letter %q lists itself as confusable", letter)
			}
		}
	}
}

func TestLeveledPoolsStartAtLevelOne(t *testing.T) {
	hasLevelOne := func(name string, levels []int) {
		for _, l := range levels {
			if l == 1 {
				return
			}
		}
		t.Errorf("%s has no level 1 entries", name)
	}

	var vocabLevels []int
	for _, it := range Vocab {
		vocabLevels = append(vocabLevels, it.Level)
	}
	hasLevelOne("vocab", vocabLevels)

	var sightLevels []int
	for _, w := range SightWords {
		sightLevels = append(sightLevels, w.Level)
	}
	hasLevelOne("sight words", sightLevels)

	var rhymeLevels []int
	for _, g := range RhymeGroups {
		rhymeLevels = append(rhymeLevels, g.Level)
	}
	hasLevelOne("rhyme groups", rhymeLevels)

	var patternTiers []int
	for _, p := range Patterns {
		patternTiers = append(patternTiers, p.Tier)
	}
	hasLevelOne("patterns", patternTiers)

	for name, items := range MatchCategories {
		if len(items) == 0 {
			t.Errorf("match category %q is empty", name)
		}
	}
	levelOneMatch := false
	for _, items := range MatchCategories {
		for _, it := range items {
			if it.Level == 1 {
				levelOneMatch = true
			}
		}
	}
	if !levelOneMatch {
		t.Error("no level 1 match items")
	}
}

func TestRhymeGroupsWellFormed(t *testing.T) {
	for _, g := range RhymeGroups {
		if len(g.Rhymes) < 3 {
			t.Errorf("group %s has only %d rhymes", g.Cue, len(g.Rhymes))
		}
		for _, w := range g.Rhymes {
			if w.Word == g.Cue {
				t.Errorf("group %s contains its own cue", g.Cue)
			}
			if w.Word == "" || w.Icon == "" {
				t.Errorf("group %s has incomplete rhyme %+v", g.Cue, w)
			}
		}
	}
}

func TestPatternsWellFormed(t *testing.T) {
	for i, p := range Patterns {
		if len(p.Wrong) < 2 {
			t.Errorf("pattern %d has only %d wrong options", i, len(p.Wrong))
		}
		for _, w := range p.Wrong {
			if w == p.Answer {
				t.Errorf("pattern %d lists its answer as a wrong option", i)
			}
		}
	}
}

func TestNumberWords(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{1, "One"},
		{10, "Ten"},
		{21, "Twenty-one"},
		{50, "Fifty"},
		{51, "51"},
		{0, "0"},
		{-3, "-3"},
	}
	for _, tt := range tests {
		if got := NumberWord(tt.n); got != tt.want {
			t.Errorf("NumberWord(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
	if NumberIcon(3) != "3️⃣" || NumberIcon(10) != "🔟" || NumberIcon(11) != "11" {
		t.Error("number icon lookup broken")
	}
}

func TestSortCategoriesNonEmpty(t *testing.T) {
	for name, items := range SortCategories {
		if len(items) < 4 {
			t.Errorf("sort category %q has only %d items", name, len(items))
		}
	}
}

func TestMemoryPairPoolSize(t *testing.T) {
	// the hardest board deals 12 pairs
	if len(MemoryPairs) < 12 {
		t.Fatalf("memory pool has %d pairs, need at least 12", len(MemoryPairs))
	}
	seen := map[string]bool{}
	for _, p := range MemoryPairs {
		if seen[p.Emoji] {
			t.Errorf("duplicate memory emoji %s", p.Emoji)
		}
		seen[p.Emoji] = true
	}
}

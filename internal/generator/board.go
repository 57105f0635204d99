package generator

import (
	"github.com/google/uuid"

	"kindergarden/internal/content"
	"kindergarden/internal/difficulty"
	"kindergarden/internal/models"
)

// previewMillis is how long the board shows all cards face up before play
const previewMillis = 3000

// memoryBatch deals a single board question; the flip machinery in the game
// package drives it rather than the usual answer flow.
func (g *Generator) memoryBatch(lim difficulty.Limits) []models.Question {
	pairs := lim.MemoryPairs
	if pairs <= 0 {
		return nil
	}
	if pairs > len(content.MemoryPairs) {
		pairs = len(content.MemoryPairs)
	}

	dealt := shuffled(g.rng, content.MemoryPairs)[:pairs]

	cards := make([]models.MemoryCard, 0, pairs*2)
	for _, p := range dealt {
		pairID := uuid.NewString()
		for i := 0; i < 2; i++ {
			cards = append(cards, models.MemoryCard{
				ID:      uuid.NewString(),
				PairID:  pairID,
				Display: p.Emoji,
				Label:   p.Label,
			})
		}
	}
	shuffle(g.rng, cards)

	return []models.Question{{
		Kind:      models.ActivityMemory,
		Prompt:    "Find all the matching pairs!",
		Narration: "Flip the cards and find the pairs",
		Memory: &models.MemoryBoard{
			Pairs:         pairs,
			Cards:         cards,
			PreviewMillis: previewMillis,
		},
	}}
}

func (g *Generator) patternBatch(lim difficulty.Limits) []models.Question {
	var pool []content.Pattern
	for _, p := range content.Patterns {
		if p.Tier <= lim.PatternMaxTier {
			pool = append(pool, p)
		}
	}
	if len(pool) == 0 {
		return nil
	}

	batch := shuffled(g.rng, pool)
	if len(batch) > patternBatchSize {
		batch = batch[:patternBatchSize]
	}

	questions := make([]models.Question, 0, len(batch))
	for _, p := range batch {
		questions = append(questions, models.Question{
			Kind:      models.ActivityPattern,
			Prompt:    p.Sequence,
			Target:    p.Answer,
			Options:   buildOptions(g.rng, p.Answer, p.Wrong, nil, 4),
			Narration: "What comes next in the pattern?",
			Hint:      p.Shape,
		})
	}
	return questions
}

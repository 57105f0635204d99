// Package generator turns the static content pools into per-activity question
// batches, scaled by the difficulty limits for the player's growth stage.
package generator

import (
	"math/rand"
	"time"

	"kindergarden/internal/difficulty"
	"kindergarden/internal/models"
)

// Batch sizes per activity. Listen and numbers draw fewer targets because
// their pools are numeric ranges rather than curated lists.
const (
	defaultBatchSize = 5
	numericBatchSize = 4
	patternBatchSize = 6
	sortBatchSize    = 6
)

// sampleRetryLimit bounds the reject-and-retry loops so a pool smaller than
// the batch degrades to repeats instead of spinning.
const sampleRetryLimit = 40

// Generator produces question batches. It is safe for a single session at a
// time; callers wanting reproducible output inject their own rand source.
type Generator struct {
	rng *rand.Rand
}

// New creates a generator seeded from the clock
func New() *Generator {
	return NewWithRand(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewWithRand creates a generator using the given source, for deterministic tests
func NewWithRand(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// Batch generates a fresh question sequence for the activity at the given
// limits. An exhausted or misconfigured pool yields an empty batch, never an
// error; the session controller treats that as "activity unavailable".
func (g *Generator) Batch(kind models.ActivityKind, lim difficulty.Limits) []models.Question {
	switch kind {
	case models.ActivityAlphabet:
		return g.alphabetBatch(lim)
	case models.ActivityPhonics:
		return g.phonicsBatch(lim)
	case models.ActivityMatch:
		return g.matchBatch(lim)
	case models.ActivityListen:
		return g.listenBatch(lim)
	case models.ActivityNumbers:
		return g.numbersBatch(lim)
	case models.ActivityColors:
		return g.colorsBatch(lim)
	case models.ActivityShapes:
		return g.shapesBatch(lim)
	case models.ActivityVocab:
		return g.vocabBatch(lim)
	case models.ActivityMemory:
		return g.memoryBatch(lim)
	case models.ActivitySightWords:
		return g.sightWordsBatch(lim)
	case models.ActivityRhyme:
		return g.rhymeBatch(lim)
	case models.ActivityMath:
		return g.mathBatch(lim)
	case models.ActivityPattern:
		return g.patternBatch(lim)
	case models.ActivityCategory:
		return g.sortBatch(lim)
	default:
		return nil
	}
}

// shuffle is an in-place Fisher-Yates shuffle. The original client shuffled
// with a random comparator, which is statistically biased; this replaces it.
func shuffle[T any](rng *rand.Rand, s []T) {
	for i := len(s) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}

// shuffled returns a shuffled copy, leaving the pool table untouched
func shuffled[T any](rng *rand.Rand, s []T) []T {
	out := make([]T, len(s))
	copy(out, s)
	shuffle(rng, out)
	return out
}

func pick[T any](rng *rand.Rand, s []T) T {
	return s[rng.Intn(len(s))]
}

// buildOptions assembles the option set for a question: the target, then
// preferred (confusable) distractors, then random draws from the remaining
// pool, deduplicated, capped at optionCount, and shuffled.
func buildOptions(rng *rand.Rand, target string, preferred, pool []string, optionCount int) []string {
	seen := map[string]bool{target: true}
	options := []string{target}

	for _, p := range preferred {
		if len(options) >= optionCount {
			break
		}
		if p != "" && !seen[p] {
			seen[p] = true
			options = append(options, p)
		}
	}

	for _, p := range shuffled(rng, pool) {
		if len(options) >= optionCount {
			break
		}
		if p != "" && !seen[p] {
			seen[p] = true
			options = append(options, p)
		}
	}

	shuffle(rng, options)
	return options
}

// filterTo keeps only the preferred values that are also in pool, so
// distractors never leak past the unlocked portion of a content table.
func filterTo(preferred, pool []string) []string {
	in := make(map[string]bool, len(pool))
	for _, p := range pool {
		in[p] = true
	}
	var out []string
	for _, p := range preferred {
		if in[p] {
			out = append(out, p)
		}
	}
	return out
}

// usedSet tracks targets already drawn in a batch so repeats only happen once
// the distinct pool is exhausted.
type usedSet struct {
	seen map[string]bool
}

func newUsedSet() *usedSet {
	return &usedSet{seen: make(map[string]bool)}
}

// draw repeatedly invokes next until it returns an unused value, giving up
// (and allowing a repeat) after sampleRetryLimit tries or once poolSize
// distinct values have been drawn.
func (u *usedSet) draw(poolSize int, next func() string) string {
	var v string
	for i := 0; i < sampleRetryLimit; i++ {
		v = next()
		if !u.seen[v] || len(u.seen) >= poolSize {
			break
		}
	}
	u.seen[v] = true
	return v
}

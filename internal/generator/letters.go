package generator

import (
	"fmt"

	"kindergarden/internal/content"
	"kindergarden/internal/difficulty"
	"kindergarden/internal/models"
)

func (g *Generator) alphabetBatch(lim difficulty.Limits) []models.Question {
	n := lim.AlphabetLetters
	if n <= 0 {
		return nil
	}
	if n > len(content.Alphabet) {
		n = len(content.Alphabet)
	}

	pool := make([]string, n)
	for i := 0; i < n; i++ {
		pool[i] = string(content.Alphabet[i])
	}

	size := defaultBatchSize
	used := newUsedSet()
	questions := make([]models.Question, 0, size)
	for i := 0; i < size; i++ {
		target := used.draw(n, func() string { return pick(g.rng, pool) })
		questions = append(questions, models.Question{
			Kind:      models.ActivityAlphabet,
			Prompt:    fmt.Sprintf("%s %s", pick(g.rng, content.AlphabetPrompts), target),
			Target:    target,
			Options:   buildOptions(g.rng, target, filterTo(content.ConfusableLetters[target], pool), pool, 4),
			Narration: fmt.Sprintf("Find the letter %s", target),
		})
	}
	return questions
}

func (g *Generator) phonicsBatch(lim difficulty.Limits) []models.Question {
	var entries []content.PhonicsEntry
	for _, e := range content.Phonics {
		if e.Level <= lim.PhonicsMaxLevel {
			entries = append(entries, e)
		}
	}
	if len(entries) == 0 {
		return nil
	}

	letters := make([]string, len(entries))
	for i, e := range entries {
		letters[i] = e.Letter
	}

	batch := shuffled(g.rng, entries)
	if len(batch) > defaultBatchSize {
		batch = batch[:defaultBatchSize]
	}

	questions := make([]models.Question, 0, len(batch))
	for _, e := range batch {
		questions = append(questions, models.Question{
			Kind:      models.ActivityPhonics,
			Prompt:    fmt.Sprintf("%s %s sound", pick(g.rng, content.PhonicsPrompts), e.Sound),
			Target:    e.Letter,
			Options:   buildOptions(g.rng, e.Letter, filterTo(content.ConfusableLetters[e.Letter], letters), letters, 4),
			Narration: fmt.Sprintf("%s is for %s", e.Letter, e.Word),
			Icon:      e.Icon,
		})
	}
	return questions
}

func (g *Generator) sightWordsBatch(lim difficulty.Limits) []models.Question {
	var words []string
	for _, w := range content.SightWords {
		if w.Level <= lim.SightMaxLevel {
			words = append(words, w.Word)
		}
	}
	if len(words) == 0 || lim.SightCount <= 0 {
		return nil
	}

	batch := shuffled(g.rng, words)
	if len(batch) > lim.SightCount {
		batch = batch[:lim.SightCount]
	}

	questions := make([]models.Question, 0, len(batch))
	for _, w := range batch {
		questions = append(questions, models.Question{
			Kind:      models.ActivitySightWords,
			Prompt:    "Tap the word you hear",
			Target:    w,
			Options:   buildOptions(g.rng, w, nil, words, 4),
			Narration: fmt.Sprintf("Find the word %s", w),
		})
	}
	return questions
}

func (g *Generator) rhymeBatch(lim difficulty.Limits) []models.Question {
	var groups []content.RhymeGroup
	for _, grp := range content.RhymeGroups {
		if grp.Level <= lim.RhymeMaxLevel {
			groups = append(groups, grp)
		}
	}
	if len(groups) == 0 {
		return nil
	}

	batch := shuffled(g.rng, groups)
	if len(batch) > defaultBatchSize {
		batch = batch[:defaultBatchSize]
	}

	questions := make([]models.Question, 0, len(batch))
	for _, grp := range batch {
		answer := pick(g.rng, grp.Rhymes)

		// Distractors come from other groups, so no wrong option rhymes
		// with the cue.
		var others []content.RhymeWord
		for _, o := range groups {
			if o.Cue == grp.Cue {
				continue
			}
			others = append(others, o.Rhymes...)
		}

		options := []content.RhymeWord{answer}
		for _, w := range shuffled(g.rng, others) {
			if len(options) >= 4 {
				break
			}
			options = append(options, w)
		}
		shuffle(g.rng, options)

		labels := make([]string, len(options))
		icons := make([]string, len(options))
		for i, w := range options {
			labels[i] = w.Word
			icons[i] = w.Icon
		}

		questions = append(questions, models.Question{
			Kind:        models.ActivityRhyme,
			Prompt:      fmt.Sprintf("What rhymes with %s?", grp.Cue),
			Target:      answer.Word,
			Options:     labels,
			OptionIcons: icons,
			Narration:   fmt.Sprintf("Which word rhymes with %s?", grp.Cue),
			Icon:        grp.Icon,
		})
	}
	return questions
}

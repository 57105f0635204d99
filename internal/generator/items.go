package generator

import (
	"fmt"

	"kindergarden/internal/content"
	"kindergarden/internal/difficulty"
	"kindergarden/internal/models"
)

// itemOptions builds a label/icon option pair for picture questions: the
// target item plus distractors drawn from pool, deduplicated by label.
func itemOptions(g *Generator, target content.Item, pool []content.Item, optionCount int) ([]string, []string) {
	seen := map[string]bool{target.Label: true}
	options := []content.Item{target}

	for _, it := range shuffled(g.rng, pool) {
		if len(options) >= optionCount {
			break
		}
		if !seen[it.Label] {
			seen[it.Label] = true
			options = append(options, it)
		}
	}
	shuffle(g.rng, options)

	labels := make([]string, len(options))
	icons := make([]string, len(options))
	for i, it := range options {
		labels[i] = it.Label
		icons[i] = it.Icon
	}
	return labels, icons
}

func (g *Generator) matchBatch(lim difficulty.Limits) []models.Question {
	var pool []content.Item
	for _, items := range content.MatchCategories {
		for _, it := range items {
			if it.Level <= lim.MatchMaxLevel {
				pool = append(pool, it)
			}
		}
	}
	if len(pool) == 0 {
		return nil
	}

	batch := shuffled(g.rng, pool)
	if len(batch) > defaultBatchSize {
		batch = batch[:defaultBatchSize]
	}

	questions := make([]models.Question, 0, len(batch))
	for _, it := range batch {
		labels, icons := itemOptions(g, it, pool, 4)
		questions = append(questions, models.Question{
			Kind:        models.ActivityMatch,
			Prompt:      fmt.Sprintf("%s %s", pick(g.rng, content.MatchPrompts), it.Label),
			Target:      it.Label,
			Options:     labels,
			OptionIcons: icons,
			Narration:   fmt.Sprintf("Find the %s", it.Label),
		})
	}
	return questions
}

func (g *Generator) vocabBatch(lim difficulty.Limits) []models.Question {
	var pool []content.Item
	for _, it := range content.Vocab {
		if it.Level <= lim.VocabMaxLevel {
			pool = append(pool, it)
		}
	}
	if len(pool) == 0 {
		return nil
	}

	batch := shuffled(g.rng, pool)
	if len(batch) > defaultBatchSize {
		batch = batch[:defaultBatchSize]
	}

	questions := make([]models.Question, 0, len(batch))
	for _, it := range batch {
		labels, _ := itemOptions(g, it, pool, lim.VocabOptions)
		questions = append(questions, models.Question{
			Kind:      models.ActivityVocab,
			Prompt:    "What is this?",
			Target:    it.Label,
			Options:   labels,
			Narration: fmt.Sprintf("This is a %s", it.Label),
			Icon:      it.Icon,
		})
	}
	return questions
}

func (g *Generator) colorsBatch(lim difficulty.Limits) []models.Question {
	n := lim.ColorPoolSize
	if n <= 0 {
		return nil
	}
	if n > len(content.Colors) {
		n = len(content.Colors)
	}
	pool := content.Colors[:n]

	names := make([]string, n)
	for i, c := range pool {
		names[i] = c.Name
	}

	batch := shuffled(g.rng, pool)
	if len(batch) > defaultBatchSize {
		batch = batch[:defaultBatchSize]
	}

	questions := make([]models.Question, 0, len(batch))
	for _, c := range batch {
		questions = append(questions, models.Question{
			Kind:      models.ActivityColors,
			Prompt:    "What color is this?",
			Target:    c.Name,
			Options:   buildOptions(g.rng, c.Name, nil, names, 4),
			Narration: fmt.Sprintf("Find the color %s", c.Name),
			ColorHex:  c.Hex,
		})
	}
	return questions
}

func (g *Generator) shapesBatch(lim difficulty.Limits) []models.Question {
	pool := content.Shapes
	if len(pool) == 0 || lim.ShapeOptions <= 0 {
		return nil
	}

	names := make([]string, len(pool))
	for i, s := range pool {
		names[i] = s.Name
	}

	batch := shuffled(g.rng, pool)
	if len(batch) > defaultBatchSize {
		batch = batch[:defaultBatchSize]
	}

	questions := make([]models.Question, 0, len(batch))
	for _, s := range batch {
		questions = append(questions, models.Question{
			Kind:      models.ActivityShapes,
			Prompt:    "What shape is this?",
			Target:    s.Name,
			Options:   buildOptions(g.rng, s.Name, nil, names, lim.ShapeOptions),
			Narration: fmt.Sprintf("This is a %s", s.Name),
			Icon:      s.Icon,
		})
	}
	return questions
}

func (g *Generator) sortBatch(lim difficulty.Limits) []models.Question {
	if lim.MatchMaxLevel <= 0 {
		return nil
	}
	categories := make([]string, 0, len(content.SortCategories))
	for name := range content.SortCategories {
		categories = append(categories, name)
	}
	if len(categories) == 0 {
		return nil
	}

	used := newUsedSet()
	questions := make([]models.Question, 0, sortBatchSize)
	for i := 0; i < sortBatchSize; i++ {
		var category string
		var target content.Item
		used.draw(totalSortItems(), func() string {
			category = pick(g.rng, categories)
			members := content.SortCategories[category]
			target = members[g.rng.Intn(len(members))]
			return category + "/" + target.Label
		})

		// Wrong options come from other categories, so only the target
		// belongs to the asked-for category.
		var others []content.Item
		for name, items := range content.SortCategories {
			if name == category {
				continue
			}
			others = append(others, items...)
		}
		labels, icons := itemOptions(g, target, others, 4)

		questions = append(questions, models.Question{
			Kind:        models.ActivityCategory,
			Prompt:      fmt.Sprintf(pick(g.rng, content.SortPrompts), category),
			Target:      target.Label,
			Options:     labels,
			OptionIcons: icons,
			Narration:   fmt.Sprintf("Find the %s", category),
		})
	}
	return questions
}

func totalSortItems() int {
	n := 0
	for _, items := range content.SortCategories {
		n += len(items)
	}
	return n
}

package generator

import (
	"fmt"
	"strconv"

	"kindergarden/internal/content"
	"kindergarden/internal/difficulty"
	"kindergarden/internal/models"
)

// numberOptions builds numeric options around the answer: neighbors first,
// then wider offsets, clamped to [1, max].
func numberOptions(g *Generator, answer, max, optionCount int) []string {
	if max < answer {
		max = answer
	}

	var preferred []string
	for _, off := range []int{-1, 1, -2, 2, -3, 3} {
		v := answer + off
		if v >= 1 && v <= max {
			preferred = append(preferred, strconv.Itoa(v))
		}
	}
	shuffle(g.rng, preferred)

	pool := make([]string, 0, max)
	for v := 1; v <= max; v++ {
		pool = append(pool, strconv.Itoa(v))
	}

	return buildOptions(g.rng, strconv.Itoa(answer), preferred, pool, optionCount)
}

func (g *Generator) listenBatch(lim difficulty.Limits) []models.Question {
	max := lim.ListenMaxNumber
	if max <= 0 {
		return nil
	}

	used := newUsedSet()
	questions := make([]models.Question, 0, numericBatchSize)
	for i := 0; i < numericBatchSize; i++ {
		target := used.draw(max, func() string {
			return strconv.Itoa(1 + g.rng.Intn(max))
		})
		n, _ := strconv.Atoi(target)

		questions = append(questions, models.Question{
			Kind:      models.ActivityListen,
			Prompt:    "Listen and tap the number",
			Target:    target,
			Options:   numberOptions(g, n, max, 4),
			Narration: fmt.Sprintf(pick(g.rng, content.ListenNarrations), content.NumberWord(n)),
		})
	}
	return questions
}

func (g *Generator) numbersBatch(lim difficulty.Limits) []models.Question {
	max := lim.CountMaxNumber
	if max <= 0 {
		return nil
	}

	used := newUsedSet()
	questions := make([]models.Question, 0, numericBatchSize)
	for i := 0; i < numericBatchSize; i++ {
		target := used.draw(max, func() string {
			return strconv.Itoa(1 + g.rng.Intn(max))
		})
		n, _ := strconv.Atoi(target)
		obj := pick(g.rng, content.CountableObjects)

		objects := make([]string, n)
		for j := range objects {
			objects[j] = obj.Icon
		}

		questions = append(questions, models.Question{
			Kind:      models.ActivityNumbers,
			Prompt:    pick(g.rng, content.CountPrompts),
			Target:    target,
			Options:   numberOptions(g, n, max, 4),
			Narration: pick(g.rng, content.CountNarrations),
			Icon:      obj.Icon,
			Count: &models.CountPayload{
				ButtonText: fmt.Sprintf("Count the %s", obj.Name),
				ModalTitle: fmt.Sprintf("Count the %s!", obj.Name),
				Objects:    objects,
			},
		})
	}
	return questions
}

// mathProblem is an arithmetic question before option assembly
type mathProblem struct {
	a, b   int
	op     string
	word   string
	answer int
}

func (g *Generator) mathProblem(lim difficulty.Limits) mathProblem {
	max := lim.MathMaxNumber

	ops := []string{"+"}
	if lim.Subtraction {
		ops = append(ops, "-")
	}
	if lim.Multiplication {
		ops = append(ops, "x")
	}

	switch pick(g.rng, ops) {
	case "-":
		a := 1 + g.rng.Intn(max)
		b := 1 + g.rng.Intn(a) // keep results non-negative
		return mathProblem{a, b, "-", "minus", a - b}
	case "x":
		factorMax := max
		if factorMax > 10 {
			factorMax = 10
		}
		a := 1 + g.rng.Intn(factorMax)
		b := 1 + g.rng.Intn(factorMax)
		return mathProblem{a, b, "x", "times", a * b}
	default:
		a := 1 + g.rng.Intn(max)
		b := 1 + g.rng.Intn(max)
		return mathProblem{a, b, "+", "plus", a + b}
	}
}

func (g *Generator) mathBatch(lim difficulty.Limits) []models.Question {
	if lim.MathMaxNumber <= 0 {
		return nil
	}

	used := newUsedSet()
	questions := make([]models.Question, 0, defaultBatchSize)
	for i := 0; i < defaultBatchSize; i++ {
		var p mathProblem
		used.draw(lim.MathMaxNumber*lim.MathMaxNumber, func() string {
			p = g.mathProblem(lim)
			return fmt.Sprintf("%d%s%d", p.a, p.op, p.b)
		})

		// distractors cluster near the answer
		optMax := p.answer + 3

		questions = append(questions, models.Question{
			Kind:      models.ActivityMath,
			Prompt:    fmt.Sprintf("%d %s %d = ?", p.a, p.op, p.b),
			Target:    strconv.Itoa(p.answer),
			Options:   numberOptions(g, p.answer, optMax, 4),
			Narration: fmt.Sprintf("What is %s %s %s?", content.NumberWord(p.a), p.word, content.NumberWord(p.b)),
		})
	}
	return questions
}

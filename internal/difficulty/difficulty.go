package difficulty

// Limits holds the content-pool bounds unlocked at a growth stage. Each field
// is a non-decreasing step function of the stage; stages beyond the last step
// saturate at the final value.
type Limits struct {
	AlphabetLetters int // how far into A-Z the alphabet pool extends

	PhonicsMaxLevel int // 1..3, filters the phonics table
	MatchMaxLevel   int // 1..3, gates match categories
	VocabMaxLevel   int // 1..3
	RhymeMaxLevel   int // 1..3
	SightMaxLevel   int // 1..4
	PatternMaxTier  int // 1..3

	ListenMaxNumber int // highest number narrated in listen questions
	CountMaxNumber  int // highest countable number
	MathMaxNumber   int // largest operand in math questions
	Subtraction     bool
	Multiplication  bool

	ColorPoolSize int // how many named colors are in play
	ShapeOptions  int // distractor count for shape questions
	VocabOptions  int // option count for vocab questions
	SightCount    int // sight-word batch size
	MemoryPairs   int // pairs dealt on the memory board
}

type step struct {
	stage int
	limit int
}

// value returns the limit of the highest step at or below stage.
// Tables are ordered by ascending stage; the first entry covers stage 0.
func value(steps []step, stage int) int {
	v := steps[0].limit
	for _, s := range steps {
		if stage >= s.stage {
			v = s.limit
		}
	}
	return v
}

var (
	alphabetSteps = []step{{0, 13}, {3, 19}, {6, 26}}
	phonicsSteps  = []step{{0, 1}, {3, 2}, {6, 3}}
	matchSteps    = []step{{0, 1}, {3, 2}, {6, 3}}
	vocabSteps    = []step{{0, 1}, {3, 2}, {7, 3}}
	rhymeSteps    = []step{{0, 1}, {4, 2}, {8, 3}}
	sightSteps    = []step{{0, 1}, {3, 2}, {6, 3}, {10, 4}}
	patternSteps  = []step{{0, 1}, {5, 2}, {10, 3}}

	countSteps = []step{{0, 10}, {2, 15}, {4, 20}, {7, 30}, {10, 50}}
	mathSteps  = []step{{0, 5}, {3, 10}, {7, 15}, {10, 20}, {13, 25}}

	shapeOptSteps = []step{{0, 3}, {5, 4}, {10, 5}}
	vocabOptSteps = []step{{0, 4}, {5, 5}}
	sightCntSteps = []step{{0, 4}, {5, 6}, {8, 8}, {12, 10}}
	memorySteps   = []step{{0, 2}, {2, 3}, {4, 4}, {6, 6}, {8, 8}, {10, 10}, {13, 12}}
)

const (
	subtractionStage    = 3
	multiplicationStage = 10
	maxListenNumber     = 50
	maxColorPool        = 7
)

// ForStage returns the limits unlocked at the given growth stage.
// Negative stages are treated as stage 0; there are no error conditions.
func ForStage(stage int) Limits {
	if stage < 0 {
		stage = 0
	}

	listen := 5 + stage*3
	if listen > maxListenNumber {
		listen = maxListenNumber
	}

	colors := 5 + stage/3
	if colors > maxColorPool {
		colors = maxColorPool
	}

	return Limits{
		AlphabetLetters: value(alphabetSteps, stage),
		PhonicsMaxLevel: value(phonicsSteps, stage),
		MatchMaxLevel:   value(matchSteps, stage),
		VocabMaxLevel:   value(vocabSteps, stage),
		RhymeMaxLevel:   value(rhymeSteps, stage),
		SightMaxLevel:   value(sightSteps, stage),
		PatternMaxTier:  value(patternSteps, stage),
		ListenMaxNumber: listen,
		CountMaxNumber:  value(countSteps, stage),
		MathMaxNumber:   value(mathSteps, stage),
		Subtraction:     stage >= subtractionStage,
		Multiplication:  stage >= multiplicationStage,
		ColorPoolSize:   colors,
		ShapeOptions:    value(shapeOptSteps, stage),
		VocabOptions:    value(vocabOptSteps, stage),
		SightCount:      value(sightCntSteps, stage),
		MemoryPairs:     value(memorySteps, stage),
	}
}

package difficulty

// Plant growth tables. A player's plant stage is the index into these lists;
// stage advances when the cumulative score reaches the target for the current
// stage, at most one stage per completed activity.

var stageEmojis = []string{
	"🌱", "🌿", "🌼", "🌳", "🎋", "🌲", "🌴", "🌵", "🌾", "🌻",
	"🌺", "🌷", "🌹", "🏵️", "💐", "🌸", "🌞", "🌛", "⭐", "🌟",
}

var stageNames = []string{
	"Baby Seed", "Sprout", "Flower", "Tree", "Magic Tree",
	"Pine Tree", "Palm Tree", "Cactus", "Wheat", "Sunflower",
	"Hibiscus", "Tulip", "Rose", "Poppy", "Bouquet",
	"Cherry Blossom", "Sun Guardian", "Moon Keeper", "Star Seed", "Super Star",
}

// scoreTargets[s] is the cumulative score required to advance past stage s
var scoreTargets = []int{
	50, 150, 250, 300, 400, 500, 550, 650, 750, 850,
	950, 1000, 1050, 1250, 1350, 1400, 1450, 1550, 1650, 1750,
}

// StageCount returns the number of defined growth stages
func StageCount() int {
	return len(stageNames)
}

// MaxStage is the highest reachable stage index
func MaxStage() int {
	return len(stageNames) - 1
}

func clampStage(stage int) int {
	if stage < 0 {
		return 0
	}
	if stage > MaxStage() {
		return MaxStage()
	}
	return stage
}

// StageName returns the display name for a stage, saturating out-of-range values
func StageName(stage int) string {
	return stageNames[clampStage(stage)]
}

// StageEmoji returns the plant emoji for a stage
func StageEmoji(stage int) string {
	return stageEmojis[clampStage(stage)]
}

// ScoreTarget returns the cumulative score needed to advance past the given stage
func ScoreTarget(stage int) int {
	return scoreTargets[clampStage(stage)]
}

// CanAdvance reports whether a score is enough to grow past the given stage
func CanAdvance(stage, score int) bool {
	return stage < MaxStage() && score >= ScoreTarget(stage)
}

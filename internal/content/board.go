package content

// Color is a named color for the color-hunt activity. The pool is ordered by
// how early children typically learn the color; difficulty trims it to a prefix.
type Color struct {
	Name string
	Hex  string
}

// Colors is the ordered color pool
var Colors = []Color{
	{"Red", "#ff0000"},
	{"Blue", "#0000ff"},
	{"Yellow", "#ffff00"},
	{"Green", "#00ff00"},
	{"Orange", "#ff8800"},
	{"Purple", "#800080"},
	{"Pink", "#ff69b4"},
}

// Shape is a basic shape for the shape-quest activity
type Shape struct {
	Name string
	Icon string
}

// Shapes is the shape pool
var Shapes = []Shape{
	{"Circle", "⭕"},
	{"Square", "⬜"},
	{"Triangle", "🔺"},
	{"Star", "⭐"},
	{"Heart", "❤"},
}

// MemoryPair is one emoji/label pair dealt onto the memory board as two cards
type MemoryPair struct {
	Emoji string
	Label string
}

// MemoryPairs is the pool the memory board deals from
var MemoryPairs = []MemoryPair{
	{"🐱", "Cat"}, {"🐶", "Dog"}, {"🐭", "Mouse"}, {"🐰", "Rabbit"},
	{"🐻", "Bear"}, {"🦁", "Lion"}, {"🐟", "Fish"}, {"🦋", "Butterfly"},
	{"🐸", "Frog"}, {"🐦", "Bird"}, {"🍎", "Apple"}, {"🍌", "Banana"},
	{"🍇", "Grapes"}, {"🍉", "Watermelon"}, {"🍓", "Strawberry"},
	{"🍕", "Pizza"}, {"🍦", "Ice Cream"}, {"🍩", "Donut"}, {"🎈", "Balloon"},
	{"🎂", "Cake"}, {"🏀", "Basketball"}, {"⚽", "Soccer Ball"},
	{"🎸", "Guitar"}, {"🎹", "Piano"}, {"🚗", "Car"}, {"✈️", "Airplane"},
	{"🚀", "Rocket"}, {"📱", "Phone"}, {"💻", "Laptop"}, {"🌳", "Tree"},
	{"🌸", "Flower"}, {"🌞", "Sun"}, {"🌙", "Moon"}, {"🌈", "Rainbow"},
	{"⭐", "Star"},
}

// Pattern is one fill-in-the-blank sequence question
type Pattern struct {
	Sequence string // shown to the child, ending in the blank
	Shape    string // e.g. "AB AB", narrated as a hint
	Answer   string
	Wrong    []string
	Tier     int
}

// Patterns is the pattern pool, tiered by stage
var Patterns = []Pattern{
	{"🔴 🟡 🔴 🟡 ?", "AB AB", "🔴", []string{"🟡", "🟢", "⚫"}, 1},
	{"⭐ 🌙 ⭐ 🌙 ?", "AB AB", "⭐", []string{"🌙", "☀️", "🌟"}, 1},
	{"🍎 🍌 🍎 🍌 ?", "AB AB", "🍎", []string{"🍌", "🍊", "🍇"}, 1},
	{"🐱 🐶 🐱 🐶 ?", "AB AB", "🐱", []string{"🐶", "🐭", "🐰"}, 1},
	{"❤️ 💛 ❤️ 💛 ?", "AB AB", "❤️", []string{"💛", "💚", "💜"}, 1},
	{"🎨 📚 🎨 📚 ?", "AB AB", "🎨", []string{"📚", "✏️", "🖍️"}, 1},

	{"🔴 🟡 🟢 🔴 🟡 🟢 ?", "ABC ABC", "🔴", []string{"🟡", "🟢", "⚫"}, 2},
	{"🐱 🐱 🐶 🐱 🐱 🐶 ?", "AAB AAB", "🐱", []string{"🐶", "🐭", "🦁"}, 2},
	{"🌳 🌳 🌳 🌳 🌳 ?", "AAAAA", "🌳", []string{"🌸", "🌲", "🌴"}, 2},
	{"🎈 🎈 🎈 🎈 🎈 ?", "AAAAA", "🎈", []string{"🎉", "🎁", "🎊"}, 2},
	{"🍎 🍎 🍌 🍎 🍎 🍌 ?", "AAB AAB", "🍎", []string{"🍌", "🍊", "🍇"}, 2},
	{"⭐ 💫 ✨ ⭐ 💫 ✨ ?", "ABC ABC", "⭐", []string{"💫", "✨", "🌟"}, 2},

	{"1️⃣ 2️⃣ 1️⃣ 2️⃣ 1️⃣ ?", "AB ABA", "2️⃣", []string{"1️⃣", "3️⃣", "0️⃣"}, 3},
	{"🔴 🟡 🟢 🔴 🟡 🟢 🔴 ?", "ABC ABCA", "🟡", []string{"🔴", "🟢", "🟠"}, 3},
	{"⭐ ⭐ ⭐ 🌙 ⭐ ⭐ ⭐ 🌙 ?", "AAAB AAAB", "⭐", []string{"🌙", "☀️", "🌟"}, 3},
	{"🚗 🚗 🚗 🚂 🚗 🚗 🚗 🚂 ?", "AAAB AAAB", "🚗", []string{"🚂", "✈️", "🚁"}, 3},
	{"🎸 🎹 🥁 🎸 🎹 🥁 ?", "ABC ABC", "🎸", []string{"🎹", "🥁", "🎺"}, 3},
}

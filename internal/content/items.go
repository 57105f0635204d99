package content

// Item is a picturable thing used by the match, vocab, and category activities
type Item struct {
	Icon  string
	Label string
	Level int
}

// MatchCategories groups the match pools by theme. Level gates when the
// category comes into rotation.
var MatchCategories = map[string][]Item{
	"fruits": {
		{"🍎", "Apple", 1}, {"🍌", "Banana", 1}, {"🍊", "Orange", 1},
		{"🍓", "Strawberry", 1}, {"🍇", "Grapes", 1}, {"🍑", "Peach", 1},
		{"🍋", "Lemon", 1}, {"🥝", "Kiwi", 1},
	},
	"animals": {
		{"🐕", "Dog", 1}, {"🐱", "Cat", 1}, {"🐰", "Rabbit", 1},
		{"🐿️", "Squirrel", 1}, {"🦋", "Butterfly", 1}, {"🐢", "Turtle", 1},
		{"🐬", "Dolphin", 1}, {"🦁", "Lion", 1},
	},
	"colors": {
		{"🔴", "Red", 1}, {"🟠", "Orange", 1}, {"🟡", "Yellow", 1},
		{"🟢", "Green", 1}, {"🔵", "Blue", 1}, {"🟣", "Purple", 1},
		{"🟤", "Brown", 1}, {"⚫", "Black", 1},
	},
	"vehicles": {
		{"🚗", "Car", 2}, {"🚂", "Train", 2}, {"✈️", "Airplane", 2},
		{"🚢", "Boat", 2}, {"🚁", "Helicopter", 2}, {"🚀", "Rocket", 2},
		{"🏎️", "Race Car", 2}, {"🚴", "Bicycle", 2},
	},
	"food": {
		{"🍕", "Pizza", 2}, {"🍔", "Burger", 2}, {"🌭", "Hot Dog", 2},
		{"🍝", "Pasta", 2}, {"🍪", "Cookie", 2}, {"🎂", "Cake", 2},
		{"🧁", "Cupcake", 2}, {"🍦", "Ice Cream", 2},
	},
	"nature": {
		{"🌳", "Tree", 2}, {"🌸", "Flower", 2}, {"🌼", "Sunflower", 2},
		{"☀️", "Sun", 2}, {"🌙", "Moon", 2}, {"⭐", "Star", 2},
		{"🌈", "Rainbow", 2}, {"❄️", "Snow", 2},
	},
	"objects": {
		{"🎈", "Balloon", 3}, {"🎯", "Target", 3}, {"🎨", "Painting", 3},
		{"🎸", "Guitar", 3}, {"🎭", "Theater Masks", 3}, {"🎪", "Circus Tent", 3},
		{"📚", "Books", 3}, {"🔑", "Key", 3},
	},
}

// MatchPrompts are interchangeable stems for match questions
var MatchPrompts = []string{
	"Tap the",
	"Find the",
	"Select the",
	"Click on the",
	"Which one is the",
}

// Vocab is the picture-word pool, leveled by stage
var Vocab = []Item{
	{"🐱", "Cat", 1}, {"🐶", "Dog", 1}, {"🐠", "Fish", 1}, {"🐦", "Bird", 1},
	{"🍎", "Apple", 1}, {"🍌", "Banana", 1}, {"⚽", "Ball", 1}, {"☀️", "Sun", 1},
	{"🌙", "Moon", 1}, {"⭐", "Star", 1}, {"🌳", "Tree", 1}, {"🌸", "Flower", 1},
	{"⏰", "Clock", 1}, {"📖", "Book", 1}, {"🚗", "Car", 1},

	{"🐸", "Frog", 2}, {"🐢", "Turtle", 2}, {"🦁", "Lion", 2}, {"🐵", "Monkey", 2},
	{"🐘", "Elephant", 2}, {"🍇", "Grapes", 2}, {"🍊", "Orange", 2},
	{"🍉", "Watermelon", 2}, {"🍓", "Strawberry", 2}, {"🍪", "Cookie", 2},
	{"🪁", "Kite", 2}, {"🧸", "Teddy Bear", 2}, {"🚂", "Train", 2},
	{"✈️", "Airplane", 2}, {"🌈", "Rainbow", 2}, {"☁️", "Cloud", 2},
	{"📱", "Phone", 2}, {"🎸", "Guitar", 2},

	{"🐧", "Penguin", 3}, {"🐴", "Horse", 3}, {"🐰", "Rabbit", 3}, {"🐻", "Bear", 3},
	{"🦀", "Crab", 3}, {"🐙", "Octopus", 3}, {"🍑", "Peach", 3},
	{"🍍", "Pineapple", 3}, {"🍋", "Lemon", 3}, {"🧁", "Cupcake", 3},
	{"🍫", "Chocolate", 3}, {"🎈", "Balloon", 3}, {"🚀", "Rocket", 3},
	{"💻", "Laptop", 3}, {"📷", "Camera", 3}, {"❄️", "Snow", 3},
	{"🔥", "Fire", 3}, {"🍄", "Mushroom", 3}, {"☂️", "Umbrella", 3},
	{"👓", "Glasses", 3},
}

// SortCategories backs the "Sort & Learn" activity; distractors are drawn
// from other categories so every wrong option is a category mismatch.
var SortCategories = map[string][]Item{
	"animal": {
		{"🐱", "Cat", 1}, {"🐶", "Dog", 1}, {"🐭", "Mouse", 1}, {"🦁", "Lion", 1},
		{"🐘", "Elephant", 1}, {"🦋", "Butterfly", 1}, {"🐸", "Frog", 1},
		{"🦊", "Fox", 1}, {"🐻", "Bear", 1}, {"🦝", "Raccoon", 1},
		{"🐢", "Turtle", 1}, {"🦉", "Owl", 1},
	},
	"food": {
		{"🍎", "Apple", 1}, {"🍌", "Banana", 1}, {"🍕", "Pizza", 1},
		{"🍪", "Cookie", 1}, {"🥕", "Carrot", 1}, {"🍉", "Watermelon", 1},
		{"🍔", "Burger", 1}, {"🌽", "Corn", 1}, {"🍓", "Strawberry", 1},
		{"🍫", "Chocolate", 1}, {"🥪", "Sandwich", 1}, {"🍰", "Cake", 1},
	},
	"color": {
		{"🔴", "Red", 1}, {"🟠", "Orange", 1}, {"🟡", "Yellow", 1},
		{"🟢", "Green", 1}, {"🔵", "Blue", 1}, {"🟣", "Purple", 1},
		{"🟤", "Brown", 1}, {"⚫", "Black", 1}, {"⚪", "White", 1}, {"🩷", "Pink", 1},
	},
	"toy": {
		{"🧸", "Teddy Bear", 1}, {"🎮", "Game Controller", 1}, {"🚗", "Car", 1},
		{"🚀", "Rocket", 1}, {"🎸", "Guitar", 1}, {"🎺", "Trumpet", 1},
		{"🪀", "Yo-Yo", 1}, {"🧩", "Puzzle", 1}, {"🎲", "Dice", 1},
		{"🪆", "Doll", 1}, {"🎪", "Tent", 1}, {"🛝", "Slide", 1},
	},
	"vehicle": {
		{"🚗", "Car", 1}, {"🚕", "Taxi", 1}, {"🚌", "Bus", 1}, {"🚐", "Van", 1},
		{"🚑", "Ambulance", 1}, {"🚒", "Fire Truck", 1}, {"✈️", "Airplane", 1},
		{"🚁", "Helicopter", 1}, {"🚂", "Train", 1}, {"🚢", "Boat", 1},
		{"🚴", "Bike", 1},
	},
	"nature": {
		{"🌳", "Tree", 1}, {"🌸", "Flower", 1}, {"☀️", "Sun", 1}, {"🌙", "Moon", 1},
		{"⭐", "Star", 1}, {"🌈", "Rainbow", 1}, {"🍃", "Leaf", 1},
		{"🌺", "Hibiscus", 1}, {"🌻", "Sunflower", 1}, {"🌼", "Daisy", 1},
	},
}

// SortPrompts are interchangeable stems for category questions; the %s is the
// category name.
var SortPrompts = []string{
	"Which one is a %s?",
	"Pick the %s!",
	"Find the %s!",
	"What is a %s?",
	"Show me the %s!",
}

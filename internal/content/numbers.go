package content

import "strconv"

// numberWords spells out 1..50 for narration; higher values fall back to digits
var numberWords = []string{
	"One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine", "Ten",
	"Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen", "Seventeen",
	"Eighteen", "Nineteen", "Twenty", "Twenty-one", "Twenty-two", "Twenty-three",
	"Twenty-four", "Twenty-five", "Twenty-six", "Twenty-seven", "Twenty-eight",
	"Twenty-nine", "Thirty", "Thirty-one", "Thirty-two", "Thirty-three",
	"Thirty-four", "Thirty-five", "Thirty-six", "Thirty-seven", "Thirty-eight",
	"Thirty-nine", "Forty", "Forty-one", "Forty-two", "Forty-three", "Forty-four",
	"Forty-five", "Forty-six", "Forty-seven", "Forty-eight", "Forty-nine", "Fifty",
}

// NumberWord returns the spelled-out form of n, or its digits when out of range
func NumberWord(n int) string {
	if n >= 1 && n <= len(numberWords) {
		return numberWords[n-1]
	}
	return strconv.Itoa(n)
}

var numberIcons = []string{"1️⃣", "2️⃣", "3️⃣", "4️⃣", "5️⃣", "6️⃣", "7️⃣", "8️⃣", "9️⃣", "🔟"}

// NumberIcon returns the keycap emoji for 1..10, digits otherwise
func NumberIcon(n int) string {
	if n >= 1 && n <= len(numberIcons) {
		return numberIcons[n-1]
	}
	return strconv.Itoa(n)
}

// CountableObject is something kids count in the numbers modal
type CountableObject struct {
	Name string
	Icon string
}

// CountableObjects is the pool of things to count
var CountableObjects = []CountableObject{
	{"apples", "🍎"}, {"bananas", "🍌"}, {"grapes", "🍇"}, {"oranges", "🍊"},
	{"strawberries", "🍓"}, {"watermelons", "🍉"}, {"cupcakes", "🧁"},
	{"cookies", "🍪"}, {"candies", "🍬"}, {"stars", "⭐"}, {"hearts", "❤️"},
	{"fish", "🐟"}, {"cats", "🐱"}, {"dogs", "🐶"}, {"birds", "🐦"},
	{"blocks", "🧱"}, {"balls", "⚽"}, {"flowers", "🌸"}, {"trees", "🌳"},
	{"suns", "☀️"},
}

// CountPrompts are interchangeable stems for counting questions
var CountPrompts = []string{
	"Count the objects and choose the number",
	"How many objects are there?",
	"Look carefully and count",
	"What number matches the objects?",
	"Count and tap the correct number",
	"Choose the right number",
}

// CountNarrations are interchangeable narration lines for counting questions
var CountNarrations = []string{
	"Count the objects carefully",
	"How many objects do you see?",
	"Let us count together",
	"Count and choose the answer",
	"Find the correct number",
	"Can you count to the right number?",
}

// ListenNarrations are interchangeable narration templates for listen
// questions; the %s is the spelled-out number word.
var ListenNarrations = []string{
	"The number is %s",
	"Can you find the number %s?",
	"Listen and tap %s",
	"What number is %s?",
	"How many? The answer is %s",
	"Tap the number %s and listen carefully",
	"Find the number %s on the screen",
}

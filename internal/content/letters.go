// Package content holds the static, hand-authored pools each activity draws
// from. Entries carry a difficulty level matched against the limits in the
// difficulty package; the tables themselves are immutable at runtime.
package content

// Alphabet is the ordered letter pool; difficulty trims it to a prefix
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// ConfusableLetters maps a letter to visually or phonetically similar letters,
// preferred as distractors before falling back to random draws.
var ConfusableLetters = map[string][]string{
	"A": {"H", "V"},
	"B": {"D", "P"},
	"C": {"G", "O"},
	"D": {"B", "O"},
	"E": {"F"},
	"G": {"C", "O"},
	"I": {"L", "T"},
	"L": {"I", "T"},
	"O": {"C", "D", "G"},
	"P": {"B", "R"},
	"R": {"P"},
	"V": {"A", "U"},
}

// AlphabetPrompts are interchangeable question stems for letter recognition
var AlphabetPrompts = []string{
	"Find the letter",
	"Tap on",
	"Which one is",
	"Spot the letter",
	"Click on",
	"Show me",
}

// PhonicsEntry pairs a letter with its sound and an example word
type PhonicsEntry struct {
	Letter string
	Sound  string
	Word   string
	Icon   string
	Level  int
}

// Phonics is the full letter-sound table, leveled by stage
var Phonics = []PhonicsEntry{
	{"A", "/æ/", "Apple", "🍎", 1},
	{"B", "/b/", "Ball", "⚽", 1},
	{"C", "/k/", "Cat", "🐱", 1},
	{"D", "/d/", "Dog", "🐶", 1},
	{"E", "/e/", "Egg", "🥚", 1},
	{"F", "/f/", "Fish", "🐠", 1},
	{"G", "/g/", "Grapes", "🍇", 1},
	{"H", "/h/", "Hat", "🎩", 1},
	{"I", "/ɪ/", "Ice cream", "🍦", 1},
	{"J", "/dʒ/", "Jellyfish", "🪼", 1},
	{"K", "/k/", "Kite", "🪁", 2},
	{"L", "/l/", "Lion", "🦁", 2},
	{"M", "/m/", "Monkey", "🐵", 2},
	{"N", "/n/", "Nest", "🪺", 2},
	{"O", "/ɑ/", "Orange", "🍊", 2},
	{"P", "/p/", "Penguin", "🐧", 2},
	{"Q", "/kw/", "Queen", "👑", 2},
	{"R", "/r/", "Rainbow", "🌈", 3},
	{"S", "/s/", "Sun", "☀️", 3},
	{"T", "/t/", "Tiger", "🐯", 3},
	{"U", "/ʌ/", "Umbrella", "☂️", 3},
	{"V", "/v/", "Violin", "🎻", 3},
	{"W", "/w/", "Whale", "🐋", 3},
	{"X", "/ks/", "Xylophone", "🎵", 3},
	{"Y", "/j/", "Yo-yo", "🪀", 3},
	{"Z", "/z/", "Zebra", "🦓", 3},
}

// PhonicsPrompts are interchangeable stems for sound questions
var PhonicsPrompts = []string{
	"Tap the letter that makes the",
	"Which letter says",
	"Find the sound for",
	"Tap the letter with sound",
}

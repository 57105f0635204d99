package content

// SightWord is one high-frequency word, leveled by stage
type SightWord struct {
	Word  string
	Level int
}

// SightWords is the Dolch-style high-frequency word pool
var SightWords = []SightWord{
	{"the", 1}, {"a", 1}, {"I", 1}, {"is", 1}, {"it", 1},

	{"and", 2}, {"to", 2}, {"you", 2}, {"in", 2}, {"of", 2},
	{"for", 2}, {"that", 2},

	{"with", 3}, {"have", 3}, {"this", 3}, {"from", 3}, {"or", 3},
	{"had", 3}, {"can", 3}, {"be", 3},

	{"by", 4}, {"as", 4}, {"would", 4}, {"at", 4}, {"does", 4},
	{"on", 4}, {"if", 4}, {"when", 4}, {"they", 4},
}

// RhymeWord is one member of a rhyme family
type RhymeWord struct {
	Word string
	Icon string
}

// RhymeGroup is a cue word plus the words that rhyme with it. One rhyme
// becomes the answer; distractors are drawn from other groups so no wrong
// option rhymes with the cue.
type RhymeGroup struct {
	Cue    string
	Icon   string
	Rhymes []RhymeWord
	Level  int
}

// RhymeGroups is the rhyme-family pool
var RhymeGroups = []RhymeGroup{
	{"Cat", "🐱", []RhymeWord{{"Hat", "🎩"}, {"Bat", "🦇"}, {"Mat", "🧶"}, {"Sat", "💺"}}, 1},
	{"Moon", "🌙", []RhymeWord{{"Spoon", "🥄"}, {"Soon", "⏰"}, {"Balloon", "🎈"}, {"Croon", "🎤"}}, 1},
	{"Day", "☀️", []RhymeWord{{"Play", "🎮"}, {"Way", "🛣️"}, {"Say", "💬"}, {"Ray", "☀️"}}, 1},
	{"Dog", "🐶", []RhymeWord{{"Log", "🪵"}, {"Fog", "🌫️"}, {"Jog", "🏃"}, {"Bog", "🌿"}}, 1},
	{"Bed", "🛏️", []RhymeWord{{"Red", "🔴"}, {"Bread", "🍞"}, {"Head", "🧠"}, {"Fed", "🍽️"}}, 1},
	{"Bell", "🔔", []RhymeWord{{"Well", "💧"}, {"Shell", "🐚"}, {"Smell", "👃"}, {"Tell", "📢"}}, 1},
	{"Ring", "💍", []RhymeWord{{"Sing", "🎤"}, {"Wing", "🪶"}, {"Spring", "🌸"}, {"King", "👑"}}, 2},
	{"Tree", "🌳", []RhymeWord{{"Bee", "🐝"}, {"Sea", "🌊"}, {"Key", "🔑"}, {"Free", "🦅"}}, 2},
	{"Boat", "🚤", []RhymeWord{{"Coat", "🧥"}, {"Goat", "🐐"}, {"Note", "📝"}, {"Moat", "🏰"}}, 2},
	{"Cake", "🎂", []RhymeWord{{"Bake", "🔥"}, {"Lake", "🏞️"}, {"Snake", "🐍"}, {"Wake", "😴"}}, 2},
	{"House", "🏠", []RhymeWord{{"Mouse", "🐭"}, {"Blouse", "👕"}, {"Louse", "🦟"}}, 3},
	{"Star", "⭐", []RhymeWord{{"Far", "🌌"}, {"Car", "🚗"}, {"Jar", "🫙"}}, 3},
}

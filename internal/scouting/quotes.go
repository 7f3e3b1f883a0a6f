package scouting

import "math/rand"

// motivationalQuotes shown after each saved record.
var motivationalQuotes = []string{
	"You are making a difference!",
	"Every click counts!",
	"Great scouts build great teams!",
	"Keep up the awesome work!",
	"Your data powers the drive team!",
	"Scouting wins championships!",
	"Stay focused and scout on!",
	"You rock!",
	"One more match, one more win!",
	"Your effort matters!",
	"You are the backbone of the team!",
	"Keep pushing forward!",
}

// RandomQuote picks one of the motivational quotes.
func RandomQuote() string {
	return motivationalQuotes[rand.Intn(len(motivationalQuotes))]
}

package utils

import "time"

type Quote struct {
	Text   string `json:"text"`
	Author string `json:"author"`
}

var quotes = []Quote{
	{Text: "Your body is a temple. Take care of it with fasting and nourishment.", Author: "Unknown"},
	{Text: "Fasting is the first principle of medicine.", Author: "Rumi"},
	{Text: "The best of all medicines is resting and fasting.", Author: "Benjamin Franklin"},
	{Text: "Every accomplishment starts with the decision to try.", Author: "John F. Kennedy"},
	{Text: "Small steps every day lead to big results.", Author: "Unknown"},
	{Text: "You don't have to be extreme, just consistent.", Author: "Unknown"},
	{Text: "Your health is an investment, not an expense.", Author: "Unknown"},
	{Text: "Progress, not perfection.", Author: "Unknown"},
	{Text: "The only bad workout is the one that didn't happen.", Author: "Unknown"},
	{Text: "Take care of your body. It's the only place you have to live.", Author: "Jim Rohn"},
}

// DailyQuote rotates through the table by day of year, so everyone sees
// the same quote on a given day.
func DailyQuote(now time.Time) Quote {
	return quotes[now.YearDay()%len(quotes)]
}

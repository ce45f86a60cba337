package config

import "github.com/memorymatch/tui-go/internal/model"

// DeckOptions returns the selectable deck sizes
func DeckOptions() []model.DeckOption {
	return []model.DeckOption{
		{Cards: 2, Label: "Warm-up (2 cards)"},
		{Cards: 4, Label: "Easy (4 cards)"},
		{Cards: 8, Label: "Medium (8 cards)"},
		{Cards: 12, Label: "Hard (12 cards)"},
		{Cards: 16, Label: "Very Hard (16 cards)"},
	}
}

// DurationOptions returns the selectable countdown lengths, untimed last
func DurationOptions() []model.DurationOption {
	return []model.DurationOption{
		{Seconds: 10, Label: "10 seconds"},
		{Seconds: 20, Label: "20 seconds"},
		{Seconds: 30, Label: "30 seconds", Recommended: true},
		{Seconds: 40, Label: "40 seconds"},
		{Seconds: 50, Label: "50 seconds"},
		{Seconds: 60, Label: "60 seconds"},
		{Seconds: 0, Label: "Untimed"},
	}
}

// DeckOptionIndex returns the index of the option dealing cards, or -1
func DeckOptionIndex(cards int) int {
	for i, o := range DeckOptions() {
		if o.Cards == cards {
			return i
		}
	}
	return -1
}

// DurationOptionIndex returns the index of the option lasting seconds, or -1
func DurationOptionIndex(seconds int) int {
	for i, o := range DurationOptions() {
		if o.Seconds == seconds {
			return i
		}
	}
	return -1
}

// maxDeckOption returns the largest selectable deck size
func maxDeckOption() int {
	max := 0
	for _, o := range DeckOptions() {
		if o.Cards > max {
			max = o.Cards
		}
	}
	return max
}

package model

// DeckOption is one entry of the difficulty selector
type DeckOption struct {
	Cards int
	Label string
}

// DurationOption is one entry of the duration selector.
// Seconds == 0 means untimed.
type DurationOption struct {
	Seconds     int
	Label       string
	Recommended bool
}

// Untimed reports whether the option disables the countdown
func (d DurationOption) Untimed() bool {
	return d.Seconds == 0
}

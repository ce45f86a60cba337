package model

// HiddenFace is shown in place of a face-down card's value
const HiddenFace = "?"

// Card represents a single dealt card
type Card struct {
	Value    string // Symbol; each dealt symbol appears exactly twice
	Revealed bool   // Face currently shown
}

// Face returns what the board should display for the card
func (c Card) Face() string {
	if c.Revealed {
		return c.Value
	}
	return HiddenFace
}

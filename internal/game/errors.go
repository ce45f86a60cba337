package game

import "errors"

var (
	// ErrInvalidConfiguration is returned when a deck cannot be dealt
	// from the requested size and alphabet.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrDeckSizeRequired is returned by Start when no deck size was chosen.
	ErrDeckSizeRequired = errors.New("deck size required")

	// ErrAlreadyPlaying is returned by Start while a game is in progress.
	ErrAlreadyPlaying = errors.New("game already in progress")
)

package game

import (
	"time"

	"github.com/memorymatch/tui-go/internal/model"
)

const (
	// TickInterval is the countdown resolution
	TickInterval = time.Second

	// DefaultMismatchDelay is how long a mismatched pair stays face up
	DefaultMismatchDelay = time.Second
)

// Settings are the player's choices for a new session
type Settings struct {
	DeckSize      int           // Cards to deal; 0 means not chosen
	Duration      int           // Countdown seconds; 0 means untimed
	MismatchDelay time.Duration // 0 falls back to DefaultMismatchDelay
}

// Session is the full game state. Transition functions take a Session
// and return a new one; the input is never modified.
type Session struct {
	ID               string
	Generation       uint64
	DeckSize         int
	Deck             []model.Card
	Pending          []int
	MatchedPairs     int
	Mismatches       int
	Timed            bool
	SecondsRemaining int
	MismatchDelay    time.Duration
	Phase            model.Phase
}

// NewSession returns the initial Setup state
func NewSession() Session {
	return Session{Phase: model.PhaseSetup}
}

// Pairs returns the number of pairs on the board
func (s Session) Pairs() int {
	return s.DeckSize / 2
}

// IsPending reports whether card i is face up awaiting evaluation
func (s Session) IsPending(i int) bool {
	for _, p := range s.Pending {
		if p == i {
			return true
		}
	}
	return false
}

// IsMatched reports whether card i belongs to a confirmed pair
func (s Session) IsMatched(i int) bool {
	if i < 0 || i >= len(s.Deck) {
		return false
	}
	return s.Deck[i].Revealed && !s.IsPending(i)
}

// clone returns a copy that shares no slices with s
func (s Session) clone() Session {
	c := s
	if s.Deck != nil {
		c.Deck = make([]model.Card, len(s.Deck))
		copy(c.Deck, s.Deck)
	}
	if s.Pending != nil {
		c.Pending = make([]int, len(s.Pending))
		copy(c.Pending, s.Pending)
	}
	return c
}

// cleared returns the empty state that follows a reset, win or timeout.
// The generation moves forward so timers armed for s become stale.
func (s Session) cleared(phase model.Phase) Session {
	return Session{
		Generation: s.Generation + 1,
		Phase:      phase,
	}
}

// Snapshot is the read-only view handed to the rendering layer
type Snapshot struct {
	Deck             []model.Card
	Matched          []bool
	Pending          []int
	Phase            model.Phase
	DeckSize         int
	MatchedPairs     int
	Mismatches       int
	Timed            bool
	SecondsRemaining int
}

// Snapshot copies the renderable parts of the session
func (s Session) Snapshot() Snapshot {
	c := s.clone()
	matched := make([]bool, len(c.Deck))
	for i := range c.Deck {
		matched[i] = s.IsMatched(i)
	}
	return Snapshot{
		Deck:             c.Deck,
		Matched:          matched,
		Pending:          c.Pending,
		Phase:            s.Phase,
		DeckSize:         s.DeckSize,
		MatchedPairs:     s.MatchedPairs,
		Mismatches:       s.Mismatches,
		Timed:            s.Timed,
		SecondsRemaining: s.SecondsRemaining,
	}
}

package game

import (
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/memorymatch/tui-go/internal/model"
)

// Start deals a fresh deck and moves to Playing.
// Deck size is mandatory and duration optional. On error prev is
// returned unchanged.
func Start(prev Session, settings Settings, alphabet []string, rng *rand.Rand) (Session, Result, error) {
	if !prev.Phase.IsIdle() {
		return prev, Result{}, ErrAlreadyPlaying
	}
	if settings.DeckSize == 0 {
		return prev, Result{}, ErrDeckSizeRequired
	}
	if settings.Duration < 0 {
		return prev, Result{}, fmt.Errorf("duration %ds must not be negative: %w", settings.Duration, ErrInvalidConfiguration)
	}

	deck, err := Deal(settings.DeckSize, alphabet, rng)
	if err != nil {
		return prev, Result{}, err
	}

	delay := settings.MismatchDelay
	if delay <= 0 {
		delay = DefaultMismatchDelay
	}

	s := Session{
		ID:            uuid.New().String(),
		Generation:    prev.Generation + 1,
		DeckSize:      settings.DeckSize,
		Deck:          deck,
		MismatchDelay: delay,
		Phase:         model.PhasePlaying,
	}

	res := Result{Outcome: OutcomeStarted}
	if settings.Duration > 0 {
		s.Timed = true
		s.SecondsRemaining = settings.Duration
		res.Effects = []Effect{{Kind: EffectScheduleTick, Generation: s.Generation, Delay: TickInterval}}
	}
	return s, res, nil
}

// Reset returns to Setup from any phase, invalidating pending timers
func Reset(s Session) (Session, Result) {
	res := Result{Outcome: OutcomeReset}
	if s.Phase == model.PhasePlaying {
		res.Summary = summarize(s)
	}
	return s.cleared(model.PhaseSetup), res
}

// Reveal turns card i face up. It is a no-op when the game is not
// running, i is out of range, the card is already face up, or two
// cards are already awaiting evaluation. Revealing the second card
// evaluates the pair immediately.
func Reveal(s Session, i int) (Session, Result) {
	if s.Phase != model.PhasePlaying {
		return s, Result{}
	}
	if i < 0 || i >= len(s.Deck) {
		return s, Result{}
	}
	if s.Deck[i].Revealed || len(s.Pending) >= 2 {
		return s, Result{}
	}

	next := s.clone()
	next.Deck[i].Revealed = true
	next.Pending = append(next.Pending, i)

	if len(next.Pending) == 2 {
		return Evaluate(next)
	}
	return next, Result{Outcome: OutcomeRevealed}
}

// Evaluate compares the two pending cards. A match is kept face up and
// may end the game; a mismatch is counted and a revert is scheduled.
// Anything other than exactly two pending cards is a no-op.
func Evaluate(s Session) (Session, Result) {
	if s.Phase != model.PhasePlaying || len(s.Pending) != 2 {
		return s, Result{}
	}
	i, j := s.Pending[0], s.Pending[1]
	if i < 0 || i >= len(s.Deck) || j < 0 || j >= len(s.Deck) || i == j {
		next, _ := Reset(s)
		return next, Result{Outcome: OutcomeInconsistent, Summary: summarize(s)}
	}

	next := s.clone()
	if next.Deck[i].Value != next.Deck[j].Value {
		next.Mismatches++
		return next, Result{
			Outcome: OutcomeMismatched,
			Effects: []Effect{{Kind: EffectScheduleRevert, Generation: next.Generation, Delay: next.MismatchDelay}},
		}
	}

	next.MatchedPairs++
	next.Pending = nil
	if next.MatchedPairs == next.Pairs() {
		return next.cleared(model.PhaseWon), Result{Outcome: OutcomeWon, Summary: summarize(next)}
	}
	return next, Result{Outcome: OutcomeMatched}
}

// Revert flips a mismatched pair back face down. Callbacks scheduled
// for an earlier generation are ignored.
func Revert(s Session, generation uint64) (Session, Result) {
	if generation != s.Generation || s.Phase != model.PhasePlaying || len(s.Pending) != 2 {
		return s, Result{}
	}

	next := s.clone()
	for _, i := range next.Pending {
		if i < 0 || i >= len(next.Deck) {
			cleared, _ := Reset(s)
			return cleared, Result{Outcome: OutcomeInconsistent, Summary: summarize(s)}
		}
		next.Deck[i].Revealed = false
	}
	next.Pending = nil
	return next, Result{Outcome: OutcomeReverted}
}

// Tick advances the countdown by one second. Reaching zero ends the
// game. Ticks for another generation, an untimed session, or a session
// that is not Playing are ignored.
func Tick(s Session, generation uint64) (Session, Result) {
	if generation != s.Generation || s.Phase != model.PhasePlaying || !s.Timed {
		return s, Result{}
	}

	next := s.clone()
	next.SecondsRemaining--
	if next.SecondsRemaining <= 0 {
		next.SecondsRemaining = 0
		return next.cleared(model.PhaseTimedOut), Result{Outcome: OutcomeTimedOut, Summary: summarize(next)}
	}
	return next, Result{
		Outcome: OutcomeTicked,
		Effects: []Effect{{Kind: EffectScheduleTick, Generation: next.Generation, Delay: TickInterval}},
	}
}

package game

import (
	"math/rand/v2"
	"time"

	"github.com/rs/zerolog"
)

// Controller owns the current session and applies transitions to it.
// It is driven from a single goroutine and is not safe for concurrent use.
type Controller struct {
	session       Session
	alphabet      []string
	mismatchDelay time.Duration
	rng           *rand.Rand
	tally         *Tally
	logger        zerolog.Logger
}

// Option configures a Controller
type Option func(*Controller)

// WithAlphabet sets the symbols cards are drawn from
func WithAlphabet(symbols []string) Option {
	return func(c *Controller) {
		c.alphabet = append([]string(nil), symbols...)
	}
}

// WithMismatchDelay sets how long a mismatched pair stays face up
func WithMismatchDelay(d time.Duration) Option {
	return func(c *Controller) {
		c.mismatchDelay = d
	}
}

// WithRand sets the random source used for dealing
func WithRand(rng *rand.Rand) Option {
	return func(c *Controller) {
		c.rng = rng
	}
}

// WithLogger sets the logger for transition events
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Controller) {
		c.logger = logger
	}
}

// NewController creates a controller in the Setup phase
func NewController(opts ...Option) *Controller {
	c := &Controller{
		session:       NewSession(),
		alphabet:      DefaultSymbols,
		mismatchDelay: DefaultMismatchDelay,
		tally:         NewTally(),
		logger:        zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.rng == nil {
		c.rng = NewRand(0)
	}
	return c
}

// Session returns the current session value
func (c *Controller) Session() Session {
	return c.session
}

// Snapshot returns the renderable state
func (c *Controller) Snapshot() Snapshot {
	return c.session.Snapshot()
}

// Tally returns the run tally
func (c *Controller) Tally() *Tally {
	return c.tally
}

// Alphabet returns a copy of the configured symbols
func (c *Controller) Alphabet() []string {
	return append([]string(nil), c.alphabet...)
}

// Start begins a new game. Errors leave the current session untouched.
func (c *Controller) Start(deckSize, duration int) (Result, error) {
	settings := Settings{
		DeckSize:      deckSize,
		Duration:      duration,
		MismatchDelay: c.mismatchDelay,
	}
	next, res, err := Start(c.session, settings, c.alphabet, c.rng)
	if err != nil {
		c.logger.Warn().
			Err(err).
			Int("deck_size", deckSize).
			Int("duration", duration).
			Msg("start rejected")
		return res, err
	}
	return c.apply(next, res), nil
}

// Reveal turns over card i
func (c *Controller) Reveal(i int) Result {
	next, res := Reveal(c.session, i)
	if res.Changed() {
		c.logger.Debug().
			Str("session_id", c.session.ID).
			Int("index", i).
			Msg("card revealed")
	}
	return c.apply(next, res)
}

// Tick applies a countdown tick scheduled under generation
func (c *Controller) Tick(generation uint64) Result {
	next, res := Tick(c.session, generation)
	if !res.Changed() && generation != c.session.Generation {
		c.logger.Debug().
			Uint64("generation", generation).
			Uint64("current", c.session.Generation).
			Msg("stale tick dropped")
	}
	return c.apply(next, res)
}

// Revert applies a mismatch revert scheduled under generation
func (c *Controller) Revert(generation uint64) Result {
	next, res := Revert(c.session, generation)
	if !res.Changed() && generation != c.session.Generation {
		c.logger.Debug().
			Uint64("generation", generation).
			Uint64("current", c.session.Generation).
			Msg("stale revert dropped")
	}
	return c.apply(next, res)
}

// Reset abandons the current game, if any, and returns to Setup
func (c *Controller) Reset() Result {
	next, res := Reset(c.session)
	return c.apply(next, res)
}

// apply stores next, records the result and logs the transition
func (c *Controller) apply(next Session, res Result) Result {
	prev := c.session
	c.session = next
	if !res.Changed() {
		return res
	}
	c.tally.Record(res)

	sessionID := next.ID
	if res.Summary != nil {
		sessionID = res.Summary.SessionID
	}

	var ev *zerolog.Event
	switch res.Outcome {
	case OutcomeRevealed, OutcomeTicked:
		ev = c.logger.Debug()
	case OutcomeInconsistent:
		ev = c.logger.Warn()
	default:
		ev = c.logger.Info()
	}
	ev = ev.
		Str("session_id", sessionID).
		Str("event", string(res.Outcome)).
		Str("phase", string(next.Phase)).
		Uint64("generation", next.Generation)

	if res.Summary != nil {
		ev = ev.
			Int("deck_size", res.Summary.DeckSize).
			Int("matched_pairs", res.Summary.MatchedPairs).
			Int("mismatches", res.Summary.Mismatches)
		if res.Summary.Timed {
			ev = ev.Int("seconds_remaining", res.Summary.SecondsRemaining)
		}
	} else {
		ev = ev.
			Int("deck_size", next.DeckSize).
			Int("matched_pairs", next.MatchedPairs).
			Int("mismatches", next.Mismatches)
		if next.Timed {
			ev = ev.Int("seconds_remaining", next.SecondsRemaining)
		}
	}
	if prev.Phase != next.Phase {
		ev = ev.Str("from", string(prev.Phase))
	}
	ev.Msg("transition")
	return res
}

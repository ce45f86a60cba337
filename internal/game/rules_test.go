package game

import (
	"testing"
	"time"

	"github.com/memorymatch/tui-go/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// playing builds a Playing session with a fixed deck
func playing(values ...string) Session {
	deck := make([]model.Card, len(values))
	for i, v := range values {
		deck[i] = model.Card{Value: v}
	}
	return Session{
		ID:            "test-session",
		Generation:    1,
		DeckSize:      len(values),
		Deck:          deck,
		MismatchDelay: DefaultMismatchDelay,
		Phase:         model.PhasePlaying,
	}
}

func timed(s Session, seconds int) Session {
	s.Timed = true
	s.SecondsRemaining = seconds
	return s
}

func assertCleared(t *testing.T, s Session, phase model.Phase) {
	t.Helper()
	assert.Equal(t, phase, s.Phase)
	assert.Empty(t, s.Deck)
	assert.Empty(t, s.Pending)
	assert.Zero(t, s.DeckSize)
	assert.Zero(t, s.MatchedPairs)
	assert.Zero(t, s.Mismatches)
	assert.False(t, s.Timed)
	assert.Zero(t, s.SecondsRemaining)
	assert.Empty(t, s.ID)
}

func TestStart(t *testing.T) {
	t.Run("timed game arms countdown", func(t *testing.T) {
		s, res, err := Start(NewSession(), Settings{DeckSize: 8, Duration: 30}, DefaultSymbols, NewRand(1))
		require.NoError(t, err)
		assert.Equal(t, model.PhasePlaying, s.Phase)
		assert.Len(t, s.Deck, 8)
		assert.NotEmpty(t, s.ID)
		assert.True(t, s.Timed)
		assert.Equal(t, 30, s.SecondsRemaining)
		assert.Equal(t, DefaultMismatchDelay, s.MismatchDelay)
		assert.Equal(t, OutcomeStarted, res.Outcome)
		require.Len(t, res.Effects, 1)
		assert.Equal(t, Effect{Kind: EffectScheduleTick, Generation: s.Generation, Delay: TickInterval}, res.Effects[0])
	})

	t.Run("untimed game schedules nothing", func(t *testing.T) {
		s, res, err := Start(NewSession(), Settings{DeckSize: 4}, DefaultSymbols, NewRand(1))
		require.NoError(t, err)
		assert.False(t, s.Timed)
		assert.Empty(t, res.Effects)
	})

	t.Run("custom mismatch delay is kept", func(t *testing.T) {
		s, _, err := Start(NewSession(), Settings{DeckSize: 4, MismatchDelay: 250 * time.Millisecond}, DefaultSymbols, NewRand(1))
		require.NoError(t, err)
		assert.Equal(t, 250*time.Millisecond, s.MismatchDelay)
	})

	t.Run("generation advances from previous session", func(t *testing.T) {
		prev := Session{Phase: model.PhaseWon, Generation: 7}
		s, _, err := Start(prev, Settings{DeckSize: 2}, DefaultSymbols, NewRand(1))
		require.NoError(t, err)
		assert.Equal(t, uint64(8), s.Generation)
	})
}

func TestStartRejected(t *testing.T) {
	tests := []struct {
		name     string
		prev     Session
		settings Settings
		alphabet []string
		wantErr  error
	}{
		{"no deck size", NewSession(), Settings{Duration: 30}, DefaultSymbols, ErrDeckSizeRequired},
		{"odd deck size", NewSession(), Settings{DeckSize: 3}, DefaultSymbols, ErrInvalidConfiguration},
		{"deck too large", NewSession(), Settings{DeckSize: 18}, DefaultSymbols, ErrInvalidConfiguration},
		{"negative duration", NewSession(), Settings{DeckSize: 4, Duration: -1}, DefaultSymbols, ErrInvalidConfiguration},
		{"already playing", playing("A", "A"), Settings{DeckSize: 4}, DefaultSymbols, ErrAlreadyPlaying},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, res, err := Start(tt.prev, tt.settings, tt.alphabet, NewRand(1))
			require.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.prev, s)
			assert.False(t, res.Changed())
		})
	}
}

func TestRevealNoOps(t *testing.T) {
	base := playing("A", "B", "A", "B")

	t.Run("out of range", func(t *testing.T) {
		for _, i := range []int{-1, 4, 100} {
			s, res := Reveal(base, i)
			assert.Equal(t, base, s)
			assert.False(t, res.Changed())
		}
	})

	t.Run("already revealed", func(t *testing.T) {
		s, _ := Reveal(base, 0)
		again, res := Reveal(s, 0)
		assert.Equal(t, s, again)
		assert.False(t, res.Changed())
	})

	t.Run("third card while two pending", func(t *testing.T) {
		s, _ := Reveal(base, 0)
		s, res := Reveal(s, 1)
		require.Equal(t, OutcomeMismatched, res.Outcome)
		third, res := Reveal(s, 2)
		assert.Equal(t, s, third)
		assert.False(t, res.Changed())
	})

	t.Run("not playing", func(t *testing.T) {
		s := NewSession()
		next, res := Reveal(s, 0)
		assert.Equal(t, s, next)
		assert.False(t, res.Changed())
	})
}

func TestRevealDoesNotMutateInput(t *testing.T) {
	base := playing("A", "B", "A", "B")
	_, _ = Reveal(base, 0)
	assert.False(t, base.Deck[0].Revealed)
	assert.Empty(t, base.Pending)
}

func TestMatch(t *testing.T) {
	s := playing("A", "B", "A", "B")
	s, res := Reveal(s, 0)
	assert.Equal(t, OutcomeRevealed, res.Outcome)
	assert.Equal(t, []int{0}, s.Pending)

	s, res = Reveal(s, 2)
	assert.Equal(t, OutcomeMatched, res.Outcome)
	assert.Equal(t, 1, s.MatchedPairs)
	assert.Empty(t, s.Pending)
	assert.True(t, s.Deck[0].Revealed)
	assert.True(t, s.Deck[2].Revealed)
	assert.True(t, s.IsMatched(0))
	assert.Empty(t, res.Effects)
}

func TestMismatchRevert(t *testing.T) {
	s := playing("A", "B", "A", "B")
	s, _ = Reveal(s, 0)
	s, res := Reveal(s, 1)

	assert.Equal(t, OutcomeMismatched, res.Outcome)
	assert.Equal(t, 1, s.Mismatches)
	assert.Equal(t, []int{0, 1}, s.Pending)
	require.Len(t, res.Effects, 1)
	assert.Equal(t, Effect{Kind: EffectScheduleRevert, Generation: s.Generation, Delay: DefaultMismatchDelay}, res.Effects[0])

	s, res = Revert(s, s.Generation)
	assert.Equal(t, OutcomeReverted, res.Outcome)
	assert.False(t, s.Deck[0].Revealed)
	assert.False(t, s.Deck[1].Revealed)
	assert.Empty(t, s.Pending)
	assert.Equal(t, 1, s.Mismatches)
}

func TestRevertStale(t *testing.T) {
	s := playing("A", "B", "A", "B")
	s, _ = Reveal(s, 0)
	s, _ = Reveal(s, 1)
	gen := s.Generation

	t.Run("after reset", func(t *testing.T) {
		cleared, _ := Reset(s)
		next, res := Revert(cleared, gen)
		assert.Equal(t, cleared, next)
		assert.False(t, res.Changed())
	})

	t.Run("wrong generation", func(t *testing.T) {
		next, res := Revert(s, gen+1)
		assert.Equal(t, s, next)
		assert.False(t, res.Changed())
	})

	t.Run("nothing pending", func(t *testing.T) {
		fresh := playing("A", "A")
		next, res := Revert(fresh, fresh.Generation)
		assert.Equal(t, fresh, next)
		assert.False(t, res.Changed())
	})
}

func TestFullGameScenario(t *testing.T) {
	s := playing("A", "B", "A", "B")
	gen := s.Generation

	// Mismatch round
	s, _ = Reveal(s, 0)
	s, res := Reveal(s, 1)
	require.Equal(t, OutcomeMismatched, res.Outcome)
	s, _ = Revert(s, res.Effects[0].Generation)
	assert.False(t, s.Deck[0].Revealed)
	assert.False(t, s.Deck[1].Revealed)
	assert.Equal(t, 1, s.Mismatches)

	// First pair
	s, _ = Reveal(s, 0)
	s, res = Reveal(s, 2)
	require.Equal(t, OutcomeMatched, res.Outcome)
	assert.Equal(t, 1, s.MatchedPairs)
	assert.Equal(t, model.PhasePlaying, s.Phase)

	// Second pair wins
	s, _ = Reveal(s, 1)
	s, res = Reveal(s, 3)
	require.Equal(t, OutcomeWon, res.Outcome)
	require.NotNil(t, res.Summary)
	assert.Equal(t, 2, res.Summary.MatchedPairs)
	assert.Equal(t, 1, res.Summary.Mismatches)
	assert.Equal(t, 4, res.Summary.DeckSize)
	assertCleared(t, s, model.PhaseWon)
	assert.Equal(t, gen+1, s.Generation)

	// Nothing more happens on the cleared session
	next, res := Reveal(s, 0)
	assert.Equal(t, s, next)
	assert.False(t, res.Changed())
}

func TestWinReportedOnce(t *testing.T) {
	s := playing("A", "A")
	s, _ = Reveal(s, 0)
	s, res := Reveal(s, 1)
	require.Equal(t, OutcomeWon, res.Outcome)

	wins := 0
	for _, i := range []int{0, 1} {
		var r Result
		s, r = Reveal(s, i)
		if r.Outcome == OutcomeWon {
			wins++
		}
	}
	assert.Zero(t, wins)
}

func TestTick(t *testing.T) {
	s := timed(playing("A", "B", "A", "B"), 2)
	gen := s.Generation

	s, res := Tick(s, gen)
	assert.Equal(t, OutcomeTicked, res.Outcome)
	assert.Equal(t, 1, s.SecondsRemaining)
	require.Len(t, res.Effects, 1)
	assert.Equal(t, EffectScheduleTick, res.Effects[0].Kind)
	assert.Equal(t, gen, res.Effects[0].Generation)

	s, res = Tick(s, gen)
	assert.Equal(t, OutcomeTimedOut, res.Outcome)
	assert.Empty(t, res.Effects)
	require.NotNil(t, res.Summary)
	assert.Equal(t, 0, res.Summary.SecondsRemaining)
	assertCleared(t, s, model.PhaseTimedOut)

	// The old tick chain is dead
	next, res := Tick(s, gen)
	assert.Equal(t, s, next)
	assert.False(t, res.Changed())
}

func TestTickIgnored(t *testing.T) {
	tests := []struct {
		name string
		s    Session
		gen  uint64
	}{
		{"untimed", playing("A", "A"), 1},
		{"stale generation", timed(playing("A", "A"), 10), 0},
		{"setup", NewSession(), 0},
		{"won", Session{Phase: model.PhaseWon, Generation: 3}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, res := Tick(tt.s, tt.gen)
			assert.Equal(t, tt.s, next)
			assert.False(t, res.Changed())
		})
	}
}

func TestTickAfterWinIsNoop(t *testing.T) {
	s := timed(playing("A", "A"), 30)
	gen := s.Generation
	s, _ = Reveal(s, 0)
	s, res := Reveal(s, 1)
	require.Equal(t, OutcomeWon, res.Outcome)

	next, res := Tick(s, gen)
	assert.Equal(t, s, next)
	assert.False(t, res.Changed())
}

func TestReset(t *testing.T) {
	t.Run("from playing", func(t *testing.T) {
		s := timed(playing("A", "B", "A", "B"), 20)
		s, _ = Reveal(s, 0)
		next, res := Reset(s)
		assert.Equal(t, OutcomeReset, res.Outcome)
		require.NotNil(t, res.Summary)
		assertCleared(t, next, model.PhaseSetup)
		assert.Equal(t, s.Generation+1, next.Generation)
	})

	t.Run("from timed out", func(t *testing.T) {
		s := Session{Phase: model.PhaseTimedOut, Generation: 4}
		next, res := Reset(s)
		assert.Nil(t, res.Summary)
		assertCleared(t, next, model.PhaseSetup)
	})
}

func TestEvaluateInconsistentForcesReset(t *testing.T) {
	s := playing("A", "B")
	s.Pending = []int{0, 9}
	next, res := Evaluate(s)
	assert.Equal(t, OutcomeInconsistent, res.Outcome)
	assertCleared(t, next, model.PhaseSetup)
}

func TestSnapshotIsCopy(t *testing.T) {
	s := playing("A", "B", "A", "B")
	s, _ = Reveal(s, 0)
	s, _ = Reveal(s, 2)
	snap := s.Snapshot()
	snap.Deck[0].Revealed = false

	assert.True(t, s.Deck[0].Revealed)
	assert.Equal(t, []bool{true, false, true, false}, snap.Matched)
	assert.Equal(t, 1, snap.MatchedPairs)
}

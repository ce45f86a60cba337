package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTallyRecord(t *testing.T) {
	tally := NewTally()
	tally.Record(Result{Outcome: OutcomeStarted})
	tally.Record(Result{Outcome: OutcomeWon, Summary: &Summary{DeckSize: 8, Mismatches: 4}})
	tally.Record(Result{Outcome: OutcomeStarted})
	tally.Record(Result{Outcome: OutcomeWon, Summary: &Summary{DeckSize: 8, Mismatches: 2}})
	tally.Record(Result{Outcome: OutcomeStarted})
	tally.Record(Result{Outcome: OutcomeWon, Summary: &Summary{DeckSize: 8, Mismatches: 6}})
	tally.Record(Result{Outcome: OutcomeStarted})
	tally.Record(Result{Outcome: OutcomeTimedOut, Summary: &Summary{DeckSize: 4}})
	tally.Record(Result{Outcome: OutcomeStarted})
	tally.Record(Result{Outcome: OutcomeReset, Summary: &Summary{DeckSize: 2}})
	tally.Record(Result{Outcome: OutcomeReset}) // reset from Setup
	tally.Record(Result{Outcome: OutcomeMatched})

	assert.Equal(t, 5, tally.Started)
	assert.Equal(t, 3, tally.Won)
	assert.Equal(t, 1, tally.TimedOut)
	assert.Equal(t, 1, tally.Abandoned)

	best, ok := tally.BestFor(8)
	assert.True(t, ok)
	assert.Equal(t, 2, best)

	_, ok = tally.BestFor(4)
	assert.False(t, ok)
}

func TestTallyBestsOrdered(t *testing.T) {
	tally := NewTally()
	tally.Record(Result{Outcome: OutcomeWon, Summary: &Summary{DeckSize: 16, Mismatches: 9}})
	tally.Record(Result{Outcome: OutcomeWon, Summary: &Summary{DeckSize: 4, Mismatches: 0}})
	tally.Record(Result{Outcome: OutcomeWon, Summary: &Summary{DeckSize: 12, Mismatches: 3}})

	assert.Equal(t, []Best{
		{DeckSize: 4, Mismatches: 0},
		{DeckSize: 12, Mismatches: 3},
		{DeckSize: 16, Mismatches: 9},
	}, tally.Bests())
}

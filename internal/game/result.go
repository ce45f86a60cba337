package game

import "time"

// EffectKind identifies a deferred action the caller must schedule
type EffectKind int

const (
	EffectScheduleTick   EffectKind = iota // Deliver Tick after Delay
	EffectScheduleRevert                   // Deliver Revert after Delay
)

// Effect asks the caller to call back into the engine after Delay,
// passing Generation so stale callbacks can be dropped.
type Effect struct {
	Kind       EffectKind
	Generation uint64
	Delay      time.Duration
}

// Outcome describes what a transition did
type Outcome string

const (
	OutcomeNone         Outcome = ""
	OutcomeStarted      Outcome = "started"
	OutcomeRevealed     Outcome = "revealed"
	OutcomeMatched      Outcome = "matched"
	OutcomeMismatched   Outcome = "mismatched"
	OutcomeReverted     Outcome = "reverted"
	OutcomeTicked       Outcome = "ticked"
	OutcomeWon          Outcome = "won"
	OutcomeTimedOut     Outcome = "timed_out"
	OutcomeReset        Outcome = "reset"
	OutcomeInconsistent Outcome = "inconsistent"
)

// Summary records how a finished session stood just before it was cleared
type Summary struct {
	SessionID        string
	DeckSize         int
	MatchedPairs     int
	Mismatches       int
	Timed            bool
	SecondsRemaining int
}

// Result is returned by every transition. A zero Result means nothing changed.
type Result struct {
	Outcome Outcome
	Effects []Effect
	Summary *Summary // Set when a Playing session ends
}

// Changed reports whether the transition altered the session
func (r Result) Changed() bool {
	return r.Outcome != OutcomeNone
}

func summarize(s Session) *Summary {
	return &Summary{
		SessionID:        s.ID,
		DeckSize:         s.DeckSize,
		MatchedPairs:     s.MatchedPairs,
		Mismatches:       s.Mismatches,
		Timed:            s.Timed,
		SecondsRemaining: s.SecondsRemaining,
	}
}

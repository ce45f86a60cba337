package game

import "sort"

// Best is the best win recorded for one deck size
type Best struct {
	DeckSize   int
	Mismatches int
}

// Tally counts results for the lifetime of the process. It is not saved.
type Tally struct {
	Started   int
	Won       int
	TimedOut  int
	Abandoned int
	best      map[int]int // deck size -> fewest mismatches on a win
}

// NewTally returns an empty tally
func NewTally() *Tally {
	return &Tally{best: make(map[int]int)}
}

// Record folds a transition result into the tally
func (t *Tally) Record(res Result) {
	switch res.Outcome {
	case OutcomeStarted:
		t.Started++
	case OutcomeWon:
		t.Won++
		if res.Summary != nil {
			prev, ok := t.best[res.Summary.DeckSize]
			if !ok || res.Summary.Mismatches < prev {
				t.best[res.Summary.DeckSize] = res.Summary.Mismatches
			}
		}
	case OutcomeTimedOut:
		t.TimedOut++
	case OutcomeReset, OutcomeInconsistent:
		// Only a reset of a running game counts as abandoned
		if res.Summary != nil {
			t.Abandoned++
		}
	}
}

// BestFor returns the fewest mismatches of any win at deckSize
func (t *Tally) BestFor(deckSize int) (int, bool) {
	m, ok := t.best[deckSize]
	return m, ok
}

// Bests returns all best results ordered by deck size
func (t *Tally) Bests() []Best {
	out := make([]Best, 0, len(t.best))
	for size, m := range t.best {
		out = append(out, Best{DeckSize: size, Mismatches: m})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DeckSize < out[j].DeckSize })
	return out
}

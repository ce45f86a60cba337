package model

// Phase represents the coarse lifecycle state of a session
type Phase string

const (
	PhaseSetup    Phase = "setup"
	PhasePlaying  Phase = "playing"
	PhaseWon      Phase = "won"
	PhaseTimedOut Phase = "timed_out"
)

// IsIdle reports whether a new game may be started from this phase.
// Won and TimedOut are cleared rest states, same as Setup.
func (p Phase) IsIdle() bool {
	return p != PhasePlaying
}

// Label returns the display label for the phase
func (p Phase) Label() string {
	switch p {
	case PhaseSetup:
		return "Setup"
	case PhasePlaying:
		return "Playing"
	case PhaseWon:
		return "Won"
	case PhaseTimedOut:
		return "Timed out"
	default:
		return "Unknown"
	}
}

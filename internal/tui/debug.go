package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/memorymatch/tui-go/internal/game"
)

// DebugPanel shows recent game transitions next to the board
type DebugPanel struct {
	enabled bool     // Whether debug panel is enabled
	lines   []string // Recent transition lines
	buffer  int      // Max lines to keep in buffer
}

// NewDebugPanel creates a new debug panel
func NewDebugPanel(enabled bool) DebugPanel {
	return DebugPanel{
		enabled: enabled,
		buffer:  100,
	}
}

// IsEnabled returns whether debug mode is enabled
func (d *DebugPanel) IsEnabled() bool {
	return d.enabled
}

// AddLine adds a new debug line with timestamp
func (d *DebugPanel) AddLine(line string) {
	if !d.enabled {
		return
	}
	timestamp := time.Now().Format("15:04:05.000")
	d.lines = append(d.lines, timestamp+" "+line)
	if len(d.lines) > d.buffer {
		d.lines = d.lines[len(d.lines)-d.buffer:]
	}
}

// AddResult records a transition with the counters it left behind
func (d *DebugPanel) AddResult(res game.Result, snap game.Snapshot) {
	if !d.enabled || !res.Changed() {
		return
	}
	line := "[" + string(res.Outcome) + "]"
	if s := res.Summary; s != nil {
		line += fmt.Sprintf(" final pairs=%d/%d misses=%d", s.MatchedPairs, s.DeckSize/2, s.Mismatches)
	} else {
		line += fmt.Sprintf(" pairs=%d/%d misses=%d", snap.MatchedPairs, snap.DeckSize/2, snap.Mismatches)
		if snap.Timed {
			line += fmt.Sprintf(" t=%d", snap.SecondsRemaining)
		}
	}
	for _, e := range res.Effects {
		switch e.Kind {
		case game.EffectScheduleTick:
			line += fmt.Sprintf(" +tick(g%d)", e.Generation)
		case game.EffectScheduleRevert:
			line += fmt.Sprintf(" +revert(g%d,%s)", e.Generation, e.Delay)
		}
	}
	d.AddLine(line)
}

// Lines returns the current debug lines
func (d *DebugPanel) Lines() []string {
	return d.lines
}

// Render renders the debug panel
func (d *DebugPanel) Render(width, height int) string {
	if !d.enabled {
		return ""
	}

	title := lipgloss.NewStyle().
		Foreground(ColorYellow).
		Bold(true).
		Render("DEBUG")

	// Title and borders take four rows
	contentHeight := height - 4
	if contentHeight < 1 {
		contentHeight = 1
	}

	var lines []string
	startIdx := 0
	if len(d.lines) > contentHeight {
		startIdx = len(d.lines) - contentHeight
	}
	maxLen := width - 4
	if maxLen < 10 {
		maxLen = 10
	}
	for _, line := range d.lines[startIdx:] {
		lines = append(lines, truncate(line, maxLen))
	}
	for len(lines) < contentHeight {
		lines = append(lines, "")
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorYellow).
		Padding(0, 1).
		Render(title + "\n" + strings.Join(lines, "\n"))
}

package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/memorymatch/tui-go/internal/game"
	"github.com/memorymatch/tui-go/internal/model"
)

// maxBoardColumns caps how many cards sit on one row
const maxBoardColumns = 4

// boardColumns returns the grid width for a deck
func boardColumns(deckSize int) int {
	if deckSize < maxBoardColumns {
		return deckSize
	}
	return maxBoardColumns
}

// cardView maps one card to its tile: face or placeholder, styled by state
func cardView(card model.Card, matched, pending, selected bool) string {
	style := CardHiddenStyle
	switch {
	case matched:
		style = CardMatchedStyle
	case pending:
		style = CardPendingStyle
	}
	if selected {
		style = style.BorderForeground(CardCursorBorder)
	}
	return style.Render(card.Face())
}

// renderBoard lays the deck out in rows
func renderBoard(snap game.Snapshot, cursor int) string {
	cols := boardColumns(len(snap.Deck))
	if cols == 0 {
		return ""
	}

	pending := make(map[int]bool, len(snap.Pending))
	for _, i := range snap.Pending {
		pending[i] = true
	}

	var rows []string
	for start := 0; start < len(snap.Deck); start += cols {
		end := start + cols
		if end > len(snap.Deck) {
			end = len(snap.Deck)
		}
		tiles := make([]string, 0, cols)
		for i := start; i < end; i++ {
			tiles = append(tiles, cardView(snap.Deck[i], snap.Matched[i], pending[i], i == cursor))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, tiles...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// moveCursor steps the board cursor within the grid, clamping at edges
func moveCursor(cursor, dx, dy, deckSize int) int {
	cols := boardColumns(deckSize)
	if cols == 0 {
		return 0
	}
	row, col := cursor/cols, cursor%cols
	col += dx
	row += dy
	if col < 0 {
		col = 0
	}
	if col >= cols {
		col = cols - 1
	}
	if row < 0 {
		row = 0
	}
	next := row*cols + col
	if next >= deckSize {
		// Clamp to the same column on the last row, or the last card
		lastRow := (deckSize - 1) / cols
		next = lastRow*cols + col
		if next >= deckSize {
			next = deckSize - 1
		}
	}
	return next
}

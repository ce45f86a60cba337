package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/memorymatch/tui-go/internal/config"
	"github.com/memorymatch/tui-go/internal/game"
	"github.com/memorymatch/tui-go/internal/model"
)

// ViewMode represents the current view
type ViewMode int

const (
	ViewModeSetup ViewMode = iota // Deck and duration selection
	ViewModePlay                  // Board
	ViewModeHelp                  // Help overlay
)

// Overlay is a dismissable end-of-game notice
type Overlay int

const (
	OverlayNone Overlay = iota
	OverlayWon
	OverlayTimedOut
)

// setupField is the list focused on the setup screen
type setupField int

const (
	fieldDeck setupField = iota
	fieldDuration
)

// Messages
type countdownTickMsg struct {
	generation uint64
}

type revertMsg struct {
	generation uint64
}

// lowTimeThreshold turns the timer red
const lowTimeThreshold = 5

// Model is the root Bubble Tea model
type Model struct {
	// Terminal dimensions
	width  int
	height int
	ready  bool

	// View state
	viewMode   ViewMode
	returnMode ViewMode // Where the help overlay goes back to
	overlay    Overlay
	summary    *game.Summary // Last finished game, shown in the overlay

	// Configuration and game
	cfg  *config.Config
	ctrl *game.Controller

	// Setup selection
	deckOptions     []model.DeckOption
	durationOptions []model.DurationOption
	focus           setupField
	deckIdx         int // Highlighted deck option
	durationIdx     int // Highlighted duration option
	chosenDeck      int // Chosen deck option, -1 for none
	chosenDuration  int // Chosen duration option, -1 for untimed
	startErr        string

	// Board
	cursor int

	// Widgets
	keys     KeyMap
	help     help.Model
	progress progress.Model
	debug    DebugPanel
}

// NewRootModel creates a new root model in the setup screen.
// Deck size and duration are preselected from cfg when set.
func NewRootModel(cfg *config.Config, ctrl *game.Controller) Model {
	if cfg == nil {
		cfg = config.Default()
	}

	m := Model{
		viewMode:        ViewModeSetup,
		cfg:             cfg,
		ctrl:            ctrl,
		deckOptions:     config.DeckOptions(),
		durationOptions: config.DurationOptions(),
		keys:            DefaultKeyMap(),
		help:            help.New(),
		progress:        progress.New(progress.WithDefaultGradient(), progress.WithWidth(30)),
		debug:           NewDebugPanel(cfg.Debug),
	}
	m.resetChoices()
	return m
}

// resetChoices restores the setup lists to the configured defaults
func (m *Model) resetChoices() {
	m.chosenDeck = config.DeckOptionIndex(m.cfg.DeckSize)
	m.chosenDuration = -1
	if m.cfg.Duration > 0 {
		m.chosenDuration = config.DurationOptionIndex(m.cfg.Duration)
	}

	m.deckIdx = 0
	if m.chosenDeck >= 0 {
		m.deckIdx = m.chosenDeck
	}
	m.durationIdx = 0
	for i, o := range m.durationOptions {
		if o.Recommended {
			m.durationIdx = i
		}
	}
	if m.chosenDuration >= 0 {
		m.durationIdx = m.chosenDuration
	}
	m.focus = fieldDeck
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// scheduleEffects turns engine effects into timer commands
func scheduleEffects(effects []game.Effect) tea.Cmd {
	if len(effects) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(effects))
	for _, e := range effects {
		gen := e.Generation
		switch e.Kind {
		case game.EffectScheduleTick:
			cmds = append(cmds, tea.Tick(e.Delay, func(time.Time) tea.Msg {
				return countdownTickMsg{generation: gen}
			}))
		case game.EffectScheduleRevert:
			cmds = append(cmds, tea.Tick(e.Delay, func(time.Time) tea.Msg {
				return revertMsg{generation: gen}
			}))
		}
	}
	return tea.Batch(cmds...)
}

// handleResult updates the view for a transition and schedules its effects
func (m *Model) handleResult(res game.Result) tea.Cmd {
	m.debug.AddResult(res, m.ctrl.Snapshot())

	switch res.Outcome {
	case game.OutcomeWon:
		m.endGame(OverlayWon, res.Summary)
	case game.OutcomeTimedOut:
		m.endGame(OverlayTimedOut, res.Summary)
	case game.OutcomeInconsistent:
		m.endGame(OverlayNone, nil)
		m.startErr = "The board got out of sync and was reset"
	}
	return scheduleEffects(res.Effects)
}

// endGame returns to setup, optionally raising an overlay
func (m *Model) endGame(overlay Overlay, summary *game.Summary) {
	m.overlay = overlay
	m.summary = summary
	m.viewMode = ViewModeSetup
	m.cursor = 0
	m.resetChoices()
}

// startGame asks the controller for a new session with the chosen options
func (m *Model) startGame() tea.Cmd {
	if m.chosenDeck < 0 {
		m.startErr = "Choose a deck size first"
		return nil
	}
	deckSize := m.deckOptions[m.chosenDeck].Cards
	duration := 0
	if m.chosenDuration >= 0 {
		duration = m.durationOptions[m.chosenDuration].Seconds
	}

	res, err := m.ctrl.Start(deckSize, duration)
	if err != nil {
		m.startErr = "Cannot start: " + err.Error()
		return nil
	}
	m.startErr = ""
	m.overlay = OverlayNone
	m.viewMode = ViewModePlay
	m.cursor = 0
	return m.handleResult(res)
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.help.Width = msg.Width

		barWidth := msg.Width / 3
		if barWidth < 10 {
			barWidth = 10
		}
		m.progress.Width = barWidth
		return m, nil

	case countdownTickMsg:
		return m, m.handleResult(m.ctrl.Tick(msg.generation))

	case revertMsg:
		return m, m.handleResult(m.ctrl.Revert(msg.generation))

	case tea.KeyMsg:
		// Ctrl+C always quits, regardless of state
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}

		// End-of-game overlay swallows keys until dismissed
		if m.overlay != OverlayNone {
			switch {
			case key.Matches(msg, m.keys.Dismiss):
				m.overlay = OverlayNone
			case key.Matches(msg, m.keys.Quit):
				return m, tea.Quit
			}
			return m, nil
		}

		if m.viewMode == ViewModeHelp {
			if key.Matches(msg, m.keys.Help) || msg.Type == tea.KeyEsc {
				m.viewMode = m.returnMode
			} else if key.Matches(msg, m.keys.Quit) {
				return m, tea.Quit
			}
			return m, nil
		}

		if key.Matches(msg, m.keys.Help) {
			m.returnMode = m.viewMode
			m.viewMode = ViewModeHelp
			return m, nil
		}

		if m.viewMode == ViewModeSetup {
			return m.updateSetup(msg)
		}
		return m.updatePlay(msg)
	}

	return m, nil
}

// updateSetup handles keys on the setup screen
func (m Model) updateSetup(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Tab), key.Matches(msg, m.keys.Left), key.Matches(msg, m.keys.Right):
		if m.focus == fieldDeck {
			m.focus = fieldDuration
		} else {
			m.focus = fieldDeck
		}
	case key.Matches(msg, m.keys.Up):
		if m.focus == fieldDeck && m.deckIdx > 0 {
			m.deckIdx--
		} else if m.focus == fieldDuration && m.durationIdx > 0 {
			m.durationIdx--
		}
	case key.Matches(msg, m.keys.Down):
		if m.focus == fieldDeck && m.deckIdx < len(m.deckOptions)-1 {
			m.deckIdx++
		} else if m.focus == fieldDuration && m.durationIdx < len(m.durationOptions)-1 {
			m.durationIdx++
		}
	case key.Matches(msg, m.keys.Select):
		m.startErr = ""
		if m.focus == fieldDeck {
			m.chosenDeck = m.deckIdx
		} else if m.durationOptions[m.durationIdx].Untimed() {
			m.chosenDuration = -1
		} else {
			m.chosenDuration = m.durationIdx
		}
	case key.Matches(msg, m.keys.Start):
		return m, m.startGame()
	}
	return m, nil
}

// updatePlay handles keys while the board is shown
func (m Model) updatePlay(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	deckSize := len(m.ctrl.Session().Deck)

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Reset):
		res := m.ctrl.Reset()
		cmd := m.handleResult(res)
		m.endGame(OverlayNone, nil)
		return m, cmd
	case key.Matches(msg, m.keys.Left):
		m.cursor = moveCursor(m.cursor, -1, 0, deckSize)
	case key.Matches(msg, m.keys.Right):
		m.cursor = moveCursor(m.cursor, 1, 0, deckSize)
	case key.Matches(msg, m.keys.Up):
		m.cursor = moveCursor(m.cursor, 0, -1, deckSize)
	case key.Matches(msg, m.keys.Down):
		m.cursor = moveCursor(m.cursor, 0, 1, deckSize)
	case key.Matches(msg, m.keys.Select):
		return m, m.handleResult(m.ctrl.Reveal(m.cursor))
	}
	return m, nil
}

// View renders the UI
func (m Model) View() string {
	var body string
	switch {
	case m.overlay != OverlayNone:
		body = m.overlayView()
	case m.viewMode == ViewModeHelp:
		body = m.helpView()
	case m.viewMode == ViewModePlay:
		body = m.playView()
	default:
		body = m.setupView()
	}

	if m.debug.IsEnabled() && m.ready {
		debugWidth := 44
		panel := m.debug.Render(debugWidth, m.height)
		return lipgloss.JoinHorizontal(lipgloss.Top, body, panel)
	}
	return body
}

// place centers content in the area left of the debug panel
func (m Model) place(content string) string {
	width := m.width
	if m.debug.IsEnabled() {
		width -= 44
	}
	return lipgloss.Place(width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// renderHeader renders the title line
func (m Model) renderHeader(subtitle string) string {
	return HeaderStyle.Render("MEMORY MATCH") + SubtitleStyle.Render(" · "+subtitle)
}

// setupView renders deck and duration selection
func (m Model) setupView() string {
	deckList := m.renderOptionList(
		"Difficulty",
		m.focus == fieldDeck,
		len(m.deckOptions),
		func(i int) string { return m.deckOptions[i].Label },
		m.deckIdx,
		func(i int) bool { return i == m.chosenDeck },
	)
	durationList := m.renderOptionList(
		"Duration",
		m.focus == fieldDuration,
		len(m.durationOptions),
		func(i int) string {
			o := m.durationOptions[i]
			if o.Recommended {
				return o.Label + " (Recommended)"
			}
			return o.Label
		},
		m.durationIdx,
		func(i int) bool {
			if m.chosenDuration < 0 {
				return m.durationOptions[i].Untimed()
			}
			return i == m.chosenDuration
		},
	)

	var content strings.Builder
	content.WriteString(m.renderHeader("Select a game"))
	content.WriteString("\n\n")
	content.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, deckList, " ", durationList))
	content.WriteString("\n\n")

	startLabel := "Press s to start"
	if m.chosenDeck < 0 {
		startLabel = DimStyle.Render("Choose a deck size to enable start")
	} else {
		startLabel = SectionTitleStyle.Render(startLabel)
	}
	content.WriteString(startLabel)

	if m.startErr != "" {
		content.WriteString("\n")
		content.WriteString(ErrorStyle.Render(m.startErr))
	}

	if tally := m.renderTally(); tally != "" {
		content.WriteString("\n\n")
		content.WriteString(tally)
	}

	content.WriteString("\n\n")
	content.WriteString(m.help.View(m.keys.setupHelp()))

	return m.place(content.String())
}

// renderOptionList renders one selectable list of the setup screen
func (m Model) renderOptionList(title string, focused bool, n int, label func(int) string, highlighted int, chosen func(int) bool) string {
	var b strings.Builder
	b.WriteString(SectionTitleStyle.Render(title))
	b.WriteString("\n\n")
	for i := 0; i < n; i++ {
		mark := "  "
		if chosen(i) {
			mark = OptionChosenMarkStyle.Render("✓ ")
		}
		if i == highlighted && focused {
			b.WriteString(OptionSelectedStyle.Render("▸ " + label(i)))
		} else {
			b.WriteString(OptionStyle.Render("  " + label(i)))
		}
		b.WriteString(mark)
		b.WriteString("\n")
	}

	style := PanelStyle
	if focused {
		style = PanelFocusedStyle
	}
	return style.Render(strings.TrimRight(b.String(), "\n"))
}

// renderTally renders results of earlier games in this run
func (m Model) renderTally() string {
	t := m.ctrl.Tally()
	if t.Started == 0 {
		return ""
	}
	line := fmt.Sprintf("Played %d · Won %d · Timed out %d · Reset %d", t.Started, t.Won, t.TimedOut, t.Abandoned)
	var bests []string
	for _, b := range t.Bests() {
		bests = append(bests, fmt.Sprintf("%d cards: %d misses", b.DeckSize, b.Mismatches))
	}
	if len(bests) > 0 {
		line += "\nBest · " + strings.Join(bests, " · ")
	}
	return DimStyle.Render(line)
}

// playView renders the board with score, attempts and timer
func (m Model) playView() string {
	snap := m.ctrl.Snapshot()

	score := "Score: " + ScoreBadgeStyle.Render(itoa(snap.MatchedPairs))
	attempts := "Attempts: " + AttemptsBadgeStyle.Render(itoa(snap.Mismatches))
	timer := TimerStyle.Render("Untimed")
	if snap.Timed {
		style := TimerStyle
		if snap.SecondsRemaining <= lowTimeThreshold {
			style = TimerLowStyle
		}
		timer = style.Render(fmt.Sprintf("Time Remaining: %d seconds", snap.SecondsRemaining))
	}
	stats := lipgloss.JoinHorizontal(lipgloss.Top, score, "   ", attempts, "   ", timer)

	percent := 0.0
	if pairs := snap.DeckSize / 2; pairs > 0 {
		percent = float64(snap.MatchedPairs) / float64(pairs)
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(snap.Phase.Label()),
		"",
		stats,
		m.progress.ViewAs(percent),
		"",
		renderBoard(snap, m.cursor),
		"",
		StatusBarStyle.Render(m.help.View(m.keys.playHelp())),
	)
	return m.place(content)
}

// overlayView renders the win or timeout notice
func (m Model) overlayView() string {
	var title, detail string
	style := OverlayStyle
	switch m.overlay {
	case OverlayWon:
		title = WonTitleStyle.Render("You won the game!")
		style = style.BorderForeground(ColorGreen)
	case OverlayTimedOut:
		title = TimedOutTitleStyle.Render("Time's up!")
		style = style.BorderForeground(ColorRed)
	}

	if s := m.summary; s != nil {
		detail = fmt.Sprintf("%d of %d pairs · %d misses", s.MatchedPairs, s.DeckSize/2, s.Mismatches)
		if s.Timed && m.overlay == OverlayWon {
			detail += fmt.Sprintf(" · %ds left", s.SecondsRemaining)
		}
	}

	content := title
	if detail != "" {
		content += "\n\n" + SubtitleStyle.Render(detail)
	}
	content += "\n\n" + DimStyle.Render("Press esc to close")
	return m.place(style.Render(content))
}

// helpView renders the help overlay
func (m Model) helpView() string {
	h := m.help
	h.ShowAll = true
	content := HelpTitleStyle.Render("Keyboard Shortcuts") + "\n\n" +
		h.View(m.keys) + "\n\n" +
		DimStyle.Render("Press ? or Esc to close")
	return m.place(HelpStyle.Render(content))
}

// Helper functions
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}

func itoa(i int) string {
	return fmt.Sprintf("%d", i)
}

package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the application
type KeyMap struct {
	// Navigation
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Tab   key.Binding

	// Actions
	Select  key.Binding // choose a setup option or reveal a card
	Start   key.Binding
	Reset   key.Binding
	Help    key.Binding
	Dismiss key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "switch list"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter/space", "select"),
		),
		Start: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "start game"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset game"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("esc", "enter", " "),
			key.WithHelp("esc", "close"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns the bindings shown in the status bar
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.Start, k.Reset, k.Help, k.Quit}
}

// FullHelp returns the bindings shown in the help overlay
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.Tab},
		{k.Select, k.Start, k.Reset},
		{k.Help, k.Dismiss, k.Quit},
	}
}

// contextHelp narrows the key map to what applies on one screen
type contextHelp struct {
	short []key.Binding
	full  [][]key.Binding
}

func (c contextHelp) ShortHelp() []key.Binding  { return c.short }
func (c contextHelp) FullHelp() [][]key.Binding { return c.full }

// setupHelp returns the bindings that apply on the setup screen
func (k KeyMap) setupHelp() contextHelp {
	return contextHelp{
		short: []key.Binding{k.Up, k.Tab, k.Select, k.Start, k.Help, k.Quit},
		full:  [][]key.Binding{{k.Up, k.Down, k.Tab}, {k.Select, k.Start}, {k.Help, k.Quit}},
	}
}

// playHelp returns the bindings that apply while a game is running
func (k KeyMap) playHelp() contextHelp {
	return contextHelp{
		short: []key.Binding{k.Left, k.Right, k.Select, k.Reset, k.Help, k.Quit},
		full:  [][]key.Binding{{k.Up, k.Down, k.Left, k.Right}, {k.Select, k.Reset}, {k.Help, k.Quit}},
	}
}

package tui

import "github.com/charmbracelet/lipgloss"

// One Dark Pro color palette
var (
	// Background colors
	ColorBgPrimary   = lipgloss.Color("#282C34")
	ColorBgHighlight = lipgloss.Color("#2C313C")

	// Foreground colors
	ColorFgPrimary = lipgloss.Color("#ABB2BF")
	ColorFgMuted   = lipgloss.Color("#636B78")
	ColorFgComment = lipgloss.Color("#5C6370")

	// Accent colors
	ColorRed     = lipgloss.Color("#E06C75")
	ColorGreen   = lipgloss.Color("#98C379")
	ColorYellow  = lipgloss.Color("#E5C07B")
	ColorBlue    = lipgloss.Color("#61AFEF")
	ColorMagenta = lipgloss.Color("#C678DD")
	ColorCyan    = lipgloss.Color("#56B6C2")

	// UI colors
	ColorBorder = lipgloss.Color("#3F4451")
)

// Component styles
var (
	// Header style
	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorRed).
			Bold(true).
			PaddingLeft(1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorFgMuted)

	SectionTitleStyle = lipgloss.NewStyle().
				Foreground(ColorBlue).
				Bold(true)

	// Setup list styles
	OptionStyle = lipgloss.NewStyle().
			Foreground(ColorFgPrimary).
			Padding(0, 1)

	OptionSelectedStyle = lipgloss.NewStyle().
				Background(ColorBgHighlight).
				Foreground(ColorFgPrimary).
				Bold(true).
				Padding(0, 1)

	OptionChosenMarkStyle = lipgloss.NewStyle().
				Foreground(ColorGreen).
				Bold(true)

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 2)

	PanelFocusedStyle = PanelStyle.
				BorderForeground(ColorBlue)

	// Card styles
	CardHiddenStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Foreground(ColorFgMuted).
			Width(5).
			Align(lipgloss.Center)

	CardPendingStyle = CardHiddenStyle.
				BorderForeground(ColorYellow).
				Foreground(ColorYellow).
				Bold(true)

	CardMatchedStyle = CardHiddenStyle.
				BorderForeground(ColorGreen).
				Foreground(ColorGreen).
				Bold(true)

	CardCursorBorder = ColorMagenta

	// Score badges
	ScoreBadgeStyle = lipgloss.NewStyle().
			Foreground(ColorBgPrimary).
			Background(ColorGreen).
			Bold(true).
			Padding(0, 1)

	AttemptsBadgeStyle = lipgloss.NewStyle().
				Foreground(ColorBgPrimary).
				Background(ColorRed).
				Bold(true).
				Padding(0, 1)

	TimerStyle = lipgloss.NewStyle().
			Foreground(ColorCyan)

	TimerLowStyle = lipgloss.NewStyle().
			Foreground(ColorRed).
			Bold(true)

	// Status bar styles
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(ColorFgMuted).
			PaddingLeft(1).
			PaddingRight(1)

	// Overlay styles
	OverlayStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			Padding(1, 4).
			Align(lipgloss.Center)

	WonTitleStyle = lipgloss.NewStyle().
			Foreground(ColorGreen).
			Bold(true)

	TimedOutTitleStyle = lipgloss.NewStyle().
				Foreground(ColorRed).
				Bold(true)

	// Help overlay styles
	HelpStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 2)

	HelpTitleStyle = lipgloss.NewStyle().
			Foreground(ColorBlue).
			Bold(true)

	// Error styles
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorRed)

	// Dimmed/info style for less important messages
	DimStyle = lipgloss.NewStyle().
			Foreground(ColorFgComment)
)

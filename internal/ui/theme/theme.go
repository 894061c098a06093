package theme

import (
	"charm.land/lipgloss/v2"
)

// Hex values shared with code that blends colours itself.
const (
	BgDarkHex = "#1B1530"
	TextHex   = "#F8FAFC"
)

// Color palette: soft lavender and peach on a dark plum background
var (
	Primary   = lipgloss.Color("#A18CD1") // Lavender
	Secondary = lipgloss.Color("#FBC2EB") // Pink
	Accent    = lipgloss.Color("#FF9A9E") // Peach
	Success   = lipgloss.Color("#84FAB0") // Mint
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color(TextHex)   // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	TextFaint = lipgloss.Color("#4B4563") // Plum grey, used while fading
	BgDark    = lipgloss.Color(BgDarkHex) // Deep Plum
	BgCard    = lipgloss.Color("#2A2145") // Dark Plum
	Border    = lipgloss.Color("#3F3560") // Muted Plum
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	ErrorText = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	// Faded replaces every colour while a screen is fading in or out.
	Faded = lipgloss.NewStyle().
		Foreground(TextFaint)
)

// Components
var (
	DotActive = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	DotInactive = lipgloss.NewStyle().
			Foreground(Border)

	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(BgDark).
			Bold(true).
			Padding(0, 2)

	InputBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 1)

	InputBoxError = InputBox.
			BorderForeground(Error)

	ResultNumber = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)
)

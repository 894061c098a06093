package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/agequiz/internal/ui/layout"
)

// ID names one of the mutually exclusive screens.
type ID int

const (
	Start ID = iota
	Question
	Result
)

func (id ID) String() string {
	switch id {
	case Start:
		return "start"
	case Question:
		return "question"
	case Result:
		return "result"
	default:
		return "unknown"
	}
}

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen becomes visible.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// BeginMsg is emitted by the start screen when the player starts the quiz.
type BeginMsg struct{}

// SubmitMsg is emitted by the question screen with the raw input text.
type SubmitMsg struct {
	Raw string
}

// RestartMsg is emitted by the result screen to go back to the start.
type RestartMsg struct{}

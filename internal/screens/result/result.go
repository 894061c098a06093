package result

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/agequiz/internal/confetti"
	"github.com/abhisek/agequiz/internal/reveal"
	"github.com/abhisek/agequiz/internal/screen"
	"github.com/abhisek/agequiz/internal/ui/components"
	"github.com/abhisek/agequiz/internal/ui/layout"
	"github.com/abhisek/agequiz/internal/ui/theme"
)

// FrameInterval is the counter refresh rate (~60 fps).
const FrameInterval = time.Second / 60

type frameMsg struct {
	gen uint64
	at  time.Time
}

// ResultScreen counts up to the final answer and then fires confetti.
type ResultScreen struct {
	counter   reveal.Counter
	prepared  bool
	running   bool
	done      bool
	startedAt time.Time
	shown     int
	gen       uint64
	button    components.Button
	now       func() time.Time
}

var _ screen.Screen = (*ResultScreen)(nil)
var _ screen.KeyHintProvider = (*ResultScreen)(nil)

// New creates the result screen.
func New() *ResultScreen {
	return &ResultScreen{
		button: components.NewButton("다시 하기", func() tea.Cmd {
			return func() tea.Msg { return screen.RestartMsg{} }
		}),
		now: time.Now,
	}
}

func (s *ResultScreen) Title() string {
	return "결과"
}

func (s *ResultScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "다시 하기"},
		{Key: "Ctrl+C", Description: "종료"},
	}
}

// Prepare sets the value to reveal. The count-up starts when the screen
// becomes active.
func (s *ResultScreen) Prepare(final int) {
	s.Stop()
	s.counter = reveal.NewCounter(final)
	s.prepared = true
	s.done = false
	s.shown = 0
}

// Stop cancels a running count-up; pending frames are dropped.
func (s *ResultScreen) Stop() {
	s.gen++
	s.running = false
	s.prepared = false
}

// Shown returns the number currently displayed.
func (s *ResultScreen) Shown() int {
	return s.shown
}

// Done reports whether the count-up has finished.
func (s *ResultScreen) Done() bool {
	return s.done
}

// Init starts the count-up if a value has been prepared.
func (s *ResultScreen) Init() tea.Cmd {
	if !s.prepared || s.running || s.done {
		return nil
	}
	s.gen++
	s.running = true
	s.startedAt = s.now()
	return s.frame()
}

func (s *ResultScreen) frame() tea.Cmd {
	gen := s.gen
	return tea.Tick(FrameInterval, func(t time.Time) tea.Msg {
		return frameMsg{gen: gen, at: t}
	})
}

func (s *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		return s.handleFrame(msg)

	case tea.KeyMsg:
		if msg.String() == "r" {
			return s, func() tea.Msg { return screen.RestartMsg{} }
		}
		var cmd tea.Cmd
		s.button, cmd = s.button.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *ResultScreen) handleFrame(msg frameMsg) (screen.Screen, tea.Cmd) {
	if msg.gen != s.gen || !s.running {
		return s, nil
	}

	elapsed := msg.at.Sub(s.startedAt)
	s.shown = s.counter.Value(elapsed)
	if !s.counter.Done(elapsed) {
		return s, s.frame()
	}

	s.running = false
	s.done = true
	return s, func() tea.Msg { return confetti.BurstMsg{} }
}

func (s *ResultScreen) View(width, height int) string {
	number := theme.ResultNumber.Render(renderBig(s.shown))
	unit := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("세")
	counter := lipgloss.JoinHorizontal(lipgloss.Bottom, number, "  ", unit)

	sections := []string{
		theme.Subtitle.Render("당신의 나이는..."),
		"",
		counter,
		"",
	}
	if s.done {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true).
			Render("🎉 맞았나요? 🎉"))
	} else {
		sections = append(sections, " ")
	}
	sections = append(sections, "", s.button.View())

	return components.Center(strings.Join(sections, "\n"), width, height)
}

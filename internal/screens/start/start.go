package start

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/agequiz/internal/screen"
	"github.com/abhisek/agequiz/internal/ui/components"
	"github.com/abhisek/agequiz/internal/ui/layout"
	"github.com/abhisek/agequiz/internal/ui/theme"
)

const tickInterval = 400 * time.Millisecond

// sparkle frames cycle around the title
var sparkleFrames = []string{"★", "✦"}

type tickMsg struct{ gen uint64 }

// StartScreen invites the player to begin the quiz.
type StartScreen struct {
	button    components.Button
	tickCount int
	gen       uint64
}

var _ screen.Screen = (*StartScreen)(nil)
var _ screen.KeyHintProvider = (*StartScreen)(nil)

// New creates the start screen.
func New() *StartScreen {
	return &StartScreen{
		button: components.NewButton("시작하기", func() tea.Cmd {
			return func() tea.Msg { return screen.BeginMsg{} }
		}),
	}
}

func (s *StartScreen) Title() string {
	return ""
}

func (s *StartScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "시작"},
		{Key: "Ctrl+C", Description: "종료"},
	}
}

// Init restarts the sparkle animation. Older tick chains die out.
func (s *StartScreen) Init() tea.Cmd {
	s.gen++
	return s.tick()
}

func (s *StartScreen) tick() tea.Cmd {
	gen := s.gen
	return tea.Tick(tickInterval, func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}

func (s *StartScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if msg.gen != s.gen {
			return s, nil
		}
		s.tickCount++
		return s, s.tick()

	case tea.KeyMsg:
		var cmd tea.Cmd
		s.button, cmd = s.button.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *StartScreen) View(width, height int) string {
	sparkle := sparkleFrames[s.tickCount%len(sparkleFrames)]
	accent := lipgloss.NewStyle().Foreground(theme.Accent).Render(sparkle)
	secondary := lipgloss.NewStyle().Foreground(theme.Secondary).Render(sparkle)

	title := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render("숫자 다섯 개로 알아보는 당신의 나이")

	sections := []string{
		RenderBanner(width, layout.IsCompactHeight(height)),
		"",
		accent + "  " + title + "  " + secondary,
		"",
		theme.Subtitle.Render("다섯 개의 질문에 숫자로 답해 주세요"),
		"",
		s.button.View(),
	}

	return components.Center(strings.Join(sections, "\n"), width, height)
}

package question

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/abhisek/agequiz/internal/ui/components"
	"github.com/abhisek/agequiz/internal/ui/theme"
)

func (s *QuestionScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	label := lipgloss.NewStyle().
		Foreground(theme.Accent).
		Bold(true).
		Render(fmt.Sprintf("Q. 0%d", s.index+1))

	prompt := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Width(cw - 6).
		Align(lipgloss.Center).
		Render(s.question.Prompt)

	hint := theme.Hint.Render(s.question.Hint)

	errLine := " "
	if s.errMsg != "" {
		errLine = theme.ErrorText.Render(s.errMsg)
	}

	card := components.Card(strings.Join([]string{
		label,
		"",
		prompt,
		hint,
		"",
		s.input.View(),
		errLine,
	}, "\n"), cw)

	if s.fading {
		// Slide down one line and dim while the next question loads.
		card = "\n" + theme.Faded.Render(ansi.Strip(card))
	}

	dots := components.NewProgressDots(s.total, s.index).View()
	content := dots + "\n\n" + card

	return components.Center(content, width, height)
}

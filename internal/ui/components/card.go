package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/agequiz/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used for all cards.
func ContentWidth(frameWidth int) int {
	// Leave room for card border (2) + inner padding (4)
	w := frameWidth - 6
	if w > 52 {
		w = 52
	}
	if w < 20 {
		w = 20
	}
	return w
}

// Card wraps content in a rounded-border card at the given content width.
func Card(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(1, 2).
		Render(content)
}

// Center places content in the middle of a width x height box.
func Center(content string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

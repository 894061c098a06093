package components

import (
	"strings"

	"github.com/abhisek/agequiz/internal/ui/theme"
)

// ProgressDots shows one dot per question; dots up to Current are lit.
type ProgressDots struct {
	Total   int
	Current int
}

// NewProgressDots creates a dot row for total questions at current.
func NewProgressDots(total, current int) ProgressDots {
	return ProgressDots{Total: total, Current: current}
}

// Active reports whether dot i is lit.
func (p ProgressDots) Active(i int) bool {
	return i <= p.Current
}

// View renders the dots.
func (p ProgressDots) View() string {
	dots := make([]string, 0, p.Total)
	for i := 0; i < p.Total; i++ {
		if p.Active(i) {
			dots = append(dots, theme.DotActive.Render("●"))
		} else {
			dots = append(dots, theme.DotInactive.Render("○"))
		}
	}
	return strings.Join(dots, " ")
}

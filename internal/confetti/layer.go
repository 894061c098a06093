package confetti

import (
	"math/rand/v2"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/abhisek/agequiz/internal/ui/theme"
)

// TickInterval is the animation step of the layer.
const TickInterval = 50 * time.Millisecond

// BurstMsg asks the layer to spawn a burst.
type BurstMsg struct{}

type tickMsg struct{}

// Layer owns live particles and renders them over a frame.
type Layer struct {
	rng       *rand.Rand
	particles []Particle
	clock     time.Duration
	ticking   bool
}

// NewLayer creates an empty layer. A nil rng uses a randomly seeded source.
func NewLayer(rng *rand.Rand) *Layer {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Layer{rng: rng}
}

// Live returns the number of particles currently on screen.
func (l *Layer) Live() int {
	return len(l.particles)
}

// Update handles BurstMsg and the layer's own ticks.
func (l *Layer) Update(msg tea.Msg) tea.Cmd {
	switch msg.(type) {
	case BurstMsg:
		l.particles = append(l.particles, Burst(l.rng, l.clock)...)
		if l.ticking {
			return nil
		}
		l.ticking = true
		return tick()

	case tickMsg:
		l.clock += TickInterval
		live := l.particles[:0]
		for _, p := range l.particles {
			if !p.Expired(l.clock) {
				live = append(live, p)
			}
		}
		l.particles = live
		if len(l.particles) == 0 {
			l.ticking = false
			return nil
		}
		return tick()
	}
	return nil
}

// Overlay draws the live particles on top of frame.
func (l *Layer) Overlay(frame string, width, height int) string {
	if len(l.particles) == 0 || width <= 0 || height <= 0 {
		return frame
	}

	lines := strings.Split(frame, "\n")
	bg, _ := colorful.Hex(theme.BgDarkHex)

	for _, p := range l.particles {
		alpha := p.Alpha(l.clock)
		if alpha < 0.05 {
			continue
		}
		row := int(p.Progress(l.clock) * float64(height-1))
		col := int(p.Left * float64(width-1))
		if row < 0 || row >= len(lines) {
			continue
		}

		c, err := colorful.Hex(p.Color)
		if err != nil {
			continue
		}
		glyph := lipgloss.NewStyle().
			Foreground(bg.BlendRgb(c, alpha)).
			Render(p.Glyph(l.clock))
		lines[row] = placeAt(lines[row], col, glyph)
	}

	return strings.Join(lines, "\n")
}

// placeAt replaces the single cell at col with glyph, padding short lines.
func placeAt(line string, col int, glyph string) string {
	w := ansi.StringWidth(line)
	if w <= col {
		return line + strings.Repeat(" ", col-w) + glyph
	}
	return ansi.Truncate(line, col, "") + glyph + ansi.TruncateLeft(line, col+1, "")
}

func tick() tea.Cmd {
	return tea.Tick(TickInterval, func(time.Time) tea.Msg {
		return tickMsg{}
	})
}

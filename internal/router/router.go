package router

import (
	"log/slog"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/agequiz/internal/screen"
)

const (
	// FadeOut is how long the outgoing screen fades before it is hidden.
	FadeOut = 300 * time.Millisecond
	// RevealDelay is the pause between showing the incoming screen and activating it.
	RevealDelay = 50 * time.Millisecond
)

// Phase is where the router is in a screen handoff.
type Phase int

const (
	Settled   Phase = iota // Visible screen fully shown
	FadingOut              // Visible screen is the outgoing one, fading
	Revealing              // Visible screen is the incoming one, not yet active
)

// SwitchMsg asks the router to hand off from one screen to another.
type SwitchMsg struct {
	From, To screen.ID
}

// hiddenMsg fires when the fade-out has finished.
type hiddenMsg struct{ gen uint64 }

// activeMsg fires when the incoming screen becomes active.
type activeMsg struct{ gen uint64 }

// SettledMsg is emitted after a handoff completes.
type SettledMsg struct {
	Visible screen.ID
}

// Router holds the three screens and shows exactly one of them.
type Router struct {
	screens map[screen.ID]screen.Screen
	visible screen.ID
	target  screen.ID
	phase   Phase
	gen     uint64
	log     *slog.Logger
}

// New creates a Router with initial visible.
func New(screens map[screen.ID]screen.Screen, initial screen.ID, log *slog.Logger) *Router {
	if log == nil {
		log = slog.Default()
	}
	return &Router{
		screens: screens,
		visible: initial,
		target:  initial,
		log:     log,
	}
}

// Visible returns the screen currently drawn.
func (r *Router) Visible() screen.ID {
	return r.visible
}

// Phase returns the current handoff phase.
func (r *Router) Phase() Phase {
	return r.phase
}

// Active returns the visible screen.
func (r *Router) Active() screen.Screen {
	return r.screens[r.visible]
}

// Get returns the screen registered under id.
func (r *Router) Get(id screen.ID) screen.Screen {
	return r.screens[id]
}

// Switch starts a handoff from -> to. A handoff already in flight is
// abandoned; the new one starts from whatever screen is visible.
func (r *Router) Switch(from, to screen.ID) tea.Cmd {
	if r.phase != Settled {
		r.log.Debug("transition superseded",
			"from", r.visible.String(), "pending", r.target.String(), "to", to.String())
	}
	if from != r.visible {
		r.log.Debug("transition source is not visible",
			"from", from.String(), "visible", r.visible.String())
	}

	r.gen++
	r.target = to
	r.phase = FadingOut
	gen := r.gen
	return tea.Tick(FadeOut, func(time.Time) tea.Msg {
		return hiddenMsg{gen: gen}
	})
}

// Reset drops any handoff in flight and shows id immediately.
func (r *Router) Reset(id screen.ID) tea.Cmd {
	r.gen++
	r.visible = id
	r.target = id
	r.phase = Settled
	if s := r.screens[id]; s != nil {
		return s.Init()
	}
	return nil
}

// Update handles handoff timers and forwards everything else to the
// visible screen.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case SwitchMsg:
		return r.Switch(msg.From, msg.To)

	case hiddenMsg:
		if msg.gen != r.gen {
			return nil
		}
		r.visible = r.target
		r.phase = Revealing
		gen := r.gen
		return tea.Tick(RevealDelay, func(time.Time) tea.Msg {
			return activeMsg{gen: gen}
		})

	case activeMsg:
		if msg.gen != r.gen {
			return nil
		}
		r.phase = Settled
		visible := r.visible
		var initCmd tea.Cmd
		if s := r.screens[visible]; s != nil {
			initCmd = s.Init()
		}
		return tea.Batch(initCmd, func() tea.Msg {
			return SettledMsg{Visible: visible}
		})
	}

	// Input is held back until the incoming screen is active.
	if _, ok := msg.(tea.KeyMsg); ok && r.phase != Settled {
		return nil
	}

	active := r.Active()
	if active == nil {
		return nil
	}
	updated, cmd := active.Update(msg)
	r.screens[r.visible] = updated
	return cmd
}

// View renders the visible screen. While a handoff is running the output
// is passed through fade so callers can dim or offset it.
func (r *Router) View(width, height int, fade func(content string, p Phase) string) string {
	active := r.Active()
	if active == nil {
		return ""
	}
	content := active.View(width, height)
	if r.phase == Settled || fade == nil {
		return content
	}
	return fade(content, r.phase)
}

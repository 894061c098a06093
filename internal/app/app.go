package app

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/abhisek/agequiz/internal/catalog"
	"github.com/abhisek/agequiz/internal/confetti"
	"github.com/abhisek/agequiz/internal/quiz"
	"github.com/abhisek/agequiz/internal/router"
	"github.com/abhisek/agequiz/internal/screen"
	"github.com/abhisek/agequiz/internal/screens/question"
	"github.com/abhisek/agequiz/internal/screens/result"
	"github.com/abhisek/agequiz/internal/screens/start"
	"github.com/abhisek/agequiz/internal/ui/layout"
	"github.com/abhisek/agequiz/internal/ui/theme"
	"github.com/abhisek/agequiz/internal/validate"
)

// Options configures the program.
type Options struct {
	Catalog catalog.Catalog
	Logger  *slog.Logger

	// AltScreen runs the UI in the terminal's alternate screen buffer.
	AltScreen bool

	// Rand drives confetti; nil means randomly seeded.
	Rand *rand.Rand
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	machine *quiz.Machine
	state   quiz.State

	start    *start.StartScreen
	question *question.QuestionScreen
	result   *result.ResultScreen
	confetti *confetti.Layer

	log       *slog.Logger
	altScreen bool
	width     int
	height    int
}

// newAppModel wires the quiz to its three screens.
func newAppModel(opts Options) *AppModel {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	m := &AppModel{
		machine:   quiz.NewMachine(opts.Catalog),
		start:     start.New(),
		question:  question.New(opts.Catalog.Len()),
		result:    result.New(),
		confetti:  confetti.NewLayer(opts.Rand),
		log:       log,
		altScreen: opts.AltScreen,
	}
	m.router = router.New(map[screen.ID]screen.Screen{
		screen.Start:    m.start,
		screen.Question: m.question,
		screen.Result:   m.result,
	}, screen.Start, log)
	return m
}

func (m *AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	confettiCmd := m.confetti.Update(msg)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, confettiCmd

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.log.Info("quit", "run", m.state.RunID, "phase", m.state.Phase.String())
			return m, tea.Quit
		}

	case screen.BeginMsg:
		return m, tea.Batch(confettiCmd, m.begin())

	case screen.SubmitMsg:
		return m, tea.Batch(confettiCmd, m.submit(msg.Raw))

	case screen.RestartMsg:
		return m, tea.Batch(confettiCmd, m.restart())
	}

	return m, tea.Batch(confettiCmd, m.router.Update(msg))
}

func (m *AppModel) begin() tea.Cmd {
	next, err := m.machine.Begin(m.state)
	if err != nil {
		m.log.Debug("begin ignored", "phase", m.state.Phase.String(), "err", err)
		return nil
	}
	m.state = next
	m.log.Info("quiz started", "run", m.state.RunID)

	q, _ := m.machine.Current(m.state)
	m.question.Present(m.state.Index, q)
	return m.router.Switch(screen.Start, screen.Question)
}

func (m *AppModel) submit(raw string) tea.Cmd {
	next, err := m.machine.Submit(m.state, raw)
	if err != nil {
		if rej, ok := validate.IsRejection(err); ok {
			m.log.Info("answer rejected",
				"run", m.state.RunID, "question", m.state.Index+1, "reason", rej.Reason.String())
			return m.question.Reject(rej.Message())
		}
		m.log.Debug("submit ignored", "phase", m.state.Phase.String(), "err", err)
		return nil
	}
	m.state = next
	m.log.Info("answer accepted", "run", m.state.RunID, "question", m.state.Index)

	if q, ok := m.machine.Current(m.state); ok {
		return m.question.Advance(m.state.Index, q)
	}

	final, _ := m.state.Final()
	m.log.Info("quiz finished", "run", m.state.RunID, "result", final)
	m.result.Prepare(final)
	return m.router.Switch(screen.Question, screen.Result)
}

func (m *AppModel) restart() tea.Cmd {
	next, err := m.machine.Restart(m.state)
	if err != nil {
		m.log.Debug("restart ignored", "phase", m.state.Phase.String(), "err", err)
		return nil
	}
	m.log.Info("quiz restarted", "run", m.state.RunID)
	m.state = next
	m.result.Stop()
	return m.router.Switch(screen.Result, screen.Start)
}

// step is the header progress label while questions are on screen.
func (m *AppModel) step() string {
	if m.router.Visible() != screen.Question {
		return ""
	}
	return fmt.Sprintf("%d / %d", m.question.Index()+1, m.machine.Catalog().Len())
}

func fade(content string, p router.Phase) string {
	faded := theme.Faded.Render(ansi.Strip(content))
	if p == router.Revealing {
		return "\n" + faded
	}
	return faded
}

func (m *AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = m.altScreen

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	header := layout.RenderHeader(active.Title(), m.step(), m.width)

	footerHints := []layout.KeyHint{
		{Key: "Ctrl+C", Description: "종료"},
	}
	if p, ok := active.(screen.KeyHintProvider); ok {
		footerHints = p.KeyHints()
	}
	footer := layout.RenderFooter(footerHints, m.width)

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight, fade)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(m.confetti.Overlay(frame, m.width, m.height))
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	if opts.Catalog.Len() == 0 {
		return errors.New("app: empty question catalog")
	}
	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

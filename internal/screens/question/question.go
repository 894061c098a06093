package question

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/agequiz/internal/catalog"
	"github.com/abhisek/agequiz/internal/screen"
	"github.com/abhisek/agequiz/internal/ui/components"
	"github.com/abhisek/agequiz/internal/ui/layout"
)

// QuestionScreen asks one question at a time and emits the raw answer.
type QuestionScreen struct {
	index    int
	total    int
	question catalog.Question
	input    components.TextInput
	errMsg   string

	// Between-question handoff.
	fading    bool
	fadeGen   uint64
	pending   *pendingQuestion
	shakeGen  uint64
	shakeStep int
}

type pendingQuestion struct {
	index int
	q     catalog.Question
}

var _ screen.Screen = (*QuestionScreen)(nil)
var _ screen.KeyHintProvider = (*QuestionScreen)(nil)

// New creates the question screen for a catalog of total questions.
func New(total int) *QuestionScreen {
	return &QuestionScreen{
		total: total,
		input: components.NewTextInput("숫자를 입력하세요", 16),
	}
}

func (s *QuestionScreen) Title() string {
	return "질문"
}

func (s *QuestionScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "다음"},
		{Key: "Ctrl+C", Description: "종료"},
	}
}

// Init focuses the input once the screen is active.
func (s *QuestionScreen) Init() tea.Cmd {
	return s.input.Focus()
}

// Index returns the zero-based index of the displayed question.
func (s *QuestionScreen) Index() int {
	return s.index
}

// Fading reports whether the between-question handoff is running.
func (s *QuestionScreen) Fading() bool {
	return s.fading
}

// ErrorMessage returns the validation message on display, if any.
func (s *QuestionScreen) ErrorMessage() string {
	return s.errMsg
}

// Present shows question index immediately, clearing input and error.
// Any handoff in flight is dropped.
func (s *QuestionScreen) Present(index int, q catalog.Question) {
	s.fadeGen++
	s.shakeGen++
	s.fading = false
	s.pending = nil

	s.index = index
	s.question = q
	s.errMsg = ""
	s.input.Clear()
}

// Advance fades the current question out and shows the next one after
// FadeDuration, returning focus to the input.
func (s *QuestionScreen) Advance(index int, q catalog.Question) tea.Cmd {
	s.fadeGen++
	s.shakeGen++
	s.fading = true
	s.pending = &pendingQuestion{index: index, q: q}
	s.input.Blur()

	gen := s.fadeGen
	return tea.Tick(FadeDuration, func(time.Time) tea.Msg {
		return fadeDoneMsg{gen: gen}
	})
}

// Reject shows msg under the input, shakes the box and keeps focus on it.
func (s *QuestionScreen) Reject(msg string) tea.Cmd {
	s.errMsg = msg
	s.input.SetInvalid(true)

	s.shakeGen++
	s.shakeStep = 0
	s.input.SetOffset(shakeOffsets[0])

	gen := s.shakeGen
	return tea.Batch(
		s.input.Focus(),
		tea.Tick(shakeInterval, func(time.Time) tea.Msg {
			return shakeMsg{gen: gen, step: 1}
		}),
	)
}

func (s *QuestionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case fadeDoneMsg:
		return s.handleFadeDone(msg)

	case shakeMsg:
		return s.handleShake(msg)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *QuestionScreen) handleFadeDone(msg fadeDoneMsg) (screen.Screen, tea.Cmd) {
	if msg.gen != s.fadeGen || s.pending == nil {
		return s, nil
	}
	next := *s.pending
	s.Present(next.index, next.q)
	return s, s.input.Focus()
}

func (s *QuestionScreen) handleShake(msg shakeMsg) (screen.Screen, tea.Cmd) {
	if msg.gen != s.shakeGen {
		return s, nil
	}
	s.shakeStep = msg.step
	if s.shakeStep >= len(shakeOffsets) {
		s.input.SetOffset(0)
		return s, nil
	}
	s.input.SetOffset(shakeOffsets[s.shakeStep])

	gen := s.shakeGen
	step := s.shakeStep + 1
	return s, tea.Tick(shakeInterval, func(time.Time) tea.Msg {
		return shakeMsg{gen: gen, step: step}
	})
}

func (s *QuestionScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.fading {
		return s, nil
	}

	if msg.String() == "enter" {
		raw := s.input.Value()
		return s, func() tea.Msg { return screen.SubmitMsg{Raw: raw} }
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

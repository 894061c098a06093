package quiz

import (
	"errors"
	"slices"

	"github.com/google/uuid"

	"github.com/abhisek/agequiz/internal/catalog"
	"github.com/abhisek/agequiz/internal/validate"
)

// Phase is the coarse state of a quiz run.
type Phase int

const (
	PhaseStart  Phase = iota // Waiting for the player to begin
	PhaseAsking              // Collecting answers
	PhaseResult              // Every question answered
)

func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhaseAsking:
		return "asking"
	case PhaseResult:
		return "result"
	default:
		return "unknown"
	}
}

var (
	ErrNotAtStart  = errors.New("quiz: begin is only valid on the start screen")
	ErrNotAsking   = errors.New("quiz: no question is being asked")
	ErrNotFinished = errors.New("quiz: restart is only valid on the result screen")
)

// State is the full quiz state. Transitions take a State and return a new
// one; the zero value is a quiz waiting on the start screen.
type State struct {
	Phase Phase

	// Index is the question being asked. Equals len(Answers) between transitions.
	Index int

	// Answers holds accepted answers in the order they were given.
	Answers []int

	// RunID identifies one pass from Begin to Result, for logging.
	RunID string
}

// Final returns the last collected answer once the quiz is finished.
func (s State) Final() (int, bool) {
	if s.Phase != PhaseResult || len(s.Answers) == 0 {
		return 0, false
	}
	return s.Answers[len(s.Answers)-1], true
}

// Machine applies transitions against a fixed catalog.
type Machine struct {
	catalog catalog.Catalog
	newID   func() string
}

// NewMachine creates a Machine for the given catalog.
func NewMachine(c catalog.Catalog) *Machine {
	return &Machine{
		catalog: c,
		newID:   func() string { return uuid.New().String() },
	}
}

// Catalog returns the question catalog the machine runs against.
func (m *Machine) Catalog() catalog.Catalog {
	return m.catalog
}

// Current returns the question being asked in s.
func (m *Machine) Current(s State) (catalog.Question, bool) {
	if s.Phase != PhaseAsking || s.Index < 0 || s.Index >= m.catalog.Len() {
		return catalog.Question{}, false
	}
	return m.catalog.At(s.Index), true
}

// Begin moves from the start screen to the first question.
func (m *Machine) Begin(s State) (State, error) {
	if s.Phase != PhaseStart {
		return s, ErrNotAtStart
	}
	return State{
		Phase:   PhaseAsking,
		Index:   0,
		Answers: []int{},
		RunID:   m.newID(),
	}, nil
}

// Submit validates raw against the current question. On success the answer
// is recorded and the run moves to the next question, or to the result once
// the catalog is exhausted. On failure s is returned unchanged together with
// a *validate.Rejection.
func (m *Machine) Submit(s State, raw string) (State, error) {
	q, ok := m.Current(s)
	if !ok {
		return s, ErrNotAsking
	}

	v, err := validate.Answer(raw, q)
	if err != nil {
		return s, err
	}

	next := State{
		Phase:   PhaseAsking,
		Index:   s.Index + 1,
		Answers: append(slices.Clone(s.Answers), v),
		RunID:   s.RunID,
	}
	if next.Index >= m.catalog.Len() {
		next.Phase = PhaseResult
	}
	return next, nil
}

// Restart clears the run and returns to the start screen.
func (m *Machine) Restart(s State) (State, error) {
	if s.Phase != PhaseResult {
		return s, ErrNotFinished
	}
	return State{Phase: PhaseStart}, nil
}

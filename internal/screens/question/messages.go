package question

import "time"

// fadeDoneMsg is sent when the between-question fade has finished.
type fadeDoneMsg struct {
	gen uint64
}

// shakeMsg advances the input shake by one step.
type shakeMsg struct {
	gen  uint64
	step int
}

const (
	// FadeDuration is the pause between accepting an answer and showing the next question.
	FadeDuration = 300 * time.Millisecond

	shakeInterval = 50 * time.Millisecond
)

// shakeOffsets is the sideways path of the input box during a shake.
var shakeOffsets = []int{-2, 2, -2, 2, -1, 1, 0}

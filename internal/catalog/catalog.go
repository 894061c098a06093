package catalog

import (
	"fmt"
	"time"
)

// Question is a single quiz prompt with optional inclusive bounds.
type Question struct {
	Prompt string
	Hint   string
	Min    *int
	Max    *int
}

// HasMin reports whether the question carries a lower bound.
func (q Question) HasMin() bool { return q.Min != nil }

// HasMax reports whether the question carries an upper bound.
func (q Question) HasMax() bool { return q.Max != nil }

// BoundsString renders the bounds for listings, e.g. "1 ~ 10" or "-".
func (q Question) BoundsString() string {
	switch {
	case q.Min != nil && q.Max != nil:
		return fmt.Sprintf("%d ~ %d", *q.Min, *q.Max)
	case q.Min != nil:
		return fmt.Sprintf("%d ~", *q.Min)
	case q.Max != nil:
		return fmt.Sprintf("~ %d", *q.Max)
	default:
		return "-"
	}
}

// Catalog is the fixed, ordered question list.
type Catalog struct {
	questions []Question
}

// YearSpan is how far back the memorable-year question reaches.
const YearSpan = 100

// New builds the catalog for the calendar year of now.
func New(now time.Time) Catalog {
	year := now.Year()
	minYear := year - YearSpan

	return Catalog{questions: []Question{
		{
			Prompt: "가장 좋아하는 숫자는?",
			Hint:   "가장 마음에 드는 숫자는?",
		},
		{
			Prompt: "오늘 기분은 몇 점?",
			Hint:   "1점(최악) ~ 10점(최고)",
			Min:    intPtr(1),
			Max:    intPtr(10),
		},
		{
			Prompt: "행운의 숫자는?",
			Hint:   "머릿속에 떠오른 그 숫자!",
		},
		{
			Prompt: "기억에 남는 연도는?",
			Hint:   fmt.Sprintf("예: %d (%d ~ %d)", year-20, minYear, year),
			Min:    intPtr(minYear),
			Max:    intPtr(year),
		},
		{
			Prompt: "당신의 나이는?",
			Hint:   "솔직하게 알려주세요 🤫",
			Min:    intPtr(1),
			Max:    intPtr(150),
		},
	}}
}

// Len returns the number of questions.
func (c Catalog) Len() int {
	return len(c.questions)
}

// At returns the question at index i. Panics if i is out of range.
func (c Catalog) At(i int) Question {
	return c.questions[i]
}

// All returns a copy of the question list.
func (c Catalog) All() []Question {
	out := make([]Question, len(c.questions))
	copy(out, c.questions)
	return out
}

func intPtr(v int) *int {
	return &v
}

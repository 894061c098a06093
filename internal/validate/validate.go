// Package validate decides whether a raw answer is acceptable for a question.
package validate

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/abhisek/agequiz/internal/catalog"
)

// Ceiling is the largest magnitude accepted when a question has no maximum.
const Ceiling = 999_999_999

// Reason classifies why an answer was rejected.
type Reason int

const (
	ReasonEmpty      Reason = iota + 1 // nothing but whitespace
	ReasonNotNumeric                   // not a decimal number
	ReasonBelowMin                     // smaller than the question minimum
	ReasonAboveMax                     // larger than the question maximum
	ReasonOverflow                     // unbounded question, magnitude over Ceiling
)

// String returns the taxonomy name of the reason.
func (r Reason) String() string {
	switch r {
	case ReasonEmpty:
		return "empty-input"
	case ReasonNotNumeric:
		return "non-numeric"
	case ReasonBelowMin:
		return "below-minimum"
	case ReasonAboveMax:
		return "above-maximum"
	case ReasonOverflow:
		return "unbounded-overflow"
	default:
		return "unknown"
	}
}

// Rejection is returned by Answer when the input cannot be accepted.
// Bound holds the violated minimum or maximum where one applies.
type Rejection struct {
	Reason Reason
	Bound  int
}

func (e *Rejection) Error() string {
	switch e.Reason {
	case ReasonBelowMin, ReasonAboveMax:
		return fmt.Sprintf("answer rejected: %s (%d)", e.Reason, e.Bound)
	default:
		return fmt.Sprintf("answer rejected: %s", e.Reason)
	}
}

// Message returns the text shown to the player.
func (e *Rejection) Message() string {
	switch e.Reason {
	case ReasonEmpty:
		return "숫자를 입력해주세요! ✍️"
	case ReasonNotNumeric:
		return "숫자만 입력 가능해요 🔢"
	case ReasonBelowMin:
		return fmt.Sprintf("%d보다 큰 숫자여야 해요 ⬆️", e.Bound)
	case ReasonAboveMax:
		return fmt.Sprintf("%d보다 작은 숫자여야 해요 ⬇️", e.Bound)
	case ReasonOverflow:
		return "숫자가 너무 커요! 😲"
	default:
		return e.Error()
	}
}

// IsRejection reports whether err is a *Rejection and returns it.
func IsRejection(err error) (*Rejection, bool) {
	var rej *Rejection
	if errors.As(err, &rej) {
		return rej, true
	}
	return nil, false
}

// Answer checks raw against q and returns the accepted integer.
//
// Checks run in a fixed order: empty, non-numeric, below minimum, above
// maximum, overflow. Decimal input is compared as written and truncated
// toward zero once accepted.
func Answer(raw string, q catalog.Question) (int, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, &Rejection{Reason: ReasonEmpty}
	}

	v, ok := parseNumber(s)
	if !ok {
		return 0, &Rejection{Reason: ReasonNotNumeric}
	}

	if q.Min != nil && v < float64(*q.Min) {
		return 0, &Rejection{Reason: ReasonBelowMin, Bound: *q.Min}
	}
	if q.Max != nil && v > float64(*q.Max) {
		return 0, &Rejection{Reason: ReasonAboveMax, Bound: *q.Max}
	}
	if q.Max == nil && math.Abs(v) > Ceiling {
		return 0, &Rejection{Reason: ReasonOverflow}
	}

	return int(math.Trunc(v)), nil
}

// parseNumber accepts decimal and exponent literals. Out-of-range literals
// parse to ±Inf and are left to the bound checks.
func parseNumber(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		var numErr *strconv.NumError
		if !errors.As(err, &numErr) || !errors.Is(numErr.Err, strconv.ErrRange) {
			return 0, false
		}
	}
	if math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

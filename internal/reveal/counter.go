// Package reveal computes the eased count-up shown on the result screen.
package reveal

import (
	"math"
	"time"
)

// DefaultDuration is how long the count-up takes.
const DefaultDuration = 2 * time.Second

// EaseOutCubic maps t in [0,1] onto 1-(1-t)^3. Inputs outside the range are clamped.
func EaseOutCubic(t float64) float64 {
	t = clamp01(t)
	inv := 1 - t
	return 1 - inv*inv*inv
}

// Counter animates an integer from 0 to Final over Duration.
type Counter struct {
	Final    int
	Duration time.Duration
}

// NewCounter returns a counter for final using DefaultDuration.
func NewCounter(final int) Counter {
	return Counter{Final: final, Duration: DefaultDuration}
}

// Progress returns elapsed/Duration clamped to [0,1].
func (c Counter) Progress(elapsed time.Duration) float64 {
	if c.Duration <= 0 {
		return 1
	}
	return clamp01(float64(elapsed) / float64(c.Duration))
}

// Value returns floor(Final * ease(progress)). At completion it is exactly Final.
func (c Counter) Value(elapsed time.Duration) int {
	p := c.Progress(elapsed)
	if p >= 1 {
		return c.Final
	}
	return int(math.Floor(float64(c.Final) * EaseOutCubic(p)))
}

// Done reports whether the animation has reached its end.
func (c Counter) Done(elapsed time.Duration) bool {
	return c.Progress(elapsed) >= 1
}

func clamp01(t float64) float64 {
	switch {
	case math.IsNaN(t), t < 0:
		return 0
	case t > 1:
		return 1
	default:
		return t
	}
}

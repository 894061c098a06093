// Package confetti draws a short-lived decorative particle burst over the
// terminal frame. It has no effect on quiz state.
package confetti

import (
	"math/rand/v2"
	"time"
)

// Palette is the set of particle colours.
var Palette = []string{"#a18cd1", "#fbc2eb", "#fad0c4", "#ff9a9e", "#84fab0", "#8fd3f4"}

const (
	Count    = 100             // particles per burst
	Lifetime = 5 * time.Second // particles are removed after this long

	minFall = 2 * time.Second
	maxFall = 5 * time.Second

	minSize = 5.0
	maxSize = 13.0
)

// Shape is the particle outline.
type Shape int

const (
	ShapeSquare Shape = iota
	ShapeRound
)

// Particle is a single falling piece.
type Particle struct {
	Color   string
	Left    float64       // horizontal position as a fraction of the width
	Fall    time.Duration // time to reach the bottom
	Size    float64
	Opacity float64
	Shape   Shape
	Born    time.Duration // layer clock at spawn
}

// Burst creates Count randomly styled particles born at the given clock.
func Burst(rng *rand.Rand, born time.Duration) []Particle {
	ps := make([]Particle, Count)
	for i := range ps {
		shape := ShapeSquare
		if rng.Float64() > 0.5 {
			shape = ShapeRound
		}
		ps[i] = Particle{
			Color:   Palette[rng.IntN(len(Palette))],
			Left:    rng.Float64(),
			Fall:    minFall + time.Duration(rng.Float64()*float64(maxFall-minFall)),
			Size:    minSize + rng.Float64()*(maxSize-minSize),
			Opacity: rng.Float64(),
			Shape:   shape,
			Born:    born,
		}
	}
	return ps
}

// Progress returns how far the particle has fallen, eased, in [0,1].
func (p Particle) Progress(now time.Duration) float64 {
	age := now - p.Born
	if age <= 0 || p.Fall <= 0 {
		return 0
	}
	t := float64(age) / float64(p.Fall)
	if t >= 1 {
		return 1
	}
	inv := 1 - t
	return 1 - inv*inv*inv
}

// Alpha is the particle's opacity at now; it fades out as it falls.
func (p Particle) Alpha(now time.Duration) float64 {
	return p.Opacity * (1 - p.Progress(now))
}

// Expired reports whether the particle has outlived Lifetime.
func (p Particle) Expired(now time.Duration) bool {
	return now-p.Born >= Lifetime
}

// Glyph returns the character for the particle at now. Squares spin
// through two frames over the fall.
func (p Particle) Glyph(now time.Duration) string {
	big := p.Size >= 9
	if p.Shape == ShapeRound {
		if big {
			return "●"
		}
		return "•"
	}
	spin := int(p.Progress(now)*8) % 2
	switch {
	case big && spin == 0:
		return "■"
	case big:
		return "◆"
	case spin == 0:
		return "▪"
	default:
		return "◆"
	}
}

package seeded

import "math"

// multiplier spreads sin output so the fractional part does not show short
// period patterns. 10000 is the smallest value that works in practice.
const multiplier = 10000

// Stream is a seeded generator whose counter advances on every draw.
// A Stream is not safe for concurrent use.
type Stream struct {
	counter float64
}

// NewStream returns a Stream starting at seed.
func NewStream(seed float64) *Stream {
	return &Stream{counter: seed}
}

// Float64 returns the next value in [0, 1) and advances the stream.
func (s *Stream) Float64() float64 {
	c := s.counter
	s.counter++
	return frac(c)
}

// IntBetween returns an integer in [min, max] from the next draw.
func (s *Stream) IntBetween(min, max int) int {
	return scale(s.Float64(), min, max)
}

// IntUpTo returns an integer in [0, max] from the next draw.
func (s *Stream) IntUpTo(max int) int {
	return scale(s.Float64(), 0, max)
}

// Generator returns a draw function backed by a new Stream for seed.
func Generator(seed float64) func() float64 {
	return NewStream(seed).Float64
}

func frac(c float64) float64 {
	// Explicit conversion forbids fused multiply-add so results stay bit-exact.
	x := float64(math.Sin(c) * multiplier)
	return x - math.Floor(x)
}

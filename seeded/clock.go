package seeded

import "time"

// Clock supplies the wall-clock time used for default seeds.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// SystemClock reads time.Now.
var SystemClock Clock = ClockFunc(time.Now)

// FixedClock always reports t. Useful to pin default seeds in tests.
func FixedClock(t time.Time) Clock {
	return ClockFunc(func() time.Time { return t })
}

// SeedFrom returns the current time of c in milliseconds.
func SeedFrom(c Clock) float64 {
	return float64(c.Now().UnixMilli())
}

// Source hands out clock-seeded draws for callers that have no seed of
// their own. Every call reads the clock again; calls within the same
// millisecond therefore see the same seed.
type Source struct {
	clock Clock
}

// NewSource returns a Source reading c. A nil c means SystemClock.
func NewSource(c Clock) *Source {
	if c == nil {
		c = SystemClock
	}
	return &Source{clock: c}
}

// Seed returns the default seed at this instant.
func (s *Source) Seed() float64 {
	return SeedFrom(s.clock)
}

// Stream returns a new Stream seeded from the clock.
func (s *Source) Stream() *Stream {
	return NewStream(s.Seed())
}

func (s *Source) Draw() float64 {
	return Draw(s.Seed())
}

func (s *Source) IntBetween(min, max int) int {
	return IntBetween(min, max, s.Seed())
}

func (s *Source) IntUpTo(max int) int {
	return IntUpTo(max, s.Seed())
}

// ShuffleFrom shuffles seq with a seed taken from src.
func ShuffleFrom[S ~[]E, E any](src *Source, seq S) S {
	return Shuffle(seq, src.Seed())
}

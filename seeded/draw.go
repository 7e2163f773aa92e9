package seeded

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Draw returns the first value of a stream seeded with seed. It never
// advances anything: Draw(s) == Draw(s) for every s.
func Draw(seed float64) float64 {
	return frac(seed)
}

// IntBetween returns an integer in [min, max], inclusive, derived from
// Draw(seed). The result for min > max is unspecified.
func IntBetween[I constraints.Integer](min, max I, seed float64) I {
	return scale(Draw(seed), min, max)
}

// IntUpTo is IntBetween(0, max, seed).
func IntUpTo[I constraints.Integer](max I, seed float64) I {
	return scale(Draw(seed), 0, max)
}

// scale works in float64 so the span of narrow integer types cannot wrap.
func scale[I constraints.Integer](d float64, min, max I) I {
	x := float64(d * (float64(max) - float64(min) + 1))
	return I(math.Floor(x + float64(min)))
}

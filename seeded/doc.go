// Package seeded provides reproducible pseudo-random numbers derived from a
// numeric seed.
//
// The generator is the well known sine trick: the fractional part of
// sin(seed)*10000. It is fast and bit-exact across IEEE-754 platforms, but it
// is NOT statistically strong and NOT cryptographically secure. Use it for
// test fixtures and deterministic simulations only.
//
// Seeds of 0 or exact multiples of π are degenerate (the first draw is 0 or
// close to it). No input is validated: out-of-domain seeds and inverted ranges
// produce meaningless results rather than errors.
//
// Two constructs are deliberately kept apart:
//
//   - a Stream owns a counter and advances it on every draw;
//   - the one-shot functions (Draw, IntBetween, IntUpTo, Shuffle) restart from
//     the given seed on every call, so the same seed always yields the same
//     value.
//
// There is no package-level generator. A Stream must not be shared between
// goroutines without external locking; separate Streams are independent.
package seeded

package main

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/idealo/seeded-benchmarking/seeded"
)

// threadSeedStride separates the seeds of worker threads. Each draw moves a
// counter by exactly 1, so the fractional part keeps the counters of
// different threads off each other's values however long a run draws.
const threadSeedStride = 1000003.6180339887

type Randomizer struct {
	stream *seeded.Stream
}

// NewRandomizer initializes a new Randomizer backed by a seeded stream.
func NewRandomizer(seed float64) *Randomizer {
	return &Randomizer{
		stream: seeded.NewStream(seed),
	}
}

// ThreadSeed derives the seed of worker thread from the run seed.
func ThreadSeed(base float64, thread int) float64 {
	return base + float64(thread)*threadSeedStride
}

// RandomInt63 returns a non-negative pseudo-random integer below 2^62
func (r *Randomizer) RandomInt63() int64 {
	return int64(r.stream.Float64() * (1 << 62))
}

// RandomIntn returns a non-negative pseudo-random int in [0,n). n <= 0 yields 0.
func (r *Randomizer) RandomIntn(n int) int {
	if n <= 0 {
		return 0
	}
	return r.stream.IntUpTo(n - 1)
}

// RandomFloat64 returns the next draw in [0,1)
func (r *Randomizer) RandomFloat64() float64 {
	return r.stream.Float64()
}

// Sample returns n elements of list in shuffled order. list is not modified.
func (r *Randomizer) Sample(list []string, n int) []string {
	if n > len(list) {
		n = len(list)
	}
	return seeded.Shuffle(list, r.shuffleSeed())[:n]
}

// ShuffleIDs returns a reproducibly shuffled copy of ids.
func (r *Randomizer) ShuffleIDs(ids []primitive.ObjectID) []primitive.ObjectID {
	return seeded.Shuffle(ids, r.shuffleSeed())
}

// shuffleSeed never returns 0, which would send every swap to index 0.
func (r *Randomizer) shuffleSeed() float64 {
	return 1 + r.stream.Float64()*threadSeedStride
}

package main

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/idealo/seeded-benchmarking/seeded"
)

const (
	QueryRandom    = -1
	QueryAuthor    = 0
	QueryTag       = 1
	QueryTimestamp = 2
	QueryFullText  = 3
)

// QueryGenerator provides seeded filters for benchmarking find operations
type QueryGenerator struct {
	rnd       *Randomizer
	clock     seeded.Clock
	queryType int
}

// NewQueryGenerator returns a generator for queryType; QueryRandom picks one
// of author, tag and timestamp filters per call. Full-text filters are only
// produced when asked for explicitly, since they need a text index.
func NewQueryGenerator(queryType int, seed float64, clock seeded.Clock) *QueryGenerator {
	if clock == nil {
		clock = seeded.SystemClock
	}
	return &QueryGenerator{
		rnd:       NewRandomizer(seed),
		clock:     clock,
		queryType: queryType,
	}
}

// Generate returns the next filter for a complex find operation
func (g *QueryGenerator) Generate() bson.M {
	kind := g.queryType
	if kind == QueryRandom {
		kind = g.rnd.RandomIntn(3)
	}

	switch kind {
	case QueryAuthor:
		return bson.M{"author": sampleAuthors[g.rnd.RandomIntn(len(sampleAuthors))]}
	case QueryTag:
		// element match
		return bson.M{"tags": bson.M{"$elemMatch": bson.M{"$eq": sampleTags[g.rnd.RandomIntn(len(sampleTags))]}}}
	case QueryTimestamp:
		// some random date in the last six months
		past := g.clock.Now().Add(-time.Duration(g.rnd.RandomIntn(365*12)) * time.Hour)
		return bson.M{"timestamp": bson.M{"$gt": past}}
	case QueryFullText:
		return bson.M{"$text": bson.M{"$search": sampleTags[g.rnd.RandomIntn(len(sampleTags))]}}
	default:
		return bson.M{}
	}
}

package main

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/idealo/seeded-benchmarking/seeded"
)

const largeDocBytes = 1024 * 2

var (
	sampleTags = []string{"MongoDB", "Benchmark", "CMS", "Database", "Performance",
		"WebApp", "Scalability", "Indexing", "Query Optimization", "Sharding"}
	sampleAuthors = []string{
		"Alice Example", "John Doe", "Maria Sample", "Max Mustermann",
		"Sophie Miller", "Liam Johnson", "Emma Brown", "Noah Davis",
		"Olivia Wilson", "William Martinez",
	}
	sampleCategories = []string{"Tech", "Business", "Science", "Health", "Sports", "Education"}
	sampleLorem      = []string{
		"Lorem ipsum dolor sit amet, consectetur adipiscing elit.",
		"Sed do eiusmod tempor incididunt ut labore et dolore magna aliqua.",
		"Ut enim ad minim veniam, quis nostrud exercitation ullamco laboris nisi ut aliquip ex ea commodo consequat.",
		"Duis aute irure dolor in reprehenderit in voluptate velit esse cillum dolore eu fugiat nulla pariatur.",
		"Excepteur sint occaecat cupidatat non proident, sunt in culpa qui officia deserunt mollit anim id est laborum.",
	}
)

// DocumentGenerator builds benchmark documents from a seeded Randomizer.
// Two generators with the same seed and clock produce the same documents,
// apart from the ObjectIDs of complex documents.
type DocumentGenerator struct {
	rnd   *Randomizer
	clock seeded.Clock
	data  []byte
}

func NewDocumentGenerator(seed float64, clock seeded.Clock) *DocumentGenerator {
	if clock == nil {
		clock = seeded.SystemClock
	}
	return &DocumentGenerator{
		rnd:   NewRandomizer(seed),
		clock: clock,
		data:  make([]byte, largeDocBytes),
	}
}

func (g *DocumentGenerator) GenerateSimple(threadRunCount int) bson.M {
	return bson.M{"threadRunCount": threadRunCount,
		"rnd": g.rnd.RandomInt63(),
		"v":   1,
	}
}

// GenerateLarge refills the shared payload buffer; the returned document is
// only valid until the next call.
func (g *DocumentGenerator) GenerateLarge(threadRunCount int) bson.M {
	for i := range g.data {
		g.data[i] = byte(g.rnd.RandomIntn(256))
	}
	return bson.M{"threadRunCount": threadRunCount,
		"rnd":  g.rnd.RandomInt63(),
		"v":    1,
		"data": g.data,
	}
}

func (g *DocumentGenerator) GenerateComplex(threadRunCount int) bson.M {
	numTags := g.rnd.RandomIntn(3) + 4      // 4–6 tags
	numCoAuthors := g.rnd.RandomIntn(3) + 1 // 1–3 co-authors

	tags := g.rnd.Sample(sampleTags, numTags)
	coAuthors := g.rnd.Sample(sampleAuthors, numCoAuthors)
	category := sampleCategories[g.rnd.RandomIntn(len(sampleCategories))]
	author := sampleAuthors[g.rnd.RandomIntn(len(sampleAuthors))]

	return bson.M{
		"_id":            primitive.NewObjectID(),
		"threadRunCount": threadRunCount,
		"rnd":            g.rnd.RandomInt63(),
		"v":              1,
		"title":          g.generateLoremIpsum(30),
		"author":         author,
		"co_authors":     coAuthors,
		"summary":        g.generateLoremIpsum(100),
		"content":        g.generateLoremIpsum(2000 + g.rnd.RandomIntn(3000)),
		"tags":           tags,
		"category":       category,
		"timestamp":      g.clock.Now().Add(-time.Duration(g.rnd.RandomIntn(365*2)) * 24 * time.Hour),
		"views":          g.rnd.RandomIntn(10000),
		"comments":       g.rnd.RandomIntn(500),
		"likes":          g.rnd.RandomIntn(1000),
		"shares":         g.rnd.RandomIntn(200),
	}
}

func (g *DocumentGenerator) generateLoremIpsum(minLen int) string {
	var text []byte
	for len(text) < minLen {
		if g.rnd.RandomFloat64() < 0.1 { // 10% chance to insert a tag
			text = append(text, sampleTags[g.rnd.RandomIntn(len(sampleTags))]...)
		} else {
			text = append(text, sampleLorem[g.rnd.RandomIntn(len(sampleLorem))]...)
		}
		text = append(text, ' ')
	}
	return string(text[:minLen])
}

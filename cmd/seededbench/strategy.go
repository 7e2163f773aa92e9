package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/idealo/seeded-benchmarking/seeded"
)

const (
	indexTimeout   = 10 * time.Second
	sampleInterval = 1 * time.Second
)

var knownTestTypes = map[string]bool{
	"insert": true, "update": true, "delete": true, "upsert": true,
	"insertdoc": true, "finddoc": true,
}

type TestingConfig struct {
	Threads          int     `json:"threads"`
	DocCount         int     `json:"docCount"`
	Duration         int     `json:"duration"`
	LargeDocs        bool    `json:"largeDocs"`
	DropDb           bool    `json:"dropDb"`
	OutputFilePrefix string  `json:"outputFilePrefix"`
	CreateIndex      bool    `json:"createIndex"`
	QueryType        int     `json:"queryType"`
	Seed             float64 `json:"seed"`
	ShuffleIDs       bool    `json:"shuffleIds"`

	// Clock stamps generated documents and query time ranges. nil means the
	// system clock.
	Clock seeded.Clock `json:"-"`
}

type fetchIDsFunc func(CollectionAPI, int64, string) ([]primitive.ObjectID, error)

type TestingStrategy interface {
	runTestSequence(collection CollectionAPI, config TestingConfig)
	runTestSequenceDoc(collection CollectionAPI, config TestingConfig)
	runTest(collection CollectionAPI, testType string, config TestingConfig, fetchDocIDs fetchIDsFunc) Run
}

func newStrategy(name string, runs RunRecorder) (TestingStrategy, error) {
	switch name {
	case docCountStrategyName:
		return DocCountTestingStrategy{runs: runs}, nil
	case durationStrategyName:
		return DurationTestingStrategy{runs: runs}, nil
	default:
		return nil, fmt.Errorf("unknown strategy %q", name)
	}
}

// prepareCollection drops the collection before insert style tests and
// creates the document indexes when asked to.
func prepareCollection(collection CollectionAPI, testType string, config TestingConfig) {
	switch testType {
	case "insert", "upsert", "insertdoc":
		if config.DropDb {
			if err := collection.Drop(context.Background()); err != nil {
				log.Fatalf("Failed to drop collection: %v", err)
			}
			log.Println("Collection dropped. Starting new rate test...")
		} else {
			log.Println("Collection stays. Dropping disabled.")
		}
		if testType == "insertdoc" && config.CreateIndex {
			createDocIndexes(collection)
		}
	default:
		log.Printf("Starting %s test...\n", testType)
	}
}

// loadIDs fetches existing document IDs and, if configured, shuffles them
// with the run seed.
func loadIDs(collection CollectionAPI, testType string, config TestingConfig, fetchDocIDs fetchIDsFunc) []primitive.ObjectID {
	docIDs, err := fetchDocIDs(collection, int64(config.DocCount), testType)
	if err != nil {
		log.Fatalf("Failed to fetch document IDs: %v", err)
	}
	if config.ShuffleIDs {
		docIDs = NewRandomizer(config.Seed).ShuffleIDs(docIDs)
	}
	return docIDs
}

func newIDs(n int) []primitive.ObjectID {
	ids := make([]primitive.ObjectID, n)
	for i := range ids {
		ids[i] = primitive.NewObjectID()
	}
	return ids
}

// partitionIDs deals ids round-robin onto threads partitions.
func partitionIDs(ids []primitive.ObjectID, threads int) [][]primitive.ObjectID {
	partitions := make([][]primitive.ObjectID, threads)
	for i, id := range ids {
		partitions[i%threads] = append(partitions[i%threads], id)
	}
	return partitions
}

func threadCount(config TestingConfig) int {
	if config.Threads < 1 {
		return 1
	}
	return config.Threads
}

// finishRun stops sampling, writes the CSV report and records the run.
func finishRun(collection CollectionAPI, run Run, rate *rateRecorder, runs RunRecorder) Run {
	run.Count, run.MeanRate = rate.stop()
	run.EndedAt = time.Now()

	filename, err := rate.writeCSV(run.Config.OutputFilePrefix, run.TestType)
	if err != nil {
		log.Fatalf("Failed to write benchmark results: %v", err)
	}

	if size, err := collection.CountDocuments(context.Background(), bson.M{}); err != nil {
		log.Printf("Failed to count documents: %v", err)
	} else {
		log.Printf("Collection holds %d documents after %s test", size, run.TestType)
	}

	if runs != nil {
		if err := runs.Record(run); err != nil {
			log.Printf("Failed to record run %s: %v", run.ID, err)
		} else {
			log.Printf("Recorded run %s (seed %v); replay with -replay %s", run.ID, run.Config.Seed, run.ID)
		}
	}

	fmt.Printf("Benchmarking completed. Results saved to %s\n", filename)
	return run
}

func newRun(strategy, testType string, config TestingConfig) Run {
	return Run{
		ID:        newRunID(),
		Strategy:  strategy,
		TestType:  testType,
		Config:    config,
		StartedAt: time.Now(),
	}
}

package main

import (
	"log"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const docCountStrategyName = "doccount"

// DocCountTestingStrategy runs each test over a fixed number of documents.
type DocCountTestingStrategy struct {
	runs RunRecorder
}

func (t DocCountTestingStrategy) runTestSequence(collection CollectionAPI, config TestingConfig) {
	tests := []string{"insert", "update", "delete", "upsert"}
	for _, test := range tests {
		t.runTest(collection, test, config, fetchDocumentIDs)
	}
}

func (t DocCountTestingStrategy) runTestSequenceDoc(collection CollectionAPI, config TestingConfig) {
	tests := []string{"insertdoc", "finddoc"}
	for _, test := range tests {
		t.runTest(collection, test, config, fetchDocumentIDs)
	}
}

func (t DocCountTestingStrategy) runTest(collection CollectionAPI, testType string, config TestingConfig, fetchDocIDs fetchIDsFunc) Run {
	prepareCollection(collection, testType, config)

	threads := threadCount(config)

	// Prepare partitions based on test type
	var partitions [][]primitive.ObjectID
	switch testType {
	case "delete", "update":
		partitions = partitionIDs(loadIDs(collection, testType, config, fetchDocIDs), threads)
	case "insert", "upsert", "insertdoc", "finddoc":
		// One slot per operation; upsert also uses the IDs as keys.
		partitions = partitionIDs(newIDs(config.DocCount), threads)
	default:
		log.Fatalf("Unknown test type: %s", testType)
	}

	run := newRun(docCountStrategyName, testType, config)
	rate := startRateRecorder(sampleInterval)

	var wg sync.WaitGroup
	wg.Add(threads)

	for i := 0; i < threads; i++ {
		go func(thread int, partition []primitive.ObjectID) {
			defer wg.Done()
			w := newWorker(thread, collection, config, rate)
			for _, docID := range partition {
				switch testType {
				case "insert":
					w.insert()
				case "insertdoc":
					w.insertDoc()
				case "update":
					w.update(docID)
				case "upsert":
					w.upsert(w.pick(partition, testType))
				case "delete":
					w.delete(docID)
				case "finddoc":
					w.findDoc()
				}
			}
		}(i, partitions[i])
	}

	wg.Wait()

	return finishRun(collection, run, rate, t.runs)
}

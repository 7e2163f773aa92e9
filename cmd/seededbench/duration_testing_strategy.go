package main

import (
	"log"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const durationStrategyName = "duration"

// DurationTestingStrategy runs each test for a fixed number of seconds.
type DurationTestingStrategy struct {
	runs RunRecorder
}

func (t DurationTestingStrategy) runTestSequence(collection CollectionAPI, config TestingConfig) {
	tests := []string{"insert", "update"}
	for _, test := range tests {
		t.runTest(collection, test, config, fetchDocumentIDs)
	}
}

func (t DurationTestingStrategy) runTestSequenceDoc(collection CollectionAPI, config TestingConfig) {
	tests := []string{"insertdoc", "finddoc"}
	for _, test := range tests {
		t.runTest(collection, test, config, fetchDocumentIDs)
	}
}

func (t DurationTestingStrategy) runTest(collection CollectionAPI, testType string, config TestingConfig, fetchDocIDs fetchIDsFunc) Run {
	prepareCollection(collection, testType, config)

	threads := threadCount(config)

	var partitions [][]primitive.ObjectID
	switch testType {
	case "update", "delete", "upsert":
		docIDs := loadIDs(collection, testType, config, fetchDocIDs)
		if len(docIDs) == 0 {
			log.Fatalf("No document IDs found for %s operations", testType)
		}
		partitions = partitionIDs(docIDs, threads)
	case "insert", "insertdoc", "finddoc":
	default:
		log.Fatalf("Unknown test type: %s", testType)
	}

	run := newRun(durationStrategyName, testType, config)
	endTime := time.Now().Add(time.Duration(config.Duration) * time.Second)
	rate := startRateRecorder(sampleInterval)

	// Launch the workload in goroutines
	var wg sync.WaitGroup
	wg.Add(threads)

	for i := 0; i < threads; i++ {
		var partition []primitive.ObjectID
		if partitions != nil {
			if len(partitions[i]) == 0 {
				log.Printf("Skipping empty partition for thread %d in %s operation", i, testType)
				wg.Done()
				continue
			}
			partition = partitions[i]
		}

		go func(thread int, partition []primitive.ObjectID) {
			defer wg.Done()
			w := newWorker(thread, collection, config, rate)

			for time.Now().Before(endTime) {
				switch testType {
				case "insert":
					w.insert()
				case "insertdoc":
					w.insertDoc()
				case "finddoc":
					w.findDoc()
				case "update":
					w.update(w.pick(partition, testType))
				case "upsert":
					w.upsert(w.pick(partition, testType))
				case "delete":
					if len(partition) == 0 {
						return
					}
					w.delete(partition[0])
					partition = partition[1:]
				}
			}
		}(i, partition)
	}

	// Wait for all threads to complete
	wg.Wait()

	return finishRun(collection, run, rate, t.runs)
}

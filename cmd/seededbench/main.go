// Command seededbench is a MongoDB load generator whose workload is derived
// from a single seed, so any run can be replayed exactly.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"text/tabwriter"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/idealo/seeded-benchmarking/seeded"
)

func main() {
	var threads int
	var docCount int
	var duration int
	var queryType int
	var uri string
	var database string
	var collectionName string
	var testType string
	var outputPrefix string
	var ledgerPath string
	var replayID string
	var seed float64
	var largeDocs bool
	var dropDb bool
	var createIndex bool
	var shuffleIDs bool
	var listRuns bool

	flag.IntVar(&threads, "threads", 10, "Number of threads for inserting, updating, upserting, or deleting documents")
	flag.IntVar(&docCount, "docs", 1000, "Total number of documents to insert, update, upsert, or delete")
	flag.IntVar(&duration, "duration", 0, "Duration in seconds to run each test; 0 runs by document count")
	flag.IntVar(&queryType, "querytype", QueryRandom, "finddoc filter: -1 random, 0 author, 1 tag, 2 timestamp, 3 full-text")
	flag.StringVar(&uri, "uri", "mongodb://localhost:27017", "MongoDB URI")
	flag.StringVar(&database, "db", "benchmarking", "Database name")
	flag.StringVar(&collectionName, "collection", "testdata", "Collection name")
	flag.StringVar(&testType, "type", "insert", "Test type: insert, update, upsert, delete, insertdoc, finddoc, all, or alldoc")
	flag.StringVar(&outputPrefix, "out", "benchmark_results", "Prefix of the CSV result files")
	flag.StringVar(&ledgerPath, "ledger", "seededbench_runs.db", "Run ledger file; empty disables recording")
	flag.StringVar(&replayID, "replay", "", "Run ID from the ledger whose workload should be replayed")
	flag.Float64Var(&seed, "seed", 0, "Workload seed; 0 uses the current time in milliseconds")
	flag.BoolVar(&largeDocs, "large", false, "Insert documents with a 2 KiB random payload")
	flag.BoolVar(&dropDb, "dropdb", true, "Drop the collection before insert style tests")
	flag.BoolVar(&createIndex, "createindex", false, "Create indexes before the insertdoc test")
	flag.BoolVar(&shuffleIDs, "shuffle", false, "Shuffle fetched document IDs with the seed before partitioning")
	flag.BoolVar(&listRuns, "runs", false, "List recorded runs and exit")
	flag.Parse()

	var ledger *RunLedger
	if ledgerPath != "" {
		var err error
		ledger, err = OpenRunLedger(ledgerPath)
		if err != nil {
			log.Fatalf("Failed to open run ledger: %v", err)
		}
		defer ledger.Close()
	}

	if listRuns {
		if ledger == nil {
			log.Fatalf("Listing runs needs a -ledger file")
		}
		runs, err := ledger.List()
		if err != nil {
			log.Fatalf("Failed to list runs: %v", err)
		}
		printRuns(os.Stdout, runs)
		return
	}

	config := TestingConfig{
		Threads:          threads,
		DocCount:         docCount,
		Duration:         duration,
		LargeDocs:        largeDocs,
		DropDb:           dropDb,
		OutputFilePrefix: outputPrefix,
		CreateIndex:      createIndex,
		QueryType:        queryType,
		Seed:             seed,
		ShuffleIDs:       shuffleIDs,
	}

	strategyName := docCountStrategyName
	if duration > 0 {
		strategyName = durationStrategyName
	}

	if replayID != "" {
		if ledger == nil {
			log.Fatalf("Replaying a run needs a -ledger file")
		}
		run, err := ledger.Get(replayID)
		if errors.Is(err, ErrRunNotFound) {
			log.Fatalf("No run %s in %s", replayID, ledgerPath)
		} else if err != nil {
			log.Fatalf("Failed to load run %s: %v", replayID, err)
		}
		config = run.Config
		testType = run.TestType
		strategyName = run.Strategy
		log.Printf("Replaying run %s: %s %s test with seed %v", run.ID, run.Strategy, run.TestType, config.Seed)
	}

	if config.Seed == 0 {
		config.Seed = seeded.SeedFrom(seeded.SystemClock)
		log.Printf("Using seed: %v", config.Seed)
	}

	if testType != "all" && testType != "alldoc" && !knownTestTypes[testType] {
		log.Fatalf("Unknown test type: %s", testType)
	}

	var recorder RunRecorder
	if ledger != nil {
		recorder = ledger
	}
	strategy, err := newStrategy(strategyName, recorder)
	if err != nil {
		log.Fatalf("Failed to select strategy: %v", err)
	}

	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(context.Background())

	collection := &MongoDBCollection{client.Database(database).Collection(collectionName)}

	switch testType {
	case "all":
		strategy.runTestSequence(collection, config)
	case "alldoc":
		strategy.runTestSequenceDoc(collection, config)
	default:
		strategy.runTest(collection, testType, config, fetchDocumentIDs)
	}
}

func printRuns(out io.Writer, runs []Run) {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTRATEGY\tTYPE\tSEED\tSTARTED\tCOUNT\tMEAN RATE")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%v\t%s\t%d\t%.2f\n",
			run.ID, run.Strategy, run.TestType, run.Config.Seed,
			run.StartedAt.Format(time.RFC3339), run.Count, run.MeanRate)
	}
	w.Flush()
}

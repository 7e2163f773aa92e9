package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"
)

var runsBucket = []byte("runs")

// ErrRunNotFound is returned by RunLedger.Get for unknown run IDs.
var ErrRunNotFound = errors.New("run not found")

// Run is one executed test with everything needed to regenerate its workload.
type Run struct {
	ID        string        `json:"id"`
	Strategy  string        `json:"strategy"`
	TestType  string        `json:"testType"`
	Config    TestingConfig `json:"config"`
	StartedAt time.Time     `json:"startedAt"`
	EndedAt   time.Time     `json:"endedAt"`
	Count     int64         `json:"count"`
	MeanRate  float64       `json:"meanRate"`
}

// RunRecorder persists finished runs.
type RunRecorder interface {
	Record(run Run) error
}

func newRunID() string {
	return uuid.New().String()
}

// RunLedger stores runs in a bbolt file keyed by run ID.
type RunLedger struct {
	db *bolt.DB
}

// OpenRunLedger opens or creates the ledger at path.
func OpenRunLedger(path string) (*RunLedger, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open run ledger: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(runsBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create runs bucket: %w", err)
	}

	log.Printf("[LEDGER] Run ledger initialized at %s", path)
	return &RunLedger{db: db}, nil
}

// Record stores run, replacing an earlier run with the same ID.
func (l *RunLedger) Record(run Run) error {
	data, err := json.Marshal(run)
	if err != nil {
		return fmt.Errorf("failed to encode run: %w", err)
	}
	return l.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(runsBucket).Put([]byte(run.ID), data)
	})
}

// Get loads the run with id.
func (l *RunLedger) Get(id string) (Run, error) {
	var run Run
	err := l.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(runsBucket).Get([]byte(id))
		if v == nil {
			return fmt.Errorf("%w: %s", ErrRunNotFound, id)
		}
		return json.Unmarshal(v, &run)
	})
	return run, err
}

// List returns all runs ordered by start time.
func (l *RunLedger) List() ([]Run, error) {
	var runs []Run
	err := l.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(runsBucket).ForEach(func(_, v []byte) error {
			var run Run
			if err := json.Unmarshal(v, &run); err != nil {
				return err
			}
			runs = append(runs, run)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].StartedAt.Before(runs[j].StartedAt)
	})
	return runs, nil
}

func (l *RunLedger) Close() error {
	return l.db.Close()
}

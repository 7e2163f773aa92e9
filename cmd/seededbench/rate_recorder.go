package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"sync"
	"time"

	"github.com/rcrowley/go-metrics"
)

var csvHeader = []string{"t", "count", "mean_rate", "m1_rate", "m5_rate", "m15_rate"}

// rateRecorder samples an operations meter once per interval and keeps the
// samples for the CSV report.
type rateRecorder struct {
	meter   metrics.Meter
	ticker  *time.Ticker
	done    chan struct{}
	stopped chan struct{}

	mu      sync.Mutex
	records [][]string
}

func startRateRecorder(interval time.Duration) *rateRecorder {
	r := &rateRecorder{
		meter:   metrics.NewMeter(),
		ticker:  time.NewTicker(interval),
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
		records: [][]string{csvHeader},
	}
	go r.loop()
	return r
}

func (r *rateRecorder) loop() {
	defer close(r.stopped)
	for {
		select {
		case <-r.done:
			return
		case <-r.ticker.C:
			record := r.sample()
			log.Printf("Timestamp: %s, Document Count: %s, Mean Rate: %s docs/sec, m1_rate: %s, m5_rate: %s, m15_rate: %s",
				record[0], record[1], record[2], record[3], record[4], record[5])
			r.append(record)
		}
	}
}

// Mark records n completed operations.
func (r *rateRecorder) Mark(n int64) {
	r.meter.Mark(n)
}

func (r *rateRecorder) sample() []string {
	snap := r.meter.Snapshot()
	return []string{
		fmt.Sprintf("%d", time.Now().Unix()),
		fmt.Sprintf("%d", snap.Count()),
		fmt.Sprintf("%.6f", snap.RateMean()),
		fmt.Sprintf("%.6f", snap.Rate1()),
		fmt.Sprintf("%.6f", snap.Rate5()),
		fmt.Sprintf("%.6f", snap.Rate15()),
	}
}

func (r *rateRecorder) append(record []string) {
	r.mu.Lock()
	r.records = append(r.records, record)
	r.mu.Unlock()
}

// stop ends sampling, appends the final record and returns the totals.
func (r *rateRecorder) stop() (count int64, meanRate float64) {
	r.ticker.Stop()
	close(r.done)
	<-r.stopped

	snap := r.meter.Snapshot()
	r.append(r.sample())
	r.meter.Stop()
	return snap.Count(), snap.RateMean()
}

// writeCSV writes all samples to <prefix>_<testType>.csv and returns the file name.
func (r *rateRecorder) writeCSV(prefix, testType string) (string, error) {
	if prefix == "" {
		prefix = "benchmark_results"
	}
	filename := fmt.Sprintf("%s_%s.csv", prefix, testType)

	file, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("create CSV file: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := writeRecords(file, r.records); err != nil {
		return "", err
	}
	return filename, nil
}

// writeRecords writes records as CSV and closes w. A failed Close is
// reported since buffered data may not have reached the file.
func writeRecords(w io.WriteCloser, records [][]string) error {
	writer := csv.NewWriter(w)
	if err := writer.WriteAll(records); err != nil {
		w.Close()
		return fmt.Errorf("write records to CSV: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close CSV file: %w", err)
	}
	return nil
}

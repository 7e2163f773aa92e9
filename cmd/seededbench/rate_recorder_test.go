package main

import (
	"bytes"
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateRecorderWritesCSV(t *testing.T) {
	rate := startRateRecorder(10 * time.Millisecond)
	rate.Mark(3)
	time.Sleep(35 * time.Millisecond)
	rate.Mark(2)

	count, _ := rate.stop()
	assert.Equal(t, int64(5), count)

	prefix := filepath.Join(t.TempDir(), "bench")
	filename, err := rate.writeCSV(prefix, "insert")
	require.NoError(t, err)
	assert.Equal(t, prefix+"_insert.csv", filename)

	f, err := os.Open(filename)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(records), 2)
	assert.Equal(t, csvHeader, records[0])
	assert.Equal(t, "5", records[len(records)-1][1])
}

type failingCloser struct {
	bytes.Buffer
	closeErr error
}

func (f *failingCloser) Close() error { return f.closeErr }

func TestWriteRecordsReportsCloseError(t *testing.T) {
	w := &failingCloser{closeErr: errors.New("disk full")}

	err := writeRecords(w, [][]string{csvHeader})

	require.Error(t, err)
	assert.ErrorIs(t, err, w.closeErr)
	assert.Contains(t, w.String(), "mean_rate")
}

func TestWriteRecordsClosesOnSuccess(t *testing.T) {
	w := &failingCloser{}
	assert.NoError(t, writeRecords(w, [][]string{csvHeader, {"1", "2", "3", "4", "5", "6"}}))
}

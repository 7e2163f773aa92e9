package main

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestLedger(t *testing.T) *RunLedger {
	t.Helper()
	ledger, err := OpenRunLedger(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { ledger.Close() })
	return ledger
}

func TestRunLedgerRoundTrip(t *testing.T) {
	ledger := openTestLedger(t)

	run := Run{
		ID:       newRunID(),
		Strategy: durationStrategyName,
		TestType: "update",
		Config: TestingConfig{
			Threads:    4,
			DocCount:   500,
			Duration:   30,
			Seed:       1700000000123,
			ShuffleIDs: true,
			QueryType:  QueryRandom,
		},
		StartedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		EndedAt:   time.Date(2024, 1, 2, 3, 4, 35, 0, time.UTC),
		Count:     12345,
		MeanRate:  411.5,
	}
	require.NoError(t, ledger.Record(run))

	got, err := ledger.Get(run.ID)
	require.NoError(t, err)
	assert.Equal(t, run, got)
}

func TestRunLedgerUnknownRun(t *testing.T) {
	ledger := openTestLedger(t)

	_, err := ledger.Get("missing")
	assert.ErrorIs(t, err, ErrRunNotFound)
}

func TestRunLedgerListOrdersByStart(t *testing.T) {
	ledger := openTestLedger(t)

	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	for _, offset := range []int{3, 1, 2} {
		require.NoError(t, ledger.Record(Run{
			ID:        newRunID(),
			TestType:  "insert",
			StartedAt: base.Add(time.Duration(offset) * time.Minute),
		}))
	}

	runs, err := ledger.List()
	require.NoError(t, err)
	require.Len(t, runs, 3)
	for i := 1; i < len(runs); i++ {
		assert.True(t, runs[i-1].StartedAt.Before(runs[i].StartedAt))
	}
}

func TestRunLedgerSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.db")

	ledger, err := OpenRunLedger(path)
	require.NoError(t, err)
	run := Run{ID: newRunID(), TestType: "delete", Config: TestingConfig{Seed: 42}}
	require.NoError(t, ledger.Record(run))
	require.NoError(t, ledger.Close())

	ledger, err = OpenRunLedger(path)
	require.NoError(t, err)
	defer ledger.Close()

	got, err := ledger.Get(run.ID)
	require.NoError(t, err)
	assert.Equal(t, 42.0, got.Config.Seed)
}

func TestPrintRuns(t *testing.T) {
	var out bytes.Buffer
	printRuns(&out, []Run{{
		ID:        "abc",
		Strategy:  docCountStrategyName,
		TestType:  "insert",
		Config:    TestingConfig{Seed: 7},
		StartedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Count:     10,
		MeanRate:  2.5,
	}})

	assert.Contains(t, out.String(), "ID")
	assert.Contains(t, out.String(), "abc")
	assert.Contains(t, out.String(), "2024-01-01T00:00:00Z")
	assert.Contains(t, out.String(), "2.50")
}

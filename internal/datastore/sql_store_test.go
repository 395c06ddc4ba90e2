package datastore

import (
	"path/filepath"
	"testing"

	"github.com/huangsam/flowstate/internal/contract"
	"github.com/huangsam/flowstate/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLStore_SQLite(t *testing.T) {
	// Use in-memory SQLite for testing
	store, err := NewSQLStore(schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	require.NotNil(t, store)
	defer func() { _ = store.Close() }()

	want := sampleDataset()
	require.NoError(t, store.Save(want))

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSQLStore_EmptyStore(t *testing.T) {
	store, err := NewSQLStore(schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	_, err = store.Load()
	var qe *contract.QueryError
	require.ErrorAs(t, err, &qe)
	assert.Equal(t, contract.ErrDataNotFound, qe.Code)
}

func TestSQLStore_LatestSnapshotWins(t *testing.T) {
	store, err := NewSQLStore(schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	first := sampleDataset()
	require.NoError(t, store.Save(first))

	second := sampleDataset()
	second.Timeline = append(second.Timeline, schema.DailyMetric{
		Date: "2024-01-03", MusicCount: 1, VideoCount: 0, CommitCount: 7,
	})
	second.Totals.TotalCommits = 15
	require.NoError(t, store.Save(second))

	got, err := store.Load()
	require.NoError(t, err)
	assert.Len(t, got.Timeline, 3)
	assert.Equal(t, 15, got.Totals.TotalCommits)
}

func TestSQLStore_UnsupportedBackend(t *testing.T) {
	_, err := NewSQLStore(schema.JSONBackend, "")
	assert.Error(t, err)
}

func TestMigrateDataset_SQLite(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "flowstate.db")

	// Up to latest, then all the way back down.
	require.NoError(t, MigrateDataset(schema.SQLiteBackend, dbPath, -1))
	require.NoError(t, MigrateDataset(schema.SQLiteBackend, dbPath, 0))
}

func TestMigrateDataset_JSONBackendRejected(t *testing.T) {
	err := MigrateDataset(schema.JSONBackend, "", -1)
	assert.Error(t, err)
}

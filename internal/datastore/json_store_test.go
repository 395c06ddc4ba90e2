package datastore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/huangsam/flowstate/internal/contract"
	"github.com/huangsam/flowstate/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDataset() *schema.Dataset {
	return &schema.Dataset{
		Timeline: schema.Timeline{
			{Date: "2024-01-01", MusicCount: 2, VideoCount: 1, CommitCount: 5},
			{Date: "2024-01-02", MusicCount: 0, VideoCount: 0, CommitCount: 3},
		},
		Totals: schema.Totals{TotalMusic: 2, TotalVideos: 1, TotalCommits: 8},
		Correlations: schema.Correlations{
			schema.MusicOnlyPattern: {AvgCommits: 0, Days: 0},
			schema.VideoOnlyPattern: {AvgCommits: 0, Days: 0},
			schema.BothPattern:      {AvgCommits: 5, Days: 1},
			schema.NeitherPattern:   {AvgCommits: 3, Days: 1},
		},
		Insights: schema.Insights{
			MusicImpact:  "+66.7%",
			VideoImpact:  "+66.7%",
			SynergyBoost: "+66.7%",
			BestPattern:  "Both",
		},
	}
}

func TestJSONStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "public", "correlations.json")
	store := NewJSONStore(path)

	want := sampleDataset()
	require.NoError(t, store.Save(want))

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.NoError(t, store.Close())
}

func TestJSONStoreMissingFile(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "correlations.json"))

	_, err := store.Load()
	var qe *contract.QueryError
	require.ErrorAs(t, err, &qe)
	assert.Equal(t, contract.ErrDataNotFound, qe.Code)
	assert.Contains(t, qe.Message, "Run the correlation pipeline first")
}

func TestJSONStoreCorruptedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "correlations.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewJSONStore(path).Load()
	var qe *contract.QueryError
	require.ErrorAs(t, err, &qe)
	assert.Equal(t, contract.ErrJSONParse, qe.Code)
}

func TestJSONStoreMissingSections(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		field   string
	}{
		{
			name:    "missing insights",
			payload: `{"timeline": [], "totals": {}, "correlations": {}}`,
			field:   "insights",
		},
		{
			name:    "missing correlations",
			payload: `{"timeline": [], "totals": {}, "insights": {}}`,
			field:   "correlations",
		},
		{
			name:    "missing timeline",
			payload: `{"totals": {}, "correlations": {}, "insights": {}}`,
			field:   "timeline",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "correlations.json")
			require.NoError(t, os.WriteFile(path, []byte(tc.payload), 0o644))

			_, err := NewJSONStore(path).Load()
			var qe *contract.QueryError
			require.ErrorAs(t, err, &qe)
			assert.Equal(t, contract.ErrMissingRequiredField, qe.Code)
			assert.Contains(t, qe.Message, tc.field)
		})
	}
}

func TestJSONStoreIncompleteTimelineEntry(t *testing.T) {
	payload := `{
		"timeline": [{"date": "2024-01-01", "music_count": 1, "video_count": 2}],
		"totals": {},
		"correlations": {},
		"insights": {}
	}`
	path := filepath.Join(t.TempDir(), "correlations.json")
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o644))

	_, err := NewJSONStore(path).Load()
	var qe *contract.QueryError
	require.ErrorAs(t, err, &qe)
	assert.Equal(t, contract.ErrMissingRequiredField, qe.Code)
	assert.Contains(t, qe.Message, "commit_count")
}

func TestNewDatasetStoreBackends(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		store, err := NewDatasetStore(schema.JSONBackend, filepath.Join(t.TempDir(), "c.json"), "")
		require.NoError(t, err)
		assert.IsType(t, &JSONStore{}, store)
	})

	t.Run("sqlite", func(t *testing.T) {
		store, err := NewDatasetStore(schema.SQLiteBackend, "", ":memory:")
		require.NoError(t, err)
		assert.IsType(t, &SQLStore{}, store)
		assert.NoError(t, store.Close())
	})

	t.Run("unsupported", func(t *testing.T) {
		_, err := NewDatasetStore(schema.DatasetBackend("redis"), "", "")
		assert.Error(t, err)
	})
}

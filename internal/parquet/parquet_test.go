package parquet

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/huangsam/flowstate/schema"
	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDataset() *schema.Dataset {
	return &schema.Dataset{
		Timeline: schema.Timeline{
			{Date: "2024-01-01", MusicCount: 2, VideoCount: 1, CommitCount: 5},
			{Date: "2024-01-02", MusicCount: 0, VideoCount: 3, CommitCount: 2},
		},
		Totals: schema.Totals{TotalMusic: 2, TotalVideos: 4, TotalCommits: 7},
		Correlations: schema.Correlations{
			schema.MusicOnlyPattern: {AvgCommits: 0, Days: 0},
			schema.VideoOnlyPattern: {AvgCommits: 2, Days: 1},
			schema.BothPattern:      {AvgCommits: 5, Days: 1},
			schema.NeitherPattern:   {AvgCommits: 0, Days: 0},
		},
		Insights: schema.Insights{
			MusicImpact:  "+150.0%",
			VideoImpact:  "+150.0%",
			SynergyBoost: "+150.0%",
			BestPattern:  "Both",
		},
	}
}

func TestTimelineRowStructTags(t *testing.T) {
	sch := parquet.SchemaOf(new(TimelineRow))
	require.NotNil(t, sch)

	expectedColumns := []string{
		"dataset_id",
		"date",
		"music_count",
		"video_count",
		"commit_count",
	}
	for _, colName := range expectedColumns {
		col, ok := sch.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
		require.NotNil(t, col, "Column %s should not be nil", colName)
	}
}

func TestPatternRowStructTags(t *testing.T) {
	sch := parquet.SchemaOf(new(PatternRow))
	require.NotNil(t, sch)

	expectedColumns := []string{
		"dataset_id",
		"pattern",
		"avg_commits",
		"days",
		"best_pattern",
	}
	for _, colName := range expectedColumns {
		col, ok := sch.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
		require.NotNil(t, col, "Column %s should not be nil", colName)
	}
}

func TestWriteTimelineParquet(t *testing.T) {
	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, "timeline.parquet")

	data := ConvertTimeline(1, sampleDataset().Timeline)
	require.Len(t, data, 2)

	err := WriteTimelineParquet(data, outputPath)
	require.NoError(t, err)

	info, err := os.Stat(outputPath)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	file, err := os.Open(outputPath)
	require.NoError(t, err)
	defer file.Close()

	reader := parquet.NewGenericReader[TimelineRow](file)
	defer reader.Close()

	readData := make([]TimelineRow, reader.NumRows())
	n, err := reader.Read(readData)
	if err != nil && err != io.EOF {
		require.NoError(t, err)
	}
	require.Equal(t, len(data), n)
	assert.Equal(t, data, readData)
}

func TestWritePatternsParquet(t *testing.T) {
	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, "patterns.parquet")

	data := ConvertPatterns(1, sampleDataset())
	require.Len(t, data, 4)

	err := WritePatternsParquet(data, outputPath)
	require.NoError(t, err)

	file, err := os.Open(outputPath)
	require.NoError(t, err)
	defer file.Close()

	reader := parquet.NewGenericReader[PatternRow](file)
	defer reader.Close()

	readData := make([]PatternRow, reader.NumRows())
	n, err := reader.Read(readData)
	if err != nil && err != io.EOF {
		require.NoError(t, err)
	}
	require.Equal(t, len(data), n)

	for i := range data {
		assert.Equal(t, data[i].Pattern, readData[i].Pattern)
		assert.InDelta(t, data[i].AvgCommits, readData[i].AvgCommits, 0.001)
		assert.Equal(t, data[i].Days, readData[i].Days)
		if data[i].BestPattern == nil {
			assert.Nil(t, readData[i].BestPattern, "non-winning pattern %s should have nil label", data[i].Pattern)
		} else {
			require.NotNil(t, readData[i].BestPattern)
			assert.Equal(t, *data[i].BestPattern, *readData[i].BestPattern)
		}
	}
}

func TestConvertPatternsOrderAndWinner(t *testing.T) {
	data := ConvertPatterns(7, sampleDataset())
	require.Len(t, data, 4)

	assert.Equal(t, "music_only", data[0].Pattern)
	assert.Equal(t, "video_only", data[1].Pattern)
	assert.Equal(t, "both", data[2].Pattern)
	assert.Equal(t, "neither", data[3].Pattern)

	assert.Nil(t, data[0].BestPattern)
	require.NotNil(t, data[2].BestPattern)
	assert.Equal(t, "Both", *data[2].BestPattern)
	assert.Equal(t, int64(7), data[2].DatasetID)
}

func TestWriteTimelineParquet_EmptyData(t *testing.T) {
	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, "empty_timeline.parquet")

	err := WriteTimelineParquet([]TimelineRow{}, outputPath)
	require.NoError(t, err)

	info, err := os.Stat(outputPath)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0), "file should contain schema even if empty")
}

func TestWriteTimelineParquet_InvalidPath(t *testing.T) {
	data := ConvertTimeline(1, sampleDataset().Timeline)
	err := WriteTimelineParquet(data, "/nonexistent/directory/output.parquet")
	require.Error(t, err)
}

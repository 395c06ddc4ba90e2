package outwriter

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/huangsam/flowstate/internal/contract"
	"github.com/huangsam/flowstate/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDataset() *schema.Dataset {
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

func TestWriteDatasetTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeDatasetTable(&buf, testDataset()))

	out := buf.String()
	// All four pattern rows present, in enumeration order
	assert.Contains(t, out, "Music Only")
	assert.Contains(t, out, "Video Only")
	assert.Contains(t, out, "Both")
	assert.Contains(t, out, "Neither")
	assert.Less(t, strings.Index(out, "Music Only"), strings.Index(out, "Neither"))
	assert.Contains(t, out, "Timeline: 2 days (music: 2, videos: 1, commits: 8)")
	assert.Contains(t, out, "Music impact: +66.7%")
	assert.Contains(t, out, "Best pattern:")
}

func TestWriteTimelineCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeTimelineCSV(&buf, testDataset().Timeline))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)

	require.Len(t, records, 3)
	assert.Equal(t, []string{"date", "music_count", "video_count", "commit_count"}, records[0])
	assert.Equal(t, []string{"2024-01-01", "2", "1", "5"}, records[1])
	assert.Equal(t, []string{"2024-01-02", "0", "0", "3"}, records[2])
}

func TestWriteQueryTable(t *testing.T) {
	payload := map[string]any{
		"pattern":          "both",
		"avg_commits":      5.0,
		"boost_percentage": "+66.7%",
		"analysis_context": map[string]any{"confidence": "high"},
	}

	var buf bytes.Buffer
	require.NoError(t, writeQueryTable(&buf, payload, 80))

	out := buf.String()
	assert.Contains(t, out, "pattern")
	assert.Contains(t, out, "both")
	assert.Contains(t, out, "+66.7%")
	// Nested sections render as inline JSON
	assert.Contains(t, out, `{"confidence":"high"}`)
}

func TestRenderValue(t *testing.T) {
	assert.Equal(t, "plain", renderValue([]byte(`"plain"`)))
	assert.Equal(t, "3.6", renderValue([]byte(`3.6`)))
	assert.Equal(t, `["a","b"]`, renderValue([]byte(`["a","b"]`)))
}

func TestTruncateValue(t *testing.T) {
	assert.Equal(t, "short", truncateValue("short", 20))
	assert.Equal(t, "exact", truncateValue("exact", 5))
	assert.Equal(t, "long va...", truncateValue("long value here", 10))
}

func TestGetTableWidthOverride(t *testing.T) {
	cfg := &contract.Config{Width: 120}
	assert.Equal(t, 120, GetTableWidth(cfg))
}

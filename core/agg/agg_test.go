package agg

import (
	"testing"

	"github.com/huangsam/flowstate/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregate(t *testing.T) {
	media := []schema.MediaEvent{
		{Date: "2024-01-02", Category: schema.MusicCategory},
		{Date: "2024-01-02", Category: schema.MusicCategory},
		{Date: "2024-01-02", Category: schema.VideoCategory},
		{Date: "2024-01-01", Category: schema.VideoCategory},
	}
	commits := []schema.CommitEvent{
		{Date: "2024-01-02"},
		{Date: "2024-01-03"},
		{Date: "2024-01-03"},
	}

	timeline := Aggregate(media, commits)
	require.Len(t, timeline, 3)

	// Sorted ascending by date.
	assert.Equal(t, "2024-01-01", timeline[0].Date)
	assert.Equal(t, "2024-01-02", timeline[1].Date)
	assert.Equal(t, "2024-01-03", timeline[2].Date)

	// Counts are independent per source.
	assert.Equal(t, schema.DailyMetric{Date: "2024-01-01", VideoCount: 1}, timeline[0])
	assert.Equal(t, schema.DailyMetric{Date: "2024-01-02", MusicCount: 2, VideoCount: 1, CommitCount: 1}, timeline[1])
	assert.Equal(t, schema.DailyMetric{Date: "2024-01-03", CommitCount: 2}, timeline[2])
}

func TestAggregateEmptyInputs(t *testing.T) {
	timeline := Aggregate(nil, nil)
	assert.Empty(t, timeline)
}

func TestAggregateMediaOnly(t *testing.T) {
	media := []schema.MediaEvent{
		{Date: "2024-03-10", Category: schema.MusicCategory},
	}

	timeline := Aggregate(media, nil)
	require.Len(t, timeline, 1)
	assert.Equal(t, 1, timeline[0].MusicCount)
	assert.Equal(t, 0, timeline[0].CommitCount)
}

func TestAggregateTwoEntries(t *testing.T) {
	// Two entries is below the query layer's minimum for some operations,
	// but aggregation itself must still accept and merge them.
	media := []schema.MediaEvent{
		{Date: "2024-01-01", Category: schema.MusicCategory},
	}
	commits := []schema.CommitEvent{
		{Date: "2024-01-02"},
	}

	timeline := Aggregate(media, commits)
	require.Len(t, timeline, 2)
}

func TestAggregateEveryDateHasActivity(t *testing.T) {
	media := []schema.MediaEvent{
		{Date: "2024-01-01", Category: schema.MusicCategory},
		{Date: "2024-01-03", Category: schema.VideoCategory},
	}
	commits := []schema.CommitEvent{
		{Date: "2024-01-02"},
	}

	for _, m := range Aggregate(media, commits) {
		assert.Positive(t, m.MusicCount+m.VideoCount+m.CommitCount)
	}
}

func TestTotals(t *testing.T) {
	timeline := schema.Timeline{
		{Date: "2024-01-01", MusicCount: 2, VideoCount: 1, CommitCount: 5},
		{Date: "2024-01-02", MusicCount: 1, VideoCount: 0, CommitCount: 3},
	}

	totals := Totals(timeline)
	assert.Equal(t, schema.Totals{TotalMusic: 3, TotalVideos: 1, TotalCommits: 8}, totals)
}

func TestTotalsEmpty(t *testing.T) {
	assert.Equal(t, schema.Totals{}, Totals(nil))
}

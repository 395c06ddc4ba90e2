// Package parquet exports correlation datasets to Parquet files using
// github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"

	"github.com/huangsam/flowstate/schema"
	"github.com/parquet-go/parquet-go"
)

// TimelineRow is the per-date metric row for analytics tooling. One row per
// Timeline entry, tagged by the snapshot it came from.
type TimelineRow struct {
	// DatasetID references the snapshot this row belongs to
	DatasetID int64 `parquet:"dataset_id,snappy"`

	// Date is the calendar day in YYYY-MM-DD form
	Date string `parquet:"date,snappy"`

	// MusicCount is the number of music plays on this date
	MusicCount int32 `parquet:"music_count,snappy"`

	// VideoCount is the number of video views on this date
	VideoCount int32 `parquet:"video_count,snappy"`

	// CommitCount is the number of commits on this date
	CommitCount int32 `parquet:"commit_count,snappy"`
}

// PatternRow is one pattern bucket of a snapshot with its derived stats.
type PatternRow struct {
	// DatasetID references the snapshot this row belongs to
	DatasetID int64 `parquet:"dataset_id,snappy"`

	// Pattern is the behavioral pattern name (music_only, video_only, both, neither)
	Pattern string `parquet:"pattern,snappy"`

	// AvgCommits is the rounded average commits per day for this pattern
	AvgCommits float64 `parquet:"avg_commits,snappy"`

	// Days is the number of days matching this pattern
	Days int32 `parquet:"days,snappy"`

	// BestPattern marks the snapshot's winning pattern (nullable)
	BestPattern *string `parquet:"best_pattern,optional,snappy"`
}

// WriteTimelineParquet writes timeline rows to a Parquet file.
func WriteTimelineParquet(data []TimelineRow, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Schema is inferred from the TimelineRow struct tags
	writer := parquet.NewGenericWriter[TimelineRow](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	return nil
}

// WritePatternsParquet writes pattern rows to a Parquet file.
func WritePatternsParquet(data []PatternRow, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Schema is inferred from the PatternRow struct tags
	writer := parquet.NewGenericWriter[PatternRow](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	return nil
}

// ConvertTimeline converts a dataset's timeline to Parquet rows.
func ConvertTimeline(datasetID int64, timeline schema.Timeline) []TimelineRow {
	result := make([]TimelineRow, len(timeline))
	for i, metric := range timeline {
		result[i] = TimelineRow{
			DatasetID:   datasetID,
			Date:        metric.Date,
			MusicCount:  int32(metric.MusicCount),
			VideoCount:  int32(metric.VideoCount),
			CommitCount: int32(metric.CommitCount),
		}
	}
	return result
}

// ConvertPatterns converts a dataset's correlation buckets to Parquet rows.
// Rows follow the fixed pattern enumeration order, and the winning pattern
// carries the snapshot-level best pattern label.
func ConvertPatterns(datasetID int64, dataset *schema.Dataset) []PatternRow {
	result := make([]PatternRow, 0, len(schema.PatternOrder))
	for _, name := range schema.PatternOrder {
		bucket := dataset.Correlations[name]
		row := PatternRow{
			DatasetID:  datasetID,
			Pattern:    string(name),
			AvgCommits: bucket.AvgCommits,
			Days:       int32(bucket.Days),
		}
		if dataset.Insights.BestPattern == name.Title() {
			best := dataset.Insights.BestPattern
			row.BestPattern = &best
		}
		result = append(result, row)
	}
	return result
}

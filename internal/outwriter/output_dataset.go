package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/huangsam/flowstate/internal/contract"
	"github.com/huangsam/flowstate/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteDataset outputs a correlation dataset summary, dispatching based on
// the output format configured.
func (ow *OutWriter) WriteDataset(dataset *schema.Dataset, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, dataset)
		}, "JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeTimelineCSV(w, dataset.Timeline)
		}, "CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeDatasetTable(w, dataset)
		}, "table")
	}
}

// writeDatasetTable renders the pattern buckets plus a totals/insights summary.
func writeDatasetTable(w io.Writer, dataset *schema.Dataset) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Pattern", "Avg Commits", "Days"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, name := range schema.PatternOrder {
		bucket := dataset.Correlations[name]
		data = append(data, []string{
			name.Title(),
			fmt.Sprintf("%.1f", bucket.AvgCommits),
			strconv.Itoa(bucket.Days),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	totals := dataset.Totals
	if _, err := fmt.Fprintf(w, "Timeline: %d days (music: %d, videos: %d, commits: %d)\n",
		len(dataset.Timeline), totals.TotalMusic, totals.TotalVideos, totals.TotalCommits); err != nil {
		return err
	}
	insights := dataset.Insights
	if _, err := fmt.Fprintf(w, "Music impact: %s | Video impact: %s | Synergy: %s\n",
		insights.MusicImpact, insights.VideoImpact, insights.SynergyBoost); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Best pattern: %s\n", contract.HighlightValue(insights.BestPattern))
	return err
}

// writeTimelineCSV writes the per-date counts in CSV form.
func writeTimelineCSV(w io.Writer, timeline schema.Timeline) error {
	csvWriter := csv.NewWriter(w)
	defer csvWriter.Flush()

	if err := csvWriter.Write([]string{"date", "music_count", "video_count", "commit_count"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, m := range timeline {
		row := []string{m.Date, strconv.Itoa(m.MusicCount), strconv.Itoa(m.VideoCount), strconv.Itoa(m.CommitCount)}
		if err := csvWriter.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	return nil
}

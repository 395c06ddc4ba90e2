package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/huangsam/flowstate/internal/contract"
	"github.com/huangsam/flowstate/internal/parquet"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// exportCmd exports the saved dataset to Parquet files.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the correlation dataset to Parquet for analytics",
	Long: `Export the latest correlation snapshot to Parquet format for use
with analytics tools.

Exports two datasets:
- timeline.parquet - per-date music, video and commit counts
- patterns.parquet - pattern buckets with averages and the winning pattern

Parquet format enables fast querying with DuckDB, Apache Spark and pandas.

Examples:
  # Export into the default directory
  flowstate export

  # Use with DuckDB for analysis
  flowstate export --export-dir ./analytics
  duckdb -c "SELECT * FROM read_parquet('analytics/timeline.parquet')"`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		dataset, err := datasetStore.Load()
		if err != nil {
			failQuery(err)
		}

		exportDir := viper.GetString("export-dir")
		if err := os.MkdirAll(exportDir, 0755); err != nil {
			contract.LogFatal("Cannot create export directory", err)
		}

		// A single snapshot export; the id ties the two files together.
		const datasetID = 1

		timelinePath := filepath.Join(exportDir, "timeline.parquet")
		if err := parquet.WriteTimelineParquet(parquet.ConvertTimeline(datasetID, dataset.Timeline), timelinePath); err != nil {
			contract.LogFatal("Cannot export timeline", err)
		}

		patternsPath := filepath.Join(exportDir, "patterns.parquet")
		if err := parquet.WritePatternsParquet(parquet.ConvertPatterns(datasetID, dataset), patternsPath); err != nil {
			contract.LogFatal("Cannot export patterns", err)
		}

		fmt.Printf("Exported %d timeline rows to %s\n", len(dataset.Timeline), timelinePath)
		fmt.Printf("Exported pattern buckets to %s\n", patternsPath)
	},
}

package cmd

import (
	"path/filepath"

	"github.com/huangsam/flowstate/core"
	"github.com/huangsam/flowstate/core/agg"
	"github.com/huangsam/flowstate/internal/contract"
	"github.com/huangsam/flowstate/internal/ingest"
	"github.com/huangsam/flowstate/internal/outwriter"
	"github.com/spf13/cobra"
)

// correlateCmd runs the correlation pipeline end to end.
var correlateCmd = &cobra.Command{
	Use:   "correlate",
	Short: "Build the correlation dataset from normalized events",
	Long: `Aggregate the normalized media and commit event CSVs into a daily
timeline, compute pattern correlations and insights, and persist the
resulting snapshot.

The snapshot lands in the configured dataset backend (JSON file by default)
and is what every query reads from.

Examples:
  # Build and save the dataset
  flowstate correlate

  # Persist snapshots into SQLite instead of JSON
  flowstate correlate --dataset-backend sqlite

  # Inspect the dataset as JSON without color
  flowstate correlate --output json --color no`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		mediaEvents, err := ingest.ReadMediaEvents(filepath.Join(cfg.DataDir, ingest.MediaCSVName))
		if err != nil {
			contract.LogFatal("Cannot read media events", err)
		}
		commitEvents, err := ingest.ReadCommitEvents(filepath.Join(cfg.DataDir, ingest.CommitCSVName))
		if err != nil {
			contract.LogFatal("Cannot read commit events", err)
		}

		timeline := agg.Aggregate(mediaEvents, commitEvents)
		dataset := core.BuildDataset(timeline, agg.Totals(timeline))

		if err := datasetStore.Save(dataset); err != nil {
			contract.LogFatal("Cannot save dataset snapshot", err)
		}

		ow := outwriter.NewOutWriter()
		if err := ow.WriteDataset(dataset, cfg); err != nil {
			contract.LogFatal("Cannot write dataset output", err)
		}
	},
}

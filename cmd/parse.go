package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/huangsam/flowstate/core"
	"github.com/huangsam/flowstate/internal/contract"
	"github.com/huangsam/flowstate/internal/ingest"
	"github.com/spf13/cobra"
)

// parseCmd converts a watch history export into the normalized media CSV.
var parseCmd = &cobra.Command{
	Use:   "parse <watch-history.html>",
	Short: "Parse a YouTube watch history export into media events",
	Long: `Parse a Google Takeout watch history HTML export and write the
normalized media events CSV into the data directory.

Entries are classified as music or video from their titles. Entries without
a link or a parseable timestamp are skipped with a warning.

Examples:
  # Parse the Takeout export
  flowstate parse watch-history.html

  # Write events to a custom data directory
  flowstate parse watch-history.html --data-dir /tmp/events`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		file, err := os.Open(args[0])
		if err != nil {
			contract.LogFatal("Cannot open watch history file", err)
		}
		defer func() { _ = file.Close() }()

		result, err := ingest.ParseWatchHistory(file, core.NewDefaultCategorizer())
		if err != nil {
			contract.LogFatal("Cannot parse watch history", err)
		}

		outputPath := filepath.Join(cfg.DataDir, ingest.MediaCSVName)
		if err := ingest.WriteMediaCSV(outputPath, result.Records); err != nil {
			contract.LogFatal("Cannot write media events", err)
		}

		fmt.Printf("Parsed %d media events to %s", len(result.Records), outputPath)
		if result.Skipped > 0 {
			fmt.Printf(" (%d entries skipped)", result.Skipped)
		}
		fmt.Println()
	},
}

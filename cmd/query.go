package cmd

import (
	"fmt"
	"os"

	"github.com/huangsam/flowstate/core"
	"github.com/huangsam/flowstate/internal/contract"
	"github.com/huangsam/flowstate/internal/outwriter"
	"github.com/huangsam/flowstate/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// queryCmd groups the analytic queries over the saved dataset.
var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Run analytic queries over the correlation dataset",
	Long: `Answer productivity questions from the saved correlation snapshot.

Every query loads the latest snapshot fresh, so a rerun of 'flowstate
correlate' is picked up immediately. Failures are reported as a structured
error envelope with a machine-readable code and a suggestion.

Subcommands:
  best-hours    - Most productive hours from day-of-week patterns
  flow-state    - Which media pattern yields the highest commit average
  productivity  - Composite productivity score for one date
  music-impact  - Commit averages on music days versus silent days
  predict       - Expected commits for a hypothetical day

Examples:
  # Which pattern works best for me?
  flowstate query flow-state

  # How productive was a specific day?
  flowstate query productivity --date 2024-01-15

  # What if I listen to 2h of music and watch 30m of video?
  flowstate query predict --music-hours 2 --video-minutes 30`,
}

// runQuery loads the snapshot, runs one analysis and writes its payload.
// Query failures print the structured envelope and exit non-zero.
func runQuery(analyze func(dataset *schema.Dataset) (any, error)) {
	dataset, err := datasetStore.Load()
	if err != nil {
		failQuery(err)
	}

	payload, err := analyze(dataset)
	if err != nil {
		failQuery(err)
	}

	ow := outwriter.NewOutWriter()
	if err := ow.WriteQueryResult(payload, cfg); err != nil {
		contract.LogFatal("Cannot write query output", err)
	}
}

func failQuery(err error) {
	qerr := contract.AsQueryError(err, contract.ErrAnalysis,
		"Check the correlation data and try again.")
	fmt.Fprintln(os.Stderr, qerr.Envelope())
	os.Exit(1)
}

// queryBestHoursCmd surfaces the most productive hours.
var queryBestHoursCmd = &cobra.Command{
	Use:     "best-hours",
	Short:   "Show the most productive coding hours",
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		runQuery(func(dataset *schema.Dataset) (any, error) {
			return core.BestHours(dataset)
		})
	},
}

// queryFlowStateCmd surfaces the winning behavioral pattern.
var queryFlowStateCmd = &cobra.Command{
	Use:     "flow-state",
	Short:   "Show which media pattern produces the highest commit average",
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		runQuery(func(dataset *schema.Dataset) (any, error) {
			return core.FlowStatePattern(dataset)
		})
	},
}

// queryProductivityCmd scores a single date.
var queryProductivityCmd = &cobra.Command{
	Use:     "productivity",
	Short:   "Score productivity for a specific date",
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		date := viper.GetString("date")
		runQuery(func(dataset *schema.Dataset) (any, error) {
			return core.AnalyzeProductivity(dataset, date)
		})
	},
}

// queryMusicImpactCmd compares music days against silent days.
var queryMusicImpactCmd = &cobra.Command{
	Use:     "music-impact",
	Short:   "Compare commit output on music days versus silent days",
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		runQuery(func(dataset *schema.Dataset) (any, error) {
			return core.MusicImpact(dataset)
		})
	},
}

// queryPredictCmd predicts commits for a hypothetical day.
var queryPredictCmd = &cobra.Command{
	Use:     "predict",
	Short:   "Predict expected commits for planned media consumption",
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		musicHours := viper.GetFloat64("music-hours")
		videoMinutes := viper.GetFloat64("video-minutes")
		runQuery(func(dataset *schema.Dataset) (any, error) {
			return core.PredictCommits(dataset, musicHours, videoMinutes)
		})
	},
}

// Package cmd defines the command-line interface for flowstate.
package cmd

import (
	"github.com/huangsam/flowstate/internal/contract"
	"github.com/huangsam/flowstate/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(correlateCmd)
	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the query subcommands to the parent query command
	queryCmd.AddCommand(queryBestHoursCmd)
	queryCmd.AddCommand(queryFlowStateCmd)
	queryCmd.AddCommand(queryProductivityCmd)
	queryCmd.AddCommand(queryMusicImpactCmd)
	queryCmd.AddCommand(queryPredictCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or json or csv")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("dataset-path", contract.DefaultDatasetPath, "Path of the JSON dataset snapshot")
	rootCmd.PersistentFlags().String("data-dir", contract.DefaultDataDir, "Directory holding the normalized event CSVs")
	rootCmd.PersistentFlags().String("dataset-backend", string(schema.JSONBackend), "Dataset backend: json or sqlite or mysql or postgresql")
	rootCmd.PersistentFlags().String("dataset-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("dashboard-url", "", "Dashboard URL served by the MCP resource (defaults to localhost)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of fetchCmd to Viper
	fetchCmd.Flags().String("github-token", "", "GitHub token for authenticated commit fetching (or FLOWSTATE_GITHUB_TOKEN)")
	fetchCmd.Flags().Int("repo-limit", contract.DefaultRepoLimit, "Maximum repositories fetched per user")
	fetchCmd.Flags().Int("commit-limit", contract.DefaultCommitLimit, "Maximum commits fetched per repository")
	if err := viper.BindPFlags(fetchCmd.Flags()); err != nil {
		contract.LogFatal("Error binding fetch flags", err)
	}

	// Bind all flags of queryProductivityCmd to Viper
	queryProductivityCmd.Flags().String("date", "", "Date to analyze in YYYY-MM-DD format")
	if err := viper.BindPFlags(queryProductivityCmd.Flags()); err != nil {
		contract.LogFatal("Error binding productivity flags", err)
	}

	// Bind all flags of queryPredictCmd to Viper
	queryPredictCmd.Flags().Float64("music-hours", 0, "Hours of music listening planned")
	queryPredictCmd.Flags().Float64("video-minutes", 0, "Minutes of video watching planned")
	if err := viper.BindPFlags(queryPredictCmd.Flags()); err != nil {
		contract.LogFatal("Error binding predict flags", err)
	}

	// Bind all flags of exportCmd to Viper
	exportCmd.Flags().String("export-dir", "export", "Directory to write Parquet files to")
	if err := viper.BindPFlags(exportCmd.Flags()); err != nil {
		contract.LogFatal("Error binding export flags", err)
	}

	// Bind all flags of migrateCmd to Viper
	migrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(migrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding migrate flags", err)
	}
}

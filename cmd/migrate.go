package cmd

import (
	"fmt"
	"strings"

	"github.com/huangsam/flowstate/internal/contract"
	"github.com/huangsam/flowstate/internal/datastore"
	"github.com/huangsam/flowstate/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// migrateSetup loads minimal configuration needed for migrate operations.
// This deliberately does NOT initialize the dataset store, so migrations can
// run against a fresh database before any tables exist.
func migrateSetup(_ *cobra.Command, _ []string) error {
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName(".flowstate")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME")
	}
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	backend := schema.DatasetBackend(strings.ToLower(viper.GetString("dataset-backend")))
	connStr := viper.GetString("dataset-db-connect")
	if err := contract.ValidateDatasetConnectionString(backend, connStr); err != nil {
		return err
	}

	cfg.DatasetBackend = backend
	cfg.DatasetDBConnect = connStr
	return nil
}

// migrateCmd runs database migrations for SQL dataset backends.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage database schema versions for SQL dataset backends.

By default, migrates to the latest version. Use --target-version for
specific versions. The JSON backend needs no migrations.

Examples:
  # Migrate to latest version (default)
  flowstate migrate --dataset-backend sqlite

  # Rollback to initial state
  flowstate migrate --dataset-backend sqlite --target-version 0`,
	PreRunE: migrateSetup,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := datastore.MigrateDataset(cfg.DatasetBackend, cfg.DatasetDBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}

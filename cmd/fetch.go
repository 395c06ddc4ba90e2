package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/huangsam/flowstate/internal/contract"
	"github.com/huangsam/flowstate/internal/ingest"
	"github.com/spf13/cobra"
)

// fetchCmd pulls commit history from GitHub into the normalized commit CSV.
var fetchCmd = &cobra.Command{
	Use:   "fetch <username>",
	Short: "Fetch GitHub commit history into commit events",
	Long: `Fetch recent commits across a user's repositories and write the
normalized commit events CSV into the data directory.

Unauthenticated requests work for public repositories but are heavily rate
limited. Set FLOWSTATE_GITHUB_TOKEN or --github-token for higher limits and
private repository access.

Examples:
  # Fetch public commit history
  flowstate fetch octocat

  # Authenticated fetch with custom limits
  FLOWSTATE_GITHUB_TOKEN=ghp_xxx flowstate fetch octocat --repo-limit 10`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		token := cfg.GithubToken
		if token == "" {
			token = os.Getenv("GITHUB_TOKEN")
		}
		fetcher := ingest.NewCommitFetcher(rootCtx, token, cfg.RepoLimit, cfg.CommitLimit)
		records, err := fetcher.FetchUserCommits(rootCtx, args[0])
		if err != nil {
			contract.LogFatal("Cannot fetch commit history", err)
		}

		outputPath := filepath.Join(cfg.DataDir, ingest.CommitCSVName)
		if err := ingest.WriteCommitCSV(outputPath, records); err != nil {
			contract.LogFatal("Cannot write commit events", err)
		}

		fmt.Printf("Fetched %d commits to %s\n", len(records), outputPath)
	},
}

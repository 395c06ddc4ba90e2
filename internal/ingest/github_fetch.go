package ingest

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	gh "github.com/google/go-github/v80/github"
	"github.com/huangsam/flowstate/internal/contract"
	"golang.org/x/oauth2"
)

// CommitFetcher pulls a user's recent commit history from GitHub.
type CommitFetcher struct {
	client      *gh.Client
	repoLimit   int
	commitLimit int
}

// NewCommitFetcher creates a fetcher. An empty token means unauthenticated
// requests, which GitHub rate-limits to 60 per hour.
func NewCommitFetcher(ctx context.Context, token string, repoLimit, commitLimit int) *CommitFetcher {
	var hc *http.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(
			&oauth2.Token{AccessToken: token},
		)
		hc = oauth2.NewClient(ctx, ts)
	}
	return &CommitFetcher{
		client:      gh.NewClient(hc),
		repoLimit:   repoLimit,
		commitLimit: commitLimit,
	}
}

// NewCommitFetcherWithClient creates a fetcher around an existing client,
// for tests against a stub API server.
func NewCommitFetcherWithClient(client *gh.Client, repoLimit, commitLimit int) *CommitFetcher {
	return &CommitFetcher{client: client, repoLimit: repoLimit, commitLimit: commitLimit}
}

// FetchUserCommits lists the user's repositories up to the repo limit and
// collects up to the commit limit from each. Per-repo failures are logged
// and skipped so one empty or blocked repository does not abort the run.
func (f *CommitFetcher) FetchUserCommits(ctx context.Context, username string) ([]CommitRecord, error) {
	repos, _, err := f.client.Repositories.ListByUser(ctx, username, &gh.RepositoryListByUserOptions{
		ListOptions: gh.ListOptions{PerPage: 100},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list repositories for %s: %w", username, err)
	}
	if len(repos) > f.repoLimit {
		repos = repos[:f.repoLimit]
	}

	var records []CommitRecord
	for _, repo := range repos {
		repoName := repo.GetName()
		commits, _, err := f.client.Repositories.ListCommits(ctx, username, repoName, &gh.CommitsListOptions{
			ListOptions: gh.ListOptions{PerPage: f.commitLimit},
		})
		if err != nil {
			contract.LogWarn(fmt.Sprintf("skipping repository %s", repoName), err)
			continue
		}

		for _, commit := range commits {
			record, ok := extractCommitRecord(commit, repoName)
			if !ok {
				continue
			}
			records = append(records, record)
		}
	}

	return records, nil
}

// extractCommitRecord flattens a commit into the CSV record shape. Only the
// first line of the message is kept.
func extractCommitRecord(commit *gh.RepositoryCommit, repoName string) (CommitRecord, bool) {
	inner := commit.GetCommit()
	if inner == nil || inner.GetAuthor() == nil {
		return CommitRecord{}, false
	}
	authored := inner.GetAuthor().GetDate()
	if authored.IsZero() {
		return CommitRecord{}, false
	}

	message, _, _ := strings.Cut(inner.GetMessage(), "\n")
	t := authored.Time

	return CommitRecord{
		Repo:      repoName,
		Message:   message,
		Timestamp: t.Format(time.RFC3339),
		Date:      t.Format(time.DateOnly),
		Hour:      t.Hour(),
		DayOfWeek: t.Weekday().String(),
	}, true
}

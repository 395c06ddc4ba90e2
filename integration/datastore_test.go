//go:build database

// Package integration contains integration tests for flowstate.
// These tests are excluded from normal test runs due to build tags.
// To run these tests: go test -tags database ./integration
package integration

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/huangsam/flowstate/internal/datastore"
	"github.com/huangsam/flowstate/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func snapshotFixture() *schema.Dataset {
	return &schema.Dataset{
		Timeline: schema.Timeline{
			{Date: "2024-01-01", MusicCount: 2, VideoCount: 1, CommitCount: 5},
			{Date: "2024-01-02", MusicCount: 0, VideoCount: 0, CommitCount: 3},
		},
		Totals: schema.Totals{TotalMusic: 2, TotalVideos: 1, TotalCommits: 8},
		Correlations: schema.Correlations{
			schema.MusicOnlyPattern: {AvgCommits: 0, Days: 0},
			schema.VideoOnlyPattern: {AvgCommits: 0, Days: 0},
			schema.BothPattern:      {AvgCommits: 5, Days: 1},
			schema.NeitherPattern:   {AvgCommits: 3, Days: 1},
		},
		Insights: schema.Insights{
			MusicImpact:  "+66.7%",
			VideoImpact:  "+66.7%",
			SynergyBoost: "+66.7%",
			BestPattern:  "Both",
		},
	}
}

// exerciseStore saves two snapshots and verifies the latest one wins.
func exerciseStore(t *testing.T, backend schema.DatasetBackend, connStr string) {
	t.Helper()

	require.NoError(t, datastore.MigrateDataset(backend, connStr, -1))

	store, err := datastore.NewSQLStore(backend, connStr)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	first := snapshotFixture()
	require.NoError(t, store.Save(first))

	second := snapshotFixture()
	second.Timeline = append(second.Timeline, schema.DailyMetric{
		Date: "2024-01-03", MusicCount: 1, VideoCount: 0, CommitCount: 7,
	})
	second.Totals.TotalCommits = 15
	require.NoError(t, store.Save(second))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, second.Timeline, loaded.Timeline)
	assert.Equal(t, 15, loaded.Totals.TotalCommits)
	assert.Equal(t, second.Correlations, loaded.Correlations)
	assert.Equal(t, second.Insights, loaded.Insights)
}

// TestDatasetStoreWithMySQL tests the dataset store with a MySQL backend.
func TestDatasetStoreWithMySQL(t *testing.T) {
	ctx := context.Background()

	// Start MySQL container
	req := testcontainers.ContainerRequest{
		Image:        "mysql:8",
		ExposedPorts: []string{"3306:3306/tcp"},
		Env: map[string]string{
			"MYSQL_ROOT_PASSWORD": "secret123",
			"MYSQL_DATABASE":      "flowstate",
		},
		WaitingFor: wait.ForLog("port: 3306  MySQL Community Server").WithStartupTimeout(30 * time.Second),
	}
	mysqlC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer func() { _ = mysqlC.Terminate(ctx) }()

	host, err := mysqlC.Host(ctx)
	require.NoError(t, err)
	port, err := mysqlC.MappedPort(ctx, "3306")
	require.NoError(t, err)

	connStr := fmt.Sprintf("root:secret123@tcp(%s:%s)/flowstate?parseTime=true", host, port.Port())
	exerciseStore(t, schema.MySQLBackend, connStr)
}

// TestDatasetStoreWithPostgres tests the dataset store with a PostgreSQL backend.
func TestDatasetStoreWithPostgres(t *testing.T) {
	ctx := context.Background()

	// Start Postgres container
	req := testcontainers.ContainerRequest{
		Image:        "postgres:18-alpine",
		ExposedPorts: []string{"5432:5432/tcp"},
		Env: map[string]string{
			"POSTGRES_HOST_AUTH_METHOD": "trust",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").WithStartupTimeout(30 * time.Second),
	}
	pgC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer func() { _ = pgC.Terminate(ctx) }()
	time.Sleep(5 * time.Second)

	host, err := pgC.Host(ctx)
	require.NoError(t, err)
	port, err := pgC.MappedPort(ctx, "5432")
	require.NoError(t, err)

	connStr := fmt.Sprintf("postgres://postgres@%s:%s/postgres?sslmode=disable", host, port.Port())
	exerciseStore(t, schema.PostgreSQLBackend, connStr)
}

package database

import (
	"context"
	stdsql "database/sql"
	"os"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/glocalhq/glocal/ent"
	"github.com/glocalhq/glocal/ent/localizationjob"
	"github.com/glocalhq/glocal/pkg/pipeline"
)

// newTestClient creates a test database client with CI/local environment detection.
// In CI (when CI_DATABASE_URL is set): connects to external PostgreSQL service container.
// In local dev: spins up a testcontainer with PostgreSQL.
func newTestClient(t *testing.T) *Client {
	ctx := context.Background()

	ciDatabaseURL := os.Getenv("CI_DATABASE_URL")

	var connStr string

	if ciDatabaseURL != "" {
		t.Log("Using external PostgreSQL from CI_DATABASE_URL")
		connStr = ciDatabaseURL
	} else {
		t.Log("Using testcontainers for PostgreSQL")
		pgContainer, err := postgres.Run(ctx,
			"postgres:17-alpine",
			postgres.WithDatabase("test"),
			postgres.WithUsername("test"),
			postgres.WithPassword("test"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
		require.NoError(t, err)
		t.Cleanup(func() {
			_ = pgContainer.Terminate(context.Background())
		})

		connStr, err = pgContainer.ConnectionString(ctx, "sslmode=disable")
		require.NoError(t, err)
	}

	db, err := stdsql.Open("pgx", connStr)
	require.NoError(t, err)

	require.NoError(t, db.PingContext(ctx))

	drv := entsql.OpenDB(dialect.Postgres, db)
	entClient := ent.NewClient(ent.Driver(drv))

	require.NoError(t, entClient.Schema.Create(ctx))

	client := NewClientFromEnt(entClient, db)
	t.Cleanup(func() {
		_ = client.Close()
	})

	return client
}

func TestNewClientFromEnt(t *testing.T) {
	client := newTestClient(t)

	require.NotNil(t, client.Client)
	require.NotNil(t, client.DB())
}

func TestClient_JobRoundTrip(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	job, err := client.LocalizationJob.Create().
		SetID("job-1").
		SetProjectID("proj-1").
		SetSourceAssetID("asset-1").
		SetLanguages([]string{"de", "fr"}).
		SetOptions(pipeline.DefaultOptions()).
		SetCreatedBy("tester").
		Save(ctx)
	require.NoError(t, err)
	assert.Equal(t, localizationjob.StatusQueued, job.Status)

	variant, err := client.LocalizedVariant.Create().
		SetID("var-1").
		SetJobID("job-1").
		SetLang("de").
		Save(ctx)
	require.NoError(t, err)
	assert.Equal(t, "de", variant.Lang)

	got, err := client.LocalizationJob.Query().
		Where(localizationjob.IDEQ("job-1")).
		WithVariants().
		Only(ctx)
	require.NoError(t, err)
	require.Len(t, got.Edges.Variants, 1)
	assert.Equal(t, []string{"de", "fr"}, got.Languages)
	assert.True(t, got.Options.Dub)
}

func TestClient_VariantUniquePerLang(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	_, err := client.LocalizationJob.Create().
		SetID("job-2").
		SetProjectID("proj-1").
		SetSourceAssetID("asset-1").
		SetLanguages([]string{"de"}).
		SetOptions(pipeline.DefaultOptions()).
		SetCreatedBy("tester").
		Save(ctx)
	require.NoError(t, err)

	_, err = client.LocalizedVariant.Create().
		SetID("var-a").
		SetJobID("job-2").
		SetLang("de").
		Save(ctx)
	require.NoError(t, err)

	_, err = client.LocalizedVariant.Create().
		SetID("var-b").
		SetJobID("job-2").
		SetLang("de").
		Save(ctx)
	require.Error(t, err, "one variant per (job, lang)")
}

func TestHealth(t *testing.T) {
	client := newTestClient(t)

	status, err := Health(context.Background(), client.DB())
	require.NoError(t, err)
	assert.Equal(t, "healthy", status.Status)
	assert.GreaterOrEqual(t, status.OpenConnections, 0)
}

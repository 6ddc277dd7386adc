package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glocalhq/glocal/ent"
	"github.com/glocalhq/glocal/ent/localizationjob"
	"github.com/glocalhq/glocal/ent/localizedvariant"
	"github.com/glocalhq/glocal/pkg/pipeline"
	"github.com/glocalhq/glocal/test/util"
)

func seedJob(t *testing.T, client *ent.Client, id string, status localizationjob.Status, age time.Duration) {
	t.Helper()
	ctx := context.Background()

	_, err := client.LocalizationJob.Create().
		SetID(id).
		SetProjectID("proj-1").
		SetStatus(status).
		SetSourceAssetID("asset-1").
		SetLanguages([]string{"de"}).
		SetOptions(pipeline.DefaultOptions()).
		SetCreatedBy("tester").
		SetCreatedAt(time.Now().Add(-age)).
		Save(ctx)
	require.NoError(t, err)

	_, err = client.LocalizedVariant.Create().
		SetID(id + "-de").
		SetJobID(id).
		SetLang("de").
		Save(ctx)
	require.NoError(t, err)
}

func TestDeleteExpiredJobs(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	svc := NewService(client, Config{JobRetentionDays: 30, Interval: time.Hour})

	seedJob(t, client, "old-done", localizationjob.StatusDone, 40*24*time.Hour)
	seedJob(t, client, "old-partial", localizationjob.StatusPartial, 40*24*time.Hour)
	seedJob(t, client, "old-active", localizationjob.StatusProcessing, 40*24*time.Hour)
	seedJob(t, client, "fresh-done", localizationjob.StatusDone, 24*time.Hour)

	count, err := svc.DeleteExpiredJobs(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	remaining, err := client.LocalizationJob.Query().IDs(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"old-active", "fresh-done"}, remaining)

	// Variant rows of deleted jobs go with the cascade.
	variants, err := client.LocalizedVariant.Query().
		Where(localizedvariant.JobIDIn("old-done", "old-partial")).
		Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, variants)
}

func TestDeleteExpiredJobs_EmptyTable(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)

	svc := NewService(client, Config{JobRetentionDays: 30, Interval: time.Hour})

	count, err := svc.DeleteExpiredJobs(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}

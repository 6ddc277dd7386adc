package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glocalhq/glocal/ent"
	"github.com/glocalhq/glocal/pkg/messages"
	"github.com/glocalhq/glocal/pkg/pipeline"
	"github.com/glocalhq/glocal/test/util"
)

// recordingBus captures published messages for assertions.
type recordingBus struct {
	published []publishedMessage
	failNext  error
}

type publishedMessage struct {
	RoutingKey string
	Payload    any
}

func (r *recordingBus) Publish(_ context.Context, routingKey string, payload any) error {
	if r.failNext != nil {
		err := r.failNext
		r.failNext = nil
		return err
	}
	r.published = append(r.published, publishedMessage{RoutingKey: routingKey, Payload: payload})
	return nil
}

func newTestService(t *testing.T) (*JobService, *ent.Client, *recordingBus) {
	t.Helper()
	entClient, _ := util.SetupTestDatabase(t)
	bus := &recordingBus{}
	return NewJobService(entClient, bus), entClient, bus
}

func createAsset(t *testing.T, client *ent.Client) string {
	t.Helper()
	asset, err := client.Asset.Create().
		SetID("asset-1").
		SetProjectID("proj-1").
		SetType("video").
		SetS3URL("s3://glocal/sources/asset-1/input.mp4").
		Save(context.Background())
	require.NoError(t, err)
	return asset.ID
}

func TestJobService_CreateJob(t *testing.T) {
	svc, client, bus := newTestService(t)
	ctx := context.Background()
	assetID := createAsset(t, client)

	job, err := svc.CreateJob(ctx, CreateJobInput{
		ProjectID:     "proj-1",
		SourceAssetID: assetID,
		Languages:     []string{"de", "fr"},
		Options:       pipeline.DefaultOptions(),
		CreatedBy:     "tester",
	})
	require.NoError(t, err)

	assert.Equal(t, "queued", job.Status.String())
	require.Len(t, job.Edges.Variants, 2)
	for _, v := range job.Edges.Variants {
		assert.Equal(t, "queued", v.Status.String())
	}

	require.Len(t, bus.published, 1)
	assert.Equal(t, messages.KeyJobCreated, bus.published[0].RoutingKey)

	created, ok := bus.published[0].Payload.(messages.JobCreated)
	require.True(t, ok)
	assert.Equal(t, job.ID, created.JobID)
	assert.Equal(t, []string{"de", "fr"}, created.Languages)
	assert.Equal(t, "sources/asset-1/input.mp4", created.SourceAsset.Key)
	assert.Equal(t, "video", created.SourceAsset.Type)
}

func TestJobService_CreateJob_ValidationErrors(t *testing.T) {
	svc, client, bus := newTestService(t)
	ctx := context.Background()
	assetID := createAsset(t, client)

	tests := []struct {
		name  string
		input CreateJobInput
		field string
	}{
		{
			name:  "missing project",
			input: CreateJobInput{SourceAssetID: assetID, Languages: []string{"de"}},
			field: "project_id",
		},
		{
			name:  "no languages",
			input: CreateJobInput{ProjectID: "proj-1", SourceAssetID: assetID},
			field: "languages",
		},
		{
			name:  "duplicate languages",
			input: CreateJobInput{ProjectID: "proj-1", SourceAssetID: assetID, Languages: []string{"de", "de"}},
			field: "languages",
		},
		{
			name:  "blank language",
			input: CreateJobInput{ProjectID: "proj-1", SourceAssetID: assetID, Languages: []string{" "}},
			field: "languages",
		},
		{
			name:  "unknown asset",
			input: CreateJobInput{ProjectID: "proj-1", SourceAssetID: "nope", Languages: []string{"de"}},
			field: "source_asset_id",
		},
		{
			name:  "unknown voice profile",
			input: CreateJobInput{ProjectID: "proj-1", SourceAssetID: assetID, Languages: []string{"de"}, VoiceProfileID: "nope"},
			field: "voice_profile_id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.input.Options = pipeline.DefaultOptions()
			tt.input.CreatedBy = "tester"
			_, err := svc.CreateJob(ctx, tt.input)
			require.Error(t, err)

			var ve *ValidationError
			require.True(t, errors.As(err, &ve), "expected validation error, got %v", err)
			assert.Equal(t, tt.field, ve.Field)
		})
	}

	// Validation failures must not reach the bus or the database.
	assert.Empty(t, bus.published)
	count, err := client.LocalizationJob.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestJobService_CreateJob_PublishFailure(t *testing.T) {
	svc, client, bus := newTestService(t)
	ctx := context.Background()
	assetID := createAsset(t, client)

	bus.failNext = errors.New("broker down")

	_, err := svc.CreateJob(ctx, CreateJobInput{
		ProjectID:     "proj-1",
		SourceAssetID: assetID,
		Languages:     []string{"de"},
		Options:       pipeline.DefaultOptions(),
		CreatedBy:     "tester",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "announcement failed")

	// The row survives the failed announcement.
	count, qerr := client.LocalizationJob.Query().Count(ctx)
	require.NoError(t, qerr)
	assert.Equal(t, 1, count)
}

func TestJobService_GetJob_NotFound(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.GetJob(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestJobService_ListJobs(t *testing.T) {
	svc, client, _ := newTestService(t)
	ctx := context.Background()
	assetID := createAsset(t, client)

	for _, project := range []string{"proj-1", "proj-1", "proj-2"} {
		_, err := svc.CreateJob(ctx, CreateJobInput{
			ProjectID:     project,
			SourceAssetID: assetID,
			Languages:     []string{"de"},
			Options:       pipeline.DefaultOptions(),
			CreatedBy:     "tester",
		})
		require.NoError(t, err)
	}

	jobs, err := svc.ListJobs(ctx, "proj-1", 0)
	require.NoError(t, err)
	assert.Len(t, jobs, 2)

	all, err := svc.ListJobs(ctx, "", 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestJobService_CreateJob_WithVoiceProfile(t *testing.T) {
	svc, client, bus := newTestService(t)
	ctx := context.Background()
	assetID := createAsset(t, client)

	params, _ := json.Marshal(map[string]any{"rate": 1.0})
	var providerParams map[string]any
	require.NoError(t, json.Unmarshal(params, &providerParams))

	_, err := client.VoiceProfile.Create().
		SetID("vp-1").
		SetName("Narrator").
		SetProvider("demo").
		SetProviderParams(providerParams).
		Save(ctx)
	require.NoError(t, err)

	job, err := svc.CreateJob(ctx, CreateJobInput{
		ProjectID:      "proj-1",
		SourceAssetID:  assetID,
		Languages:      []string{"es"},
		VoiceProfileID: "vp-1",
		Options:        pipeline.DefaultOptions(),
		CreatedBy:      "tester",
	})
	require.NoError(t, err)
	require.NotNil(t, job.VoiceProfileID)
	assert.Equal(t, "vp-1", *job.VoiceProfileID)

	created := bus.published[0].Payload.(messages.JobCreated)
	assert.Equal(t, "vp-1", created.VoiceProfileID)
}

package agent

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glocalhq/glocal/ent"
	"github.com/glocalhq/glocal/ent/localizedvariant"
	"github.com/glocalhq/glocal/pkg/messages"
	"github.com/glocalhq/glocal/pkg/pipeline"
	"github.com/glocalhq/glocal/pkg/progress"
	"github.com/glocalhq/glocal/test/util"
)

type recordingBus struct {
	mu        sync.Mutex
	published []busMessage
}

type busMessage struct {
	RoutingKey string
	Payload    any
}

func (r *recordingBus) Publish(_ context.Context, routingKey string, payload any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.published = append(r.published, busMessage{RoutingKey: routingKey, Payload: payload})
	return nil
}

func seedVariant(t *testing.T, client *ent.Client) *ent.LocalizedVariant {
	t.Helper()
	ctx := context.Background()

	_, err := client.Asset.Create().
		SetID("asset-1").
		SetProjectID("proj-1").
		SetType("video").
		SetS3URL("s3://glocal/sources/asset-1/input.mp4").
		Save(ctx)
	require.NoError(t, err)

	_, err = client.LocalizationJob.Create().
		SetID("job-1").
		SetProjectID("proj-1").
		SetSourceAssetID("asset-1").
		SetLanguages([]string{"de"}).
		SetOptions(pipeline.DefaultOptions()).
		SetCreatedBy("tester").
		Save(ctx)
	require.NoError(t, err)

	variant, err := client.LocalizedVariant.Create().
		SetID("var-1").
		SetJobID("job-1").
		SetLang("de").
		SetStatus(localizedvariant.StatusProcessing).
		Save(ctx)
	require.NoError(t, err)
	return variant
}

func TestRunner_HandleSuccess(t *testing.T) {
	entClient, _ := util.SetupTestDatabase(t)
	seedVariant(t, entClient)

	store := newFakeStore()
	seedTranslatedSegments(t, store)

	busRec := &recordingBus{}
	progRec := &recordingProgress{}
	runner := NewRunner(SubsHandler{}, entClient, busRec, progRec, store)

	body, err := json.Marshal(testWork())
	require.NoError(t, err)
	require.NoError(t, runner.Handle(context.Background(), body))

	// The completion event mirrors the inbound identifiers.
	require.Len(t, busRec.published, 1)
	assert.Equal(t, "stage.subs.completed", busRec.published[0].RoutingKey)
	result := busRec.published[0].Payload.(messages.StageResult)
	assert.Equal(t, "job-1", result.JobID)
	assert.Equal(t, "var-1", result.VariantID)
	assert.Equal(t, "de", result.Lang)
	assert.Equal(t, messages.ResultCompleted, result.Status)
	assert.Equal(t, "jobs/job-1/de/subs/subtitles.srt", result.SubsKey)

	// The subs URL landed on the variant row.
	variant, err := entClient.LocalizedVariant.Get(context.Background(), "var-1")
	require.NoError(t, err)
	require.NotNil(t, variant.SubsURL)
	assert.Equal(t, "s3://glocal/jobs/job-1/de/subs/subtitles.srt", *variant.SubsURL)

	// Fractional processing events were emitted along the way.
	var processing int
	for _, e := range progRec.events {
		if e.Status == progress.StatusProcessing {
			processing++
			assert.Greater(t, e.Progress, 0.0)
			assert.Less(t, e.Progress, 1.0)
		}
	}
	assert.GreaterOrEqual(t, processing, 2)
}

func TestRunner_HandleFailure(t *testing.T) {
	entClient, _ := util.SetupTestDatabase(t)
	seedVariant(t, entClient)

	// No translated segments in the store: the handler must fail.
	store := newFakeStore()
	busRec := &recordingBus{}
	progRec := &recordingProgress{}
	runner := NewRunner(SubsHandler{}, entClient, busRec, progRec, store)

	body, err := json.Marshal(testWork())
	require.NoError(t, err)
	require.NoError(t, runner.Handle(context.Background(), body))

	require.Len(t, busRec.published, 1)
	assert.Equal(t, "stage.subs.failed", busRec.published[0].RoutingKey)
	result := busRec.published[0].Payload.(messages.StageResult)
	assert.Equal(t, messages.ResultError, result.Status)
	assert.NotEmpty(t, result.Error)

	var sawError bool
	for _, e := range progRec.events {
		if e.Status == progress.StatusError {
			sawError = true
		}
	}
	assert.True(t, sawError)

	// Failure is reported by the orchestrator, not the worker; the row is
	// untouched here.
	variant, err := entClient.LocalizedVariant.Get(context.Background(), "var-1")
	require.NoError(t, err)
	assert.Equal(t, localizedvariant.StatusProcessing, variant.Status)
}

func TestRunner_TerminalVariantRowIsPreserved(t *testing.T) {
	entClient, _ := util.SetupTestDatabase(t)
	seedVariant(t, entClient)
	ctx := context.Background()

	// Simulate a variant that failed while this message was in flight.
	_, err := entClient.LocalizedVariant.UpdateOneID("var-1").
		SetStatus(localizedvariant.StatusError).
		SetErrorMessage("failed elsewhere").
		Save(ctx)
	require.NoError(t, err)

	store := newFakeStore()
	seedTranslatedSegments(t, store)
	runner := NewRunner(SubsHandler{}, entClient, &recordingBus{}, &recordingProgress{}, store)

	body, err := json.Marshal(testWork())
	require.NoError(t, err)
	require.NoError(t, runner.Handle(ctx, body))

	variant, err := entClient.LocalizedVariant.Get(ctx, "var-1")
	require.NoError(t, err)
	assert.Equal(t, localizedvariant.StatusError, variant.Status)
	assert.Nil(t, variant.SubsURL, "terminal rows must not gain artifact URLs")
}

func TestRunner_MalformedMessageDropped(t *testing.T) {
	entClient, _ := util.SetupTestDatabase(t)
	busRec := &recordingBus{}
	runner := NewRunner(SubsHandler{}, entClient, busRec, &recordingProgress{}, newFakeStore())

	require.NoError(t, runner.Handle(context.Background(), []byte("{not json")))
	require.NoError(t, runner.Handle(context.Background(), []byte(`{"job_id":"j"}`)))
	assert.Empty(t, busRec.published)
}

func TestUploader_Handle(t *testing.T) {
	progRec := &recordingProgress{}
	uploader := NewUploader(progRec)

	body, err := json.Marshal(messages.YoutubeUpload{
		JobID:     "job-1",
		VariantID: "var-1",
		Lang:      "de",
		VideoURL:  "s3://glocal/jobs/job-1/de/mix/out.mp4",
	})
	require.NoError(t, err)
	require.NoError(t, uploader.Handle(context.Background(), body))

	require.Len(t, progRec.events, 1)
	event := progRec.events[0]
	assert.Equal(t, "youtube", event.Stage)
	assert.Equal(t, progress.StatusDone, event.Status)
	require.NotNil(t, event.Message)
	assert.Equal(t, "https://youtu.be/demo_var-1", *event.Message)

	// Malformed and anonymous messages are dropped without events.
	require.NoError(t, uploader.Handle(context.Background(), []byte("{nope")))
	require.NoError(t, uploader.Handle(context.Background(), []byte("{}")))
	assert.Len(t, progRec.events, 1)
}

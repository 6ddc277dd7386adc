package orchestrator

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glocalhq/glocal/ent"
	"github.com/glocalhq/glocal/ent/localizationjob"
	"github.com/glocalhq/glocal/ent/localizedvariant"
	"github.com/glocalhq/glocal/pkg/messages"
	"github.com/glocalhq/glocal/pkg/pipeline"
	"github.com/glocalhq/glocal/pkg/progress"
	"github.com/glocalhq/glocal/test/util"
)

// recordingBus captures bus publishes. Routing keys registered with failOn
// refuse the publish, standing in for a broken broker connection.
type recordingBus struct {
	mu        sync.Mutex
	published []publishedMessage
	failKeys  map[string]bool
}

type publishedMessage struct {
	RoutingKey string
	Payload    any
}

func (r *recordingBus) Publish(_ context.Context, routingKey string, payload any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failKeys[routingKey] {
		return fmt.Errorf("publish to '%s' refused", routingKey)
	}
	r.published = append(r.published, publishedMessage{RoutingKey: routingKey, Payload: payload})
	return nil
}

// failOn replaces the set of failing routing keys; no arguments heals the bus.
func (r *recordingBus) failOn(keys ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failKeys = make(map[string]bool, len(keys))
	for _, k := range keys {
		r.failKeys[k] = true
	}
}

func (r *recordingBus) take() []publishedMessage {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.published
	r.published = nil
	return out
}

// recordingProgress captures progress events.
type recordingProgress struct {
	mu     sync.Mutex
	events []progress.Event
}

func (r *recordingProgress) Publish(_ context.Context, event progress.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return nil
}

func (r *recordingProgress) byStatus(status string) []progress.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []progress.Event
	for _, e := range r.events {
		if e.Status == status {
			out = append(out, e)
		}
	}
	return out
}

type fixture struct {
	orch     *Orchestrator
	client   *ent.Client
	bus      *recordingBus
	progress *recordingProgress
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	entClient, _ := util.SetupTestDatabase(t)
	b := &recordingBus{}
	p := &recordingProgress{}
	return &fixture{
		orch:     New(entClient, b, p),
		client:   entClient,
		bus:      b,
		progress: p,
	}
}

func (f *fixture) seedJob(t *testing.T, languages []string, opts pipeline.Options) *ent.LocalizationJob {
	t.Helper()
	ctx := context.Background()

	assetID := "asset-" + uuid.New().String()
	_, err := f.client.Asset.Create().
		SetID(assetID).
		SetProjectID("proj-1").
		SetType("video").
		SetS3URL(fmt.Sprintf("s3://glocal/sources/%s/input.mp4", assetID)).
		Save(ctx)
	require.NoError(t, err)

	jobID := uuid.New().String()
	_, err = f.client.LocalizationJob.Create().
		SetID(jobID).
		SetProjectID("proj-1").
		SetSourceAssetID(assetID).
		SetLanguages(languages).
		SetOptions(opts).
		SetCreatedBy("tester").
		Save(ctx)
	require.NoError(t, err)

	for _, lang := range languages {
		_, err := f.client.LocalizedVariant.Create().
			SetID(uuid.New().String()).
			SetJobID(jobID).
			SetLang(lang).
			Save(ctx)
		require.NoError(t, err)
	}

	job, err := f.client.LocalizationJob.Query().
		Where(localizationjob.IDEQ(jobID)).
		WithVariants().
		Only(ctx)
	require.NoError(t, err)
	return job
}

func (f *fixture) admit(t *testing.T, job *ent.LocalizationJob) {
	t.Helper()
	body, err := json.Marshal(messages.JobCreated{JobID: job.ID})
	require.NoError(t, err)
	require.NoError(t, f.orch.HandleJobCreated(context.Background(), body))
}

func (f *fixture) complete(t *testing.T, work messages.StageWork) {
	t.Helper()
	result := messages.StageResult{
		JobID:     work.JobID,
		VariantID: work.VariantID,
		Lang:      work.Lang,
		Stage:     work.Stage,
		Status:    messages.ResultCompleted,
	}
	body, err := json.Marshal(result)
	require.NoError(t, err)
	require.NoError(t, f.orch.HandleStageResult(context.Background(), body))
}

func (f *fixture) fail(t *testing.T, work messages.StageWork, errMsg string) {
	t.Helper()
	result := messages.StageResult{
		JobID:     work.JobID,
		VariantID: work.VariantID,
		Lang:      work.Lang,
		Stage:     work.Stage,
		Status:    messages.ResultError,
		Error:     errMsg,
	}
	body, err := json.Marshal(result)
	require.NoError(t, err)
	require.NoError(t, f.orch.HandleStageResult(context.Background(), body))
}

// stageWork extracts the StageWork envelopes from a batch of publishes.
func stageWork(t *testing.T, msgs []publishedMessage) []messages.StageWork {
	t.Helper()
	var out []messages.StageWork
	for _, m := range msgs {
		if work, ok := m.Payload.(messages.StageWork); ok {
			out = append(out, work)
		}
	}
	return out
}

// drive runs the full pipeline to completion, feeding a successful result for
// every dispatched envelope.
func (f *fixture) drive(t *testing.T) {
	t.Helper()
	for {
		work := stageWork(t, f.bus.take())
		if len(work) == 0 {
			return
		}
		for _, w := range work {
			f.complete(t, w)
		}
	}
}

func TestOrchestrator_HappyPath(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	job := f.seedJob(t, []string{"de", "fr"}, pipeline.DefaultOptions())

	f.admit(t, job)

	// Both variants start with asr.
	work := stageWork(t, f.bus.take())
	require.Len(t, work, 2)
	langs := map[string]bool{}
	for _, w := range work {
		assert.Equal(t, pipeline.StageASR, w.Stage)
		assert.Equal(t, "jobs/"+job.ID+"/"+w.Lang, w.BasePrefix)
		assert.True(t, w.ExpectTTS)
		assert.Contains(t, w.Source.Key, "sources/")
		langs[w.Lang] = true
	}
	assert.Len(t, langs, 2)

	got, err := f.client.LocalizationJob.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, localizationjob.StatusProcessing, got.Status)

	for _, w := range work {
		f.complete(t, w)
	}
	f.drive(t)

	got, err = f.client.LocalizationJob.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, localizationjob.StatusDone, got.Status)

	variants, err := f.client.LocalizedVariant.Query().
		Where(localizedvariant.JobIDEQ(job.ID)).
		All(ctx)
	require.NoError(t, err)
	for _, v := range variants {
		assert.Equal(t, localizedvariant.StatusDone, v.Status)
		require.NotNil(t, v.LastCompletedStage)
		assert.Equal(t, string(pipeline.StageQC), *v.LastCompletedStage)
	}

	// Terminal pseudo-stage and job-level done events were emitted.
	doneEvents := f.progress.byStatus(progress.StatusDone)
	var packCount, jobCount int
	for _, e := range doneEvents {
		switch e.Stage {
		case string(pipeline.StagePack):
			packCount++
		case "job":
			jobCount++
			assert.Nil(t, e.Lang)
		}
	}
	assert.Equal(t, 2, packCount)
	assert.Equal(t, 1, jobCount)
}

func TestOrchestrator_SubsOnly(t *testing.T) {
	f := newFixture(t)
	opts := pipeline.Options{Dub: false, Subs: true}
	job := f.seedJob(t, []string{"es"}, opts)

	f.admit(t, job)

	var visited []pipeline.Stage
	for {
		work := stageWork(t, f.bus.take())
		if len(work) == 0 {
			break
		}
		for _, w := range work {
			assert.False(t, w.ExpectTTS)
			visited = append(visited, w.Stage)
			f.complete(t, w)
		}
	}

	assert.Equal(t, []pipeline.Stage{
		pipeline.StageASR, pipeline.StageTranslate, pipeline.StageMix,
		pipeline.StageSubs, pipeline.StageQC,
	}, visited)

	// tts and textinframe were reported skipped.
	skippedStages := map[string]bool{}
	for _, e := range f.progress.byStatus(progress.StatusSkipped) {
		skippedStages[e.Stage] = true
	}
	assert.True(t, skippedStages[string(pipeline.StageTTS)])
	assert.True(t, skippedStages[string(pipeline.StageTextInFrame)])

	got, err := f.client.LocalizationJob.Get(context.Background(), job.ID)
	require.NoError(t, err)
	assert.Equal(t, localizationjob.StatusDone, got.Status)
}

func TestOrchestrator_PartialFailure(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	job := f.seedJob(t, []string{"de", "fr"}, pipeline.DefaultOptions())

	f.admit(t, job)
	work := stageWork(t, f.bus.take())
	require.Len(t, work, 2)

	var deWork, frWork messages.StageWork
	for _, w := range work {
		if w.Lang == "de" {
			deWork = w
		} else {
			frWork = w
		}
	}

	// de fails at asr; the job row must not be finalized yet.
	f.fail(t, deWork, "synthesis exploded")

	got, err := f.client.LocalizationJob.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, localizationjob.StatusProcessing, got.Status)
	require.NotNil(t, got.ErrorMessage)
	assert.Equal(t, "synthesis exploded", *got.ErrorMessage)

	// The error events went out immediately.
	errEvents := f.progress.byStatus(progress.StatusError)
	require.Len(t, errEvents, 2)

	// fr runs to completion; only then is the job finalized as partial.
	f.complete(t, frWork)
	f.drive(t)

	got, err = f.client.LocalizationJob.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, localizationjob.StatusPartial, got.Status)

	deVariant, err := f.client.LocalizedVariant.Query().
		Where(localizedvariant.JobIDEQ(job.ID), localizedvariant.LangEQ("de")).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, localizedvariant.StatusError, deVariant.Status)
	require.NotNil(t, deVariant.ErrorMessage)
	assert.Equal(t, "synthesis exploded", *deVariant.ErrorMessage)
}

func TestOrchestrator_AllVariantsFail(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	job := f.seedJob(t, []string{"de", "fr"}, pipeline.DefaultOptions())

	f.admit(t, job)
	for _, w := range stageWork(t, f.bus.take()) {
		f.fail(t, w, "boom")
	}

	got, err := f.client.LocalizationJob.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, localizationjob.StatusError, got.Status)

	// Only one job-level error event despite two failing variants.
	var jobErrors int
	for _, e := range f.progress.byStatus(progress.StatusError) {
		if e.Stage == "job" {
			jobErrors++
		}
	}
	assert.Equal(t, 1, jobErrors)
}

func TestOrchestrator_DuplicateCompletionIsNoop(t *testing.T) {
	f := newFixture(t)
	job := f.seedJob(t, []string{"de"}, pipeline.DefaultOptions())

	f.admit(t, job)
	work := stageWork(t, f.bus.take())
	require.Len(t, work, 1)

	f.complete(t, work[0])
	next := stageWork(t, f.bus.take())
	require.Len(t, next, 1)
	assert.Equal(t, pipeline.StageTranslate, next[0].Stage)

	// Redelivered asr completion must not dispatch translate again.
	f.complete(t, work[0])
	assert.Empty(t, stageWork(t, f.bus.take()))
}

func TestOrchestrator_ResultForTerminalVariantIsNoop(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	job := f.seedJob(t, []string{"de"}, pipeline.DefaultOptions())

	f.admit(t, job)
	work := stageWork(t, f.bus.take())
	require.Len(t, work, 1)

	f.fail(t, work[0], "boom")

	// A late completion for the failed variant changes nothing.
	f.complete(t, work[0])
	assert.Empty(t, stageWork(t, f.bus.take()))

	v, err := f.client.LocalizedVariant.Query().
		Where(localizedvariant.JobIDEQ(job.ID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, localizedvariant.StatusError, v.Status)
}

func TestOrchestrator_RedeliveredJobCreatedIsNoop(t *testing.T) {
	f := newFixture(t)
	job := f.seedJob(t, []string{"de"}, pipeline.DefaultOptions())

	f.admit(t, job)
	require.Len(t, stageWork(t, f.bus.take()), 1)

	f.admit(t, job)
	assert.Empty(t, stageWork(t, f.bus.take()))
}

func TestOrchestrator_CompletionRedeliveredAfterPublishFailure(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	job := f.seedJob(t, []string{"de"}, pipeline.DefaultOptions())

	f.admit(t, job)
	work := stageWork(t, f.bus.take())
	require.Len(t, work, 1)

	body, err := json.Marshal(messages.StageResult{
		JobID:     work[0].JobID,
		VariantID: work[0].VariantID,
		Lang:      work[0].Lang,
		Stage:     work[0].Stage,
		Status:    messages.ResultCompleted,
	})
	require.NoError(t, err)

	// translate cannot be enqueued; the completion must come back as an
	// error, so the broker redelivers it.
	f.bus.failOn(messages.StageWorkKey(pipeline.StageTranslate))
	require.Error(t, f.orch.HandleStageResult(ctx, body))

	// Nothing was recorded, so the redelivery is not mistaken for a
	// duplicate.
	v, err := f.client.LocalizedVariant.Get(ctx, work[0].VariantID)
	require.NoError(t, err)
	assert.Nil(t, v.LastCompletedStage)
	assert.Equal(t, localizedvariant.StatusProcessing, v.Status)

	// Redelivery on a healed bus dispatches translate and records asr.
	f.bus.failOn()
	require.NoError(t, f.orch.HandleStageResult(ctx, body))

	next := stageWork(t, f.bus.take())
	require.Len(t, next, 1)
	assert.Equal(t, pipeline.StageTranslate, next[0].Stage)

	v, err = f.client.LocalizedVariant.Get(ctx, work[0].VariantID)
	require.NoError(t, err)
	require.NotNil(t, v.LastCompletedStage)
	assert.Equal(t, string(pipeline.StageASR), *v.LastCompletedStage)
}

func TestOrchestrator_AdmissionRedeliveredAfterPublishFailure(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	job := f.seedJob(t, []string{"de"}, pipeline.DefaultOptions())

	body, err := json.Marshal(messages.JobCreated{JobID: job.ID})
	require.NoError(t, err)

	f.bus.failOn(messages.StageWorkKey(pipeline.StageASR))
	require.Error(t, f.orch.HandleJobCreated(ctx, body))

	// The variant was not claimed, so the redelivery can repeat the
	// dispatch.
	v, err := f.client.LocalizedVariant.Query().
		Where(localizedvariant.JobIDEQ(job.ID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, localizedvariant.StatusQueued, v.Status)

	f.bus.failOn()
	require.NoError(t, f.orch.HandleJobCreated(ctx, body))

	work := stageWork(t, f.bus.take())
	require.Len(t, work, 1)
	assert.Equal(t, pipeline.StageASR, work[0].Stage)

	v, err = f.client.LocalizedVariant.Get(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, localizedvariant.StatusProcessing, v.Status)
}

func TestOrchestrator_YoutubePublishFailureDoesNotStallJob(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	opts := pipeline.DefaultOptions()
	opts.UploadToYoutube = true
	job := f.seedJob(t, []string{"de"}, opts)

	f.admit(t, job)
	f.bus.failOn(messages.KeyYoutubeUpload)
	f.drive(t)

	// The hook failure is logged only; the job still finalizes.
	got, err := f.client.LocalizationJob.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, localizationjob.StatusDone, got.Status)
}

func TestOrchestrator_MissingAsset(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	jobID := uuid.New().String()
	_, err := f.client.LocalizationJob.Create().
		SetID(jobID).
		SetProjectID("proj-1").
		SetSourceAssetID("ghost").
		SetLanguages([]string{"de"}).
		SetOptions(pipeline.DefaultOptions()).
		SetCreatedBy("tester").
		Save(ctx)
	require.NoError(t, err)

	body, err := json.Marshal(messages.JobCreated{JobID: jobID})
	require.NoError(t, err)
	require.NoError(t, f.orch.HandleJobCreated(ctx, body))

	got, err := f.client.LocalizationJob.Get(ctx, jobID)
	require.NoError(t, err)
	assert.Equal(t, localizationjob.StatusError, got.Status)
	require.NotNil(t, got.ErrorMessage)
	assert.Equal(t, "Source asset missing", *got.ErrorMessage)
	assert.Empty(t, f.bus.take())
}

func TestOrchestrator_YoutubeHook(t *testing.T) {
	f := newFixture(t)
	opts := pipeline.DefaultOptions()
	opts.UploadToYoutube = true
	job := f.seedJob(t, []string{"de"}, opts)

	f.admit(t, job)

	var uploads []messages.YoutubeUpload
	for {
		msgs := f.bus.take()
		if len(msgs) == 0 {
			break
		}
		for _, m := range msgs {
			switch payload := m.Payload.(type) {
			case messages.StageWork:
				f.complete(t, payload)
			case messages.YoutubeUpload:
				assert.Equal(t, messages.KeyYoutubeUpload, m.RoutingKey)
				uploads = append(uploads, payload)
			}
		}
	}

	require.Len(t, uploads, 1)
	assert.Equal(t, job.ID, uploads[0].JobID)
	assert.Equal(t, "de", uploads[0].Lang)
}

func TestOrchestrator_MalformedMessagesDropped(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.orch.HandleJobCreated(ctx, []byte("{not json")))
	require.NoError(t, f.orch.HandleStageResult(ctx, []byte("{not json")))

	// Incomplete result (missing variant_id) is dropped silently.
	body, err := json.Marshal(messages.StageResult{
		JobID: "j", Lang: "de", Stage: pipeline.StageASR, Status: messages.ResultCompleted,
	})
	require.NoError(t, err)
	require.NoError(t, f.orch.HandleStageResult(ctx, body))

	assert.Empty(t, f.bus.take())
}

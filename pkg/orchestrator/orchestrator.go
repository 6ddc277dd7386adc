// Package orchestrator drives localization jobs through the stage pipeline.
//
// It consumes job.created and stage result events, persists state transitions
// in the database, and dispatches stage work envelopes. All envelope content
// is rebuilt from persisted rows on every dispatch, so redelivered or replayed
// messages converge instead of drifting.
package orchestrator

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/glocalhq/glocal/ent"
	"github.com/glocalhq/glocal/ent/localizationjob"
	"github.com/glocalhq/glocal/ent/localizedvariant"
	"github.com/glocalhq/glocal/pkg/bus"
	"github.com/glocalhq/glocal/pkg/messages"
	"github.com/glocalhq/glocal/pkg/pipeline"
	"github.com/glocalhq/glocal/pkg/progress"
	"github.com/glocalhq/glocal/pkg/storage"
)

const missingAssetMessage = "Source asset missing"

// BusPublisher publishes messages to the job exchange.
// Satisfied by *bus.Bus; narrowed so tests can substitute a recorder.
type BusPublisher interface {
	Publish(ctx context.Context, routingKey string, payload any) error
}

// Orchestrator owns the job state machine. It is safe for concurrent use;
// messages sharing a job_id are serialized through a sharded lock map.
type Orchestrator struct {
	client   *ent.Client
	bus      BusPublisher
	progress progress.Publisher
	locks    jobLocks
	logger   *slog.Logger
}

// New creates an Orchestrator. progressBus may be nil, in which case progress
// events are dropped.
func New(client *ent.Client, busPublisher BusPublisher, progressBus progress.Publisher) *Orchestrator {
	if client == nil {
		panic("orchestrator.New: client must not be nil")
	}
	if busPublisher == nil {
		panic("orchestrator.New: busPublisher must not be nil")
	}
	return &Orchestrator{
		client:   client,
		bus:      busPublisher,
		progress: progressBus,
		logger:   slog.With("component", "orchestrator"),
	}
}

// Run declares the orchestrator queues and consumes them until ctx is
// cancelled. Blocks.
func (o *Orchestrator) Run(ctx context.Context, b *bus.Bus) error {
	err := b.DeclareQueue(
		bus.Binding{Queue: messages.QueueOrchestratorJobs, RoutingKey: messages.KeyJobCreated},
		bus.Binding{Queue: messages.QueueOrchestratorEvents, RoutingKey: messages.KeyAnyStageCompleted},
		bus.Binding{Queue: messages.QueueOrchestratorEvents, RoutingKey: messages.KeyAnyStageFailed},
	)
	if err != nil {
		return fmt.Errorf("failed to declare orchestrator queues: %w", err)
	}

	errCh := make(chan error, 2)
	go func() {
		errCh <- b.Consume(ctx, messages.QueueOrchestratorJobs, o.HandleJobCreated)
	}()
	go func() {
		errCh <- b.Consume(ctx, messages.QueueOrchestratorEvents, o.HandleStageResult)
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-errCh:
		return err
	}
}

// HandleJobCreated admits a job into the pipeline: the job moves to
// processing and every still-queued variant is dispatched to its first
// runnable stage and then claimed. Redelivery is safe because a variant is
// claimed only after its work envelope is on the bus.
func (o *Orchestrator) HandleJobCreated(ctx context.Context, body []byte) error {
	var event messages.JobCreated
	if err := json.Unmarshal(body, &event); err != nil || event.JobID == "" {
		o.logger.Warn("dropping malformed job.created message", "error", err)
		return nil
	}

	mu := o.locks.lock(event.JobID)
	defer mu.Unlock()

	job, err := o.client.LocalizationJob.Query().
		Where(localizationjob.IDEQ(event.JobID)).
		WithVariants().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			o.logger.Warn("job.created for unknown job", "job_id", event.JobID)
			return nil
		}
		return fmt.Errorf("failed to load job '%s': %w", event.JobID, err)
	}
	if isTerminalJobStatus(job.Status) {
		return nil
	}

	asset, err := o.client.Asset.Get(ctx, job.SourceAssetID)
	if err != nil {
		if ent.IsNotFound(err) {
			return o.failJobEarly(ctx, job.ID, missingAssetMessage)
		}
		return fmt.Errorf("failed to load asset '%s': %w", job.SourceAssetID, err)
	}

	var profile *ent.VoiceProfile
	if job.VoiceProfileID != nil {
		profile, err = o.client.VoiceProfile.Get(ctx, *job.VoiceProfileID)
		if err != nil && !ent.IsNotFound(err) {
			return fmt.Errorf("failed to load voice profile: %w", err)
		}
	}

	_, err = o.client.LocalizationJob.Update().
		Where(localizationjob.IDEQ(job.ID), localizationjob.StatusEQ(localizationjob.StatusQueued)).
		SetStatus(localizationjob.StatusProcessing).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark job processing: %w", err)
	}

	first, skipped, ok := pipeline.First(job.Options)

	for _, variant := range job.Edges.Variants {
		// Only still-queued variants are dispatched, so a redelivered
		// admission repeats exactly the dispatches that never reached the
		// claim below.
		if variant.Status != localizedvariant.StatusQueued {
			continue
		}

		if !ok {
			// Every stage skipped. Cannot happen with the current mandatory
			// stages, but the pipeline stays option-driven.
			if err := o.finishVariant(ctx, job.ID, variant.ID, variant.Lang, ""); err != nil {
				return err
			}
			continue
		}

		for _, s := range skipped {
			progress.Notify(ctx, o.progress, progress.StageEvent(job.ID, string(s), variant.Lang, progress.StatusSkipped, 1.0, ""))
		}
		progress.Notify(ctx, o.progress, progress.StageEvent(job.ID, string(first), variant.Lang, progress.StatusQueued, 0, ""))

		// Publish before claiming. A crash between the two redelivers the
		// admission with the variant still queued, so the dispatch is
		// repeated; the reverse order would leave a claimed variant nothing
		// ever works on.
		envelope := buildEnvelope(job, asset, profile, variant, first)
		if err := o.bus.Publish(ctx, messages.StageWorkKey(first), envelope); err != nil {
			return fmt.Errorf("failed to enqueue stage '%s' for variant '%s': %w", first, variant.ID, err)
		}

		n, err := o.client.LocalizedVariant.Update().
			Where(
				localizedvariant.IDEQ(variant.ID),
				localizedvariant.StatusEQ(localizedvariant.StatusQueued),
			).
			SetStatus(localizedvariant.StatusProcessing).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to claim variant '%s': %w", variant.ID, err)
		}
		if n == 0 {
			// Another consumer claimed it between load and update; its own
			// dispatch stands and the duplicate is absorbed downstream.
			continue
		}

		o.logger.Info("variant dispatched",
			"job_id", job.ID, "variant_id", variant.ID, "lang", variant.Lang, "stage", first)
	}

	return o.checkJobCompletion(ctx, job.ID)
}

// HandleStageResult advances a variant after a stage reports completion or
// failure. Completions at or before the variant's last recorded stage are
// duplicates and ignored; results for terminal variants only re-run the job
// completion check.
func (o *Orchestrator) HandleStageResult(ctx context.Context, body []byte) error {
	var result messages.StageResult
	if err := json.Unmarshal(body, &result); err != nil {
		o.logger.Warn("dropping malformed stage result", "error", err)
		return nil
	}
	if err := result.Validate(); err != nil {
		o.logger.Warn("dropping incomplete stage result", "error", err)
		return nil
	}

	mu := o.locks.lock(result.JobID)
	defer mu.Unlock()

	variant, err := o.client.LocalizedVariant.Get(ctx, result.VariantID)
	if err != nil {
		if ent.IsNotFound(err) {
			o.logger.Warn("stage result for unknown variant",
				"job_id", result.JobID, "variant_id", result.VariantID)
			return nil
		}
		return fmt.Errorf("failed to load variant '%s': %w", result.VariantID, err)
	}
	if isTerminalVariantStatus(variant.Status) {
		// The result itself is spent, but the job-level completion check may
		// not have run if the process died right after the variant went
		// terminal. Re-running it makes the redelivery converge.
		return o.checkJobCompletion(ctx, result.JobID)
	}

	if result.Status == messages.ResultError {
		return o.handleStageError(ctx, result)
	}

	// Duplicate or out-of-order completion: the variant already recorded this
	// stage (or a later one). The record is written only after the follow-up
	// dispatch, so a recorded stage implies its successor is on the bus.
	if variant.LastCompletedStage != nil &&
		!pipeline.Before(pipeline.Stage(*variant.LastCompletedStage), result.Stage) {
		o.logger.Info("ignoring duplicate stage completion",
			"job_id", result.JobID, "variant_id", result.VariantID, "stage", result.Stage)
		return nil
	}

	progress.Notify(ctx, o.progress, progress.StageEvent(result.JobID, string(result.Stage), result.Lang, progress.StatusDone, 1.0, ""))

	job, err := o.client.LocalizationJob.Get(ctx, result.JobID)
	if err != nil {
		return fmt.Errorf("failed to load job '%s': %w", result.JobID, err)
	}

	next, skipped, ok := pipeline.Next(result.Stage, job.Options)
	for _, s := range skipped {
		progress.Notify(ctx, o.progress, progress.StageEvent(result.JobID, string(s), result.Lang, progress.StatusSkipped, 1.0, ""))
	}

	if !ok {
		// Terminal status and the high-water mark land in one update, so a
		// crash before the completion check leaves a terminal variant the
		// redelivery path above finishes the job from.
		if err := o.finishVariant(ctx, result.JobID, result.VariantID, result.Lang, result.Stage); err != nil {
			return err
		}
		return o.checkJobCompletion(ctx, result.JobID)
	}

	progress.Notify(ctx, o.progress, progress.StageEvent(result.JobID, string(next), result.Lang, progress.StatusQueued, 0, ""))

	envelope, err := o.buildEnvelopeFromState(ctx, result.JobID, result.VariantID, next)
	if err != nil {
		return err
	}
	if err := o.bus.Publish(ctx, messages.StageWorkKey(next), envelope); err != nil {
		return fmt.Errorf("failed to enqueue stage '%s': %w", next, err)
	}

	// Record the high-water mark only after the next stage is enqueued. If
	// the publish (or this update) fails, the redelivered completion repeats
	// the dispatch; a duplicate dispatch is absorbed by the agents' guarded
	// writes and the duplicate-completion guard above.
	_, err = o.client.LocalizedVariant.Update().
		Where(
			localizedvariant.IDEQ(result.VariantID),
			localizedvariant.StatusEQ(localizedvariant.StatusProcessing),
		).
		SetLastCompletedStage(string(result.Stage)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to record completed stage: %w", err)
	}

	o.logger.Info("stage advanced",
		"job_id", result.JobID, "variant_id", result.VariantID,
		"completed", result.Stage, "next", next)

	return nil
}

// handleStageError marks the variant failed and emits the error progress
// events. The job row itself is only finalized by the completion check, once
// every sibling variant has reached a terminal state.
func (o *Orchestrator) handleStageError(ctx context.Context, result messages.StageResult) error {
	errMessage := result.Error
	if errMessage == "" {
		errMessage = "Stage failed"
	}

	n, err := o.client.LocalizedVariant.Update().
		Where(
			localizedvariant.IDEQ(result.VariantID),
			localizedvariant.StatusIn(localizedvariant.StatusQueued, localizedvariant.StatusProcessing),
		).
		SetStatus(localizedvariant.StatusError).
		SetErrorMessage(errMessage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark variant '%s' failed: %w", result.VariantID, err)
	}
	if n == 0 {
		return nil
	}

	progress.Notify(ctx, o.progress, progress.StageEvent(result.JobID, string(result.Stage), result.Lang, progress.StatusError, 0, errMessage))

	// First observed error for the job emits a single job-level error event.
	// The guarded update makes "first" well defined under redelivery.
	n, err = o.client.LocalizationJob.Update().
		Where(localizationjob.IDEQ(result.JobID), localizationjob.ErrorMessageIsNil()).
		SetErrorMessage(errMessage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to record job error: %w", err)
	}
	if n > 0 {
		progress.Notify(ctx, o.progress, progress.JobEvent(result.JobID, progress.StatusError, 0, errMessage))
	}

	o.logger.Warn("stage failed",
		"job_id", result.JobID, "variant_id", result.VariantID,
		"stage", result.Stage, "error", errMessage)

	return o.checkJobCompletion(ctx, result.JobID)
}

// finishVariant marks a variant done and emits the terminal pseudo-stage
// event. lastStage, when non-empty, is recorded in the same update as the
// status flip.
func (o *Orchestrator) finishVariant(ctx context.Context, jobID, variantID, lang string, lastStage pipeline.Stage) error {
	update := o.client.LocalizedVariant.Update().
		Where(
			localizedvariant.IDEQ(variantID),
			localizedvariant.StatusIn(localizedvariant.StatusQueued, localizedvariant.StatusProcessing),
		).
		SetStatus(localizedvariant.StatusDone)
	if lastStage != "" {
		update.SetLastCompletedStage(string(lastStage))
	}
	if _, err := update.Save(ctx); err != nil {
		return fmt.Errorf("failed to mark variant '%s' done: %w", variantID, err)
	}
	progress.Notify(ctx, o.progress, progress.StageEvent(jobID, string(pipeline.StagePack), lang, progress.StatusDone, 1.0, ""))
	o.logger.Info("variant finished", "job_id", jobID, "variant_id", variantID, "lang", lang)
	return nil
}

// checkJobCompletion finalizes the job row once all variants are terminal:
// done when every variant succeeded, partial when some did, error when none
// did. No-op while any variant is still active.
func (o *Orchestrator) checkJobCompletion(ctx context.Context, jobID string) error {
	job, err := o.client.LocalizationJob.Query().
		Where(localizationjob.IDEQ(jobID)).
		WithVariants().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil
		}
		return fmt.Errorf("failed to load job '%s': %w", jobID, err)
	}
	if isTerminalJobStatus(job.Status) {
		return nil
	}

	var done, failed int
	for _, v := range job.Edges.Variants {
		switch v.Status {
		case localizedvariant.StatusDone:
			done++
		case localizedvariant.StatusError:
			failed++
		default:
			// Still active; completion is re-evaluated on the next result.
			return nil
		}
	}

	var final localizationjob.Status
	switch {
	case failed == 0:
		final = localizationjob.StatusDone
	case done > 0:
		final = localizationjob.StatusPartial
	default:
		final = localizationjob.StatusError
	}

	n, err := o.client.LocalizationJob.Update().
		Where(
			localizationjob.IDEQ(jobID),
			localizationjob.StatusIn(localizationjob.StatusQueued, localizationjob.StatusProcessing),
		).
		SetStatus(final).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to finalize job '%s': %w", jobID, err)
	}
	if n == 0 {
		return nil
	}

	o.logger.Info("job finalized", "job_id", jobID, "status", final, "done", done, "failed", failed)

	if final == localizationjob.StatusDone {
		progress.Notify(ctx, o.progress, progress.JobEvent(jobID, progress.StatusDone, 1.0, ""))
		if job.Options.UploadToYoutube {
			o.dispatchYoutubeUploads(ctx, job)
		}
	}

	return nil
}

// dispatchYoutubeUploads enqueues one upload per variant of a finished job.
// The hook is best-effort: a publish failure is logged and the remaining
// variants still get their requests. It must never fail the triggering
// completion, since the finalized job row makes the redelivery a no-op.
func (o *Orchestrator) dispatchYoutubeUploads(ctx context.Context, job *ent.LocalizationJob) {
	for _, v := range job.Edges.Variants {
		upload := messages.YoutubeUpload{
			JobID:     job.ID,
			VariantID: v.ID,
			Lang:      v.Lang,
		}
		if v.VideoURL != nil {
			upload.VideoURL = *v.VideoURL
		}
		if v.SubsURL != nil {
			upload.SubsURL = *v.SubsURL
		}
		if err := o.bus.Publish(ctx, messages.KeyYoutubeUpload, upload); err != nil {
			o.logger.Error("failed to enqueue youtube upload",
				"job_id", job.ID, "variant_id", v.ID, "error", err)
		}
	}
}

// failJobEarly terminates a job before any stage was dispatched.
func (o *Orchestrator) failJobEarly(ctx context.Context, jobID, message string) error {
	_, err := o.client.LocalizationJob.Update().
		Where(
			localizationjob.IDEQ(jobID),
			localizationjob.StatusIn(localizationjob.StatusQueued, localizationjob.StatusProcessing),
		).
		SetStatus(localizationjob.StatusError).
		SetErrorMessage(message).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to fail job '%s': %w", jobID, err)
	}
	progress.Notify(ctx, o.progress, progress.JobEvent(jobID, progress.StatusError, 0, message))
	o.logger.Warn("job failed before dispatch", "job_id", jobID, "error", message)
	return nil
}

// buildEnvelopeFromState reloads job, asset, voice profile, and variant rows
// and assembles the work envelope for a stage. Dispatch never forwards state
// carried by the inbound message.
func (o *Orchestrator) buildEnvelopeFromState(ctx context.Context, jobID, variantID string, stage pipeline.Stage) (messages.StageWork, error) {
	job, err := o.client.LocalizationJob.Get(ctx, jobID)
	if err != nil {
		return messages.StageWork{}, fmt.Errorf("failed to load job '%s': %w", jobID, err)
	}
	asset, err := o.client.Asset.Get(ctx, job.SourceAssetID)
	if err != nil {
		return messages.StageWork{}, fmt.Errorf("failed to load asset '%s': %w", job.SourceAssetID, err)
	}
	variant, err := o.client.LocalizedVariant.Get(ctx, variantID)
	if err != nil {
		return messages.StageWork{}, fmt.Errorf("failed to load variant '%s': %w", variantID, err)
	}
	var profile *ent.VoiceProfile
	if job.VoiceProfileID != nil {
		profile, err = o.client.VoiceProfile.Get(ctx, *job.VoiceProfileID)
		if err != nil && !ent.IsNotFound(err) {
			return messages.StageWork{}, fmt.Errorf("failed to load voice profile: %w", err)
		}
	}
	return buildEnvelope(job, asset, profile, variant, stage), nil
}

func buildEnvelope(job *ent.LocalizationJob, asset *ent.Asset, profile *ent.VoiceProfile, variant *ent.LocalizedVariant, stage pipeline.Stage) messages.StageWork {
	_, key, err := storage.ParseURL(asset.S3URL)
	if err != nil {
		// Asset URLs are validated at job creation; a bad one here still
		// reaches the worker, which will fail the stage with a clear error.
		key = asset.S3URL
	}
	work := messages.StageWork{
		JobID:      job.ID,
		ProjectID:  job.ProjectID,
		VariantID:  variant.ID,
		Lang:       variant.Lang,
		Stage:      stage,
		Source:     messages.SourceAsset{Key: key, Type: asset.Type.String()},
		Options:    job.Options,
		BasePrefix: storage.BasePrefix(job.ID, variant.Lang),
		ExpectTTS:  job.Options.Dub,
	}
	if profile != nil {
		work.VoiceProfile = &messages.VoiceProfile{
			ID:             profile.ID,
			Name:           profile.Name,
			Provider:       profile.Provider,
			ProviderParams: profile.ProviderParams,
		}
	}
	return work
}

func isTerminalJobStatus(s localizationjob.Status) bool {
	switch s {
	case localizationjob.StatusDone, localizationjob.StatusPartial, localizationjob.StatusError:
		return true
	}
	return false
}

func isTerminalVariantStatus(s localizedvariant.Status) bool {
	switch s {
	case localizedvariant.StatusDone, localizedvariant.StatusError:
		return true
	}
	return false
}

// Package agent hosts the stage workers. Each worker consumes its stage
// queue, performs the stage's media work in a scoped temp directory, uploads
// artifacts under the variant's base prefix, and reports a terminal result
// event back to the orchestrator.
package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/glocalhq/glocal/ent"
	"github.com/glocalhq/glocal/ent/localizedvariant"
	"github.com/glocalhq/glocal/pkg/bus"
	"github.com/glocalhq/glocal/pkg/media"
	"github.com/glocalhq/glocal/pkg/messages"
	"github.com/glocalhq/glocal/pkg/pipeline"
	"github.com/glocalhq/glocal/pkg/progress"
	"github.com/glocalhq/glocal/pkg/storage"
)

// ObjectStore is the slice of the storage API the stage handlers use.
type ObjectStore interface {
	Bucket() string
	URL(key string) string
	UploadFile(ctx context.Context, localPath, key, contentType string) error
	UploadBytes(ctx context.Context, data []byte, key, contentType string) error
	DownloadFile(ctx context.Context, key, localPath string) error
	DownloadBytes(ctx context.Context, key string) ([]byte, error)
	ObjectExists(ctx context.Context, key string) (bool, error)
}

// BusPublisher publishes result events.
type BusPublisher interface {
	Publish(ctx context.Context, routingKey string, payload any) error
}

// Env is handed to a handler for one message: a scoped working directory plus
// the shared service clients. Report emits a fractional processing progress
// event.
type Env struct {
	WorkDir string
	Store   ObjectStore
	Media   *media.Toolchain
	Client  *ent.Client
	Report  func(fraction float64)
}

// Outputs describes the artifacts a stage produced. Non-empty keys are
// persisted onto the variant row as object URLs and mirrored into the
// completion event.
type Outputs struct {
	AudioKey   string
	VideoKey   string
	PreviewKey string
	SubsKey    string
	ReportKey  string
	Report     map[string]any
}

// Handler implements one pipeline stage.
type Handler interface {
	Stage() pipeline.Stage
	Run(ctx context.Context, work messages.StageWork, env *Env) (Outputs, error)
}

// Runner wires a Handler to its queue and owns the per-message lifecycle.
type Runner struct {
	handler  Handler
	client   *ent.Client
	bus      BusPublisher
	progress progress.Publisher
	store    ObjectStore
	media    *media.Toolchain
	logger   *slog.Logger
}

// NewRunner creates a stage worker runner.
func NewRunner(handler Handler, client *ent.Client, busPublisher BusPublisher, progressBus progress.Publisher, store ObjectStore) *Runner {
	if handler == nil {
		panic("agent.NewRunner: handler must not be nil")
	}
	if client == nil {
		panic("agent.NewRunner: client must not be nil")
	}
	if busPublisher == nil {
		panic("agent.NewRunner: busPublisher must not be nil")
	}
	if store == nil {
		panic("agent.NewRunner: store must not be nil")
	}
	return &Runner{
		handler:  handler,
		client:   client,
		bus:      busPublisher,
		progress: progressBus,
		store:    store,
		media:    media.NewToolchain(),
		logger:   slog.With("component", "agent", "stage", string(handler.Stage())),
	}
}

// Run declares the stage queue and consumes it until ctx is cancelled.
// Blocks.
func (r *Runner) Run(ctx context.Context, b *bus.Bus) error {
	stage := r.handler.Stage()
	err := b.DeclareQueue(bus.Binding{
		Queue:      messages.StageQueue(stage),
		RoutingKey: messages.StageWorkKey(stage),
	})
	if err != nil {
		return fmt.Errorf("failed to declare stage queue: %w", err)
	}
	return b.Consume(ctx, messages.StageQueue(stage), r.Handle)
}

// Handle processes one stage work message. The result event (completed or
// failed) is always published before the message is acked; handler errors are
// converted into failure events rather than redeliveries, since retrying a
// deterministic failure changes nothing.
func (r *Runner) Handle(ctx context.Context, body []byte) error {
	var work messages.StageWork
	if err := json.Unmarshal(body, &work); err != nil {
		r.logger.Warn("dropping malformed work message", "error", err)
		return nil
	}
	if work.JobID == "" || work.VariantID == "" || work.Lang == "" {
		r.logger.Warn("dropping incomplete work message", "job_id", work.JobID)
		return nil
	}

	stage := r.handler.Stage()
	logger := r.logger.With("job_id", work.JobID, "variant_id", work.VariantID, "lang", work.Lang)

	workDir, err := os.MkdirTemp("", string(stage)+"-")
	if err != nil {
		return fmt.Errorf("failed to create work dir: %w", err)
	}
	defer os.RemoveAll(workDir)

	env := &Env{
		WorkDir: workDir,
		Store:   r.store,
		Media:   r.media,
		Client:  r.client,
		Report: func(fraction float64) {
			progress.Notify(ctx, r.progress,
				progress.StageEvent(work.JobID, string(stage), work.Lang, progress.StatusProcessing, fraction, ""))
		},
	}

	outputs, err := r.handler.Run(ctx, work, env)
	if err != nil {
		logger.Error("stage failed", "error", err)
		progress.Notify(ctx, r.progress,
			progress.StageEvent(work.JobID, string(stage), work.Lang, progress.StatusError, 0, err.Error()))
		return r.bus.Publish(ctx, messages.StageFailedKey(stage), messages.StageResult{
			JobID:     work.JobID,
			VariantID: work.VariantID,
			Lang:      work.Lang,
			Stage:     stage,
			Status:    messages.ResultError,
			Error:     err.Error(),
		})
	}

	if err := r.persistOutputs(ctx, work.VariantID, outputs); err != nil {
		return err
	}

	result := messages.StageResult{
		JobID:      work.JobID,
		VariantID:  work.VariantID,
		Lang:       work.Lang,
		Stage:      stage,
		Status:     messages.ResultCompleted,
		BasePrefix: work.BasePrefix,
		AudioKey:   outputs.AudioKey,
		VideoKey:   outputs.VideoKey,
		PreviewKey: outputs.PreviewKey,
		SubsKey:    outputs.SubsKey,
		ReportKey:  outputs.ReportKey,
	}
	if err := r.bus.Publish(ctx, messages.StageCompletedKey(stage), result); err != nil {
		return fmt.Errorf("failed to publish completion: %w", err)
	}

	logger.Info("stage completed")
	return nil
}

// persistOutputs writes produced artifact URLs to the variant row. Only the
// columns a stage produced are touched and terminal rows are left alone, so
// redelivered work cannot clobber a finished or failed variant.
func (r *Runner) persistOutputs(ctx context.Context, variantID string, outputs Outputs) error {
	update := r.client.LocalizedVariant.Update().
		Where(
			localizedvariant.IDEQ(variantID),
			localizedvariant.StatusIn(localizedvariant.StatusQueued, localizedvariant.StatusProcessing),
		)

	touched := false
	if outputs.AudioKey != "" {
		update.SetAudioURL(storage.ObjectURL(r.store.Bucket(), outputs.AudioKey))
		touched = true
	}
	if outputs.VideoKey != "" {
		update.SetVideoURL(storage.ObjectURL(r.store.Bucket(), outputs.VideoKey))
		touched = true
	}
	if outputs.PreviewKey != "" {
		update.SetPreviewURL(storage.ObjectURL(r.store.Bucket(), outputs.PreviewKey))
		touched = true
	}
	if outputs.SubsKey != "" {
		update.SetSubsURL(storage.ObjectURL(r.store.Bucket(), outputs.SubsKey))
		touched = true
	}
	if outputs.Report != nil {
		update.SetReport(outputs.Report)
		touched = true
	}
	if !touched {
		return nil
	}
	if _, err := update.Save(ctx); err != nil {
		return fmt.Errorf("failed to persist stage outputs: %w", err)
	}
	return nil
}

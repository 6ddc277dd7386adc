package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/glocalhq/glocal/pkg/bus"
	"github.com/glocalhq/glocal/pkg/messages"
	"github.com/glocalhq/glocal/pkg/progress"
)

// Uploader consumes youtube.upload requests. The upload itself is simulated;
// the interesting part is the progress event carrying the resulting URL,
// which front ends surface as the share link.
type Uploader struct {
	progress progress.Publisher
	logger   *slog.Logger
}

// NewUploader creates an Uploader.
func NewUploader(progressBus progress.Publisher) *Uploader {
	return &Uploader{
		progress: progressBus,
		logger:   slog.With("component", "yt-uploader"),
	}
}

// Run declares the uploader queue and consumes it until ctx is cancelled.
// Blocks.
func (u *Uploader) Run(ctx context.Context, b *bus.Bus) error {
	err := b.DeclareQueue(bus.Binding{
		Queue:      messages.QueueYoutubeUploader,
		RoutingKey: messages.KeyYoutubeUpload,
	})
	if err != nil {
		return fmt.Errorf("failed to declare uploader queue: %w", err)
	}
	return b.Consume(ctx, messages.QueueYoutubeUploader, u.Handle)
}

// Handle processes one upload request. Failures are logged and the message is
// acked; uploads are best-effort and never fail the job.
func (u *Uploader) Handle(ctx context.Context, body []byte) error {
	var upload messages.YoutubeUpload
	if err := json.Unmarshal(body, &upload); err != nil {
		u.logger.Warn("dropping malformed upload request", "error", err)
		return nil
	}

	url := "https://youtu.be/demo"
	if upload.VariantID != "" {
		url = fmt.Sprintf("https://youtu.be/demo_%s", upload.VariantID)
	}

	u.logger.Info("simulated upload",
		"job_id", upload.JobID, "variant_id", upload.VariantID, "url", url)

	if upload.JobID != "" && upload.Lang != "" {
		progress.Notify(ctx, u.progress,
			progress.StageEvent(upload.JobID, "youtube", upload.Lang, progress.StatusDone, 1.0, url))
	}
	return nil
}

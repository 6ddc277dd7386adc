package agent

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/glocalhq/glocal/pkg/messages"
	"github.com/glocalhq/glocal/pkg/pipeline"
	"github.com/glocalhq/glocal/pkg/storage"
	"github.com/glocalhq/glocal/pkg/subtitle"
)

// SubsHandler renders the translated segments as SRT and VTT subtitle files.
// The SRT is what lands on the variant row; the VTT exists for web players.
type SubsHandler struct{}

func (SubsHandler) Stage() pipeline.Stage { return pipeline.StageSubs }

func (SubsHandler) Run(ctx context.Context, work messages.StageWork, env *Env) (Outputs, error) {
	env.Report(0.2)

	raw, err := env.Store.DownloadBytes(ctx, storage.StageKey(work.JobID, work.Lang, "translate", "segments.json"))
	if err != nil {
		return Outputs{}, fmt.Errorf("failed to download translated segments: %w", err)
	}

	var segments []subtitle.Segment
	if err := json.Unmarshal(raw, &segments); err != nil {
		return Outputs{}, fmt.Errorf("failed to parse translated segments: %w", err)
	}

	srtKey := storage.StageKey(work.JobID, work.Lang, "subs", "subtitles.srt")
	if err := env.Store.UploadBytes(ctx, []byte(subtitle.ToSRT(segments)), srtKey, "application/x-subrip"); err != nil {
		return Outputs{}, fmt.Errorf("failed to upload srt: %w", err)
	}

	vttKey := storage.StageKey(work.JobID, work.Lang, "subs", "subtitles.vtt")
	if err := env.Store.UploadBytes(ctx, []byte(subtitle.ToVTT(segments)), vttKey, "text/vtt"); err != nil {
		return Outputs{}, fmt.Errorf("failed to upload vtt: %w", err)
	}

	env.Report(0.9)
	return Outputs{SubsKey: srtKey}, nil
}

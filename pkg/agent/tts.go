package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/glocalhq/glocal/pkg/media"
	"github.com/glocalhq/glocal/pkg/messages"
	"github.com/glocalhq/glocal/pkg/pipeline"
	"github.com/glocalhq/glocal/pkg/storage"
	"github.com/glocalhq/glocal/pkg/subtitle"
)

// TTSHandler synthesizes the localized voice track from the translated
// segments. The envelope's voice profile is accepted but the demo provider
// ignores its parameters.
type TTSHandler struct{}

func (TTSHandler) Stage() pipeline.Stage { return pipeline.StageTTS }

func (TTSHandler) Run(ctx context.Context, work messages.StageWork, env *Env) (Outputs, error) {
	env.Report(0.25)

	raw, err := env.Store.DownloadBytes(ctx, storage.StageKey(work.JobID, work.Lang, "translate", "segments.json"))
	if err != nil {
		return Outputs{}, fmt.Errorf("failed to download translated segments: %w", err)
	}

	var segments []subtitle.Segment
	if err := json.Unmarshal(raw, &segments); err != nil {
		return Outputs{}, fmt.Errorf("failed to parse translated segments: %w", err)
	}

	durations := make([]float64, len(segments))
	for idx, segment := range segments {
		durations[idx] = segment.End - segment.Start
	}

	trackPath := filepath.Join(env.WorkDir, "track.wav")
	if err := media.SynthesizeTrack(trackPath, durations); err != nil {
		return Outputs{}, err
	}

	key := storage.StageKey(work.JobID, work.Lang, "tts", "track.wav")
	if err := env.Store.UploadFile(ctx, trackPath, key, "audio/wav"); err != nil {
		return Outputs{}, fmt.Errorf("failed to upload voice track: %w", err)
	}

	env.Report(0.9)
	return Outputs{AudioKey: key}, nil
}

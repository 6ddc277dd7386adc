package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/glocalhq/glocal/pkg/messages"
	"github.com/glocalhq/glocal/pkg/pipeline"
	"github.com/glocalhq/glocal/pkg/storage"
	"github.com/glocalhq/glocal/pkg/subtitle"
)

// demoTranscript stands in for a real speech recognizer; segments are laid
// out evenly across the probed asset duration.
var demoTranscript = []string{
	"Welcome to Glocal Ads AI demo.",
	"We localize your creative assets in minutes.",
	"Launch campaigns with authentic multilingual voiceovers.",
}

const minSegmentChunk = 1.5

// ASRHandler produces the source-language transcript: segments.json plus an
// SRT rendering of it.
type ASRHandler struct{}

func (ASRHandler) Stage() pipeline.Stage { return pipeline.StageASR }

func (ASRHandler) Run(ctx context.Context, work messages.StageWork, env *Env) (Outputs, error) {
	env.Report(0.2)

	sourcePath := filepath.Join(env.WorkDir, "source.mp4")
	if err := env.Store.DownloadFile(ctx, work.Source.Key, sourcePath); err != nil {
		return Outputs{}, fmt.Errorf("failed to download source: %w", err)
	}

	duration, err := env.Media.ProbeDuration(ctx, sourcePath)
	if err != nil {
		return Outputs{}, err
	}

	segments := buildSegments(duration)
	segmentsJSON, err := json.MarshalIndent(segments, "", "  ")
	if err != nil {
		return Outputs{}, fmt.Errorf("failed to encode segments: %w", err)
	}

	segmentsKey := storage.StageKey(work.JobID, work.Lang, "asr", "segments.json")
	if err := env.Store.UploadBytes(ctx, segmentsJSON, segmentsKey, "application/json"); err != nil {
		return Outputs{}, fmt.Errorf("failed to upload segments: %w", err)
	}

	srtKey := storage.StageKey(work.JobID, work.Lang, "asr", "transcript.srt")
	if err := env.Store.UploadBytes(ctx, []byte(subtitle.ToSRT(segments)), srtKey, "application/x-subrip"); err != nil {
		return Outputs{}, fmt.Errorf("failed to upload transcript: %w", err)
	}

	env.Report(0.8)
	return Outputs{}, nil
}

// buildSegments spreads the demo transcript across the asset duration, at
// least minSegmentChunk seconds per segment, clipping the tail at the end of
// the asset.
func buildSegments(duration float64) []subtitle.Segment {
	chunk := duration / float64(len(demoTranscript))
	if chunk < minSegmentChunk {
		chunk = minSegmentChunk
	}
	segments := make([]subtitle.Segment, 0, len(demoTranscript))
	cursor := 0.0
	for idx, text := range demoTranscript {
		start := cursor
		end := start + chunk
		if end > duration {
			end = duration
		}
		segments = append(segments, subtitle.Segment{
			ID:    idx,
			Start: round3(start),
			End:   round3(end),
			Text:  text,
		})
		cursor = end
	}
	return segments
}

func round3(v float64) float64 {
	return float64(int(v*1000+0.5)) / 1000
}

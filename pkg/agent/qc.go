package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"path/filepath"

	"github.com/glocalhq/glocal/pkg/media"
	"github.com/glocalhq/glocal/pkg/messages"
	"github.com/glocalhq/glocal/pkg/pipeline"
	"github.com/glocalhq/glocal/pkg/storage"
)

// QCHandler inspects the final rendition and writes the quality report. It
// prefers the textinframe output when that stage ran, falling back to the mix
// master otherwise.
type QCHandler struct{}

func (QCHandler) Stage() pipeline.Stage { return pipeline.StageQC }

func (QCHandler) Run(ctx context.Context, work messages.StageWork, env *Env) (Outputs, error) {
	env.Report(0.2)

	variant, err := env.Client.LocalizedVariant.Get(ctx, work.VariantID)
	if err != nil {
		return Outputs{}, fmt.Errorf("failed to load variant: %w", err)
	}

	videoKey := storage.StageKey(work.JobID, work.Lang, "textinframe", "out.mp4")
	exists, err := env.Store.ObjectExists(ctx, videoKey)
	if err != nil {
		return Outputs{}, fmt.Errorf("failed to check overlay output: %w", err)
	}
	if !exists {
		videoKey = storage.StageKey(work.JobID, work.Lang, "mix", "out.mp4")
	}

	videoPath := filepath.Join(env.WorkDir, "final.mp4")
	if err := env.Store.DownloadFile(ctx, videoKey, videoPath); err != nil {
		return Outputs{}, fmt.Errorf("failed to download final video: %w", err)
	}

	format, err := env.Media.ProbeFormat(ctx, videoPath)
	if err != nil {
		return Outputs{}, err
	}

	audioPath := filepath.Join(env.WorkDir, "audio.wav")
	if variant.AudioURL != nil {
		audioKey := storage.StageKey(work.JobID, work.Lang, "tts", "track.wav")
		if err := env.Store.DownloadFile(ctx, audioKey, audioPath); err != nil {
			return Outputs{}, fmt.Errorf("failed to download voice track: %w", err)
		}
	}
	stats, err := media.AnalyzeTrack(audioPath)
	if err != nil {
		return Outputs{}, err
	}

	bitrateKbps := 0.0
	if format.Bitrate > 0 {
		bitrateKbps = math.Round(format.Bitrate/10) / 100
	}
	report := map[string]any{
		"duration":         math.Round(format.Duration*100) / 100,
		"bitrate_kbps":     bitrateKbps,
		"average_loudness": stats.AverageLoudness,
		"silence_seconds":  stats.SilenceSeconds,
		"has_subtitles":    variant.SubsURL != nil,
		"lang":             work.Lang,
	}

	reportJSON, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return Outputs{}, fmt.Errorf("failed to encode report: %w", err)
	}
	reportKey := storage.StageKey(work.JobID, work.Lang, "qc", "report.json")
	if err := env.Store.UploadBytes(ctx, reportJSON, reportKey, "application/json"); err != nil {
		return Outputs{}, fmt.Errorf("failed to upload report: %w", err)
	}

	env.Report(0.95)
	return Outputs{ReportKey: reportKey, Report: report}, nil
}

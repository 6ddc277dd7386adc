package agent

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/glocalhq/glocal/pkg/messages"
	"github.com/glocalhq/glocal/pkg/pipeline"
	"github.com/glocalhq/glocal/pkg/storage"
)

// MixHandler renders the localized master: the source video remuxed with the
// synthesized voice track (when the job dubs) plus an HLS preview rendition.
type MixHandler struct{}

func (MixHandler) Stage() pipeline.Stage { return pipeline.StageMix }

func (MixHandler) Run(ctx context.Context, work messages.StageWork, env *Env) (Outputs, error) {
	env.Report(0.1)

	sourcePath := filepath.Join(env.WorkDir, "source.mp4")
	if err := env.Store.DownloadFile(ctx, work.Source.Key, sourcePath); err != nil {
		return Outputs{}, fmt.Errorf("failed to download source: %w", err)
	}

	outputPath := filepath.Join(env.WorkDir, "out.mp4")
	if work.ExpectTTS {
		trackPath := filepath.Join(env.WorkDir, "track.wav")
		trackKey := storage.StageKey(work.JobID, work.Lang, "tts", "track.wav")
		if err := env.Store.DownloadFile(ctx, trackKey, trackPath); err != nil {
			return Outputs{}, fmt.Errorf("failed to download voice track: %w", err)
		}
		if err := env.Media.MuxDubbedMP4(ctx, sourcePath, trackPath, outputPath); err != nil {
			return Outputs{}, err
		}
	} else {
		if err := env.Media.EncodeMP4(ctx, sourcePath, outputPath); err != nil {
			return Outputs{}, err
		}
	}

	hlsDir := filepath.Join(env.WorkDir, "hls")
	if err := os.MkdirAll(hlsDir, 0o755); err != nil {
		return Outputs{}, fmt.Errorf("failed to create hls dir: %w", err)
	}
	if err := env.Media.SegmentHLS(ctx, outputPath, hlsDir); err != nil {
		return Outputs{}, err
	}

	videoKey := storage.StageKey(work.JobID, work.Lang, "mix", "out.mp4")
	if err := env.Store.UploadFile(ctx, outputPath, videoKey, "video/mp4"); err != nil {
		return Outputs{}, fmt.Errorf("failed to upload master: %w", err)
	}

	previewKey, err := uploadHLS(ctx, env.Store, hlsDir, work.JobID, work.Lang, "mix")
	if err != nil {
		return Outputs{}, err
	}

	env.Report(0.9)
	return Outputs{VideoKey: videoKey, PreviewKey: previewKey}, nil
}

// uploadHLS pushes every playlist and segment file from dir under
// <stage>/hls/ and returns the playlist key.
func uploadHLS(ctx context.Context, store ObjectStore, dir, jobID, lang, stage string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("failed to read hls dir: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		contentType := "video/mp2t"
		if filepath.Ext(entry.Name()) == ".m3u8" {
			contentType = "application/x-mpegURL"
		}
		key := storage.StageKey(jobID, lang, stage, "hls", entry.Name())
		if err := store.UploadFile(ctx, filepath.Join(dir, entry.Name()), key, contentType); err != nil {
			return "", fmt.Errorf("failed to upload hls file '%s': %w", entry.Name(), err)
		}
	}
	return storage.StageKey(jobID, lang, stage, "hls", "index.m3u8"), nil
}

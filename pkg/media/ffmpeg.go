// Package media wraps the ffmpeg/ffprobe invocations the stage agents rely
// on, plus WAV synthesis and loudness analysis for the demo voice track.
package media

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultFFmpegPath  = "ffmpeg"
	DefaultFFprobePath = "ffprobe"

	// fallbackDuration is assumed when ffprobe reports no parseable duration.
	fallbackDuration = 8.0

	commandTimeout = 5 * time.Minute
)

var (
	// ErrFFmpegNotFound indicates the ffmpeg binary is not on PATH.
	ErrFFmpegNotFound = errors.New("ffmpeg binary not found")

	// ErrFFmpegTimeout indicates ffmpeg exceeded the execution timeout.
	ErrFFmpegTimeout = errors.New("ffmpeg execution timed out")
)

// Toolchain runs ffmpeg and ffprobe commands.
type Toolchain struct {
	FFmpegPath  string
	FFprobePath string
}

// NewToolchain returns a Toolchain using the binaries on PATH.
func NewToolchain() *Toolchain {
	return &Toolchain{
		FFmpegPath:  DefaultFFmpegPath,
		FFprobePath: DefaultFFprobePath,
	}
}

// Format holds container-level metadata reported by ffprobe.
type Format struct {
	Duration float64
	Bitrate  float64
}

// ProbeDuration returns the asset duration in seconds. An unparsable ffprobe
// answer falls back to a fixed duration rather than failing the stage.
func (t *Toolchain) ProbeDuration(ctx context.Context, path string) (float64, error) {
	out, err := t.run(ctx, t.FFprobePath,
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	)
	if err != nil {
		return 0, err
	}
	duration, err := strconv.ParseFloat(strings.TrimSpace(string(out)), 64)
	if err != nil {
		return fallbackDuration, nil
	}
	return duration, nil
}

// ProbeFormat returns duration and bitrate for a media file.
func (t *Toolchain) ProbeFormat(ctx context.Context, path string) (Format, error) {
	out, err := t.run(ctx, t.FFprobePath,
		"-v", "error",
		"-show_entries", "format=duration,bit_rate",
		"-of", "json",
		path,
	)
	if err != nil {
		return Format{}, err
	}

	var payload struct {
		Format struct {
			Duration string `json:"duration"`
			BitRate  string `json:"bit_rate"`
		} `json:"format"`
	}
	if err := json.Unmarshal(out, &payload); err != nil {
		return Format{}, fmt.Errorf("failed to parse ffprobe output: %w", err)
	}

	var f Format
	f.Duration, _ = strconv.ParseFloat(payload.Format.Duration, 64)
	f.Bitrate, _ = strconv.ParseFloat(payload.Format.BitRate, 64)
	return f, nil
}

// EncodeMP4 re-encodes the source to H.264/AAC without replacing the audio.
func (t *Toolchain) EncodeMP4(ctx context.Context, source, output string) error {
	_, err := t.run(ctx, t.FFmpegPath,
		"-y",
		"-i", source,
		"-c:v", "libx264",
		"-preset", "veryfast",
		"-c:a", "aac",
		"-b:a", "192k",
		output,
	)
	return err
}

// MuxDubbedMP4 replaces the source audio track with the synthesized voice
// track, truncating to the shorter stream.
func (t *Toolchain) MuxDubbedMP4(ctx context.Context, source, audio, output string) error {
	_, err := t.run(ctx, t.FFmpegPath,
		"-y",
		"-i", source,
		"-i", audio,
		"-map", "0:v",
		"-map", "1:a",
		"-c:v", "libx264",
		"-preset", "veryfast",
		"-crf", "21",
		"-c:a", "aac",
		"-b:a", "192k",
		"-shortest",
		output,
	)
	return err
}

// SegmentHLS renders an HLS rendition (2 second segments, full playlist) of
// the input into dir as index.m3u8 + segment_NNN.ts.
func (t *Toolchain) SegmentHLS(ctx context.Context, input, dir string) error {
	_, err := t.run(ctx, t.FFmpegPath,
		"-y",
		"-i", input,
		"-codec:v", "libx264",
		"-codec:a", "aac",
		"-start_number", "0",
		"-hls_time", "2",
		"-hls_list_size", "0",
		"-hls_segment_filename", filepath.Join(dir, "segment_%03d.ts"),
		filepath.Join(dir, "index.m3u8"),
	)
	return err
}

// OverlayText burns a caption box into the top-left corner of the video.
// Audio is copied untouched.
func (t *Toolchain) OverlayText(ctx context.Context, input, output, text, fontFile string) error {
	filter := fmt.Sprintf(
		"drawtext=fontfile=%s:text='%s':fontcolor=white:fontsize=48:x=40:y=40:box=1:boxcolor=black@0.45",
		fontFile, escapeDrawtext(text),
	)
	_, err := t.run(ctx, t.FFmpegPath,
		"-y",
		"-i", input,
		"-vf", filter,
		"-c:a", "copy",
		output,
	)
	return err
}

// escapeDrawtext escapes characters with meaning inside a drawtext argument.
func escapeDrawtext(text string) string {
	r := strings.NewReplacer(`\`, `\\`, `'`, `\'`, `:`, `\:`)
	return r.Replace(text)
}

func (t *Toolchain) run(ctx context.Context, bin string, args ...string) ([]byte, error) {
	runCtx, cancel := context.WithTimeout(ctx, commandTimeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, bin, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	slog.Debug("running media command", "bin", bin, "args", args)

	if err := cmd.Run(); err != nil {
		if runCtx.Err() == context.DeadlineExceeded {
			return nil, ErrFFmpegTimeout
		}
		var execErr *exec.Error
		if errors.As(err, &execErr) && errors.Is(execErr.Err, exec.ErrNotFound) {
			return nil, ErrFFmpegNotFound
		}
		return nil, fmt.Errorf("%s failed: %w, stderr: %s", bin, err, stderr.String())
	}

	return stdout.Bytes(), nil
}

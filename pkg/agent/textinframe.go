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

const overlayFontFile = "/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf"

// TextInFrameHandler burns a localized caption into the mixed video and
// re-renders the HLS preview from the overlaid master.
type TextInFrameHandler struct{}

func (TextInFrameHandler) Stage() pipeline.Stage { return pipeline.StageTextInFrame }

func (TextInFrameHandler) Run(ctx context.Context, work messages.StageWork, env *Env) (Outputs, error) {
	env.Report(0.15)

	mixPath := filepath.Join(env.WorkDir, "mix.mp4")
	mixKey := storage.StageKey(work.JobID, work.Lang, "mix", "out.mp4")
	if err := env.Store.DownloadFile(ctx, mixKey, mixPath); err != nil {
		return Outputs{}, fmt.Errorf("failed to download mixed video: %w", err)
	}

	overlayPath := filepath.Join(env.WorkDir, "overlay.mp4")
	caption := fmt.Sprintf("[Localized TEXT %s]", work.Lang)
	if err := env.Media.OverlayText(ctx, mixPath, overlayPath, caption, overlayFontFile); err != nil {
		return Outputs{}, err
	}

	hlsDir := filepath.Join(env.WorkDir, "hls")
	if err := os.MkdirAll(hlsDir, 0o755); err != nil {
		return Outputs{}, fmt.Errorf("failed to create hls dir: %w", err)
	}
	if err := env.Media.SegmentHLS(ctx, overlayPath, hlsDir); err != nil {
		return Outputs{}, err
	}

	videoKey := storage.StageKey(work.JobID, work.Lang, "textinframe", "out.mp4")
	if err := env.Store.UploadFile(ctx, overlayPath, videoKey, "video/mp4"); err != nil {
		return Outputs{}, fmt.Errorf("failed to upload overlaid video: %w", err)
	}

	previewKey, err := uploadHLS(ctx, env.Store, hlsDir, work.JobID, work.Lang, "textinframe")
	if err != nil {
		return Outputs{}, err
	}

	env.Report(0.85)
	return Outputs{VideoKey: videoKey, PreviewKey: previewKey}, nil
}

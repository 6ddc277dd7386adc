package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/glocalhq/glocal/pkg/messages"
	"github.com/glocalhq/glocal/pkg/pipeline"
	"github.com/glocalhq/glocal/pkg/storage"
	"github.com/glocalhq/glocal/pkg/subtitle"
)

// TranslateHandler rewrites the asr transcript into the target language.
// The demo translator alternates casing and tags each line with the language
// code, which makes translated artifacts trivially recognizable in QA.
type TranslateHandler struct{}

func (TranslateHandler) Stage() pipeline.Stage { return pipeline.StageTranslate }

func (TranslateHandler) Run(ctx context.Context, work messages.StageWork, env *Env) (Outputs, error) {
	env.Report(0.2)

	raw, err := env.Store.DownloadBytes(ctx, storage.StageKey(work.JobID, work.Lang, "asr", "segments.json"))
	if err != nil {
		return Outputs{}, fmt.Errorf("failed to download asr segments: %w", err)
	}

	var segments []subtitle.Segment
	if err := json.Unmarshal(raw, &segments); err != nil {
		return Outputs{}, fmt.Errorf("failed to parse asr segments: %w", err)
	}

	translated := make([]subtitle.Segment, len(segments))
	for idx, segment := range segments {
		segment.Text = transformText(segment.Text, work.Lang, idx)
		segment.Lang = work.Lang
		translated[idx] = segment
	}

	out, err := json.MarshalIndent(translated, "", "  ")
	if err != nil {
		return Outputs{}, fmt.Errorf("failed to encode translated segments: %w", err)
	}

	key := storage.StageKey(work.JobID, work.Lang, "translate", "segments.json")
	if err := env.Store.UploadBytes(ctx, out, key, "application/json"); err != nil {
		return Outputs{}, fmt.Errorf("failed to upload translated segments: %w", err)
	}

	env.Report(0.85)
	return Outputs{}, nil
}

func transformText(text, lang string, index int) string {
	styled := strings.ToLower(text)
	if index%2 == 0 {
		styled = strings.ToUpper(text)
	}
	return fmt.Sprintf("%s [%s]", styled, lang)
}

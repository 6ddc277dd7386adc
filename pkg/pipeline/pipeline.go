// Package pipeline defines the fixed localization stage sequence and the
// option-driven skip rules that filter it per job.
package pipeline

// Stage is a single step of the localization pipeline.
type Stage string

// Pipeline stages in execution order, plus the terminal pseudo-stage.
const (
	StageASR         Stage = "asr"
	StageTranslate   Stage = "translate"
	StageTTS         Stage = "tts"
	StageMix         Stage = "mix"
	StageSubs        Stage = "subs"
	StageTextInFrame Stage = "textinframe"
	StageQC          Stage = "qc"

	// StagePack has no worker; reaching it marks the variant done.
	StagePack Stage = "pack"
)

// Order is the fixed stage sequence. The ordering encodes data dependencies:
// translate consumes asr segments, tts consumes translated segments, mix
// consumes the tts track, subs consumes translated segments, textinframe
// overlays onto the mix output, qc inspects the latest video artifact.
var Order = []Stage{
	StageASR,
	StageTranslate,
	StageTTS,
	StageMix,
	StageSubs,
	StageTextInFrame,
	StageQC,
}

// Options are the per-job flags that control which stages run.
type Options struct {
	Dub                bool `json:"dub"`
	Subs               bool `json:"subs"`
	ReplaceTextInFrame bool `json:"replace_text_in_frame"`
	UploadToYoutube    bool `json:"upload_to_youtube"`
}

// DefaultOptions mirrors the option defaults applied at job creation.
func DefaultOptions() Options {
	return Options{Dub: true, Subs: true}
}

// Index returns the position of s in the pipeline, or -1 if s is not a
// pipeline stage (pack and unknown stages are not).
func Index(s Stage) int {
	for i, stage := range Order {
		if stage == s {
			return i
		}
	}
	return -1
}

// Skipped reports whether a stage is bypassed for the given options.
// asr, translate, mix and qc always run.
func Skipped(s Stage, opts Options) bool {
	switch s {
	case StageTTS:
		return !opts.Dub
	case StageSubs:
		return !opts.Subs
	case StageTextInFrame:
		return !opts.ReplaceTextInFrame
	default:
		return false
	}
}

// Next returns the next runnable stage after current, along with any stages
// skipped on the way (in order, so callers can report them). A current value
// outside the pipeline, or no remaining runnable stage, yields ok=false.
func Next(current Stage, opts Options) (next Stage, skipped []Stage, ok bool) {
	idx := Index(current)
	if idx < 0 {
		return "", nil, false
	}
	for _, stage := range Order[idx+1:] {
		if Skipped(stage, opts) {
			skipped = append(skipped, stage)
			continue
		}
		return stage, skipped, true
	}
	return "", skipped, false
}

// First returns the first runnable stage for the given options. The skip
// rules currently guarantee this is asr, but callers must not rely on that.
func First(opts Options) (Stage, []Stage, bool) {
	var skipped []Stage
	for _, stage := range Order {
		if Skipped(stage, opts) {
			skipped = append(skipped, stage)
			continue
		}
		return stage, skipped, true
	}
	return "", skipped, false
}

// Runnable returns the pipeline filtered by the skip rules.
func Runnable(opts Options) []Stage {
	stages := make([]Stage, 0, len(Order))
	for _, stage := range Order {
		if !Skipped(stage, opts) {
			stages = append(stages, stage)
		}
	}
	return stages
}

// Before reports whether stage a completes before stage b in pipeline order.
// Non-pipeline stages are never before anything.
func Before(a, b Stage) bool {
	ia, ib := Index(a), Index(b)
	return ia >= 0 && ib >= 0 && ia < ib
}

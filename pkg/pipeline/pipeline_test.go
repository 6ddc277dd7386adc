package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunnable_AllOptionsEnabled(t *testing.T) {
	opts := Options{Dub: true, Subs: true, ReplaceTextInFrame: true}
	assert.Equal(t, Order, Runnable(opts))
}

func TestRunnable_AllOptionalStagesDisabled(t *testing.T) {
	opts := Options{}
	assert.Equal(t, []Stage{StageASR, StageTranslate, StageMix, StageQC}, Runnable(opts))
}

func TestRunnable_Defaults(t *testing.T) {
	// Defaults: dub + subs on, textinframe off.
	assert.Equal(t,
		[]Stage{StageASR, StageTranslate, StageTTS, StageMix, StageSubs, StageQC},
		Runnable(DefaultOptions()))
}

func TestSkipped_MandatoryStagesAlwaysRun(t *testing.T) {
	opts := Options{} // everything optional off
	for _, stage := range []Stage{StageASR, StageTranslate, StageMix, StageQC} {
		assert.False(t, Skipped(stage, opts), "stage %s must never be skipped", stage)
	}
}

func TestNext_WalksFullPipeline(t *testing.T) {
	opts := Options{Dub: true, Subs: true, ReplaceTextInFrame: true}
	current := StageASR
	var walked []Stage
	for {
		next, skipped, ok := Next(current, opts)
		if !ok {
			break
		}
		assert.Empty(t, skipped)
		walked = append(walked, next)
		current = next
	}
	assert.Equal(t, Order[1:], walked)
}

func TestNext_ReportsSkippedStages(t *testing.T) {
	// subs-only job: tts and textinframe are bypassed.
	opts := Options{Subs: true}

	next, skipped, ok := Next(StageTranslate, opts)
	require.True(t, ok)
	assert.Equal(t, StageMix, next)
	assert.Equal(t, []Stage{StageTTS}, skipped)

	next, skipped, ok = Next(StageSubs, opts)
	require.True(t, ok)
	assert.Equal(t, StageQC, next)
	assert.Equal(t, []Stage{StageTextInFrame}, skipped)
}

func TestNext_NoStageAfterQC(t *testing.T) {
	_, skipped, ok := Next(StageQC, DefaultOptions())
	assert.False(t, ok)
	assert.Empty(t, skipped)
}

func TestNext_NonPipelineStage(t *testing.T) {
	_, _, ok := Next(StagePack, DefaultOptions())
	assert.False(t, ok)

	_, _, ok = Next(Stage("bogus"), DefaultOptions())
	assert.False(t, ok)
}

func TestFirst_ConsultsSkipRules(t *testing.T) {
	first, skipped, ok := First(DefaultOptions())
	require.True(t, ok)
	assert.Equal(t, StageASR, first)
	assert.Empty(t, skipped)
}

func TestIndex(t *testing.T) {
	assert.Equal(t, 0, Index(StageASR))
	assert.Equal(t, 6, Index(StageQC))
	assert.Equal(t, -1, Index(StagePack))
}

func TestBefore(t *testing.T) {
	assert.True(t, Before(StageASR, StageTranslate))
	assert.True(t, Before(StageMix, StageQC))
	assert.False(t, Before(StageQC, StageASR))
	assert.False(t, Before(StageQC, StageQC))
	assert.False(t, Before(StagePack, StageQC))
}

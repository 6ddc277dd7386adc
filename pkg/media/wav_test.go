package media

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSynthesizeAndAnalyzeTrack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "track.wav")

	require.NoError(t, SynthesizeTrack(path, []float64{1.0, 0.5}))

	stats, err := AnalyzeTrack(path)
	require.NoError(t, err)

	// A sine tone at full scale sits well above the silence floor.
	assert.Greater(t, stats.AverageLoudness, -30.0)
	assert.Less(t, stats.AverageLoudness, 0.0)
	// The inter-segment gaps plus zero crossings register as silence.
	assert.Greater(t, stats.SilenceSeconds, 0.0)
}

func TestSynthesizeTrack_MinimumDuration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "short.wav")

	// A segment shorter than the floor is stretched, never dropped.
	require.NoError(t, SynthesizeTrack(path, []float64{0.01}))

	stats, err := AnalyzeTrack(path)
	require.NoError(t, err)
	assert.Greater(t, stats.AverageLoudness, -30.0)
}

func TestAnalyzeTrack_MissingFile(t *testing.T) {
	stats, err := AnalyzeTrack(filepath.Join(t.TempDir(), "nope.wav"))
	require.NoError(t, err)
	assert.Equal(t, -30.0, stats.AverageLoudness)
	assert.Equal(t, 0.0, stats.SilenceSeconds)
}

func TestSynthesizeTrack_Deterministic(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.wav")
	b := filepath.Join(dir, "b.wav")

	require.NoError(t, SynthesizeTrack(a, []float64{0.5}))
	require.NoError(t, SynthesizeTrack(b, []float64{0.5}))

	statsA, err := AnalyzeTrack(a)
	require.NoError(t, err)
	statsB, err := AnalyzeTrack(b)
	require.NoError(t, err)
	assert.Equal(t, statsA, statsB)
}

func TestEscapeDrawtext(t *testing.T) {
	assert.Equal(t, "[Localized TEXT de]", escapeDrawtext("[Localized TEXT de]"))
	assert.Equal(t, `it\'s \: fine`, escapeDrawtext("it's : fine"))
}

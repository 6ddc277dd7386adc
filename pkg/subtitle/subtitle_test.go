package subtitle

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sample = []Segment{
	{ID: 0, Start: 0, End: 2.667, Text: "Welcome to the demo."},
	{ID: 1, Start: 2.667, End: 5.334, Text: "We localize creative assets."},
	{ID: 2, Start: 5.334, End: 8, Text: "Launch multilingual campaigns."},
}

func TestFormatTimestamp(t *testing.T) {
	assert.Equal(t, "00:00:00,000", FormatTimestamp(0, ","))
	assert.Equal(t, "00:00:02,667", FormatTimestamp(2.667, ","))
	assert.Equal(t, "01:02:03,450", FormatTimestamp(3723.45, ","))
	assert.Equal(t, "00:01:40.500", FormatTimestamp(100.5, "."))
	// Millisecond rounding must not produce ",1000".
	assert.Equal(t, "00:00:02,000", FormatTimestamp(1.9996, ","))
	// The carry propagates through the seconds, minutes and hours fields.
	assert.Equal(t, "00:01:00,000", FormatTimestamp(59.9996, ","))
	assert.Equal(t, "01:00:00,000", FormatTimestamp(3599.9996, ","))
}

func TestToSRT(t *testing.T) {
	srt := ToSRT(sample)
	assert.Contains(t, srt, "1\n00:00:00,000 --> 00:00:02,667\nWelcome to the demo.")
	assert.Contains(t, srt, "2\n00:00:02,667 --> 00:00:05,334\n")
	assert.Contains(t, srt, "3\n00:00:05,334 --> 00:00:08,000\n")
}

func TestToVTT(t *testing.T) {
	vtt := ToVTT(sample)
	assert.True(t, len(vtt) > 7)
	assert.Equal(t, "WEBVTT", vtt[:6])
	assert.Contains(t, vtt, "00:00:00.000 --> 00:00:02.667\nWelcome to the demo.")
	assert.NotContains(t, vtt, ",667", "VTT uses dot separators")
}

func TestSRTRoundTrip(t *testing.T) {
	parsed, err := ParseSRT(ToSRT(sample))
	require.NoError(t, err)
	require.Len(t, parsed, len(sample))

	for i, seg := range parsed {
		assert.Equal(t, sample[i].Text, seg.Text)
		assert.Equal(t, i, seg.ID)
		// Timestamps survive up to millisecond rounding.
		assert.InDelta(t, sample[i].Start, seg.Start, 0.001)
		assert.InDelta(t, sample[i].End, seg.End, 0.001)
	}
}

func TestParseSRT_MultilineCue(t *testing.T) {
	doc := "1\n00:00:01,000 --> 00:00:03,000\nfirst line\nsecond line\n"
	parsed, err := ParseSRT(doc)
	require.NoError(t, err)
	require.Len(t, parsed, 1)
	assert.Equal(t, "first line\nsecond line", parsed[0].Text)
	assert.True(t, math.Abs(parsed[0].Start-1.0) < 0.0005)
}

func TestParseSRT_Malformed(t *testing.T) {
	_, err := ParseSRT("1\nnot a timing line\ntext\n")
	assert.Error(t, err)

	_, err = ParseSRT("1\n00:00:01,000 -> 00:00:03,000\ntext\n")
	assert.Error(t, err)
}

func TestParseSRT_Empty(t *testing.T) {
	parsed, err := ParseSRT("")
	require.NoError(t, err)
	assert.Empty(t, parsed)
}

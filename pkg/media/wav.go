package media

import (
	"fmt"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const (
	// SampleRate of the synthesized voice track.
	SampleRate = 44100

	// minSegmentDuration keeps ultra-short transcript segments audible.
	minSegmentDuration = 0.4

	// segmentGap is the silence inserted between segments.
	segmentGap = 0.1

	baseFrequency = 220.0
	frequencyStep = 40.0

	// silenceThreshold is the absolute 16-bit amplitude below which a sample
	// counts as silence.
	silenceThreshold = 500
)

// SynthesizeTrack writes a mono 16-bit WAV voice track to path. Each segment
// duration becomes a sine tone (rising pitch per segment) followed by a short
// silence gap. The stand-in for a real TTS provider; deterministic so retries
// produce identical bytes.
func SynthesizeTrack(path string, durations []float64) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create wav file: %w", err)
	}
	defer f.Close()

	enc := wav.NewEncoder(f, SampleRate, 16, 1, 1)

	var data []int
	for index, duration := range durations {
		if duration < minSegmentDuration {
			duration = minSegmentDuration
		}
		freq := baseFrequency + float64(index)*frequencyStep
		frames := int(duration * SampleRate)
		for n := 0; n < frames; n++ {
			value := int(32767 * math.Sin(2*math.Pi*freq*float64(n)/SampleRate))
			data = append(data, value)
		}
		gapFrames := int(segmentGap * SampleRate)
		for n := 0; n < gapFrames; n++ {
			data = append(data, 0)
		}
	}

	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: SampleRate},
		Data:           data,
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("failed to write wav frames: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to finalize wav file: %w", err)
	}
	return nil
}

// AudioStats summarizes a voice track for the QC report.
type AudioStats struct {
	AverageLoudness float64 `json:"average_loudness"`
	SilenceSeconds  float64 `json:"silence_seconds"`
}

// defaultAudioStats is reported when no audio track exists for the variant.
func defaultAudioStats() AudioStats {
	return AudioStats{AverageLoudness: -30.0, SilenceSeconds: 0.0}
}

// AnalyzeTrack computes RMS loudness (dBFS) and accumulated silence for a
// WAV file. A missing file yields the quiet defaults rather than an error so
// subtitle-only variants pass QC.
func AnalyzeTrack(path string) (AudioStats, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return defaultAudioStats(), nil
		}
		return AudioStats{}, fmt.Errorf("failed to open wav file: %w", err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return AudioStats{}, fmt.Errorf("failed to decode wav file: %w", err)
	}
	if len(buf.Data) == 0 {
		return defaultAudioStats(), nil
	}

	sampleRate := buf.Format.SampleRate
	if sampleRate == 0 {
		sampleRate = SampleRate
	}

	var total float64
	var silent int
	for _, sample := range buf.Data {
		value := sample
		if value < 0 {
			value = -value
		}
		total += float64(value) * float64(value)
		if value < silenceThreshold {
			silent++
		}
	}

	rms := math.Sqrt(total/float64(len(buf.Data))) / 32767.0
	loudness := 20 * math.Log10(rms+1e-6)

	return AudioStats{
		AverageLoudness: round2(loudness),
		SilenceSeconds:  round2(float64(silent) / float64(sampleRate)),
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

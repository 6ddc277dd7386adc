// Package subtitle holds the transcript segment model shared by the asr,
// translate, tts and subs stages, and the SRT/VTT codecs.
package subtitle

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Segment is a single timed line of transcript text. Start and End are
// seconds from the beginning of the asset.
type Segment struct {
	ID    int     `json:"id"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
	Lang  string  `json:"lang,omitempty"`
}

// FormatTimestamp renders seconds as HH:MM:SS<sep>mmm. SRT uses a comma
// separator, VTT a dot. Rounding happens on total milliseconds, so a carry
// at a second/minute/hour boundary propagates all the way up.
func FormatTimestamp(seconds float64, sep string) string {
	totalMillis := int64(math.Round(seconds * 1000))
	hours := totalMillis / 3600000
	minutes := (totalMillis % 3600000) / 60000
	secs := (totalMillis % 60000) / 1000
	millis := totalMillis % 1000
	return fmt.Sprintf("%02d:%02d:%02d%s%03d", hours, minutes, secs, sep, millis)
}

// ToSRT encodes segments as a SubRip document. Cue numbers are 1-based
// positions, not segment IDs.
func ToSRT(segments []Segment) string {
	var b strings.Builder
	for i, seg := range segments {
		fmt.Fprintf(&b, "%d\n", i+1)
		fmt.Fprintf(&b, "%s --> %s\n", FormatTimestamp(seg.Start, ","), FormatTimestamp(seg.End, ","))
		b.WriteString(seg.Text)
		b.WriteString("\n\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// ToVTT encodes segments as a WebVTT document.
func ToVTT(segments []Segment) string {
	var b strings.Builder
	b.WriteString("WEBVTT\n\n")
	for _, seg := range segments {
		fmt.Fprintf(&b, "%s --> %s\n", FormatTimestamp(seg.Start, "."), FormatTimestamp(seg.End, "."))
		b.WriteString(seg.Text)
		b.WriteString("\n\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// ParseSRT decodes a SubRip document back into segments. Segment IDs are
// assigned from cue order (0-based, matching the asr stage's numbering).
// Timestamps survive a ToSRT round trip exactly up to millisecond rounding.
func ParseSRT(doc string) ([]Segment, error) {
	var segments []Segment
	blocks := strings.Split(strings.ReplaceAll(doc, "\r\n", "\n"), "\n\n")
	for _, block := range blocks {
		lines := strings.Split(strings.TrimSpace(block), "\n")
		if len(lines) < 2 || strings.TrimSpace(lines[0]) == "" {
			continue
		}
		// lines[0] is the cue number, lines[1] the timing line.
		start, end, err := parseTimingLine(lines[1])
		if err != nil {
			return nil, err
		}
		segments = append(segments, Segment{
			ID:    len(segments),
			Start: start,
			End:   end,
			Text:  strings.Join(lines[2:], "\n"),
		})
	}
	return segments, nil
}

func parseTimingLine(line string) (start, end float64, err error) {
	parts := strings.Split(line, " --> ")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("malformed srt timing line %q", line)
	}
	if start, err = parseTimestamp(strings.TrimSpace(parts[0])); err != nil {
		return 0, 0, err
	}
	if end, err = parseTimestamp(strings.TrimSpace(parts[1])); err != nil {
		return 0, 0, err
	}
	return start, end, nil
}

func parseTimestamp(ts string) (float64, error) {
	// HH:MM:SS,mmm
	main, millis, ok := strings.Cut(ts, ",")
	if !ok {
		return 0, fmt.Errorf("malformed srt timestamp %q", ts)
	}
	fields := strings.Split(main, ":")
	if len(fields) != 3 {
		return 0, fmt.Errorf("malformed srt timestamp %q", ts)
	}
	h, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, fmt.Errorf("malformed srt timestamp %q: %w", ts, err)
	}
	m, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, fmt.Errorf("malformed srt timestamp %q: %w", ts, err)
	}
	s, err := strconv.Atoi(fields[2])
	if err != nil {
		return 0, fmt.Errorf("malformed srt timestamp %q: %w", ts, err)
	}
	ms, err := strconv.Atoi(millis)
	if err != nil {
		return 0, fmt.Errorf("malformed srt timestamp %q: %w", ts, err)
	}
	return float64(h*3600+m*60+s) + float64(ms)/1000, nil
}

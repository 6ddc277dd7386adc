package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glocalhq/glocal/pkg/media"
	"github.com/glocalhq/glocal/pkg/messages"
	"github.com/glocalhq/glocal/pkg/pipeline"
	"github.com/glocalhq/glocal/pkg/progress"
	"github.com/glocalhq/glocal/pkg/storage"
	"github.com/glocalhq/glocal/pkg/subtitle"
)

// fakeStore is an in-memory ObjectStore.
type fakeStore struct {
	mu      sync.Mutex
	objects map[string][]byte
	types   map[string]string
}

func newFakeStore() *fakeStore {
	return &fakeStore{objects: map[string][]byte{}, types: map[string]string{}}
}

func (f *fakeStore) Bucket() string        { return "glocal" }
func (f *fakeStore) URL(key string) string { return storage.ObjectURL("glocal", key) }

func (f *fakeStore) UploadFile(_ context.Context, localPath, key, contentType string) error {
	data, err := os.ReadFile(localPath)
	if err != nil {
		return err
	}
	return f.UploadBytes(context.Background(), data, key, contentType)
}

func (f *fakeStore) UploadBytes(_ context.Context, data []byte, key, contentType string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects[key] = data
	f.types[key] = contentType
	return nil
}

func (f *fakeStore) DownloadFile(ctx context.Context, key, localPath string) error {
	data, err := f.DownloadBytes(ctx, key)
	if err != nil {
		return err
	}
	return os.WriteFile(localPath, data, 0o644)
}

func (f *fakeStore) DownloadBytes(_ context.Context, key string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, ok := f.objects[key]
	if !ok {
		return nil, fmt.Errorf("object '%s' not found", key)
	}
	return data, nil
}

func (f *fakeStore) ObjectExists(_ context.Context, key string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.objects[key]
	return ok, nil
}

func (f *fakeStore) contentType(key string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.types[key]
}

// recordingProgress captures progress events.
type recordingProgress struct {
	mu     sync.Mutex
	events []progress.Event
}

func (r *recordingProgress) Publish(_ context.Context, event progress.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return nil
}

func testEnv(t *testing.T, store *fakeStore) *Env {
	t.Helper()
	reports := 0
	return &Env{
		WorkDir: t.TempDir(),
		Store:   store,
		Media:   media.NewToolchain(),
		Report:  func(float64) { reports++ },
	}
}

func testWork() messages.StageWork {
	return messages.StageWork{
		JobID:      "job-1",
		ProjectID:  "proj-1",
		VariantID:  "var-1",
		Lang:       "de",
		Source:     messages.SourceAsset{Key: "sources/asset-1/input.mp4", Type: "video"},
		BasePrefix: "jobs/job-1/de",
		ExpectTTS:  true,
	}
}

func seedTranslatedSegments(t *testing.T, store *fakeStore) []subtitle.Segment {
	t.Helper()
	segments := []subtitle.Segment{
		{ID: 0, Start: 0, End: 3, Text: "HALLO WELT [de]", Lang: "de"},
		{ID: 1, Start: 3, End: 6, Text: "zweite zeile [de]", Lang: "de"},
	}
	data, err := json.Marshal(segments)
	require.NoError(t, err)
	key := storage.StageKey("job-1", "de", "translate", "segments.json")
	require.NoError(t, store.UploadBytes(context.Background(), data, key, "application/json"))
	return segments
}

func TestBuildSegments(t *testing.T) {
	segments := buildSegments(9.0)
	require.Len(t, segments, 3)
	assert.Equal(t, 0.0, segments[0].Start)
	assert.Equal(t, 3.0, segments[0].End)
	assert.Equal(t, 6.0, segments[2].Start)
	assert.Equal(t, 9.0, segments[2].End)

	// Short assets get the minimum chunk, clipped at the asset end.
	short := buildSegments(2.0)
	require.Len(t, short, 3)
	assert.Equal(t, 1.5, short[0].End)
	assert.Equal(t, 2.0, short[1].End)
	assert.Equal(t, 2.0, short[2].Start)
	assert.Equal(t, 2.0, short[2].End)
}

func TestTransformText(t *testing.T) {
	assert.Equal(t, "HELLO WORLD [de]", transformText("Hello World", "de", 0))
	assert.Equal(t, "hello world [fr]", transformText("Hello World", "fr", 1))
}

func TestTranslateHandler(t *testing.T) {
	store := newFakeStore()
	source := []subtitle.Segment{
		{ID: 0, Start: 0, End: 3, Text: "Hello"},
		{ID: 1, Start: 3, End: 6, Text: "World"},
	}
	data, err := json.Marshal(source)
	require.NoError(t, err)
	require.NoError(t, store.UploadBytes(context.Background(),
		data, storage.StageKey("job-1", "de", "asr", "segments.json"), "application/json"))

	outputs, err := TranslateHandler{}.Run(context.Background(), testWork(), testEnv(t, store))
	require.NoError(t, err)
	assert.Empty(t, outputs.SubsKey)

	raw, err := store.DownloadBytes(context.Background(),
		storage.StageKey("job-1", "de", "translate", "segments.json"))
	require.NoError(t, err)

	var translated []subtitle.Segment
	require.NoError(t, json.Unmarshal(raw, &translated))
	require.Len(t, translated, 2)
	assert.Equal(t, "HELLO [de]", translated[0].Text)
	assert.Equal(t, "world [de]", translated[1].Text)
	assert.Equal(t, "de", translated[0].Lang)
	// Timings survive translation untouched.
	assert.Equal(t, source[0].Start, translated[0].Start)
	assert.Equal(t, source[1].End, translated[1].End)
}

func TestSubsHandler(t *testing.T) {
	store := newFakeStore()
	seedTranslatedSegments(t, store)

	outputs, err := SubsHandler{}.Run(context.Background(), testWork(), testEnv(t, store))
	require.NoError(t, err)

	srtKey := storage.StageKey("job-1", "de", "subs", "subtitles.srt")
	assert.Equal(t, srtKey, outputs.SubsKey)
	assert.Equal(t, "application/x-subrip", store.contentType(srtKey))

	vtt, err := store.DownloadBytes(context.Background(),
		storage.StageKey("job-1", "de", "subs", "subtitles.vtt"))
	require.NoError(t, err)
	assert.Contains(t, string(vtt), "WEBVTT")
	assert.Contains(t, string(vtt), "HALLO WELT [de]")

	srt, err := store.DownloadBytes(context.Background(), srtKey)
	require.NoError(t, err)
	parsed, err := subtitle.ParseSRT(string(srt))
	require.NoError(t, err)
	assert.Len(t, parsed, 2)
}

func TestTTSHandler(t *testing.T) {
	store := newFakeStore()
	seedTranslatedSegments(t, store)

	outputs, err := TTSHandler{}.Run(context.Background(), testWork(), testEnv(t, store))
	require.NoError(t, err)

	trackKey := storage.StageKey("job-1", "de", "tts", "track.wav")
	assert.Equal(t, trackKey, outputs.AudioKey)
	assert.Equal(t, "audio/wav", store.contentType(trackKey))

	data, err := store.DownloadBytes(context.Background(), trackKey)
	require.NoError(t, err)
	assert.Greater(t, len(data), 44, "wav payload beyond the RIFF header")
}

func TestTTSHandler_MissingSegments(t *testing.T) {
	store := newFakeStore()

	_, err := TTSHandler{}.Run(context.Background(), testWork(), testEnv(t, store))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "translated segments")
}

func TestHandlerFor(t *testing.T) {
	for _, stage := range pipeline.Runnable(pipeline.Options{Dub: true, Subs: true, ReplaceTextInFrame: true}) {
		h, ok := HandlerFor(stage)
		require.True(t, ok, string(stage))
		assert.Equal(t, stage, h.Stage())
	}
	_, ok := HandlerFor(pipeline.StagePack)
	assert.False(t, ok)
}

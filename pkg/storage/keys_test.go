package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasePrefix(t *testing.T) {
	assert.Equal(t, "jobs/job-1/de", BasePrefix("job-1", "de"))
}

func TestStageKey(t *testing.T) {
	assert.Equal(t, "jobs/job-1/de/asr/segments.json", StageKey("job-1", "de", "asr", "segments.json"))
	assert.Equal(t, "jobs/job-1/fr/mix/hls/index.m3u8", StageKey("job-1", "fr", "mix", "hls", "index.m3u8"))
}

func TestObjectURL(t *testing.T) {
	assert.Equal(t, "s3://media/jobs/j/de/tts/track.wav", ObjectURL("media", "jobs/j/de/tts/track.wav"))
}

func TestParseURL_S3Scheme(t *testing.T) {
	bucket, key, err := ParseURL("s3://media/uploads/source.mp4")
	require.NoError(t, err)
	assert.Equal(t, "media", bucket)
	assert.Equal(t, "uploads/source.mp4", key)
}

func TestParseURL_HTTPEndpoint(t *testing.T) {
	bucket, key, err := ParseURL("https://minio.local:9000/media/uploads/source.mp4")
	require.NoError(t, err)
	// Host-first layout: the host is treated as the bucket component.
	assert.Equal(t, "minio.local:9000", bucket)
	assert.Equal(t, "media/uploads/source.mp4", key)
}

func TestParseURL_RoundTrip(t *testing.T) {
	url := ObjectURL("media", "jobs/j/de/mix/out.mp4")
	bucket, key, err := ParseURL(url)
	require.NoError(t, err)
	assert.Equal(t, url, ObjectURL(bucket, key))
}

func TestParseURL_Invalid(t *testing.T) {
	for _, raw := range []string{"", "s3://", "s3://bucketonly", "s3:///key-no-bucket"} {
		_, _, err := ParseURL(raw)
		assert.Error(t, err, "url %q", raw)
	}
}

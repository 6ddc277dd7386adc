package messages

import (
	"encoding/json"
	"testing"

	"github.com/glocalhq/glocal/pkg/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoutingKeys(t *testing.T) {
	assert.Equal(t, "stage.asr", StageWorkKey(pipeline.StageASR))
	assert.Equal(t, "stage.tts.completed", StageCompletedKey(pipeline.StageTTS))
	assert.Equal(t, "stage.mix.failed", StageFailedKey(pipeline.StageMix))
	assert.Equal(t, "qc-agent", StageQueue(pipeline.StageQC))
}

func TestStageWork_RoundTrip(t *testing.T) {
	work := StageWork{
		JobID:      "job-1",
		ProjectID:  "proj-1",
		VariantID:  "var-1",
		Lang:       "de",
		Stage:      pipeline.StageASR,
		Source:     SourceAsset{Key: "uploads/src.mp4", Type: "video"},
		Options:    pipeline.Options{Dub: true, Subs: true},
		BasePrefix: "jobs/job-1/de",
		ExpectTTS:  true,
		VoiceProfile: &VoiceProfile{
			ID:             "vp-1",
			Name:           "Narrator",
			Provider:       "demo",
			ProviderParams: map[string]any{"pitch": "low"},
		},
	}

	data, err := json.Marshal(work)
	require.NoError(t, err)

	var decoded StageWork
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, work, decoded)
}

func TestStageWork_WireFieldNames(t *testing.T) {
	data, err := json.Marshal(StageWork{JobID: "j", Stage: pipeline.StageMix})
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	for _, field := range []string{"job_id", "variant_id", "lang", "stage", "source", "options", "base_prefix", "expect_tts", "voice_profile"} {
		assert.Contains(t, raw, field)
	}
}

func TestStageResult_RoundTrip(t *testing.T) {
	result := StageResult{
		JobID:      "job-1",
		VariantID:  "var-1",
		Lang:       "fr",
		Stage:      pipeline.StageMix,
		Status:     ResultCompleted,
		VideoKey:   "jobs/job-1/fr/mix/out.mp4",
		PreviewKey: "jobs/job-1/fr/mix/hls/index.m3u8",
	}

	data, err := json.Marshal(result)
	require.NoError(t, err)

	var decoded StageResult
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, result, decoded)
}

func TestStageResult_Validate(t *testing.T) {
	valid := StageResult{
		JobID: "j", VariantID: "v", Lang: "de",
		Stage: pipeline.StageASR, Status: ResultCompleted,
	}
	assert.NoError(t, valid.Validate())

	cases := map[string]StageResult{
		"missing job_id":     {VariantID: "v", Lang: "de", Stage: pipeline.StageASR, Status: ResultCompleted},
		"missing variant_id": {JobID: "j", Lang: "de", Stage: pipeline.StageASR, Status: ResultCompleted},
		"missing lang":       {JobID: "j", VariantID: "v", Stage: pipeline.StageASR, Status: ResultCompleted},
		"missing stage":      {JobID: "j", VariantID: "v", Lang: "de", Status: ResultCompleted},
		"missing status":     {JobID: "j", VariantID: "v", Lang: "de", Stage: pipeline.StageASR},
	}
	for name, result := range cases {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, result.Validate(), ErrInvalidResult)
		})
	}
}

func TestJobCreated_RoundTrip(t *testing.T) {
	msg := JobCreated{
		JobID:          "job-1",
		ProjectID:      "proj-1",
		Languages:      []string{"de", "fr"},
		VoiceProfileID: "vp-1",
		Options:        pipeline.DefaultOptions(),
		SourceAsset:    SourceAsset{ID: "asset-1", S3URL: "s3://bucket/uploads/src.mp4", Type: "video"},
	}

	data, err := json.Marshal(msg)
	require.NoError(t, err)

	var decoded JobCreated
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, msg, decoded)
}

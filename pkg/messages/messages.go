// Package messages defines the typed envelopes exchanged on the jobs
// exchange. Envelopes are transient: every stage dispatch is rebuilt from
// persisted state, never forwarded along the chain.
package messages

import (
	"errors"

	"github.com/glocalhq/glocal/pkg/pipeline"
)

// Routing keys on the jobs exchange.
const (
	ExchangeJobs = "jobs"

	KeyJobCreated    = "job.created"
	KeyYoutubeUpload = "youtube.upload"

	// Wildcard bindings for the orchestrator's result queue.
	KeyAnyStageCompleted = "stage.*.completed"
	KeyAnyStageFailed    = "stage.*.failed"
)

// Queue names.
const (
	QueueOrchestratorJobs   = "orchestrator.jobs"
	QueueOrchestratorEvents = "orchestrator.events"
	QueueYoutubeUploader    = "yt-uploader"
)

// StageWorkKey returns the work routing key for a stage (stage.<name>).
func StageWorkKey(stage pipeline.Stage) string {
	return "stage." + string(stage)
}

// StageCompletedKey returns the success result routing key for a stage.
func StageCompletedKey(stage pipeline.Stage) string {
	return "stage." + string(stage) + ".completed"
}

// StageFailedKey returns the failure result routing key for a stage.
func StageFailedKey(stage pipeline.Stage) string {
	return "stage." + string(stage) + ".failed"
}

// StageQueue returns the worker queue name for a stage (<stage>-agent).
func StageQueue(stage pipeline.Stage) string {
	return string(stage) + "-agent"
}

// SourceAsset identifies a source object in the store.
type SourceAsset struct {
	ID    string `json:"id,omitempty"`
	S3URL string `json:"s3_url,omitempty"`
	Key   string `json:"key,omitempty"`
	Type  string `json:"type"`
}

// VoiceProfile carries the synthesis profile a tts agent should use.
type VoiceProfile struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Provider       string         `json:"provider"`
	ProviderParams map[string]any `json:"provider_params"`
}

// JobCreated is the ingress message published by the API when a job and its
// variants have been committed.
type JobCreated struct {
	JobID          string           `json:"job_id"`
	ProjectID      string           `json:"project_id"`
	Languages      []string         `json:"languages"`
	VoiceProfileID string           `json:"voice_profile_id,omitempty"`
	Options        pipeline.Options `json:"options"`
	SourceAsset    SourceAsset      `json:"source_asset"`
}

// StageWork is the envelope the orchestrator publishes to stage.<name>.
// Source.Key is the object key of the source asset; all stage artifacts live
// under BasePrefix (jobs/<job_id>/<lang>).
type StageWork struct {
	JobID        string           `json:"job_id"`
	ProjectID    string           `json:"project_id"`
	VariantID    string           `json:"variant_id"`
	Lang         string           `json:"lang"`
	Stage        pipeline.Stage   `json:"stage"`
	Source       SourceAsset      `json:"source"`
	Options      pipeline.Options `json:"options"`
	BasePrefix   string           `json:"base_prefix"`
	ExpectTTS    bool             `json:"expect_tts"`
	VoiceProfile *VoiceProfile    `json:"voice_profile"`
}

// Result status values on StageResult.
const (
	ResultCompleted = "completed"
	ResultError     = "error"
)

// StageResult is the envelope a worker publishes to stage.<name>.completed
// or stage.<name>.failed. The output keys are stage-specific and optional.
type StageResult struct {
	JobID      string         `json:"job_id"`
	VariantID  string         `json:"variant_id"`
	Lang       string         `json:"lang"`
	Stage      pipeline.Stage `json:"stage"`
	Status     string         `json:"status"`
	Error      string         `json:"error,omitempty"`
	BasePrefix string         `json:"base_prefix,omitempty"`
	VideoKey   string         `json:"video_key,omitempty"`
	PreviewKey string         `json:"preview_key,omitempty"`
	AudioKey   string         `json:"audio_key,omitempty"`
	SubsKey    string         `json:"subs_key,omitempty"`
	ReportKey  string         `json:"report_key,omitempty"`
}

// ErrInvalidResult marks a result envelope missing mandatory fields.
// The orchestrator drops such messages without retry.
var ErrInvalidResult = errors.New("stage result missing mandatory fields")

// Validate checks the mandatory identifier fields.
func (r *StageResult) Validate() error {
	if r.JobID == "" || r.VariantID == "" || r.Lang == "" || r.Stage == "" || r.Status == "" {
		return ErrInvalidResult
	}
	return nil
}

// YoutubeUpload is the post-pipeline hook message, one per variant, published
// only after the job row reaches done.
type YoutubeUpload struct {
	JobID     string `json:"job_id"`
	VariantID string `json:"variant_id"`
	Lang      string `json:"lang"`
	VideoURL  string `json:"video_url,omitempty"`
	SubsURL   string `json:"subs_url,omitempty"`
}

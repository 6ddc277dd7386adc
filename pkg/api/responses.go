package api

import (
	"time"

	"github.com/glocalhq/glocal/ent"
	"github.com/glocalhq/glocal/pkg/pipeline"
)

// JobResponse is the wire shape of a localization job with its variants.
type JobResponse struct {
	ID             string            `json:"id"`
	ProjectID      string            `json:"project_id"`
	Status         string            `json:"status"`
	SourceAssetID  string            `json:"source_asset_id"`
	Languages      []string          `json:"languages"`
	VoiceProfileID *string           `json:"voice_profile_id"`
	Options        pipeline.Options  `json:"options"`
	CreatedBy      string            `json:"created_by"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
	ErrorMessage   *string           `json:"error_message"`
	Variants       []VariantResponse `json:"variants"`
}

// VariantResponse is the wire shape of one language variant.
type VariantResponse struct {
	ID           string         `json:"id"`
	JobID        string         `json:"job_id"`
	Lang         string         `json:"lang"`
	Status       string         `json:"status"`
	VideoURL     *string        `json:"video_url"`
	AudioURL     *string        `json:"audio_url"`
	SubsURL      *string        `json:"subs_url"`
	PreviewURL   *string        `json:"preview_url"`
	Report       map[string]any `json:"report"`
	ErrorMessage *string        `json:"error_message"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

func jobResponse(job *ent.LocalizationJob) JobResponse {
	variants := make([]VariantResponse, 0, len(job.Edges.Variants))
	for _, v := range job.Edges.Variants {
		variants = append(variants, VariantResponse{
			ID:           v.ID,
			JobID:        v.JobID,
			Lang:         v.Lang,
			Status:       v.Status.String(),
			VideoURL:     v.VideoURL,
			AudioURL:     v.AudioURL,
			SubsURL:      v.SubsURL,
			PreviewURL:   v.PreviewURL,
			Report:       v.Report,
			ErrorMessage: v.ErrorMessage,
			CreatedAt:    v.CreatedAt,
			UpdatedAt:    v.UpdatedAt,
		})
	}
	return JobResponse{
		ID:             job.ID,
		ProjectID:      job.ProjectID,
		Status:         job.Status.String(),
		SourceAssetID:  job.SourceAssetID,
		Languages:      job.Languages,
		VoiceProfileID: job.VoiceProfileID,
		Options:        job.Options,
		CreatedBy:      job.CreatedBy,
		CreatedAt:      job.CreatedAt,
		UpdatedAt:      job.UpdatedAt,
		ErrorMessage:   job.ErrorMessage,
		Variants:       variants,
	}
}

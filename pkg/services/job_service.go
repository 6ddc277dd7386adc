package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/glocalhq/glocal/ent"
	"github.com/glocalhq/glocal/ent/localizationjob"
	"github.com/glocalhq/glocal/pkg/messages"
	"github.com/glocalhq/glocal/pkg/pipeline"
	"github.com/glocalhq/glocal/pkg/storage"
)

// BusPublisher publishes messages to the job exchange.
// Satisfied by *bus.Bus; narrowed here so tests can substitute a recorder.
type BusPublisher interface {
	Publish(ctx context.Context, routingKey string, payload any) error
}

// CreateJobInput contains the domain-level data needed to create a job.
// Transformed from the HTTP request + auth claims by the handler.
type CreateJobInput struct {
	ProjectID      string
	SourceAssetID  string
	Languages      []string
	VoiceProfileID string
	Options        pipeline.Options
	CreatedBy      string
}

// JobService handles localization job submission and retrieval.
type JobService struct {
	client *ent.Client
	bus    BusPublisher
	logger *slog.Logger
}

// NewJobService creates a new JobService.
func NewJobService(client *ent.Client, bus BusPublisher) *JobService {
	if client == nil {
		panic("NewJobService: client must not be nil")
	}
	if bus == nil {
		panic("NewJobService: bus must not be nil")
	}
	return &JobService{
		client: client,
		bus:    bus,
		logger: slog.With("component", "job_service"),
	}
}

// CreateJob validates the input, persists the job with one queued variant per
// language, and announces it on the bus. The job itself starts in "queued"
// status; the orchestrator picks it up from the job.created event.
func (s *JobService) CreateJob(ctx context.Context, input CreateJobInput) (*ent.LocalizationJob, error) {
	if input.ProjectID == "" {
		return nil, NewValidationError("project_id", "project id is required")
	}
	if input.SourceAssetID == "" {
		return nil, NewValidationError("source_asset_id", "source asset id is required")
	}
	if err := validateLanguages(input.Languages); err != nil {
		return nil, err
	}

	// The source asset must exist before we accept the job.
	asset, err := s.client.Asset.Get(ctx, input.SourceAssetID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, NewValidationError("source_asset_id", fmt.Sprintf("asset '%s' not found", input.SourceAssetID))
		}
		return nil, fmt.Errorf("failed to load source asset: %w", err)
	}

	if input.VoiceProfileID != "" {
		if _, err := s.client.VoiceProfile.Get(ctx, input.VoiceProfileID); err != nil {
			if ent.IsNotFound(err) {
				return nil, NewValidationError("voice_profile_id", fmt.Sprintf("voice profile '%s' not found", input.VoiceProfileID))
			}
			return nil, fmt.Errorf("failed to load voice profile: %w", err)
		}
	}

	jobID := uuid.New().String()

	// Job and variant rows are created in one transaction so a crash cannot
	// leave a job without its variants.
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}

	builder := tx.LocalizationJob.Create().
		SetID(jobID).
		SetProjectID(input.ProjectID).
		SetSourceAssetID(input.SourceAssetID).
		SetLanguages(input.Languages).
		SetOptions(input.Options).
		SetCreatedBy(input.CreatedBy).
		SetStatus(localizationjob.StatusQueued)
	if input.VoiceProfileID != "" {
		builder.SetVoiceProfileID(input.VoiceProfileID)
	}

	if _, err := builder.Save(ctx); err != nil {
		_ = tx.Rollback()
		return nil, fmt.Errorf("failed to create job: %w", err)
	}

	for _, lang := range input.Languages {
		_, err := tx.LocalizedVariant.Create().
			SetID(uuid.New().String()).
			SetJobID(jobID).
			SetLang(lang).
			Save(ctx)
		if err != nil {
			_ = tx.Rollback()
			return nil, fmt.Errorf("failed to create variant for '%s': %w", lang, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit job: %w", err)
	}

	_, key, err := storage.ParseURL(asset.S3URL)
	if err != nil {
		return nil, fmt.Errorf("asset '%s' has unparseable s3_url: %w", asset.ID, err)
	}

	event := messages.JobCreated{
		JobID:          jobID,
		ProjectID:      input.ProjectID,
		Languages:      input.Languages,
		VoiceProfileID: input.VoiceProfileID,
		Options:        input.Options,
		SourceAsset: messages.SourceAsset{
			ID:    asset.ID,
			S3URL: asset.S3URL,
			Key:   key,
			Type:  asset.Type.String(),
		},
	}
	if err := s.bus.Publish(ctx, messages.KeyJobCreated, event); err != nil {
		// The job row exists; the orchestrator will never see it without the
		// event, so surface the failure to the caller.
		return nil, fmt.Errorf("job '%s' persisted but announcement failed: %w", jobID, err)
	}

	s.logger.Info("job created",
		"job_id", jobID,
		"project_id", input.ProjectID,
		"languages", strings.Join(input.Languages, ","))

	return s.GetJob(ctx, jobID)
}

// GetJob returns a job with its variants loaded, or ErrNotFound.
func (s *JobService) GetJob(ctx context.Context, jobID string) (*ent.LocalizationJob, error) {
	job, err := s.client.LocalizationJob.Query().
		Where(localizationjob.IDEQ(jobID)).
		WithVariants().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("job '%s': %w", jobID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return job, nil
}

// ListJobs returns jobs for a project, newest first. An empty projectID lists
// all jobs.
func (s *JobService) ListJobs(ctx context.Context, projectID string, limit int) ([]*ent.LocalizationJob, error) {
	if limit <= 0 {
		limit = 50
	}
	query := s.client.LocalizationJob.Query().
		WithVariants().
		Order(ent.Desc(localizationjob.FieldCreatedAt)).
		Limit(limit)
	if projectID != "" {
		query = query.Where(localizationjob.ProjectIDEQ(projectID))
	}
	jobs, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	return jobs, nil
}

func validateLanguages(languages []string) error {
	if len(languages) == 0 {
		return NewValidationError("languages", "at least one target language is required")
	}
	seen := make(map[string]struct{}, len(languages))
	for _, lang := range languages {
		if strings.TrimSpace(lang) == "" {
			return NewValidationError("languages", "language codes must not be blank")
		}
		if _, dup := seen[lang]; dup {
			return NewValidationError("languages", fmt.Sprintf("duplicate language '%s'", lang))
		}
		seen[lang] = struct{}{}
	}
	return nil
}

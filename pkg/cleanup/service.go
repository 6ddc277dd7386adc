// Package cleanup provides data retention for finished localization jobs.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/glocalhq/glocal/ent"
	"github.com/glocalhq/glocal/ent/localizationjob"
)

// Config controls the retention loop.
type Config struct {
	JobRetentionDays int           `envconfig:"JOB_RETENTION_DAYS" default:"30"`
	Interval         time.Duration `envconfig:"CLEANUP_INTERVAL" default:"1h"`
}

// Service periodically deletes terminal jobs (done, partial, error) older
// than the retention window. Variant rows go with them via the cascade.
// Object storage artifacts are expired separately by bucket lifecycle rules.
//
// All operations are idempotent and safe to run from multiple pods.
type Service struct {
	cfg    Config
	client *ent.Client
	logger *slog.Logger

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(client *ent.Client, cfg Config) *Service {
	if client == nil {
		panic("cleanup.NewService: client must not be nil")
	}
	return &Service{
		cfg:    cfg,
		client: client,
		logger: slog.With("component", "cleanup"),
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	s.logger.Info("Cleanup service started",
		"job_retention_days", s.cfg.JobRetentionDays,
		"interval", s.cfg.Interval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	s.logger.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.deleteExpiredJobs(ctx)

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.deleteExpiredJobs(ctx)
		}
	}
}

// DeleteExpiredJobs removes terminal jobs created before the retention
// cutoff and returns how many were deleted.
func (s *Service) DeleteExpiredJobs(ctx context.Context) (int, error) {
	cutoff := time.Now().AddDate(0, 0, -s.cfg.JobRetentionDays)
	return s.client.LocalizationJob.Delete().
		Where(
			localizationjob.StatusIn(
				localizationjob.StatusDone,
				localizationjob.StatusPartial,
				localizationjob.StatusError,
			),
			localizationjob.CreatedAtLT(cutoff),
		).
		Exec(ctx)
}

func (s *Service) deleteExpiredJobs(ctx context.Context) {
	count, err := s.DeleteExpiredJobs(ctx)
	if err != nil {
		s.logger.Error("Retention: job cleanup failed", "error", err)
		return
	}
	if count > 0 {
		s.logger.Info("Retention: deleted expired jobs", "count", count)
	}
}

// Package progress broadcasts per-job pipeline progress over Redis pub/sub.
// Delivery is fire-and-forget: subscribers only see events published after
// they subscribe, and the database stays the authoritative state.
package progress

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// Event statuses as seen by SSE clients.
const (
	StatusQueued     = "queued"
	StatusProcessing = "processing"
	StatusDone       = "done"
	StatusSkipped    = "skipped"
	StatusError      = "error"
)

// JobChannel returns the pub/sub channel for a job's events: job:<job_id>.
func JobChannel(jobID string) string {
	return "job:" + jobID
}

// Event is one progress update. Lang is empty for job-level events; Progress
// is a fraction in [0, 1].
type Event struct {
	JobID     string  `json:"job_id"`
	Stage     string  `json:"stage"`
	Lang      *string `json:"lang"`
	Status    string  `json:"status"`
	Progress  float64 `json:"progress"`
	Message   *string `json:"message"`
	Timestamp string  `json:"timestamp"`
}

// Publisher is the write side of the progress channel.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// Bus is a Redis-backed progress publisher/subscriber.
type Bus struct {
	client *redis.Client
}

// NewBus wraps a Redis client.
func NewBus(client *redis.Client) *Bus {
	return &Bus{client: client}
}

// Publish sends an event to the job's channel. The timestamp is stamped here
// (RFC 3339, UTC) when the caller left it empty.
func (b *Bus) Publish(ctx context.Context, event Event) error {
	if event.Timestamp == "" {
		event.Timestamp = time.Now().UTC().Format(time.RFC3339Nano)
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal progress event: %w", err)
	}
	if err := b.client.Publish(ctx, JobChannel(event.JobID), payload).Err(); err != nil {
		return fmt.Errorf("failed to publish progress event: %w", err)
	}
	return nil
}

// Subscription is a live feed of one job's raw event payloads.
type Subscription struct {
	pubsub *redis.PubSub
	events chan string
}

// Subscribe opens a feed on job:<job_id>. The returned channel closes when
// the subscription is closed or the upstream connection drops.
func (b *Bus) Subscribe(ctx context.Context, jobID string) *Subscription {
	pubsub := b.client.Subscribe(ctx, JobChannel(jobID))
	sub := &Subscription{
		pubsub: pubsub,
		events: make(chan string, 16),
	}
	go func() {
		defer close(sub.events)
		for msg := range pubsub.Channel() {
			select {
			case sub.events <- msg.Payload:
			case <-ctx.Done():
				return
			}
		}
	}()
	return sub
}

// Events returns the receive channel.
func (s *Subscription) Events() <-chan string {
	return s.events
}

// Close cancels the upstream Redis subscription.
func (s *Subscription) Close() error {
	return s.pubsub.Close()
}

// Notify publishes best-effort: failures are logged, never propagated.
// Progress is advisory; a lost event must not fail pipeline work.
func Notify(ctx context.Context, p Publisher, event Event) {
	if p == nil {
		return
	}
	if err := p.Publish(ctx, event); err != nil {
		slog.Warn("Failed to publish progress event",
			"job_id", event.JobID, "stage", event.Stage, "status", event.Status, "error", err)
	}
}

// StageEvent builds a variant-scoped event.
func StageEvent(jobID, stage, lang, status string, fraction float64, message string) Event {
	event := Event{
		JobID:    jobID,
		Stage:    stage,
		Lang:     &lang,
		Status:   status,
		Progress: fraction,
	}
	if message != "" {
		event.Message = &message
	}
	return event
}

// JobEvent builds a job-level event (lang is null on the wire).
func JobEvent(jobID, status string, fraction float64, message string) Event {
	event := Event{
		JobID:    jobID,
		Stage:    "job",
		Status:   status,
		Progress: fraction,
	}
	if message != "" {
		event.Message = &message
	}
	return event
}

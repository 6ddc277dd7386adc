package progress

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupBus(t *testing.T) *Bus {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewBus(client)
}

func waitForEvent(t *testing.T, sub *Subscription) string {
	t.Helper()
	select {
	case payload, ok := <-sub.Events():
		require.True(t, ok, "subscription closed unexpectedly")
		return payload
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for progress event")
		return ""
	}
}

func TestJobChannel(t *testing.T) {
	assert.Equal(t, "job:abc-123", JobChannel("abc-123"))
}

func TestPublishSubscribe(t *testing.T) {
	bus := setupBus(t)
	ctx := context.Background()

	sub := bus.Subscribe(ctx, "job-1")
	defer func() { _ = sub.Close() }()

	event := StageEvent("job-1", "asr", "de", StatusQueued, 0, "")
	require.NoError(t, bus.Publish(ctx, event))

	var got Event
	require.NoError(t, json.Unmarshal([]byte(waitForEvent(t, sub)), &got))
	assert.Equal(t, "job-1", got.JobID)
	assert.Equal(t, "asr", got.Stage)
	require.NotNil(t, got.Lang)
	assert.Equal(t, "de", *got.Lang)
	assert.Equal(t, StatusQueued, got.Status)
	assert.Zero(t, got.Progress)
	assert.Nil(t, got.Message)

	// Timestamp is stamped at publish and parses as RFC 3339.
	_, err := time.Parse(time.RFC3339Nano, got.Timestamp)
	assert.NoError(t, err)
}

func TestPublish_JobLevelEventHasNullLang(t *testing.T) {
	bus := setupBus(t)
	ctx := context.Background()

	sub := bus.Subscribe(ctx, "job-2")
	defer func() { _ = sub.Close() }()

	require.NoError(t, bus.Publish(ctx, JobEvent("job-2", StatusDone, 1.0, "")))

	payload := waitForEvent(t, sub)
	var raw map[string]any
	require.NoError(t, json.Unmarshal([]byte(payload), &raw))
	assert.Contains(t, raw, "lang")
	assert.Nil(t, raw["lang"])
	assert.Equal(t, "job", raw["stage"])
	assert.Equal(t, 1.0, raw["progress"])
}

func TestSubscribe_IsolatedPerJob(t *testing.T) {
	bus := setupBus(t)
	ctx := context.Background()

	sub := bus.Subscribe(ctx, "job-a")
	defer func() { _ = sub.Close() }()

	require.NoError(t, bus.Publish(ctx, JobEvent("job-b", StatusDone, 1.0, "")))
	require.NoError(t, bus.Publish(ctx, JobEvent("job-a", StatusDone, 1.0, "")))

	var got Event
	require.NoError(t, json.Unmarshal([]byte(waitForEvent(t, sub)), &got))
	assert.Equal(t, "job-a", got.JobID, "events for other jobs must not leak across channels")
}

func TestSubscription_CloseEndsFeed(t *testing.T) {
	bus := setupBus(t)
	sub := bus.Subscribe(context.Background(), "job-3")
	require.NoError(t, sub.Close())

	select {
	case _, ok := <-sub.Events():
		assert.False(t, ok, "channel should be closed")
	case <-time.After(2 * time.Second):
		t.Fatal("events channel did not close after Close")
	}
}

func TestNotify_SwallowsPublishErrors(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	bus := NewBus(client)
	mr.Close()

	// Must not panic or propagate.
	Notify(context.Background(), bus, JobEvent("job-4", StatusError, 0, "boom"))
	Notify(context.Background(), nil, JobEvent("job-4", StatusError, 0, "boom"))
	_ = client.Close()
}

func TestStageEvent_Message(t *testing.T) {
	event := StageEvent("j", "tts", "fr", StatusError, 0, "synth failed")
	require.NotNil(t, event.Message)
	assert.Equal(t, "synth failed", *event.Message)
}

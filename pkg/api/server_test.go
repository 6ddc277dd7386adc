package api

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glocalhq/glocal/ent"
	"github.com/glocalhq/glocal/pkg/config"
	"github.com/glocalhq/glocal/pkg/database"
	"github.com/glocalhq/glocal/pkg/progress"
	"github.com/glocalhq/glocal/pkg/services"
	"github.com/glocalhq/glocal/test/util"
)

const testSecret = "test-secret"

type nopBus struct{}

func (nopBus) Publish(context.Context, string, any) error { return nil }

type testServer struct {
	router   *gin.Engine
	client   *ent.Client
	progress *progress.Bus
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	entClient, db := util.SetupTestDatabase(t)

	mr := miniredis.RunT(t)
	redisClient := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = redisClient.Close() })
	progressBus := progress.NewBus(redisClient)

	jobs := services.NewJobService(entClient, nopBus{})
	server := NewServer(jobs, database.NewClientFromEnt(entClient, db), progressBus, config.HTTPConfig{
		JWTSecret:   testSecret,
		CORSOrigins: "*",
	})

	return &testServer{
		router:   server.Router(),
		client:   entClient,
		progress: progressBus,
	}
}

func signToken(t *testing.T, subject string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": subject,
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

func seedAsset(t *testing.T, client *ent.Client) {
	t.Helper()
	_, err := client.Asset.Create().
		SetID("asset-1").
		SetProjectID("proj-1").
		SetType("video").
		SetS3URL("s3://glocal/sources/asset-1/input.mp4").
		Save(context.Background())
	require.NoError(t, err)
}

func doRequest(ts *testServer, method, path, token string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}

func TestAuth(t *testing.T) {
	ts := newTestServer(t)

	// No credentials.
	w := doRequest(ts, http.MethodGet, "/api/v1/jobs", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Garbage token.
	w = doRequest(ts, http.MethodGet, "/api/v1/jobs", "not-a-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Token signed with the wrong key.
	wrong, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "x"}).
		SignedString([]byte("other-secret"))
	require.NoError(t, err)
	w = doRequest(ts, http.MethodGet, "/api/v1/jobs", wrong, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Valid bearer token.
	w = doRequest(ts, http.MethodGet, "/api/v1/jobs", signToken(t, "tester"), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// Query parameter fallback for EventSource clients.
	req := httptest.NewRequest(http.MethodGet, "/api/v1/jobs?token="+signToken(t, "tester"), nil)
	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t)

	w := doRequest(ts, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	assert.Equal(t, "healthy", payload["status"])
}

func TestCreateJob(t *testing.T) {
	ts := newTestServer(t)
	seedAsset(t, ts.client)
	token := signToken(t, "tester")

	w := doRequest(ts, http.MethodPost, "/api/v1/jobs", token, CreateJobRequest{
		ProjectID:     "proj-1",
		SourceAssetID: "asset-1",
		Languages:     []string{"de", "fr"},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var job JobResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &job))
	assert.Equal(t, "queued", job.Status)
	assert.Equal(t, "tester", job.CreatedBy)
	assert.Len(t, job.Variants, 2)
	// Defaults: dub and subs on.
	assert.True(t, job.Options.Dub)
	assert.True(t, job.Options.Subs)

	// Fetch it back.
	w = doRequest(ts, http.MethodGet, "/api/v1/jobs/"+job.ID, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestCreateJob_Invalid(t *testing.T) {
	ts := newTestServer(t)
	seedAsset(t, ts.client)
	token := signToken(t, "tester")

	// Unknown asset.
	w := doRequest(ts, http.MethodPost, "/api/v1/jobs", token, CreateJobRequest{
		ProjectID:     "proj-1",
		SourceAssetID: "ghost",
		Languages:     []string{"de"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Missing required fields.
	w = doRequest(ts, http.MethodPost, "/api/v1/jobs", token, map[string]any{"project_id": "proj-1"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Duplicate languages.
	w = doRequest(ts, http.MethodPost, "/api/v1/jobs", token, CreateJobRequest{
		ProjectID:     "proj-1",
		SourceAssetID: "asset-1",
		Languages:     []string{"de", "de"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetJob_NotFound(t *testing.T) {
	ts := newTestServer(t)

	w := doRequest(ts, http.MethodGet, "/api/v1/jobs/missing", signToken(t, "tester"), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStreamJob(t *testing.T) {
	ts := newTestServer(t)
	seedAsset(t, ts.client)
	token := signToken(t, "tester")

	w := doRequest(ts, http.MethodPost, "/api/v1/jobs", token, CreateJobRequest{
		ProjectID:     "proj-1",
		SourceAssetID: "asset-1",
		Languages:     []string{"de"},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var job JobResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &job))

	httpServer := httptest.NewServer(ts.router)
	defer httpServer.Close()

	resp, err := http.Get(httpServer.URL + "/api/v1/jobs/" + job.ID + "/stream?token=" + token)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	// Give the relay a moment to establish its Redis subscription, then
	// publish an event for this job.
	time.Sleep(100 * time.Millisecond)
	event := progress.StageEvent(job.ID, "asr", "de", progress.StatusProcessing, 0.2, "")
	require.NoError(t, ts.progress.Publish(context.Background(), event))

	scanner := bufio.NewScanner(resp.Body)
	var sawUpdate bool
	var payload string
	for scanner.Scan() {
		line := scanner.Text()
		if line == "event: update" {
			sawUpdate = true
		}
		if sawUpdate && strings.HasPrefix(line, "data: ") {
			payload = strings.TrimPrefix(line, "data: ")
			break
		}
	}
	require.True(t, sawUpdate, "expected an update event on the stream")

	var received progress.Event
	require.NoError(t, json.Unmarshal([]byte(payload), &received))
	assert.Equal(t, job.ID, received.JobID)
	assert.Equal(t, "asr", received.Stage)
	assert.Equal(t, progress.StatusProcessing, received.Status)
	assert.NotEmpty(t, received.Timestamp)
}

func TestStreamJob_UnknownJob(t *testing.T) {
	ts := newTestServer(t)

	w := doRequest(ts, http.MethodGet, "/api/v1/jobs/missing/stream", signToken(t, "tester"), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

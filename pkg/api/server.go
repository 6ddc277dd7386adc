// Package api exposes the REST and SSE surface of the localization service.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/glocalhq/glocal/pkg/config"
	"github.com/glocalhq/glocal/pkg/database"
	"github.com/glocalhq/glocal/pkg/progress"
	"github.com/glocalhq/glocal/pkg/services"
)

// ProgressSubscriber opens a live feed of progress events for one job.
// Satisfied by *progress.Bus.
type ProgressSubscriber interface {
	Subscribe(ctx context.Context, jobID string) *progress.Subscription
}

// Server wires the HTTP handlers to the service layer.
type Server struct {
	jobs       *services.JobService
	db         *database.Client
	progress   ProgressSubscriber
	cfg        config.HTTPConfig
	logger     *slog.Logger
	httpServer *http.Server
}

// NewServer creates the API server.
func NewServer(jobs *services.JobService, db *database.Client, progressBus ProgressSubscriber, cfg config.HTTPConfig) *Server {
	if jobs == nil {
		panic("api.NewServer: jobs must not be nil")
	}
	if db == nil {
		panic("api.NewServer: db must not be nil")
	}
	if progressBus == nil {
		panic("api.NewServer: progressBus must not be nil")
	}
	return &Server{
		jobs:     jobs,
		db:       db,
		progress: progressBus,
		cfg:      cfg,
		logger:   slog.With("component", "api"),
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.New(s.corsConfig()))

	r.GET("/healthz", s.health)

	v1 := r.Group("/api/v1")
	v1.Use(s.requireAuth())
	{
		v1.POST("/jobs", s.createJob)
		v1.GET("/jobs", s.listJobs)
		v1.GET("/jobs/:id", s.getJob)
		v1.GET("/jobs/:id/stream", s.streamJob)
	}

	return r
}

// Start begins serving on addr and blocks until the listener stops.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.httpServer.ListenAndServe()
}

// Shutdown drains in-flight requests. Active SSE streams are cut when ctx
// expires.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) corsConfig() cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization")
	origins := strings.Split(s.cfg.CORSOrigins, ",")
	if len(origins) == 1 && origins[0] == "*" {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	cfg.MaxAge = 12 * time.Hour
	return cfg
}

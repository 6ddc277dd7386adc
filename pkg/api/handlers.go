package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/glocalhq/glocal/pkg/database"
	"github.com/glocalhq/glocal/pkg/pipeline"
	"github.com/glocalhq/glocal/pkg/services"
)

// CreateJobRequest is the POST /api/v1/jobs payload.
type CreateJobRequest struct {
	ProjectID      string            `json:"project_id" binding:"required"`
	SourceAssetID  string            `json:"source_asset_id" binding:"required"`
	Languages      []string          `json:"languages" binding:"required"`
	VoiceProfileID string            `json:"voice_profile_id"`
	Options        *pipeline.Options `json:"options"`
}

func (s *Server) createJob(c *gin.Context) {
	var req CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	options := pipeline.DefaultOptions()
	if req.Options != nil {
		options = *req.Options
	}

	job, err := s.jobs.CreateJob(c.Request.Context(), services.CreateJobInput{
		ProjectID:      req.ProjectID,
		SourceAssetID:  req.SourceAssetID,
		Languages:      req.Languages,
		VoiceProfileID: req.VoiceProfileID,
		Options:        options,
		CreatedBy:      currentUser(c),
	})
	if err != nil {
		s.abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, jobResponse(job))
}

func (s *Server) getJob(c *gin.Context) {
	job, err := s.jobs.GetJob(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobResponse(job))
}

func (s *Server) listJobs(c *gin.Context) {
	jobs, err := s.jobs.ListJobs(c.Request.Context(), c.Query("project_id"), 0)
	if err != nil {
		s.abortWithServiceError(c, err)
		return
	}
	out := make([]JobResponse, len(jobs))
	for i, job := range jobs {
		out[i] = jobResponse(job)
	}
	c.JSON(http.StatusOK, gin.H{"jobs": out})
}

func (s *Server) health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	dbHealth, err := database.Health(ctx, s.db.DB())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": dbHealth,
			"error":    err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": dbHealth,
	})
}

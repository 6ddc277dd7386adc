package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/glocalhq/glocal/pkg/services"
)

// abortWithServiceError maps service-layer errors to HTTP error responses.
func (s *Server) abortWithServiceError(c *gin.Context, err error) {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": validErr.Error()})
		return
	}
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "resource not found"})
		return
	}
	s.logger.Error("unexpected service error", "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}

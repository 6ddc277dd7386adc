package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	// streamKeepAliveInterval is how long the stream may stay silent before a
	// synthetic heartbeat is sent.
	streamKeepAliveInterval = 15 * time.Second

	// streamMaxDuration hard-closes the stream; clients reconnect.
	streamMaxDuration = 30 * time.Minute

	// streamPollInterval bounds disconnect detection latency.
	streamPollInterval = time.Second
)

// streamJob relays the job's progress channel to the client as SSE `update`
// events. The upstream Redis subscription is cancelled on every exit path:
// client disconnect, stream cap, or upstream close.
func (s *Server) streamJob(c *gin.Context) {
	jobID := c.Param("id")
	if _, err := s.jobs.GetJob(c.Request.Context(), jobID); err != nil {
		s.abortWithServiceError(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), streamMaxDuration)
	defer cancel()

	sub := s.progress.Subscribe(ctx, jobID)
	defer sub.Close()

	header := c.Writer.Header()
	header.Set("Content-Type", "text/event-stream")
	header.Set("Cache-Control", "no-cache")
	header.Set("Connection", "keep-alive")
	header.Set("X-Accel-Buffering", "no")
	c.Writer.WriteHeader(http.StatusOK)
	c.Writer.Flush()

	ticker := time.NewTicker(streamPollInterval)
	defer ticker.Stop()

	lastActivity := time.Now()
	for {
		select {
		case <-ctx.Done():
			return

		case payload, ok := <-sub.Events():
			if !ok {
				return
			}
			fmt.Fprintf(c.Writer, "event: update\ndata: %s\n\n", payload)
			c.Writer.Flush()
			lastActivity = time.Now()

		case <-ticker.C:
			if time.Since(lastActivity) >= streamKeepAliveInterval {
				fmt.Fprint(c.Writer, "event: keep-alive\ndata: {}\n\n")
				c.Writer.Flush()
				lastActivity = time.Now()
			}
		}
	}
}

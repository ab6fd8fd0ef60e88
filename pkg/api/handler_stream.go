package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sergeville/Archon/pkg/models"
)

// Stream handles GET /stream: the enriched log feed as an SSE stream.
// Structured events reach this feed too, as the formatted lines the
// collector publishes alongside each detection.
func (s *Server) Stream(c *gin.Context) {
	s.streamTopics(c, models.TopicLogs)
}

// StreamSessions handles GET /stream/sessions: the live agent-session feed.
func (s *Server) StreamSessions(c *gin.Context) {
	s.streamTopics(c, models.TopicClaudeSessions)
}

// streamTopics bridges a bus subscription onto an SSE response. The
// subscription is dropped as soon as the client disconnects.
func (s *Server) streamTopics(c *gin.Context, topics ...string) {
	ctx := c.Request.Context()

	sub, err := s.bus.Subscribe(ctx, topics...)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"detail": "event bus unavailable"})
		return
	}
	defer func() {
		if err := sub.Close(); err != nil {
			slog.Debug("Failed to close stream subscription", "error", err)
		}
	}()

	h := c.Writer.Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	h.Set("X-Accel-Buffering", "no")
	c.Writer.WriteHeader(http.StatusOK)
	c.Writer.Flush()

	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-sub.Messages():
			if !ok {
				return
			}
			if _, err := c.Writer.WriteString("data: " + string(msg.Payload) + "\n\n"); err != nil {
				return
			}
			c.Writer.Flush()
		}
	}
}

package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sergeville/Archon/pkg/services"
)

// CreateSessionRequest is the body of POST /api/sessions.
type CreateSessionRequest struct {
	AgentName string                 `json:"agent_name" binding:"required"`
	ProjectID string                 `json:"project_id"`
	Context   map[string]interface{} `json:"context"`
	Metadata  map[string]interface{} `json:"metadata"`
}

// CreateSession handles POST /api/sessions.
func (s *Server) CreateSession(c *gin.Context) {
	var req CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	session, err := s.svc.Sessions.CreateSession(c.Request.Context(), services.CreateSessionInput{
		Agent:     req.AgentName,
		ProjectID: req.ProjectID,
		Context:   req.Context,
		Metadata:  req.Metadata,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, session)
}

// ListSessions handles GET /api/sessions.
func (s *Server) ListSessions(c *gin.Context) {
	filter := services.ListSessionsFilter{
		Agent:     c.Query("agent"),
		ProjectID: c.Query("project_id"),
		Limit:     intQuery(c, "limit", 0),
	}
	if raw := c.Query("since"); raw != "" {
		since, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "since must be an RFC3339 timestamp"})
			return
		}
		filter.Since = &since
	}

	sessions, err := s.svc.Sessions.ListSessions(c.Request.Context(), filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessions": sessions, "count": len(sessions)})
}

// GetSession handles GET /api/sessions/:id.
func (s *Server) GetSession(c *gin.Context) {
	session, err := s.svc.Sessions.GetSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// UpdateSessionRequest is the body of PUT /api/sessions/:id.
type UpdateSessionRequest struct {
	Summary  string                 `json:"summary" binding:"required"`
	Metadata map[string]interface{} `json:"metadata"`
}

// UpdateSession handles PUT /api/sessions/:id.
func (s *Server) UpdateSession(c *gin.Context) {
	var req UpdateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	session, err := s.svc.Sessions.UpdateSummary(c.Request.Context(), c.Param("id"), req.Summary, req.Metadata)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// EndSessionRequest is the body of POST /api/sessions/:id/end.
type EndSessionRequest struct {
	Summary string `json:"summary"`
}

// EndSession handles POST /api/sessions/:id/end.
func (s *Server) EndSession(c *gin.Context) {
	var req EndSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		respondBindError(c, err)
		return
	}

	session, err := s.svc.Sessions.EndSession(c.Request.Context(), c.Param("id"), req.Summary)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// SummarizeSession handles POST /api/sessions/:id/summarize.
func (s *Server) SummarizeSession(c *gin.Context) {
	summary, err := s.svc.Sessions.SummarizeSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// AddSessionEventRequest is the body of POST /api/sessions/events.
type AddSessionEventRequest struct {
	SessionID string                 `json:"session_id" binding:"required"`
	EventType string                 `json:"event_type" binding:"required"`
	EventData map[string]interface{} `json:"event_data"`
}

// AddSessionEvent handles POST /api/sessions/events.
func (s *Server) AddSessionEvent(c *gin.Context) {
	var req AddSessionEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	event, err := s.svc.Sessions.AddEvent(c.Request.Context(), req.SessionID, req.EventType, req.EventData)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, event)
}

// StoreMessageRequest is the body of POST /api/sessions/messages.
type StoreMessageRequest struct {
	SessionID         string                 `json:"session_id" binding:"required"`
	Role              string                 `json:"role" binding:"required"`
	Message           string                 `json:"message" binding:"required"`
	ToolsUsed         []string               `json:"tools_used"`
	MessageType       string                 `json:"message_type"`
	Subtype           string                 `json:"subtype"`
	Metadata          map[string]interface{} `json:"metadata"`
	GenerateEmbedding *bool                  `json:"generate_embedding"`
}

// StoreMessage handles POST /api/sessions/messages.
func (s *Server) StoreMessage(c *gin.Context) {
	var req StoreMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	generate := true
	if req.GenerateEmbedding != nil {
		generate = *req.GenerateEmbedding
	}

	msg, err := s.svc.Sessions.StoreMessage(c.Request.Context(), services.StoreMessageInput{
		SessionID:         req.SessionID,
		Role:              req.Role,
		Message:           req.Message,
		ToolsUsed:         req.ToolsUsed,
		MessageType:       req.MessageType,
		Subtype:           req.Subtype,
		Metadata:          req.Metadata,
		GenerateEmbedding: generate,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, msg)
}

// ConversationHistory handles GET /api/sessions/:id/messages.
func (s *Server) ConversationHistory(c *gin.Context) {
	messages, err := s.svc.Sessions.ConversationHistory(
		c.Request.Context(), c.Param("id"), c.Query("role"), intQuery(c, "limit", 0))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": messages, "count": len(messages)})
}

// SearchRequest is the shared semantic search body. Threshold is a pointer
// so an explicit 0 (no similarity floor) is distinguishable from absent.
type SearchRequest struct {
	Query     string   `json:"query" binding:"required"`
	Limit     int      `json:"limit"`
	Threshold *float64 `json:"threshold"`
}

// searchThreshold resolves an optional request threshold; absent means the
// service default.
func searchThreshold(t *float64) float64 {
	if t == nil {
		return -1
	}
	return *t
}

// SearchSessions handles POST /api/sessions/search.
func (s *Server) SearchSessions(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	matches, err := s.svc.Sessions.SearchSemantic(c.Request.Context(), req.Query, req.Limit, searchThreshold(req.Threshold))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": matches, "count": len(matches)})
}

// SearchAll handles POST /api/sessions/search/all.
func (s *Server) SearchAll(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	result, err := s.svc.Search.SearchAll(c.Request.Context(), req.Query, req.Limit, searchThreshold(req.Threshold))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// LastSessionForAgent handles GET /api/sessions/agents/:agent/last.
func (s *Server) LastSessionForAgent(c *gin.Context) {
	session, err := s.svc.Sessions.LastSessionForAgent(c.Request.Context(), c.Param("agent"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// RecentSessionsForAgent handles GET /api/sessions/agents/:agent/recent.
func (s *Server) RecentSessionsForAgent(c *gin.Context) {
	days := intQuery(c, "days", 7)
	limit := intQuery(c, "limit", 0)

	cutoff := time.Now().UTC().AddDate(0, 0, -days)
	sessions, err := s.svc.Sessions.ListSessions(c.Request.Context(), services.ListSessionsFilter{
		Agent: c.Param("agent"),
		Since: &cutoff,
		Limit: limit,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessions": sessions, "count": len(sessions)})
}

// intQuery parses an integer query parameter, falling back on absence or
// garbage.
func intQuery(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}

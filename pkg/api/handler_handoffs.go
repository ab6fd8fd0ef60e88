package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sergeville/Archon/pkg/services"
)

// CreateHandoffRequest is the body of POST /api/handoffs.
type CreateHandoffRequest struct {
	SessionID string                 `json:"session_id" binding:"required"`
	FromAgent string                 `json:"from_agent" binding:"required"`
	ToAgent   string                 `json:"to_agent" binding:"required"`
	Context   map[string]interface{} `json:"context"`
	Notes     string                 `json:"notes"`
	Metadata  map[string]interface{} `json:"metadata"`
}

// CreateHandoff handles POST /api/handoffs.
func (s *Server) CreateHandoff(c *gin.Context) {
	var req CreateHandoffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	handoff, err := s.svc.Handoffs.Create(c.Request.Context(), services.CreateHandoffInput{
		SessionID: req.SessionID,
		FromAgent: req.FromAgent,
		ToAgent:   req.ToAgent,
		Context:   req.Context,
		Notes:     req.Notes,
		Metadata:  req.Metadata,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, handoff)
}

// ListHandoffs handles GET /api/handoffs.
func (s *Server) ListHandoffs(c *gin.Context) {
	handoffs, err := s.svc.Handoffs.List(c.Request.Context(), services.ListHandoffsFilter{
		SessionID: c.Query("session_id"),
		Agent:     c.Query("agent"),
		Status:    c.Query("status"),
		Limit:     intQuery(c, "limit", 0),
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"handoffs": handoffs, "count": len(handoffs)})
}

// ListPendingHandoffs handles GET /api/handoffs/pending/:agent.
func (s *Server) ListPendingHandoffs(c *gin.Context) {
	handoffs, err := s.svc.Handoffs.ListPending(c.Request.Context(), c.Param("agent"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"handoffs": handoffs, "count": len(handoffs)})
}

// GetHandoff handles GET /api/handoffs/:id.
func (s *Server) GetHandoff(c *gin.Context) {
	handoff, err := s.svc.Handoffs.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, handoff)
}

// AcceptHandoff handles POST /api/handoffs/:id/accept.
func (s *Server) AcceptHandoff(c *gin.Context) {
	handoff, err := s.svc.Handoffs.Accept(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, handoff)
}

// CompleteHandoff handles POST /api/handoffs/:id/complete.
func (s *Server) CompleteHandoff(c *gin.Context) {
	handoff, err := s.svc.Handoffs.Complete(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, handoff)
}

// RejectHandoff handles POST /api/handoffs/:id/reject.
func (s *Server) RejectHandoff(c *gin.Context) {
	handoff, err := s.svc.Handoffs.Reject(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, handoff)
}

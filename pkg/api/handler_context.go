package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sergeville/Archon/pkg/services"
)

// SetContextRequest is the body of PUT /api/context/:key.
type SetContextRequest struct {
	Value     map[string]interface{} `json:"value" binding:"required"`
	SetBy     string                 `json:"set_by" binding:"required"`
	SessionID string                 `json:"session_id"`
	ExpiresAt *time.Time             `json:"expires_at"`
}

// SetContext handles PUT /api/context/:key.
func (s *Server) SetContext(c *gin.Context) {
	var req SetContextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	entry, err := s.svc.Context.Set(c.Request.Context(), services.SetContextInput{
		Key:       c.Param("key"),
		Value:     req.Value,
		SetBy:     req.SetBy,
		SessionID: req.SessionID,
		ExpiresAt: req.ExpiresAt,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// GetContext handles GET /api/context/:key.
func (s *Server) GetContext(c *gin.Context) {
	entry, err := s.svc.Context.Get(c.Request.Context(), c.Param("key"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// ListContext handles GET /api/context.
func (s *Server) ListContext(c *gin.Context) {
	entries, err := s.svc.Context.List(c.Request.Context(), c.Query("prefix"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries, "count": len(entries)})
}

// DeleteContext handles DELETE /api/context/:key.
func (s *Server) DeleteContext(c *gin.Context) {
	deleted, err := s.svc.Context.Delete(c.Request.Context(), c.Param("key"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

// ContextHistory handles GET /api/context/:key/history.
func (s *Server) ContextHistory(c *gin.Context) {
	records, err := s.svc.Context.History(c.Request.Context(), c.Param("key"), intQuery(c, "limit", 0))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"history": records, "count": len(records)})
}

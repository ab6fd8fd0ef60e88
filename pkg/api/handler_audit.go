package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sergeville/Archon/pkg/services"
)

// AppendAuditRequest is the body of POST /api/audit.
type AppendAuditRequest struct {
	Source    string                 `json:"source" binding:"required"`
	Action    string                 `json:"action" binding:"required"`
	Agent     string                 `json:"agent"`
	Target    string                 `json:"target"`
	RiskLevel string                 `json:"risk_level"`
	Outcome   string                 `json:"outcome"`
	Metadata  map[string]interface{} `json:"metadata"`
	SessionID string                 `json:"session_id"`
}

// AppendAudit handles POST /api/audit.
func (s *Server) AppendAudit(c *gin.Context) {
	var req AppendAuditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	entry, err := s.svc.Audit.Append(c.Request.Context(), services.AppendAuditInput{
		Source:    req.Source,
		Action:    req.Action,
		Agent:     req.Agent,
		Target:    req.Target,
		RiskLevel: req.RiskLevel,
		Outcome:   req.Outcome,
		Metadata:  req.Metadata,
		SessionID: req.SessionID,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// QueryAudit handles GET /api/audit.
func (s *Server) QueryAudit(c *gin.Context) {
	entries, err := s.svc.Audit.Query(c.Request.Context(), services.QueryAuditFilter{
		Source:    c.Query("source"),
		Agent:     c.Query("agent"),
		Action:    c.Query("action"),
		SessionID: c.Query("session_id"),
		Limit:     intQuery(c, "limit", 0),
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries, "count": len(entries)})
}

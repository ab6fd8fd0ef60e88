package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sergeville/Archon/pkg/services"
)

// CouncilEvaluateRequest is the body of POST /api/council/evaluate.
type CouncilEvaluateRequest struct {
	WorkOrderID string `json:"work_order_id" binding:"required"`
	RiskLevel   string `json:"risk_level" binding:"required"`
	Notes       string `json:"notes"`
}

// CouncilEvaluate handles POST /api/council/evaluate.
func (s *Server) CouncilEvaluate(c *gin.Context) {
	var req CouncilEvaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	decision, err := s.svc.Council.Evaluate(c.Request.Context(), req.WorkOrderID, req.RiskLevel, req.Notes)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, decision)
}

// CouncilQueue handles GET /api/council/queue.
func (s *Server) CouncilQueue(c *gin.Context) {
	queue, err := s.svc.Council.Queue(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"queue": queue, "count": len(queue)})
}

// CouncilResolveRequest is the optional body of the approve/reject routes.
type CouncilResolveRequest struct {
	Notes string `json:"notes"`
}

// CouncilApprove handles POST /api/council/queue/:id/approve.
func (s *Server) CouncilApprove(c *gin.Context) {
	var req CouncilResolveRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		respondBindError(c, err)
		return
	}

	decision, err := s.svc.Council.Approve(c.Request.Context(), c.Param("id"), req.Notes)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, decision)
}

// CouncilReject handles POST /api/council/queue/:id/reject.
func (s *Server) CouncilReject(c *gin.Context) {
	var req CouncilResolveRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		respondBindError(c, err)
		return
	}

	decision, err := s.svc.Council.Reject(c.Request.Context(), c.Param("id"), req.Notes)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, decision)
}

// CouncilDecisions handles GET /api/council/decisions.
func (s *Server) CouncilDecisions(c *gin.Context) {
	decisions, err := s.svc.Council.ListDecisions(c.Request.Context(), services.ListDecisionsFilter{
		WorkOrderID: c.Query("work_order_id"),
		Decision:    c.Query("decision"),
		Limit:       intQuery(c, "limit", 0),
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"decisions": decisions, "count": len(decisions)})
}

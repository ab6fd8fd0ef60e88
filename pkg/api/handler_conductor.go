package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sergeville/Archon/pkg/services"
)

// CreateConductorLogRequest is the body of POST /api/conductor-log.
type CreateConductorLogRequest struct {
	WorkOrderID      string                 `json:"work_order_id" binding:"required"`
	MissionID        string                 `json:"mission_id"`
	ConductorAgent   string                 `json:"conductor_agent" binding:"required"`
	DelegationTarget string                 `json:"delegation_target" binding:"required"`
	Reasoning        string                 `json:"reasoning"`
	InjectedContext  map[string]interface{} `json:"injected_context"`
	DecisionFactors  []string               `json:"decision_factors"`
	Confidence       *float64               `json:"confidence"`
}

// CreateConductorLog handles POST /api/conductor-log.
func (s *Server) CreateConductorLog(c *gin.Context) {
	var req CreateConductorLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	record, err := s.svc.Conductor.Create(c.Request.Context(), services.CreateConductorLogInput{
		WorkOrderID:      req.WorkOrderID,
		MissionID:        req.MissionID,
		ConductorAgent:   req.ConductorAgent,
		DelegationTarget: req.DelegationTarget,
		Reasoning:        req.Reasoning,
		InjectedContext:  req.InjectedContext,
		DecisionFactors:  req.DecisionFactors,
		Confidence:       req.Confidence,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}

// UpdateConductorOutcomeRequest is the body of
// PATCH /api/conductor-log/:id/outcome.
type UpdateConductorOutcomeRequest struct {
	Outcome string `json:"outcome" binding:"required"`
	Notes   string `json:"notes"`
}

// UpdateConductorOutcome handles PATCH /api/conductor-log/:id/outcome.
func (s *Server) UpdateConductorOutcome(c *gin.Context) {
	var req UpdateConductorOutcomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	record, err := s.svc.Conductor.UpdateOutcome(c.Request.Context(), c.Param("id"), req.Outcome, req.Notes)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

// GetConductorLog handles GET /api/conductor-log/:id.
func (s *Server) GetConductorLog(c *gin.Context) {
	record, err := s.svc.Conductor.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

// ConductorLogsByWorkOrder handles GET /api/conductor-log/work-order/:id.
func (s *Server) ConductorLogsByWorkOrder(c *gin.Context) {
	records, summary, err := s.svc.Conductor.ListByWorkOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"logs": records, "summary": summary})
}

// ConductorStats handles GET /api/conductor-log/stats.
func (s *Server) ConductorStats(c *gin.Context) {
	stats, err := s.svc.Conductor.Stats(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stats": stats})
}

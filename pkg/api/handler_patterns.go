package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sergeville/Archon/pkg/services"
)

// HarvestPatternRequest is the body of POST /api/patterns.
type HarvestPatternRequest struct {
	PatternType string                 `json:"pattern_type" binding:"required"`
	Domain      string                 `json:"domain" binding:"required"`
	Description string                 `json:"description" binding:"required"`
	Action      string                 `json:"action" binding:"required"`
	Outcome     string                 `json:"outcome"`
	Context     map[string]interface{} `json:"context"`
	Metadata    map[string]interface{} `json:"metadata"`
	CreatedBy   string                 `json:"created_by"`
}

// HarvestPattern handles POST /api/patterns.
func (s *Server) HarvestPattern(c *gin.Context) {
	var req HarvestPatternRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	pattern, err := s.svc.Patterns.HarvestPattern(c.Request.Context(), services.HarvestPatternInput{
		PatternType: req.PatternType,
		Domain:      req.Domain,
		Description: req.Description,
		Action:      req.Action,
		Outcome:     req.Outcome,
		Context:     req.Context,
		Metadata:    req.Metadata,
		CreatedBy:   req.CreatedBy,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, pattern)
}

// ListPatterns handles GET /api/patterns.
func (s *Server) ListPatterns(c *gin.Context) {
	patterns, err := s.svc.Patterns.ListPatterns(
		c.Request.Context(), c.Query("pattern_type"), c.Query("domain"), intQuery(c, "limit", 0))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"patterns": patterns, "count": len(patterns)})
}

// GetPattern handles GET /api/patterns/:id.
func (s *Server) GetPattern(c *gin.Context) {
	stats, err := s.svc.Patterns.GetWithStats(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// SearchPatternsRequest is the body of POST /api/patterns/search.
type SearchPatternsRequest struct {
	Query     string   `json:"query" binding:"required"`
	Domain    string   `json:"domain"`
	Limit     int      `json:"limit"`
	Threshold *float64 `json:"threshold"`
}

// SearchPatterns handles POST /api/patterns/search.
func (s *Server) SearchPatterns(c *gin.Context) {
	var req SearchPatternsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	matches, err := s.svc.Patterns.SearchSemantic(
		c.Request.Context(), req.Query, req.Domain, req.Limit, searchThreshold(req.Threshold))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": matches, "count": len(matches)})
}

// RecordObservationRequest is the body of POST /api/patterns/observations.
type RecordObservationRequest struct {
	PatternID     string `json:"pattern_id" binding:"required"`
	SessionID     string `json:"session_id"`
	SuccessRating int    `json:"success_rating"`
	Feedback      string `json:"feedback"`
}

// RecordObservation handles POST /api/patterns/observations.
func (s *Server) RecordObservation(c *gin.Context) {
	var req RecordObservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	obs, err := s.svc.Patterns.RecordObservation(
		c.Request.Context(), req.PatternID, req.SessionID, req.SuccessRating, req.Feedback)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, obs)
}

// ExtractPatterns handles POST /api/patterns/extract/:session_id.
func (s *Server) ExtractPatterns(c *gin.Context) {
	patterns, err := s.svc.Patterns.ExtractFromSession(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"patterns": patterns, "count": len(patterns)})
}

// PatternStats handles GET /api/patterns/stats.
func (s *Server) PatternStats(c *gin.Context) {
	stats, err := s.svc.Patterns.Stats(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

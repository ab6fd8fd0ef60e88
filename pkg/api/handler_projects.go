package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sergeville/Archon/pkg/services"
)

// PromotePlanRequest is the body of POST /api/projects/promote-plan.
// Exactly one of plan_content and plan_url must be provided.
type PromotePlanRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	PlanContent string `json:"plan_content"`
	PlanURL     string `json:"plan_url"`
}

// PromotePlan handles POST /api/projects/promote-plan.
func (s *Server) PromotePlan(c *gin.Context) {
	var req PromotePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	if (req.PlanContent == "") == (req.PlanURL == "") {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "exactly one of plan_content and plan_url is required"})
		return
	}

	content := req.PlanContent
	if req.PlanURL != "" {
		fetched, err := s.plans.Fetch(c.Request.Context(), req.PlanURL)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"detail": "failed to fetch plan: " + err.Error()})
			return
		}
		content = fetched
	}

	result, err := s.svc.Projects.PromotePlan(c.Request.Context(), services.PromotePlanInput{
		Title:       req.Title,
		Description: req.Description,
		PlanContent: content,
	})
	if err != nil {
		var promoErr *services.PromotionError
		if errors.As(err, &promoErr) {
			// The project exists; return its ID so the caller can retry.
			c.JSON(http.StatusBadGateway, gin.H{
				"detail":     promoErr.Error(),
				"project_id": promoErr.ProjectID,
			})
			return
		}
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// ListProjects handles GET /api/projects.
func (s *Server) ListProjects(c *gin.Context) {
	includeArchived := c.Query("include_archived") == "true"
	projects, err := s.svc.Projects.ListProjects(c.Request.Context(), includeArchived)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"projects": projects, "count": len(projects)})
}

// GetProject handles GET /api/projects/:id.
func (s *Server) GetProject(c *gin.Context) {
	project, err := s.svc.Projects.GetProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

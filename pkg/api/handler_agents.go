package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sergeville/Archon/pkg/services"
)

// RegisterAgentRequest is the body of POST /api/agents/register.
type RegisterAgentRequest struct {
	Name         string                 `json:"name" binding:"required"`
	Capabilities []string               `json:"capabilities"`
	Metadata     map[string]interface{} `json:"metadata"`
}

// RegisterAgent handles POST /api/agents/register.
func (s *Server) RegisterAgent(c *gin.Context) {
	var req RegisterAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	agent, err := s.svc.Agents.Register(c.Request.Context(), services.RegisterAgentInput{
		Name:         req.Name,
		Capabilities: req.Capabilities,
		Metadata:     req.Metadata,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, agent)
}

// ListAgents handles GET /api/agents.
func (s *Server) ListAgents(c *gin.Context) {
	agents, err := s.svc.Agents.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"agents": agents, "count": len(agents)})
}

// GetAgent handles GET /api/agents/:name.
func (s *Server) GetAgent(c *gin.Context) {
	agent, err := s.svc.Agents.Get(c.Request.Context(), c.Param("name"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, agent)
}

// AgentHeartbeat handles POST /api/agents/:name/heartbeat.
func (s *Server) AgentHeartbeat(c *gin.Context) {
	agent, err := s.svc.Agents.Heartbeat(c.Request.Context(), c.Param("name"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, agent)
}

// DeactivateAgent handles POST /api/agents/:name/deactivate.
func (s *Server) DeactivateAgent(c *gin.Context) {
	agent, err := s.svc.Agents.Deactivate(c.Request.Context(), c.Param("name"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, agent)
}

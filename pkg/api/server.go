// Package api serves the HTTP surface: the JSON API and the SSE streams.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sergeville/Archon/pkg/bus"
	"github.com/sergeville/Archon/pkg/database"
	"github.com/sergeville/Archon/pkg/embeddings"
	"github.com/sergeville/Archon/pkg/plans"
	"github.com/sergeville/Archon/pkg/services"
	"github.com/sergeville/Archon/pkg/version"
	"github.com/sergeville/Archon/pkg/whiteboard"
)

// Services bundles the domain services the server exposes.
type Services struct {
	Sessions  *services.SessionService
	Patterns  *services.PatternService
	Agents    *services.AgentService
	Context   *services.ContextService
	Handoffs  *services.HandoffService
	Council   *services.CouncilService
	Conductor *services.ConductorService
	Audit     *services.AuditService
	Projects  *services.ProjectService
	Search    *services.SearchService
}

// Server is the HTTP server over the coordination layer.
type Server struct {
	db         *database.Client
	bus        bus.Bus
	embeddings *embeddings.Gateway
	whiteboard *whiteboard.Service
	plans      *plans.Fetcher
	svc        Services

	httpServer *http.Server
}

// NewServer creates a new API server.
func NewServer(
	db *database.Client,
	eventBus bus.Bus,
	gateway *embeddings.Gateway,
	board *whiteboard.Service,
	fetcher *plans.Fetcher,
	svc Services,
) *Server {
	return &Server{
		db:         db,
		bus:        eventBus,
		embeddings: gateway,
		whiteboard: board,
		plans:      fetcher,
		svc:        svc,
	}
}

// RegisterRoutes attaches all endpoints to the engine.
func (s *Server) RegisterRoutes(r *gin.Engine) {
	r.Use(securityHeaders())

	api := r.Group("/api")
	{
		api.GET("/health", s.Health)

		sessions := api.Group("/sessions")
		{
			sessions.POST("", s.CreateSession)
			sessions.GET("", s.ListSessions)
			sessions.POST("/events", s.AddSessionEvent)
			sessions.POST("/messages", s.StoreMessage)
			sessions.POST("/search", s.SearchSessions)
			sessions.POST("/search/all", s.SearchAll)
			sessions.GET("/agents/:agent/last", s.LastSessionForAgent)
			sessions.GET("/agents/:agent/recent", s.RecentSessionsForAgent)
			sessions.GET("/:id", s.GetSession)
			sessions.PUT("/:id", s.UpdateSession)
			sessions.POST("/:id/end", s.EndSession)
			sessions.POST("/:id/summarize", s.SummarizeSession)
			sessions.GET("/:id/messages", s.ConversationHistory)
		}

		patterns := api.Group("/patterns")
		{
			patterns.POST("", s.HarvestPattern)
			patterns.GET("", s.ListPatterns)
			patterns.POST("/search", s.SearchPatterns)
			patterns.POST("/observations", s.RecordObservation)
			patterns.POST("/extract/:session_id", s.ExtractPatterns)
			patterns.GET("/stats", s.PatternStats)
			patterns.GET("/:id", s.GetPattern)
		}

		agents := api.Group("/agents")
		{
			agents.POST("/register", s.RegisterAgent)
			agents.GET("", s.ListAgents)
			agents.GET("/:name", s.GetAgent)
			agents.POST("/:name/heartbeat", s.AgentHeartbeat)
			agents.POST("/:name/deactivate", s.DeactivateAgent)
		}

		contextBoard := api.Group("/context")
		{
			contextBoard.GET("", s.ListContext)
			contextBoard.PUT("/:key", s.SetContext)
			contextBoard.GET("/:key", s.GetContext)
			contextBoard.DELETE("/:key", s.DeleteContext)
			contextBoard.GET("/:key/history", s.ContextHistory)
		}

		handoffs := api.Group("/handoffs")
		{
			handoffs.POST("", s.CreateHandoff)
			handoffs.GET("", s.ListHandoffs)
			handoffs.GET("/pending/:agent", s.ListPendingHandoffs)
			handoffs.GET("/:id", s.GetHandoff)
			handoffs.POST("/:id/accept", s.AcceptHandoff)
			handoffs.POST("/:id/complete", s.CompleteHandoff)
			handoffs.POST("/:id/reject", s.RejectHandoff)
		}

		council := api.Group("/council")
		{
			council.POST("/evaluate", s.CouncilEvaluate)
			council.GET("/queue", s.CouncilQueue)
			council.POST("/queue/:id/approve", s.CouncilApprove)
			council.POST("/queue/:id/reject", s.CouncilReject)
			council.GET("/decisions", s.CouncilDecisions)
		}

		conductor := api.Group("/conductor-log")
		{
			conductor.POST("", s.CreateConductorLog)
			conductor.GET("/stats", s.ConductorStats)
			conductor.GET("/work-order/:id", s.ConductorLogsByWorkOrder)
			conductor.GET("/:id", s.GetConductorLog)
			conductor.PATCH("/:id/outcome", s.UpdateConductorOutcome)
		}

		audit := api.Group("/audit")
		{
			audit.POST("", s.AppendAudit)
			audit.GET("", s.QueryAudit)
		}

		board := api.Group("/whiteboard")
		{
			board.GET("", s.Whiteboard)
			board.GET("/active-sessions", s.WhiteboardActiveSessions)
			board.GET("/active-tasks", s.WhiteboardActiveTasks)
			board.GET("/all-tasks", s.WhiteboardAllTasks)
			board.GET("/recent-events", s.WhiteboardRecentEvents)
			board.POST("/refresh", s.WhiteboardRefresh)
		}

		projects := api.Group("/projects")
		{
			projects.POST("/promote-plan", s.PromotePlan)
			projects.GET("", s.ListProjects)
			projects.GET("/:id", s.GetProject)
		}
	}

	r.GET("/stream", s.Stream)
	r.GET("/stream/sessions", s.StreamSessions)
}

// Start serves on addr and blocks until the server stops.
func (s *Server) Start(addr string) error {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	s.RegisterRoutes(engine)

	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.httpServer.ListenAndServe()
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// Health reports liveness plus per-dependency readiness.
func (s *Server) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	status := http.StatusOK
	overall := "healthy"

	dbHealth, dbErr := database.Health(ctx, s.db.DB())
	if dbErr != nil {
		status = http.StatusServiceUnavailable
		overall = "unhealthy"
	}

	busStatus := "healthy"
	if err := s.bus.Ping(ctx); err != nil {
		busStatus = "unhealthy"
		status = http.StatusServiceUnavailable
		overall = "unhealthy"
	}

	embeddingsStatus := "disabled"
	if s.embeddings.Enabled() {
		embeddingsStatus = "configured"
	}

	c.JSON(status, gin.H{
		"status":     overall,
		"version":    version.Full(),
		"database":   dbHealth,
		"bus":        gin.H{"status": busStatus},
		"embeddings": gin.H{"status": embeddingsStatus},
	})
}

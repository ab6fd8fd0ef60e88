package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Whiteboard handles GET /api/whiteboard.
func (s *Server) Whiteboard(c *gin.Context) {
	c.JSON(http.StatusOK, s.whiteboard.Snapshot())
}

// WhiteboardActiveSessions handles GET /api/whiteboard/active-sessions.
func (s *Server) WhiteboardActiveSessions(c *gin.Context) {
	doc := s.whiteboard.Snapshot()
	c.JSON(http.StatusOK, gin.H{"active_sessions": doc.ActiveSessions, "count": len(doc.ActiveSessions)})
}

// WhiteboardActiveTasks handles GET /api/whiteboard/active-tasks.
func (s *Server) WhiteboardActiveTasks(c *gin.Context) {
	doc := s.whiteboard.Snapshot()
	c.JSON(http.StatusOK, gin.H{"active_tasks": doc.ActiveTasks, "count": len(doc.ActiveTasks)})
}

// WhiteboardAllTasks handles GET /api/whiteboard/all-tasks.
func (s *Server) WhiteboardAllTasks(c *gin.Context) {
	tasks, err := s.svc.Projects.ListAllTasks(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tasks": tasks, "count": len(tasks)})
}

// WhiteboardRecentEvents handles GET /api/whiteboard/recent-events.
func (s *Server) WhiteboardRecentEvents(c *gin.Context) {
	events := s.whiteboard.RecentEvents(intQuery(c, "limit", 0))
	c.JSON(http.StatusOK, gin.H{"recent_events": events, "count": len(events)})
}

// WhiteboardRefresh handles POST /api/whiteboard/refresh.
func (s *Server) WhiteboardRefresh(c *gin.Context) {
	doc, err := s.whiteboard.Refresh(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

package whiteboard

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/sergeville/Archon/ent"
	"github.com/sergeville/Archon/ent/session"
	"github.com/sergeville/Archon/ent/task"
	"github.com/sergeville/Archon/pkg/models"
)

// docsKey names the whiteboard document inside the project docs column.
const docsKey = "whiteboard"

// Service owns the in-memory whiteboard document and its persisted copy.
// Mutation happens only through Apply and Refresh, both serialized by mu;
// readers get snapshots.
type Service struct {
	client    *ent.Client
	projectID string

	mu  sync.RWMutex
	doc *models.WhiteboardDoc
}

// NewService creates a whiteboard service bound to the configured project.
func NewService(client *ent.Client, projectID string) *Service {
	return &Service{
		client:    client,
		projectID: projectID,
		doc:       models.NewWhiteboardDoc(),
	}
}

// Load restores the persisted document, if any. Called once at startup.
func (s *Service) Load(ctx context.Context) error {
	proj, err := s.client.Project.Get(ctx, s.projectID)
	if err != nil {
		if ent.IsNotFound(err) {
			slog.Info("Whiteboard project not found, starting empty", "project_id", s.projectID)
			return nil
		}
		return fmt.Errorf("failed to load whiteboard project: %w", err)
	}

	raw, ok := proj.Docs[docsKey]
	if !ok {
		return nil
	}

	data, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("failed to re-encode whiteboard doc: %w", err)
	}
	doc := models.NewWhiteboardDoc()
	if err := json.Unmarshal(data, doc); err != nil {
		return fmt.Errorf("failed to decode whiteboard doc: %w", err)
	}

	s.mu.Lock()
	s.doc = doc
	s.mu.Unlock()

	slog.Info("Whiteboard loaded",
		"active_sessions", len(doc.ActiveSessions),
		"active_tasks", len(doc.ActiveTasks),
		"recent_events", len(doc.RecentEvents))
	return nil
}

// Apply reduces one event into the document and persists the result.
func (s *Service) Apply(ctx context.Context, event models.Event) error {
	s.mu.Lock()
	Reduce(s.doc, event)
	s.doc.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	snapshot := s.cloneLocked()
	s.mu.Unlock()

	return s.persist(ctx, snapshot)
}

// Refresh rebuilds the active lists from store state: sessions with no end
// timestamp and unarchived tasks in status doing. The recent-events ring is
// kept as is.
func (s *Service) Refresh(ctx context.Context) (*models.WhiteboardDoc, error) {
	sessions, err := s.client.Session.Query().
		Where(session.EndedAtIsNil()).
		Order(ent.Desc(session.FieldStartedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query active sessions: %w", err)
	}

	tasks, err := s.client.Task.Query().
		Where(task.StatusEQ(task.StatusDoing), task.Archived(false)).
		Order(ent.Asc(task.FieldTaskOrder)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query doing tasks: %w", err)
	}

	activeSessions := make([]models.ActiveSession, 0, len(sessions))
	for _, sess := range sessions {
		activeSessions = append(activeSessions, models.ActiveSession{
			SessionID: sess.ID,
			Agent:     sess.AgentName,
			StartedAt: sess.StartedAt.UTC().Format(time.RFC3339),
		})
	}

	activeTasks := make([]models.ActiveTask, 0, len(tasks))
	for _, t := range tasks {
		activeTasks = append(activeTasks, models.ActiveTask{
			TaskID:   t.ID,
			Title:    t.Title,
			Status:   string(t.Status),
			Assignee: t.Assignee,
		})
	}

	s.mu.Lock()
	s.doc.ActiveSessions = activeSessions
	s.doc.ActiveTasks = activeTasks
	s.doc.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	snapshot := s.cloneLocked()
	s.mu.Unlock()

	if err := s.persist(ctx, snapshot); err != nil {
		return nil, err
	}
	slog.Info("Whiteboard refreshed",
		"active_sessions", len(activeSessions),
		"active_tasks", len(activeTasks))
	return snapshot, nil
}

// Snapshot returns a copy of the current document.
func (s *Service) Snapshot() *models.WhiteboardDoc {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cloneLocked()
}

// RecentEvents returns up to limit events, most recent first.
func (s *Service) RecentEvents(limit int) []models.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if limit <= 0 || limit > len(s.doc.RecentEvents) {
		limit = len(s.doc.RecentEvents)
	}
	out := make([]models.Event, limit)
	copy(out, s.doc.RecentEvents[:limit])
	return out
}

func (s *Service) cloneLocked() *models.WhiteboardDoc {
	clone := &models.WhiteboardDoc{
		ActiveSessions: make([]models.ActiveSession, len(s.doc.ActiveSessions)),
		ActiveTasks:    make([]models.ActiveTask, len(s.doc.ActiveTasks)),
		RecentEvents:   make([]models.Event, len(s.doc.RecentEvents)),
		UpdatedAt:      s.doc.UpdatedAt,
	}
	copy(clone.ActiveSessions, s.doc.ActiveSessions)
	copy(clone.ActiveTasks, s.doc.ActiveTasks)
	copy(clone.RecentEvents, s.doc.RecentEvents)
	return clone
}

// persist writes the document under docs["whiteboard"] of the configured
// project. A missing project downgrades to a debug log: the board still
// serves reads from memory.
func (s *Service) persist(ctx context.Context, doc *models.WhiteboardDoc) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode whiteboard doc: %w", err)
	}
	var asMap map[string]interface{}
	if err := json.Unmarshal(data, &asMap); err != nil {
		return fmt.Errorf("failed to decode whiteboard doc: %w", err)
	}

	proj, err := s.client.Project.Get(ctx, s.projectID)
	if err != nil {
		if ent.IsNotFound(err) {
			slog.Debug("Whiteboard project missing, skipping persist", "project_id", s.projectID)
			return nil
		}
		return fmt.Errorf("failed to load whiteboard project: %w", err)
	}

	docs := proj.Docs
	if docs == nil {
		docs = map[string]interface{}{}
	}
	docs[docsKey] = asMap

	if _, err := s.client.Project.UpdateOneID(s.projectID).
		SetDocs(docs).
		Save(ctx); err != nil {
		return fmt.Errorf("failed to persist whiteboard doc: %w", err)
	}
	return nil
}

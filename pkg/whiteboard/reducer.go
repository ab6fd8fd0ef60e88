// Package whiteboard maintains the live view of what is currently happening
// across all agents: active sessions, in-progress tasks, and a bounded ring
// of recent events. The document is mutated only through the reducer.
package whiteboard

import (
	"log/slog"

	"github.com/sergeville/Archon/pkg/models"
)

// Reduce applies one event to the document. It is deterministic: the same
// document and event always produce the same result. Unknown event types
// still land in the recent-events ring.
func Reduce(doc *models.WhiteboardDoc, event models.Event) {
	switch event.EventType {
	case "task.created":
		if taskStatus(event) == "doing" {
			upsertTask(doc, event)
		}
	case "task.status_changed":
		if taskStatus(event) == "doing" {
			upsertTask(doc, event)
		} else {
			removeTask(doc, taskID(event))
		}
	case "task.assigned":
		assignTask(doc, event)
	case "session.started":
		addSession(doc, event)
	case "session.ended":
		removeSession(doc, sessionID(event))
	}

	pushRecent(doc, event)
}

func taskID(event models.Event) string {
	if id := event.DataString("task_id"); id != "" {
		return id
	}
	return event.EntityID
}

func sessionID(event models.Event) string {
	if id := event.DataString("session_id"); id != "" {
		return id
	}
	return event.EntityID
}

// taskStatus reads the effective status: new_status for transitions, else
// status.
func taskStatus(event models.Event) string {
	if s := event.DataString("new_status"); s != "" {
		return s
	}
	return event.DataString("status")
}

// upsertTask inserts or updates by ID; a task ID appears at most once.
func upsertTask(doc *models.WhiteboardDoc, event models.Event) {
	id := taskID(event)
	if id == "" {
		return
	}

	task := models.ActiveTask{
		TaskID:   id,
		Title:    event.DataString("title"),
		Status:   "doing",
		Assignee: event.DataString("assignee"),
	}

	for i, existing := range doc.ActiveTasks {
		if existing.TaskID == id {
			if task.Title == "" {
				task.Title = existing.Title
			}
			if task.Assignee == "" {
				task.Assignee = existing.Assignee
			}
			doc.ActiveTasks[i] = task
			slog.Debug("Updated task on whiteboard", "task_id", id)
			return
		}
	}

	doc.ActiveTasks = append(doc.ActiveTasks, task)
	slog.Info("Added task to whiteboard", "task_id", id)
}

func removeTask(doc *models.WhiteboardDoc, id string) {
	if id == "" {
		return
	}
	kept := doc.ActiveTasks[:0]
	for _, t := range doc.ActiveTasks {
		if t.TaskID != id {
			kept = append(kept, t)
		}
	}
	if len(kept) != len(doc.ActiveTasks) {
		slog.Info("Removed task from whiteboard", "task_id", id)
	}
	doc.ActiveTasks = kept
}

// assignTask updates the assignee of a task already on the board.
func assignTask(doc *models.WhiteboardDoc, event models.Event) {
	id := taskID(event)
	assignee := event.DataString("assignee")
	if assignee == "" {
		assignee = event.Agent
	}
	for i, t := range doc.ActiveTasks {
		if t.TaskID == id {
			doc.ActiveTasks[i].Assignee = assignee
			return
		}
	}
}

func addSession(doc *models.WhiteboardDoc, event models.Event) {
	id := sessionID(event)
	if id == "" {
		return
	}
	for _, s := range doc.ActiveSessions {
		if s.SessionID == id {
			return
		}
	}
	agent := event.DataString("agent")
	if agent == "" {
		agent = event.Agent
	}
	doc.ActiveSessions = append(doc.ActiveSessions, models.ActiveSession{
		SessionID: id,
		Agent:     agent,
		StartedAt: event.Timestamp,
	})
	slog.Info("Added session to whiteboard", "session_id", id, "agent", agent)
}

func removeSession(doc *models.WhiteboardDoc, id string) {
	if id == "" {
		return
	}
	kept := doc.ActiveSessions[:0]
	for _, s := range doc.ActiveSessions {
		if s.SessionID != id {
			kept = append(kept, s)
		}
	}
	if len(kept) != len(doc.ActiveSessions) {
		slog.Info("Removed session from whiteboard", "session_id", id)
	}
	doc.ActiveSessions = kept
}

// pushRecent inserts at the front and truncates to capacity.
func pushRecent(doc *models.WhiteboardDoc, event models.Event) {
	doc.RecentEvents = append([]models.Event{event}, doc.RecentEvents...)
	if len(doc.RecentEvents) > models.RecentEventCapacity {
		doc.RecentEvents = doc.RecentEvents[:models.RecentEventCapacity]
	}
}

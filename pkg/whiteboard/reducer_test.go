package whiteboard

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sergeville/Archon/pkg/models"
)

func taskEvent(eventType, taskID, status string) models.Event {
	return models.NewEvent(eventType, "task", taskID, map[string]interface{}{
		"task_id": taskID,
		"status":  status,
	})
}

func TestReduce_TaskLifecycle(t *testing.T) {
	doc := models.NewWhiteboardDoc()

	// Created straight into doing: lands on the board.
	Reduce(doc, taskEvent("task.created", "T1", "doing"))
	require.Len(t, doc.ActiveTasks, 1)
	assert.Equal(t, "T1", doc.ActiveTasks[0].TaskID)
	assert.Equal(t, "doing", doc.ActiveTasks[0].Status)

	// Transition out of doing: removed.
	transition := models.NewEvent("task.status_changed", "task", "T1", map[string]interface{}{
		"task_id":    "T1",
		"old_status": "doing",
		"new_status": "done",
	})
	Reduce(doc, transition)
	assert.Empty(t, doc.ActiveTasks)

	// Both events are in the ring, newest first.
	require.Len(t, doc.RecentEvents, 2)
	assert.Equal(t, "task.status_changed", doc.RecentEvents[0].EventType)
	assert.Equal(t, "task.created", doc.RecentEvents[1].EventType)
}

func TestReduce_TaskCreatedNotDoing(t *testing.T) {
	doc := models.NewWhiteboardDoc()

	Reduce(doc, taskEvent("task.created", "T1", "todo"))
	assert.Empty(t, doc.ActiveTasks)
	assert.Len(t, doc.RecentEvents, 1)
}

func TestReduce_TaskUpsertIsIdempotent(t *testing.T) {
	doc := models.NewWhiteboardDoc()

	first := taskEvent("task.created", "T1", "doing")
	first.Data["title"] = "Wire the stream"
	Reduce(doc, first)

	// Second doing event for the same ID must not duplicate, and keeps
	// the known title when the event carries none.
	Reduce(doc, taskEvent("task.status_changed", "T1", "doing"))
	require.Len(t, doc.ActiveTasks, 1)
	assert.Equal(t, "Wire the stream", doc.ActiveTasks[0].Title)
}

func TestReduce_TaskAssigned(t *testing.T) {
	doc := models.NewWhiteboardDoc()
	Reduce(doc, taskEvent("task.created", "T1", "doing"))

	assign := models.NewEvent("task.assigned", "task", "T1", map[string]interface{}{
		"task_id":  "T1",
		"assignee": "scout",
	})
	Reduce(doc, assign)
	require.Len(t, doc.ActiveTasks, 1)
	assert.Equal(t, "scout", doc.ActiveTasks[0].Assignee)
}

func TestReduce_SessionLifecycle(t *testing.T) {
	doc := models.NewWhiteboardDoc()

	started := models.NewEvent("session.started", "session", "S1", map[string]interface{}{
		"session_id": "S1",
		"agent":      "claude",
	})
	Reduce(doc, started)
	require.Len(t, doc.ActiveSessions, 1)
	assert.Equal(t, "S1", doc.ActiveSessions[0].SessionID)
	assert.Equal(t, "claude", doc.ActiveSessions[0].Agent)

	// Duplicate start is ignored.
	Reduce(doc, started)
	assert.Len(t, doc.ActiveSessions, 1)

	ended := models.NewEvent("session.ended", "session", "S1", map[string]interface{}{
		"session_id": "S1",
	})
	Reduce(doc, ended)
	assert.Empty(t, doc.ActiveSessions)
}

func TestReduce_UnknownEventStillRecorded(t *testing.T) {
	doc := models.NewWhiteboardDoc()

	Reduce(doc, models.NewEvent("crawl.completed", "crawl", "", nil))
	assert.Empty(t, doc.ActiveTasks)
	assert.Empty(t, doc.ActiveSessions)
	require.Len(t, doc.RecentEvents, 1)
	assert.Equal(t, "crawl.completed", doc.RecentEvents[0].EventType)
}

func TestReduce_RecentEventsBounded(t *testing.T) {
	doc := models.NewWhiteboardDoc()

	for i := 0; i < models.RecentEventCapacity+10; i++ {
		Reduce(doc, models.NewEvent("task.created", "task", fmt.Sprintf("T%d", i), map[string]interface{}{
			"task_id": fmt.Sprintf("T%d", i),
			"status":  "todo",
		}))
	}

	assert.Len(t, doc.RecentEvents, models.RecentEventCapacity)
	// Newest first.
	assert.Equal(t, fmt.Sprintf("T%d", models.RecentEventCapacity+9), doc.RecentEvents[0].EntityID)
}

func TestReduce_EntityIDFallback(t *testing.T) {
	doc := models.NewWhiteboardDoc()

	// No task_id in data; the entity ID carries the identity.
	event := models.NewEvent("task.created", "task", "T-ent", map[string]interface{}{
		"status": "doing",
	})
	Reduce(doc, event)
	require.Len(t, doc.ActiveTasks, 1)
	assert.Equal(t, "T-ent", doc.ActiveTasks[0].TaskID)
}

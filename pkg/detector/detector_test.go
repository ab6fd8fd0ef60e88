package detector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sergeville/Archon/pkg/models"
)

func TestDetect_TaskCreated(t *testing.T) {
	d := New()

	det := d.Detect("Published task.created event for task abc-123", "archon-server")
	require.NotNil(t, det)

	assert.Equal(t, models.TopicTaskEvents, det.Topic)
	assert.Equal(t, "task.created", det.Event.EventType)
	assert.Equal(t, "task", det.Event.EntityType)
	assert.Equal(t, "abc-123", det.Event.EntityID)
	assert.Equal(t, "archon-server", det.Event.Source)
	assert.Equal(t, "abc-123", det.Event.Data["task_id"])
	assert.Equal(t, "Published task.created event for task abc-123", det.Event.Data["log_line"])
	assert.NotEmpty(t, det.Event.Timestamp)
}

func TestDetect_PatternTable(t *testing.T) {
	tests := []struct {
		name       string
		line       string
		wantTopic  string
		wantType   string
		wantEntity string
		wantData   map[string]interface{}
	}{
		{
			name:       "task status changed",
			line:       "Published task.status_changed event for task t-9",
			wantTopic:  models.TopicTaskEvents,
			wantType:   "task.status_changed",
			wantEntity: "task",
			wantData:   map[string]interface{}{"task_id": "t-9"},
		},
		{
			name:       "session started",
			line:       "Published session.started event for session sess-42",
			wantTopic:  models.TopicSessionEvents,
			wantType:   "session.started",
			wantEntity: "session",
			wantData:   map[string]interface{}{"session_id": "sess-42"},
		},
		{
			name:       "session ended",
			line:       "Published session.ended event for session sess-42",
			wantTopic:  models.TopicSessionEvents,
			wantType:   "session.ended",
			wantEntity: "session",
			wantData:   map[string]interface{}{"session_id": "sess-42"},
		},
		{
			name:       "whiteboard task updated with statuses",
			line:       "Updated task t-7 on whiteboard: todo → doing",
			wantTopic:  models.TopicSystemEvents,
			wantType:   "whiteboard.task_updated",
			wantEntity: "whiteboard",
			wantData: map[string]interface{}{
				"task_id":    "t-7",
				"old_status": "todo",
				"new_status": "doing",
			},
		},
		{
			name:       "whiteboard session added with agent",
			line:       "Added session s-1 (claude) to whiteboard",
			wantTopic:  models.TopicSystemEvents,
			wantType:   "whiteboard.session_added",
			wantEntity: "whiteboard",
			wantData:   map[string]interface{}{"session_id": "s-1", "agent": "claude"},
		},
		{
			name:       "service started",
			line:       "mcp-gateway service started successfully",
			wantTopic:  models.TopicSystemEvents,
			wantType:   "service.started",
			wantEntity: "service",
			wantData:   map[string]interface{}{"service_name": "mcp-gateway"},
		},
		{
			name:       "backend started",
			line:       "🎉 Archon backend started successfully!",
			wantTopic:  models.TopicSystemEvents,
			wantType:   "backend.started",
			wantEntity: "backend",
			wantData:   map[string]interface{}{},
		},
		{
			name:       "error with message",
			line:       "ERROR db: connection refused",
			wantTopic:  models.TopicSystemEvents,
			wantType:   "error.occurred",
			wantEntity: "error",
			wantData:   map[string]interface{}{"error_message": "connection refused"},
		},
		{
			name:       "api request",
			line:       "INFO: GET /api/sessions handled",
			wantTopic:  models.TopicSystemEvents,
			wantType:   "api.request",
			wantEntity: "api",
			wantData:   map[string]interface{}{"method": "GET", "path": "/api/sessions"},
		},
		{
			name:       "crawl started",
			line:       "Starting crawl for URL: https://example.com/docs",
			wantTopic:  models.TopicSystemEvents,
			wantType:   "crawl.started",
			wantEntity: "crawl",
			wantData:   map[string]interface{}{"url": "https://example.com/docs"},
		},
		{
			name:       "todo completed",
			line:       "Task completed: wire up the SSE stream",
			wantTopic:  models.TopicTaskEvents,
			wantType:   "task.completed",
			wantEntity: "task",
			wantData:   map[string]interface{}{"description": "wire up the SSE stream"},
		},
		{
			name:       "todos modified",
			line:       "Todos have been modified successfully",
			wantTopic:  models.TopicTaskEvents,
			wantType:   "task.list_updated",
			wantEntity: "task",
			wantData:   map[string]interface{}{},
		},
	}

	d := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			det := d.Detect(tt.line, "archon-server")
			require.NotNil(t, det)

			assert.Equal(t, tt.wantTopic, det.Topic)
			assert.Equal(t, tt.wantType, det.Event.EventType)
			assert.Equal(t, tt.wantEntity, det.Event.EntityType)
			for k, v := range tt.wantData {
				assert.Equal(t, v, det.Event.Data[k], "data[%s]", k)
			}
		})
	}
}

func TestDetect_NoMatch(t *testing.T) {
	d := New()
	assert.Nil(t, d.Detect("just some ordinary log chatter", "archon-server"))
	assert.Nil(t, d.Detect("", "archon-server"))
}

func TestDetect_FirstPatternWins(t *testing.T) {
	d := New()

	// Contains both a task.created match and ERROR-ish text; the more
	// specific task pattern sits earlier in the table.
	det := d.Detect("Published task.created event for task t-1 after ERROR retry: ok", "svc")
	require.NotNil(t, det)
	assert.Equal(t, "task.created", det.Event.EventType)
}

func TestDetect_Deterministic(t *testing.T) {
	d := New()
	line := "Published task.created event for task abc-123"

	first := d.Detect(line, "svc")
	second := d.Detect(line, "svc")
	require.NotNil(t, first)
	require.NotNil(t, second)

	assert.Equal(t, first.Topic, second.Topic)
	assert.Equal(t, first.Event.EventType, second.Event.EventType)
	assert.Equal(t, first.Event.EntityID, second.Event.EntityID)
	assert.Equal(t, first.Event.Data["task_id"], second.Event.Data["task_id"])
}

func TestShouldPublish(t *testing.T) {
	d := New()

	tests := []struct {
		name string
		line string
		want bool
	}{
		{"task event publishes", "Published task.created event for task t-1", true},
		{"api request never publishes", "GET /api/sessions", false},
		{"benign warning suppressed", "WARNING cache: slow lookup detected", false},
		{"startup warning publishes", "WARNING init: Could not start embedding provider", true},
		{"hard failure warning publishes", "WARNING worker: Failed to reconnect to bus", true},
		{"error publishes", "ERROR db: connection refused", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			det := d.Detect(tt.line, "svc")
			require.NotNil(t, det)
			assert.Equal(t, tt.want, d.ShouldPublish(det))
		})
	}

	assert.False(t, d.ShouldPublish(nil))
}

// Package detector turns raw container log lines into structured events for
// the whiteboard pipeline. Detection is a pure function over an ordered
// pattern table; the first matching pattern wins.
package detector

import (
	"regexp"
	"strings"

	"github.com/sergeville/Archon/pkg/models"
)

// Detection is the result of a successful match: the topic to publish on
// and the structured event.
type Detection struct {
	Topic string
	Event models.Event
}

type pattern struct {
	name      string
	re        *regexp.Regexp
	topic     string
	eventType string
	extract   func(groups []string) map[string]interface{}
}

// Detector holds the ordered pattern table.
type Detector struct {
	patterns []pattern
}

// New builds a detector with the full pattern table.
func New() *Detector {
	return &Detector{patterns: buildPatterns()}
}

func captureOne(key string) func([]string) map[string]interface{} {
	return func(groups []string) map[string]interface{} {
		return map[string]interface{}{key: strings.TrimSpace(groups[1])}
	}
}

func captureNone() func([]string) map[string]interface{} {
	return func([]string) map[string]interface{} {
		return map[string]interface{}{}
	}
}

func buildPatterns() []pattern {
	return []pattern{
		// Task events (from the event publisher's own logs)
		{
			name:      "task_created",
			re:        regexp.MustCompile(`Published task\.created event for task ([\w-]+)`),
			topic:     models.TopicTaskEvents,
			eventType: "task.created",
			extract:   captureOne("task_id"),
		},
		{
			name:      "task_status_changed",
			re:        regexp.MustCompile(`Published task\.status_changed event for task ([\w-]+)`),
			topic:     models.TopicTaskEvents,
			eventType: "task.status_changed",
			extract:   captureOne("task_id"),
		},
		{
			name:      "task_assigned",
			re:        regexp.MustCompile(`Published task\.assigned event for task ([\w-]+)`),
			topic:     models.TopicTaskEvents,
			eventType: "task.assigned",
			extract:   captureOne("task_id"),
		},

		// Session events
		{
			name:      "session_started",
			re:        regexp.MustCompile(`Published session\.started event for session ([\w-]+)`),
			topic:     models.TopicSessionEvents,
			eventType: "session.started",
			extract:   captureOne("session_id"),
		},
		{
			name:      "session_ended",
			re:        regexp.MustCompile(`Published session\.ended event for session ([\w-]+)`),
			topic:     models.TopicSessionEvents,
			eventType: "session.ended",
			extract:   captureOne("session_id"),
		},

		// Whiteboard updates (from the event listener's own logs)
		{
			name:      "whiteboard_task_added",
			re:        regexp.MustCompile(`Added task ([\w-]+) to whiteboard`),
			topic:     models.TopicSystemEvents,
			eventType: "whiteboard.task_added",
			extract:   captureOne("task_id"),
		},
		{
			name:      "whiteboard_task_updated",
			re:        regexp.MustCompile(`Updated task ([\w-]+) on whiteboard: (\w+) → (\w+)`),
			topic:     models.TopicSystemEvents,
			eventType: "whiteboard.task_updated",
			extract: func(groups []string) map[string]interface{} {
				return map[string]interface{}{
					"task_id":    groups[1],
					"old_status": groups[2],
					"new_status": groups[3],
				}
			},
		},
		{
			name:      "whiteboard_session_added",
			re:        regexp.MustCompile(`Added session ([\w-]+) \((\w+)\) to whiteboard`),
			topic:     models.TopicSystemEvents,
			eventType: "whiteboard.session_added",
			extract: func(groups []string) map[string]interface{} {
				return map[string]interface{}{
					"session_id": groups[1],
					"agent":      groups[2],
				}
			},
		},
		{
			name:      "whiteboard_session_removed",
			re:        regexp.MustCompile(`Removed session ([\w-]+) from whiteboard`),
			topic:     models.TopicSystemEvents,
			eventType: "whiteboard.session_removed",
			extract:   captureOne("session_id"),
		},

		// Service health
		{
			name:      "service_started",
			re:        regexp.MustCompile(`([\w-]+) service started successfully`),
			topic:     models.TopicSystemEvents,
			eventType: "service.started",
			extract:   captureOne("service_name"),
		},
		{
			name:      "service_stopped",
			re:        regexp.MustCompile(`([\w-]+) service stopped`),
			topic:     models.TopicSystemEvents,
			eventType: "service.stopped",
			extract:   captureOne("service_name"),
		},

		// Container health
		{
			name:      "backend_started",
			re:        regexp.MustCompile(`🎉 Archon backend started successfully!`),
			topic:     models.TopicSystemEvents,
			eventType: "backend.started",
			extract:   captureNone(),
		},
		{
			name:      "backend_shutdown",
			re:        regexp.MustCompile(`🛑 Shutting down Archon backend`),
			topic:     models.TopicSystemEvents,
			eventType: "backend.shutdown",
			extract:   captureNone(),
		},

		// Errors and warnings. These overlap with more specific patterns
		// above; table order decides.
		{
			name:      "error_occurred",
			re:        regexp.MustCompile(`(?i)ERROR.*?:\s*(.+)$`),
			topic:     models.TopicSystemEvents,
			eventType: "error.occurred",
			extract:   captureOne("error_message"),
		},
		{
			name:      "warning_occurred",
			re:        regexp.MustCompile(`(?i)WARNING.*?:\s*(.+)$`),
			topic:     models.TopicSystemEvents,
			eventType: "warning.occurred",
			extract:   captureOne("warning_message"),
		},

		// Crawl lifecycle
		{
			name:      "crawl_started",
			re:        regexp.MustCompile(`Starting crawl for URL: (.+)`),
			topic:     models.TopicSystemEvents,
			eventType: "crawl.started",
			extract:   captureOne("url"),
		},
		{
			name:      "crawl_completed",
			re:        regexp.MustCompile(`Crawl completed for (.+)`),
			topic:     models.TopicSystemEvents,
			eventType: "crawl.completed",
			extract:   captureOne("url"),
		},

		// API requests (published to logs only; see ShouldPublish)
		{
			name:      "api_request",
			re:        regexp.MustCompile(`(GET|POST|PUT|DELETE|PATCH)\s+(/api/[\w/]+)`),
			topic:     models.TopicSystemEvents,
			eventType: "api.request",
			extract: func(groups []string) map[string]interface{} {
				return map[string]interface{}{
					"method": groups[1],
					"path":   groups[2],
				}
			},
		},

		// Todo / task list chatter
		{
			name:      "todo_item_completed",
			re:        regexp.MustCompile(`(?i)(?:Task|Todo|Item)\s+(?:completed|done|finished):\s*(.+)$`),
			topic:     models.TopicTaskEvents,
			eventType: "task.completed",
			extract:   captureOne("description"),
		},
		{
			name:      "todo_item_started",
			re:        regexp.MustCompile(`(?i)(?:Started|Beginning|Working on)\s+(?:task|todo):\s*(.+)$`),
			topic:     models.TopicTaskEvents,
			eventType: "task.started",
			extract:   captureOne("description"),
		},
		{
			name:      "todo_item_added",
			re:        regexp.MustCompile(`(?i)(?:Added|Created)\s+(?:task|todo):\s*(.+)$`),
			topic:     models.TopicTaskEvents,
			eventType: "task.added",
			extract:   captureOne("description"),
		},
		{
			name:      "todos_modified",
			re:        regexp.MustCompile(`Todos have been modified successfully`),
			topic:     models.TopicTaskEvents,
			eventType: "task.list_updated",
			extract:   captureNone(),
		},
	}
}

// Detect runs the log line through the pattern table and returns the first
// match as a (topic, event) pair, or nil when nothing matched.
func (d *Detector) Detect(logLine, serviceName string) *Detection {
	for _, p := range d.patterns {
		groups := p.re.FindStringSubmatch(logLine)
		if groups == nil {
			continue
		}

		extracted := p.extract(groups)

		data := map[string]interface{}{
			"log_line": strings.TrimSpace(logLine),
		}
		for k, v := range extracted {
			data[k] = v
		}

		event := models.NewEvent(p.eventType, entityType(p.eventType), "", data)
		event.Source = serviceName

		// Duplicate the extracted identity into entity_id when present.
		if id, ok := extracted["task_id"].(string); ok {
			event.EntityID = id
		} else if id, ok := extracted["session_id"].(string); ok {
			event.EntityID = id
		} else if id, ok := extracted["service_name"].(string); ok {
			event.EntityID = id
		}

		return &Detection{Topic: p.topic, Event: event}
	}

	return nil
}

// entityType derives the entity class from the event type prefix.
func entityType(eventType string) string {
	prefixes := []struct {
		prefix string
		entity string
	}{
		{"task.", "task"},
		{"session.", "session"},
		{"service.", "service"},
		{"backend.", "backend"},
		{"whiteboard.", "whiteboard"},
		{"crawl.", "crawl"},
		{"api.", "api"},
		{"error.", "error"},
		{"warning.", "warning"},
	}
	for _, p := range prefixes {
		if strings.HasPrefix(eventType, p.prefix) {
			return p.entity
		}
	}
	return "system"
}

// ShouldPublish reports whether a detected event belongs on the events
// topics. API requests are log-only noise, and warnings propagate only when
// they indicate a startup or hard failure.
func (d *Detector) ShouldPublish(det *Detection) bool {
	if det == nil {
		return false
	}

	if det.Event.EventType == "api.request" {
		return false
	}

	if det.Event.EventType == "warning.occurred" {
		msg := det.Event.DataString("warning_message")
		if !strings.Contains(msg, "Could not start") && !strings.Contains(msg, "Failed to") {
			return false
		}
	}

	return true
}

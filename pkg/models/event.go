// Package models holds the wire types shared between the bus, the detector,
// the listener, and the API surface.
package models

import (
	"encoding/json"
	"time"
)

// Well-known pub/sub topics.
const (
	TopicLogs           = "logs"
	TopicTaskEvents     = "events:task"
	TopicSessionEvents  = "events:session"
	TopicSystemEvents   = "events:system"
	TopicErrorEvents    = "events:error"
	TopicWorkOrders     = "events:work_order"
	TopicClaudeSessions = "claude-sessions"
)

// Event is the single JSON document published on the event topics.
type Event struct {
	EventType  string                 `json:"event_type"`
	EntityType string                 `json:"entity_type"`
	EntityID   string                 `json:"entity_id,omitempty"`
	Timestamp  string                 `json:"timestamp"`
	Agent      string                 `json:"agent,omitempty"`
	Source     string                 `json:"source,omitempty"`
	Data       map[string]interface{} `json:"data"`
}

// NewEvent builds an event stamped with the current UTC time.
func NewEvent(eventType, entityType, entityID string, data map[string]interface{}) Event {
	if data == nil {
		data = map[string]interface{}{}
	}
	return Event{
		EventType:  eventType,
		EntityType: entityType,
		EntityID:   entityID,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		Data:       data,
	}
}

// Marshal renders the event as its wire JSON.
func (e Event) Marshal() ([]byte, error) {
	return json.Marshal(e)
}

// DataString returns data[key] if it is a string, else "".
func (e Event) DataString(key string) string {
	if e.Data == nil {
		return ""
	}
	if s, ok := e.Data[key].(string); ok {
		return s
	}
	return ""
}

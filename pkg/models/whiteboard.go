package models

// RecentEventCapacity bounds the whiteboard's recent-events ring.
const RecentEventCapacity = 50

// ActiveSession is one live session entry on the whiteboard.
type ActiveSession struct {
	SessionID string `json:"session_id"`
	Agent     string `json:"agent,omitempty"`
	StartedAt string `json:"started_at,omitempty"`
}

// ActiveTask is one in-progress ("doing") task entry on the whiteboard.
type ActiveTask struct {
	TaskID   string `json:"task_id"`
	Title    string `json:"title,omitempty"`
	Status   string `json:"status"`
	Assignee string `json:"assignee,omitempty"`
}

// WhiteboardDoc is the reduced live view of what is currently happening
// across all agents. It is a single document: active sessions, active
// "doing" tasks, and a most-recent-first ring of processed events.
type WhiteboardDoc struct {
	ActiveSessions []ActiveSession `json:"active_sessions"`
	ActiveTasks    []ActiveTask    `json:"active_tasks"`
	RecentEvents   []Event         `json:"recent_events"`
	UpdatedAt      string          `json:"updated_at,omitempty"`
}

// NewWhiteboardDoc returns an empty document with non-nil slices so the
// JSON form always carries the three lists.
func NewWhiteboardDoc() *WhiteboardDoc {
	return &WhiteboardDoc{
		ActiveSessions: []ActiveSession{},
		ActiveTasks:    []ActiveTask{},
		RecentEvents:   []Event{},
	}
}

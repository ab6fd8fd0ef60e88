package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCompleter returns a canned response and records the prompts.
type fakeCompleter struct {
	response string
	err      error
	system   string
	user     string
}

func (f *fakeCompleter) Complete(_ context.Context, system, user string) (string, error) {
	f.system = system
	f.user = user
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func TestSummarizeSession(t *testing.T) {
	c := &fakeCompleter{response: `{
		"summary": "Migrated the sessions table",
		"key_events": ["ran migration"],
		"decisions_made": ["kept the old index"],
		"outcomes": ["schema updated"],
		"next_steps": ["Backfill embeddings"]
	}`}

	header := SessionHeader{ID: "s-1", Agent: "claude", ProjectID: "p-1", StartedAt: "2026-01-01T00:00:00Z"}
	events := []EventLine{
		{Timestamp: "2026-01-01T00:01:00Z", EventType: "tool_use", Detail: "psql migrate up"},
		{Timestamp: "2026-01-01T00:02:00Z", EventType: "decision"},
	}

	summary, err := SummarizeSession(context.Background(), c, header, events)
	require.NoError(t, err)
	assert.Equal(t, "Migrated the sessions table", summary.Summary)
	assert.Equal(t, []string{"Backfill embeddings"}, summary.NextSteps)

	// The prompt carries the header and every event line.
	assert.Contains(t, c.user, `agent "claude"`)
	assert.Contains(t, c.user, "project p-1")
	assert.Contains(t, c.user, "Events (2):")
	assert.Contains(t, c.user, "psql migrate up")
}

func TestSummarizeSession_CompleterError(t *testing.T) {
	c := &fakeCompleter{err: errors.New("provider down")}
	_, err := SummarizeSession(context.Background(), c, SessionHeader{Agent: "a"}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "session summarization failed")
}

func TestExtractPatterns(t *testing.T) {
	c := &fakeCompleter{response: "```json\n" + `{
		"patterns": [
			{"pattern_type": "success", "domain": "database", "description": "Batch writes", "action": "Use COPY for bulk loads", "confidence": 0.9},
			{"pattern_type": "failure", "domain": "api", "description": "Unbounded reads", "action": "Always cap limits", "confidence": 0.4}
		],
		"rationale": "two candidates"
	}` + "\n```"}

	got, err := ExtractPatterns(context.Background(), c, SessionHeader{Agent: "claude"}, nil)
	require.NoError(t, err)
	require.Len(t, got.Patterns, 2)
	assert.Equal(t, "success", got.Patterns[0].PatternType)
	assert.InDelta(t, 0.9, got.Patterns[0].Confidence, 1e-9)
	assert.Equal(t, "two candidates", got.Rationale)
}

func TestExtractPatterns_MalformedOutput(t *testing.T) {
	c := &fakeCompleter{response: "sorry, no patterns today"}
	_, err := ExtractPatterns(context.Background(), c, SessionHeader{Agent: "claude"}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed output")
}

func TestExtractPlanTasks(t *testing.T) {
	c := &fakeCompleter{response: `{
		"tasks": [
			{"title": "Create sessions endpoint", "description": "POST /api/sessions", "priority": "high", "feature": "API"},
			{"title": "Add migration", "description": "sessions table", "priority": "medium"}
		]
	}`}

	tasks, err := ExtractPlanTasks(context.Background(), c, "# Plan\n\nBuild the thing.")
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "Create sessions endpoint", tasks[0].Title)
	assert.Equal(t, "high", tasks[0].Priority)
	assert.Contains(t, c.user, "Build the thing.")
}

func TestExtractPlanTasks_TruncatesLongPlans(t *testing.T) {
	c := &fakeCompleter{response: `{"tasks": []}`}

	long := make([]byte, maxPlanChars+1000)
	for i := range long {
		long[i] = 'x'
	}
	_, err := ExtractPlanTasks(context.Background(), c, string(long))
	require.NoError(t, err)
	assert.LessOrEqual(t, len(c.user), maxPlanChars+100)
}

func TestNewClient_NotConfigured(t *testing.T) {
	_, err := NewClient(Config{})
	assert.ErrorIs(t, err, ErrNotConfigured)
}

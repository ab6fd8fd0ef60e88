package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionLifecycle(t *testing.T) {
	svc := newTestServices(t, nil, nil)
	ctx := context.Background()

	session, err := svc.Sessions.CreateSession(ctx, CreateSessionInput{
		Agent:     "claude",
		ProjectID: "proj-1",
		Context:   map[string]interface{}{"branch": "main"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, session.ID)
	assert.Equal(t, "claude", session.AgentName)
	assert.Nil(t, session.EndedAt)

	// Events land in chronological order.
	for _, eventType := range []string{"session.started", "tool_use", "decision"} {
		_, err := svc.Sessions.AddEvent(ctx, session.ID, eventType, map[string]interface{}{"n": eventType})
		require.NoError(t, err)
	}

	ended, err := svc.Sessions.EndSession(ctx, session.ID, "did the work")
	require.NoError(t, err)
	require.NotNil(t, ended.EndedAt)
	require.NotNil(t, ended.Summary)
	assert.Equal(t, "did the work", *ended.Summary)

	loaded, err := svc.Sessions.GetSession(ctx, session.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Edges.Events, 3)
	assert.Equal(t, "session.started", loaded.Edges.Events[0].EventType)
	assert.Equal(t, "decision", loaded.Edges.Events[2].EventType)
	for i := 1; i < len(loaded.Edges.Events); i++ {
		assert.False(t, loaded.Edges.Events[i].Timestamp.Before(loaded.Edges.Events[i-1].Timestamp))
	}
}

func TestCreateSession_RequiresAgent(t *testing.T) {
	svc := newTestServices(t, nil, nil)

	_, err := svc.Sessions.CreateSession(context.Background(), CreateSessionInput{Agent: "  "})
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestGetSession_EventOrderBreaksTimestampTies(t *testing.T) {
	svc := newTestServices(t, nil, nil)
	ctx := context.Background()

	sessionID := mustCreateSession(t, svc, "claude")

	// Same timestamp on every event: ordering falls back to the
	// DB-assigned sequence, which follows insertion order.
	ts := time.Now().UTC().Truncate(time.Second)
	for _, eventType := range []string{"first", "second", "third"} {
		_, err := svc.db.SessionEvent.Create().
			SetID(uuid.New().String()).
			SetSessionID(sessionID).
			SetEventType(eventType).
			SetTimestamp(ts).
			Save(ctx)
		require.NoError(t, err)
	}

	session, err := svc.Sessions.GetSession(ctx, sessionID)
	require.NoError(t, err)
	require.Len(t, session.Edges.Events, 3)
	for i, eventType := range []string{"first", "second", "third"} {
		assert.Equal(t, eventType, session.Edges.Events[i].EventType)
		assert.NotZero(t, session.Edges.Events[i].Seq)
	}
}

func TestAddEvent_UnknownSession(t *testing.T) {
	svc := newTestServices(t, nil, nil)

	_, err := svc.Sessions.AddEvent(context.Background(), "no-such-session", "tool_use", nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEndSession_UnknownSession(t *testing.T) {
	svc := newTestServices(t, nil, nil)

	_, err := svc.Sessions.EndSession(context.Background(), "no-such-session", "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStoreMessage(t *testing.T) {
	svc := newTestServices(t, nil, nil)
	ctx := context.Background()
	sessionID := mustCreateSession(t, svc, "claude")

	msg, err := svc.Sessions.StoreMessage(ctx, StoreMessageInput{
		SessionID:   sessionID,
		Role:        "assistant",
		Message:     "applying the migration now",
		ToolsUsed:   []string{"bash"},
		MessageType: "chat",
	})
	require.NoError(t, err)
	assert.Equal(t, "assistant", string(msg.Role))
	assert.Equal(t, []string{"bash"}, msg.ToolsUsed)

	_, err = svc.Sessions.StoreMessage(ctx, StoreMessageInput{
		SessionID: sessionID,
		Role:      "operator",
		Message:   "hello",
	})
	require.Error(t, err)
	assert.True(t, IsValidationError(err))

	_, err = svc.Sessions.StoreMessage(ctx, StoreMessageInput{
		SessionID: "missing",
		Role:      "user",
		Message:   "hello",
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestConversationHistory_RoleFilterAndOrder(t *testing.T) {
	svc := newTestServices(t, nil, nil)
	ctx := context.Background()
	sessionID := mustCreateSession(t, svc, "claude")

	for _, m := range []struct{ role, text string }{
		{"user", "first"},
		{"assistant", "second"},
		{"user", "third"},
	} {
		_, err := svc.Sessions.StoreMessage(ctx, StoreMessageInput{
			SessionID: sessionID,
			Role:      m.role,
			Message:   m.text,
		})
		require.NoError(t, err)
	}

	all, err := svc.Sessions.ConversationHistory(ctx, sessionID, "", 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "first", all[0].Message)
	assert.Equal(t, "third", all[2].Message)

	users, err := svc.Sessions.ConversationHistory(ctx, sessionID, "user", 0)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "first", users[0].Message)
}

func TestListSessions_Filters(t *testing.T) {
	svc := newTestServices(t, nil, nil)
	ctx := context.Background()

	_, err := svc.Sessions.CreateSession(ctx, CreateSessionInput{Agent: "scout", ProjectID: "p1"})
	require.NoError(t, err)
	_, err = svc.Sessions.CreateSession(ctx, CreateSessionInput{Agent: "scout", ProjectID: "p2"})
	require.NoError(t, err)
	_, err = svc.Sessions.CreateSession(ctx, CreateSessionInput{Agent: "builder", ProjectID: "p1"})
	require.NoError(t, err)

	byAgent, err := svc.Sessions.ListSessions(ctx, ListSessionsFilter{Agent: "scout"})
	require.NoError(t, err)
	assert.Len(t, byAgent, 2)

	byProject, err := svc.Sessions.ListSessions(ctx, ListSessionsFilter{ProjectID: "p1"})
	require.NoError(t, err)
	assert.Len(t, byProject, 2)

	limited, err := svc.Sessions.ListSessions(ctx, ListSessionsFilter{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, limited, 1)

	future := time.Now().UTC().Add(time.Hour)
	none, err := svc.Sessions.ListSessions(ctx, ListSessionsFilter{Since: &future})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestLastSessionForAgent(t *testing.T) {
	svc := newTestServices(t, nil, nil)
	ctx := context.Background()

	_, err := svc.Sessions.LastSessionForAgent(ctx, "ghost")
	assert.ErrorIs(t, err, ErrNotFound)

	first, err := svc.Sessions.CreateSession(ctx, CreateSessionInput{Agent: "scout"})
	require.NoError(t, err)
	// Separate the two start timestamps.
	time.Sleep(10 * time.Millisecond)
	second, err := svc.Sessions.CreateSession(ctx, CreateSessionInput{Agent: "scout"})
	require.NoError(t, err)

	last, err := svc.Sessions.LastSessionForAgent(ctx, "scout")
	require.NoError(t, err)
	assert.Equal(t, second.ID, last.ID)
	assert.NotEqual(t, first.ID, last.ID)
}

func TestUpdateSummary_MergesMetadata(t *testing.T) {
	svc := newTestServices(t, nil, nil)
	ctx := context.Background()

	session, err := svc.Sessions.CreateSession(ctx, CreateSessionInput{
		Agent:    "claude",
		Metadata: map[string]interface{}{"origin": "cli", "attempt": float64(1)},
	})
	require.NoError(t, err)

	updated, err := svc.Sessions.UpdateSummary(ctx, session.ID, "new summary", map[string]interface{}{
		"attempt": float64(2),
		"extra":   "yes",
	})
	require.NoError(t, err)
	require.NotNil(t, updated.Summary)
	assert.Equal(t, "new summary", *updated.Summary)
	assert.Equal(t, "cli", updated.Metadata["origin"])
	assert.Equal(t, float64(2), updated.Metadata["attempt"])
	assert.Equal(t, "yes", updated.Metadata["extra"])
}

func TestSearchSemantic_DegradesWithoutProvider(t *testing.T) {
	svc := newTestServices(t, nil, nil)
	ctx := context.Background()

	// Embeddings disabled: empty results, never an error.
	sessions, err := svc.Sessions.SearchSemantic(ctx, "database migrations", 10, 0)
	require.NoError(t, err)
	assert.Empty(t, sessions)

	messages, err := svc.Sessions.SearchMessagesSemantic(ctx, "database migrations", "", 10, 0)
	require.NoError(t, err)
	assert.Empty(t, messages)

	all, err := svc.Search.SearchAll(ctx, "database migrations", 10, 0)
	require.NoError(t, err)
	assert.Empty(t, all.Sessions)
	assert.Empty(t, all.Patterns)
	assert.Empty(t, all.Messages)
}

func TestEventEmbeddingText(t *testing.T) {
	tests := []struct {
		name      string
		eventType string
		payload   map[string]interface{}
		want      string
	}{
		{
			name:      "sorted keys with values",
			eventType: "tool_use",
			payload:   map[string]interface{}{"tool": "bash", "exit": 0},
			want:      "tool_use. exit: 0 tool: bash",
		},
		{
			name:      "nil values skipped",
			eventType: "decision",
			payload:   map[string]interface{}{"choice": "a", "ignored": nil},
			want:      "decision. choice: a",
		},
		{
			name:      "no payload",
			eventType: "session.started",
			payload:   nil,
			want:      "session.started.",
		},
		{
			name:      "empty everything",
			eventType: "",
			payload:   nil,
			want:      "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, eventEmbeddingText(tt.eventType, tt.payload))
		})
	}
}

func TestMessageEmbeddingText(t *testing.T) {
	assert.Equal(t, "user: hello", messageEmbeddingText("user", "hello", ""))
	assert.Equal(t, "[chat] assistant: hi", messageEmbeddingText("assistant", "hi", "chat"))
}

package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandoffLifecycle(t *testing.T) {
	svc := newTestServices(t, nil, nil)
	ctx := context.Background()
	sessionID := mustCreateSession(t, svc, "agent-a")

	handoff, err := svc.Handoffs.Create(ctx, CreateHandoffInput{
		SessionID: sessionID,
		FromAgent: "agent-a",
		ToAgent:   "agent-b",
		Context:   map[string]interface{}{"task": "finish the report"},
		Notes:     "half done",
	})
	require.NoError(t, err)
	assert.Equal(t, "pending", string(handoff.Status))
	assert.Nil(t, handoff.AcceptedAt)

	// agent-b sees it in the inbox.
	pending, err := svc.Handoffs.ListPending(ctx, "agent-b")
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, handoff.ID, pending[0].ID)

	accepted, err := svc.Handoffs.Accept(ctx, handoff.ID)
	require.NoError(t, err)
	assert.Equal(t, "accepted", string(accepted.Status))
	require.NotNil(t, accepted.AcceptedAt)

	// A second accept conflicts: the handoff is no longer pending.
	_, err = svc.Handoffs.Accept(ctx, handoff.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)

	// The inbox is empty again.
	pending, err = svc.Handoffs.ListPending(ctx, "agent-b")
	require.NoError(t, err)
	assert.Empty(t, pending)

	completed, err := svc.Handoffs.Complete(ctx, handoff.ID)
	require.NoError(t, err)
	assert.Equal(t, "completed", string(completed.Status))
	require.NotNil(t, completed.CompletedAt)
}

func TestHandoffReject(t *testing.T) {
	svc := newTestServices(t, nil, nil)
	ctx := context.Background()
	sessionID := mustCreateSession(t, svc, "agent-a")

	handoff, err := svc.Handoffs.Create(ctx, CreateHandoffInput{
		SessionID: sessionID,
		FromAgent: "agent-a",
		ToAgent:   "agent-b",
	})
	require.NoError(t, err)

	rejected, err := svc.Handoffs.Reject(ctx, handoff.ID)
	require.NoError(t, err)
	assert.Equal(t, "rejected", string(rejected.Status))

	// A rejected handoff cannot be accepted or completed.
	_, err = svc.Handoffs.Accept(ctx, handoff.ID)
	assert.ErrorIs(t, err, ErrConflict)
	_, err = svc.Handoffs.Complete(ctx, handoff.ID)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestHandoffCompleteRequiresAccepted(t *testing.T) {
	svc := newTestServices(t, nil, nil)
	ctx := context.Background()
	sessionID := mustCreateSession(t, svc, "agent-a")

	handoff, err := svc.Handoffs.Create(ctx, CreateHandoffInput{
		SessionID: sessionID,
		FromAgent: "agent-a",
		ToAgent:   "agent-b",
	})
	require.NoError(t, err)

	_, err = svc.Handoffs.Complete(ctx, handoff.ID)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestHandoffCreate_Validation(t *testing.T) {
	svc := newTestServices(t, nil, nil)
	ctx := context.Background()
	sessionID := mustCreateSession(t, svc, "agent-a")

	tests := []struct {
		name  string
		input CreateHandoffInput
	}{
		{"missing session", CreateHandoffInput{FromAgent: "a", ToAgent: "b"}},
		{"missing from", CreateHandoffInput{SessionID: sessionID, ToAgent: "b"}},
		{"missing to", CreateHandoffInput{SessionID: sessionID, FromAgent: "a"}},
		{"self handoff", CreateHandoffInput{SessionID: sessionID, FromAgent: "a", ToAgent: "a"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Handoffs.Create(ctx, tt.input)
			require.Error(t, err)
			assert.True(t, IsValidationError(err))
		})
	}
}

func TestHandoffCreate_UnknownSession(t *testing.T) {
	svc := newTestServices(t, nil, nil)

	_, err := svc.Handoffs.Create(context.Background(), CreateHandoffInput{
		SessionID: "no-such-session",
		FromAgent: "a",
		ToAgent:   "b",
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestHandoffList_AgentMatchesEitherSide(t *testing.T) {
	svc := newTestServices(t, nil, nil)
	ctx := context.Background()
	sessionID := mustCreateSession(t, svc, "agent-a")

	_, err := svc.Handoffs.Create(ctx, CreateHandoffInput{SessionID: sessionID, FromAgent: "a", ToAgent: "b"})
	require.NoError(t, err)
	_, err = svc.Handoffs.Create(ctx, CreateHandoffInput{SessionID: sessionID, FromAgent: "b", ToAgent: "c"})
	require.NoError(t, err)
	_, err = svc.Handoffs.Create(ctx, CreateHandoffInput{SessionID: sessionID, FromAgent: "c", ToAgent: "a"})
	require.NoError(t, err)

	forB, err := svc.Handoffs.List(ctx, ListHandoffsFilter{Agent: "b"})
	require.NoError(t, err)
	assert.Len(t, forB, 2)

	pendingOnly, err := svc.Handoffs.List(ctx, ListHandoffsFilter{Status: "pending"})
	require.NoError(t, err)
	assert.Len(t, pendingOnly, 3)

	bySession, err := svc.Handoffs.List(ctx, ListHandoffsFilter{SessionID: sessionID, Limit: 2})
	require.NoError(t, err)
	assert.Len(t, bySession, 2)
}

func TestHandoffGet_NotFound(t *testing.T) {
	svc := newTestServices(t, nil, nil)
	_, err := svc.Handoffs.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

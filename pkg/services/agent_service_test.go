package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAgentRegister_Upsert(t *testing.T) {
	svc := newTestServices(t, nil, nil)
	ctx := context.Background()

	first, err := svc.Agents.Register(ctx, RegisterAgentInput{
		Name:         "scout",
		Capabilities: []string{"search", "summarize"},
	})
	require.NoError(t, err)
	assert.Equal(t, "active", string(first.Status))
	assert.Equal(t, []string{"search", "summarize"}, first.Capabilities)

	// Re-registration keeps the same row and advances last_seen; nil
	// capabilities leave the stored ones alone.
	time.Sleep(10 * time.Millisecond)
	second, err := svc.Agents.Register(ctx, RegisterAgentInput{Name: "scout"})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, []string{"search", "summarize"}, second.Capabilities)
	assert.True(t, second.LastSeen.After(first.LastSeen))

	agents, err := svc.Agents.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, agents, 1)
}

func TestAgentRegister_ReactivatesInactive(t *testing.T) {
	svc := newTestServices(t, nil, nil)
	ctx := context.Background()

	_, err := svc.Agents.Register(ctx, RegisterAgentInput{Name: "scout"})
	require.NoError(t, err)
	_, err = svc.Agents.Deactivate(ctx, "scout")
	require.NoError(t, err)

	revived, err := svc.Agents.Register(ctx, RegisterAgentInput{Name: "scout"})
	require.NoError(t, err)
	assert.Equal(t, "active", string(revived.Status))
}

func TestAgentHeartbeat(t *testing.T) {
	svc := newTestServices(t, nil, nil)
	ctx := context.Background()

	// Heartbeats never implicitly register.
	_, err := svc.Agents.Heartbeat(ctx, "ghost")
	assert.ErrorIs(t, err, ErrNotFound)

	registered, err := svc.Agents.Register(ctx, RegisterAgentInput{Name: "scout"})
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)
	beat, err := svc.Agents.Heartbeat(ctx, "scout")
	require.NoError(t, err)
	assert.True(t, beat.LastSeen.After(registered.LastSeen))
	assert.Equal(t, "active", string(beat.Status))
}

func TestAgentList_StatusFilter(t *testing.T) {
	svc := newTestServices(t, nil, nil)
	ctx := context.Background()

	_, err := svc.Agents.Register(ctx, RegisterAgentInput{Name: "scout"})
	require.NoError(t, err)
	_, err = svc.Agents.Register(ctx, RegisterAgentInput{Name: "builder"})
	require.NoError(t, err)
	_, err = svc.Agents.Deactivate(ctx, "builder")
	require.NoError(t, err)

	active, err := svc.Agents.List(ctx, "active")
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "scout", active[0].Name)

	inactive, err := svc.Agents.List(ctx, "inactive")
	require.NoError(t, err)
	require.Len(t, inactive, 1)
	assert.Equal(t, "builder", inactive[0].Name)
}

func TestAgentGet(t *testing.T) {
	svc := newTestServices(t, nil, nil)
	ctx := context.Background()

	_, err := svc.Agents.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Agents.Get(ctx, " ")
	require.Error(t, err)
	assert.True(t, IsValidationError(err))

	_, err = svc.Agents.Register(ctx, RegisterAgentInput{Name: "scout"})
	require.NoError(t, err)
	agent, err := svc.Agents.Get(ctx, "scout")
	require.NoError(t, err)
	assert.Equal(t, "scout", agent.Name)
}

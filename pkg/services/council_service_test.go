package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCouncilEvaluate_RiskTable(t *testing.T) {
	svc := newTestServices(t, nil, nil)
	ctx := context.Background()

	tests := []struct {
		risk         string
		wantDecision string
	}{
		{"LOW", "approved"},
		{"MED", "approved"},
		{"low", "approved"}, // case-insensitive
		{"HIGH", "pending_human"},
		{"DESTRUCTIVE", "blocked"},
	}

	for _, tt := range tests {
		t.Run(tt.risk, func(t *testing.T) {
			decision, err := svc.Council.Evaluate(ctx, "wo-1", tt.risk, "")
			require.NoError(t, err)
			assert.Equal(t, tt.wantDecision, string(decision.Decision))
			assert.Equal(t, "auto", string(decision.DecidedBy))
			assert.Nil(t, decision.ResolvedAt)
		})
	}

	_, err := svc.Council.Evaluate(ctx, "wo-1", "EXTREME", "")
	require.Error(t, err)
	assert.True(t, IsValidationError(err))

	_, err = svc.Council.Evaluate(ctx, "", "LOW", "")
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestCouncilQueue_AndApprove(t *testing.T) {
	svc := newTestServices(t, nil, nil)
	ctx := context.Background()

	// Approved and blocked decisions never reach the queue.
	_, err := svc.Council.Evaluate(ctx, "wo-low", "LOW", "")
	require.NoError(t, err)
	_, err = svc.Council.Evaluate(ctx, "wo-destr", "DESTRUCTIVE", "")
	require.NoError(t, err)

	first, err := svc.Council.Evaluate(ctx, "wo-high-1", "HIGH", "")
	require.NoError(t, err)
	second, err := svc.Council.Evaluate(ctx, "wo-high-2", "HIGH", "")
	require.NoError(t, err)

	queue, err := svc.Council.Queue(ctx)
	require.NoError(t, err)
	require.Len(t, queue, 2)
	// Oldest first.
	assert.Equal(t, first.ID, queue[0].ID)
	assert.Equal(t, second.ID, queue[1].ID)

	approved, err := svc.Council.Approve(ctx, first.ID, "reviewed, fine")
	require.NoError(t, err)
	assert.Equal(t, "approved", string(approved.Decision))
	assert.Equal(t, "human", string(approved.DecidedBy))
	require.NotNil(t, approved.ResolvedAt)

	queue, err = svc.Council.Queue(ctx)
	require.NoError(t, err)
	require.Len(t, queue, 1)
	assert.Equal(t, second.ID, queue[0].ID)
}

func TestCouncilReject(t *testing.T) {
	svc := newTestServices(t, nil, nil)
	ctx := context.Background()

	decision, err := svc.Council.Evaluate(ctx, "wo-1", "HIGH", "")
	require.NoError(t, err)

	rejected, err := svc.Council.Reject(ctx, decision.ID, "too risky")
	require.NoError(t, err)
	assert.Equal(t, "blocked", string(rejected.Decision))
	assert.Equal(t, "human", string(rejected.DecidedBy))
	require.NotNil(t, rejected.ResolvedAt)
}

func TestCouncilResolve_Conflicts(t *testing.T) {
	svc := newTestServices(t, nil, nil)
	ctx := context.Background()

	decision, err := svc.Council.Evaluate(ctx, "wo-1", "HIGH", "")
	require.NoError(t, err)

	_, err = svc.Council.Approve(ctx, decision.ID, "")
	require.NoError(t, err)

	// Already resolved: both paths conflict.
	_, err = svc.Council.Approve(ctx, decision.ID, "")
	assert.ErrorIs(t, err, ErrConflict)
	_, err = svc.Council.Reject(ctx, decision.ID, "")
	assert.ErrorIs(t, err, ErrConflict)

	// Auto decisions were never pending and cannot be resolved.
	auto, err := svc.Council.Evaluate(ctx, "wo-2", "LOW", "")
	require.NoError(t, err)
	_, err = svc.Council.Approve(ctx, auto.ID, "")
	assert.ErrorIs(t, err, ErrConflict)

	_, err = svc.Council.Approve(ctx, "missing", "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCouncilListDecisions(t *testing.T) {
	svc := newTestServices(t, nil, nil)
	ctx := context.Background()

	_, err := svc.Council.Evaluate(ctx, "wo-1", "LOW", "")
	require.NoError(t, err)
	_, err = svc.Council.Evaluate(ctx, "wo-1", "HIGH", "")
	require.NoError(t, err)
	_, err = svc.Council.Evaluate(ctx, "wo-2", "DESTRUCTIVE", "")
	require.NoError(t, err)

	byWorkOrder, err := svc.Council.ListDecisions(ctx, ListDecisionsFilter{WorkOrderID: "wo-1"})
	require.NoError(t, err)
	assert.Len(t, byWorkOrder, 2)

	blocked, err := svc.Council.ListDecisions(ctx, ListDecisionsFilter{Decision: "blocked"})
	require.NoError(t, err)
	require.Len(t, blocked, 1)
	assert.Equal(t, "wo-2", blocked[0].WorkOrderID)
}

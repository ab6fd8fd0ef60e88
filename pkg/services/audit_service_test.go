package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditAppendAndQuery(t *testing.T) {
	svc := newTestServices(t, nil, nil)
	ctx := context.Background()

	entries := []AppendAuditInput{
		{Source: "council", Action: "evaluate", Agent: "maestro", RiskLevel: "HIGH"},
		{Source: "handoff", Action: "accept", Agent: "coder", SessionID: "s-1"},
		{Source: "council", Action: "approve", Agent: "human-op"},
	}
	for _, in := range entries {
		_, err := svc.Audit.Append(ctx, in)
		require.NoError(t, err)
	}

	all, err := svc.Audit.Query(ctx, QueryAuditFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	// Newest first.
	assert.Equal(t, "approve", all[0].Action)

	council, err := svc.Audit.Query(ctx, QueryAuditFilter{Source: "council"})
	require.NoError(t, err)
	assert.Len(t, council, 2)

	byAgent, err := svc.Audit.Query(ctx, QueryAuditFilter{Agent: "coder"})
	require.NoError(t, err)
	require.Len(t, byAgent, 1)
	require.NotNil(t, byAgent[0].SessionID)
	assert.Equal(t, "s-1", *byAgent[0].SessionID)

	limited, err := svc.Audit.Query(ctx, QueryAuditFilter{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestAuditAppend_Validation(t *testing.T) {
	svc := newTestServices(t, nil, nil)
	ctx := context.Background()

	_, err := svc.Audit.Append(ctx, AppendAuditInput{Action: "evaluate"})
	require.Error(t, err)
	assert.True(t, IsValidationError(err))

	_, err = svc.Audit.Append(ctx, AppendAuditInput{Source: "council"})
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

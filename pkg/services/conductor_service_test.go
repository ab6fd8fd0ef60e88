package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }

func TestConductorCreate_ClampsConfidence(t *testing.T) {
	svc := newTestServices(t, nil, nil)
	ctx := context.Background()

	tests := []struct {
		name string
		in   *float64
		want *float64
	}{
		{"in range", floatPtr(0.85), floatPtr(0.85)},
		{"above one", floatPtr(1.5), floatPtr(1.0)},
		{"below zero", floatPtr(-0.2), floatPtr(0.0)},
		{"unset stays unset", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record, err := svc.Conductor.Create(ctx, CreateConductorLogInput{
				WorkOrderID:      "wo-1",
				ConductorAgent:   "maestro",
				DelegationTarget: "coder",
				Reasoning:        "best fit",
				Confidence:       tt.in,
			})
			require.NoError(t, err)
			if tt.want == nil {
				assert.Nil(t, record.Confidence)
			} else {
				require.NotNil(t, record.Confidence)
				assert.InDelta(t, *tt.want, *record.Confidence, 1e-9)
			}
			assert.Nil(t, record.Outcome)
		})
	}
}

func TestConductorCreate_Validation(t *testing.T) {
	svc := newTestServices(t, nil, nil)
	ctx := context.Background()

	tests := []struct {
		name  string
		input CreateConductorLogInput
	}{
		{"missing work order", CreateConductorLogInput{ConductorAgent: "m", DelegationTarget: "c"}},
		{"missing conductor", CreateConductorLogInput{WorkOrderID: "wo", DelegationTarget: "c"}},
		{"missing target", CreateConductorLogInput{WorkOrderID: "wo", ConductorAgent: "m"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Conductor.Create(ctx, tt.input)
			require.Error(t, err)
			assert.True(t, IsValidationError(err))
		})
	}
}

func TestConductorUpdateOutcome_Once(t *testing.T) {
	svc := newTestServices(t, nil, nil)
	ctx := context.Background()

	record, err := svc.Conductor.Create(ctx, CreateConductorLogInput{
		WorkOrderID:      "wo-1",
		ConductorAgent:   "maestro",
		DelegationTarget: "coder",
	})
	require.NoError(t, err)

	updated, err := svc.Conductor.UpdateOutcome(ctx, record.ID, "success", "merged cleanly")
	require.NoError(t, err)
	require.NotNil(t, updated.Outcome)
	assert.Equal(t, "success", string(*updated.Outcome))
	require.NotNil(t, updated.OutcomeAt)

	// The outcome is write-once.
	_, err = svc.Conductor.UpdateOutcome(ctx, record.ID, "failure", "")
	assert.ErrorIs(t, err, ErrConflict)

	_, err = svc.Conductor.UpdateOutcome(ctx, record.ID, "sideways", "")
	require.Error(t, err)
	assert.True(t, IsValidationError(err))

	_, err = svc.Conductor.UpdateOutcome(ctx, "missing", "success", "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestConductorListByWorkOrder(t *testing.T) {
	svc := newTestServices(t, nil, nil)
	ctx := context.Background()

	var ids []string
	for _, target := range []string{"coder", "tester", "reviewer"} {
		record, err := svc.Conductor.Create(ctx, CreateConductorLogInput{
			WorkOrderID:      "wo-1",
			ConductorAgent:   "maestro",
			DelegationTarget: target,
		})
		require.NoError(t, err)
		ids = append(ids, record.ID)
	}

	_, err := svc.Conductor.UpdateOutcome(ctx, ids[0], "success", "")
	require.NoError(t, err)
	_, err = svc.Conductor.UpdateOutcome(ctx, ids[1], "failure", "")
	require.NoError(t, err)

	records, summary, err := svc.Conductor.ListByWorkOrder(ctx, "wo-1")
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, ids[0], records[0].ID)

	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, 1, summary.Successes)
	assert.Equal(t, 1, summary.Failures)
	assert.Equal(t, 0, summary.Partials)
	assert.Equal(t, 1, summary.Pending)
}

func TestConductorStats(t *testing.T) {
	svc := newTestServices(t, nil, nil)
	ctx := context.Background()

	// maestro→coder: three delegations, two decided (one success).
	var coderIDs []string
	for _, conf := range []float64{0.8, 0.9, 0.7} {
		record, err := svc.Conductor.Create(ctx, CreateConductorLogInput{
			WorkOrderID:      "wo-1",
			ConductorAgent:   "maestro",
			DelegationTarget: "coder",
			Confidence:       floatPtr(conf),
		})
		require.NoError(t, err)
		coderIDs = append(coderIDs, record.ID)
	}
	_, err := svc.Conductor.UpdateOutcome(ctx, coderIDs[0], "success", "")
	require.NoError(t, err)
	_, err = svc.Conductor.UpdateOutcome(ctx, coderIDs[1], "failure", "")
	require.NoError(t, err)

	// maestro→tester: one delegation, no confidence, no outcome.
	_, err = svc.Conductor.Create(ctx, CreateConductorLogInput{
		WorkOrderID:      "wo-2",
		ConductorAgent:   "maestro",
		DelegationTarget: "tester",
	})
	require.NoError(t, err)

	stats, err := svc.Conductor.Stats(ctx)
	require.NoError(t, err)
	require.Len(t, stats, 2)

	// Sorted by total delegations descending.
	coder := stats[0]
	assert.Equal(t, "coder", coder.DelegationTarget)
	assert.Equal(t, 3, coder.TotalDelegations)
	require.NotNil(t, coder.AvgConfidence)
	assert.InDelta(t, 0.8, *coder.AvgConfidence, 1e-9)
	require.NotNil(t, coder.SuccessRatePct)
	assert.InDelta(t, 50.0, *coder.SuccessRatePct, 1e-9)

	tester := stats[1]
	assert.Equal(t, "tester", tester.DelegationTarget)
	assert.Equal(t, 1, tester.TotalDelegations)
	assert.Nil(t, tester.AvgConfidence)
	assert.Nil(t, tester.SuccessRatePct)
}

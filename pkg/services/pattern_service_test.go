package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sergeville/Archon/pkg/llm"
)

func TestHarvestPattern_Validation(t *testing.T) {
	svc := newTestServices(t, nil, nil)
	ctx := context.Background()

	tests := []struct {
		name  string
		input HarvestPatternInput
	}{
		{"invalid type", HarvestPatternInput{PatternType: "mystery", Domain: "d", Description: "x", Action: "y"}},
		{"missing domain", HarvestPatternInput{PatternType: "success", Description: "x", Action: "y"}},
		{"missing description", HarvestPatternInput{PatternType: "success", Domain: "d", Action: "y"}},
		{"missing action", HarvestPatternInput{PatternType: "success", Domain: "d", Description: "x"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Patterns.HarvestPattern(ctx, tt.input)
			require.Error(t, err)
			assert.True(t, IsValidationError(err))
		})
	}
}

func TestRecordObservation(t *testing.T) {
	svc := newTestServices(t, nil, nil)
	ctx := context.Background()

	pattern, err := svc.Patterns.HarvestPattern(ctx, HarvestPatternInput{
		PatternType: "technical",
		Domain:      "database",
		Description: "batch writes under load",
		Action:      "group inserts into transactions of 100",
	})
	require.NoError(t, err)

	obs, err := svc.Patterns.RecordObservation(ctx, pattern.ID, "", 4, "worked well")
	require.NoError(t, err)
	require.NotNil(t, obs.SuccessRating)
	assert.Equal(t, 4, *obs.SuccessRating)

	// Zero means unrated, not out of range.
	unrated, err := svc.Patterns.RecordObservation(ctx, pattern.ID, "", 0, "")
	require.NoError(t, err)
	assert.Nil(t, unrated.SuccessRating)

	_, err = svc.Patterns.RecordObservation(ctx, pattern.ID, "", 6, "")
	require.Error(t, err)
	assert.True(t, IsValidationError(err))

	_, err = svc.Patterns.RecordObservation(ctx, "missing", "", 3, "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListPatterns_Filters(t *testing.T) {
	svc := newTestServices(t, nil, nil)
	ctx := context.Background()

	seed := []HarvestPatternInput{
		{PatternType: "success", Domain: "database", Description: "a", Action: "x"},
		{PatternType: "success", Domain: "deploy", Description: "b", Action: "y"},
		{PatternType: "failure", Domain: "database", Description: "c", Action: "z"},
	}
	for _, in := range seed {
		_, err := svc.Patterns.HarvestPattern(ctx, in)
		require.NoError(t, err)
	}

	all, err := svc.Patterns.ListPatterns(ctx, "", "", 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	successes, err := svc.Patterns.ListPatterns(ctx, "success", "", 0)
	require.NoError(t, err)
	assert.Len(t, successes, 2)

	dbFailures, err := svc.Patterns.ListPatterns(ctx, "failure", "database", 0)
	require.NoError(t, err)
	require.Len(t, dbFailures, 1)
	assert.Equal(t, "c", dbFailures[0].Description)
}

func TestGetWithStats(t *testing.T) {
	svc := newTestServices(t, nil, nil)
	ctx := context.Background()

	_, err := svc.Patterns.GetWithStats(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	pattern, err := svc.Patterns.HarvestPattern(ctx, HarvestPatternInput{
		PatternType: "process",
		Domain:      "review",
		Description: "small diffs review faster",
		Action:      "split changes under 400 lines",
	})
	require.NoError(t, err)

	// No observations yet.
	stats, err := svc.Patterns.GetWithStats(ctx, pattern.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.ObservationCount)
	assert.Nil(t, stats.AverageRating)

	// Two rated, one unrated: the unrated one counts toward the total
	// but not the average.
	for _, rating := range []int{5, 3, 0} {
		_, err := svc.Patterns.RecordObservation(ctx, pattern.ID, "", rating, "")
		require.NoError(t, err)
	}

	stats, err = svc.Patterns.GetWithStats(ctx, pattern.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.ObservationCount)
	require.NotNil(t, stats.AverageRating)
	assert.InDelta(t, 4.0, *stats.AverageRating, 1e-9)
}

func TestExtractFromSession(t *testing.T) {
	completer := &fakeCompleter{response: `{
		"patterns": [
			{
				"pattern_type": "success",
				"domain": "testing",
				"description": "run the failing test first",
				"action": "reproduce before fixing",
				"outcome": "fix landed in one attempt",
				"confidence": 0.9
			},
			{
				"pattern_type": "technical",
				"domain": "build",
				"description": "cache went stale",
				"action": "clear the cache",
				"confidence": 0.4
			}
		],
		"rationale": "one strong candidate, one guess"
	}`}
	svc := newTestServices(t, nil, completer)
	ctx := context.Background()

	sessionID := mustCreateSession(t, svc, "claude")
	_, err := svc.Sessions.AddEvent(ctx, sessionID, "tool_use", map[string]interface{}{"tool": "bash"})
	require.NoError(t, err)

	harvested, err := svc.Patterns.ExtractFromSession(ctx, sessionID)
	require.NoError(t, err)

	// The 0.4 candidate falls below the confidence cutoff.
	require.Len(t, harvested, 1)
	pattern := harvested[0]
	assert.Equal(t, "testing", pattern.Domain)
	assert.Equal(t, "pattern_extractor", pattern.CreatedBy)
	assert.Equal(t, sessionID, pattern.Context["source_session_id"])
	assert.InDelta(t, 0.9, pattern.Context["confidence"].(float64), 1e-9)
}

func TestExtractFromSession_Errors(t *testing.T) {
	svc := newTestServices(t, nil, nil)
	ctx := context.Background()

	sessionID := mustCreateSession(t, svc, "claude")
	_, err := svc.Patterns.ExtractFromSession(ctx, sessionID)
	assert.ErrorIs(t, err, llm.ErrNotConfigured)

	failing := newTestServices(t, nil, &fakeCompleter{err: errors.New("provider down")})
	failingSession := mustCreateSession(t, failing, "claude")
	_, err = failing.Patterns.ExtractFromSession(ctx, failingSession)
	require.Error(t, err)

	withLLM := newTestServices(t, nil, &fakeCompleter{response: "{}"})
	_, err = withLLM.Patterns.ExtractFromSession(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPatternStats(t *testing.T) {
	svc := newTestServices(t, nil, nil)
	ctx := context.Background()

	seed := []HarvestPatternInput{
		{PatternType: "success", Domain: "database", Description: "a", Action: "x"},
		{PatternType: "success", Domain: "deploy", Description: "b", Action: "y"},
		{PatternType: "failure", Domain: "database", Description: "c", Action: "z"},
	}
	var firstID string
	for i, in := range seed {
		p, err := svc.Patterns.HarvestPattern(ctx, in)
		require.NoError(t, err)
		if i == 0 {
			firstID = p.ID
		}
	}
	_, err := svc.Patterns.RecordObservation(ctx, firstID, "", 5, "")
	require.NoError(t, err)

	stats, err := svc.Patterns.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalPatterns)
	assert.Equal(t, map[string]int{"success": 2, "failure": 1}, stats.ByType)
	assert.Equal(t, map[string]int{"database": 2, "deploy": 1}, stats.ByDomain)
	assert.Equal(t, 1, stats.TotalObservations)
}

func TestPatternEmbeddingText(t *testing.T) {
	assert.Equal(t, "desc. act", patternEmbeddingText("desc", "act", ""))
	assert.Equal(t, "desc. act. won", patternEmbeddingText("desc", "act", "won"))
}

package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sergeville/Archon/pkg/embeddings"
)

func TestSearchSessionsSemantic(t *testing.T) {
	embedder := &scriptedEmbedder{queue: [][]float32{
		unitVector(0), // summary of session A
		unitVector(1), // summary of session B
		unitVector(0), // search query
	}}
	svc := newTestServices(t, embeddings.NewWithProvider(embedder, "test-model"), nil)
	ctx := context.Background()

	a := mustCreateSession(t, svc, "scout")
	_, err := svc.Sessions.EndSession(ctx, a, "migrated the sessions table")
	require.NoError(t, err)

	b := mustCreateSession(t, svc, "scout")
	_, err = svc.Sessions.EndSession(ctx, b, "tuned the cache eviction policy")
	require.NoError(t, err)

	matches, err := svc.Sessions.SearchSemantic(ctx, "database migrations", 10, 0.7)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, a, matches[0].Session.ID)
	assert.InDelta(t, 1.0, matches[0].Similarity, 1e-6)
}

func TestSearchPatternsSemantic_DomainFilter(t *testing.T) {
	embedder := &scriptedEmbedder{queue: [][]float32{
		unitVector(0), // pattern in database domain
		unitVector(0), // pattern in api domain, same embedding
		unitVector(0), // query
		unitVector(0), // second query
	}}
	svc := newTestServices(t, embeddings.NewWithProvider(embedder, "test-model"), nil)
	ctx := context.Background()

	dbPattern, err := svc.Patterns.HarvestPattern(ctx, HarvestPatternInput{
		PatternType: "technical",
		Domain:      "database",
		Description: "Batch bulk loads",
		Action:      "Use COPY instead of row inserts",
	})
	require.NoError(t, err)

	_, err = svc.Patterns.HarvestPattern(ctx, HarvestPatternInput{
		PatternType: "technical",
		Domain:      "api",
		Description: "Cap list endpoints",
		Action:      "Always enforce a max limit",
	})
	require.NoError(t, err)

	all, err := svc.Patterns.SearchSemantic(ctx, "bulk loading", "", 10, 0.7)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	scoped, err := svc.Patterns.SearchSemantic(ctx, "bulk loading", "database", 10, 0.7)
	require.NoError(t, err)
	require.Len(t, scoped, 1)
	assert.Equal(t, dbPattern.ID, scoped[0].Pattern.ID)
}

func TestSearchMessagesSemantic_SessionScope(t *testing.T) {
	embedder := &scriptedEmbedder{queue: [][]float32{
		unitVector(0), // message in session A
		unitVector(0), // message in session B
		unitVector(0), // query
		unitVector(0), // scoped query
	}}
	svc := newTestServices(t, embeddings.NewWithProvider(embedder, "test-model"), nil)
	ctx := context.Background()

	a := mustCreateSession(t, svc, "scout")
	b := mustCreateSession(t, svc, "builder")

	msgA, err := svc.Sessions.StoreMessage(ctx, StoreMessageInput{
		SessionID: a, Role: "assistant", Message: "running the migration", GenerateEmbedding: true,
	})
	require.NoError(t, err)
	_, err = svc.Sessions.StoreMessage(ctx, StoreMessageInput{
		SessionID: b, Role: "assistant", Message: "running the migration again", GenerateEmbedding: true,
	})
	require.NoError(t, err)

	all, err := svc.Sessions.SearchMessagesSemantic(ctx, "migration", "", 10, 0.7)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	scoped, err := svc.Sessions.SearchMessagesSemantic(ctx, "migration", a, 10, 0.7)
	require.NoError(t, err)
	require.Len(t, scoped, 1)
	assert.Equal(t, msgA.ID, scoped[0].Message.ID)
}

func TestSearchSemantic_ThresholdBoundaries(t *testing.T) {
	embedder := &scriptedEmbedder{queue: [][]float32{
		unitVector(0), // summary of the matching session
		unitVector(1), // summary of the orthogonal session
		unitVector(0), // zero-threshold query
		unitVector(0), // limit-bounded query
		unitVector(0), // exact-match query
	}}
	svc := newTestServices(t, embeddings.NewWithProvider(embedder, "test-model"), nil)
	ctx := context.Background()

	a := mustCreateSession(t, svc, "scout")
	_, err := svc.Sessions.EndSession(ctx, a, "migrated the sessions table")
	require.NoError(t, err)
	b := mustCreateSession(t, svc, "scout")
	_, err = svc.Sessions.EndSession(ctx, b, "tuned the cache eviction policy")
	require.NoError(t, err)

	// An explicit threshold of 0 is honored rather than coerced to the
	// default: even fully dissimilar rows come back.
	all, err := svc.Sessions.SearchSemantic(ctx, "database migrations", 10, 0)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, a, all[0].Session.ID)
	assert.InDelta(t, 0.0, all[1].Similarity, 1e-6)

	// With no similarity floor the result is bounded by limit alone.
	limited, err := svc.Sessions.SearchSemantic(ctx, "database migrations", 1, 0)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, a, limited[0].Session.ID)

	// Threshold 1.0 keeps exact matches only.
	exact, err := svc.Sessions.SearchSemantic(ctx, "database migrations", 10, 1.0)
	require.NoError(t, err)
	require.Len(t, exact, 1)
	assert.Equal(t, a, exact[0].Session.ID)
}

func TestSearchAll_FansOut(t *testing.T) {
	embedder := &scriptedEmbedder{}
	svc := newTestServices(t, embeddings.NewWithProvider(embedder, "test-model"), nil)
	ctx := context.Background()

	sessionID := mustCreateSession(t, svc, "scout")
	_, err := svc.Sessions.EndSession(ctx, sessionID, "did the thing")
	require.NoError(t, err)
	_, err = svc.Patterns.HarvestPattern(ctx, HarvestPatternInput{
		PatternType: "success",
		Domain:      "workflow",
		Description: "Small steps",
		Action:      "Commit often",
	})
	require.NoError(t, err)
	_, err = svc.Sessions.StoreMessage(ctx, StoreMessageInput{
		SessionID: sessionID, Role: "user", Message: "please do the thing", GenerateEmbedding: true,
	})
	require.NoError(t, err)

	// Every embedding is on the same axis, so all three stores match.
	result, err := svc.Search.SearchAll(ctx, "the thing", 10, 0.7)
	require.NoError(t, err)
	assert.Len(t, result.Sessions, 1)
	assert.Len(t, result.Patterns, 1)
	assert.Len(t, result.Messages, 1)
}

func TestBackfillEmbeddings(t *testing.T) {
	embedder := &scriptedEmbedder{err: errors.New("provider offline")}
	svc := newTestServices(t, embeddings.NewWithProvider(embedder, "test-model"), nil)
	ctx := context.Background()

	// Provider down: the summary is stored but the embedding is not.
	sessionID := mustCreateSession(t, svc, "scout")
	_, err := svc.Sessions.EndSession(ctx, sessionID, "summary written during outage")
	require.NoError(t, err)

	_, err = svc.Patterns.HarvestPattern(ctx, HarvestPatternInput{
		PatternType: "success",
		Domain:      "workflow",
		Description: "Queue work",
		Action:      "Retry later",
	})
	require.NoError(t, err)

	_, err = svc.Sessions.StoreMessage(ctx, StoreMessageInput{
		SessionID: sessionID, Role: "user", Message: "hello", GenerateEmbedding: true,
	})
	require.NoError(t, err)

	// Provider back: the sweeps pick everything up.
	embedder.err = nil

	n, err := svc.Sessions.BackfillEmbeddings(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = svc.Patterns.BackfillEmbeddings(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = svc.Sessions.BackfillMessageEmbeddings(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	// Nothing left to do on a second pass.
	n, err = svc.Sessions.BackfillEmbeddings(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestBackfill_PacesProviderCalls(t *testing.T) {
	embedder := &scriptedEmbedder{err: errors.New("provider offline")}
	svc := newTestServices(t, embeddings.NewWithProvider(embedder, "test-model"), nil)
	ctx := context.Background()

	for _, summary := range []string{"first summary", "second summary"} {
		sessionID := mustCreateSession(t, svc, "scout")
		_, err := svc.Sessions.EndSession(ctx, sessionID, summary)
		require.NoError(t, err)
	}

	// The provider stays down: both rows are still attempted, spaced at
	// least the provider pause apart.
	embedder.calls = 0
	start := time.Now()
	n, err := svc.Sessions.BackfillEmbeddings(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Equal(t, 2, embedder.calls)
	assert.GreaterOrEqual(t, time.Since(start), embeddings.ProviderPause)
}

package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextSetAndGet(t *testing.T) {
	svc := newTestServices(t, nil, nil)
	ctx := context.Background()

	entry, err := svc.Context.Set(ctx, SetContextInput{
		Key:   "deploy/freeze",
		Value: map[string]interface{}{"frozen": true},
		SetBy: "release-bot",
	})
	require.NoError(t, err)
	assert.Equal(t, "deploy/freeze", entry.Key)

	got, err := svc.Context.Get(ctx, "deploy/freeze")
	require.NoError(t, err)
	assert.Equal(t, true, got.Value["frozen"])
	assert.Equal(t, "release-bot", got.SetBy)

	_, err = svc.Context.Get(ctx, "missing-key")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestContextSet_Validation(t *testing.T) {
	svc := newTestServices(t, nil, nil)
	ctx := context.Background()

	tests := []struct {
		name  string
		input SetContextInput
	}{
		{"missing key", SetContextInput{Value: map[string]interface{}{"a": 1}, SetBy: "x"}},
		{"missing value", SetContextInput{Key: "k", SetBy: "x"}},
		{"missing set_by", SetContextInput{Key: "k", Value: map[string]interface{}{"a": 1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Context.Set(ctx, tt.input)
			require.Error(t, err)
			assert.True(t, IsValidationError(err))
		})
	}
}

func TestContextHistoryLaw(t *testing.T) {
	svc := newTestServices(t, nil, nil)
	ctx := context.Background()

	_, err := svc.Context.Set(ctx, SetContextInput{
		Key:   "build/target",
		Value: map[string]interface{}{"target": "v1"},
		SetBy: "alice",
	})
	require.NoError(t, err)

	_, err = svc.Context.Set(ctx, SetContextInput{
		Key:   "build/target",
		Value: map[string]interface{}{"target": "v2"},
		SetBy: "bob",
	})
	require.NoError(t, err)

	history, err := svc.Context.History(ctx, "build/target", 0)
	require.NoError(t, err)
	require.Len(t, history, 2)

	// Newest first. The first write of a key has no old value.
	assert.Equal(t, "bob", history[0].ChangedBy)
	assert.Equal(t, "v2", history[0].NewValue["target"])
	assert.Equal(t, "v1", history[0].OldValue["target"])

	assert.Equal(t, "alice", history[1].ChangedBy)
	assert.Nil(t, history[1].OldValue)
}

func TestContextTimestamps(t *testing.T) {
	svc := newTestServices(t, nil, nil)
	ctx := context.Background()

	// Both the first write and an overwrite stamp the entry and its
	// history record from the same clock reading, so the entry is never
	// older than the newest history row.
	for _, setBy := range []string{"alice", "bob"} {
		entry, err := svc.Context.Set(ctx, SetContextInput{
			Key:   "build/target",
			Value: map[string]interface{}{"by": setBy},
			SetBy: setBy,
		})
		require.NoError(t, err)

		history, err := svc.Context.History(ctx, "build/target", 0)
		require.NoError(t, err)
		require.NotEmpty(t, history)
		assert.False(t, entry.UpdatedAt.Before(history[0].ChangedAt),
			"updated_at %v precedes changed_at %v", entry.UpdatedAt, history[0].ChangedAt)
	}
}

func TestContextExpiry(t *testing.T) {
	svc := newTestServices(t, nil, nil)
	ctx := context.Background()

	past := time.Now().UTC().Add(-time.Minute)
	_, err := svc.Context.Set(ctx, SetContextInput{
		Key:       "ephemeral",
		Value:     map[string]interface{}{"v": 1},
		SetBy:     "x",
		ExpiresAt: &past,
	})
	require.NoError(t, err)

	// Expired entries read as absent but keep their history.
	_, err = svc.Context.Get(ctx, "ephemeral")
	assert.ErrorIs(t, err, ErrNotFound)

	history, err := svc.Context.History(ctx, "ephemeral", 0)
	require.NoError(t, err)
	assert.Len(t, history, 1)

	// Re-setting without an expiry revives the key.
	_, err = svc.Context.Set(ctx, SetContextInput{
		Key:   "ephemeral",
		Value: map[string]interface{}{"v": 2},
		SetBy: "x",
	})
	require.NoError(t, err)
	got, err := svc.Context.Get(ctx, "ephemeral")
	require.NoError(t, err)
	assert.Nil(t, got.ExpiresAt)
}

func TestContextList_PrefixAndExpiry(t *testing.T) {
	svc := newTestServices(t, nil, nil)
	ctx := context.Background()

	for _, key := range []string{"deploy/freeze", "deploy/window", "build/target"} {
		_, err := svc.Context.Set(ctx, SetContextInput{
			Key:   key,
			Value: map[string]interface{}{"k": key},
			SetBy: "x",
		})
		require.NoError(t, err)
	}
	past := time.Now().UTC().Add(-time.Minute)
	_, err := svc.Context.Set(ctx, SetContextInput{
		Key:       "deploy/stale",
		Value:     map[string]interface{}{"k": "stale"},
		SetBy:     "x",
		ExpiresAt: &past,
	})
	require.NoError(t, err)

	all, err := svc.Context.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	deploys, err := svc.Context.List(ctx, "deploy/")
	require.NoError(t, err)
	assert.Len(t, deploys, 2)
}

func TestContextDelete(t *testing.T) {
	svc := newTestServices(t, nil, nil)
	ctx := context.Background()

	_, err := svc.Context.Set(ctx, SetContextInput{
		Key:   "temp",
		Value: map[string]interface{}{"v": 1},
		SetBy: "x",
	})
	require.NoError(t, err)

	removed, err := svc.Context.Delete(ctx, "temp")
	require.NoError(t, err)
	assert.True(t, removed)

	_, err = svc.Context.Get(ctx, "temp")
	assert.ErrorIs(t, err, ErrNotFound)

	// History outlives the entry.
	history, err := svc.Context.History(ctx, "temp", 0)
	require.NoError(t, err)
	assert.Len(t, history, 1)

	removed, err = svc.Context.Delete(ctx, "temp")
	require.NoError(t, err)
	assert.False(t, removed)
}

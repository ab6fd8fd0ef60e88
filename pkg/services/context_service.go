package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sergeville/Archon/ent"
	"github.com/sergeville/Archon/ent/sharedcontext"
	"github.com/sergeville/Archon/ent/sharedcontexthistory"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

// ContextService owns the shared context board: a key/value store with
// per-key write history and advisory expiry.
type ContextService struct {
	client *ent.Client
}

// NewContextService creates a new ContextService.
func NewContextService(client *ent.Client) *ContextService {
	if client == nil {
		panic("NewContextService: client must not be nil")
	}
	return &ContextService{client: client}
}

// SetContextInput contains one write to the board.
type SetContextInput struct {
	Key       string
	Value     map[string]interface{}
	SetBy     string
	SessionID string
	ExpiresAt *time.Time
}

// Set upserts a key. Every write appends a history record; the old value
// is null on the first write of a key.
func (s *ContextService) Set(ctx context.Context, input SetContextInput) (*ent.SharedContext, error) {
	if strings.TrimSpace(input.Key) == "" {
		return nil, NewValidationError("key", "context key is required")
	}
	if input.Value == nil {
		return nil, NewValidationError("value", "context value is required")
	}
	if strings.TrimSpace(input.SetBy) == "" {
		return nil, NewValidationError("set_by", "set_by is required")
	}

	// Write and history record commit together or not at all.
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	existing, err := tx.SharedContext.Query().
		Where(sharedcontext.Key(input.Key)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to look up context key: %w", err)
	}
	err = nil

	// One timestamp for both rows, so the entry's updated_at is never
	// behind the history record it produced.
	now := time.Now().UTC()

	var entry *ent.SharedContext
	var oldValue map[string]interface{}
	if existing != nil {
		oldValue = existing.Value
		builder := existing.Update().
			SetValue(input.Value).
			SetSetBy(input.SetBy).
			SetUpdatedAt(now)
		if input.SessionID != "" {
			builder.SetSessionID(input.SessionID)
		} else {
			builder.ClearSessionID()
		}
		if input.ExpiresAt != nil {
			builder.SetExpiresAt(*input.ExpiresAt)
		} else {
			builder.ClearExpiresAt()
		}
		entry, err = builder.Save(ctx)
	} else {
		builder := tx.SharedContext.Create().
			SetID(uuid.New().String()).
			SetKey(input.Key).
			SetValue(input.Value).
			SetSetBy(input.SetBy).
			SetUpdatedAt(now)
		if input.SessionID != "" {
			builder.SetSessionID(input.SessionID)
		}
		if input.ExpiresAt != nil {
			builder.SetExpiresAt(*input.ExpiresAt)
		}
		entry, err = builder.Save(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to set context key: %w", err)
	}

	historyBuilder := tx.SharedContextHistory.Create().
		SetID(uuid.New().String()).
		SetKey(input.Key).
		SetNewValue(input.Value).
		SetChangedBy(input.SetBy).
		SetChangedAt(now)
	if oldValue != nil {
		historyBuilder.SetOldValue(oldValue)
	}
	if _, err = historyBuilder.Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to record context history: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit context write: %w", err)
	}
	return entry, nil
}

// Get returns the latest value for a key. Absent and expired keys both
// return ErrNotFound.
func (s *ContextService) Get(ctx context.Context, key string) (*ent.SharedContext, error) {
	entry, err := s.client.SharedContext.Query().
		Where(sharedcontext.Key(key)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get context key: %w", err)
	}
	if expired(entry) {
		return nil, ErrNotFound
	}
	return entry, nil
}

// List returns unexpired entries ordered by updated_at desc, optionally
// restricted to keys with the given prefix.
func (s *ContextService) List(ctx context.Context, prefix string) ([]*ent.SharedContext, error) {
	q := s.client.SharedContext.Query()
	if prefix != "" {
		q = q.Where(sharedcontext.KeyHasPrefix(prefix))
	}

	entries, err := q.
		Order(ent.Desc(sharedcontext.FieldUpdatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list context entries: %w", err)
	}

	visible := entries[:0]
	for _, e := range entries {
		if !expired(e) {
			visible = append(visible, e)
		}
	}
	return visible, nil
}

// Delete removes a key. It reports whether a row was actually removed.
func (s *ContextService) Delete(ctx context.Context, key string) (bool, error) {
	n, err := s.client.SharedContext.Delete().
		Where(sharedcontext.Key(key)).
		Exec(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to delete context key: %w", err)
	}
	return n > 0, nil
}

// History returns a key's write history, newest first. The limit defaults
// to 20 and is capped at 100.
func (s *ContextService) History(ctx context.Context, key string, limit int) ([]*ent.SharedContextHistory, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	records, err := s.client.SharedContextHistory.Query().
		Where(sharedcontexthistory.Key(key)).
		Order(ent.Desc(sharedcontexthistory.FieldChangedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get context history: %w", err)
	}
	return records, nil
}

func expired(entry *ent.SharedContext) bool {
	return entry.ExpiresAt != nil && entry.ExpiresAt.Before(time.Now().UTC())
}

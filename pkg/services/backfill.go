package services

import (
	"context"
	"fmt"
	"time"

	"github.com/pgvector/pgvector-go"

	"github.com/sergeville/Archon/ent"
	"github.com/sergeville/Archon/ent/conversationmessage"
	entpattern "github.com/sergeville/Archon/ent/pattern"
	entsession "github.com/sergeville/Archon/ent/session"
	"github.com/sergeville/Archon/pkg/embeddings"
)

// backfillBatch bounds how many rows one sweep re-embeds per entity.
const backfillBatch = 50

// BackfillEmbeddings re-embeds sessions whose summary exists but whose
// embedding is missing, typically after a provider outage. Provider calls
// are spaced at least embeddings.ProviderPause apart.
func (s *SessionService) BackfillEmbeddings(ctx context.Context) (int, error) {
	if !s.embeddings.Enabled() {
		return 0, nil
	}

	sessions, err := s.client.Session.Query().
		Where(
			entsession.EmbeddingIsNil(),
			entsession.SummaryNotNil(),
		).
		Order(ent.Asc(entsession.FieldStartedAt)).
		Limit(backfillBatch).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load sessions for backfill: %w", err)
	}

	var updated int
	for i, sess := range sessions {
		if err := pauseBetweenProviderCalls(ctx, i); err != nil {
			return updated, err
		}
		vec := s.embeddings.Embed(ctx, *sess.Summary)
		if vec == nil {
			continue
		}
		if _, err := sess.Update().SetEmbedding(pgvector.NewVector(vec)).Save(ctx); err != nil {
			return updated, fmt.Errorf("failed to backfill session embedding: %w", err)
		}
		updated++
	}
	return updated, nil
}

// BackfillMessageEmbeddings re-embeds conversation messages missing their
// embedding.
func (s *SessionService) BackfillMessageEmbeddings(ctx context.Context) (int, error) {
	if !s.embeddings.Enabled() {
		return 0, nil
	}

	messages, err := s.client.ConversationMessage.Query().
		Where(conversationmessage.EmbeddingIsNil()).
		Order(ent.Asc(conversationmessage.FieldCreatedAt)).
		Limit(backfillBatch).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load messages for backfill: %w", err)
	}

	var updated int
	for i, msg := range messages {
		if err := pauseBetweenProviderCalls(ctx, i); err != nil {
			return updated, err
		}
		messageType := ""
		if msg.MessageType != nil {
			messageType = *msg.MessageType
		}
		vec := s.embeddings.Embed(ctx, messageEmbeddingText(string(msg.Role), msg.Message, messageType))
		if vec == nil {
			continue
		}
		if _, err := msg.Update().SetEmbedding(pgvector.NewVector(vec)).Save(ctx); err != nil {
			return updated, fmt.Errorf("failed to backfill message embedding: %w", err)
		}
		updated++
	}
	return updated, nil
}

// BackfillEmbeddings re-embeds patterns missing their embedding.
func (s *PatternService) BackfillEmbeddings(ctx context.Context) (int, error) {
	if !s.embeddings.Enabled() {
		return 0, nil
	}

	patterns, err := s.client.Pattern.Query().
		Where(entpattern.EmbeddingIsNil()).
		Order(ent.Asc(entpattern.FieldCreatedAt)).
		Limit(backfillBatch).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load patterns for backfill: %w", err)
	}

	var updated int
	for i, p := range patterns {
		if err := pauseBetweenProviderCalls(ctx, i); err != nil {
			return updated, err
		}
		outcome := ""
		if p.Outcome != nil {
			outcome = *p.Outcome
		}
		vec := s.embeddings.Embed(ctx, patternEmbeddingText(p.Description, p.Action, outcome))
		if vec == nil {
			continue
		}
		if _, err := p.Update().SetEmbedding(pgvector.NewVector(vec)).Save(ctx); err != nil {
			return updated, fmt.Errorf("failed to backfill pattern embedding: %w", err)
		}
		updated++
	}
	return updated, nil
}

// pauseBetweenProviderCalls rate-limits backfill sweeps. It is keyed on
// the number of provider calls already made, so failed embeds are paced
// the same as successful ones; the first call of a sweep goes straight
// through.
func pauseBetweenProviderCalls(ctx context.Context, call int) error {
	if call == 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(embeddings.ProviderPause):
		return nil
	}
}

package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sergeville/Archon/ent"
	enthandoff "github.com/sergeville/Archon/ent/handoff"
)

// HandoffService runs the work-transfer state machine between agents.
type HandoffService struct {
	client *ent.Client
}

// NewHandoffService creates a new HandoffService.
func NewHandoffService(client *ent.Client) *HandoffService {
	if client == nil {
		panic("NewHandoffService: client must not be nil")
	}
	return &HandoffService{client: client}
}

// CreateHandoffInput contains the handoff payload.
type CreateHandoffInput struct {
	SessionID string
	FromAgent string
	ToAgent   string
	Context   map[string]interface{}
	Notes     string
	Metadata  map[string]interface{}
}

// Create opens a pending handoff from one agent to another.
func (s *HandoffService) Create(ctx context.Context, input CreateHandoffInput) (*ent.Handoff, error) {
	if strings.TrimSpace(input.SessionID) == "" {
		return nil, NewValidationError("session_id", "session ID is required")
	}
	if strings.TrimSpace(input.FromAgent) == "" {
		return nil, NewValidationError("from_agent", "from_agent is required")
	}
	if strings.TrimSpace(input.ToAgent) == "" {
		return nil, NewValidationError("to_agent", "to_agent is required")
	}
	if input.FromAgent == input.ToAgent {
		return nil, NewValidationError("to_agent", "an agent cannot hand off to itself")
	}

	builder := s.client.Handoff.Create().
		SetID(uuid.New().String()).
		SetSessionID(input.SessionID).
		SetFromAgent(input.FromAgent).
		SetToAgent(input.ToAgent).
		SetStatus(enthandoff.StatusPending)

	if input.Context != nil {
		builder.SetContext(input.Context)
	}
	if input.Notes != "" {
		builder.SetNotes(input.Notes)
	}
	if input.Metadata != nil {
		builder.SetMetadata(input.Metadata)
	}

	handoff, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to create handoff: %w", err)
	}
	return handoff, nil
}

// Accept moves a pending handoff to accepted and stamps accepted_at.
func (s *HandoffService) Accept(ctx context.Context, handoffID string) (*ent.Handoff, error) {
	return s.transition(ctx, handoffID, enthandoff.StatusPending, enthandoff.StatusAccepted)
}

// Complete moves an accepted handoff to completed and stamps completed_at.
func (s *HandoffService) Complete(ctx context.Context, handoffID string) (*ent.Handoff, error) {
	return s.transition(ctx, handoffID, enthandoff.StatusAccepted, enthandoff.StatusCompleted)
}

// Reject moves a pending handoff to rejected.
func (s *HandoffService) Reject(ctx context.Context, handoffID string) (*ent.Handoff, error) {
	return s.transition(ctx, handoffID, enthandoff.StatusPending, enthandoff.StatusRejected)
}

// transition applies one edge of the state machine. The status predicate in
// the UPDATE makes the check-and-set atomic; a zero row count on an existing
// handoff means it was in the wrong state.
func (s *HandoffService) transition(ctx context.Context, handoffID string, from, to enthandoff.Status) (*ent.Handoff, error) {
	if strings.TrimSpace(handoffID) == "" {
		return nil, NewValidationError("handoff_id", "handoff ID is required")
	}

	builder := s.client.Handoff.Update().
		Where(enthandoff.ID(handoffID), enthandoff.StatusEQ(from)).
		SetStatus(to)

	now := time.Now().UTC()
	switch to {
	case enthandoff.StatusAccepted:
		builder.SetAcceptedAt(now)
	case enthandoff.StatusCompleted:
		builder.SetCompletedAt(now)
	}

	n, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update handoff: %w", err)
	}
	if n == 0 {
		current, err := s.Get(ctx, handoffID)
		if err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%w: handoff is %s, expected %s", ErrConflict, current.Status, from)
	}

	return s.Get(ctx, handoffID)
}

// ListPending returns an agent's open inbox, oldest first.
func (s *HandoffService) ListPending(ctx context.Context, agent string) ([]*ent.Handoff, error) {
	if strings.TrimSpace(agent) == "" {
		return nil, NewValidationError("agent", "agent name is required")
	}

	handoffs, err := s.client.Handoff.Query().
		Where(
			enthandoff.ToAgent(agent),
			enthandoff.StatusEQ(enthandoff.StatusPending),
		).
		Order(ent.Asc(enthandoff.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending handoffs: %w", err)
	}
	return handoffs, nil
}

// ListHandoffsFilter narrows List. Zero values mean "no filter". Agent
// matches either side of the handoff.
type ListHandoffsFilter struct {
	SessionID string
	Agent     string
	Status    string
	Limit     int
}

// List returns handoffs newest first.
func (s *HandoffService) List(ctx context.Context, filter ListHandoffsFilter) ([]*ent.Handoff, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultPatternLimit
	}

	q := s.client.Handoff.Query()
	if filter.SessionID != "" {
		q = q.Where(enthandoff.SessionID(filter.SessionID))
	}
	if filter.Agent != "" {
		q = q.Where(enthandoff.Or(
			enthandoff.FromAgent(filter.Agent),
			enthandoff.ToAgent(filter.Agent),
		))
	}
	if filter.Status != "" {
		q = q.Where(enthandoff.StatusEQ(enthandoff.Status(filter.Status)))
	}

	handoffs, err := q.
		Order(ent.Desc(enthandoff.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list handoffs: %w", err)
	}
	return handoffs, nil
}

// Get returns a handoff by ID.
func (s *HandoffService) Get(ctx context.Context, handoffID string) (*ent.Handoff, error) {
	handoff, err := s.client.Handoff.Get(ctx, handoffID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get handoff: %w", err)
	}
	return handoff, nil
}

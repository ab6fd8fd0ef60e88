package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sergeville/Archon/ent"
	entagent "github.com/sergeville/Archon/ent/agent"
)

// AgentService maintains the registry of coordination participants.
type AgentService struct {
	client *ent.Client
}

// NewAgentService creates a new AgentService.
func NewAgentService(client *ent.Client) *AgentService {
	if client == nil {
		panic("NewAgentService: client must not be nil")
	}
	return &AgentService{client: client}
}

// RegisterAgentInput contains the registration payload.
type RegisterAgentInput struct {
	Name         string
	Capabilities []string
	Metadata     map[string]interface{}
}

// Register upserts an agent by name. Registration always reactivates the
// agent and advances last_seen.
func (s *AgentService) Register(ctx context.Context, input RegisterAgentInput) (*ent.Agent, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, NewValidationError("name", "agent name is required")
	}

	now := time.Now().UTC()
	existing, err := s.client.Agent.Query().
		Where(entagent.Name(input.Name)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to look up agent: %w", err)
	}

	if existing != nil {
		builder := existing.Update().
			SetStatus(entagent.StatusActive).
			SetLastSeen(now)
		if input.Capabilities != nil {
			builder.SetCapabilities(input.Capabilities)
		}
		if input.Metadata != nil {
			builder.SetMetadata(input.Metadata)
		}
		updated, err := builder.Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to re-register agent: %w", err)
		}
		return updated, nil
	}

	builder := s.client.Agent.Create().
		SetID(uuid.New().String()).
		SetName(input.Name).
		SetStatus(entagent.StatusActive).
		SetLastSeen(now)
	if input.Capabilities != nil {
		builder.SetCapabilities(input.Capabilities)
	}
	if input.Metadata != nil {
		builder.SetMetadata(input.Metadata)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to register agent: %w", err)
	}
	return created, nil
}

// Heartbeat advances last_seen and forces the agent active. Unknown names
// fail with ErrNotFound; heartbeats do not implicitly register.
func (s *AgentService) Heartbeat(ctx context.Context, name string) (*ent.Agent, error) {
	updated, err := s.byName(ctx, name)
	if err != nil {
		return nil, err
	}

	agent, err := updated.Update().
		SetStatus(entagent.StatusActive).
		SetLastSeen(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to record heartbeat: %w", err)
	}
	return agent, nil
}

// Deactivate marks an agent inactive.
func (s *AgentService) Deactivate(ctx context.Context, name string) (*ent.Agent, error) {
	existing, err := s.byName(ctx, name)
	if err != nil {
		return nil, err
	}

	agent, err := existing.Update().
		SetStatus(entagent.StatusInactive).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to deactivate agent: %w", err)
	}
	return agent, nil
}

// List returns agents ordered by last_seen desc, optionally filtered by
// status.
func (s *AgentService) List(ctx context.Context, status string) ([]*ent.Agent, error) {
	q := s.client.Agent.Query()
	if status != "" {
		q = q.Where(entagent.StatusEQ(entagent.Status(status)))
	}

	agents, err := q.
		Order(ent.Desc(entagent.FieldLastSeen)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list agents: %w", err)
	}
	return agents, nil
}

// Get returns an agent by name, or ErrNotFound.
func (s *AgentService) Get(ctx context.Context, name string) (*ent.Agent, error) {
	return s.byName(ctx, name)
}

func (s *AgentService) byName(ctx context.Context, name string) (*ent.Agent, error) {
	if strings.TrimSpace(name) == "" {
		return nil, NewValidationError("name", "agent name is required")
	}
	agent, err := s.client.Agent.Query().
		Where(entagent.Name(name)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get agent: %w", err)
	}
	return agent, nil
}

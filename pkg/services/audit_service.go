package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/sergeville/Archon/ent"
	"github.com/sergeville/Archon/ent/auditentry"
)

// AuditService writes and reads the append-only system-wide timeline.
// Entries are never updated or deleted.
type AuditService struct {
	client *ent.Client
}

// NewAuditService creates a new AuditService.
func NewAuditService(client *ent.Client) *AuditService {
	if client == nil {
		panic("NewAuditService: client must not be nil")
	}
	return &AuditService{client: client}
}

// AppendAuditInput contains one audit entry.
type AppendAuditInput struct {
	Source    string
	Action    string
	Agent     string
	Target    string
	RiskLevel string
	Outcome   string
	Metadata  map[string]interface{}
	SessionID string
}

// Append records one entry on the timeline.
func (s *AuditService) Append(ctx context.Context, input AppendAuditInput) (*ent.AuditEntry, error) {
	if strings.TrimSpace(input.Source) == "" {
		return nil, NewValidationError("source", "source is required")
	}
	if strings.TrimSpace(input.Action) == "" {
		return nil, NewValidationError("action", "action is required")
	}

	builder := s.client.AuditEntry.Create().
		SetID(uuid.New().String()).
		SetSource(input.Source).
		SetAction(input.Action)

	if input.Agent != "" {
		builder.SetAgent(input.Agent)
	}
	if input.Target != "" {
		builder.SetTarget(input.Target)
	}
	if input.RiskLevel != "" {
		builder.SetRiskLevel(input.RiskLevel)
	}
	if input.Outcome != "" {
		builder.SetOutcome(input.Outcome)
	}
	if input.Metadata != nil {
		builder.SetMetadata(input.Metadata)
	}
	if input.SessionID != "" {
		builder.SetSessionID(input.SessionID)
	}

	entry, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to append audit entry: %w", err)
	}
	return entry, nil
}

// QueryAuditFilter narrows Query. Zero values mean "no filter".
type QueryAuditFilter struct {
	Source    string
	Agent     string
	Action    string
	SessionID string
	Limit     int
}

// Query returns audit entries newest first.
func (s *AuditService) Query(ctx context.Context, filter QueryAuditFilter) ([]*ent.AuditEntry, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultPatternLimit
	}

	q := s.client.AuditEntry.Query()
	if filter.Source != "" {
		q = q.Where(auditentry.Source(filter.Source))
	}
	if filter.Agent != "" {
		q = q.Where(auditentry.Agent(filter.Agent))
	}
	if filter.Action != "" {
		q = q.Where(auditentry.Action(filter.Action))
	}
	if filter.SessionID != "" {
		q = q.Where(auditentry.SessionID(filter.SessionID))
	}

	entries, err := q.
		Order(ent.Desc(auditentry.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query audit log: %w", err)
	}
	return entries, nil
}

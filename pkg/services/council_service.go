package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sergeville/Archon/ent"
	"github.com/sergeville/Archon/ent/councildecision"
)

// CouncilService is the deterministic risk gate in front of work-order
// execution. Every evaluation applies a fixed table:
//
//	LOW, MED    → approved     (auto)
//	HIGH        → pending_human (auto, awaits human resolution)
//	DESTRUCTIVE → blocked      (auto)
type CouncilService struct {
	client *ent.Client
}

// NewCouncilService creates a new CouncilService.
func NewCouncilService(client *ent.Client) *CouncilService {
	if client == nil {
		panic("NewCouncilService: client must not be nil")
	}
	return &CouncilService{client: client}
}

// Evaluate applies the risk table to a work order and persists the decision.
func (s *CouncilService) Evaluate(ctx context.Context, workOrderID, riskLevel, notes string) (*ent.CouncilDecision, error) {
	if strings.TrimSpace(workOrderID) == "" {
		return nil, NewValidationError("work_order_id", "work order ID is required")
	}

	risk := councildecision.RiskLevel(strings.ToUpper(riskLevel))
	var decision councildecision.Decision
	switch risk {
	case councildecision.RiskLevelLOW, councildecision.RiskLevelMED:
		decision = councildecision.DecisionApproved
	case councildecision.RiskLevelHIGH:
		decision = councildecision.DecisionPendingHuman
	case councildecision.RiskLevelDESTRUCTIVE:
		decision = councildecision.DecisionBlocked
	default:
		return nil, NewValidationError("risk_level", fmt.Sprintf("invalid risk level '%s', must be LOW, MED, HIGH, or DESTRUCTIVE", riskLevel))
	}

	builder := s.client.CouncilDecision.Create().
		SetID(uuid.New().String()).
		SetWorkOrderID(workOrderID).
		SetRiskLevel(risk).
		SetDecision(decision).
		SetDecidedBy(councildecision.DecidedByAuto)
	if notes != "" {
		builder.SetNotes(notes)
	}

	record, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to record council decision: %w", err)
	}
	return record, nil
}

// Queue returns the unresolved pending_human decisions, oldest first.
func (s *CouncilService) Queue(ctx context.Context) ([]*ent.CouncilDecision, error) {
	decisions, err := s.client.CouncilDecision.Query().
		Where(
			councildecision.DecisionEQ(councildecision.DecisionPendingHuman),
			councildecision.ResolvedAtIsNil(),
		).
		Order(ent.Asc(councildecision.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load council queue: %w", err)
	}
	return decisions, nil
}

// Approve resolves a pending_human decision to approved.
func (s *CouncilService) Approve(ctx context.Context, decisionID, notes string) (*ent.CouncilDecision, error) {
	return s.resolve(ctx, decisionID, councildecision.DecisionApproved, notes)
}

// Reject resolves a pending_human decision to blocked.
func (s *CouncilService) Reject(ctx context.Context, decisionID, notes string) (*ent.CouncilDecision, error) {
	return s.resolve(ctx, decisionID, councildecision.DecisionBlocked, notes)
}

func (s *CouncilService) resolve(ctx context.Context, decisionID string, to councildecision.Decision, notes string) (*ent.CouncilDecision, error) {
	if strings.TrimSpace(decisionID) == "" {
		return nil, NewValidationError("decision_id", "decision ID is required")
	}

	builder := s.client.CouncilDecision.Update().
		Where(
			councildecision.ID(decisionID),
			councildecision.DecisionEQ(councildecision.DecisionPendingHuman),
			councildecision.ResolvedAtIsNil(),
		).
		SetDecision(to).
		SetDecidedBy(councildecision.DecidedByHuman).
		SetResolvedAt(time.Now().UTC())
	if notes != "" {
		builder.SetNotes(notes)
	}

	n, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve council decision: %w", err)
	}
	if n == 0 {
		current, err := s.get(ctx, decisionID)
		if err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%w: decision is %s and not awaiting human resolution", ErrConflict, current.Decision)
	}

	return s.get(ctx, decisionID)
}

// ListDecisionsFilter narrows ListDecisions. Zero values mean "no filter".
type ListDecisionsFilter struct {
	WorkOrderID string
	Decision    string
	Limit       int
}

// ListDecisions returns decisions newest first.
func (s *CouncilService) ListDecisions(ctx context.Context, filter ListDecisionsFilter) ([]*ent.CouncilDecision, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultPatternLimit
	}

	q := s.client.CouncilDecision.Query()
	if filter.WorkOrderID != "" {
		q = q.Where(councildecision.WorkOrderID(filter.WorkOrderID))
	}
	if filter.Decision != "" {
		q = q.Where(councildecision.DecisionEQ(councildecision.Decision(filter.Decision)))
	}

	decisions, err := q.
		Order(ent.Desc(councildecision.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list council decisions: %w", err)
	}
	return decisions, nil
}

func (s *CouncilService) get(ctx context.Context, decisionID string) (*ent.CouncilDecision, error) {
	record, err := s.client.CouncilDecision.Get(ctx, decisionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get council decision: %w", err)
	}
	return record, nil
}

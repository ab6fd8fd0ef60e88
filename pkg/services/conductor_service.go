package services

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sergeville/Archon/ent"
	"github.com/sergeville/Archon/ent/conductorlog"
)

// ConductorService records delegation reasoning by conductor agents and the
// eventual outcome of each delegation.
type ConductorService struct {
	client *ent.Client
}

// NewConductorService creates a new ConductorService.
func NewConductorService(client *ent.Client) *ConductorService {
	if client == nil {
		panic("NewConductorService: client must not be nil")
	}
	return &ConductorService{client: client}
}

// CreateConductorLogInput contains one delegation record.
type CreateConductorLogInput struct {
	WorkOrderID      string
	MissionID        string
	ConductorAgent   string
	DelegationTarget string
	Reasoning        string
	InjectedContext  map[string]interface{}
	DecisionFactors  []string
	Confidence       *float64
}

// Create records a delegation with outcome unset. Confidence is clamped
// to [0,1].
func (s *ConductorService) Create(ctx context.Context, input CreateConductorLogInput) (*ent.ConductorLog, error) {
	if strings.TrimSpace(input.WorkOrderID) == "" {
		return nil, NewValidationError("work_order_id", "work order ID is required")
	}
	if strings.TrimSpace(input.ConductorAgent) == "" {
		return nil, NewValidationError("conductor_agent", "conductor agent is required")
	}
	if strings.TrimSpace(input.DelegationTarget) == "" {
		return nil, NewValidationError("delegation_target", "delegation target is required")
	}

	builder := s.client.ConductorLog.Create().
		SetID(uuid.New().String()).
		SetWorkOrderID(input.WorkOrderID).
		SetConductorAgent(input.ConductorAgent).
		SetDelegationTarget(input.DelegationTarget).
		SetReasoning(input.Reasoning)

	if input.MissionID != "" {
		builder.SetMissionID(input.MissionID)
	}
	if input.InjectedContext != nil {
		builder.SetInjectedContext(input.InjectedContext)
	}
	if len(input.DecisionFactors) > 0 {
		builder.SetDecisionFactors(input.DecisionFactors)
	}
	if input.Confidence != nil {
		builder.SetConfidence(math.Min(1, math.Max(0, *input.Confidence)))
	}

	record, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create conductor log: %w", err)
	}
	return record, nil
}

// UpdateOutcome closes a delegation record. A record takes exactly one
// outcome; a second update fails with ErrConflict.
func (s *ConductorService) UpdateOutcome(ctx context.Context, logID, outcome, notes string) (*ent.ConductorLog, error) {
	result := conductorlog.Outcome(outcome)
	switch result {
	case conductorlog.OutcomeSuccess, conductorlog.OutcomeFailure, conductorlog.OutcomePartial:
	default:
		return nil, NewValidationError("outcome", fmt.Sprintf("invalid outcome '%s', must be success, failure, or partial", outcome))
	}

	builder := s.client.ConductorLog.Update().
		Where(
			conductorlog.ID(logID),
			conductorlog.OutcomeIsNil(),
		).
		SetOutcome(result).
		SetOutcomeAt(time.Now().UTC())
	if notes != "" {
		builder.SetOutcomeNotes(notes)
	}

	n, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update conductor log outcome: %w", err)
	}
	if n == 0 {
		current, err := s.Get(ctx, logID)
		if err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%w: outcome already recorded as %s", ErrConflict, *current.Outcome)
	}

	return s.Get(ctx, logID)
}

// Get returns a conductor log record by ID.
func (s *ConductorService) Get(ctx context.Context, logID string) (*ent.ConductorLog, error) {
	record, err := s.client.ConductorLog.Get(ctx, logID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get conductor log: %w", err)
	}
	return record, nil
}

// WorkOrderSummary aggregates the delegation records of one work order.
type WorkOrderSummary struct {
	Total     int `json:"total"`
	Successes int `json:"successes"`
	Failures  int `json:"failures"`
	Partials  int `json:"partials"`
	Pending   int `json:"pending"`
}

// ListByWorkOrder returns a work order's delegations in creation order,
// with an outcome summary.
func (s *ConductorService) ListByWorkOrder(ctx context.Context, workOrderID string) ([]*ent.ConductorLog, *WorkOrderSummary, error) {
	records, err := s.client.ConductorLog.Query().
		Where(conductorlog.WorkOrderID(workOrderID)).
		Order(ent.Asc(conductorlog.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list conductor logs: %w", err)
	}

	summary := &WorkOrderSummary{Total: len(records)}
	for _, r := range records {
		switch {
		case r.Outcome == nil:
			summary.Pending++
		case *r.Outcome == conductorlog.OutcomeSuccess:
			summary.Successes++
		case *r.Outcome == conductorlog.OutcomeFailure:
			summary.Failures++
		case *r.Outcome == conductorlog.OutcomePartial:
			summary.Partials++
		}
	}
	return records, summary, nil
}

// DelegationStats aggregates one (conductor, target) pair.
type DelegationStats struct {
	ConductorAgent   string   `json:"conductor_agent"`
	DelegationTarget string   `json:"delegation_target"`
	TotalDelegations int      `json:"total_delegations"`
	AvgConfidence    *float64 `json:"avg_confidence"`
	SuccessRatePct   *float64 `json:"success_rate_pct"`
}

// Stats groups delegations by (conductor_agent, delegation_target). Mean
// confidence is nil when no record in the group carries one; the success
// rate covers decided outcomes only and is nil when none are decided.
// Results are sorted by total descending, then conductor ascending.
func (s *ConductorService) Stats(ctx context.Context) ([]DelegationStats, error) {
	records, err := s.client.ConductorLog.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load conductor logs: %w", err)
	}

	type bucket struct {
		total         int
		confidenceSum float64
		confidenceN   int
		successes     int
		decided       int
	}
	type pair struct{ conductor, target string }

	buckets := make(map[pair]*bucket)
	for _, r := range records {
		key := pair{r.ConductorAgent, r.DelegationTarget}
		b := buckets[key]
		if b == nil {
			b = &bucket{}
			buckets[key] = b
		}
		b.total++
		if r.Confidence != nil {
			b.confidenceSum += *r.Confidence
			b.confidenceN++
		}
		if r.Outcome != nil {
			b.decided++
			if *r.Outcome == conductorlog.OutcomeSuccess {
				b.successes++
			}
		}
	}

	stats := make([]DelegationStats, 0, len(buckets))
	for key, b := range buckets {
		entry := DelegationStats{
			ConductorAgent:   key.conductor,
			DelegationTarget: key.target,
			TotalDelegations: b.total,
		}
		if b.confidenceN > 0 {
			avg := roundTo(b.confidenceSum/float64(b.confidenceN), 3)
			entry.AvgConfidence = &avg
		}
		if b.decided > 0 {
			rate := roundTo(float64(b.successes)/float64(b.decided)*100, 1)
			entry.SuccessRatePct = &rate
		}
		stats = append(stats, entry)
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].TotalDelegations != stats[j].TotalDelegations {
			return stats[i].TotalDelegations > stats[j].TotalDelegations
		}
		return stats[i].ConductorAgent < stats[j].ConductorAgent
	})
	return stats, nil
}

func roundTo(v float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(v*factor) / factor
}

package services

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"

	"github.com/sergeville/Archon/ent"
	entpattern "github.com/sergeville/Archon/ent/pattern"
	"github.com/sergeville/Archon/ent/patternobservation"
	"github.com/sergeville/Archon/pkg/embeddings"
	"github.com/sergeville/Archon/pkg/llm"
)

// extractionConfidenceCutoff drops low-confidence pattern candidates before
// harvesting.
const extractionConfidenceCutoff = 0.6

// defaultPatternLimit bounds pattern list queries.
const defaultPatternLimit = 50

// PatternService stores reusable patterns and their observations.
type PatternService struct {
	client     *ent.Client
	db         *sql.DB
	embeddings *embeddings.Gateway
	completer  llm.Completer
	sessions   *SessionService
}

// NewPatternService creates a new PatternService.
func NewPatternService(client *ent.Client, db *sql.DB, gateway *embeddings.Gateway, completer llm.Completer, sessions *SessionService) *PatternService {
	if client == nil {
		panic("NewPatternService: client must not be nil")
	}
	if db == nil {
		panic("NewPatternService: db must not be nil")
	}
	if gateway == nil {
		panic("NewPatternService: gateway must not be nil")
	}
	if sessions == nil {
		panic("NewPatternService: sessions must not be nil")
	}
	return &PatternService{
		client:     client,
		db:         db,
		embeddings: gateway,
		completer:  completer,
		sessions:   sessions,
	}
}

// HarvestPatternInput contains one pattern to store.
type HarvestPatternInput struct {
	PatternType string
	Domain      string
	Description string
	Action      string
	Outcome     string
	Context     map[string]interface{}
	Metadata    map[string]interface{}
	CreatedBy   string
}

// HarvestPattern stores a new pattern. The embedding covers description,
// action, and outcome together.
func (s *PatternService) HarvestPattern(ctx context.Context, input HarvestPatternInput) (*ent.Pattern, error) {
	patternType := entpattern.PatternType(input.PatternType)
	switch patternType {
	case entpattern.PatternTypeSuccess, entpattern.PatternTypeFailure,
		entpattern.PatternTypeTechnical, entpattern.PatternTypeProcess:
	default:
		return nil, NewValidationError("pattern_type", fmt.Sprintf("invalid pattern type '%s'", input.PatternType))
	}
	if strings.TrimSpace(input.Domain) == "" {
		return nil, NewValidationError("domain", "domain is required")
	}
	if strings.TrimSpace(input.Description) == "" {
		return nil, NewValidationError("description", "description is required")
	}
	if strings.TrimSpace(input.Action) == "" {
		return nil, NewValidationError("action", "action is required")
	}

	builder := s.client.Pattern.Create().
		SetID(uuid.New().String()).
		SetPatternType(patternType).
		SetDomain(input.Domain).
		SetDescription(input.Description).
		SetAction(input.Action)

	if input.Outcome != "" {
		builder.SetOutcome(input.Outcome)
	}
	if input.Context != nil {
		builder.SetContext(input.Context)
	}
	if input.Metadata != nil {
		builder.SetMetadata(input.Metadata)
	}
	if input.CreatedBy != "" {
		builder.SetCreatedBy(input.CreatedBy)
	}
	if vec := s.embeddings.Embed(ctx, patternEmbeddingText(input.Description, input.Action, input.Outcome)); vec != nil {
		builder.SetEmbedding(pgvector.NewVector(vec))
	}

	pattern, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to harvest pattern: %w", err)
	}
	return pattern, nil
}

// RecordObservation appends one observation of a pattern being applied.
func (s *PatternService) RecordObservation(ctx context.Context, patternID, sessionID string, successRating int, feedback string) (*ent.PatternObservation, error) {
	if successRating != 0 && (successRating < 1 || successRating > 5) {
		return nil, NewValidationError("success_rating", "success rating must be between 1 and 5")
	}

	exists, err := s.client.Pattern.Query().
		Where(entpattern.ID(patternID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check pattern: %w", err)
	}
	if !exists {
		return nil, ErrNotFound
	}

	builder := s.client.PatternObservation.Create().
		SetID(uuid.New().String()).
		SetPatternID(patternID).
		SetObservedAt(time.Now().UTC())

	if sessionID != "" {
		builder.SetSessionID(sessionID)
	}
	if successRating != 0 {
		builder.SetSuccessRating(successRating)
	}
	if feedback != "" {
		builder.SetFeedback(feedback)
	}

	obs, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to record observation: %w", err)
	}
	return obs, nil
}

// PatternMatch is one semantic search hit.
type PatternMatch struct {
	Pattern    *ent.Pattern `json:"pattern"`
	Similarity float64      `json:"similarity"`
}

// SearchSemantic finds patterns whose embedding is close to the query text.
// The domain filter applies after the vector search. A negative threshold
// selects the default; zero disables the similarity floor.
func (s *PatternService) SearchSemantic(ctx context.Context, query, domain string, limit int, threshold float64) ([]PatternMatch, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if threshold < 0 {
		threshold = DefaultSearchThreshold
	}

	vec := s.embeddings.Embed(ctx, query)
	if vec == nil {
		slog.Debug("Pattern search skipped, no query embedding", "query_len", len(query))
		return []PatternMatch{}, nil
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT pattern_id, similarity FROM search_patterns_semantic($1, $2, $3)`,
		pgvector.NewVector(vec), limit, threshold)
	if err != nil {
		return nil, fmt.Errorf("semantic pattern search failed: %w", err)
	}
	defer rows.Close()

	ids, similarities, err := scanMatches(rows)
	if err != nil {
		return nil, fmt.Errorf("semantic pattern search failed: %w", err)
	}
	if len(ids) == 0 {
		return []PatternMatch{}, nil
	}

	patterns, err := s.client.Pattern.Query().
		Where(entpattern.IDIn(ids...)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load matched patterns: %w", err)
	}

	byID := make(map[string]*ent.Pattern, len(patterns))
	for _, p := range patterns {
		byID[p.ID] = p
	}

	matches := make([]PatternMatch, 0, len(ids))
	for i, id := range ids {
		p, ok := byID[id]
		if !ok {
			continue
		}
		if domain != "" && p.Domain != domain {
			continue
		}
		matches = append(matches, PatternMatch{Pattern: p, Similarity: similarities[i]})
	}
	return matches, nil
}

// ListPatterns returns patterns newest first, with optional type and domain
// filters.
func (s *PatternService) ListPatterns(ctx context.Context, patternType, domain string, limit int) ([]*ent.Pattern, error) {
	if limit <= 0 {
		limit = defaultPatternLimit
	}

	q := s.client.Pattern.Query()
	if patternType != "" {
		q = q.Where(entpattern.PatternTypeEQ(entpattern.PatternType(patternType)))
	}
	if domain != "" {
		q = q.Where(entpattern.Domain(domain))
	}

	patterns, err := q.
		Order(ent.Desc(entpattern.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list patterns: %w", err)
	}
	return patterns, nil
}

// PatternWithStats is a pattern plus its observation aggregates.
type PatternWithStats struct {
	Pattern          *ent.Pattern `json:"pattern"`
	ObservationCount int          `json:"observation_count"`
	AverageRating    *float64     `json:"average_rating"`
}

// GetWithStats returns a pattern with its observation count and average
// success rating. AverageRating is nil when no observation carries a rating.
func (s *PatternService) GetWithStats(ctx context.Context, patternID string) (*PatternWithStats, error) {
	pattern, err := s.client.Pattern.Get(ctx, patternID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get pattern: %w", err)
	}

	observations, err := s.client.PatternObservation.Query().
		Where(patternobservation.PatternID(patternID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load observations: %w", err)
	}

	stats := &PatternWithStats{
		Pattern:          pattern,
		ObservationCount: len(observations),
	}
	var sum, rated int
	for _, obs := range observations {
		if obs.SuccessRating != nil {
			sum += *obs.SuccessRating
			rated++
		}
	}
	if rated > 0 {
		avg := float64(sum) / float64(rated)
		stats.AverageRating = &avg
	}
	return stats, nil
}

// ExtractFromSession runs the LLM pattern extractor over a session and
// harvests every candidate at or above the confidence cutoff.
func (s *PatternService) ExtractFromSession(ctx context.Context, sessionID string) ([]*ent.Pattern, error) {
	if s.completer == nil {
		return nil, llm.ErrNotConfigured
	}

	session, err := s.sessions.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	extracted, err := llm.ExtractPatterns(ctx, s.completer, sessionHeader(session), eventLines(session.Edges.Events))
	if err != nil {
		return nil, err
	}

	var harvested []*ent.Pattern
	for _, candidate := range extracted.Patterns {
		if candidate.Confidence < extractionConfidenceCutoff {
			slog.Debug("Skipping low-confidence pattern candidate",
				"session_id", sessionID,
				"domain", candidate.Domain,
				"confidence", candidate.Confidence)
			continue
		}

		pattern, err := s.HarvestPattern(ctx, HarvestPatternInput{
			PatternType: candidate.PatternType,
			Domain:      candidate.Domain,
			Description: candidate.Description,
			Action:      candidate.Action,
			Outcome:     candidate.Outcome,
			Context: map[string]interface{}{
				"source_session_id": sessionID,
				"confidence":        candidate.Confidence,
			},
			CreatedBy: "pattern_extractor",
		})
		if err != nil {
			slog.Error("Failed to harvest extracted pattern",
				"session_id", sessionID,
				"domain", candidate.Domain,
				"error", err)
			continue
		}
		harvested = append(harvested, pattern)
	}

	slog.Info("Pattern extraction completed",
		"session_id", sessionID,
		"candidates", len(extracted.Patterns),
		"harvested", len(harvested))
	return harvested, nil
}

// PatternStats summarizes the pattern store.
type PatternStats struct {
	TotalPatterns     int            `json:"total_patterns"`
	ByType            map[string]int `json:"by_type"`
	ByDomain          map[string]int `json:"by_domain"`
	TotalObservations int            `json:"total_observations"`
}

// Stats returns pattern counts grouped by type and domain plus the total
// observation count.
func (s *PatternService) Stats(ctx context.Context) (*PatternStats, error) {
	patterns, err := s.client.Pattern.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load patterns: %w", err)
	}

	stats := &PatternStats{
		TotalPatterns: len(patterns),
		ByType:        make(map[string]int),
		ByDomain:      make(map[string]int),
	}
	for _, p := range patterns {
		stats.ByType[string(p.PatternType)]++
		stats.ByDomain[p.Domain]++
	}

	obsCount, err := s.client.PatternObservation.Query().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count observations: %w", err)
	}
	stats.TotalObservations = obsCount
	return stats, nil
}

// patternEmbeddingText joins the searchable parts of a pattern.
func patternEmbeddingText(description, action, outcome string) string {
	text := description + ". " + action
	if outcome != "" {
		text += ". " + outcome
	}
	return text
}

package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"

	"github.com/sergeville/Archon/ent"
	"github.com/sergeville/Archon/ent/conversationmessage"
	entsession "github.com/sergeville/Archon/ent/session"
	"github.com/sergeville/Archon/ent/sessionevent"
	"github.com/sergeville/Archon/pkg/embeddings"
	"github.com/sergeville/Archon/pkg/llm"
)

// DefaultSearchThreshold is the cosine-similarity cutoff applied to
// semantic searches when the caller does not supply one.
const DefaultSearchThreshold = 0.7

// defaultListLimit bounds list queries when the caller does not set a limit.
const defaultListLimit = 20

// SessionService owns the session lifecycle and its event/message history.
// Semantic lookups go through server-side SQL functions on the raw
// connection; everything else goes through ent.
type SessionService struct {
	client     *ent.Client
	db         *sql.DB
	embeddings *embeddings.Gateway
	completer  llm.Completer
}

// NewSessionService creates a new SessionService. The completer may be nil
// when no LLM provider is configured; summarization then returns
// ErrNotConfigured.
func NewSessionService(client *ent.Client, db *sql.DB, gateway *embeddings.Gateway, completer llm.Completer) *SessionService {
	if client == nil {
		panic("NewSessionService: client must not be nil")
	}
	if db == nil {
		panic("NewSessionService: db must not be nil")
	}
	if gateway == nil {
		panic("NewSessionService: gateway must not be nil")
	}
	return &SessionService{
		client:     client,
		db:         db,
		embeddings: gateway,
		completer:  completer,
	}
}

// CreateSessionInput contains the domain-level data needed to start a session.
type CreateSessionInput struct {
	Agent     string
	ProjectID string
	Context   map[string]interface{}
	Metadata  map[string]interface{}
}

// CreateSession opens a new session for an agent. The session stays active
// until EndSession sets ended_at.
func (s *SessionService) CreateSession(ctx context.Context, input CreateSessionInput) (*ent.Session, error) {
	if strings.TrimSpace(input.Agent) == "" {
		return nil, NewValidationError("agent_name", "agent name is required")
	}

	builder := s.client.Session.Create().
		SetID(uuid.New().String()).
		SetAgentName(input.Agent).
		SetStartedAt(time.Now().UTC())

	if input.ProjectID != "" {
		builder.SetProjectID(input.ProjectID)
	}
	if input.Context != nil {
		builder.SetContext(input.Context)
	}
	if input.Metadata != nil {
		builder.SetMetadata(input.Metadata)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return created, nil
}

// AddEvent appends an event to a session. The embedding is derived from the
// event type and payload; a missing embedding never fails the append.
func (s *SessionService) AddEvent(ctx context.Context, sessionID, eventType string, payload map[string]interface{}) (*ent.SessionEvent, error) {
	if strings.TrimSpace(eventType) == "" {
		return nil, NewValidationError("event_type", "event type is required")
	}
	if err := s.requireSession(ctx, sessionID); err != nil {
		return nil, err
	}

	builder := s.client.SessionEvent.Create().
		SetID(uuid.New().String()).
		SetSessionID(sessionID).
		SetEventType(eventType).
		SetTimestamp(time.Now().UTC())

	if payload != nil {
		builder.SetPayload(payload)
	}
	if vec := s.embeddings.Embed(ctx, eventEmbeddingText(eventType, payload)); vec != nil {
		builder.SetEmbedding(pgvector.NewVector(vec))
	}

	event, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to add session event: %w", err)
	}
	return event, nil
}

// StoreMessageInput contains one conversation message to persist.
type StoreMessageInput struct {
	SessionID         string
	Role              string
	Message           string
	ToolsUsed         []string
	MessageType       string
	Subtype           string
	Metadata          map[string]interface{}
	GenerateEmbedding bool
}

// StoreMessage persists a conversation message. Role must be one of
// user, assistant, system.
func (s *SessionService) StoreMessage(ctx context.Context, input StoreMessageInput) (*ent.ConversationMessage, error) {
	role := conversationmessage.Role(input.Role)
	switch role {
	case conversationmessage.RoleUser, conversationmessage.RoleAssistant, conversationmessage.RoleSystem:
	default:
		return nil, NewValidationError("role", fmt.Sprintf("invalid role '%s', must be user, assistant, or system", input.Role))
	}
	if input.Message == "" {
		return nil, NewValidationError("message", "message text is required")
	}
	if err := s.requireSession(ctx, input.SessionID); err != nil {
		return nil, err
	}

	builder := s.client.ConversationMessage.Create().
		SetID(uuid.New().String()).
		SetSessionID(input.SessionID).
		SetRole(role).
		SetMessage(input.Message)

	if len(input.ToolsUsed) > 0 {
		builder.SetToolsUsed(input.ToolsUsed)
	}
	if input.MessageType != "" {
		builder.SetMessageType(input.MessageType)
	}
	if input.Subtype != "" {
		builder.SetSubtype(input.Subtype)
	}
	if input.Metadata != nil {
		builder.SetMetadata(input.Metadata)
	}
	if input.GenerateEmbedding {
		if vec := s.embeddings.Embed(ctx, messageEmbeddingText(input.Role, input.Message, input.MessageType)); vec != nil {
			builder.SetEmbedding(pgvector.NewVector(vec))
		}
	}

	msg, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to store message: %w", err)
	}
	return msg, nil
}

// EndSession closes a session. An optional summary is stored and embedded.
func (s *SessionService) EndSession(ctx context.Context, sessionID, summary string) (*ent.Session, error) {
	builder := s.client.Session.UpdateOneID(sessionID).
		SetEndedAt(time.Now().UTC())

	if summary != "" {
		builder.SetSummary(summary)
		if vec := s.embeddings.Embed(ctx, summary); vec != nil {
			builder.SetEmbedding(pgvector.NewVector(vec))
		}
	}

	updated, err := builder.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to end session: %w", err)
	}
	return updated, nil
}

// GetSession returns a session with its events loaded in chronological
// order. Timestamp ties break on insertion order.
func (s *SessionService) GetSession(ctx context.Context, sessionID string) (*ent.Session, error) {
	session, err := s.client.Session.Query().
		Where(entsession.ID(sessionID)).
		WithEvents(func(q *ent.SessionEventQuery) {
			q.Order(ent.Asc(sessionevent.FieldTimestamp), ent.Asc(sessionevent.FieldSeq))
		}).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return session, nil
}

// ListSessionsFilter narrows ListSessions. Zero values mean "no filter".
type ListSessionsFilter struct {
	Agent     string
	ProjectID string
	Since     *time.Time
	Limit     int
}

// ListSessions returns sessions newest first.
func (s *SessionService) ListSessions(ctx context.Context, filter ListSessionsFilter) ([]*ent.Session, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	q := s.client.Session.Query()
	if filter.Agent != "" {
		q = q.Where(entsession.AgentName(filter.Agent))
	}
	if filter.ProjectID != "" {
		q = q.Where(entsession.ProjectID(filter.ProjectID))
	}
	if filter.Since != nil {
		q = q.Where(entsession.StartedAtGTE(*filter.Since))
	}

	sessions, err := q.
		Order(ent.Desc(entsession.FieldStartedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	return sessions, nil
}

// SessionMatch is one semantic search hit.
type SessionMatch struct {
	Session    *ent.Session `json:"session"`
	Similarity float64      `json:"similarity"`
}

// SearchSemantic finds sessions whose embedding is close to the query text.
// A negative threshold selects the default; zero disables the similarity
// floor, leaving the result bounded by limit alone. With embeddings disabled
// (nil query vector) it returns an empty result without touching the
// database.
func (s *SessionService) SearchSemantic(ctx context.Context, query string, limit int, threshold float64) ([]SessionMatch, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if threshold < 0 {
		threshold = DefaultSearchThreshold
	}

	vec := s.embeddings.Embed(ctx, query)
	if vec == nil {
		slog.Debug("Session search skipped, no query embedding", "query_len", len(query))
		return []SessionMatch{}, nil
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT session_id, similarity FROM search_sessions_semantic($1, $2, $3)`,
		pgvector.NewVector(vec), limit, threshold)
	if err != nil {
		return nil, fmt.Errorf("semantic session search failed: %w", err)
	}
	defer rows.Close()

	ids, similarities, err := scanMatches(rows)
	if err != nil {
		return nil, fmt.Errorf("semantic session search failed: %w", err)
	}
	if len(ids) == 0 {
		return []SessionMatch{}, nil
	}

	sessions, err := s.client.Session.Query().
		Where(entsession.IDIn(ids...)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load matched sessions: %w", err)
	}

	byID := make(map[string]*ent.Session, len(sessions))
	for _, sess := range sessions {
		byID[sess.ID] = sess
	}

	matches := make([]SessionMatch, 0, len(ids))
	for i, id := range ids {
		if sess, ok := byID[id]; ok {
			matches = append(matches, SessionMatch{Session: sess, Similarity: similarities[i]})
		}
	}
	return matches, nil
}

// LastSessionForAgent returns the agent's most recent session, or
// ErrNotFound when the agent has none.
func (s *SessionService) LastSessionForAgent(ctx context.Context, agent string) (*ent.Session, error) {
	session, err := s.client.Session.Query().
		Where(entsession.AgentName(agent)).
		Order(ent.Desc(entsession.FieldStartedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get last session: %w", err)
	}
	return session, nil
}

// CountSessionsSince counts sessions started in the last N days.
func (s *SessionService) CountSessionsSince(ctx context.Context, days int) (int, error) {
	if days <= 0 {
		days = 7
	}
	cutoff := time.Now().UTC().AddDate(0, 0, -days)
	count, err := s.client.Session.Query().
		Where(entsession.StartedAtGTE(cutoff)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count sessions: %w", err)
	}
	return count, nil
}

// RecentSessions returns sessions from the last N days, newest first.
func (s *SessionService) RecentSessions(ctx context.Context, days, limit int) ([]*ent.Session, error) {
	if days <= 0 {
		days = 7
	}
	cutoff := time.Now().UTC().AddDate(0, 0, -days)
	return s.ListSessions(ctx, ListSessionsFilter{Since: &cutoff, Limit: limit})
}

// UpdateSummary overwrites the session summary, recomputes its embedding,
// and merges metadata into the existing map.
func (s *SessionService) UpdateSummary(ctx context.Context, sessionID, summary string, metadata map[string]interface{}) (*ent.Session, error) {
	if summary == "" {
		return nil, NewValidationError("summary", "summary is required")
	}

	current, err := s.client.Session.Get(ctx, sessionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	builder := current.Update().SetSummary(summary)
	if vec := s.embeddings.Embed(ctx, summary); vec != nil {
		builder.SetEmbedding(pgvector.NewVector(vec))
	}
	if len(metadata) > 0 {
		merged := make(map[string]interface{}, len(current.Metadata)+len(metadata))
		for k, v := range current.Metadata {
			merged[k] = v
		}
		for k, v := range metadata {
			merged[k] = v
		}
		builder.SetMetadata(merged)
	}

	updated, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update summary: %w", err)
	}
	return updated, nil
}

// SummarizeSession runs the LLM over the session's header and events,
// persists the resulting summary, and returns the structured result.
func (s *SessionService) SummarizeSession(ctx context.Context, sessionID string) (*llm.SessionSummary, error) {
	if s.completer == nil {
		return nil, llm.ErrNotConfigured
	}

	session, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	summary, err := llm.SummarizeSession(ctx, s.completer, sessionHeader(session), eventLines(session.Edges.Events))
	if err != nil {
		return nil, err
	}

	if _, err := s.UpdateSummary(ctx, sessionID, summary.Summary, map[string]interface{}{
		"key_events":     summary.KeyEvents,
		"decisions_made": summary.DecisionsMade,
		"outcomes":       summary.Outcomes,
		"next_steps":     summary.NextSteps,
	}); err != nil {
		return nil, err
	}
	return summary, nil
}

// ConversationHistory returns a session's messages in chronological order,
// optionally filtered by role.
func (s *SessionService) ConversationHistory(ctx context.Context, sessionID, role string, limit int) ([]*ent.ConversationMessage, error) {
	if limit <= 0 {
		limit = 50
	}
	if err := s.requireSession(ctx, sessionID); err != nil {
		return nil, err
	}

	q := s.client.ConversationMessage.Query().
		Where(conversationmessage.SessionID(sessionID))
	if role != "" {
		q = q.Where(conversationmessage.RoleEQ(conversationmessage.Role(role)))
	}

	messages, err := q.
		Order(ent.Asc(conversationmessage.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get conversation history: %w", err)
	}
	return messages, nil
}

// MessageMatch is one semantic conversation search hit.
type MessageMatch struct {
	Message    *ent.ConversationMessage `json:"message"`
	Similarity float64                  `json:"similarity"`
}

// SearchMessagesSemantic finds conversation messages close to the query
// text, optionally scoped to one session. Threshold semantics match
// SearchSemantic: negative selects the default, zero means no floor.
func (s *SessionService) SearchMessagesSemantic(ctx context.Context, query, sessionID string, limit int, threshold float64) ([]MessageMatch, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if threshold < 0 {
		threshold = DefaultSearchThreshold
	}

	vec := s.embeddings.Embed(ctx, query)
	if vec == nil {
		return []MessageMatch{}, nil
	}

	var filter interface{}
	if sessionID != "" {
		filter = sessionID
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT message_id, similarity FROM search_conversation_semantic($1, $2, $3, $4)`,
		pgvector.NewVector(vec), limit, threshold, filter)
	if err != nil {
		return nil, fmt.Errorf("semantic conversation search failed: %w", err)
	}
	defer rows.Close()

	ids, similarities, err := scanMatches(rows)
	if err != nil {
		return nil, fmt.Errorf("semantic conversation search failed: %w", err)
	}
	if len(ids) == 0 {
		return []MessageMatch{}, nil
	}

	messages, err := s.client.ConversationMessage.Query().
		Where(conversationmessage.IDIn(ids...)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load matched messages: %w", err)
	}

	byID := make(map[string]*ent.ConversationMessage, len(messages))
	for _, m := range messages {
		byID[m.ID] = m
	}

	matches := make([]MessageMatch, 0, len(ids))
	for i, id := range ids {
		if m, ok := byID[id]; ok {
			matches = append(matches, MessageMatch{Message: m, Similarity: similarities[i]})
		}
	}
	return matches, nil
}

func (s *SessionService) requireSession(ctx context.Context, sessionID string) error {
	if strings.TrimSpace(sessionID) == "" {
		return NewValidationError("session_id", "session ID is required")
	}
	exists, err := s.client.Session.Query().
		Where(entsession.ID(sessionID)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("failed to check session: %w", err)
	}
	if !exists {
		return ErrNotFound
	}
	return nil
}

// eventEmbeddingText flattens an event into "<type>. k: v ..." with keys
// sorted for stable output. Nil payload values are skipped.
func eventEmbeddingText(eventType string, payload map[string]interface{}) string {
	keys := make([]string, 0, len(payload))
	for k, v := range payload {
		if v == nil {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %v", k, payload[k]))
	}

	text := strings.TrimSpace(eventType + ". " + strings.Join(parts, " "))
	if text == "." {
		return ""
	}
	return text
}

// messageEmbeddingText renders "[<type>] <role>: <text>"; the type prefix
// is omitted when the message has no type.
func messageEmbeddingText(role, message, messageType string) string {
	text := fmt.Sprintf("%s: %s", role, message)
	if messageType != "" {
		text = fmt.Sprintf("[%s] %s", messageType, text)
	}
	return text
}

// scanMatches reads (id, similarity) rows from a semantic search function.
func scanMatches(rows *sql.Rows) ([]string, []float64, error) {
	var ids []string
	var similarities []float64
	for rows.Next() {
		var id string
		var sim float64
		if err := rows.Scan(&id, &sim); err != nil {
			return nil, nil, err
		}
		ids = append(ids, id)
		similarities = append(similarities, sim)
	}
	return ids, similarities, rows.Err()
}

func sessionHeader(session *ent.Session) llm.SessionHeader {
	header := llm.SessionHeader{
		ID:        session.ID,
		Agent:     session.AgentName,
		StartedAt: session.StartedAt.UTC().Format(time.RFC3339),
	}
	if session.ProjectID != nil {
		header.ProjectID = *session.ProjectID
	}
	if session.EndedAt != nil {
		header.EndedAt = session.EndedAt.UTC().Format(time.RFC3339)
	}
	if session.Summary != nil {
		header.Summary = *session.Summary
	}
	return header
}

func eventLines(events []*ent.SessionEvent) []llm.EventLine {
	lines := make([]llm.EventLine, 0, len(events))
	for _, e := range events {
		detail := ""
		if len(e.Payload) > 0 {
			if raw, err := json.Marshal(e.Payload); err == nil {
				detail = string(raw)
			}
		}
		lines = append(lines, llm.EventLine{
			Timestamp: e.Timestamp.UTC().Format(time.RFC3339),
			EventType: e.EventType,
			Detail:    detail,
		})
	}
	return lines
}

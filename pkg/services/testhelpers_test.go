package services

import (
	"context"
	"testing"

	openai "github.com/sashabaranov/go-openai"

	"github.com/sergeville/Archon/pkg/database"
	"github.com/sergeville/Archon/pkg/embeddings"
	"github.com/sergeville/Archon/pkg/llm"
	testdb "github.com/sergeville/Archon/test/database"
)

// fakeCompleter returns a canned LLM response, or fails.
type fakeCompleter struct {
	response string
	err      error
}

func (f *fakeCompleter) Complete(context.Context, string, string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

// scriptedEmbedder hands out one queued vector per input, falling back to
// the first basis vector when the queue runs dry.
type scriptedEmbedder struct {
	queue [][]float32
	err   error
	calls int
}

func (s *scriptedEmbedder) CreateEmbeddings(_ context.Context, conv openai.EmbeddingRequestConverter) (openai.EmbeddingResponse, error) {
	s.calls++
	if s.err != nil {
		return openai.EmbeddingResponse{}, s.err
	}
	req := conv.Convert()
	n := 1
	if inputs, ok := req.Input.([]string); ok {
		n = len(inputs)
	}
	resp := openai.EmbeddingResponse{}
	for i := 0; i < n; i++ {
		vec := unitVector(0)
		if len(s.queue) > 0 {
			vec = s.queue[0]
			s.queue = s.queue[1:]
		}
		resp.Data = append(resp.Data, openai.Embedding{Embedding: vec})
	}
	return resp, nil
}

// unitVector returns a basis vector; distinct axes are orthogonal, so
// cosine similarity is 1 on the same axis and 0 across axes.
func unitVector(axis int) []float32 {
	v := make([]float32, embeddings.Dimension)
	v[axis] = 1
	return v
}

// testServices wires the full service layer over a per-test database.
type testServices struct {
	db        *database.Client
	Sessions  *SessionService
	Patterns  *PatternService
	Agents    *AgentService
	Context   *ContextService
	Handoffs  *HandoffService
	Council   *CouncilService
	Conductor *ConductorService
	Audit     *AuditService
	Projects  *ProjectService
	Search    *SearchService
}

// newTestServices stands up the service layer. A nil gateway means
// embeddings disabled; a nil completer means no LLM provider.
func newTestServices(t *testing.T, gateway *embeddings.Gateway, completer llm.Completer) *testServices {
	t.Helper()

	client := testdb.NewTestClient(t)
	if gateway == nil {
		gateway = embeddings.New(embeddings.Config{})
	}

	sessions := NewSessionService(client.Client, client.DB(), gateway, completer)
	patterns := NewPatternService(client.Client, client.DB(), gateway, completer, sessions)

	return &testServices{
		db:        client,
		Sessions:  sessions,
		Patterns:  patterns,
		Agents:    NewAgentService(client.Client),
		Context:   NewContextService(client.Client),
		Handoffs:  NewHandoffService(client.Client),
		Council:   NewCouncilService(client.Client),
		Conductor: NewConductorService(client.Client),
		Audit:     NewAuditService(client.Client),
		Projects:  NewProjectService(client.Client, completer),
		Search:    NewSearchService(sessions, patterns),
	}
}

// mustCreateSession seeds one session and returns its ID.
func mustCreateSession(t *testing.T, svc *testServices, agent string) string {
	t.Helper()
	session, err := svc.Sessions.CreateSession(context.Background(), CreateSessionInput{Agent: agent})
	if err != nil {
		t.Fatalf("failed to seed session: %v", err)
	}
	return session.ID
}

package services

import "context"

// UnifiedSearchResult is one semantic search fanned out across sessions,
// patterns, and conversation messages.
type UnifiedSearchResult struct {
	Sessions []SessionMatch `json:"sessions"`
	Patterns []PatternMatch `json:"patterns"`
	Messages []MessageMatch `json:"messages"`
}

// SearchService fans a single query out over every searchable entity.
type SearchService struct {
	sessions *SessionService
	patterns *PatternService
}

// NewSearchService creates a new SearchService.
func NewSearchService(sessions *SessionService, patterns *PatternService) *SearchService {
	if sessions == nil {
		panic("NewSearchService: sessions must not be nil")
	}
	if patterns == nil {
		panic("NewSearchService: patterns must not be nil")
	}
	return &SearchService{sessions: sessions, patterns: patterns}
}

// SearchAll runs the query against sessions, patterns, and conversation
// messages with a shared limit and threshold. With embeddings disabled all
// three result sets are empty.
func (s *SearchService) SearchAll(ctx context.Context, query string, limit int, threshold float64) (*UnifiedSearchResult, error) {
	sessions, err := s.sessions.SearchSemantic(ctx, query, limit, threshold)
	if err != nil {
		return nil, err
	}
	patterns, err := s.patterns.SearchSemantic(ctx, query, "", limit, threshold)
	if err != nil {
		return nil, err
	}
	messages, err := s.sessions.SearchMessagesSemantic(ctx, query, "", limit, threshold)
	if err != nil {
		return nil, err
	}

	return &UnifiedSearchResult{
		Sessions: sessions,
		Patterns: patterns,
		Messages: messages,
	}, nil
}

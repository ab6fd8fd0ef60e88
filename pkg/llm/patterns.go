package llm

import (
	"context"
	"fmt"
	"strings"
)

// PatternCandidate is one pattern identified by the extractor, with the
// model's confidence that it is genuinely reusable.
type PatternCandidate struct {
	PatternType string  `json:"pattern_type"`
	Domain      string  `json:"domain"`
	Description string  `json:"description"`
	Action      string  `json:"action"`
	Outcome     string  `json:"outcome,omitempty"`
	Confidence  float64 `json:"confidence"`
}

// ExtractedPatterns is the extractor's full result.
type ExtractedPatterns struct {
	Patterns  []PatternCandidate `json:"patterns"`
	Rationale string             `json:"rationale"`
}

const patternSystemPrompt = `You are a pattern extraction agent for Archon, a multi-agent knowledge management system.

Your task is to analyze agent session events and identify reusable behavioral and technical patterns.
Patterns represent proven approaches or known failure modes that can be applied in future sessions.

Pattern types:
- "success": An approach that worked well and should be repeated
- "failure": Something that went wrong and should be avoided
- "technical": A specific technical implementation approach (e.g., database indexing, API design)
- "process": A workflow or methodology that was effective (e.g., task decomposition, review steps)

Rules for good patterns:
1. Patterns must be REUSABLE - generic enough to apply beyond this specific session
2. Actions must be CONCRETE - someone reading the pattern should know exactly what to do
3. Only extract patterns with genuine signal - not every event is a pattern
4. Prefer fewer high-quality patterns over many vague ones
5. If a session has no clear reusable patterns, return an empty list

Do NOT create patterns for:
- One-off fixes that are too specific to this exact situation
- Obvious best practices that don't need documenting
- Events that lack enough context to form a pattern

Respond with a single JSON object:
{"patterns": [{"pattern_type": "...", "domain": "...", "description": "...", "action": "...", "outcome": "...", "confidence": 0.0}], "rationale": "..."}`

// ExtractPatterns analyzes a session's events and returns pattern
// candidates. The caller filters by confidence before harvesting.
func ExtractPatterns(ctx context.Context, c Completer, header SessionHeader, events []EventLine) (*ExtractedPatterns, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "Analyze this session by agent %q", header.Agent)
	if header.ProjectID != "" {
		fmt.Fprintf(&b, " (project %s)", header.ProjectID)
	}
	if header.Summary != "" {
		fmt.Fprintf(&b, "\nSession summary: %s", header.Summary)
	}
	fmt.Fprintf(&b, "\n\nEvents (%d):\n", len(events))
	for i, e := range events {
		fmt.Fprintf(&b, "%d. [%s] %s", i+1, e.Timestamp, e.EventType)
		if e.Detail != "" {
			fmt.Fprintf(&b, " - %s", e.Detail)
		}
		b.WriteString("\n")
	}

	text, err := c.Complete(ctx, patternSystemPrompt, b.String())
	if err != nil {
		return nil, fmt.Errorf("pattern extraction failed: %w", err)
	}

	var extracted ExtractedPatterns
	if err := decodeJSON(text, &extracted); err != nil {
		return nil, fmt.Errorf("pattern extraction returned malformed output: %w", err)
	}
	return &extracted, nil
}

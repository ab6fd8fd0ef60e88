package llm

import (
	"context"
	"fmt"
	"strings"
)

// SessionSummary is the structured result of summarizing a session.
type SessionSummary struct {
	Summary       string   `json:"summary"`
	KeyEvents     []string `json:"key_events"`
	DecisionsMade []string `json:"decisions_made"`
	Outcomes      []string `json:"outcomes"`
	NextSteps     []string `json:"next_steps"`
}

// SessionHeader carries the session metadata the summarizer needs.
type SessionHeader struct {
	ID        string
	Agent     string
	ProjectID string
	StartedAt string
	EndedAt   string
	Summary   string
}

// EventLine is one formatted session event for the prompt.
type EventLine struct {
	Timestamp string
	EventType string
	Detail    string
}

const summarizerSystemPrompt = `You are a session summarization agent for Archon, a multi-agent knowledge management system.

Your task is to analyze agent session events and create a concise, structured summary.

Focus on:
1. What was accomplished (outcomes and deliverables)
2. Key decisions made during the session
3. Problems encountered and how they were resolved
4. Next steps suggested or implied by the work done

Be concise but specific. Include relevant IDs, file paths, or technical details.
Use past tense for events and outcomes.
Use imperative mood for next steps (e.g., "Complete the migration", not "Should complete the migration").

If a session has very few events or limited information, keep summaries brief but informative.

Respond with a single JSON object:
{"summary": "...", "key_events": [...], "decisions_made": [...], "outcomes": [...], "next_steps": [...]}`

// SummarizeSession runs the LLM over the session header and its formatted
// event list and returns the structured summary.
func SummarizeSession(ctx context.Context, c Completer, header SessionHeader, events []EventLine) (*SessionSummary, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "Session by agent %q", header.Agent)
	if header.ProjectID != "" {
		fmt.Fprintf(&b, " (project %s)", header.ProjectID)
	}
	fmt.Fprintf(&b, "\nStarted: %s", header.StartedAt)
	if header.EndedAt != "" {
		fmt.Fprintf(&b, "\nEnded: %s", header.EndedAt)
	}
	if header.Summary != "" {
		fmt.Fprintf(&b, "\nExisting summary: %s", header.Summary)
	}
	fmt.Fprintf(&b, "\n\nEvents (%d):\n", len(events))
	for i, e := range events {
		fmt.Fprintf(&b, "%d. [%s] %s", i+1, e.Timestamp, e.EventType)
		if e.Detail != "" {
			fmt.Fprintf(&b, " - %s", e.Detail)
		}
		b.WriteString("\n")
	}

	text, err := c.Complete(ctx, summarizerSystemPrompt, b.String())
	if err != nil {
		return nil, fmt.Errorf("session summarization failed: %w", err)
	}

	var summary SessionSummary
	if err := decodeJSON(text, &summary); err != nil {
		return nil, fmt.Errorf("session summarization returned malformed output: %w", err)
	}
	return &summary, nil
}

package llm

import (
	"context"
	"fmt"
)

// PlanTask is one implementation task extracted from a plan document.
type PlanTask struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	Feature     string `json:"feature,omitempty"`
}

type planExtractionResult struct {
	Tasks []PlanTask `json:"tasks"`
}

const planSystemPrompt = `You are a project management assistant. Extract 10-20 concrete implementation tasks from the provided plan document.

For each task:
- title: Short imperative sentence (e.g., 'Create API endpoint for plan listing')
- description: Specific implementation details and acceptance criteria
- priority: One of: low, medium, high, critical
- feature: The phase or section name this task belongs to (optional)

Return tasks that collectively implement the entire plan. Focus on concrete, actionable development tasks.

Respond with a single JSON object:
{"tasks": [{"title": "...", "description": "...", "priority": "medium", "feature": "..."}]}`

// ExtractPlanTasks runs the LLM over a markdown plan document and returns
// the implementation tasks. The document is truncated before submission.
func ExtractPlanTasks(ctx context.Context, c Completer, planContent string) ([]PlanTask, error) {
	if len(planContent) > maxPlanChars {
		planContent = planContent[:maxPlanChars]
	}

	user := "Extract implementation tasks from this plan document:\n\n" + planContent
	text, err := c.Complete(ctx, planSystemPrompt, user)
	if err != nil {
		return nil, fmt.Errorf("plan task extraction failed: %w", err)
	}

	var result planExtractionResult
	if err := decodeJSON(text, &result); err != nil {
		return nil, fmt.Errorf("plan task extraction returned malformed output: %w", err)
	}
	return result.Tasks, nil
}

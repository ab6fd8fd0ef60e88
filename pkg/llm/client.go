// Package llm routes completion requests to the configured provider and
// hosts the structured extractors built on top (session summaries, pattern
// extraction, plan-task extraction).
package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	openai "github.com/sashabaranov/go-openai"
)

const (
	defaultAnthropicModel = "claude-sonnet-4-5"
	defaultOpenAIModel    = "gpt-4o-mini"
	defaultMaxTokens      = 4096

	// maxPlanChars bounds the plan document passed to the extractor.
	maxPlanChars = 8000
)

// ErrNotConfigured is returned when no provider credentials are available.
var ErrNotConfigured = errors.New("llm: no provider configured")

// Completer issues one system+user completion and returns the text.
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// Config selects the provider. An Anthropic key wins over an OpenAI key,
// matching how credentials are resolved elsewhere: environment first.
type Config struct {
	AnthropicAPIKey string
	OpenAIAPIKey    string
	Model           string
}

// Client is a provider-routed Completer.
type Client struct {
	anthropic *anthropic.Client
	openai    *openai.Client
	model     string
}

// NewClient builds a client for whichever provider has credentials.
// Returns ErrNotConfigured when neither does; callers that can degrade
// (summaries, extraction) treat that as "feature off".
func NewClient(cfg Config) (*Client, error) {
	if cfg.AnthropicAPIKey != "" {
		ac := anthropic.NewClient(option.WithAPIKey(cfg.AnthropicAPIKey))
		model := cfg.Model
		if model == "" {
			model = defaultAnthropicModel
		}
		return &Client{anthropic: &ac, model: model}, nil
	}
	if cfg.OpenAIAPIKey != "" {
		model := cfg.Model
		if model == "" {
			model = defaultOpenAIModel
		}
		return &Client{openai: openai.NewClient(cfg.OpenAIAPIKey), model: model}, nil
	}
	return nil, ErrNotConfigured
}

// Complete sends one request and returns the assistant text.
func (c *Client) Complete(ctx context.Context, system, user string) (string, error) {
	switch {
	case c.anthropic != nil:
		return c.completeAnthropic(ctx, system, user)
	case c.openai != nil:
		return c.completeOpenAI(ctx, system, user)
	default:
		return "", ErrNotConfigured
	}
}

func (c *Client) completeAnthropic(ctx context.Context, system, user string) (string, error) {
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: defaultMaxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(user)),
		},
	}
	if system != "" {
		params.System = []anthropic.TextBlockParam{{Type: "text", Text: system}}
	}

	msg, err := c.anthropic.Messages.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("anthropic completion failed: %w", err)
	}

	var text string
	for _, block := range msg.Content {
		if block.Type == "text" {
			text += block.Text
		}
	}
	return text, nil
}

func (c *Client) completeOpenAI(ctx context.Context, system, user string) (string, error) {
	messages := []openai.ChatCompletionMessage{}
	if system != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: system,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: user,
	})

	resp, err := c.openai.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    c.model,
		Messages: messages,
	})
	if err != nil {
		return "", fmt.Errorf("openai completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

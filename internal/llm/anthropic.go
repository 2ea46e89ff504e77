package llm

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/rs/zerolog/log"
)

// AnthropicClient implements Client on top of the Anthropic Messages API,
// or any compatible proxy via a base URL override.
type AnthropicClient struct {
	client *anthropic.Client
	model  string
}

func NewAnthropicClient(apiKey, model, baseURL string, timeout time.Duration) *AnthropicClient {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithHTTPClient(&http.Client{Timeout: timeout}),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return &AnthropicClient{
		client: anthropic.NewClient(opts...),
		model:  model,
	}
}

// Complete sends the transcript and returns the concatenated text content of
// the reply. System-role messages are lifted into the API's system field;
// the rest map to user/assistant turns in order.
func (c *AnthropicClient) Complete(ctx context.Context, transcript []Message, opts Options) (string, error) {
	system, messages := splitTranscript(transcript)

	params := anthropic.MessageNewParams{
		Model:       anthropic.F(anthropic.Model(c.model)),
		MaxTokens:   anthropic.F(int64(opts.MaxOutputTokens)),
		Temperature: anthropic.F(opts.Temperature),
		Messages:    anthropic.F(messages),
	}
	if len(system) > 0 {
		params.System = anthropic.F(system)
	}

	start := time.Now()
	resp, err := c.client.Messages.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}

	var text string
	for _, block := range resp.Content {
		if b, ok := block.AsUnion().(anthropic.TextBlock); ok {
			text += b.Text
		}
	}
	if text == "" {
		return "", fmt.Errorf("completion response contained no text content")
	}

	log.Debug().
		Str("model", c.model).
		Int("messages", len(messages)).
		Dur("duration", time.Since(start)).
		Str("stop_reason", string(resp.StopReason)).
		Msg("completion")

	return text, nil
}

// splitTranscript lifts system-role messages into the API's system field and
// maps the rest to user/assistant turns, preserving order.
func splitTranscript(transcript []Message) ([]anthropic.TextBlockParam, []anthropic.MessageParam) {
	var system []anthropic.TextBlockParam
	var messages []anthropic.MessageParam

	for _, m := range transcript {
		switch m.Role {
		case RoleSystem:
			system = append(system, anthropic.NewTextBlock(m.Content))
		case RoleAssistant:
			messages = append(messages, anthropic.NewAssistantMessage(anthropic.NewTextBlock(m.Content)))
		default:
			messages = append(messages, anthropic.NewUserMessage(anthropic.NewTextBlock(m.Content)))
		}
	}
	return system, messages
}

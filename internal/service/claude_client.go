package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// ClaudeClient calls the Anthropic messages API
type ClaudeClient struct {
	client anthropic.Client
}

// NewClaudeClient creates a Claude client. Extra options are used by tests to point at a fake server.
func NewClaudeClient(apiKey string, opts ...option.RequestOption) *ClaudeClient {
	opts = append([]option.RequestOption{option.WithAPIKey(apiKey), option.WithMaxRetries(0)}, opts...)
	return &ClaudeClient{client: anthropic.NewClient(opts...)}
}

func (c *ClaudeClient) Generate(ctx context.Context, req GenerateRequest) (string, error) {
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(req.Model),
		MaxTokens: int64(req.MaxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(req.Prompt)),
		},
		Temperature: anthropic.Float(float64(req.Temperature)),
	}

	resp, err := c.client.Messages.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("claude API call failed: %w", err)
	}

	var text strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}
	if text.Len() == 0 {
		return "", fmt.Errorf("claude: %w", ErrEmptyResponse)
	}
	return text.String(), nil
}

package service

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// GeminiClient calls the Gemini generateContent API
type GeminiClient struct {
	client *genai.Client
}

// NewGeminiClient creates a Gemini client for the Gemini API backend
func NewGeminiClient(ctx context.Context, apiKey string) (*GeminiClient, error) {
	return newGeminiClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
}

func newGeminiClient(ctx context.Context, cc *genai.ClientConfig) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize genai client: %w", err)
	}
	return &GeminiClient{client: client}, nil
}

func (c *GeminiClient) Generate(ctx context.Context, req GenerateRequest) (string, error) {
	cfg := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(req.Temperature),
		MaxOutputTokens: int32(req.MaxTokens),
	}
	if req.JSON {
		cfg.ResponseMIMEType = "application/json"
	}

	resp, err := c.client.Models.GenerateContent(ctx, req.Model, []*genai.Content{
		genai.NewContentFromText(req.Prompt, genai.RoleUser),
	}, cfg)
	if err != nil {
		return "", fmt.Errorf("gemini API call failed: %w", err)
	}

	var text strings.Builder
	if resp != nil && len(resp.Candidates) > 0 {
		candidate := resp.Candidates[0]
		if candidate.Content != nil {
			for _, part := range candidate.Content.Parts {
				if part != nil && part.Text != "" {
					text.WriteString(part.Text)
				}
			}
		}
	}
	if text.Len() == 0 {
		return "", fmt.Errorf("gemini: %w", ErrEmptyResponse)
	}
	return text.String(), nil
}

package service

import (
	"askgate/internal/config"
	"context"
	"errors"
	"fmt"

	"github.com/ternarybob/arbor"
)

var (
	ErrAINotConfigured = errors.New("AI provider API key is not configured")
	ErrEmptyResponse   = errors.New("empty response from generation API")
)

// GenerateRequest is a single-prompt text generation call
type GenerateRequest struct {
	Model       string
	Prompt      string
	MaxTokens   int
	Temperature float32
	JSON        bool // Ask the provider for a JSON reply where supported
}

// Generator produces text from the external generation API
type Generator interface {
	Generate(ctx context.Context, req GenerateRequest) (string, error)
}

// NewGenerator returns the client for the configured provider, or a disabled
// generator when no API key is set so the process still starts.
func NewGenerator(ctx context.Context, cfg *config.AIConfig, logger arbor.ILogger) (Generator, error) {
	if !cfg.IsEnabled() {
		logger.Warn().Str("provider", cfg.Provider).Msg("AI API key not set, every generation call will fail")
		return DisabledGenerator{}, nil
	}

	switch cfg.Provider {
	case config.ProviderClaude:
		return NewClaudeClient(cfg.APIKey), nil
	case config.ProviderGemini:
		return NewGeminiClient(ctx, cfg.APIKey)
	default:
		return nil, fmt.Errorf("unknown AI provider %q", cfg.Provider)
	}
}

// DisabledGenerator fails every call with ErrAINotConfigured
type DisabledGenerator struct{}

func (DisabledGenerator) Generate(ctx context.Context, req GenerateRequest) (string, error) {
	return "", ErrAINotConfigured
}

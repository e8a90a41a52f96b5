package config

import "time"

// Generation providers
const (
	ProviderGemini = "gemini"
	ProviderClaude = "claude"

	DefaultGeminiModel = "gemini-2.0-flash"
	DefaultClaudeModel = "claude-sonnet-4-5-20250929"
)

// Models defines which model serves each call
type Models struct {
	// Guidance judges question quality (temperature 0, short JSON reply)
	Guidance string `toml:"guidance" json:"guidance" validate:"required"`

	// Answer produces the final answer for accepted questions
	Answer string `toml:"answer" json:"answer" validate:"required"`
}

// CallParams bounds a single generation call
type CallParams struct {
	MaxTokens   int     `toml:"max_tokens" json:"maxTokens" validate:"min=1,max=8192"`
	Temperature float32 `toml:"temperature" json:"temperature" validate:"min=0,max=2"`
}

// AIConfig holds all AI-related configuration
type AIConfig struct {
	Provider        string     `toml:"provider" json:"provider" validate:"oneof=gemini claude"`
	GeminiAPIKey    string     `toml:"gemini_api_key" json:"-"` // Never serialize
	AnthropicAPIKey string     `toml:"anthropic_api_key" json:"-"`
	Models          Models     `toml:"models" json:"models"`
	GuidanceCall    CallParams `toml:"guidance_call" json:"guidanceCall"`
	AnswerCall      CallParams `toml:"answer_call" json:"answerCall"`
	Timeout         Duration   `toml:"timeout" json:"timeout"` // 0 means no deadline beyond the request context

	// APIKey is the key of the selected provider, resolved during Load
	APIKey string `toml:"-" json:"-"`
}

// DefaultAIConfig returns the default AI configuration
func DefaultAIConfig() *AIConfig {
	return &AIConfig{
		Provider:     ProviderGemini,
		GuidanceCall: CallParams{MaxTokens: 250, Temperature: 0},
		AnswerCall:   CallParams{MaxTokens: 400, Temperature: 0.7},
	}
}

// IsEnabled returns true if the selected provider has an API key
func (c *AIConfig) IsEnabled() bool {
	return c.APIKey != ""
}

// MaskedKey returns the first characters of the key for startup diagnostics
func (c *AIConfig) MaskedKey() string {
	if c.APIKey == "" {
		return ""
	}
	if len(c.APIKey) <= 10 {
		return "***"
	}
	return c.APIKey[:10] + "..."
}

// resolveProvider picks the key of the selected provider and fills unset model names
func (c *AIConfig) resolveProvider() {
	defaultModel := DefaultGeminiModel
	switch c.Provider {
	case ProviderClaude:
		c.APIKey = c.AnthropicAPIKey
		defaultModel = DefaultClaudeModel
	default:
		c.APIKey = c.GeminiAPIKey
	}
	if c.Models.Guidance == "" {
		c.Models.Guidance = defaultModel
	}
	if c.Models.Answer == "" {
		c.Models.Answer = defaultModel
	}
}

// Duration is a time.Duration that reads "30s"-style strings from TOML
type Duration time.Duration

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Std returns the value as a time.Duration
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

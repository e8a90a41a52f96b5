package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "STATIC_DIR", "AI_PROVIDER", "GEMINI_API_KEY", "ANTHROPIC_API_KEY",
		"GUIDANCE_MODEL", "ANSWER_MODEL", "AI_TIMEOUT", "SCORER_STRATEGY",
		"CORS_ALLOWED_ORIGINS", "CORS_ALLOWED_METHODS", "CORS_ALLOWED_HEADERS",
		"MONGO_URI", "MONGO_DATABASE", "REDIS_URI", "WS_ENABLED", "LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "askgate.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)

	assert.Equal(t, 5000, cfg.Server.Port)
	assert.Equal(t, StrategyModel, cfg.Scorer.Strategy)
	assert.Equal(t, ProviderGemini, cfg.AI.Provider)
	assert.Equal(t, DefaultGeminiModel, cfg.AI.Models.Guidance)
	assert.Equal(t, DefaultGeminiModel, cfg.AI.Models.Answer)
	assert.Equal(t, 250, cfg.AI.GuidanceCall.MaxTokens)
	assert.Equal(t, float32(0), cfg.AI.GuidanceCall.Temperature)
	assert.Equal(t, 400, cfg.AI.AnswerCall.MaxTokens)
	assert.Equal(t, float32(0.7), cfg.AI.AnswerCall.Temperature)
	assert.Equal(t, "*", cfg.CORS.AllowedOrigins)
	assert.False(t, cfg.AI.IsEnabled(), "missing key must not fail startup")
	assert.Zero(t, cfg.AI.Timeout.Std())
}

func TestLoad_FileThenEnv(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
[server]
port = 8081

[ai]
provider = "claude"
anthropic_api_key = "file-key-0123456789"
timeout = "45s"

[scorer]
strategy = "heuristic"

[redis]
addr = "localhost:6379"
`)
	t.Setenv("PORT", "9090")
	t.Setenv("REDIS_URI", "redis://cache:6379")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port, "env overrides file")
	assert.Equal(t, ProviderClaude, cfg.AI.Provider)
	assert.Equal(t, "file-key-0123456789", cfg.AI.APIKey)
	assert.Equal(t, DefaultClaudeModel, cfg.AI.Models.Answer)
	assert.Equal(t, 45*time.Second, cfg.AI.Timeout.Std())
	assert.Equal(t, StrategyHeuristic, cfg.Scorer.Strategy)
	assert.Equal(t, "cache:6379", cfg.Redis.Addr)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "unknown strategy", env: map[string]string{"SCORER_STRATEGY": "vibes"}},
		{name: "unknown provider", env: map[string]string{"AI_PROVIDER": "parrot"}},
		{name: "non-numeric port", env: map[string]string{"PORT": "eighty"}},
		{name: "bad log level", env: map[string]string{"LOG_LEVEL": "loud"}},
		{name: "bad timeout", env: map[string]string{"AI_TIMEOUT": "soon"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load("")
			assert.Error(t, err)
		})
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "[server\nport = ")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestMaskedKey(t *testing.T) {
	c := &AIConfig{}
	assert.Equal(t, "", c.MaskedKey())

	c.APIKey = "short"
	assert.Equal(t, "***", c.MaskedKey())

	c.APIKey = "AIzaSyA-0123456789abcdef"
	assert.Equal(t, "AIzaSyA-01...", c.MaskedKey())
}

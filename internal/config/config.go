package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
)

// Scorer strategies
const (
	StrategyModel     = "model"
	StrategyHeuristic = "heuristic"
)

// Config is the full service configuration
type Config struct {
	Server    ServerConfig    `toml:"server"`
	AI        AIConfig        `toml:"ai"`
	Scorer    ScorerConfig    `toml:"scorer"`
	CORS      CORSConfig      `toml:"cors"`
	Mongo     MongoConfig     `toml:"mongo"`
	Redis     RedisConfig     `toml:"redis"`
	WebSocket WebSocketConfig `toml:"websocket"`
	Logging   LoggingConfig   `toml:"logging"`
}

type ServerConfig struct {
	Port      int    `toml:"port" validate:"min=1,max=65535"`
	StaticDir string `toml:"static_dir"` // Serves the chat front end at / when set
}

// ScorerConfig selects how questions are screened before generation
type ScorerConfig struct {
	Strategy string `toml:"strategy" validate:"oneof=model heuristic"`
}

type CORSConfig struct {
	AllowedOrigins string `toml:"allowed_origins" validate:"required"`
	AllowedMethods string `toml:"allowed_methods" validate:"required"`
	AllowedHeaders string `toml:"allowed_headers" validate:"required"`
}

// MongoConfig enables the ask event log when URI is set
type MongoConfig struct {
	URI      string `toml:"uri"`
	Database string `toml:"database" validate:"required_with=URI"`
}

// RedisConfig enables ask counters when Addr is set
type RedisConfig struct {
	Addr string `toml:"addr"`
}

type WebSocketConfig struct {
	Enabled bool `toml:"enabled"`
}

type LoggingConfig struct {
	Level string `toml:"level" validate:"oneof=debug info warn error"`
}

// Default returns the configuration used when no file or environment overrides are present
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port: 5000,
		},
		AI:     *DefaultAIConfig(),
		Scorer: ScorerConfig{Strategy: StrategyModel},
		CORS: CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET, POST, OPTIONS",
			AllowedHeaders: "Content-Type, Authorization",
		},
		Mongo:   MongoConfig{Database: "askgate"},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load builds the configuration from defaults, an optional TOML file and the environment.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := toml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		case errors.Is(err, os.ErrNotExist):
		default:
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	cfg.AI.resolveProvider()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field constraints
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		cfg.Server.Port = port
	}
	cfg.Server.StaticDir = getEnvOrDefault("STATIC_DIR", cfg.Server.StaticDir)

	cfg.AI.Provider = strings.ToLower(getEnvOrDefault("AI_PROVIDER", cfg.AI.Provider))
	cfg.AI.GeminiAPIKey = getEnvOrDefault("GEMINI_API_KEY", cfg.AI.GeminiAPIKey)
	cfg.AI.AnthropicAPIKey = getEnvOrDefault("ANTHROPIC_API_KEY", cfg.AI.AnthropicAPIKey)
	cfg.AI.Models.Guidance = getEnvOrDefault("GUIDANCE_MODEL", cfg.AI.Models.Guidance)
	cfg.AI.Models.Answer = getEnvOrDefault("ANSWER_MODEL", cfg.AI.Models.Answer)
	if v := os.Getenv("AI_TIMEOUT"); v != "" {
		if err := cfg.AI.Timeout.UnmarshalText([]byte(v)); err != nil {
			return fmt.Errorf("invalid AI_TIMEOUT %q: %w", v, err)
		}
	}

	cfg.Scorer.Strategy = strings.ToLower(getEnvOrDefault("SCORER_STRATEGY", cfg.Scorer.Strategy))

	cfg.CORS.AllowedOrigins = getEnvOrDefault("CORS_ALLOWED_ORIGINS", cfg.CORS.AllowedOrigins)
	cfg.CORS.AllowedMethods = getEnvOrDefault("CORS_ALLOWED_METHODS", cfg.CORS.AllowedMethods)
	cfg.CORS.AllowedHeaders = getEnvOrDefault("CORS_ALLOWED_HEADERS", cfg.CORS.AllowedHeaders)

	cfg.Mongo.URI = getEnvOrDefault("MONGO_URI", cfg.Mongo.URI)
	cfg.Mongo.Database = getEnvOrDefault("MONGO_DATABASE", cfg.Mongo.Database)

	// Remove redis:// prefix if present
	cfg.Redis.Addr = strings.TrimPrefix(getEnvOrDefault("REDIS_URI", cfg.Redis.Addr), "redis://")

	if v := os.Getenv("WS_ENABLED"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid WS_ENABLED %q: %w", v, err)
		}
		cfg.WebSocket.Enabled = enabled
	}

	cfg.Logging.Level = strings.ToLower(getEnvOrDefault("LOG_LEVEL", cfg.Logging.Level))
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Supported backends, selected explicitly at startup.
const (
	StorageRedis  = "redis"
	StorageSQLite = "sqlite"
	StorageMemory = "memory"

	ProviderAnthropic = "anthropic"
	ProviderOllama    = "ollama"
	ProviderMock      = "mock"
)

type Config struct {
	Port        string
	Environment string
	LogLevel    slog.Level

	// LLM provider
	LLMProvider     string
	ModelName       string
	AnthropicAPIKey string
	OllamaURL       string

	// Storage backend
	Storage    string
	RedisURL   string
	SQLitePath string
}

// Load reads configuration from the environment, with a best-effort
// .env file load first. The storage and LLM backends are selected here,
// once, rather than probed at call sites.
func Load() (*Config, error) {
	// .env is optional; absence is not an error.
	_ = godotenv.Load()

	cfg := &Config{
		Port:            getEnv("PORT", "8080"),
		Environment:     getEnv("ENVIRONMENT", "development"),
		LogLevel:        parseLogLevel(getEnv("LOG_LEVEL", "info")),
		LLMProvider:     strings.ToLower(getEnv("LLM_PROVIDER", ProviderOllama)),
		ModelName:       getEnv("MODEL_NAME", "llama3"),
		AnthropicAPIKey: getEnv("ANTHROPIC_API_KEY", ""),
		OllamaURL:       getEnv("OLLAMA_URL", "http://localhost:11434"),
		Storage:         strings.ToLower(getEnv("STORAGE", StorageMemory)),
		RedisURL:        getEnv("REDIS_URL", "localhost:6379"),
		SQLitePath:      getEnv("SQLITE_PATH", "./adventure.db"),
	}

	switch cfg.LLMProvider {
	case ProviderAnthropic, ProviderOllama, ProviderMock:
	default:
		return nil, fmt.Errorf("invalid LLM_PROVIDER %q (supported: anthropic, ollama, mock)", cfg.LLMProvider)
	}

	switch cfg.Storage {
	case StorageRedis, StorageSQLite, StorageMemory:
	default:
		return nil, fmt.Errorf("invalid STORAGE %q (supported: redis, sqlite, memory)", cfg.Storage)
	}

	if cfg.LLMProvider == ProviderAnthropic && cfg.AnthropicAPIKey == "" {
		return nil, fmt.Errorf("ANTHROPIC_API_KEY is required when LLM_PROVIDER=anthropic")
	}

	return cfg, nil
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

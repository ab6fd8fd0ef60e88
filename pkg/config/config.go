// Package config resolves runtime configuration from the environment.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// Transport values for the HTTP server surface.
const (
	TransportHTTP  = "streamable-http"
	TransportStdio = "stdio"
)

// Config is the umbrella configuration object resolved once at startup and
// injected into components.
type Config struct {
	// HTTP server
	Port      int
	Transport string

	// Logging
	LogLevel slog.Level

	// Event bus
	RedisURL string

	// LLM and embedding providers. Environment values win over anything
	// persisted elsewhere.
	OpenAIAPIKey     string
	AnthropicAPIKey  string
	LLMModel         string
	EmbeddingBaseURL string
	EmbeddingModel   string

	// Whiteboard host project (deployment convention, not an invariant)
	WhiteboardProjectID string

	// Log collector
	Containers []string

	// Plan promotion
	GitHubToken  string
	PlanCacheTTL time.Duration

	// Documents
	DocumentsBasePath string

	// Supabase deployment checks (validated at startup, fatal on violation)
	Supabase *SupabaseConfig

	// Background maintenance
	Archive *ArchiveConfig
}

// Load resolves configuration from the environment. It fails on values
// that would misconfigure the process (bad port, anon Supabase key).
func Load() (*Config, error) {
	cfg := &Config{
		Transport:           getEnvOrDefault("TRANSPORT", TransportHTTP),
		LogLevel:            parseLogLevel(os.Getenv("LOG_LEVEL")),
		RedisURL:            getEnvOrDefault("REDIS_URL", "redis://localhost:6379/0"),
		OpenAIAPIKey:        os.Getenv("OPENAI_API_KEY"),
		AnthropicAPIKey:     os.Getenv("ANTHROPIC_API_KEY"),
		LLMModel:            os.Getenv("LLM_MODEL"),
		EmbeddingBaseURL:    os.Getenv("EMBEDDING_BASE_URL"),
		EmbeddingModel:      os.Getenv("EMBEDDING_MODEL"),
		WhiteboardProjectID: os.Getenv("WHITEBOARD_PROJECT_ID"),
		GitHubToken:         os.Getenv("GITHUB_TOKEN"),
		PlanCacheTTL:        time.Minute,
		DocumentsBasePath:   getEnvOrDefault("DOCUMENTS_BASE_PATH", "docs"),
		Archive:             DefaultArchiveConfig(),
	}

	port, err := resolvePort()
	if err != nil {
		return nil, err
	}
	cfg.Port = port

	switch cfg.Transport {
	case TransportHTTP, TransportStdio:
	default:
		return nil, fmt.Errorf("invalid TRANSPORT %q: must be %q or %q", cfg.Transport, TransportHTTP, TransportStdio)
	}

	if raw := os.Getenv("LOG_COLLECTOR_CONTAINERS"); raw != "" {
		for _, name := range strings.Split(raw, ",") {
			if name = strings.TrimSpace(name); name != "" {
				cfg.Containers = append(cfg.Containers, name)
			}
		}
	}

	if raw := os.Getenv("ARCHIVE_INTERVAL_SECONDS"); raw != "" {
		seconds, err := strconv.Atoi(raw)
		if err != nil || seconds <= 0 {
			return nil, fmt.Errorf("invalid ARCHIVE_INTERVAL_SECONDS %q", raw)
		}
		cfg.Archive.Interval = time.Duration(seconds) * time.Second
	}
	if status := os.Getenv("ARCHIVE_TASK_STATUS"); status != "" {
		cfg.Archive.TaskStatus = status
	}

	supabase, err := LoadSupabaseFromEnv()
	if err != nil {
		return nil, err
	}
	cfg.Supabase = supabase

	return cfg, nil
}

// resolvePort reads PORT with ARCHON_MCP_PORT as the fallback name.
func resolvePort() (int, error) {
	raw := os.Getenv("PORT")
	if raw == "" {
		raw = os.Getenv("ARCHON_MCP_PORT")
	}
	if raw == "" {
		return 8181, nil
	}
	port, err := strconv.Atoi(raw)
	if err != nil || port < 1 || port > 65535 {
		return 0, fmt.Errorf("invalid port %q", raw)
	}
	return port, nil
}

func parseLogLevel(raw string) slog.Level {
	switch strings.ToLower(raw) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

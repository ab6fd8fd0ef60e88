package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8181, cfg.Port)
	assert.Equal(t, TransportHTTP, cfg.Transport)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
	assert.Equal(t, "docs", cfg.DocumentsBasePath)
	assert.Nil(t, cfg.Supabase)

	require.NotNil(t, cfg.Archive)
	assert.Equal(t, time.Hour, cfg.Archive.Interval)
	assert.Equal(t, "todo", cfg.Archive.TaskStatus)
	assert.Equal(t, 30*24*time.Hour, cfg.Archive.TaskMaxAge)
	assert.Equal(t, 24*time.Hour, cfg.Archive.ProjectIdleAge)
}

func TestLoad_PortResolution(t *testing.T) {
	tests := []struct {
		name    string
		port    string
		mcpPort string
		want    int
		wantErr bool
	}{
		{name: "PORT wins", port: "9000", mcpPort: "9100", want: 9000},
		{name: "ARCHON_MCP_PORT is the fallback", mcpPort: "9100", want: 9100},
		{name: "default without either", want: 8181},
		{name: "non-numeric rejected", port: "not-a-port", wantErr: true},
		{name: "zero rejected", port: "0", wantErr: true},
		{name: "out of range rejected", port: "70000", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.port != "" {
				t.Setenv("PORT", tt.port)
			}
			if tt.mcpPort != "" {
				t.Setenv("ARCHON_MCP_PORT", tt.mcpPort)
			}

			cfg, err := Load()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.Port)
		})
	}
}

func TestLoad_InvalidTransport(t *testing.T) {
	t.Setenv("TRANSPORT", "carrier-pigeon")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid TRANSPORT")
}

func TestLoad_Containers(t *testing.T) {
	t.Setenv("LOG_COLLECTOR_CONTAINERS", "archon-server, archon-mcp ,,archon-agents")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"archon-server", "archon-mcp", "archon-agents"}, cfg.Containers)
}

func TestLoad_ArchiveOverrides(t *testing.T) {
	t.Setenv("ARCHIVE_INTERVAL_SECONDS", "120")
	t.Setenv("ARCHIVE_TASK_STATUS", "backlog")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 2*time.Minute, cfg.Archive.Interval)
	assert.Equal(t, "backlog", cfg.Archive.TaskStatus)
}

func TestLoad_InvalidArchiveInterval(t *testing.T) {
	t.Setenv("ARCHIVE_INTERVAL_SECONDS", "-5")
	_, err := Load()
	require.Error(t, err)
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		raw  string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"info", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"nonsense", slog.LevelInfo},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parseLogLevel(tt.raw), "level %q", tt.raw)
	}
}

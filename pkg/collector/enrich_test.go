package collector

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEnrich_Format(t *testing.T) {
	now := time.Date(2026, 1, 2, 13, 4, 5, 0, time.UTC)

	got := enrich("archon-server", "plain line", now)
	assert.Equal(t, "[13:04:05] [archon-server] plain line", got.Formatted)
	assert.False(t, got.HighRisk)
}

func TestEnrich_HighRisk(t *testing.T) {
	now := time.Date(2026, 1, 2, 13, 4, 5, 0, time.UTC)

	tests := []struct {
		name string
		line string
	}{
		{"rm -rf", "about to run rm -rf /tmp/scratch"},
		{"delete", "issuing DELETE on stale rows"},
		{"drop table", "executing drop table sessions"},
		{"shutdown", "Shutdown requested by operator"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := enrich("svc", tt.line, now)
			assert.True(t, got.HighRisk)
			assert.Equal(t, "[13:04:05] [svc] 🚨 [HIGH RISK] "+tt.line, got.Formatted)
		})
	}
}

func TestEnrich_IconClasses(t *testing.T) {
	now := time.Date(2026, 1, 2, 13, 4, 5, 0, time.UTC)

	tests := []struct {
		name       string
		line       string
		wantPrefix string
	}{
		{"light command", "call_service light.turn_on living room", "💡 [HA_CMD] "},
		{"climate command", "call_service climate.set_temperature 21", "🌡️ [HA_CMD] "},
		{"llm call", "dispatching request to LLM provider", "🧠 "},
		{"entity state", "entity sensor.door changed state", "🏠 "},
		{"sandbox", "sandbox policy denied the call", "🛡️ "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := enrich("svc", tt.line, now)
			assert.False(t, got.HighRisk)
			assert.Equal(t, "[13:04:05] [svc] "+tt.wantPrefix+tt.line, got.Formatted)
		})
	}
}

func TestEnrich_RiskWinsOverIcons(t *testing.T) {
	now := time.Date(2026, 1, 2, 13, 4, 5, 0, time.UTC)

	// Line matches both the LLM icon class and a risk keyword; risk wins
	// and only one prefix is applied.
	got := enrich("svc", "LLM suggested: terminate the worker", now)
	assert.True(t, got.HighRisk)
	assert.Equal(t, "[13:04:05] [svc] 🚨 [HIGH RISK] LLM suggested: terminate the worker", got.Formatted)
}

package config

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testJWT builds an unsigned JWT whose payload carries the given role.
func testJWT(role string) string {
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
	payload := base64.RawURLEncoding.EncodeToString([]byte(`{"role":"` + role + `"}`))
	return header + "." + payload + ".signature"
}

func TestLoadSupabaseFromEnv_BothUnset(t *testing.T) {
	cfg, err := LoadSupabaseFromEnv()
	require.NoError(t, err)
	assert.Nil(t, cfg)
}

func TestLoadSupabaseFromEnv_OnlyOneSet(t *testing.T) {
	t.Run("url without key", func(t *testing.T) {
		t.Setenv("SUPABASE_URL", "https://proj.supabase.co")
		_, err := LoadSupabaseFromEnv()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "SUPABASE_SERVICE_KEY is not")
	})

	t.Run("key without url", func(t *testing.T) {
		t.Setenv("SUPABASE_SERVICE_KEY", testJWT("service_role"))
		_, err := LoadSupabaseFromEnv()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "SUPABASE_URL is not")
	})
}

func TestLoadSupabaseFromEnv_Valid(t *testing.T) {
	t.Setenv("SUPABASE_URL", "https://proj.supabase.co")
	t.Setenv("SUPABASE_SERVICE_KEY", testJWT("service_role"))

	cfg, err := LoadSupabaseFromEnv()
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, "https://proj.supabase.co", cfg.URL)
}

func TestLoadSupabaseFromEnv_AnonKeyRejected(t *testing.T) {
	t.Setenv("SUPABASE_URL", "https://proj.supabase.co")
	t.Setenv("SUPABASE_SERVICE_KEY", testJWT("anon"))

	_, err := LoadSupabaseFromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "anon keys cannot be used")
}

func TestLoadSupabaseFromEnv_NotAJWT(t *testing.T) {
	t.Setenv("SUPABASE_URL", "https://proj.supabase.co")
	t.Setenv("SUPABASE_SERVICE_KEY", "sb-plain-token")

	_, err := LoadSupabaseFromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a valid JWT")
}

func TestValidateSupabaseURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{name: "https anywhere", url: "https://proj.supabase.co"},
		{name: "http localhost", url: "http://localhost:8000"},
		{name: "http loopback ip", url: "http://127.0.0.1:8000"},
		{name: "http private ip", url: "http://192.168.1.10:8000"},
		{name: "http public host", url: "http://proj.supabase.co", wantErr: true},
		{name: "http public ip", url: "http://8.8.8.8", wantErr: true},
		{name: "unsupported scheme", url: "postgres://db:5432", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateSupabaseURL(tt.url)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

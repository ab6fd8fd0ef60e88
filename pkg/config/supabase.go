package config

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net"
	"net/url"
	"os"
	"strings"
)

// SupabaseConfig holds the validated Supabase deployment settings. The data
// path itself runs over the DB_* variables; these values gate startup so a
// misconfigured deployment fails fast instead of running with an anon key.
type SupabaseConfig struct {
	URL        string
	ServiceKey string
}

// LoadSupabaseFromEnv reads and validates SUPABASE_URL and
// SUPABASE_SERVICE_KEY. Both unset is fine (self-hosted Postgres); a URL
// without a service-role key, an anon key, or a plain-HTTP URL to a
// non-private host is a startup failure.
func LoadSupabaseFromEnv() (*SupabaseConfig, error) {
	rawURL := os.Getenv("SUPABASE_URL")
	key := os.Getenv("SUPABASE_SERVICE_KEY")
	if rawURL == "" && key == "" {
		return nil, nil
	}
	if rawURL == "" {
		return nil, fmt.Errorf("SUPABASE_SERVICE_KEY is set but SUPABASE_URL is not")
	}
	if key == "" {
		return nil, fmt.Errorf("SUPABASE_URL is set but SUPABASE_SERVICE_KEY is not")
	}

	if err := validateSupabaseURL(rawURL); err != nil {
		return nil, err
	}
	if err := validateServiceKey(key); err != nil {
		return nil, err
	}

	return &SupabaseConfig{URL: rawURL, ServiceKey: key}, nil
}

// validateSupabaseURL requires HTTPS except for loopback and RFC1918 hosts.
func validateSupabaseURL(rawURL string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("malformed SUPABASE_URL: %w", err)
	}

	switch parsed.Scheme {
	case "https":
		return nil
	case "http":
		if isPrivateHost(parsed.Hostname()) {
			return nil
		}
		return fmt.Errorf("SUPABASE_URL %q must use HTTPS for non-local hosts", rawURL)
	default:
		return fmt.Errorf("SUPABASE_URL %q has unsupported scheme %q", rawURL, parsed.Scheme)
	}
}

func isPrivateHost(host string) bool {
	if host == "localhost" {
		return true
	}
	ip := net.ParseIP(host)
	if ip == nil {
		return false
	}
	return ip.IsLoopback() || ip.IsPrivate()
}

// validateServiceKey rejects anon tokens. Supabase keys are JWTs whose
// payload carries a "role" claim; only service_role may reach the server
// side of this system.
func validateServiceKey(key string) error {
	parts := strings.Split(key, ".")
	if len(parts) != 3 {
		return fmt.Errorf("SUPABASE_SERVICE_KEY is not a valid JWT")
	}

	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return fmt.Errorf("SUPABASE_SERVICE_KEY has an undecodable payload: %w", err)
	}

	var claims struct {
		Role string `json:"role"`
	}
	if err := json.Unmarshal(payload, &claims); err != nil {
		return fmt.Errorf("SUPABASE_SERVICE_KEY has an unparsable payload: %w", err)
	}

	if claims.Role != "service_role" {
		return fmt.Errorf("SUPABASE_SERVICE_KEY has role %q, a service_role key is required (anon keys cannot be used)", claims.Role)
	}
	return nil
}

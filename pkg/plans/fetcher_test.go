package plans

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertToRawURL(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "blob URL converts to raw",
			input:    "https://github.com/org/repo/blob/main/plans/rollout.md",
			expected: "https://raw.githubusercontent.com/org/repo/refs/heads/main/plans/rollout.md",
		},
		{
			name:     "tree URL converts to raw",
			input:    "https://github.com/org/repo/tree/main/plans/rollout.md",
			expected: "https://raw.githubusercontent.com/org/repo/refs/heads/main/plans/rollout.md",
		},
		{
			name:     "nested path converts correctly",
			input:    "https://github.com/myorg/docs/blob/develop/planning/phase2/api.md",
			expected: "https://raw.githubusercontent.com/myorg/docs/refs/heads/develop/planning/phase2/api.md",
		},
		{
			name:     "already raw URL passes through",
			input:    "https://raw.githubusercontent.com/org/repo/refs/heads/main/plan.md",
			expected: "https://raw.githubusercontent.com/org/repo/refs/heads/main/plan.md",
		},
		{
			name:     "non-GitHub URL passes through",
			input:    "https://example.com/some/path",
			expected: "https://example.com/some/path",
		},
		{
			name:     "github.com without blob/tree passes through",
			input:    "https://github.com/org/repo",
			expected: "https://github.com/org/repo",
		},
		{
			name:     "www.github.com blob URL converts",
			input:    "https://www.github.com/org/repo/blob/main/plan.md",
			expected: "https://raw.githubusercontent.com/org/repo/refs/heads/main/plan.md",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, convertToRawURL(tt.input))
		})
	}
}

func TestValidatePlanURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{name: "github https ok", input: "https://github.com/org/repo/blob/main/plan.md"},
		{name: "raw host ok", input: "https://raw.githubusercontent.com/org/repo/refs/heads/main/plan.md"},
		{name: "ftp rejected", input: "ftp://github.com/org/repo", wantErr: "invalid scheme"},
		{name: "other host rejected", input: "https://evil.example.com/plan.md", wantErr: "not a supported plan source"},
		{name: "file scheme rejected", input: "file:///etc/passwd", wantErr: "invalid scheme"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validatePlanURL(tt.input)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

// roundTripFunc lets tests stub HTTP transport behavior.
type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func stubClient(fn roundTripFunc) *http.Client {
	return &http.Client{Transport: fn}
}

func TestFetch_ConvertsAndCaches(t *testing.T) {
	requests := 0
	var gotURL, gotAuth string

	f := NewFetcher("tok-123", time.Minute)
	f.OverrideHTTPClientForTest(stubClient(func(r *http.Request) (*http.Response, error) {
		requests++
		gotURL = r.URL.String()
		gotAuth = r.Header.Get("Authorization")
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader("# The Plan")),
		}, nil
	}))

	content, err := f.Fetch(context.Background(), "https://github.com/org/repo/blob/main/plan.md")
	require.NoError(t, err)
	assert.Equal(t, "# The Plan", content)
	assert.Equal(t, "https://raw.githubusercontent.com/org/repo/refs/heads/main/plan.md", gotURL)
	assert.Equal(t, "Bearer tok-123", gotAuth)

	// Second fetch is served from cache.
	content, err = f.Fetch(context.Background(), "https://github.com/org/repo/blob/main/plan.md")
	require.NoError(t, err)
	assert.Equal(t, "# The Plan", content)
	assert.Equal(t, 1, requests)
}

func TestFetch_RejectsBadURLWithoutRequest(t *testing.T) {
	requests := 0
	f := NewFetcher("", time.Minute)
	f.OverrideHTTPClientForTest(stubClient(func(r *http.Request) (*http.Response, error) {
		requests++
		return nil, nil
	}))

	_, err := f.Fetch(context.Background(), "https://example.com/plan.md")
	require.Error(t, err)
	assert.Zero(t, requests)
}

func TestFetch_NonOKStatus(t *testing.T) {
	f := NewFetcher("", time.Minute)
	f.OverrideHTTPClientForTest(stubClient(func(r *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusNotFound,
			Body:       io.NopCloser(strings.NewReader("not found")),
		}, nil
	}))

	_, err := f.Fetch(context.Background(), "https://github.com/org/repo/blob/main/missing.md")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 404")
}

func TestFetch_NoTokenNoAuthHeader(t *testing.T) {
	var gotAuth string
	f := NewFetcher("", time.Minute)
	f.OverrideHTTPClientForTest(stubClient(func(r *http.Request) (*http.Response, error) {
		gotAuth = r.Header.Get("Authorization")
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader("ok")),
		}, nil
	}))

	_, err := f.Fetch(context.Background(), "https://raw.githubusercontent.com/org/repo/refs/heads/main/plan.md")
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

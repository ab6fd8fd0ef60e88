package plans

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"time"
)

// maxPlanBytes caps how much of a plan document is read. Promotion
// truncates further before the LLM call; this only guards the fetch.
const maxPlanBytes = 1 << 20

// githubBlobTreePattern matches GitHub blob or tree URLs.
// Format: https://github.com/{owner}/{repo}/{blob|tree}/{ref}/{path...}
var githubBlobTreePattern = regexp.MustCompile(`^/([^/]+)/([^/]+)/(blob|tree)/([^/]+)(?:/(.*))?$`)

// Fetcher downloads plan markdown from GitHub, converting blob URLs to raw
// content URLs and caching results.
type Fetcher struct {
	httpClient *http.Client
	cache      *cache
	token      string
}

// NewFetcher creates a fetcher. token may be empty (public repos only,
// lower rate limits). cacheTTL <= 0 defaults to one minute.
func NewFetcher(token string, cacheTTL time.Duration) *Fetcher {
	if cacheTTL <= 0 {
		cacheTTL = time.Minute
	}
	return &Fetcher{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		cache:      newCache(cacheTTL),
		token:      token,
	}
}

// Fetch returns the plan document at the given URL. Blob URLs are converted
// to raw.githubusercontent.com; results are cached by normalized URL.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	if err := validatePlanURL(rawURL); err != nil {
		return "", err
	}

	normalized := convertToRawURL(rawURL)
	if content, ok := f.cache.get(normalized); ok {
		return content, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, normalized, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	if f.token != "" {
		req.Header.Set("Authorization", "Bearer "+f.token)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch plan from %s: %w", normalized, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("GitHub returned HTTP %d for %s", resp.StatusCode, normalized)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPlanBytes))
	if err != nil {
		return "", fmt.Errorf("read response body: %w", err)
	}

	content := string(body)
	f.cache.set(normalized, content)
	return content, nil
}

// OverrideHTTPClientForTest replaces the internal HTTP client. For testing
// only.
func (f *Fetcher) OverrideHTTPClientForTest(httpClient *http.Client) {
	f.httpClient = httpClient
}

// convertToRawURL converts a GitHub blob URL to a raw content URL. Returns
// the URL unchanged if already raw or not a recognized GitHub URL.
func convertToRawURL(githubURL string) string {
	parsed, err := url.Parse(githubURL)
	if err != nil {
		return githubURL
	}

	if parsed.Host == "raw.githubusercontent.com" {
		return githubURL
	}
	if parsed.Host != "github.com" && parsed.Host != "www.github.com" {
		return githubURL
	}

	matches := githubBlobTreePattern.FindStringSubmatch(parsed.Path)
	if matches == nil {
		return githubURL
	}

	owner := matches[1]
	repo := matches[2]
	ref := matches[4]
	path := matches[5]
	return fmt.Sprintf("https://raw.githubusercontent.com/%s/%s/refs/heads/%s/%s", owner, repo, ref, path)
}

// validatePlanURL checks scheme and host. Plans are fetched from GitHub
// only.
func validatePlanURL(rawURL string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("malformed URL: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("invalid scheme %q: only http and https allowed", parsed.Scheme)
	}

	switch parsed.Hostname() {
	case "github.com", "www.github.com", "raw.githubusercontent.com":
		return nil
	default:
		return fmt.Errorf("host %q is not a supported plan source", parsed.Hostname())
	}
}

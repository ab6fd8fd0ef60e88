package plans

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCache_SetAndGet(t *testing.T) {
	c := newCache(1 * time.Minute)

	c.set("https://example.com/plan.md", "# Plan Content")

	content, ok := c.get("https://example.com/plan.md")
	assert.True(t, ok)
	assert.Equal(t, "# Plan Content", content)
}

func TestCache_Miss(t *testing.T) {
	c := newCache(1 * time.Minute)

	content, ok := c.get("https://example.com/nonexistent.md")
	assert.False(t, ok)
	assert.Equal(t, "", content)
}

func TestCache_TTLExpiry(t *testing.T) {
	c := newCache(50 * time.Millisecond)

	c.set("https://example.com/plan.md", "content")

	// Should be present immediately
	content, ok := c.get("https://example.com/plan.md")
	assert.True(t, ok)
	assert.Equal(t, "content", content)

	// Wait for TTL to expire
	time.Sleep(60 * time.Millisecond)

	content, ok = c.get("https://example.com/plan.md")
	assert.False(t, ok)
	assert.Equal(t, "", content)
}

func TestCache_Overwrite(t *testing.T) {
	c := newCache(1 * time.Minute)

	c.set("https://example.com/plan.md", "old content")
	c.set("https://example.com/plan.md", "new content")

	content, ok := c.get("https://example.com/plan.md")
	assert.True(t, ok)
	assert.Equal(t, "new content", content)
}

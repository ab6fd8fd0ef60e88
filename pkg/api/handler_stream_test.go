package api

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sergeville/Archon/pkg/bus"
	"github.com/sergeville/Archon/pkg/models"
)

type fakeSubscription struct {
	messages chan bus.Message
}

func (f *fakeSubscription) Messages() <-chan bus.Message { return f.messages }
func (f *fakeSubscription) Close() error                 { return nil }

type fakeBus struct {
	subscribed []string
	sub        *fakeSubscription
}

func (f *fakeBus) Publish(context.Context, string, []byte) (int64, error) { return 0, nil }

func (f *fakeBus) Subscribe(_ context.Context, topics ...string) (bus.Subscription, error) {
	f.subscribed = append(f.subscribed, topics...)
	return f.sub, nil
}

func (f *fakeBus) Ping(context.Context) error { return nil }
func (f *fakeBus) Close() error               { return nil }

func streamRequest(t *testing.T, b *fakeBus, handler func(*gin.Context)) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/stream", nil)
	handler(c)
	return w
}

func TestStream_SubscribesLogsOnly(t *testing.T) {
	messages := make(chan bus.Message, 1)
	messages <- bus.Message{Topic: models.TopicLogs, Payload: []byte("[12:00:00] [archon-server] ready")}
	close(messages)
	b := &fakeBus{sub: &fakeSubscription{messages: messages}}

	server := &Server{bus: b}
	w := streamRequest(t, b, server.Stream)

	assert.Equal(t, []string{models.TopicLogs}, b.subscribed)
	assert.Equal(t, "text/event-stream", w.Header().Get("Content-Type"))
	require.True(t, strings.HasPrefix(w.Body.String(), "data: "))
	assert.Contains(t, w.Body.String(), "ready")
}

func TestStreamSessions_SubscribesSessionFeed(t *testing.T) {
	messages := make(chan bus.Message)
	close(messages)
	b := &fakeBus{sub: &fakeSubscription{messages: messages}}

	server := &Server{bus: b}
	streamRequest(t, b, server.StreamSessions)

	assert.Equal(t, []string{models.TopicClaudeSessions}, b.subscribed)
}

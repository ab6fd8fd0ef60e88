// Package collector tails container log streams, enriches each line, and
// publishes raw logs plus detected structured events onto the bus.
package collector

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/client"
	"github.com/docker/docker/pkg/stdcopy"

	"github.com/sergeville/Archon/pkg/bus"
	"github.com/sergeville/Archon/pkg/detector"
	"github.com/sergeville/Archon/pkg/models"
)

// reconnectBackoff paces reattachment after a stream ends or errors.
const reconnectBackoff = 2 * time.Second

// DockerLogs is the slice of the Docker API the collector needs.
type DockerLogs interface {
	ContainerLogs(ctx context.Context, containerID string, options container.LogsOptions) (io.ReadCloser, error)
}

// Collector tails one stream per monitored container. Failures on one
// container never stop collection of the others.
type Collector struct {
	docker     DockerLogs
	bus        bus.Bus
	detector   *detector.Detector
	containers []string

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New creates a collector for the given container names.
func New(docker DockerLogs, b bus.Bus, containers []string) *Collector {
	return &Collector{
		docker:     docker,
		bus:        b,
		detector:   detector.New(),
		containers: containers,
	}
}

// NewFromEnv builds a collector with a Docker client from the environment.
func NewFromEnv(b bus.Bus, containers []string) (*Collector, error) {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return nil, err
	}
	return New(cli, b, containers), nil
}

// Start launches one tail goroutine per container.
func (c *Collector) Start(ctx context.Context) {
	ctx, c.cancel = context.WithCancel(ctx)

	for _, name := range c.containers {
		c.wg.Add(1)
		go func(name string) {
			defer c.wg.Done()
			c.tailLoop(ctx, name)
		}(name)
	}

	slog.Info("Log collector started", "containers", c.containers)
}

// Stop cancels all tails and waits for them to finish.
func (c *Collector) Stop() {
	if c.cancel != nil {
		c.cancel()
	}
	c.wg.Wait()
}

// tailLoop attaches to the container's log stream and reattaches with a
// fresh tail=0 whenever the stream ends (stop, restart, daemon hiccup).
func (c *Collector) tailLoop(ctx context.Context, name string) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		if err := c.tailOnce(ctx, name); err != nil && ctx.Err() == nil {
			slog.Error("Log stream error", "container", name, "error", err)
			c.publishLog(ctx, "collector", "Error reading from "+name+": "+err.Error())
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(reconnectBackoff):
		}
	}
}

func (c *Collector) tailOnce(ctx context.Context, name string) error {
	rc, err := c.docker.ContainerLogs(ctx, name, container.LogsOptions{
		ShowStdout: true,
		ShowStderr: true,
		Follow:     true,
		Tail:       "0",
	})
	if err != nil {
		return err
	}
	defer func() { _ = rc.Close() }()

	c.publishLog(ctx, "collector", "Connected to "+name)

	// Docker multiplexes stdout/stderr on one stream; demux into a pipe
	// and scan it line by line.
	pr, pw := io.Pipe()
	go func() {
		_, copyErr := stdcopy.StdCopy(pw, pw, rc)
		_ = pw.CloseWithError(copyErr)
	}()

	scanner := bufio.NewScanner(pr)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		c.processLine(ctx, name, line)
	}
	return scanner.Err()
}

// processLine publishes the enriched raw line on the logs topic, then runs
// event detection and publishes any non-noise structured event.
func (c *Collector) processLine(ctx context.Context, serviceName, line string) {
	e := enrich(serviceName, line, time.Now())

	if e.HighRisk {
		slog.Warn("SAFETY ALERT", "line", e.Formatted)
	}

	if _, err := c.bus.Publish(ctx, models.TopicLogs, []byte(e.Formatted)); err != nil {
		slog.Error("Failed to publish log line", "error", err)
	}

	det := c.detector.Detect(line, serviceName)
	if det == nil || !c.detector.ShouldPublish(det) {
		return
	}

	payload, err := det.Event.Marshal()
	if err != nil {
		slog.Error("Failed to marshal detected event", "event_type", det.Event.EventType, "error", err)
		return
	}
	if _, err := c.bus.Publish(ctx, det.Topic, payload); err != nil {
		slog.Error("Failed to publish detected event", "topic", det.Topic, "error", err)
		return
	}
	slog.Debug("Event detected",
		"event_type", det.Event.EventType,
		"entity_id", det.Event.EntityID,
		"topic", det.Topic)
}

func (c *Collector) publishLog(ctx context.Context, serviceName, line string) {
	e := enrich(serviceName, line, time.Now())
	if _, err := c.bus.Publish(ctx, models.TopicLogs, []byte(e.Formatted)); err != nil {
		slog.Error("Failed to publish collector log", "error", err)
	}
}

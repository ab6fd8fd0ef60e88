// Archon log collector - tails configured Docker containers, enriches each
// line, and publishes logs and detected events onto the bus.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/sergeville/Archon/pkg/bus"
	"github.com/sergeville/Archon/pkg/collector"
	"github.com/sergeville/Archon/pkg/config"
)

// defaultContainers are tailed when LOG_COLLECTOR_CONTAINERS is unset.
var defaultContainers = []string{"archon-server", "archon-mcp", "archon-agents"}

func main() {
	envFile := flag.String("env-file", ".env", "Path to .env file")
	containersFlag := flag.String("containers", "", "Comma-separated container names to tail (overrides env)")
	flag.Parse()

	if err := godotenv.Load(*envFile); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", *envFile, "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	})))

	containers := cfg.Containers
	if *containersFlag != "" {
		containers = nil
		for _, name := range strings.Split(*containersFlag, ",") {
			if name = strings.TrimSpace(name); name != "" {
				containers = append(containers, name)
			}
		}
	}
	if len(containers) == 0 {
		containers = defaultContainers
	}

	eventBus, err := bus.NewRedisBus(cfg.RedisURL)
	if err != nil {
		slog.Error("Failed to connect to event bus", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := eventBus.Close(); err != nil {
			slog.Error("Error closing event bus", "error", err)
		}
	}()

	ctx := context.Background()
	if err := eventBus.Ping(ctx); err != nil {
		slog.Error("Event bus unreachable", "url", cfg.RedisURL, "error", err)
		os.Exit(1)
	}

	c, err := collector.NewFromEnv(eventBus, containers)
	if err != nil {
		slog.Error("Failed to create Docker client", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting log collector", "containers", containers)
	c.Start(ctx)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)
	sig := <-sigCh
	slog.Info("Shutdown signal received", "signal", sig)

	c.Stop()
	slog.Info("Shutdown complete")
}

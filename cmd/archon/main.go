// Archon coordination server - serves the HTTP API and SSE streams, runs
// the whiteboard listener, and owns the background maintenance loop.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/sergeville/Archon/pkg/api"
	"github.com/sergeville/Archon/pkg/bus"
	"github.com/sergeville/Archon/pkg/cleanup"
	"github.com/sergeville/Archon/pkg/config"
	"github.com/sergeville/Archon/pkg/database"
	"github.com/sergeville/Archon/pkg/embeddings"
	"github.com/sergeville/Archon/pkg/listener"
	"github.com/sergeville/Archon/pkg/llm"
	"github.com/sergeville/Archon/pkg/plans"
	"github.com/sergeville/Archon/pkg/services"
	"github.com/sergeville/Archon/pkg/version"
	"github.com/sergeville/Archon/pkg/whiteboard"
)

func main() {
	envFile := flag.String("env-file", ".env", "Path to .env file")
	flag.Parse()

	if err := godotenv.Load(*envFile); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", *envFile, "error", err)
	}

	// 1. Resolve configuration (fatal on misconfiguration)
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	})))
	slog.Info("Starting Archon", "version", version.Full(), "port", cfg.Port, "transport", cfg.Transport)

	ctx := context.Background()

	// 2. Database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Event bus
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
	if err := eventBus.Ping(ctx); err != nil {
		slog.Error("Event bus unreachable", "url", cfg.RedisURL, "error", err)
		os.Exit(1)
	}
	slog.Info("Connected to event bus", "url", cfg.RedisURL)

	// 4. Providers: embeddings and LLM. Both degrade instead of failing.
	gateway := embeddings.New(embeddings.Config{
		APIKey:  cfg.OpenAIAPIKey,
		BaseURL: cfg.EmbeddingBaseURL,
		Model:   cfg.EmbeddingModel,
	})

	var completer llm.Completer
	llmClient, err := llm.NewClient(llm.Config{
		AnthropicAPIKey: cfg.AnthropicAPIKey,
		OpenAIAPIKey:    cfg.OpenAIAPIKey,
		Model:           cfg.LLMModel,
	})
	if err != nil {
		slog.Warn("No LLM provider configured, summarization and extraction disabled")
	} else {
		completer = llmClient
	}

	// 5. Domain services
	sessionService := services.NewSessionService(dbClient.Client, dbClient.DB(), gateway, completer)
	patternService := services.NewPatternService(dbClient.Client, dbClient.DB(), gateway, completer, sessionService)
	agentService := services.NewAgentService(dbClient.Client)
	contextService := services.NewContextService(dbClient.Client)
	handoffService := services.NewHandoffService(dbClient.Client)
	councilService := services.NewCouncilService(dbClient.Client)
	conductorService := services.NewConductorService(dbClient.Client)
	auditService := services.NewAuditService(dbClient.Client)
	projectService := services.NewProjectService(dbClient.Client, completer)
	searchService := services.NewSearchService(sessionService, patternService)
	slog.Info("Services initialized")

	// 6. Whiteboard: load the persisted document, then start the reducer
	board := whiteboard.NewService(dbClient.Client, cfg.WhiteboardProjectID)
	if err := board.Load(ctx); err != nil {
		slog.Error("Failed to load whiteboard", "error", err)
		os.Exit(1)
	}

	eventListener := listener.New(eventBus, board)
	if err := eventListener.Start(ctx); err != nil {
		slog.Error("Failed to start event listener", "error", err)
		os.Exit(1)
	}
	defer eventListener.Stop()
	slog.Info("Event listener started")

	// 7. Background maintenance
	maintenance := cleanup.NewService(cfg.Archive, projectService, sessionService, patternService)
	maintenance.Start(ctx)
	defer maintenance.Stop()

	// 8. HTTP server
	fetcher := plans.NewFetcher(cfg.GitHubToken, cfg.PlanCacheTTL)
	httpServer := api.NewServer(dbClient, eventBus, gateway, board, fetcher, api.Services{
		Sessions:  sessionService,
		Patterns:  patternService,
		Agents:    agentService,
		Context:   contextService,
		Handoffs:  handoffService,
		Council:   councilService,
		Conductor: conductorService,
		Audit:     auditService,
		Projects:  projectService,
		Search:    searchService,
	})

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + strconv.Itoa(cfg.Port)
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Archon backend started successfully")

	// 9. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}
	slog.Info("Shutting down Archon backend")

	// 10. Graceful shutdown: HTTP first so SSE clients drop, then loops
	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}

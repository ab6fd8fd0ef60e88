// Package cleanup runs the background maintenance loop: auto-archiving
// finished projects and stale tasks, and backfilling missing embeddings.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/sergeville/Archon/pkg/config"
	"github.com/sergeville/Archon/pkg/services"
)

// Service periodically:
//   - Archives projects whose tasks are all done and idle for 24 hours
//   - Archives tasks stuck in the configured status for 30 days
//   - Re-embeds rows whose embedding is missing
//
// All operations are idempotent and safe to repeat.
type Service struct {
	config   *config.ArchiveConfig
	projects *services.ProjectService
	sessions *services.SessionService
	patterns *services.PatternService

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(
	cfg *config.ArchiveConfig,
	projects *services.ProjectService,
	sessions *services.SessionService,
	patterns *services.PatternService,
) *Service {
	return &Service{
		config:   cfg,
		projects: projects,
		sessions: sessions,
		patterns: patterns,
	}
}

// Start launches the background loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Auto-archive service started",
		"interval", s.config.Interval,
		"task_status", s.config.TaskStatus,
		"task_max_age", s.config.TaskMaxAge,
		"project_idle_age", s.config.ProjectIdleAge)
}

// Stop signals the loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Auto-archive service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.runAll(ctx)

	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Service) runAll(ctx context.Context) {
	s.archiveProjects(ctx)
	s.archiveTasks(ctx)
	s.backfillEmbeddings(ctx)
}

func (s *Service) archiveProjects(ctx context.Context) {
	count, err := s.projects.ArchiveIdleProjects(ctx, s.config.ProjectIdleAge)
	if err != nil {
		slog.Error("Auto-archive: project sweep failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Auto-archive: archived completed projects", "count", count)
	}
}

func (s *Service) archiveTasks(ctx context.Context) {
	count, err := s.projects.ArchiveStaleTasks(ctx, s.config.TaskStatus, s.config.TaskMaxAge)
	if err != nil {
		slog.Error("Auto-archive: task sweep failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Auto-archive: archived stale tasks", "count", count)
	}
}

func (s *Service) backfillEmbeddings(ctx context.Context) {
	total := 0
	if n, err := s.sessions.BackfillEmbeddings(ctx); err != nil {
		slog.Error("Backfill: session embeddings failed", "error", err)
	} else {
		total += n
	}
	if n, err := s.sessions.BackfillMessageEmbeddings(ctx); err != nil {
		slog.Error("Backfill: message embeddings failed", "error", err)
	} else {
		total += n
	}
	if n, err := s.patterns.BackfillEmbeddings(ctx); err != nil {
		slog.Error("Backfill: pattern embeddings failed", "error", err)
	} else {
		total += n
	}
	if total > 0 {
		slog.Info("Backfill: regenerated embeddings", "count", total)
	}
}

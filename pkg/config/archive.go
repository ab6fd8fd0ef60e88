package config

import "time"

// ArchiveConfig controls the auto-archive loop and embedding backfill.
type ArchiveConfig struct {
	// Interval is how often the maintenance loop runs.
	Interval time.Duration

	// TaskStatus selects which tasks the stale-task sweep targets.
	TaskStatus string

	// TaskMaxAge is how long a task may sit in TaskStatus before being
	// archived.
	TaskMaxAge time.Duration

	// ProjectIdleAge is how long a fully-done project must be idle before
	// being archived.
	ProjectIdleAge time.Duration
}

// DefaultArchiveConfig returns the built-in maintenance defaults.
func DefaultArchiveConfig() *ArchiveConfig {
	return &ArchiveConfig{
		Interval:       time.Hour,
		TaskStatus:     "todo",
		TaskMaxAge:     30 * 24 * time.Hour,
		ProjectIdleAge: 24 * time.Hour,
	}
}

package database

import (
	"context"
	"database/sql"
	"time"
)

// HealthStatus reports Postgres reachability, whether the pgvector
// extension is installed, and connection pool pressure.
type HealthStatus struct {
	Status       string `json:"status"`
	LatencyMS    int64  `json:"latency_ms"`
	VectorReady  bool   `json:"vector_ready"`
	OpenConns    int    `json:"open_conns"`
	InUseConns   int    `json:"in_use_conns"`
	IdleConns    int    `json:"idle_conns"`
	WaitCount    int64  `json:"wait_count"`
	MaxOpenConns int    `json:"max_open_conns"`
}

// Health pings the database and probes for the vector extension. Semantic
// search degrades to empty results without pgvector, so the probe failing
// flips vector_ready but not the overall status.
func Health(ctx context.Context, db *sql.DB) (*HealthStatus, error) {
	start := time.Now()

	if err := db.PingContext(ctx); err != nil {
		return &HealthStatus{
			Status:    "unhealthy",
			LatencyMS: time.Since(start).Milliseconds(),
		}, err
	}

	var vectorReady bool
	if err := db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM pg_extension WHERE extname = 'vector')`,
	).Scan(&vectorReady); err != nil {
		vectorReady = false
	}

	stats := db.Stats()
	return &HealthStatus{
		Status:       "healthy",
		LatencyMS:    time.Since(start).Milliseconds(),
		VectorReady:  vectorReady,
		OpenConns:    stats.OpenConnections,
		InUseConns:   stats.InUse,
		IdleConns:    stats.Idle,
		WaitCount:    stats.WaitCount,
		MaxOpenConns: stats.MaxOpenConnections,
	}, nil
}

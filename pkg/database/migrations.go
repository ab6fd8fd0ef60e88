package database

import (
	"context"
	stdsql "database/sql"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateSearchFunctions installs the semantic-search SQL functions from the
// embedded migration file. Used by tests that create the schema through Ent
// instead of golang-migrate; production paths get these via runMigrations.
func CreateSearchFunctions(ctx context.Context, db *stdsql.DB) error {
	script, err := migrationsFS.ReadFile("migrations/000002_semantic_search.up.sql")
	if err != nil {
		return fmt.Errorf("failed to read search function migration: %w", err)
	}
	if _, err := db.ExecContext(ctx, string(script)); err != nil {
		return fmt.Errorf("failed to create search functions: %w", err)
	}
	return nil
}

// CreateVectorIndexes creates approximate-NN indexes on the embedding
// columns. Kept out of the numbered migrations because ivfflat index builds
// are safe to re-run and need data-dependent list sizing later.
func CreateVectorIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	for _, stmt := range []string{
		`CREATE INDEX IF NOT EXISTS idx_sessions_embedding
		ON sessions USING ivfflat (embedding vector_cosine_ops) WITH (lists = 100)`,
		`CREATE INDEX IF NOT EXISTS idx_patterns_embedding
		ON patterns USING ivfflat (embedding vector_cosine_ops) WITH (lists = 100)`,
		`CREATE INDEX IF NOT EXISTS idx_conversation_messages_embedding
		ON conversation_messages USING ivfflat (embedding vector_cosine_ops) WITH (lists = 100)`,
	} {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create vector index: %w", err)
		}
	}

	return nil
}

// Package database provides test helpers that stand up a real PostgreSQL
// instance (with pgvector) for service-level tests.
package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sergeville/Archon/pkg/database"
	"github.com/sergeville/Archon/test/util"
)

// NewTestClient creates a test database client.
// In CI (when CI_DATABASE_URL is set): connects to external PostgreSQL service container.
// In local dev: spins up a pgvector testcontainer.
// The container/connection is automatically cleaned up when the test ends.
func NewTestClient(t *testing.T) *database.Client {
	ctx := context.Background()

	// Use shared test database setup
	entClient, db := util.SetupTestDatabase(t)

	// The Ent schema covers tables; the search functions are plain SQL.
	err := database.CreateSearchFunctions(ctx, db)
	require.NoError(t, err)

	// Wrap in our client type
	// Note: cleanup (schema drop and connection close) is handled by SetupTestDatabase
	return database.NewClientFromEnt(entClient, db)
}

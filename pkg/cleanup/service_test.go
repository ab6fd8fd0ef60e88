package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sergeville/Archon/ent/task"
	"github.com/sergeville/Archon/pkg/config"
	"github.com/sergeville/Archon/pkg/database"
	"github.com/sergeville/Archon/pkg/embeddings"
	"github.com/sergeville/Archon/pkg/services"
	testdb "github.com/sergeville/Archon/test/database"
)

func setupService(t *testing.T) (*database.Client, *Service, *services.ProjectService) {
	t.Helper()
	client := testdb.NewTestClient(t)
	gateway := embeddings.New(embeddings.Config{})
	sessions := services.NewSessionService(client.Client, client.DB(), gateway, nil)
	patterns := services.NewPatternService(client.Client, client.DB(), gateway, nil, sessions)
	projects := services.NewProjectService(client.Client, nil)
	svc := NewService(config.DefaultArchiveConfig(), projects, sessions, patterns)
	return client, svc, projects
}

func seedTask(t *testing.T, client *database.Client, projectID, status string, updatedAt time.Time) string {
	t.Helper()
	created, err := client.Task.Create().
		SetID(uuid.New().String()).
		SetProjectID(projectID).
		SetTitle("seeded").
		SetStatus(task.Status(status)).
		SetUpdatedAt(updatedAt).
		Save(context.Background())
	require.NoError(t, err)
	return created.ID
}

func TestService_ArchivesIdleCompletedProjects(t *testing.T) {
	client, svc, projects := setupService(t)
	ctx := context.Background()

	old := time.Now().UTC().Add(-48 * time.Hour)

	idle, err := projects.CreateProject(ctx, "idle", "")
	require.NoError(t, err)
	seedTask(t, client, idle.ID, "done", old)

	busy, err := projects.CreateProject(ctx, "busy", "")
	require.NoError(t, err)
	seedTask(t, client, busy.ID, "doing", old)

	svc.runAll(ctx)

	archived, err := projects.GetProject(ctx, idle.ID)
	require.NoError(t, err)
	assert.True(t, archived.Archived)

	kept, err := projects.GetProject(ctx, busy.ID)
	require.NoError(t, err)
	assert.False(t, kept.Archived)
}

func TestService_ArchivesStaleTasks(t *testing.T) {
	client, svc, projects := setupService(t)
	ctx := context.Background()

	project, err := projects.CreateProject(ctx, "backlog", "")
	require.NoError(t, err)

	staleID := seedTask(t, client, project.ID, "todo", time.Now().UTC().Add(-60*24*time.Hour))
	freshID := seedTask(t, client, project.ID, "todo", time.Now().UTC())

	svc.runAll(ctx)

	stale, err := client.Task.Get(ctx, staleID)
	require.NoError(t, err)
	assert.True(t, stale.Archived)

	fresh, err := client.Task.Get(ctx, freshID)
	require.NoError(t, err)
	assert.False(t, fresh.Archived)
}

func TestService_StartStop(t *testing.T) {
	_, svc, _ := setupService(t)

	svc.Start(context.Background())
	// Idempotent: a second Start must not spawn a second loop.
	svc.Start(context.Background())
	svc.Stop()
}

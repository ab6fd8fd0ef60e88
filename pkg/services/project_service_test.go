package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sergeville/Archon/pkg/llm"
)

func TestCreateProject(t *testing.T) {
	svc := newTestServices(t, nil, nil)
	ctx := context.Background()

	project, err := svc.Projects.CreateProject(ctx, "Migration cleanup", "retire the v1 schema")
	require.NoError(t, err)
	assert.False(t, project.Archived)

	_, err = svc.Projects.CreateProject(ctx, "  ", "")
	require.Error(t, err)
	assert.True(t, IsValidationError(err))

	_, err = svc.Projects.GetProject(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPromotePlan(t *testing.T) {
	completer := &fakeCompleter{response: `{
		"tasks": [
			{"title": "Write schema migration", "description": "add new columns", "priority": "high"},
			{"title": "", "priority": "low"},
			{"title": "Backfill rows", "priority": "urgent"},
			{"title": "Drop old columns", "priority": "low", "feature": "cleanup"}
		]
	}`}
	svc := newTestServices(t, nil, completer)
	ctx := context.Background()

	result, err := svc.Projects.PromotePlan(ctx, PromotePlanInput{
		Title:       "Schema v2",
		PlanContent: "# Plan\n1. migrate\n2. backfill\n3. drop",
	})
	require.NoError(t, err)
	require.Len(t, result.Tasks, 3) // blank titles are skipped

	first := result.Tasks[0]
	assert.Equal(t, "Write schema migration", first.Title)
	assert.Equal(t, "high", string(first.Priority))
	assert.Equal(t, "User", first.Assignee)
	assert.Equal(t, "todo", string(first.Status))
	assert.Equal(t, 0, first.TaskOrder)

	// Unknown priorities fall back to medium; the order index follows the
	// plan position, skipped entries included.
	second := result.Tasks[1]
	assert.Equal(t, "Backfill rows", second.Title)
	assert.Equal(t, "medium", string(second.Priority))
	assert.Equal(t, 2, second.TaskOrder)

	third := result.Tasks[2]
	require.NotNil(t, third.Feature)
	assert.Equal(t, "cleanup", *third.Feature)

	project, err := svc.Projects.GetProject(ctx, result.Project.ID)
	require.NoError(t, err)
	require.Len(t, project.Edges.Tasks, 3)
	assert.Equal(t, "Write schema migration", project.Edges.Tasks[0].Title)
}

func TestPromotePlan_Errors(t *testing.T) {
	ctx := context.Background()

	unconfigured := newTestServices(t, nil, nil)
	_, err := unconfigured.Projects.PromotePlan(ctx, PromotePlanInput{PlanContent: "plan"})
	assert.ErrorIs(t, err, llm.ErrNotConfigured)

	svc := newTestServices(t, nil, &fakeCompleter{err: errors.New("provider down")})
	_, err = svc.Projects.PromotePlan(ctx, PromotePlanInput{PlanContent: "   "})
	require.Error(t, err)
	assert.True(t, IsValidationError(err))

	// Extraction failure leaves the created project behind and reports it.
	_, err = svc.Projects.PromotePlan(ctx, PromotePlanInput{Title: "Doomed", PlanContent: "plan"})
	require.Error(t, err)
	var promoErr *PromotionError
	require.ErrorAs(t, err, &promoErr)
	require.NotEmpty(t, promoErr.ProjectID)

	orphan, err := svc.Projects.GetProject(ctx, promoErr.ProjectID)
	require.NoError(t, err)
	assert.Equal(t, "Doomed", orphan.Title)
	assert.Empty(t, orphan.Edges.Tasks)
}

func TestListProjects_Archived(t *testing.T) {
	svc := newTestServices(t, nil, nil)
	ctx := context.Background()

	active, err := svc.Projects.CreateProject(ctx, "active", "")
	require.NoError(t, err)
	archived, err := svc.Projects.CreateProject(ctx, "finished", "")
	require.NoError(t, err)
	_, err = svc.db.Project.UpdateOneID(archived.ID).
		SetArchived(true).
		SetArchivedAt(time.Now().UTC()).
		Save(ctx)
	require.NoError(t, err)

	visible, err := svc.Projects.ListProjects(ctx, false)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, active.ID, visible[0].ID)

	all, err := svc.Projects.ListProjects(ctx, true)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestListAllTasks(t *testing.T) {
	completer := &fakeCompleter{response: `{"tasks": [
		{"title": "one"}, {"title": "two"}
	]}`}
	svc := newTestServices(t, nil, completer)
	ctx := context.Background()

	result, err := svc.Projects.PromotePlan(ctx, PromotePlanInput{Title: "P", PlanContent: "plan"})
	require.NoError(t, err)

	// Archive one task; it drops out of the listing.
	_, err = svc.db.Task.UpdateOneID(result.Tasks[1].ID).
		SetArchived(true).
		SetArchivedAt(time.Now().UTC()).
		Save(ctx)
	require.NoError(t, err)

	tasks, err := svc.Projects.ListAllTasks(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "one", tasks[0].Title)
}

func TestArchiveIdleProjects(t *testing.T) {
	completer := &fakeCompleter{response: `{"tasks": [{"title": "only task"}]}`}
	svc := newTestServices(t, nil, completer)
	ctx := context.Background()

	old := time.Now().UTC().Add(-48 * time.Hour)

	// Done and idle: archived.
	idle, err := svc.Projects.PromotePlan(ctx, PromotePlanInput{Title: "idle", PlanContent: "plan"})
	require.NoError(t, err)
	_, err = svc.db.Task.UpdateOneID(idle.Tasks[0].ID).
		SetStatus("done").
		SetUpdatedAt(old).
		Save(ctx)
	require.NoError(t, err)

	// Done but touched recently: kept.
	fresh, err := svc.Projects.PromotePlan(ctx, PromotePlanInput{Title: "fresh", PlanContent: "plan"})
	require.NoError(t, err)
	_, err = svc.db.Task.UpdateOneID(fresh.Tasks[0].ID).
		SetStatus("done").
		Save(ctx)
	require.NoError(t, err)

	// Still in flight: kept.
	open, err := svc.Projects.PromotePlan(ctx, PromotePlanInput{Title: "open", PlanContent: "plan"})
	require.NoError(t, err)
	_, err = svc.db.Task.UpdateOneID(open.Tasks[0].ID).
		SetStatus("doing").
		SetUpdatedAt(old).
		Save(ctx)
	require.NoError(t, err)

	// No tasks at all: left alone.
	_, err = svc.Projects.CreateProject(ctx, "empty", "")
	require.NoError(t, err)

	n, err := svc.Projects.ArchiveIdleProjects(ctx, 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	archived, err := svc.Projects.GetProject(ctx, idle.Project.ID)
	require.NoError(t, err)
	assert.True(t, archived.Archived)
	require.NotNil(t, archived.ArchivedAt)

	kept, err := svc.Projects.GetProject(ctx, fresh.Project.ID)
	require.NoError(t, err)
	assert.False(t, kept.Archived)
}

func TestArchiveStaleTasks(t *testing.T) {
	completer := &fakeCompleter{response: `{"tasks": [
		{"title": "stale"}, {"title": "recent"}, {"title": "stale but doing"}
	]}`}
	svc := newTestServices(t, nil, completer)
	ctx := context.Background()

	result, err := svc.Projects.PromotePlan(ctx, PromotePlanInput{Title: "P", PlanContent: "plan"})
	require.NoError(t, err)

	old := time.Now().UTC().Add(-14 * 24 * time.Hour)
	_, err = svc.db.Task.UpdateOneID(result.Tasks[0].ID).
		SetUpdatedAt(old).
		Save(ctx)
	require.NoError(t, err)
	_, err = svc.db.Task.UpdateOneID(result.Tasks[2].ID).
		SetStatus("doing").
		SetUpdatedAt(old).
		Save(ctx)
	require.NoError(t, err)

	n, err := svc.Projects.ArchiveStaleTasks(ctx, "todo", 7*24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	tasks, err := svc.Projects.ListAllTasks(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 2)

	archivedTask, err := svc.db.Task.Get(ctx, result.Tasks[0].ID)
	require.NoError(t, err)
	assert.True(t, archivedTask.Archived)
	assert.Equal(t, "auto-archive", archivedTask.ArchivedBy)
	assert.Contains(t, archivedTask.ArchiveReason, `stale: in status "todo"`)

	_, err = svc.Projects.ArchiveStaleTasks(ctx, "shipped", time.Hour)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sergeville/Archon/ent"
	entproject "github.com/sergeville/Archon/ent/project"
	enttask "github.com/sergeville/Archon/ent/task"
	"github.com/sergeville/Archon/pkg/llm"
)

// ProjectService manages projects and their tasks, including plan promotion:
// turning a markdown plan document into a project populated with tasks.
type ProjectService struct {
	client    *ent.Client
	completer llm.Completer
}

// NewProjectService creates a new ProjectService. The completer may be nil
// when no LLM provider is configured; promotion then returns
// ErrNotConfigured before creating anything.
func NewProjectService(client *ent.Client, completer llm.Completer) *ProjectService {
	if client == nil {
		panic("NewProjectService: client must not be nil")
	}
	return &ProjectService{client: client, completer: completer}
}

// CreateProject creates an empty project.
func (s *ProjectService) CreateProject(ctx context.Context, title, description string) (*ent.Project, error) {
	if strings.TrimSpace(title) == "" {
		return nil, NewValidationError("title", "project title is required")
	}

	project, err := s.client.Project.Create().
		SetID(uuid.New().String()).
		SetTitle(title).
		SetDescription(description).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return project, nil
}

// GetProject returns a project with its tasks in order-index order.
func (s *ProjectService) GetProject(ctx context.Context, projectID string) (*ent.Project, error) {
	project, err := s.client.Project.Query().
		Where(entproject.ID(projectID)).
		WithTasks(func(q *ent.TaskQuery) {
			q.Order(ent.Asc(enttask.FieldTaskOrder))
		}).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return project, nil
}

// ListProjects returns projects newest first. Archived projects are
// excluded unless includeArchived is set.
func (s *ProjectService) ListProjects(ctx context.Context, includeArchived bool) ([]*ent.Project, error) {
	q := s.client.Project.Query()
	if !includeArchived {
		q = q.Where(entproject.Archived(false))
	}

	projects, err := q.
		Order(ent.Desc(entproject.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// PromotionError reports a failed promotion whose project was already
// created. Callers retry with the same project instead of creating another.
type PromotionError struct {
	ProjectID string
	Err       error
}

func (e *PromotionError) Error() string {
	return fmt.Sprintf("plan promotion failed for project %s: %v", e.ProjectID, e.Err)
}

func (e *PromotionError) Unwrap() error { return e.Err }

// PromotePlanInput contains the plan promotion payload.
type PromotePlanInput struct {
	Title       string
	Description string
	PlanContent string
}

// PromotionResult is a promoted project with its created tasks.
type PromotionResult struct {
	Project *ent.Project `json:"project"`
	Tasks   []*ent.Task  `json:"tasks"`
}

// PromotePlan creates a project and fills it with tasks extracted from a
// markdown plan document. The project is created first: if extraction
// fails, the empty project stays and the returned PromotionError carries
// its ID so the caller can retry against it.
func (s *ProjectService) PromotePlan(ctx context.Context, input PromotePlanInput) (*PromotionResult, error) {
	if s.completer == nil {
		return nil, llm.ErrNotConfigured
	}
	if strings.TrimSpace(input.PlanContent) == "" {
		return nil, NewValidationError("plan_content", "plan content is required")
	}

	title := input.Title
	if title == "" {
		title = "Promoted plan"
	}

	project, err := s.CreateProject(ctx, title, input.Description)
	if err != nil {
		return nil, err
	}

	planTasks, err := llm.ExtractPlanTasks(ctx, s.completer, input.PlanContent)
	if err != nil {
		return nil, &PromotionError{ProjectID: project.ID, Err: err}
	}

	tasks := make([]*ent.Task, 0, len(planTasks))
	for i, pt := range planTasks {
		if strings.TrimSpace(pt.Title) == "" {
			continue
		}

		builder := s.client.Task.Create().
			SetID(uuid.New().String()).
			SetProjectID(project.ID).
			SetTitle(pt.Title).
			SetDescription(pt.Description).
			SetStatus(enttask.StatusTodo).
			SetAssignee("User").
			SetTaskOrder(i).
			SetPriority(taskPriority(pt.Priority))
		if pt.Feature != "" {
			builder.SetFeature(pt.Feature)
		}

		task, err := builder.Save(ctx)
		if err != nil {
			return nil, &PromotionError{ProjectID: project.ID, Err: err}
		}
		tasks = append(tasks, task)
	}

	slog.Info("Plan promoted",
		"project_id", project.ID,
		"title", title,
		"tasks", len(tasks))
	return &PromotionResult{Project: project, Tasks: tasks}, nil
}

// ListAllTasks returns unarchived tasks across all projects, ordered by
// project then order index.
func (s *ProjectService) ListAllTasks(ctx context.Context) ([]*ent.Task, error) {
	tasks, err := s.client.Task.Query().
		Where(enttask.Archived(false)).
		Order(ent.Asc(enttask.FieldProjectID), ent.Asc(enttask.FieldTaskOrder)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// ArchiveIdleProjects archives every project whose tasks are all done and
// whose newest task has not moved for idleAge. Projects without tasks are
// left alone. Returns how many projects were archived.
func (s *ProjectService) ArchiveIdleProjects(ctx context.Context, idleAge time.Duration) (int, error) {
	projects, err := s.client.Project.Query().
		Where(entproject.Archived(false)).
		WithTasks().
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load projects for archiving: %w", err)
	}

	cutoff := time.Now().UTC().Add(-idleAge)
	var archived int
	for _, p := range projects {
		if len(p.Edges.Tasks) == 0 {
			continue
		}

		allDone := true
		var newest time.Time
		for _, t := range p.Edges.Tasks {
			if t.Status != enttask.StatusDone {
				allDone = false
				break
			}
			if t.UpdatedAt.After(newest) {
				newest = t.UpdatedAt
			}
		}
		if !allDone || newest.After(cutoff) {
			continue
		}

		if _, err := p.Update().
			SetArchived(true).
			SetArchivedAt(time.Now().UTC()).
			Save(ctx); err != nil {
			return archived, fmt.Errorf("failed to archive project %s: %w", p.ID, err)
		}
		archived++
		slog.Info("Archived completed project", "project_id", p.ID, "title", p.Title)
	}
	return archived, nil
}

// ArchiveStaleTasks archives unarchived tasks in the given status whose
// updated_at is older than maxAge. Returns how many tasks were archived.
func (s *ProjectService) ArchiveStaleTasks(ctx context.Context, status string, maxAge time.Duration) (int, error) {
	taskStatus := enttask.Status(status)
	switch taskStatus {
	case enttask.StatusTodo, enttask.StatusDoing, enttask.StatusReview, enttask.StatusDone:
	default:
		return 0, NewValidationError("status", fmt.Sprintf("invalid task status '%s'", status))
	}

	cutoff := time.Now().UTC().Add(-maxAge)
	n, err := s.client.Task.Update().
		Where(
			enttask.Archived(false),
			enttask.StatusEQ(taskStatus),
			enttask.UpdatedAtLT(cutoff),
		).
		SetArchived(true).
		SetArchivedAt(time.Now().UTC()).
		SetArchivedBy("auto-archive").
		SetArchiveReason(fmt.Sprintf("stale: in status %q since before %s", status, cutoff.Format(time.RFC3339))).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to archive stale tasks: %w", err)
	}
	return n, nil
}

// taskPriority maps an extracted priority onto the task enum; anything
// unrecognized becomes medium.
func taskPriority(p string) enttask.Priority {
	switch enttask.Priority(strings.ToLower(p)) {
	case enttask.PriorityLow:
		return enttask.PriorityLow
	case enttask.PriorityHigh:
		return enttask.PriorityHigh
	case enttask.PriorityCritical:
		return enttask.PriorityCritical
	default:
		return enttask.PriorityMedium
	}
}

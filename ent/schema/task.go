package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Task holds the schema definition for the Task entity - one implementation
// task inside a project.
type Task struct {
	ent.Schema
}

// Fields of the Task.
func (Task) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("task_id").
			Unique().
			Immutable(),
		field.String("project_id").
			Immutable(),
		field.String("title").
			NotEmpty(),
		field.Text("description").
			Optional(),
		field.Enum("status").
			Values("todo", "doing", "review", "done").
			Default("todo"),
		field.String("assignee").
			Optional(),
		field.Int("task_order").
			Default(0),
		field.Enum("priority").
			Values("low", "medium", "high", "critical").
			Default("medium"),
		field.String("feature").
			Optional().
			Nillable(),
		field.Bool("archived").
			Default(false),
		field.Time("archived_at").
			Optional().
			Nillable(),
		field.String("archived_by").
			Optional().
			Nillable(),
		field.Text("archive_reason").
			Optional().
			Nillable(),
		field.JSON("metadata", map[string]interface{}{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Task.
func (Task) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("tasks").
			Field("project_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Task.
func (Task) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("project_id", "status"),
		index.Fields("status", "updated_at"),
		index.Fields("archived"),
	}
}

package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Handoff holds the schema definition for the Handoff entity - a unit of
// work transfer between two agents.
//
// State machine:
//
//	pending ──accept──> accepted ──complete──> completed
//	pending ──reject──> rejected
//
// accepted_at and completed_at are set on entry to those states and never
// cleared.
type Handoff struct {
	ent.Schema
}

// Fields of the Handoff.
func (Handoff) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("handoff_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.String("from_agent").
			NotEmpty().
			Immutable(),
		field.String("to_agent").
			NotEmpty().
			Immutable(),
		field.JSON("context", map[string]interface{}{}).
			Optional(),
		field.Text("notes").
			Optional(),
		field.Enum("status").
			Values("pending", "accepted", "completed", "rejected").
			Default("pending"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("accepted_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.JSON("metadata", map[string]interface{}{}).
			Optional(),
	}
}

// Edges of the Handoff.
func (Handoff) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", Session.Type).
			Ref("handoffs").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Handoff.
func (Handoff) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("to_agent", "status"),
		index.Fields("session_id"),
		index.Fields("status", "created_at"),
	}
}

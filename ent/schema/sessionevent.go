package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent holds the schema definition for the SessionEvent entity - a
// point-in-time occurrence within a session. Append-only.
type SessionEvent struct {
	ent.Schema
}

// Fields of the SessionEvent.
func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("event_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.Int64("seq").
			Optional().
			Immutable().
			Comment("DB-assigned insertion order; breaks timestamp ties"),
		field.String("event_type").
			NotEmpty().
			Comment("Enumerated but extensible (session.started, task.completed, ...)"),
		field.Time("timestamp").
			Default(time.Now).
			Immutable(),
		field.JSON("payload", map[string]interface{}{}).
			Optional(),
		embeddingField("embedding"),
	}
}

// Edges of the SessionEvent.
func (SessionEvent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", Session.Type).
			Ref("events").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the SessionEvent.
func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "timestamp"),
		index.Fields("event_type"),
	}
}

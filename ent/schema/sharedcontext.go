package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SharedContext holds the schema definition for the SharedContext entity -
// a named JSON value on the shared context board.
type SharedContext struct {
	ent.Schema
}

// Fields of the SharedContext.
func (SharedContext) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("context_id").
			Unique().
			Immutable(),
		field.String("key").
			NotEmpty().
			Unique(),
		field.JSON("value", map[string]interface{}{}),
		field.String("set_by").
			NotEmpty(),
		field.String("session_id").
			Optional().
			Nillable().
			Comment("Soft reference; not a foreign key"),
		field.Time("expires_at").
			Optional().
			Nillable().
			Comment("Advisory: expired entries are hidden from reads, kept for audit"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the SharedContext.
func (SharedContext) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("updated_at"),
	}
}

// SharedContextHistory holds the schema definition for the
// SharedContextHistory entity - one append-only record per write to a key.
// History is keyed by the key string, not by row reference, so it survives
// deletion of the current entry.
type SharedContextHistory struct {
	ent.Schema
}

// Fields of the SharedContextHistory.
func (SharedContextHistory) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("history_id").
			Unique().
			Immutable(),
		field.String("key").
			NotEmpty().
			Immutable(),
		field.JSON("old_value", map[string]interface{}{}).
			Optional().
			Comment("Null on the first write of a key"),
		field.JSON("new_value", map[string]interface{}{}),
		field.String("changed_by").
			NotEmpty().
			Immutable(),
		field.Time("changed_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the SharedContextHistory.
func (SharedContextHistory) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("key", "changed_at"),
	}
}

package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AuditEntry holds the schema definition for the AuditEntry entity - the
// append-only system-wide timeline.
type AuditEntry struct {
	ent.Schema
}

// Fields of the AuditEntry.
func (AuditEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("audit_id").
			Unique().
			Immutable(),
		field.String("source").
			NotEmpty().
			Immutable(),
		field.String("action").
			NotEmpty().
			Immutable(),
		field.String("agent").
			Optional().
			Nillable().
			Immutable(),
		field.String("target").
			Optional().
			Nillable().
			Immutable(),
		field.String("risk_level").
			Optional().
			Nillable().
			Immutable(),
		field.String("outcome").
			Optional().
			Nillable().
			Immutable(),
		field.JSON("metadata", map[string]interface{}{}).
			Optional(),
		field.String("session_id").
			Optional().
			Nillable().
			Immutable().
			Comment("Soft reference; not a foreign key"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the AuditEntry.
func (AuditEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("created_at"),
		index.Fields("source"),
		index.Fields("agent"),
	}
}

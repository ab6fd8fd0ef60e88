package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Pattern holds the schema definition for the Pattern entity - a reusable
// behavioral or technical lesson harvested from agent work.
//
// Patterns reference their source session only through
// context["source_session_id"] (a plain string, not a foreign key) so that
// sessions can be deleted later without orphan failures.
type Pattern struct {
	ent.Schema
}

// Fields of the Pattern.
func (Pattern) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("pattern_id").
			Unique().
			Immutable(),
		field.Enum("pattern_type").
			Values("success", "failure", "technical", "process"),
		field.String("domain").
			NotEmpty(),
		field.Text("description"),
		field.Text("action"),
		field.Text("outcome").
			Optional().
			Nillable(),
		field.JSON("context", map[string]interface{}{}).
			Optional(),
		embeddingField("embedding"),
		field.String("created_by").
			Default("system"),
		field.JSON("metadata", map[string]interface{}{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Pattern.
func (Pattern) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("observations", PatternObservation.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Pattern.
func (Pattern) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("pattern_type"),
		index.Fields("domain"),
		index.Fields("created_at"),
	}
}

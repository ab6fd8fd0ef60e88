package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PatternObservation holds the schema definition for the PatternObservation
// entity - one recorded instance of a pattern being applied. Append-only.
type PatternObservation struct {
	ent.Schema
}

// Fields of the PatternObservation.
func (PatternObservation) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("observation_id").
			Unique().
			Immutable(),
		field.String("pattern_id").
			Immutable(),
		field.String("session_id").
			Optional().
			Nillable().
			Comment("Soft reference; not a foreign key"),
		field.Int("success_rating").
			Optional().
			Nillable().
			Range(1, 5),
		field.Text("feedback").
			Optional().
			Nillable(),
		field.Time("observed_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the PatternObservation.
func (PatternObservation) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("pattern", Pattern.Type).
			Ref("observations").
			Field("pattern_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the PatternObservation.
func (PatternObservation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("pattern_id", "observed_at"),
	}
}

package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CouncilDecision holds the schema definition for the CouncilDecision
// entity: one risk-gate entry for a proposed work order.
//
// Auto decisions follow a fixed table: LOW/MED → approved, HIGH →
// pending_human, DESTRUCTIVE → blocked. resolved_at is set only when a
// pending_human record is moved by a human.
type CouncilDecision struct {
	ent.Schema
}

// Fields of the CouncilDecision.
func (CouncilDecision) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("decision_id").
			Unique().
			Immutable(),
		field.String("work_order_id").
			NotEmpty().
			Immutable(),
		field.Enum("risk_level").
			Values("LOW", "MED", "HIGH", "DESTRUCTIVE").
			Immutable(),
		field.Enum("decision").
			Values("approved", "pending_human", "blocked"),
		field.Enum("decided_by").
			Values("auto", "human").
			Default("auto"),
		field.Text("notes").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("resolved_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the CouncilDecision.
func (CouncilDecision) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("work_order_id"),
		index.Fields("decision", "created_at"),
	}
}

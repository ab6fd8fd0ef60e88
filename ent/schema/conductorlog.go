package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ConductorLog holds the schema definition for the ConductorLog entity -
// one delegation reasoning record written by a conductor agent, closed later
// by exactly one outcome update.
type ConductorLog struct {
	ent.Schema
}

// Fields of the ConductorLog.
func (ConductorLog) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("log_id").
			Unique().
			Immutable(),
		field.String("work_order_id").
			NotEmpty().
			Immutable(),
		field.String("mission_id").
			Optional().
			Nillable().
			Immutable(),
		field.String("conductor_agent").
			NotEmpty().
			Immutable(),
		field.String("delegation_target").
			NotEmpty().
			Immutable(),
		field.Text("reasoning"),
		field.JSON("injected_context", map[string]interface{}{}).
			Optional(),
		field.JSON("decision_factors", []string{}).
			Optional(),
		field.Float("confidence").
			Optional().
			Nillable().
			Comment("Clamped to [0,1] at write time"),
		field.Enum("outcome").
			Values("success", "failure", "partial").
			Optional().
			Nillable(),
		field.Text("outcome_notes").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("outcome_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the ConductorLog.
func (ConductorLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("work_order_id", "created_at"),
		index.Fields("conductor_agent", "delegation_target"),
	}
}

package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Agent holds the schema definition for the Agent entity - a registered
// participant in the coordination layer. One record per unique name;
// registration is upsert-by-name.
type Agent struct {
	ent.Schema
}

// Fields of the Agent.
func (Agent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("agent_id").
			Unique().
			Immutable(),
		field.String("name").
			NotEmpty().
			Unique(),
		field.JSON("capabilities", []string{}).
			Optional(),
		field.Enum("status").
			Values("active", "inactive", "busy").
			Default("active"),
		field.Time("last_seen").
			Default(time.Now).
			Comment("Monotonically advances via heartbeat"),
		field.JSON("metadata", map[string]interface{}{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Agent.
func (Agent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "last_seen"),
	}
}

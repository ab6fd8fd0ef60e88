package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/schema/field"
	"github.com/pgvector/pgvector-go"
)

// embeddingField returns a nullable 1536-dim pgvector column. A NULL value
// means "not embedded yet" and every read path must tolerate it.
func embeddingField(name string) ent.Field {
	return field.Other(name, pgvector.Vector{}).
		SchemaType(map[string]string{
			dialect.Postgres: "vector(1536)",
		}).
		Optional().
		Nillable()
}
